package utils

import "errors"

var (
	ErrCatalogUnavailable  = errors.New("catalog unavailable")
	ErrProfileStore        = errors.New("profile store error")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrQuestionSetNotFound = errors.New("question set not found")
	ErrInvalidLimit        = errors.New("invalid limit parameter")
	ErrInvalidFlow         = errors.New("invalid flow identifier")
	ErrEmptyAnswers        = errors.New("no answers submitted")
	ErrDatabaseError       = errors.New("database error")
)
