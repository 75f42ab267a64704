package repositories

import (
	"context"

	"gorm.io/gorm"

	"essentia/internal/models/db_models"
)

type QuestionRepository interface {
	ListByFlow(ctx context.Context, flowID string) ([]db_models.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) ListByFlow(ctx context.Context, flowID string) ([]db_models.Question, error) {
	var questions []db_models.Question
	err := r.db.WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_options.order_index asc")
		}).
		Where("flow_id = ?", flowID).
		Order("order_index asc").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}
