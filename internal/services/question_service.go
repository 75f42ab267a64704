package services

import (
	"context"
	"log"

	"essentia/internal/models/response_models"
	"essentia/internal/repositories"
	"essentia/pkg/utils"
)

type QuestionServiceInterface interface {
	GetQuestionsByFlow(ctx context.Context, flowID string) (response_models.QuestionSetResponse, error)
}

type QuestionService struct {
	questionRepository repositories.QuestionRepository
}

func NewQuestionService(questionRepository repositories.QuestionRepository) QuestionServiceInterface {
	return &QuestionService{questionRepository: questionRepository}
}

func (s *QuestionService) GetQuestionsByFlow(ctx context.Context, flowID string) (response_models.QuestionSetResponse, error) {
	rows, err := s.questionRepository.ListByFlow(ctx, flowID)
	if err != nil {
		log.Printf("Error loading question set %s: %v", flowID, err)
		return response_models.QuestionSetResponse{}, utils.ErrDatabaseError
	}
	if len(rows) == 0 {
		return response_models.QuestionSetResponse{}, utils.ErrQuestionSetNotFound
	}

	questions := make([]response_models.QuestionResponse, 0, len(rows))
	for i := range rows {
		q := rows[i]

		options := make([]response_models.QuestionOptionResponse, 0, len(q.Options))
		for _, o := range q.Options {
			options = append(options, response_models.QuestionOptionResponse{
				ID:    o.ID.String(),
				Label: o.Label,
				Value: o.Value,
			})
		}

		questions = append(questions, response_models.QuestionResponse{
			ID:           q.ID.String(),
			Key:          q.Key,
			Category:     q.Category,
			Text:         q.Text,
			QuestionType: q.QuestionType,
			DataSource:   q.DataSource,
			MultiSelect:  q.MultiSelect,
			OrderIndex:   q.OrderIndex,
			Options:      options,
		})
	}

	return response_models.QuestionSetResponse{
		FlowID:    flowID,
		Questions: questions,
		Total:     len(questions),
	}, nil
}
