package questionfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"essentia/internal/api/controllers"
	"essentia/internal/repositories"
	"essentia/internal/services"
)

var Module = fx.Provide(
	provideQuestionRepo, provideQuestionService, provideQuestionsController)

func provideQuestionRepo(db *gorm.DB) repositories.QuestionRepository {
	return repositories.NewQuestionRepository(db)
}

func provideQuestionService(questionRepo repositories.QuestionRepository) services.QuestionServiceInterface {
	return services.NewQuestionService(questionRepo)
}

func provideQuestionsController(questionService services.QuestionServiceInterface) *controllers.QuestionsController {
	return controllers.NewQuestionsController(questionService)
}
