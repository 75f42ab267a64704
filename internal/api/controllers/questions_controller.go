package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"essentia/internal/services"
	"essentia/pkg/utils"
)

type QuestionsController struct {
	questionService services.QuestionServiceInterface
}

func NewQuestionsController(questionService services.QuestionServiceInterface) *QuestionsController {
	return &QuestionsController{
		questionService: questionService,
	}
}

func (q *QuestionsController) GetQuestionsByFlow(c *gin.Context) {
	flowID := c.Param("flowId")
	if flowID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Flow ID is required")
		return
	}

	questions, err := q.questionService.GetQuestionsByFlow(c.Request.Context(), flowID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, questions, "Questions fetched successfully")
}
