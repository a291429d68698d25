package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"kankou/internal/models/request_models"
	"kankou/internal/services"
	"kankou/pkg/utils"
)

type RecommendationController struct {
	recommendationService services.RecommendationServiceInterface
	log                   *zap.Logger
}

func NewRecommendationController(recommendationService services.RecommendationServiceInterface, log *zap.Logger) *RecommendationController {
	return &RecommendationController{
		recommendationService: recommendationService,
		log:                   log,
	}
}

func (r *RecommendationController) GetQuestions(c *gin.Context) {
	utils.RespondSuccess(c, r.recommendationService.Questions(), "Quiz fetched successfully")
}

func (r *RecommendationController) PostRecommendation(c *gin.Context) {
	var req request_models.QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := r.recommendationService.Recommend(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, r.log, err)
		return
	}

	message := "Recommendation found"
	if !result.Matched {
		message = "No recommendation for these answers"
	}
	utils.RespondSuccess(c, result, message)
}
