package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"kankou/internal/services"
	"kankou/pkg/utils"
)

type StoriesController struct {
	storyService services.StoryServiceInterface
	log          *zap.Logger
}

func NewStoriesController(storyService services.StoryServiceInterface, log *zap.Logger) *StoriesController {
	return &StoriesController{storyService: storyService, log: log}
}

func (s *StoriesController) ListStories(c *gin.Context) {
	cards, err := s.storyService.ListStories(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, s.log, err)
		return
	}
	utils.RespondSuccess(c, cards, "Stories fetched successfully")
}
