package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"kankou/internal/config"
	"kankou/internal/models/request_models"
	"kankou/internal/services"
	"kankou/pkg/utils"
)

const maxPageSize = 100

type SpotsController struct {
	spotService     services.SpotServiceInterface
	defaultPageSize int
	log             *zap.Logger
}

func NewSpotsController(spotService services.SpotServiceInterface, cfg config.Config, log *zap.Logger) *SpotsController {
	return &SpotsController{
		spotService:     spotService,
		defaultPageSize: cfg.PageSize,
		log:             log,
	}
}

func (s *SpotsController) ListSpots(c *gin.Context) {
	var query request_models.SpotListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	// An unusable page falls back to the first one; only the page size is strict.
	page, err := strconv.Atoi(query.Page)
	if err != nil || page < 1 {
		page = 1
	}

	pageSize := s.defaultPageSize
	if query.PageSize != "" {
		pageSize, err = strconv.Atoi(query.PageSize)
		if err != nil || pageSize < 1 || pageSize > maxPageSize {
			utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
			return
		}
	}

	spots, err := s.spotService.ListSpots(c.Request.Context(), strings.TrimSpace(query.Query), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, s.log, err)
		return
	}

	utils.RespondSuccess(c, spots, "Spots fetched successfully")
}

func (s *SpotsController) GetSpot(c *gin.Context) {
	// Catch-all so names containing "/" still reach the handler.
	name := strings.TrimPrefix(c.Param("name"), "/")
	if name == "" {
		utils.RespondError(c, http.StatusBadRequest, "Spot name is required")
		return
	}

	detail, err := s.spotService.GetSpotDetail(c.Request.Context(), name)
	if err != nil {
		utils.HandleServiceError(c, s.log, err)
		return
	}

	utils.RespondSuccess(c, detail, "Spot fetched successfully")
}
