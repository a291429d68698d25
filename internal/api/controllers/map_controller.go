package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"kankou/internal/services"
	"kankou/pkg/utils"
)

type MapController struct {
	mapService services.MapServiceInterface
	log        *zap.Logger
}

func NewMapController(mapService services.MapServiceInterface, log *zap.Logger) *MapController {
	return &MapController{mapService: mapService, log: log}
}

func (m *MapController) GetMap(c *gin.Context) {
	view, err := m.mapService.RenderMap(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, m.log, err)
		return
	}
	utils.RespondSuccess(c, view, "Map fetched successfully")
}
