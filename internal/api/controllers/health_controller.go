package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"kankou/internal/services"
	"kankou/pkg/utils"
)

type HealthController struct {
	healthService services.HealthServiceInterface
}

func NewHealthController(healthService services.HealthServiceInterface) *HealthController {
	return &HealthController{healthService: healthService}
}

// Healthz answers 200 when every dataset loaded and 503 otherwise, with the details either way.
func (h *HealthController) Healthz(c *gin.Context) {
	resp, healthy := h.healthService.Health()
	if healthy {
		utils.RespondSuccess(c, resp, "ok")
		return
	}
	c.JSON(http.StatusServiceUnavailable, utils.APIResponse{
		Status:  "error",
		Code:    http.StatusServiceUnavailable,
		Message: "One or more datasets failed to load",
		TraceID: c.GetString("trace_id"),
		Data:    resp,
	})
}
