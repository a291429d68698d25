package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// ErrorStatus maps a service error to the HTTP status and the message shown to the viewer.
func ErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, ErrSpotNotFound):
		return http.StatusNotFound, "Spot not found"
	case errors.Is(err, ErrInvalidAnswer):
		return http.StatusBadRequest, "Every quiz question needs one of its listed answers"
	case errors.Is(err, ErrInvalidPageSize):
		return http.StatusBadRequest, "Page size must be between 1 and 100"
	case errors.Is(err, ErrDataLoad):
		return http.StatusServiceUnavailable, "Data is temporarily unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func HandleServiceError(c *gin.Context, log *zap.Logger, err error) {
	code, message := ErrorStatus(err)
	if code >= http.StatusInternalServerError && log != nil {
		log.Error("request failed",
			zap.String("trace_id", c.GetString("trace_id")),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
	}
	RespondError(c, code, message)
}
