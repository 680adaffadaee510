package handlers

import (
	"net/http"

	"github.com/alzcare/screening-service/internal/services"
	"github.com/alzcare/screening-service/internal/utils"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// BaseHandler provides shared logging and response helpers.
type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

// RespondWithError maps a service error onto a status code and logs it.
func (h *BaseHandler) RespondWithError(c *gin.Context, err error, msg string) {
	status := http.StatusInternalServerError
	switch {
	case services.IsNotFound(err):
		status = http.StatusNotFound
	case services.IsValidation(err):
		status = http.StatusBadRequest
	}

	h.logger.LogError(err, msg,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status_code", status)

	c.JSON(status, ErrorResponse{Message: msg, Details: err.Error()})
}

func (h *BaseHandler) RespondBadRequest(c *gin.Context, err error, msg string) {
	h.logger.Warn(msg,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"error", err)
	c.JSON(http.StatusBadRequest, ErrorResponse{Message: msg, Details: err.Error()})
}

// HealthCheck reports service liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "screening-service",
	})
}
