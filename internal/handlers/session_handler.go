package handlers

import (
	"net/http"

	"github.com/alzcare/screening-service/internal/services"
	"github.com/alzcare/screening-service/internal/session"
	"github.com/alzcare/screening-service/internal/utils"
	"github.com/gin-gonic/gin"
)

// SessionHandler exposes the screening wizard over HTTP.
type SessionHandler struct {
	BaseHandler
	service services.ScreeningService
}

func NewSessionHandler(service services.ScreeningService, logger utils.Logger) *SessionHandler {
	return &SessionHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// StartSession creates a session and returns its first item.
// POST /api/v1/sessions
func (h *SessionHandler) StartSession(c *gin.Context) {
	var req services.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondBadRequest(c, err, "Invalid request body")
		return
	}

	resp, err := h.service.StartSession(c.Request.Context(), &req)
	if err != nil {
		h.RespondWithError(c, err, "Failed to start session")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetSession returns the current position of a running session.
// GET /api/v1/sessions/:id
func (h *SessionHandler) GetSession(c *gin.Context) {
	resp, err := h.service.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.RespondWithError(c, err, "Failed to fetch session")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Advance submits the current answer and moves to the next item, or
// completes the session and returns the scored result.
// POST /api/v1/sessions/:id/next
func (h *SessionHandler) Advance(c *gin.Context) {
	var in session.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		h.RespondBadRequest(c, err, "Invalid answer payload")
		return
	}

	resp, err := h.service.Advance(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		h.RespondWithError(c, err, "Failed to advance session")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// StepBack submits the current answer and moves to the previous item.
// POST /api/v1/sessions/:id/previous
func (h *SessionHandler) StepBack(c *gin.Context) {
	var in session.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		h.RespondBadRequest(c, err, "Invalid answer payload")
		return
	}

	resp, err := h.service.StepBack(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		h.RespondWithError(c, err, "Failed to step back")
		return
	}

	c.JSON(http.StatusOK, resp)
}
