package handlers

import (
	"net/http"

	"github.com/alzcare/screening-service/internal/services"
	"github.com/alzcare/screening-service/internal/utils"
	"github.com/gin-gonic/gin"
)

// ScheduleHandler serves the pending appointments a subject still owes.
type ScheduleHandler struct {
	BaseHandler
	service services.ScheduleService
}

func NewScheduleHandler(service services.ScheduleService, logger utils.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// ListPending returns pending schedules ordered by appointment time.
// GET /api/v1/subjects/:subject_id/schedules/pending
func (h *ScheduleHandler) ListPending(c *gin.Context) {
	schedules, err := h.service.ListPending(c.Request.Context(), c.Param("subject_id"))
	if err != nil {
		h.RespondWithError(c, err, "Failed to list pending schedules")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"schedules": schedules,
		"count":     len(schedules),
	})
}
