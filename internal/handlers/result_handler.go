package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/alzcare/screening-service/internal/services"
	"github.com/alzcare/screening-service/internal/utils"
	"github.com/gin-gonic/gin"
)

// ResultHandler serves past screening results and their export.
type ResultHandler struct {
	BaseHandler
	service services.ScreeningService
	export  services.ExportService
}

func NewResultHandler(service services.ScreeningService, export services.ExportService, logger utils.Logger) *ResultHandler {
	return &ResultHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		export:      export,
	}
}

// ListResults returns a subject's result history, newest first.
// GET /api/v1/subjects/:subject_id/results
func (h *ResultHandler) ListResults(c *gin.Context) {
	results, err := h.service.ListResults(c.Request.Context(), c.Param("subject_id"))
	if err != nil {
		h.RespondWithError(c, err, "Failed to list results")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"count":   len(results),
	})
}

// ExportResults streams the subject's history as an xlsx attachment.
// GET /api/v1/subjects/:subject_id/results/export
func (h *ResultHandler) ExportResults(c *gin.Context) {
	subjectID := c.Param("subject_id")

	data, err := h.export.ExportResultsToExcel(c.Request.Context(), subjectID)
	if err != nil {
		h.RespondWithError(c, err, "Failed to export results")
		return
	}

	filename := fmt.Sprintf("screening_results_%s_%s.xlsx", subjectID, time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
