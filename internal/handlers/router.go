package handlers

import (
	"github.com/alzcare/screening-service/internal/services"
	"github.com/alzcare/screening-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type HandlerManager struct {
	sessionHandler  *SessionHandler
	resultHandler   *ResultHandler
	scheduleHandler *ScheduleHandler
}

func NewHandlerManager(
	screening services.ScreeningService,
	schedules services.ScheduleService,
	export services.ExportService,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		sessionHandler:  NewSessionHandler(screening, logger),
		resultHandler:   NewResultHandler(screening, export, logger),
		scheduleHandler: NewScheduleHandler(schedules, logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", HealthCheck)

	v1 := router.Group("/api/v1")
	{
		sessions := v1.Group("/sessions")
		{
			sessions.POST("", hm.sessionHandler.StartSession)
			sessions.GET("/:id", hm.sessionHandler.GetSession)
			sessions.POST("/:id/next", hm.sessionHandler.Advance)
			sessions.POST("/:id/previous", hm.sessionHandler.StepBack)
		}

		subjects := v1.Group("/subjects")
		{
			subjects.GET("/:subject_id/results", hm.resultHandler.ListResults)
			subjects.GET("/:subject_id/results/export", hm.resultHandler.ExportResults)
			subjects.GET("/:subject_id/schedules/pending", hm.scheduleHandler.ListPending)
		}
	}
}
