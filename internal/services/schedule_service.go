package services

import (
	"context"
	"fmt"

	"github.com/alzcare/screening-service/internal/models"
	"github.com/alzcare/screening-service/internal/repositories"
	"github.com/alzcare/screening-service/internal/utils"
)

// ScheduleService reconciles test appointments with completed sessions.
type ScheduleService interface {
	// OnSessionCompleted marks the originating appointment completed.
	// An empty scheduleID means the session was an ad-hoc self-test and
	// this is a no-op. Fire-and-forget: failures are logged, never
	// returned, and never invalidate the scoring result.
	OnSessionCompleted(ctx context.Context, subjectID, scheduleID string)

	ListPending(ctx context.Context, subjectID string) ([]*models.Schedule, error)
}

type scheduleService struct {
	repo   repositories.ScheduleRepository
	logger utils.Logger
}

func NewScheduleService(repo repositories.ScheduleRepository, logger utils.Logger) ScheduleService {
	return &scheduleService{
		repo:   repo,
		logger: logger,
	}
}

func (s *scheduleService) OnSessionCompleted(ctx context.Context, subjectID, scheduleID string) {
	if scheduleID == "" {
		return
	}
	if err := s.repo.MarkCompleted(ctx, subjectID, scheduleID); err != nil {
		s.logger.LogError(err, ErrScheduleUpdate.Error(),
			"subject_id", subjectID,
			"schedule_id", scheduleID)
		return
	}
	s.logger.Info("Schedule marked completed",
		"subject_id", subjectID,
		"schedule_id", scheduleID)
}

func (s *scheduleService) ListPending(ctx context.Context, subjectID string) ([]*models.Schedule, error) {
	schedules, err := s.repo.ListPending(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending schedules: %w", err)
	}
	return schedules, nil
}
