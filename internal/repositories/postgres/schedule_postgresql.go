package postgres

import (
	"context"
	"fmt"

	"github.com/alzcare/screening-service/internal/models"
	"github.com/alzcare/screening-service/internal/repositories"
	"gorm.io/gorm"
)

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) repositories.ScheduleRepository {
	return &scheduleRepository{db: db}
}

// MarkCompleted performs the single targeted status transition. Only a
// pending record can move to completed; an already-completed or unknown
// schedule reports not found.
func (r *scheduleRepository) MarkCompleted(ctx context.Context, subjectID, scheduleID string) error {
	res := r.db.WithContext(ctx).
		Model(&models.Schedule{}).
		Where("id = ? AND subject_id = ? AND status = ?", scheduleID, subjectID, models.SchedulePending).
		Update("status", models.ScheduleCompleted)
	if res.Error != nil {
		return fmt.Errorf("failed to mark schedule completed: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *scheduleRepository) ListPending(ctx context.Context, subjectID string) ([]*models.Schedule, error) {
	var schedules []*models.Schedule
	err := r.db.WithContext(ctx).
		Where("subject_id = ? AND status = ?", subjectID, models.SchedulePending).
		Order("scheduled_at ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending schedules: %w", err)
	}
	return schedules, nil
}
