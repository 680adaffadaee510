package repositories

import (
	"context"
	"errors"

	"github.com/alzcare/screening-service/internal/models"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a targeted read or update matches nothing.
var ErrNotFound = errors.New("record not found")

// IsNotFoundError checks for a "not found" condition from any repository.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}

// ResultRepository persists completed screening results.
type ResultRepository interface {
	Save(ctx context.Context, result *models.ScreeningResult) error
	ListBySubject(ctx context.Context, subjectID string) ([]*models.ScreeningResult, error)
}

// ScheduleRepository reconciles test appointments. The engine performs a
// single targeted pending-to-completed update and read-only listings; it
// never creates or deletes schedule records.
type ScheduleRepository interface {
	MarkCompleted(ctx context.Context, subjectID, scheduleID string) error
	ListPending(ctx context.Context, subjectID string) ([]*models.Schedule, error)
}

// CustomItemRepository fetches caregiver-authored item definitions for a
// subject from the remote document store.
type CustomItemRepository interface {
	FindBySubject(ctx context.Context, subjectID string) ([]models.ItemDefinition, error)
}
