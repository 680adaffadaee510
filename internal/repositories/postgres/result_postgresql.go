package postgres

import (
	"context"
	"fmt"

	"github.com/alzcare/screening-service/internal/models"
	"github.com/alzcare/screening-service/internal/repositories"
	"gorm.io/gorm"
)

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) repositories.ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Save(ctx context.Context, result *models.ScreeningResult) error {
	if err := r.db.WithContext(ctx).Create(result).Error; err != nil {
		return fmt.Errorf("failed to save screening result: %w", err)
	}
	return nil
}

func (r *resultRepository) ListBySubject(ctx context.Context, subjectID string) ([]*models.ScreeningResult, error) {
	var results []*models.ScreeningResult
	err := r.db.WithContext(ctx).
		Where("subject_id = ?", subjectID).
		Order("date_taken DESC").
		Find(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list screening results: %w", err)
	}
	return results, nil
}
