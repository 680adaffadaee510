package services

import (
	"errors"

	"github.com/alzcare/screening-service/internal/catalog"
	"github.com/alzcare/screening-service/internal/session"
)

// ===== COMMON SERVICE ERRORS =====

var (
	ErrValidationFailed = errors.New("validation failed")
	ErrInternalError    = errors.New("internal server error")

	// Session specific errors
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionCompleted = errors.New("session already completed")

	// Catalog specific errors
	ErrEmptyCatalog = errors.New("assembled catalog is empty")

	// Outcome specific errors
	ErrPersistence    = errors.New("result persistence failed")
	ErrScheduleUpdate = errors.New("schedule update failed")
)

// IsNotFound checks if error represents a "not found" condition.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrSessionNotFound) || errors.Is(err, session.ErrNotFound)
}

// IsCatalogFetch checks if error represents a degraded custom item fetch.
func IsCatalogFetch(err error) bool {
	return errors.Is(err, catalog.ErrCustomFetch)
}

// IsValidation checks if error represents a validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidationFailed)
}
