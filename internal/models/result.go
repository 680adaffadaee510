package models

import (
	"time"

	"gorm.io/datatypes"
)

type Interpretation string

const (
	InterpretationNormal   Interpretation = "Normal"
	InterpretationMild     Interpretation = "Mild Impairment"
	InterpretationModerate Interpretation = "Moderate"
	InterpretationSevere   Interpretation = "Severe"
)

// InterpretScore classifies a rescaled 0-30 total into its severity band.
// Band lower bounds are inclusive.
func InterpretScore(total int) Interpretation {
	switch {
	case total >= 24:
		return InterpretationNormal
	case total >= 18:
		return InterpretationMild
	case total >= 10:
		return InterpretationModerate
	default:
		return InterpretationSevere
	}
}

// SectionScore is one section subtotal in raw point units. Subtotals keep
// first-seen section order, so they are stored as a sequence, not a map.
type SectionScore struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// ScreeningResult is the persisted outcome of one completed session.
type ScreeningResult struct {
	ID             string                             `json:"id" gorm:"primaryKey;size:36"`
	SubjectID      string                             `json:"subject_id" gorm:"not null;size:64;index"`
	IssuerID       *string                            `json:"issuer_id" gorm:"size:64"`
	DateTaken      time.Time                          `json:"date_taken" gorm:"not null;index"`
	SectionScores  datatypes.JSONType[[]SectionScore] `json:"section_scores" gorm:"type:jsonb"`
	TotalScore     int                                `json:"total_score" gorm:"not null"`
	Interpretation Interpretation                     `json:"interpretation" gorm:"not null;size:32"`
	Notes          *string                            `json:"notes" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
}

func (ScreeningResult) TableName() string {
	return "screening_results"
}
