package models

import "time"

type ScheduleStatus string

const (
	SchedulePending   ScheduleStatus = "pending"
	ScheduleCompleted ScheduleStatus = "completed"
)

// Schedule is a previously booked test appointment. The engine only ever
// moves a schedule from pending to completed; it never creates or deletes
// one.
type Schedule struct {
	ID          string         `json:"id" gorm:"primaryKey;size:64"`
	SubjectID   string         `json:"subject_id" gorm:"not null;size:64;index"`
	IssuerID    *string        `json:"issuer_id" gorm:"size:64"`
	Status      ScheduleStatus `json:"status" gorm:"not null;default:pending;index"`
	ScheduledAt time.Time      `json:"scheduled_at" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Schedule) TableName() string {
	return "screening_schedules"
}
