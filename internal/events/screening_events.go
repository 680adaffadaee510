package events

import "time"

type EventType string

const (
	// EventScreeningCompleted is emitted once per scored session.
	EventScreeningCompleted EventType = "screening.completed"
)

// ScreeningEvent is the envelope published to the event stream when a
// session finishes. Consumers (caregiver notifications, reporting) read it
// downstream; the engine fires and forgets.
type ScreeningEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Source    string    `json:"source"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`

	SubjectID      string  `json:"subject_id"`
	IssuerID       *string `json:"issuer_id,omitempty"`
	ScheduleID     string  `json:"schedule_id,omitempty"`
	ResultID       string  `json:"result_id"`
	TotalScore     int     `json:"total_score"`
	Interpretation string  `json:"interpretation"`
}
