package session

import (
	"strings"
	"sync"
	"time"

	"github.com/alzcare/screening-service/internal/models"
)

// Input carries the active input state for the current item at the moment of
// a navigation step. Only the field matching the item's type is consulted.
type Input struct {
	// TEXT / IMAGE free text.
	Text *string `json:"text,omitempty"`
	// CHOICE: literal text of the selected option, nil when none selected.
	SelectedOption *string `json:"selected_option,omitempty"`
	// RECALL: one value per slot, empties included.
	Slots []string `json:"slots,omitempty"`
	// DRAW: whether the canvas holds any mark.
	CanvasMarked *bool `json:"canvas_marked,omitempty"`
}

// Session walks a test-taker through an assembled item list one item at a
// time, capturing answers as it goes. The item list is immutable after
// assembly; a session is owned by a single flow and discarded after scoring.
type Session struct {
	mu sync.Mutex

	ID         string
	SubjectID  string
	IssuerID   *string
	ScheduleID string
	CreatedAt  time.Time

	items     []models.Item
	answers   models.AnswerRecord
	index     int
	completed bool
}

func New(id, subjectID, scheduleID string, issuerID *string, items []models.Item) *Session {
	return &Session{
		ID:         id,
		SubjectID:  subjectID,
		IssuerID:   issuerID,
		ScheduleID: scheduleID,
		CreatedAt:  time.Now(),
		items:      items,
		answers:    make(models.AnswerRecord),
	}
}

// Len returns the item count.
func (s *Session) Len() int {
	return len(s.items)
}

// Index returns the current position.
func (s *Session) Index() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// Completed reports whether the session reached its terminal state.
func (s *Session) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed
}

// Current returns the item at the current position.
func (s *Session) Current() models.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items[s.index].Clone()
}

// Next captures the current input and advances. On the last item it moves
// the session to its terminal state instead and reports done=true; scoring
// is the caller's next step. A completed session is inert.
func (s *Session) Next(in Input) (done bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.completed {
		return true
	}
	s.capture(in)
	if s.index < len(s.items)-1 {
		s.index++
		return false
	}
	s.completed = true
	return true
}

// Previous captures the current input and steps back. A no-op at the first
// item and after completion.
func (s *Session) Previous(in Input) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.completed {
		return
	}
	s.capture(in)
	if s.index > 0 {
		s.index--
	}
}

// Restore decodes the stored answer for the current item back into input
// form so the caller can re-populate the active input. Drawing input is not
// restorable: DRAW always comes back as a cleared canvas, only the
// completion marker is remembered for scoring.
func (s *Session) Restore() Input {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.items[s.index]
	stored, ok := s.answers[item.ID]

	switch item.Type {
	case models.ItemChoice:
		if !ok || stored == "" {
			return Input{}
		}
		for _, opt := range item.Options {
			if opt == stored {
				return Input{SelectedOption: &opt}
			}
		}
		return Input{}
	case models.ItemRecall:
		slots := make([]string, recallSlotCount(item))
		if ok {
			for i, part := range strings.Split(stored, models.RecallDelimiter) {
				if i >= len(slots) {
					break
				}
				slots[i] = part
			}
		}
		return Input{Slots: slots}
	case models.ItemDraw:
		cleared := false
		return Input{CanvasMarked: &cleared}
	default: // TEXT, IMAGE
		text := ""
		if ok {
			text = stored
		}
		return Input{Text: &text}
	}
}

// Snapshot hands out independent copies of the item list and answer record
// for scoring.
func (s *Session) Snapshot() ([]models.Item, models.AnswerRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CloneItems(s.items), s.answers.Clone()
}

// capture encodes the input into the answer record per the current item's
// type. Revisits overwrite, never append. Callers hold s.mu.
func (s *Session) capture(in Input) {
	item := s.items[s.index]
	switch item.Type {
	case models.ItemText, models.ItemImage:
		text := ""
		if in.Text != nil {
			text = *in.Text
		}
		s.answers[item.ID] = strings.TrimSpace(text)
	case models.ItemChoice:
		// Nothing selected leaves any prior answer in place.
		if in.SelectedOption != nil {
			s.answers[item.ID] = *in.SelectedOption
		}
	case models.ItemRecall:
		slots := make([]string, recallSlotCount(item))
		for i := range slots {
			if i < len(in.Slots) {
				slots[i] = strings.TrimSpace(in.Slots[i])
			}
		}
		s.answers[item.ID] = strings.Join(slots, models.RecallDelimiter)
	case models.ItemDraw:
		marker := ""
		if in.CanvasMarked != nil && *in.CanvasMarked {
			marker = models.DrawCompletedMarker
		}
		s.answers[item.ID] = marker
	}
}

// recallSlotCount is the number of input slots a recall item presents; three
// when the item does not spell out its words.
func recallSlotCount(item models.Item) int {
	if len(item.ExpectedWords) > 0 {
		return len(item.ExpectedWords)
	}
	return 3
}
