package models

import "strings"

type ItemType string

const (
	ItemText   ItemType = "text"
	ItemChoice ItemType = "multiple_choice"
	ItemDraw   ItemType = "drawing"
	ItemRecall ItemType = "recall"
	ItemImage  ItemType = "image"
)

const (
	// DefaultSection groups items that declare no section of their own.
	DefaultSection = "General"
	// CustomSection tags caregiver-authored items merged into the catalog.
	CustomSection = "Custom"

	// RecallDelimiter joins per-slot recall words into a single stored answer.
	// Empty slots are kept so slot position survives a round trip.
	RecallDelimiter = ","

	// DrawCompletedMarker is the stored answer for a drawing item whose
	// canvas held at least one mark at capture time.
	DrawCompletedMarker = "done"

	// AssetPrefix marks an image reference resolved from the bundled asset
	// set rather than a remote URL.
	AssetPrefix = "asset:"
)

// MapItemType maps a free-text type label from an item definition onto the
// closed ItemType set. Unrecognized labels fall back to text.
func MapItemType(label string) ItemType {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case string(ItemChoice):
		return ItemChoice
	case string(ItemDraw):
		return ItemDraw
	case string(ItemRecall):
		return ItemRecall
	case string(ItemImage):
		return ItemImage
	default:
		return ItemText
	}
}

// Item is one question in an assembled screening session. Only the fields
// relevant to Type are consulted during capture and scoring; the rest are
// ignored, not validated.
type Item struct {
	ID      string   `json:"id"`
	Section string   `json:"section"`
	Title   string   `json:"title"`
	Type    ItemType `json:"type"`
	Score   int      `json:"score"`

	// CHOICE
	Options       []string `json:"options,omitempty"`
	CorrectOption *string  `json:"correct_option,omitempty"`

	// RECALL
	ExpectedWords []string `json:"expected_words,omitempty"`

	// IMAGE
	ImageURL string `json:"image_url,omitempty"`

	// TEXT / IMAGE
	ExpectedAnswer  *string  `json:"expected_answer,omitempty"`
	AcceptedAnswers []string `json:"accepted_answers,omitempty"`
}

// Clone returns a deep copy so pipeline stages can rewrite items without
// touching their input.
func (it Item) Clone() Item {
	out := it
	out.Options = append([]string(nil), it.Options...)
	out.ExpectedWords = append([]string(nil), it.ExpectedWords...)
	out.AcceptedAnswers = append([]string(nil), it.AcceptedAnswers...)
	if it.CorrectOption != nil {
		v := *it.CorrectOption
		out.CorrectOption = &v
	}
	if it.ExpectedAnswer != nil {
		v := *it.ExpectedAnswer
		out.ExpectedAnswer = &v
	}
	return out
}

// CloneItems deep-copies an item list.
func CloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}

// AnswerRecord maps item id to the string-encoded raw answer captured for it.
// Revisiting an item overwrites its entry.
type AnswerRecord map[string]string

// Clone returns an independent copy of the record.
func (a AnswerRecord) Clone() AnswerRecord {
	out := make(AnswerRecord, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// ItemDefinition is the raw shape consumed from the static item source and
// the per-subject custom item store, before catalog defaults are applied.
// Field names follow the stored document format.
type ItemDefinition struct {
	ID              string   `json:"id"`
	Section         string   `json:"section"`
	Title           string   `json:"question"`
	Type            string   `json:"type"`
	Score           *int     `json:"score"`
	Options         []string `json:"options"`
	ExpectedWords   []string `json:"expectedWords"`
	ImageURL        string   `json:"imageUrl"`
	ExpectedAnswer  *string  `json:"expectedAnswer"`
	AcceptedAnswers []string `json:"acceptedAnswers"`
	CorrectOption   *string  `json:"correctOption"`
}
