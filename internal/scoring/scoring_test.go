package scoring

import (
	"fmt"
	"strings"
	"testing"

	"github.com/alzcare/screening-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

// fullCatalog sums to a raw maximum of exactly 30, so totals pass through
// rescaling unchanged.
func fullCatalog() []models.Item {
	return []models.Item{
		{ID: "q0", Section: "Orientation", Title: "What is the capital of France?", Type: models.ItemText, Score: 10, ExpectedAnswer: strPtr("Paris")},
		{ID: "q1", Section: "Registration", Title: "Repeat the three words", Type: models.ItemRecall, Score: 3, ExpectedWords: []string{"apple", "table", "penny"}},
		{ID: "q2", Section: "Attention", Title: "100 minus 7", Type: models.ItemChoice, Score: 5, Options: []string{"93", "97", "83"}, CorrectOption: strPtr("93")},
		{ID: "q3", Section: "Language", Title: "Name this object", Type: models.ItemImage, Score: 2, AcceptedAnswers: []string{"clock", "watch"}},
		{ID: "q4", Section: "Language", Title: "Write a sentence", Type: models.ItemText, Score: 9},
		{ID: "q5", Section: "Construction", Title: "Copy the shape", Type: models.ItemDraw, Score: 1},
	}
}

func TestScore_TypicalSession(t *testing.T) {
	answers := models.AnswerRecord{
		"q0": "paris",
		"q1": "apple,,penny",
		"q2": "93",
		"q3": "WATCH",
		"q4": "The sky is blue today",
		"q5": "done",
	}

	res := Score(fullCatalog(), answers)

	assert.Equal(t, 29, res.RawTotal)
	assert.Equal(t, 30, res.RawMax)
	assert.Equal(t, 29, res.TotalScore)
	assert.Equal(t, models.InterpretationNormal, res.Interpretation)

	require.Len(t, res.Feedback, 6)
	assert.Equal(t, "What is the capital of France? — Correct (+10)", res.Feedback[0])
	assert.Equal(t, "Repeat the three words — Incorrect (+2)", res.Feedback[1])
	assert.Equal(t, "Copy the shape — Correct (+1)", res.Feedback[5])
}

func TestScore_SectionSubtotalsKeepFirstSeenOrder(t *testing.T) {
	answers := models.AnswerRecord{
		"q0": "Paris",
		"q3": "clock",
		"q4": "hello",
	}

	res := Score(fullCatalog(), answers)

	names := make([]string, 0, len(res.SectionScores))
	for _, sec := range res.SectionScores {
		names = append(names, sec.Name)
	}
	assert.Equal(t, []string{"Orientation", "Registration", "Attention", "Language", "Construction"}, names)

	// Both Language items fold into one subtotal.
	assert.Equal(t, models.SectionScore{Name: "Language", Points: 11}, res.SectionScores[3])
	assert.Equal(t, models.SectionScore{Name: "Registration", Points: 0}, res.SectionScores[1])
}

func TestScore_MissingSectionFallsBackToGeneral(t *testing.T) {
	items := []models.Item{
		{ID: "q0", Title: "Untagged", Type: models.ItemText, Score: 1},
	}
	res := Score(items, models.AnswerRecord{"q0": "yes"})

	require.Len(t, res.SectionScores, 1)
	assert.Equal(t, models.DefaultSection, res.SectionScores[0].Name)
}

func TestScore_TextMatchingIsCaseAndSpaceInsensitive(t *testing.T) {
	items := []models.Item{
		{ID: "q0", Title: "Capital", Type: models.ItemText, Score: 2, ExpectedAnswer: strPtr("Paris")},
	}

	for _, answer := range []string{"Paris", "paris", "  PARIS  "} {
		res := Score(items, models.AnswerRecord{"q0": answer})
		assert.Equal(t, 2, res.RawTotal, "answer %q", answer)
	}

	res := Score(items, models.AnswerRecord{"q0": "Lyon"})
	assert.Equal(t, 0, res.RawTotal)
}

func TestScore_TextWithoutKeyAwardsAnyNonEmptyAnswer(t *testing.T) {
	items := []models.Item{
		{ID: "q0", Title: "Free response", Type: models.ItemText, Score: 3},
	}

	assert.Equal(t, 3, Score(items, models.AnswerRecord{"q0": "anything"}).RawTotal)
	assert.Equal(t, 0, Score(items, models.AnswerRecord{"q0": "   "}).RawTotal)
	assert.Equal(t, 0, Score(items, models.AnswerRecord{}).RawTotal)
}

func TestScore_ChoiceWithoutKey(t *testing.T) {
	items := []models.Item{
		{ID: "q0", Title: "Pick one", Type: models.ItemChoice, Score: 2, Options: []string{"a", "b"}},
	}

	res := Score(items, models.AnswerRecord{})
	assert.Equal(t, 0, res.RawTotal)
	assert.Contains(t, res.Feedback[0], "Incorrect (+0)")

	res = Score(items, models.AnswerRecord{"q0": "b"})
	assert.Equal(t, 2, res.RawTotal)
}

func TestScore_RecallPartialCreditIsMonotonicAndCapped(t *testing.T) {
	items := []models.Item{
		{ID: "q0", Title: "Recall", Type: models.ItemRecall, Score: 3, ExpectedWords: []string{"apple", "table", "penny"}},
	}

	answers := []string{
		"",
		"apple,,",
		"apple,table,",
		"apple,table,penny",
		"apple,table,penny,extra",
	}
	prev := -1
	for i, answer := range answers {
		res := Score(items, models.AnswerRecord{"q0": answer})
		want := i
		if want > 3 {
			want = 3
		}
		assert.Equal(t, want, res.RawTotal, "answer %q", answer)
		assert.GreaterOrEqual(t, res.RawTotal, prev)
		prev = res.RawTotal
	}
}

func TestScore_RecallCountsFilledSlotsNotWordAccuracy(t *testing.T) {
	items := []models.Item{
		{ID: "q0", Title: "Recall", Type: models.ItemRecall, Score: 3, ExpectedWords: []string{"apple", "table", "penny"}},
	}

	// Slot content is not compared against the expected words.
	res := Score(items, models.AnswerRecord{"q0": "wrong, words ,here"})
	assert.Equal(t, 3, res.RawTotal)
	assert.Contains(t, res.Feedback[0], "Correct (+3)")
}

func TestScore_DrawOnlyAwardsCompletionMarker(t *testing.T) {
	items := []models.Item{
		{ID: "q0", Title: "Copy", Type: models.ItemDraw, Score: 1},
	}

	assert.Equal(t, 1, Score(items, models.AnswerRecord{"q0": "done"}).RawTotal)
	assert.Equal(t, 0, Score(items, models.AnswerRecord{"q0": ""}).RawTotal)
	assert.Equal(t, 0, Score(items, models.AnswerRecord{"q0": "Done"}).RawTotal)
}

func TestScore_RescaleRoundsHalfAwayFromZero(t *testing.T) {
	// One slot of four filled: 1/4 of 30 is 7.5, which rounds up to 8.
	items := []models.Item{
		{ID: "q0", Title: "Recall", Type: models.ItemRecall, Score: 4, ExpectedWords: []string{"a", "b", "c", "d"}},
	}

	res := Score(items, models.AnswerRecord{"q0": "a,,,"})
	assert.Equal(t, 1, res.RawTotal)
	assert.Equal(t, 4, res.RawMax)
	assert.Equal(t, 8, res.TotalScore)
}

func TestScore_RawMaxOfThirtyIsUsedUnscaled(t *testing.T) {
	res := Score(fullCatalog(), models.AnswerRecord{"q1": "apple,table,"})
	assert.Equal(t, 30, res.RawMax)
	assert.Equal(t, res.RawTotal, res.TotalScore)
}

func TestScore_EmptyCatalogScoresZero(t *testing.T) {
	res := Score(nil, models.AnswerRecord{})
	assert.Equal(t, 0, res.TotalScore)
	assert.Equal(t, models.InterpretationSevere, res.Interpretation)
	assert.Empty(t, res.SectionScores)
}

func TestScore_ZeroDeclaredScoreStillCountsOnePoint(t *testing.T) {
	items := []models.Item{
		{ID: "q0", Title: "Unweighted", Type: models.ItemText, Score: 0},
		{ID: "q1", Title: "Weighted", Type: models.ItemText, Score: 29},
	}
	res := Score(items, models.AnswerRecord{"q1": "x"})
	assert.Equal(t, 30, res.RawMax)
	assert.Equal(t, 29, res.TotalScore)
}

func TestInterpretScore_BandsPartitionTheScale(t *testing.T) {
	for total := 0; total <= 30; total++ {
		want := models.InterpretationSevere
		switch {
		case total >= 24:
			want = models.InterpretationNormal
		case total >= 18:
			want = models.InterpretationMild
		case total >= 10:
			want = models.InterpretationModerate
		}
		assert.Equal(t, want, models.InterpretScore(total), "total %d", total)
	}
}

func TestScore_FeedbackCoversEveryItemInCatalogOrder(t *testing.T) {
	items := fullCatalog()
	res := Score(items, models.AnswerRecord{})

	require.Len(t, res.Feedback, len(items))
	for i, item := range items {
		assert.True(t, strings.HasPrefix(res.Feedback[i], item.Title), fmt.Sprintf("feedback %d", i))
	}
}
