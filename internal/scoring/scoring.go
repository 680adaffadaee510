// Package scoring evaluates a completed answer record against the item list
// it was captured from. Scoring is pure and total: every answer-map shape,
// including missing or malformed entries, scores as the lowest-credit case
// for the item's type rather than failing.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/alzcare/screening-service/internal/models"
)

// RescaleTarget is the standardized scale every total is reported on.
const RescaleTarget = 30

// Result is the immutable outcome of scoring one session.
type Result struct {
	// SectionScores holds raw-unit subtotals in first-seen section order;
	// rescaling applies to the final total only.
	SectionScores []models.SectionScore
	RawTotal      int
	RawMax        int
	// TotalScore is the raw total rescaled onto 0-30.
	TotalScore     int
	Interpretation models.Interpretation
	// Feedback holds one descriptive line per item, in catalog order.
	Feedback []string
}

// Score computes per-item awarded points, section subtotals, the rescaled
// total, and the interpretation band for the given items and answers.
func Score(items []models.Item, answers models.AnswerRecord) *Result {
	res := &Result{}
	sectionIdx := make(map[string]int)

	for _, item := range items {
		answer := answers[item.ID]
		awarded, correct := scoreItem(item, answer)
		res.RawTotal += awarded
		res.RawMax += maxPoints(item)

		section := item.Section
		if section == "" {
			section = models.DefaultSection
		}
		i, seen := sectionIdx[section]
		if !seen {
			i = len(res.SectionScores)
			sectionIdx[section] = i
			res.SectionScores = append(res.SectionScores, models.SectionScore{Name: section})
		}
		res.SectionScores[i].Points += awarded

		label := "Incorrect"
		if correct {
			label = "Correct"
		}
		res.Feedback = append(res.Feedback, fmt.Sprintf("%s — %s (+%d)", item.Title, label, awarded))
	}

	res.TotalScore = rescale(res.RawTotal, res.RawMax)
	res.Interpretation = models.InterpretScore(res.TotalScore)
	return res
}

// scoreItem dispatches on the closed item type set and returns the awarded
// points and the correctness used for the feedback label.
func scoreItem(item models.Item, answer string) (awarded int, correct bool) {
	normalized := normalize(answer)

	switch item.Type {
	case models.ItemText, models.ItemImage:
		switch {
		case item.ExpectedAnswer != nil && *item.ExpectedAnswer != "":
			correct = normalized == normalize(*item.ExpectedAnswer)
		case item.AcceptedAnswers != nil:
			for _, accepted := range item.AcceptedAnswers {
				if normalized == normalize(accepted) {
					correct = true
					break
				}
			}
		default:
			correct = normalized != ""
		}
		if correct {
			awarded = item.Score
		}

	case models.ItemChoice:
		if item.CorrectOption != nil && *item.CorrectOption != "" {
			correct = normalized == normalize(*item.CorrectOption)
		} else {
			correct = normalized != ""
		}
		if correct {
			awarded = item.Score
		}

	case models.ItemRecall:
		nonEmpty := 0
		if answer != "" {
			for _, slot := range strings.Split(answer, models.RecallDelimiter) {
				if strings.TrimSpace(slot) != "" {
					nonEmpty++
				}
			}
		}
		awarded = min(nonEmpty, maxPoints(item))
		// Partial credit never reads as fully correct in the feedback line.
		correct = awarded == item.Score

	case models.ItemDraw:
		correct = answer == models.DrawCompletedMarker
		if correct {
			awarded = item.Score
		}
	}

	return awarded, correct
}

// maxPoints is the raw-maximum contribution of one item; a declared score
// below one still counts for one.
func maxPoints(item models.Item) int {
	if item.Score < 1 {
		return 1
	}
	return item.Score
}

// rescale maps the raw total onto the 0-30 scale, rounding half away from
// zero. A raw maximum that already equals 30, or an empty catalog, is used
// unscaled.
func rescale(raw, rawMax int) int {
	if rawMax <= 0 || rawMax == RescaleTarget {
		return raw
	}
	return int(math.Round(float64(raw) / float64(rawMax) * RescaleTarget))
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
