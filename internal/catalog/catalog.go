package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/alzcare/screening-service/internal/models"
	"github.com/alzcare/screening-service/internal/utils"
)

// ErrCustomFetch marks a failed custom item fetch. Assembly still returns
// the best-effort static-only list alongside it.
var ErrCustomFetch = errors.New("custom item fetch failed")

// StaticSource yields the bundled, ordered item definition set.
type StaticSource interface {
	Definitions() ([]models.ItemDefinition, error)
}

// CustomItemStore yields caregiver-authored item definitions for a subject.
type CustomItemStore interface {
	FindBySubject(ctx context.Context, subjectID string) ([]models.ItemDefinition, error)
}

// Catalog assembles the ordered item list for a session: the static set
// first, in declared order, then the subject's custom items.
type Catalog struct {
	static StaticSource
	custom CustomItemStore
	logger utils.Logger
}

func New(static StaticSource, custom CustomItemStore, logger utils.Logger) *Catalog {
	return &Catalog{
		static: static,
		custom: custom,
		logger: logger,
	}
}

// Assemble builds the merged item list for subjectID. A failing custom fetch
// degrades to the static-only list and is reported through a wrapped
// ErrCustomFetch next to that list, never instead of it. An empty subject id
// skips the custom fetch entirely. Assemble never injects a fallback item;
// an empty result is the caller's to handle, exactly once, after the merge.
func (c *Catalog) Assemble(ctx context.Context, subjectID string) ([]models.Item, error) {
	items := c.staticItems()

	if subjectID == "" {
		return items, nil
	}

	defs, err := c.custom.FindBySubject(ctx, subjectID)
	if err != nil {
		c.logger.Warn("custom item fetch failed, continuing with static catalog",
			"subject_id", subjectID,
			"error", err)
		return items, fmt.Errorf("%w: %v", ErrCustomFetch, err)
	}

	for _, def := range defs {
		item := fromDefinition(def, len(items))
		item.Section = models.CustomSection
		items = append(items, item)
	}
	return items, nil
}

func (c *Catalog) staticItems() []models.Item {
	defs, err := c.static.Definitions()
	if err != nil {
		c.logger.Error("failed to load static item definitions", "error", err)
		return nil
	}

	items := make([]models.Item, 0, len(defs))
	for i, def := range defs {
		items = append(items, fromDefinition(def, i))
	}
	return items
}

// fromDefinition applies the catalog defaults: a positional id, the General
// section, a score of 1, and the type label lookup.
func fromDefinition(def models.ItemDefinition, index int) models.Item {
	id := def.ID
	if id == "" {
		id = "q" + strconv.Itoa(index)
	}
	section := def.Section
	if section == "" {
		section = models.DefaultSection
	}
	score := 1
	if def.Score != nil && *def.Score > 0 {
		score = *def.Score
	}
	return models.Item{
		ID:              id,
		Section:         section,
		Title:           def.Title,
		Type:            models.MapItemType(def.Type),
		Score:           score,
		Options:         append([]string(nil), def.Options...),
		CorrectOption:   def.CorrectOption,
		ExpectedWords:   append([]string(nil), def.ExpectedWords...),
		ImageURL:        def.ImageURL,
		ExpectedAnswer:  def.ExpectedAnswer,
		AcceptedAnswers: append([]string(nil), def.AcceptedAnswers...),
	}
}

// FallbackItem is the single item substituted by session assembly when the
// merged catalog comes back empty, so a session can never be item-less.
func FallbackItem() models.Item {
	return models.Item{
		ID:      "q1",
		Section: models.DefaultSection,
		Title:   "What is today's date?",
		Type:    models.ItemText,
		Score:   1,
	}
}
