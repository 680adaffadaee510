package catalog

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/alzcare/screening-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomizer_ShufflePreservesRecallWordSet(t *testing.T) {
	items := []models.Item{
		{ID: "q0", Type: models.ItemRecall, Score: 3, ExpectedWords: []string{"apple", "table", "penny"}},
	}
	r := NewRandomizer(rand.New(rand.NewSource(42)))

	out := r.Apply(items)
	require.Len(t, out, 1)
	assert.Equal(t, 3, out[0].Score)

	got := append([]string(nil), out[0].ExpectedWords...)
	sort.Strings(got)
	assert.Equal(t, []string{"apple", "penny", "table"}, got)

	// Input order survives, the transform clones.
	assert.Equal(t, []string{"apple", "table", "penny"}, items[0].ExpectedWords)
}

func TestRandomizer_SingleWordRecallIsLeftAlone(t *testing.T) {
	items := []models.Item{
		{ID: "q0", Type: models.ItemRecall, ExpectedWords: []string{"apple"}},
	}
	out := NewRandomizer(rand.New(rand.NewSource(1))).Apply(items)
	assert.Equal(t, []string{"apple"}, out[0].ExpectedWords)
}

func TestRandomizer_AssignsVariantToAssetImages(t *testing.T) {
	items := []models.Item{
		{ID: "q0", Type: models.ItemImage},
		{ID: "q1", Type: models.ItemImage, ImageURL: "asset:default"},
		{ID: "q2", Type: models.ItemImage, ImageURL: "https://example.com/cat.png"},
	}
	r := NewRandomizer(rand.New(rand.NewSource(7)))

	out := r.Apply(items)
	assert.Contains(t, DefaultImageVariants, out[0].ImageURL)
	assert.Contains(t, DefaultImageVariants, out[1].ImageURL)
	// Remote URLs are never reassigned.
	assert.Equal(t, "https://example.com/cat.png", out[2].ImageURL)
}

func TestRandomizer_EmptyVariantSetUsesDefaultReference(t *testing.T) {
	items := []models.Item{
		{ID: "q0", Type: models.ItemImage},
	}
	r := NewRandomizerWithVariants(rand.New(rand.NewSource(7)), nil)

	out := r.Apply(items)
	assert.Equal(t, "asset:default", out[0].ImageURL)
}

func TestRandomizer_NonRandomizedTypesPassThrough(t *testing.T) {
	items := []models.Item{
		{ID: "q0", Type: models.ItemText, Title: "Capital"},
		{ID: "q1", Type: models.ItemChoice, Options: []string{"a", "b"}},
		{ID: "q2", Type: models.ItemDraw},
	}
	out := NewRandomizer(rand.New(rand.NewSource(3))).Apply(items)
	assert.Equal(t, items, out)
}
