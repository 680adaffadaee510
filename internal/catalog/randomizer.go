package catalog

import (
	"math/rand"
	"strings"

	"github.com/alzcare/screening-service/internal/models"
)

// DefaultImageVariants is the bundled naming-image set one of which is
// assigned to image items that do not reference a remote picture.
var DefaultImageVariants = []string{
	models.AssetPrefix + "clock",
	models.AssetPrefix + "phone",
	models.AssetPrefix + "person",
}

const defaultImageRef = models.AssetPrefix + "default"

// Randomizer applies the per-session item-level non-determinism: recall word
// order is shuffled and naming images are drawn from the variant set. It is
// a pure transform; callers run it once per session, after template
// resolution.
type Randomizer struct {
	rng      *rand.Rand
	variants []string
}

func NewRandomizer(rng *rand.Rand) *Randomizer {
	return &Randomizer{rng: rng, variants: DefaultImageVariants}
}

// NewRandomizerWithVariants overrides the naming-image variant set.
func NewRandomizerWithVariants(rng *rand.Rand, variants []string) *Randomizer {
	return &Randomizer{rng: rng, variants: variants}
}

// Apply returns a new item list with recall words shuffled and image
// references assigned. Shuffling changes slot presentation order only; the
// scored word count is untouched. Image items keeping a remote URL are left
// alone; absent or asset-prefixed references are reassigned from the variant
// set, or to a single default reference when the set is empty.
func (r *Randomizer) Apply(items []models.Item) []models.Item {
	out := models.CloneItems(items)
	for i := range out {
		switch out[i].Type {
		case models.ItemRecall:
			if len(out[i].ExpectedWords) > 1 {
				r.rng.Shuffle(len(out[i].ExpectedWords), func(a, b int) {
					words := out[i].ExpectedWords
					words[a], words[b] = words[b], words[a]
				})
			}
		case models.ItemImage:
			if out[i].ImageURL == "" || strings.HasPrefix(out[i].ImageURL, models.AssetPrefix) {
				if len(r.variants) > 0 {
					out[i].ImageURL = r.variants[r.rng.Intn(len(r.variants))]
				} else {
					out[i].ImageURL = defaultImageRef
				}
			}
		}
	}
	return out
}
