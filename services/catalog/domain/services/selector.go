package services

import (
	"math/rand/v2"
	"slices"
	"sort"

	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/domain/models"
)

// DefaultHalfPairProbability is the chance that mode=random prefers a half pair.
const DefaultHalfPairProbability = 0.5

// seedStream is the fixed PCG stream used for seeded generators so a given
// seed always maps to the same sequence.
const seedStream = 0x9e3779b97f4a7c15

// Filter narrows the approved catalog before pools are built.
// Empty slices mean "no constraint".
type Filter struct {
	IncludeCategories []models.Category
	ExcludeCategories []models.Category
	ExcludeIDs        []int64
}

// Selection describes one draw request.
type Selection struct {
	Mode                models.Mode
	HalfPairProbability float64
	Seed                *int64
	Filter              Filter
}

// NewRand returns a request-local generator. A non-nil seed makes every draw
// reproducible; otherwise the generator is seeded from the runtime source.
func NewRand(seed *int64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewPCG(uint64(*seed), seedStream))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Select builds pools from items and resolves sel.Mode against them.
// items must be approved and in a stable order (id ascending) for seeded
// draws to be reproducible.
func Select(items []*models.Item, sel Selection) models.Choice {
	full, half := BuildPools(items, sel.Filter)
	return Resolve(NewRand(sel.Seed), full, half, sel.Mode, sel.HalfPairProbability)
}

// BuildPools applies f and partitions the survivors into full and half pools,
// preserving input order.
func BuildPools(items []*models.Item, f Filter) (full, half []*models.Item) {
	for _, it := range items {
		if len(f.IncludeCategories) > 0 && !slices.Contains(f.IncludeCategories, it.Category) {
			continue
		}
		if slices.Contains(f.ExcludeCategories, it.Category) {
			continue
		}
		if slices.Contains(f.ExcludeIDs, it.ID) {
			continue
		}
		if it.IsHalf {
			half = append(half, it)
		} else {
			full = append(full, it)
		}
	}
	return full, half
}

// Resolve picks according to mode. It never fails: an impossible draw yields
// an empty Choice with an explanatory text.
//
// In random mode the coin is always flipped first, then the draw(s) follow,
// so a seed fixes the whole sequence.
func Resolve(rng *rand.Rand, full, half []*models.Item, mode models.Mode, halfPairProbability float64) models.Choice {
	switch mode {
	case models.ModeFull:
		if len(full) == 0 {
			return emptyChoice(models.ChoiceFull, "No full items available.")
		}
		return fullChoice(WeightedPick(rng, full))

	case models.ModeHalfPair:
		if len(half) < 2 {
			return emptyChoice(models.ChoiceHalfPair, "Not enough half items.")
		}
		a, b, _ := WeightedPair(rng, half)
		return pairChoice(a, b)
	}

	preferHalf := rng.Float64() < halfPairProbability
	if preferHalf && len(half) >= 2 {
		a, b, _ := WeightedPair(rng, half)
		return pairChoice(a, b)
	}
	if len(full) > 0 {
		return fullChoice(WeightedPick(rng, full))
	}
	if len(half) >= 2 {
		a, b, _ := WeightedPair(rng, half)
		return pairChoice(a, b)
	}
	return emptyChoice(models.ChoiceFull, "No items available.")
}

// WeightedPick draws one item with probability proportional to its weight
// using cumulative-weight inverse-transform sampling. It consumes exactly one
// value from rng. pool must be non-empty.
func WeightedPick(rng *rand.Rand, pool []*models.Item) *models.Item {
	cumulative := make([]float64, len(pool))
	total := 0.0
	for i, it := range pool {
		if it.Weight > 0 {
			total += it.Weight
		}
		cumulative[i] = total
	}

	u := rng.Float64()
	if total <= 0 {
		return pool[int(u*float64(len(pool)))]
	}

	target := u * total
	i := sort.Search(len(cumulative), func(i int) bool { return cumulative[i] > target })
	if i == len(cumulative) {
		i = len(cumulative) - 1
	}
	return pool[i]
}

// WeightedPair draws two distinct items: one weighted pick, then a second
// weighted pick over the remaining items with weights re-normalized.
// ok is false when the pool has fewer than two items.
func WeightedPair(rng *rand.Rand, pool []*models.Item) (first, second *models.Item, ok bool) {
	if len(pool) < 2 {
		return nil, nil, false
	}
	first = WeightedPick(rng, pool)

	remaining := make([]*models.Item, 0, len(pool)-1)
	for _, it := range pool {
		if it != first {
			remaining = append(remaining, it)
		}
	}
	second = WeightedPick(rng, remaining)
	return first, second, true
}

func fullChoice(it *models.Item) models.Choice {
	return models.Choice{
		Type:  models.ChoiceFull,
		Items: []models.PublicItem{it.Public()},
		Text:  "Today's hard thing: " + it.Name.String(),
	}
}

func pairChoice(a, b *models.Item) models.Choice {
	return models.Choice{
		Type:  models.ChoiceHalfPair,
		Items: []models.PublicItem{a.Public(), b.Public()},
		Text:  "Today's hard thing (do BOTH): " + a.Name.String() + " + " + b.Name.String(),
	}
}

func emptyChoice(t models.ChoiceType, text string) models.Choice {
	return models.Choice{Type: t, Items: []models.PublicItem{}, Text: text}
}
