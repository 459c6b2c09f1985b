package planner

import (
	"fmt"
	"math/rand/v2"

	"github.com/alexanderramin/pawplan/internal/catalog"
	"github.com/alexanderramin/pawplan/internal/domain"
)

// WeekDays is the fixed planning horizon.
const WeekDays = 7

// fruitSeedOffset decorrelates the topper draw from the rotation draw.
const fruitSeedOffset = 7

const (
	minTasteWeight  = 0.25
	tasteWeightBase = 0.25
)

// Pools holds per-category candidate lists in priority order.
type Pools struct {
	Meats []string
	Vegs  []string
	Carbs []string
}

// RotationRequest carries everything the selector needs.
type RotationRequest struct {
	Pantry          Pools
	AllowExpansion  bool
	Recommendations catalog.Recommendations
	Preferences     PreferenceMaps
	UsePreferences  bool
	Seed            int64
}

// NewRand returns the deterministic generator used for a seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// BuildPools assembles candidate pools. With expansion the pool is the
// first-seen union of pantry, recommendations and the full catalog
// category; without it the pantry is used, or the full category when the
// pantry is empty.
func BuildPools(pantry Pools, allowExpansion bool, recs catalog.Recommendations) Pools {
	build := func(p []string, cat domain.Category) []string {
		all := catalog.NamesIn(cat)
		if allowExpansion {
			return unionOrdered(p, recs[cat], all)
		}
		if len(p) > 0 {
			return append([]string(nil), p...)
		}
		return all
	}
	return Pools{
		Meats: build(pantry.Meats, domain.CategoryMeat),
		Vegs:  build(pantry.Vegs, domain.CategoryVeg),
		Carbs: build(pantry.Carbs, domain.CategoryCarb),
	}
}

func unionOrdered(lists ...[]string) []string {
	seen := map[string]bool{}
	var out []string
	for _, l := range lists {
		for _, n := range l {
			if seen[n] {
				continue
			}
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}

// GenerateWeeklyRotation builds pools for req and selects a 7-day rotation.
// The same request always yields the same rotation.
func GenerateWeeklyRotation(req RotationRequest) ([]domain.Combo, error) {
	pools := BuildPools(req.Pantry, req.AllowExpansion, req.Recommendations)
	return SelectRotation(pools, req.Preferences, req.UsePreferences, WeekDays, NewRand(req.Seed))
}

// SelectRotation picks one meat, veg and carb per day. Meat and veg avoid
// repeats where the pool allows it and may be biased by preference scores;
// carbs are drawn uniformly.
func SelectRotation(pools Pools, prefs PreferenceMaps, usePrefs bool, days int, rng *rand.Rand) ([]domain.Combo, error) {
	if days <= 0 {
		return nil, domain.NewValidationError("days", fmt.Sprintf("must be positive, got %d", days))
	}
	for _, p := range []struct {
		cat  domain.Category
		pool []string
	}{
		{domain.CategoryMeat, pools.Meats},
		{domain.CategoryVeg, pools.Vegs},
		{domain.CategoryCarb, pools.Carbs},
	} {
		if len(p.pool) == 0 {
			return nil, fmt.Errorf("%s pool: %w", p.cat, domain.ErrEmptyCandidatePool)
		}
	}

	var proteinScores, vegScores map[string]float64
	if usePrefs {
		proteinScores, vegScores = prefs.Protein, prefs.Veg
	}

	meat := &repeatTracker{}
	veg := &repeatTracker{}
	plan := make([]domain.Combo, 0, days)
	for range days {
		m, err := meat.choose(rng, pools.Meats, proteinScores)
		if err != nil {
			return nil, fmt.Errorf("meat: %w", err)
		}
		v, err := veg.choose(rng, pools.Vegs, vegScores)
		if err != nil {
			return nil, fmt.Errorf("veg: %w", err)
		}
		c := pools.Carbs[rng.IntN(len(pools.Carbs))]
		plan = append(plan, domain.Combo{Meat: m, Veg: v, Carb: c})
	}
	return plan, nil
}

// repeatTracker remembers the previous two selections for one category.
type repeatTracker struct {
	last, last2 string
}

func (t *repeatTracker) choose(rng *rand.Rand, pool []string, scores map[string]float64) (string, error) {
	candidates := RepeatCandidates(pool, t.last, t.last2)
	weights := make([]float64, len(candidates))
	for i, c := range candidates {
		weights[i] = TasteWeight(c, scores)
	}
	pick, err := WeightedChoice(rng, candidates, weights)
	if err != nil {
		return "", err
	}
	t.last2, t.last = t.last, pick
	return pick, nil
}

// RepeatCandidates applies the two anti-repeat filters in order: drop last
// when it was also picked the day before, then drop last again when more
// than one candidate remains. Neither filter may empty the set.
func RepeatCandidates(pool []string, last, last2 string) []string {
	candidates := append([]string(nil), pool...)
	if last != "" && last2 != "" && last == last2 {
		if f := without(candidates, last); len(f) > 0 {
			candidates = f
		}
	}
	if last != "" && len(candidates) > 1 {
		if f := without(candidates, last); len(f) > 0 {
			candidates = f
		}
	}
	return candidates
}

func without(list []string, drop string) []string {
	out := make([]string, 0, len(list))
	for _, x := range list {
		if x != drop {
			out = append(out, x)
		}
	}
	return out
}

// TasteWeight maps a learned 0..3 score to a selection weight in 0.25..3.25.
// Ingredients without a score weigh 1.0.
func TasteWeight(name string, scores map[string]float64) float64 {
	s, ok := scores[name]
	if !ok {
		return 1.0
	}
	return max(minTasteWeight, tasteWeightBase+s)
}

// WeightedChoice draws one item with probability proportional to its
// weight. Negative weights count as zero; a non-positive total falls back to
// a uniform draw.
func WeightedChoice(rng *rand.Rand, items []string, weights []float64) (string, error) {
	if len(items) == 0 {
		return "", domain.ErrEmptyCandidatePool
	}
	if len(items) != len(weights) {
		return "", domain.NewValidationError("weights", fmt.Sprintf("%d items but %d weights", len(items), len(weights)))
	}

	var total float64
	for _, w := range weights {
		total += max(0, w)
	}
	if total <= 0 {
		return items[rng.IntN(len(items))], nil
	}

	r := rng.Float64() * total
	var acc float64
	for i, item := range items {
		acc += max(0, weights[i])
		if r <= acc {
			return item, nil
		}
	}
	return items[len(items)-1], nil
}

// PickFruitToppers draws one topper per day uniformly from treats using a
// generator seeded at seed+7. It returns nil when treats is empty.
func PickFruitToppers(treats []string, days int, seed int64) []string {
	if len(treats) == 0 || days <= 0 {
		return nil
	}
	rng := NewRand(seed + fruitSeedOffset)
	out := make([]string, days)
	for i := range out {
		out[i] = treats[rng.IntN(len(treats))]
	}
	return out
}
