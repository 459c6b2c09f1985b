package planner

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/pawplan/internal/catalog"
	"github.com/alexanderramin/pawplan/internal/domain"
)

func defaultRequest(seed int64) RotationRequest {
	return RotationRequest{
		AllowExpansion:  true,
		Recommendations: catalog.Recommend(domain.StageAdult, domain.NewFlagSet()),
		Seed:            seed,
	}
}

func TestGenerateWeeklyRotation_Deterministic(t *testing.T) {
	a, err := GenerateWeeklyRotation(defaultRequest(42))
	require.NoError(t, err)
	b, err := GenerateWeeklyRotation(defaultRequest(42))
	require.NoError(t, err)

	assert.Len(t, a, WeekDays)
	assert.Equal(t, a, b)
}

func TestGenerateWeeklyRotation_SeedChangesSequence(t *testing.T) {
	base, err := GenerateWeeklyRotation(defaultRequest(1))
	require.NoError(t, err)

	differs := false
	for seed := int64(2); seed < 10; seed++ {
		other, err := GenerateWeeklyRotation(defaultRequest(seed))
		require.NoError(t, err)
		if !assert.ObjectsAreEqual(base, other) {
			differs = true
			break
		}
	}
	assert.True(t, differs)
}

func TestGenerateWeeklyRotation_SingleItemPoolRepeats(t *testing.T) {
	req := RotationRequest{
		Pantry: Pools{
			Meats: []string{"Turkey (lean, cooked)"},
			Vegs:  []string{"Pumpkin (cooked)"},
			Carbs: []string{"Oats (cooked)"},
		},
		Seed: 9,
	}
	plan, err := GenerateWeeklyRotation(req)
	require.NoError(t, err)
	require.Len(t, plan, WeekDays)
	for _, c := range plan {
		assert.Equal(t, domain.Combo{Meat: "Turkey (lean, cooked)", Veg: "Pumpkin (cooked)", Carb: "Oats (cooked)"}, c)
	}
}

func TestGenerateWeeklyRotation_TwoItemPoolAlternates(t *testing.T) {
	req := RotationRequest{
		Pantry: Pools{Meats: []string{"Turkey (lean, cooked)", "Beef (lean, cooked)"}},
		Seed:   3,
	}
	plan, err := GenerateWeeklyRotation(req)
	require.NoError(t, err)
	for i := 1; i < len(plan); i++ {
		assert.NotEqual(t, plan[i-1].Meat, plan[i].Meat, "day %d", i+1)
	}
}

func TestGenerateWeeklyRotation_PantryOnlyStaysInPantry(t *testing.T) {
	pantry := []string{"Turkey (lean, cooked)", "Beef (lean, cooked)", "Egg (cooked)"}
	plan, err := GenerateWeeklyRotation(RotationRequest{Pantry: Pools{Meats: pantry}, Seed: 11})
	require.NoError(t, err)
	for _, c := range plan {
		assert.Contains(t, pantry, c.Meat)
		assert.Contains(t, catalog.NamesIn(domain.CategoryVeg), c.Veg)
		assert.Contains(t, catalog.NamesIn(domain.CategoryCarb), c.Carb)
	}
}

// TestSelectRotation_Property_NoConsecutiveRepeats checks that meat and veg
// never repeat on adjacent days when the pool has at least two items.
func TestSelectRotation_Property_NoConsecutiveRepeats(t *testing.T) {
	meats := catalog.NamesIn(domain.CategoryMeat)
	vegs := catalog.NamesIn(domain.CategoryVeg)
	gen := rand.New(rand.NewPCG(42, 0))

	for trial := 0; trial < 200; trial++ {
		pools := Pools{
			Meats: meats[:2+gen.IntN(len(meats)-1)],
			Vegs:  vegs[:2+gen.IntN(len(vegs)-1)],
			Carbs: []string{"Oats (cooked)"},
		}
		prefs := PreferenceMaps{Protein: map[string]float64{meats[0]: 3}, Veg: map[string]float64{vegs[1]: 0}}
		plan, err := SelectRotation(pools, prefs, gen.IntN(2) == 1, WeekDays, NewRand(int64(trial)))
		require.NoError(t, err)
		for i := 1; i < len(plan); i++ {
			assert.NotEqual(t, plan[i-1].Meat, plan[i].Meat, "trial %d day %d", trial, i+1)
			assert.NotEqual(t, plan[i-1].Veg, plan[i].Veg, "trial %d day %d", trial, i+1)
		}
	}
}

func TestSelectRotation_LoveBiasesFrequency(t *testing.T) {
	meats := catalog.NamesIn(domain.CategoryMeat)[:10]
	loved, neutral := meats[0], meats[1]
	scores := map[string]float64{}
	for _, m := range meats {
		scores[m] = 1
	}
	scores[loved] = 3

	pools := Pools{Meats: meats, Vegs: []string{"Pumpkin (cooked)"}, Carbs: []string{"Oats (cooked)"}}
	counts := map[string]int{}
	for seed := int64(0); seed < 300; seed++ {
		plan, err := SelectRotation(pools, PreferenceMaps{Protein: scores}, true, WeekDays, NewRand(seed))
		require.NoError(t, err)
		for _, c := range plan {
			counts[c.Meat]++
		}
	}
	assert.Greater(t, counts[loved], counts[neutral]*3/2, "loved=%d neutral=%d", counts[loved], counts[neutral])
}

func TestSelectRotation_EmptyPool(t *testing.T) {
	_, err := SelectRotation(Pools{Meats: []string{"x"}, Carbs: []string{"y"}}, PreferenceMaps{}, false, WeekDays, NewRand(1))
	assert.ErrorIs(t, err, domain.ErrEmptyCandidatePool)
	assert.Contains(t, err.Error(), "Veg")
}

func TestRepeatCandidates(t *testing.T) {
	pool := []string{"A", "B", "C"}
	assert.Equal(t, pool, RepeatCandidates(pool, "", ""))
	assert.Equal(t, []string{"B", "C"}, RepeatCandidates(pool, "A", "B"))
	assert.Equal(t, []string{"B", "C"}, RepeatCandidates(pool, "A", "A"))

	// The two filters never empty the set.
	assert.Equal(t, []string{"A"}, RepeatCandidates([]string{"A"}, "A", "A"))
	assert.Equal(t, []string{"B"}, RepeatCandidates([]string{"A", "B"}, "A", "A"))
	assert.Equal(t, []string{"A"}, RepeatCandidates([]string{"A", "B"}, "B", "A"))
}

func TestTasteWeight(t *testing.T) {
	scores := map[string]float64{"dislike": 0, "love": 3}
	assert.Equal(t, 0.25, TasteWeight("dislike", scores))
	assert.Equal(t, 3.25, TasteWeight("love", scores))
	assert.Equal(t, 1.0, TasteWeight("unseen", scores))
	assert.Equal(t, 0.25, TasteWeight("neg", map[string]float64{"neg": -5}))
}

func TestWeightedChoice(t *testing.T) {
	rng := NewRand(5)

	_, err := WeightedChoice(rng, nil, nil)
	assert.ErrorIs(t, err, domain.ErrEmptyCandidatePool)

	_, err = WeightedChoice(rng, []string{"a", "b"}, []float64{1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	for i := 0; i < 50; i++ {
		got, err := WeightedChoice(rng, []string{"a", "b"}, []float64{0, 1})
		require.NoError(t, err)
		assert.Equal(t, "b", got)
	}

	got, err := WeightedChoice(rng, []string{"a", "b"}, []float64{0, 0})
	require.NoError(t, err)
	assert.Contains(t, []string{"a", "b"}, got)
}

func TestBuildPools(t *testing.T) {
	recs := catalog.Recommendations{domain.CategoryMeat: {"Turkey (lean, cooked)", "Beef (lean, cooked)"}}
	pantry := Pools{Meats: []string{"Beef (lean, cooked)"}}

	expanded := BuildPools(pantry, true, recs)
	assert.Equal(t, []string{"Beef (lean, cooked)", "Turkey (lean, cooked)", "Chicken (lean, cooked)"}, expanded.Meats[:3])
	assert.Len(t, expanded.Meats, len(catalog.NamesIn(domain.CategoryMeat)))

	restricted := BuildPools(pantry, false, recs)
	assert.Equal(t, []string{"Beef (lean, cooked)"}, restricted.Meats)
	assert.Equal(t, catalog.NamesIn(domain.CategoryVeg), restricted.Vegs)
}

func TestPickFruitToppers(t *testing.T) {
	treats := catalog.NamesIn(domain.CategoryTreat)
	a := PickFruitToppers(treats, WeekDays, 42)
	require.Len(t, a, WeekDays)
	assert.Equal(t, a, PickFruitToppers(treats, WeekDays, 42))
	for _, f := range a {
		assert.Contains(t, treats, f)
	}
	assert.Nil(t, PickFruitToppers(nil, WeekDays, 42))
}
