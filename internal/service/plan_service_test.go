package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/pawplan/internal/contract"
	"github.com/alexanderramin/pawplan/internal/domain"
	"github.com/alexanderramin/pawplan/internal/planner"
	"github.com/alexanderramin/pawplan/internal/testutil"
)

func TestEnergy_ActiveDogDefaultPreset(t *testing.T) {
	ts := setupServices(t)
	ctx := context.Background()

	_, err := ts.dogs.EnsureDefault(ctx)
	require.NoError(t, err)

	resp, err := ts.plans.Energy(ctx, contract.NewEnergyRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.Ratio{MeatPct: 50, VegPct: 35, CarbPct: 15}, resp.Ratio)
	assert.InDelta(t, resp.Energy.AdjustedMER/1.35, resp.DailyGrams, 1e-9)
	assert.InDelta(t, resp.DailyGrams*0.5, resp.Targets.Meat, 1e-9)
	assert.InDelta(t, resp.Targets.Meat/2, resp.PerMeal.Meat, 1e-9)
	require.Len(t, resp.Lens, 3)
	assert.Equal(t, domain.CategoryMeat, resp.Lens[0].Category)
	assert.NotEmpty(t, resp.Recommendations[domain.CategoryMeat])
}

func TestEnergy_CustomRatioIsNormalized(t *testing.T) {
	ts := setupServices(t)
	ctx := context.Background()

	_, err := ts.dogs.EnsureDefault(ctx)
	require.NoError(t, err)

	req := contract.NewEnergyRequest()
	req.Ratio.Custom = &domain.Ratio{MeatPct: 60, VegPct: 50, CarbPct: 30}
	resp, err := ts.plans.Energy(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 100, resp.Ratio.Sum())
	assert.Equal(t, "Custom", resp.RatioLabel)
}

func TestEnergy_UnknownPreset(t *testing.T) {
	ts := setupServices(t)
	ctx := context.Background()

	_, err := ts.dogs.EnsureDefault(ctx)
	require.NoError(t, err)

	req := contract.NewEnergyRequest()
	req.Ratio.PresetKey = "keto"
	_, err = ts.plans.Energy(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGenerateWeek_DeterministicForSeed(t *testing.T) {
	ts := setupServices(t)
	ctx := context.Background()

	_, err := ts.dogs.EnsureDefault(ctx)
	require.NoError(t, err)

	a, err := ts.plans.GenerateWeek(ctx, contract.NewWeekPlanRequest(42))
	require.NoError(t, err)
	b, err := ts.plans.GenerateWeek(ctx, contract.NewWeekPlanRequest(42))
	require.NoError(t, err)

	require.Len(t, a.Days, planner.WeekDays)
	for i := range a.Days {
		assert.Equal(t, a.Days[i].Combo, b.Days[i].Combo)
		assert.Equal(t, a.Days[i].FruitTopper, b.Days[i].FruitTopper)
		assert.NotEmpty(t, a.Days[i].FruitTopper)
	}
	assert.Equal(t, a.Shopping, b.Shopping)
	assert.Empty(t, a.Warnings)

	st, err := ts.stateRepo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, st.LastSeed)
	assert.Equal(t, int64(42), *st.LastSeed)
}

func TestGenerateWeek_PantryOnly(t *testing.T) {
	ts := setupServices(t)
	ctx := context.Background()

	_, err := ts.dogs.EnsureDefault(ctx)
	require.NoError(t, err)

	req := contract.NewWeekPlanRequest(7)
	req.PantryOnly = true
	req.IncludeToppers = false
	req.Pantry = planner.Pools{
		Meats: []string{"chicken", "Turkey (lean, cooked)"},
		Vegs:  []string{"Pumpkin (cooked)"},
		Carbs: []string{"oats"},
	}
	resp, err := ts.plans.GenerateWeek(ctx, req)
	require.NoError(t, err)

	for _, d := range resp.Days {
		assert.Contains(t, []string{"Chicken (lean, cooked)", "Turkey (lean, cooked)"}, d.Combo.Meat)
		assert.Equal(t, "Pumpkin (cooked)", d.Combo.Veg)
		assert.Equal(t, "Oats (cooked)", d.Combo.Carb)
		assert.Empty(t, d.FruitTopper)
	}
	for i := 1; i < len(resp.Days); i++ {
		assert.NotEqual(t, resp.Days[i-1].Combo.Meat, resp.Days[i].Combo.Meat, "two meats should alternate")
	}

	var pumpkin planner.ShoppingItem
	for _, it := range resp.Shopping.Items {
		if it.Ingredient == "Pumpkin (cooked)" {
			pumpkin = it
		}
	}
	assert.InDelta(t, resp.Days[0].Daily.Veg*7, pumpkin.TotalGrams, 0.5)
}

func TestGenerateWeek_UnknownPantryItem(t *testing.T) {
	ts := setupServices(t)
	ctx := context.Background()

	_, err := ts.dogs.EnsureDefault(ctx)
	require.NoError(t, err)

	req := contract.NewWeekPlanRequest(1)
	req.Pantry.Meats = []string{"Kangaroo"}
	_, err = ts.plans.GenerateWeek(ctx, req)

	var pe *contract.PlanError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, contract.ErrInvalidInput, pe.Code)
}

func TestGenerateWeek_UnknownDog(t *testing.T) {
	ts := setupServices(t)
	ctx := context.Background()

	_, err := ts.dogs.EnsureDefault(ctx)
	require.NoError(t, err)

	req := contract.NewWeekPlanRequest(1)
	req.DogID = "ghost"
	_, err = ts.plans.GenerateWeek(ctx, req)

	var pe *contract.PlanError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, contract.ErrDogNotFound, pe.Code)
}

func TestGenerateWeek_TasteBiasFavoursLovedProtein(t *testing.T) {
	ts := setupServices(t)
	ctx := context.Background()

	dog, err := ts.dogs.EnsureDefault(ctx)
	require.NoError(t, err)
	for range 3 {
		require.NoError(t, ts.tastes.Log(ctx, testutil.NewTestTasteEntry(dog.ID, domain.PrefLove, testutil.WithProtein("Rabbit (cooked)"))))
	}
	for _, m := range []string{"Chicken (lean, cooked)", "Beef (lean, cooked)", "Lamb (lean, cooked)"} {
		require.NoError(t, ts.tastes.Log(ctx, testutil.NewTestTasteEntry(dog.ID, domain.PrefDislike, testutil.WithProtein(m))))
	}

	withTaste, without := 0, 0
	for seed := range int64(40) {
		req := contract.NewWeekPlanRequest(seed)
		req.PantryOnly = true
		req.Pantry.Meats = []string{"Rabbit (cooked)", "Chicken (lean, cooked)", "Beef (lean, cooked)", "Lamb (lean, cooked)"}

		resp, err := ts.plans.GenerateWeek(ctx, req)
		require.NoError(t, err)
		withTaste += countMeat(resp.Days, "Rabbit (cooked)")

		req.UseTaste = false
		resp, err = ts.plans.GenerateWeek(ctx, req)
		require.NoError(t, err)
		without += countMeat(resp.Days, "Rabbit (cooked)")
	}
	assert.Greater(t, withTaste, without)
}

func countMeat(days []domain.RotationPlanDay, name string) int {
	n := 0
	for _, d := range days {
		if d.Combo.Meat == name {
			n++
		}
	}
	return n
}

func TestExportShoppingCSV(t *testing.T) {
	ts := setupServices(t)
	ctx := context.Background()

	_, err := ts.dogs.EnsureDefault(ctx)
	require.NoError(t, err)
	resp, err := ts.plans.GenerateWeek(ctx, contract.NewWeekPlanRequest(3))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ts.plans.ExportShoppingCSV(&buf, resp.Shopping))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, strings.Join(planner.ShoppingCSVHeader, ","), lines[0])
	assert.Len(t, lines, len(resp.Shopping.Items)+1)
}

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

func TestGenerateWeek_EmitsUseCaseEvent(t *testing.T) {
	obs := &recordingObserver{}
	ts := setupServices(t, obs)
	ctx := context.Background()

	_, err := ts.dogs.EnsureDefault(ctx)
	require.NoError(t, err)
	_, err = ts.plans.GenerateWeek(ctx, contract.NewWeekPlanRequest(5))
	require.NoError(t, err)

	last := obs.events[len(obs.events)-1]
	assert.Equal(t, "generate-week", last.Name)
	assert.True(t, last.Success)
	assert.Equal(t, int64(5), last.Fields["seed"])
}

func TestLastSeed_TracksMostRecentPlan(t *testing.T) {
	ts := setupServices(t)
	ctx := context.Background()

	seed, err := ts.plans.LastSeed(ctx)
	require.NoError(t, err)
	assert.Nil(t, seed)

	_, err = ts.dogs.EnsureDefault(ctx)
	require.NoError(t, err)
	_, err = ts.plans.GenerateWeek(ctx, contract.NewWeekPlanRequest(99))
	require.NoError(t, err)

	seed, err = ts.plans.LastSeed(ctx)
	require.NoError(t, err)
	require.NotNil(t, seed)
	assert.Equal(t, int64(99), *seed)
}
