package planner

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/pawplan/internal/domain"
)

func TestComputeDailyEnergy_AdultDefaults(t *testing.T) {
	e := ComputeDailyEnergy(10, 3, domain.ActivityNormal, true, domain.NewFlagSet())

	assert.InDelta(t, 393.6, e.RER, 0.1)
	assert.InDelta(t, 629.8, e.MER, 0.1)
	assert.InDelta(t, e.MER, e.AdjustedMER, 1e-9)
	assert.Equal(t, domain.StageAdult, e.LifeStage)
	assert.Equal(t, "Adult", e.Explanation)
	assert.Empty(t, e.Notes)
}

func TestComputeDailyEnergy_FlagsStackInOrder(t *testing.T) {
	flags := domain.NewFlagSet(domain.FlagPickyEater, domain.FlagKidney, domain.FlagPancreatitis, domain.FlagWeightLoss)
	e := ComputeDailyEnergy(20, 8, domain.ActivityLow, false, flags)

	assert.Equal(t, domain.StageSenior, e.LifeStage)
	assert.InDelta(t, e.MER*0.85*0.95*0.95, e.AdjustedMER, 1e-9)
	assert.Equal(t,
		"Senior | Weight-loss adjusted target. Fat-sensitive conservative target. "+
			"Energy conservative; protein strategy must be vet-guided. Use palatability tactics & stronger rotation.",
		e.Explanation)
}

func TestComputeDailyEnergy_PickyOnlyAddsNote(t *testing.T) {
	e := ComputeDailyEnergy(5, 0.5, domain.ActivityHigh, false, domain.NewFlagSet(domain.FlagPickyEater))
	assert.Equal(t, e.MER, e.AdjustedMER)
	assert.Equal(t, "Puppy | Use palatability tactics & stronger rotation.", e.Explanation)
	assert.InDelta(t, RestingEnergy(5)*2.4*1.2, e.MER, 1e-9)
}

func TestMultipliers(t *testing.T) {
	assert.Equal(t, 1.6, BaseMultiplier(domain.StageAdult, true))
	assert.Equal(t, 1.8, BaseMultiplier(domain.StageAdult, false))
	assert.Equal(t, 2.2, BaseMultiplier(domain.StagePuppy, true))
	assert.Equal(t, 1.4, BaseMultiplier(domain.StageSenior, false))

	assert.Equal(t, 0.9, ActivityMultiplier(domain.ActivityLow))
	assert.Equal(t, 1.35, ActivityMultiplier(domain.ActivityAthletic))
	assert.Equal(t, 1.0, ActivityMultiplier("Couch"))
}

func TestRestingEnergy_MonotonicInWeight(t *testing.T) {
	prev := 0.0
	for w := 0.5; w <= 90; w += 0.5 {
		rer := RestingEnergy(w)
		assert.InDelta(t, 70*math.Pow(w, 0.75), rer, 1e-9)
		assert.Greater(t, rer, prev, "weight %g", w)
		prev = rer
	}
}

func TestEnergyForDog(t *testing.T) {
	d := domain.NewDefaultDog("d")
	assert.Equal(t, ComputeDailyEnergy(10, 3, domain.ActivityNormal, true, domain.NewFlagSet()), EnergyForDog(d))
}
