package planner

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/pawplan/internal/domain"
)

func TestNormalizeRatio_Identity(t *testing.T) {
	r, err := NormalizeRatio(50, 35, 15)
	require.NoError(t, err)
	assert.Equal(t, domain.Ratio{MeatPct: 50, VegPct: 35, CarbPct: 15}, r)
}

func TestNormalizeRatio_Rescales(t *testing.T) {
	cases := []struct {
		m, v, c int
		want    domain.Ratio
	}{
		{70, 55, 30, domain.Ratio{MeatPct: 45, VegPct: 35, CarbPct: 20}},
		{30, 15, 0, domain.Ratio{MeatPct: 67, VegPct: 33, CarbPct: 0}},
		{1, 1, 1, domain.Ratio{MeatPct: 33, VegPct: 33, CarbPct: 34}},
		{0, 0, 5, domain.Ratio{MeatPct: 0, VegPct: 0, CarbPct: 100}},
		// halves round to even
		{39, 55, 26, domain.Ratio{MeatPct: 32, VegPct: 46, CarbPct: 22}},
		{1, 3, 4, domain.Ratio{MeatPct: 12, VegPct: 38, CarbPct: 50}},
	}
	for _, c := range cases {
		got, err := NormalizeRatio(c.m, c.v, c.c)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "%d/%d/%d", c.m, c.v, c.c)
	}
}

func TestNormalizeRatio_RejectsZeroAndNegative(t *testing.T) {
	_, err := NormalizeRatio(0, 0, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = NormalizeRatio(-10, 60, 50)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestNormalizeRatio_Property_SumsTo100 checks random triples always
// normalize to a non-negative split summing to exactly 100.
func TestNormalizeRatio_Property_SumsTo100(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for trial := 0; trial < 1000; trial++ {
		m, v, c := rng.IntN(200), rng.IntN(200), rng.IntN(200)
		if m+v+c == 0 {
			continue
		}
		r, err := NormalizeRatio(m, v, c)
		require.NoError(t, err)
		assert.Equal(t, 100, r.Sum(), "trial %d: %d/%d/%d", trial, m, v, c)
		assert.GreaterOrEqual(t, r.MeatPct, 0)
		assert.GreaterOrEqual(t, r.VegPct, 0)
		assert.GreaterOrEqual(t, r.CarbPct, 0)
	}
}

func TestGramTargets(t *testing.T) {
	g, err := GramTargets(675, 1.35, domain.Ratio{MeatPct: 50, VegPct: 35, CarbPct: 15})
	require.NoError(t, err)
	assert.InDelta(t, 250, g.Meat, 1e-9)
	assert.InDelta(t, 175, g.Veg, 1e-9)
	assert.InDelta(t, 75, g.Carb, 1e-9)
	assert.InDelta(t, 500, g.Total(), 1e-9)
}

func TestEstimateGrams_RejectsNonPositiveDensity(t *testing.T) {
	_, err := EstimateGrams(600, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = GramTargets(600, -1, domain.Ratio{MeatPct: 100})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
