package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFlagSet_EmptyIsNone(t *testing.T) {
	s := NewFlagSet()
	assert.True(t, s.IsNone())
	assert.True(t, s.Has(FlagNone))
	assert.Equal(t, []SpecialFlag{FlagNone}, s.Flags())
}

func TestNewFlagSet_RealFlagsDropNone(t *testing.T) {
	s := NewFlagSet(FlagNone, FlagKidney, FlagWeightLoss)
	assert.False(t, s.Has(FlagNone))
	assert.Equal(t, []SpecialFlag{FlagWeightLoss, FlagKidney}, s.Flags(), "members come back in canonical order")
}

func TestFlagSet_AddNoneClearsOthers(t *testing.T) {
	s := NewFlagSet(FlagPickyEater, FlagSkinCoat)
	s.Add(FlagNone)
	assert.True(t, s.IsNone())
	assert.Equal(t, []string{"None"}, s.Labels())
}

func TestFlagSet_AddRealClearsNone(t *testing.T) {
	s := NewFlagSet(FlagNone)
	s.Add(FlagPancreatitis)
	assert.False(t, s.Has(FlagNone))
	assert.True(t, s.Has(FlagPancreatitis))
}

func TestFlagSet_RemoveLastFallsBackToNone(t *testing.T) {
	s := NewFlagSet(FlagKidney)
	s.Remove(FlagKidney)
	assert.True(t, s.IsNone())
	assert.Equal(t, []string{"none"}, s.Codes())
}

func TestFlagSet_ZeroValueReadsAsNone(t *testing.T) {
	var s FlagSet
	assert.True(t, s.IsNone())
	s.Add(FlagWeightLoss)
	assert.True(t, s.Has(FlagWeightLoss))
}

func TestParseFlagSet_AcceptsCodesAndLabels(t *testing.T) {
	s, err := ParseFlagSet([]string{"weight_loss", "Very picky eater", ""})
	require.NoError(t, err)
	assert.Equal(t, []SpecialFlag{FlagWeightLoss, FlagPickyEater}, s.Flags())
}

func TestParseFlagSet_UnknownIsInvalidInput(t *testing.T) {
	_, err := ParseFlagSet([]string{"zoomies"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "zoomies")
}
