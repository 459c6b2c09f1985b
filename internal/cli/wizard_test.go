package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/pawplan/internal/domain"
	"github.com/alexanderramin/pawplan/internal/testutil"
)

func TestDogFormValues_RoundTripsProfile(t *testing.T) {
	d := testutil.NewTestDog("Biscuit",
		testutil.WithWeight(12.5),
		testutil.WithActivity(domain.ActivityHigh),
		testutil.WithFlags(domain.FlagSkinCoat),
		testutil.WithMeals(3),
	)

	patch, err := newDogFormValues(d).patch()
	require.NoError(t, err)

	got := patch.Apply(domain.NewDefaultDog(d.ID))
	assert.Equal(t, "Biscuit", got.Name)
	assert.Equal(t, 12.5, got.WeightKg)
	assert.Equal(t, domain.ActivityHigh, got.Activity)
	assert.True(t, got.Flags.Has(domain.FlagSkinCoat))
	assert.Equal(t, 3, got.MealsPerDay)
	assert.Equal(t, d.KcalPerGram, got.KcalPerGram)
}

func TestDogFormValues_NoFlagsMeansNone(t *testing.T) {
	v := newDogFormValues(domain.NewDefaultDog(""))
	assert.Empty(t, v.flags)

	patch, err := v.patch()
	require.NoError(t, err)
	assert.True(t, patch.Flags.IsNone())
	assert.Equal(t, domain.DefaultBreed, *patch.Breed)
}

func TestDogFormValues_TogglesFlagsWithoutTouchingProfile(t *testing.T) {
	d := testutil.NewTestDog("Biscuit", testutil.WithFlags(domain.FlagSkinCoat, domain.FlagKidney))
	v := newDogFormValues(d)
	v.flags = []domain.SpecialFlag{domain.FlagKidney, domain.FlagWeightLoss}

	patch, err := v.patch()
	require.NoError(t, err)
	assert.Equal(t, []domain.SpecialFlag{domain.FlagWeightLoss, domain.FlagKidney}, patch.Flags.Flags())
	assert.True(t, d.Flags.Has(domain.FlagSkinCoat))
	assert.False(t, d.Flags.Has(domain.FlagWeightLoss))

	v.flags = nil
	patch, err = v.patch()
	require.NoError(t, err)
	assert.True(t, patch.Flags.IsNone())
	assert.True(t, d.Flags.Has(domain.FlagKidney))
}

func TestDogFormValues_RejectsBadNumbers(t *testing.T) {
	v := newDogFormValues(domain.NewDefaultDog(""))
	v.weight = "heavy"
	_, err := v.patch()
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	v = newDogFormValues(domain.NewDefaultDog(""))
	v.age = "-1"
	_, err = v.patch()
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestValidateEnergyDensity(t *testing.T) {
	assert.NoError(t, validateEnergyDensity("1.35"))
	assert.Error(t, validateEnergyDensity("2.5"))
	assert.Error(t, validateEnergyDensity("abc"))
}

func TestTasteFormValues_Entry(t *testing.T) {
	v := newTasteFormValues()
	_, err := v.entry("dog-1")
	assert.Error(t, err)

	v.protein = "Turkey (lean, cooked)"
	v.preference = domain.PrefLike
	v.note = "  ate slowly "
	e, err := v.entry("dog-1")
	require.NoError(t, err)
	require.NotNil(t, e.Protein)
	assert.Equal(t, "Turkey (lean, cooked)", *e.Protein)
	assert.Nil(t, e.Veg)
	assert.Equal(t, domain.PrefLike, e.Preference)
	assert.Equal(t, "ate slowly", e.Note)
}

func TestWizardForms_Build(t *testing.T) {
	assert.NotNil(t, wizardDogProfile(newDogFormValues(domain.NewDefaultDog(""))))
	assert.NotNil(t, wizardTasteLog("Rex", newTasteFormValues()))
}
