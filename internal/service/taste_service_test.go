package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/pawplan/internal/domain"
	"github.com/alexanderramin/pawplan/internal/repository"
	"github.com/alexanderramin/pawplan/internal/testutil"
)

func TestTasteLog_ResolvesNamesAndSnapshotsDog(t *testing.T) {
	ts := setupServices(t)
	ctx := context.Background()

	dog, err := ts.dogs.Add(ctx, testutil.NewTestDog("Rex", testutil.WithBreed("Beagle"), testutil.WithWeight(12)))
	require.NoError(t, err)

	e := testutil.NewTestTasteEntry(dog.ID, domain.PrefLove,
		testutil.WithProtein("chicken"),
		testutil.WithVeg("pumpkin"),
		testutil.WithNote("licked the bowl"),
	)
	require.NoError(t, ts.tastes.Log(ctx, e))

	got, err := ts.tastes.ListByDog(ctx, dog.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].Protein)
	assert.Equal(t, "Chicken (lean, cooked)", *got[0].Protein)
	assert.Equal(t, "Pumpkin (cooked)", *got[0].Veg)
	assert.Equal(t, "Rex", got[0].DogName)
	assert.Equal(t, "Beagle", got[0].DogBreed)
	assert.Equal(t, 12.0, got[0].DogWeightKg)
}

func TestTasteLog_LabelOnly(t *testing.T) {
	ts := setupServices(t)
	ctx := context.Background()

	dog, err := ts.dogs.EnsureDefault(ctx)
	require.NoError(t, err)

	e := testutil.NewTestTasteEntry(dog.ID, "like")
	require.NoError(t, ts.tastes.Log(ctx, e))
	assert.Equal(t, domain.PrefLike, e.Preference)
	assert.Nil(t, e.Protein)
	assert.Nil(t, e.Veg)
	assert.Equal(t, "Dog 1", e.DogName)
}

func TestTasteLog_Rejects(t *testing.T) {
	ts := setupServices(t)
	ctx := context.Background()

	dog, err := ts.dogs.EnsureDefault(ctx)
	require.NoError(t, err)

	tests := []struct {
		name  string
		entry *domain.TasteEntry
		field string
	}{
		{"unknown label", testutil.NewTestTasteEntry(dog.ID, "Adores"), "preference"},
		{"veg as protein", testutil.NewTestTasteEntry(dog.ID, domain.PrefLike, testutil.WithProtein("Pumpkin (cooked)")), "protein"},
		{"meat as veg", testutil.NewTestTasteEntry(dog.ID, domain.PrefLike, testutil.WithVeg("Salmon (cooked)")), "veg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ts.tastes.Log(ctx, tt.entry)
			var ve *domain.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)
		})
	}

	got, err := ts.tastes.ListByDog(ctx, dog.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTasteLog_UnknownDog(t *testing.T) {
	ts := setupServices(t)
	err := ts.tastes.Log(context.Background(), testutil.NewTestTasteEntry("ghost", domain.PrefLike))
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPreferences_MeanScorePerDog(t *testing.T) {
	ts := setupServices(t)
	ctx := context.Background()

	rex, err := ts.dogs.Add(ctx, testutil.NewTestDog("Rex"))
	require.NoError(t, err)
	fido, err := ts.dogs.Add(ctx, testutil.NewTestDog("Fido"))
	require.NoError(t, err)

	turkey := "Turkey (lean, cooked)"
	for _, e := range []*domain.TasteEntry{
		testutil.NewTestTasteEntry(rex.ID, domain.PrefLove, testutil.WithProtein(turkey)),
		testutil.NewTestTasteEntry(rex.ID, domain.PrefLike, testutil.WithProtein(turkey), testutil.WithVeg("Carrot (cooked)")),
		testutil.NewTestTasteEntry(fido.ID, domain.PrefDislike, testutil.WithProtein(turkey)),
	} {
		require.NoError(t, ts.tastes.Log(ctx, e))
	}

	prefs, err := ts.tastes.Preferences(ctx, rex.ID)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, prefs.Protein[turkey], 1e-9)
	assert.InDelta(t, 2.0, prefs.Veg["Carrot (cooked)"], 1e-9)
	assert.Len(t, prefs.Protein, 1)
}

func TestTasteLog_SurvivesDogRemoval(t *testing.T) {
	ts := setupServices(t)
	ctx := context.Background()

	first, err := ts.dogs.EnsureDefault(ctx)
	require.NoError(t, err)
	rex, err := ts.dogs.Add(ctx, testutil.NewTestDog("Rex"))
	require.NoError(t, err)
	require.NoError(t, ts.tastes.Log(ctx, testutil.NewTestTasteEntry(rex.ID, domain.PrefLove, testutil.WithProtein("Egg"))))

	require.NoError(t, ts.dogs.Remove(ctx, rex.ID))
	require.NoError(t, ts.dogs.SetActive(ctx, first.ID))

	got, err := ts.tastes.ListByDog(ctx, rex.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Rex", got[0].DogName)
}
