package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/pawplan/internal/domain"
	"github.com/alexanderramin/pawplan/internal/testutil"
)

func TestTasteRepo_AppendAndList(t *testing.T) {
	repo := NewSQLiteTasteRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	first := testutil.NewTestTasteEntry("dog-a", domain.PrefLove, testutil.WithProtein("Salmon (cooked)"), testutil.WithNote("ate fast"))
	first.DogName = "Biscuit"
	first.DogWeightKg = 9.5
	second := testutil.NewTestTasteEntry("dog-a", domain.PrefDislike, testutil.WithVeg("Kale (cooked, small portions)"))
	other := testutil.NewTestTasteEntry("dog-b", domain.PrefLike)
	for _, e := range []*domain.TasteEntry{first, second, other} {
		require.NoError(t, repo.Append(ctx, e))
	}

	entries, err := repo.ListByDog(ctx, "dog-a")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	got := entries[0]
	require.NotNil(t, got.Protein)
	assert.Equal(t, "Salmon (cooked)", *got.Protein)
	assert.Nil(t, got.Veg)
	assert.Equal(t, domain.PrefLove, got.Preference)
	assert.Equal(t, "ate fast", got.Note)
	assert.Equal(t, "Biscuit", got.DogName)
	assert.Equal(t, 9.5, got.DogWeightKg)

	assert.Nil(t, entries[1].Protein)
	require.NotNil(t, entries[1].Veg)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestTasteRepo_RejectsUnknownLabel(t *testing.T) {
	repo := NewSQLiteTasteRepo(testutil.NewTestDB(t))

	err := repo.Append(context.Background(), testutil.NewTestTasteEntry("dog-a", "Meh"))
	assert.Error(t, err)
}
