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

func TestEnsureDefault_SeedsDefaultDog(t *testing.T) {
	ts := setupServices(t)
	ctx := context.Background()

	d, err := ts.dogs.EnsureDefault(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Dog 1", d.DisplayName())
	assert.Equal(t, 3.0, d.AgeYears)
	assert.Equal(t, 10.0, d.WeightKg)
	assert.True(t, d.Neutered)
	assert.Equal(t, domain.ActivityNormal, d.Activity)
	assert.True(t, d.Flags.IsNone())
	assert.Equal(t, 2, d.MealsPerDay)
	assert.Equal(t, 1.35, d.KcalPerGram)

	again, err := ts.dogs.EnsureDefault(ctx)
	require.NoError(t, err)
	assert.Equal(t, d.ID, again.ID, "second call should not add another dog")

	n, err := ts.dogRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestAdd_MakesNewDogActive(t *testing.T) {
	ts := setupServices(t)
	ctx := context.Background()

	_, err := ts.dogs.EnsureDefault(ctx)
	require.NoError(t, err)

	rex, err := ts.dogs.Add(ctx, testutil.NewTestDog("Rex", testutil.WithWeight(25)))
	require.NoError(t, err)
	assert.Equal(t, 2, rex.Position)

	active, err := ts.dogs.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, rex.ID, active.ID)
}

func TestAdd_RejectsInvalidProfile(t *testing.T) {
	ts := setupServices(t)
	ctx := context.Background()

	_, err := ts.dogs.Add(ctx, testutil.NewTestDog("Tiny", testutil.WithWeight(0)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	n, err := ts.dogRepo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestEdit_AppliesPatch(t *testing.T) {
	ts := setupServices(t)
	ctx := context.Background()

	d, err := ts.dogs.EnsureDefault(ctx)
	require.NoError(t, err)

	name := "Biscuit"
	weight := 18.5
	flags := domain.NewFlagSet(domain.FlagWeightLoss)
	updated, err := ts.dogs.Edit(ctx, d.ID, domain.DogPatch{Name: &name, WeightKg: &weight, Flags: &flags})
	require.NoError(t, err)
	assert.Equal(t, "Biscuit", updated.Name)

	stored, err := ts.dogs.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, 18.5, stored.WeightKg)
	assert.True(t, stored.Flags.Has(domain.FlagWeightLoss))
	assert.Equal(t, 3.0, stored.AgeYears, "untouched fields keep their values")
}

func TestEdit_InvalidPatchLeavesStoredProfile(t *testing.T) {
	ts := setupServices(t)
	ctx := context.Background()

	d, err := ts.dogs.EnsureDefault(ctx)
	require.NoError(t, err)

	meals := 5
	_, err = ts.dogs.Edit(ctx, d.ID, domain.DogPatch{MealsPerDay: &meals})
	require.Error(t, err)
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "meals_per_day", ve.Field)

	stored, err := ts.dogs.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.MealsPerDay)
}

func TestSetActive_UnknownDog(t *testing.T) {
	ts := setupServices(t)
	ctx := context.Background()

	_, err := ts.dogs.EnsureDefault(ctx)
	require.NoError(t, err)

	err = ts.dogs.SetActive(ctx, "missing")
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestSetActive_SwitchesPointer(t *testing.T) {
	ts := setupServices(t)
	ctx := context.Background()

	first, err := ts.dogs.EnsureDefault(ctx)
	require.NoError(t, err)
	_, err = ts.dogs.Add(ctx, testutil.NewTestDog("Rex"))
	require.NoError(t, err)

	require.NoError(t, ts.dogs.SetActive(ctx, first.ID))
	active, err := ts.dogs.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, active.ID)
}

func TestRemove_RefusesLastDog(t *testing.T) {
	ts := setupServices(t)
	ctx := context.Background()

	d, err := ts.dogs.EnsureDefault(ctx)
	require.NoError(t, err)

	err = ts.dogs.Remove(ctx, d.ID)
	assert.ErrorIs(t, err, ErrLastDog)

	_, err = ts.dogs.Get(ctx, d.ID)
	assert.NoError(t, err)
}

func TestRemove_ActiveDogRepointsToFirstRemaining(t *testing.T) {
	ts := setupServices(t)
	ctx := context.Background()

	first, err := ts.dogs.EnsureDefault(ctx)
	require.NoError(t, err)
	second, err := ts.dogs.Add(ctx, testutil.NewTestDog("Rex"))
	require.NoError(t, err)

	require.NoError(t, ts.dogs.Remove(ctx, second.ID))

	active, err := ts.dogs.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, active.ID)

	st, err := ts.stateRepo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, st.ActiveDogID)
}

func TestRemove_InactiveDogKeepsPointer(t *testing.T) {
	ts := setupServices(t)
	ctx := context.Background()

	first, err := ts.dogs.EnsureDefault(ctx)
	require.NoError(t, err)
	second, err := ts.dogs.Add(ctx, testutil.NewTestDog("Rex"))
	require.NoError(t, err)

	require.NoError(t, ts.dogs.Remove(ctx, first.ID))

	active, err := ts.dogs.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)

	list, err := ts.dogs.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1, list[0].Position)
}

func TestRemove_RollsBackWhenRepointFails(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	dogRepo := repository.NewSQLiteDogRepo(database)
	stateRepo := repository.NewSQLiteSessionStateRepo(database)

	setup := NewDogService(dogRepo, stateRepo, testutil.NewTestUoW(database))
	_, err := setup.EnsureDefault(ctx)
	require.NoError(t, err)
	second, err := setup.Add(ctx, testutil.NewTestDog("Rex"))
	require.NoError(t, err)

	boom := errors.New("disk full")
	failing := &testutil.FailingWriteUoW{DB: database, FailPrefix: "UPDATE session_state", Err: boom}
	svc := NewDogService(dogRepo, stateRepo, failing)

	err = svc.Remove(ctx, second.ID)
	assert.ErrorIs(t, err, boom)

	_, err = dogRepo.GetByID(ctx, second.ID)
	assert.NoError(t, err, "delete should be rolled back")
	n, err := dogRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestActive_EmptySession(t *testing.T) {
	ts := setupServices(t)
	_, err := ts.dogs.Active(context.Background())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
