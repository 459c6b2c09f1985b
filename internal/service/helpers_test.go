package service

import (
	"testing"

	"github.com/alexanderramin/pawplan/internal/db"
	"github.com/alexanderramin/pawplan/internal/repository"
	"github.com/alexanderramin/pawplan/internal/testutil"
)

type testServices struct {
	dogRepo   *repository.SQLiteDogRepo
	tasteRepo *repository.SQLiteTasteRepo
	stateRepo *repository.SQLiteSessionStateRepo
	uow       db.UnitOfWork

	dogs   DogService
	tastes TasteService
	plans  PlanService
}

func setupServices(t *testing.T, observers ...UseCaseObserver) *testServices {
	t.Helper()
	database := testutil.NewTestDB(t)
	ts := &testServices{
		dogRepo:   repository.NewSQLiteDogRepo(database),
		tasteRepo: repository.NewSQLiteTasteRepo(database),
		stateRepo: repository.NewSQLiteSessionStateRepo(database),
		uow:       testutil.NewTestUoW(database),
	}
	ts.dogs = NewDogService(ts.dogRepo, ts.stateRepo, ts.uow, observers...)
	ts.tastes = NewTasteService(ts.tasteRepo, ts.dogRepo, observers...)
	ts.plans = NewPlanService(ts.dogs, ts.tastes, ts.stateRepo, observers...)
	return ts
}
