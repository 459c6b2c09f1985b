package service

import (
	"context"
	"io"

	"github.com/alexanderramin/pawplan/internal/contract"
	"github.com/alexanderramin/pawplan/internal/domain"
	"github.com/alexanderramin/pawplan/internal/planner"
)

// DogService owns the session's profile collection and the active pointer.
type DogService interface {
	Add(ctx context.Context, d *domain.DogProfile) (*domain.DogProfile, error)
	Save(ctx context.Context, d *domain.DogProfile) error
	Edit(ctx context.Context, id string, patch domain.DogPatch) (*domain.DogProfile, error)
	List(ctx context.Context) ([]*domain.DogProfile, error)
	Get(ctx context.Context, id string) (*domain.DogProfile, error)
	Active(ctx context.Context) (*domain.DogProfile, error)
	SetActive(ctx context.Context, id string) error
	EnsureDefault(ctx context.Context) (*domain.DogProfile, error)
	Remove(ctx context.Context, id string) error
}

type TasteService interface {
	Log(ctx context.Context, e *domain.TasteEntry) error
	ListByDog(ctx context.Context, dogID string) ([]*domain.TasteEntry, error)
	Preferences(ctx context.Context, dogID string) (planner.PreferenceMaps, error)
}

type PlanService interface {
	Energy(ctx context.Context, req contract.EnergyRequest) (*contract.EnergyResponse, error)
	GenerateWeek(ctx context.Context, req contract.WeekPlanRequest) (*contract.WeekPlanResponse, error)
	ExportShoppingCSV(w io.Writer, list planner.ShoppingList) error
	// LastSeed returns the seed of the most recent plan, or nil.
	LastSeed(ctx context.Context) (*int64, error)
}
