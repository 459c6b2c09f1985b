package repository

import (
	"context"

	"github.com/alexanderramin/pawplan/internal/domain"
)

type DogRepo interface {
	Create(ctx context.Context, d *domain.DogProfile) error
	GetByID(ctx context.Context, id string) (*domain.DogProfile, error)
	// List returns dogs in creation order with Position set 1..n.
	List(ctx context.Context) ([]*domain.DogProfile, error)
	Update(ctx context.Context, d *domain.DogProfile) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// TasteRepo is append-only.
type TasteRepo interface {
	Append(ctx context.Context, e *domain.TasteEntry) error
	ListByDog(ctx context.Context, dogID string) ([]*domain.TasteEntry, error)
	ListAll(ctx context.Context) ([]*domain.TasteEntry, error)
}

type SessionStateRepo interface {
	Get(ctx context.Context) (*domain.SessionState, error)
	SetActiveDog(ctx context.Context, dogID string) error
	SetLastSeed(ctx context.Context, seed int64) error
}
