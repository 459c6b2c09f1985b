package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/pawplan/internal/db"
	"github.com/alexanderramin/pawplan/internal/domain"
	"github.com/alexanderramin/pawplan/internal/repository"
)

// ErrLastDog is returned when removing the only remaining profile.
var ErrLastDog = errors.New("cannot remove the last dog profile")

type dogService struct {
	dogs     repository.DogRepo
	state    repository.SessionStateRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewDogService(
	dogs repository.DogRepo,
	state repository.SessionStateRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) DogService {
	return &dogService{
		dogs:     dogs,
		state:    state,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Add stores a new profile and makes it the active one.
func (s *dogService) Add(ctx context.Context, d *domain.DogProfile) (created *domain.DogProfile, err error) {
	defer observe(ctx, s.observer, "dog-add", time.Now().UTC(), map[string]any{"breed": d.Breed}, &err)

	if err = d.Validate(); err != nil {
		return nil, err
	}
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	if d.Breed == "" {
		d.Breed = domain.DefaultBreed
	}
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txDogs := repository.NewSQLiteDogRepo(tx)
		txState := repository.NewSQLiteSessionStateRepo(tx)
		if err := txDogs.Create(ctx, d); err != nil {
			return err
		}
		return txState.SetActiveDog(ctx, d.ID)
	})
	if err != nil {
		return nil, err
	}
	return s.dogs.GetByID(ctx, d.ID)
}

// Save replaces every editable field of an existing profile. Nothing is
// written when validation fails.
func (s *dogService) Save(ctx context.Context, d *domain.DogProfile) (err error) {
	defer observe(ctx, s.observer, "dog-save", time.Now().UTC(), map[string]any{"dog_id": d.ID}, &err)

	if err = d.Validate(); err != nil {
		return err
	}
	d.UpdatedAt = time.Now().UTC()
	return s.dogs.Update(ctx, d)
}

func (s *dogService) Edit(ctx context.Context, id string, patch domain.DogPatch) (*domain.DogProfile, error) {
	current, err := s.dogs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return current, nil
	}
	next := patch.Apply(current)
	if err := s.Save(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (s *dogService) List(ctx context.Context) ([]*domain.DogProfile, error) {
	return s.dogs.List(ctx)
}

func (s *dogService) Get(ctx context.Context, id string) (*domain.DogProfile, error) {
	return s.dogs.GetByID(ctx, id)
}

// Active returns the profile the session points at. A dangling or unset
// pointer falls back to the first profile.
func (s *dogService) Active(ctx context.Context) (*domain.DogProfile, error) {
	st, err := s.state.Get(ctx)
	if err != nil {
		return nil, err
	}
	if st.ActiveDogID != "" {
		d, err := s.dogs.GetByID(ctx, st.ActiveDogID)
		if err == nil {
			return d, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}
	all, err := s.dogs.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("active dog: %w", repository.ErrNotFound)
	}
	return all[0], nil
}

func (s *dogService) SetActive(ctx context.Context, id string) error {
	if _, err := s.dogs.GetByID(ctx, id); err != nil {
		return err
	}
	return s.state.SetActiveDog(ctx, id)
}

// EnsureDefault seeds a default profile when the session has none and
// makes sure the active pointer resolves.
func (s *dogService) EnsureDefault(ctx context.Context) (*domain.DogProfile, error) {
	n, err := s.dogs.Count(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return s.Add(ctx, domain.NewDefaultDog(uuid.New().String()))
	}
	active, err := s.Active(ctx)
	if err != nil {
		return nil, err
	}
	st, err := s.state.Get(ctx)
	if err != nil {
		return nil, err
	}
	if st.ActiveDogID != active.ID {
		if err := s.state.SetActiveDog(ctx, active.ID); err != nil {
			return nil, err
		}
	}
	return active, nil
}

// Remove deletes a profile. The last profile cannot be removed; removing
// the active one re-points the session at the first remaining profile.
func (s *dogService) Remove(ctx context.Context, id string) (err error) {
	defer observe(ctx, s.observer, "dog-remove", time.Now().UTC(), map[string]any{"dog_id": id}, &err)

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txDogs := repository.NewSQLiteDogRepo(tx)
		txState := repository.NewSQLiteSessionStateRepo(tx)

		n, err := txDogs.Count(ctx)
		if err != nil {
			return err
		}
		if _, err := txDogs.GetByID(ctx, id); err != nil {
			return err
		}
		if n <= 1 {
			return ErrLastDog
		}

		st, err := txState.Get(ctx)
		if err != nil {
			return err
		}
		if err := txDogs.Delete(ctx, id); err != nil {
			return err
		}
		if st.ActiveDogID != "" && st.ActiveDogID != id {
			return nil
		}
		rest, err := txDogs.List(ctx)
		if err != nil {
			return err
		}
		return txState.SetActiveDog(ctx, rest[0].ID)
	})
}
