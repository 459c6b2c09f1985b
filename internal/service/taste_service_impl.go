package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/pawplan/internal/catalog"
	"github.com/alexanderramin/pawplan/internal/domain"
	"github.com/alexanderramin/pawplan/internal/planner"
	"github.com/alexanderramin/pawplan/internal/repository"
)

type tasteService struct {
	entries  repository.TasteRepo
	dogs     repository.DogRepo
	observer UseCaseObserver
}

func NewTasteService(entries repository.TasteRepo, dogs repository.DogRepo, observers ...UseCaseObserver) TasteService {
	return &tasteService{
		entries:  entries,
		dogs:     dogs,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Log appends an observation for a dog. Protein and veg names are resolved
// against the catalog; the dog snapshot fields are copied from the profile
// as it is now.
func (s *tasteService) Log(ctx context.Context, e *domain.TasteEntry) (err error) {
	fields := map[string]any{"dog_id": e.DogID, "preference": string(e.Preference)}
	defer observe(ctx, s.observer, "taste-log", time.Now().UTC(), fields, &err)

	label, ok := domain.ParsePreferenceLabel(string(e.Preference))
	if !ok {
		return domain.NewValidationError("preference", fmt.Sprintf("unknown preference %q", e.Preference))
	}
	e.Preference = label

	if e.Protein, err = resolveTasteIngredient(e.Protein, domain.CategoryMeat, "protein"); err != nil {
		return err
	}
	if e.Veg, err = resolveTasteIngredient(e.Veg, domain.CategoryVeg, "veg"); err != nil {
		return err
	}

	dog, err := s.dogs.GetByID(ctx, e.DogID)
	if err != nil {
		return err
	}
	e.DogName = dog.DisplayName()
	e.DogBreed = dog.Breed
	e.DogAgeYears = dog.AgeYears
	e.DogWeightKg = dog.WeightKg

	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	e.CreatedAt = time.Now().UTC()
	return s.entries.Append(ctx, e)
}

// resolveTasteIngredient maps a possibly abbreviated name to its catalog
// name. Blank names become nil.
func resolveTasteIngredient(name *string, cat domain.Category, field string) (*string, error) {
	if name == nil || strings.TrimSpace(*name) == "" {
		return nil, nil
	}
	resolved, ok := catalog.Resolve(*name, cat)
	if !ok {
		return nil, domain.NewValidationError(field, fmt.Sprintf("%q is not a known %s ingredient", *name, cat))
	}
	return &resolved, nil
}

func (s *tasteService) ListByDog(ctx context.Context, dogID string) ([]*domain.TasteEntry, error) {
	return s.entries.ListByDog(ctx, dogID)
}

// Preferences loads the whole log and reduces it to the dog's score maps.
func (s *tasteService) Preferences(ctx context.Context, dogID string) (planner.PreferenceMaps, error) {
	all, err := s.entries.ListAll(ctx)
	if err != nil {
		return planner.PreferenceMaps{}, err
	}
	log := make([]domain.TasteEntry, len(all))
	for i, e := range all {
		log[i] = *e
	}
	return planner.AggregatePreferences(log, dogID), nil
}
