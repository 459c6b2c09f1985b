package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/pawplan/internal/catalog"
	"github.com/alexanderramin/pawplan/internal/contract"
	"github.com/alexanderramin/pawplan/internal/domain"
	"github.com/alexanderramin/pawplan/internal/planner"
	"github.com/alexanderramin/pawplan/internal/repository"
)

const customRatioLabel = "Custom"

type planService struct {
	dogs     DogService
	tastes   TasteService
	state    repository.SessionStateRepo
	observer UseCaseObserver
}

func NewPlanService(
	dogs DogService,
	tastes TasteService,
	state repository.SessionStateRepo,
	observers ...UseCaseObserver,
) PlanService {
	return &planService{
		dogs:     dogs,
		tastes:   tastes,
		state:    state,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *planService) Energy(ctx context.Context, req contract.EnergyRequest) (resp *contract.EnergyResponse, err error) {
	fields := map[string]any{"dog_id": req.DogID}
	defer observe(ctx, s.observer, "energy", time.Now().UTC(), fields, &err)

	dog, err := s.resolveDog(ctx, req.DogID)
	if err != nil {
		return nil, err
	}
	ratio, label, err := resolveRatio(req.Ratio)
	if err != nil {
		return nil, err
	}

	energy := planner.EnergyForDog(dog)
	targets, err := planner.GramTargets(energy.AdjustedMER, dog.KcalPerGram, ratio)
	if err != nil {
		return nil, err
	}
	fields["adjusted_mer"] = energy.AdjustedMER

	return &contract.EnergyResponse{
		Dog:             dog,
		Energy:          energy,
		Ratio:           ratio,
		RatioLabel:      label,
		DailyGrams:      targets.Total(),
		Targets:         targets,
		PerMeal:         targets.Div(dog.MealsPerDay),
		Lens:            macroLens(targets),
		Recommendations: catalog.Recommend(dog.LifeStage(), dog.Flags),
	}, nil
}

func macroLens(g domain.Grams) []contract.MacroLens {
	rows := []struct {
		cat   domain.Category
		grams float64
	}{
		{domain.CategoryMeat, g.Meat},
		{domain.CategoryVeg, g.Veg},
		{domain.CategoryCarb, g.Carb},
	}
	out := make([]contract.MacroLens, 0, len(rows))
	for _, r := range rows {
		out = append(out, contract.MacroLens{
			Category: r.cat,
			Grams:    r.grams,
			Kcal:     r.grams * catalog.CategoryMeanKcal(r.cat) / 100,
		})
	}
	return out
}

// GenerateWeek produces a seven-day rotation, the per-day and per-meal
// allocations, nutrition estimates and the shopping list. Failures are
// returned as *contract.PlanError.
func (s *planService) GenerateWeek(ctx context.Context, req contract.WeekPlanRequest) (resp *contract.WeekPlanResponse, err error) {
	fields := map[string]any{
		"dog_id":      req.DogID,
		"seed":        req.Seed,
		"pantry_only": req.PantryOnly,
		"use_taste":   req.UseTaste,
	}
	defer observe(ctx, s.observer, "generate-week", time.Now().UTC(), fields, &err)

	dog, err := s.resolveDog(ctx, req.DogID)
	if err != nil {
		return nil, planError(err)
	}
	fields["dog_id"] = dog.ID

	ratio, label, err := resolveRatio(req.Ratio)
	if err != nil {
		return nil, planError(err)
	}
	pantry, err := resolvePantry(req.Pantry)
	if err != nil {
		return nil, planError(err)
	}

	energy := planner.EnergyForDog(dog)
	daily, err := planner.GramTargets(energy.AdjustedMER, dog.KcalPerGram, ratio)
	if err != nil {
		return nil, planError(err)
	}

	prefs := planner.PreferenceMaps{}
	if req.UseTaste {
		if prefs, err = s.tastes.Preferences(ctx, dog.ID); err != nil {
			return nil, planError(err)
		}
	}

	recs := catalog.Recommend(dog.LifeStage(), dog.Flags)
	rotation, err := planner.GenerateWeeklyRotation(planner.RotationRequest{
		Pantry:          pantry,
		AllowExpansion:  req.AllowExpansion(),
		Recommendations: recs,
		Preferences:     prefs,
		UsePreferences:  req.UseTaste,
		Seed:            req.Seed,
	})
	if err != nil {
		return nil, planError(err)
	}

	var toppers []string
	if req.IncludeToppers {
		toppers = planner.PickFruitToppers(recs[domain.CategoryTreat], len(rotation), req.Seed)
	}

	days, missing := planner.BuildWeekPlan(rotation, daily, dog.MealsPerDay, toppers)
	shopping := planner.BuildShoppingList(days)

	var warnings []string
	for _, name := range missing {
		warnings = append(warnings, fmt.Errorf("%q is not in the ingredient catalog: %w", name, domain.ErrDataConsistency).Error())
	}

	if err = s.state.SetLastSeed(ctx, req.Seed); err != nil {
		return nil, planError(err)
	}
	fields["items"] = len(shopping.Items)

	return &contract.WeekPlanResponse{
		GeneratedAt: time.Now().UTC(),
		Dog:         dog,
		Seed:        req.Seed,
		Ratio:       ratio,
		RatioLabel:  label,
		Energy:      energy,
		DailyGrams:  daily.Total(),
		Days:        days,
		Shopping:    shopping,
		Preferences: prefs,
		Warnings:    warnings,
	}, nil
}

func (s *planService) ExportShoppingCSV(w io.Writer, list planner.ShoppingList) error {
	return planner.ExportShoppingCSV(w, list.Items)
}

func (s *planService) LastSeed(ctx context.Context) (*int64, error) {
	st, err := s.state.Get(ctx)
	if err != nil {
		return nil, err
	}
	return st.LastSeed, nil
}

func (s *planService) resolveDog(ctx context.Context, id string) (*domain.DogProfile, error) {
	if id == "" {
		return s.dogs.Active(ctx)
	}
	return s.dogs.Get(ctx, id)
}

// resolveRatio turns a ratio choice into a normalized split and its label.
func resolveRatio(c contract.RatioChoice) (domain.Ratio, string, error) {
	if c.Custom != nil {
		r, err := planner.NormalizeRatio(c.Custom.MeatPct, c.Custom.VegPct, c.Custom.CarbPct)
		if err != nil {
			return domain.Ratio{}, "", err
		}
		return r, customRatioLabel, nil
	}
	key := domain.CoalesceStr(c.PresetKey, catalog.DefaultPresetKey)
	p, ok := catalog.Preset(key)
	if !ok {
		return domain.Ratio{}, "", domain.NewValidationError("preset", fmt.Sprintf("unknown ratio preset %q", key))
	}
	return p.Ratio(), p.Label, nil
}

// resolvePantry maps pantry entries to catalog names of the right category.
func resolvePantry(p planner.Pools) (planner.Pools, error) {
	resolve := func(names []string, cat domain.Category) ([]string, error) {
		out := make([]string, 0, len(names))
		for _, n := range names {
			name, ok := catalog.Resolve(n, cat)
			if !ok {
				return nil, domain.NewValidationError("pantry", fmt.Sprintf("%q is not a known %s ingredient", n, cat))
			}
			out = append(out, name)
		}
		return out, nil
	}
	meats, err := resolve(p.Meats, domain.CategoryMeat)
	if err != nil {
		return planner.Pools{}, err
	}
	vegs, err := resolve(p.Vegs, domain.CategoryVeg)
	if err != nil {
		return planner.Pools{}, err
	}
	carbs, err := resolve(p.Carbs, domain.CategoryCarb)
	if err != nil {
		return planner.Pools{}, err
	}
	return planner.Pools{Meats: meats, Vegs: vegs, Carbs: carbs}, nil
}

func planError(err error) error {
	var pe *contract.PlanError
	if errors.As(err, &pe) {
		return pe
	}
	code := contract.ErrInternalError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		code = contract.ErrDogNotFound
	case errors.Is(err, domain.ErrEmptyCandidatePool):
		code = contract.ErrEmptyCandidatePool
	case errors.Is(err, domain.ErrInvalidInput):
		code = contract.ErrInvalidInput
	}
	return &contract.PlanError{Code: code, Message: err.Error(), Err: err}
}
