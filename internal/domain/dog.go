package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	MinMealsPerDay     = 1
	MaxMealsPerDay     = 4
	MinEnergyDensity   = 1.0
	MaxEnergyDensity   = 1.8
	DefaultBreed       = "Mixed Breed / Unknown"
	DefaultAgeYears    = 3.0
	DefaultWeightKg    = 10.0
	DefaultMealsPerDay = 2
	DefaultKcalPerGram = 1.35
)

type DogProfile struct {
	ID          string
	Name        string
	Breed       string
	AgeYears    float64
	WeightKg    float64
	Neutered    bool
	Activity    ActivityLevel
	Flags       FlagSet
	MealsPerDay int
	KcalPerGram float64
	Position    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewDefaultDog returns a profile populated with the session defaults.
func NewDefaultDog(id string) *DogProfile {
	now := time.Now().UTC()
	return &DogProfile{
		ID:          id,
		Breed:       DefaultBreed,
		AgeYears:    DefaultAgeYears,
		WeightKg:    DefaultWeightKg,
		Neutered:    true,
		Activity:    ActivityNormal,
		Flags:       NewFlagSet(FlagNone),
		MealsPerDay: DefaultMealsPerDay,
		KcalPerGram: DefaultKcalPerGram,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Validate checks every editable field against its allowed range.
func (d *DogProfile) Validate() error {
	if d.AgeYears <= 0 {
		return NewValidationError("age", fmt.Sprintf("must be positive, got %g", d.AgeYears))
	}
	if d.WeightKg <= 0 {
		return NewValidationError("weight", fmt.Sprintf("must be positive, got %g", d.WeightKg))
	}
	if _, ok := ParseActivityLevel(string(d.Activity)); !ok {
		return NewValidationError("activity", fmt.Sprintf("unknown activity level %q", d.Activity))
	}
	if d.MealsPerDay < MinMealsPerDay || d.MealsPerDay > MaxMealsPerDay {
		return NewValidationError("meals_per_day", fmt.Sprintf("must be between %d and %d, got %d", MinMealsPerDay, MaxMealsPerDay, d.MealsPerDay))
	}
	if d.KcalPerGram < MinEnergyDensity || d.KcalPerGram > MaxEnergyDensity {
		return NewValidationError("kcal_per_gram", fmt.Sprintf("must be between %.1f and %.1f, got %g", MinEnergyDensity, MaxEnergyDensity, d.KcalPerGram))
	}
	return nil
}

// DisplayName returns the trimmed name, or "Dog N" using the 1-based position.
func (d *DogProfile) DisplayName() string {
	return CoalesceStr(strings.TrimSpace(d.Name), fmt.Sprintf("Dog %d", d.Position))
}

// LifeStageForAge classifies an age in years.
func LifeStageForAge(ageYears float64) LifeStage {
	switch {
	case ageYears < 1:
		return StagePuppy
	case ageYears < 7:
		return StageAdult
	default:
		return StageSenior
	}
}

// LifeStage returns the profile's life stage.
func (d *DogProfile) LifeStage() LifeStage {
	return LifeStageForAge(d.AgeYears)
}
