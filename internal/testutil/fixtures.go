package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/pawplan/internal/domain"
)

type DogOption func(*domain.DogProfile)

func WithBreed(b string) DogOption {
	return func(d *domain.DogProfile) { d.Breed = b }
}

func WithAge(years float64) DogOption {
	return func(d *domain.DogProfile) { d.AgeYears = years }
}

func WithWeight(kg float64) DogOption {
	return func(d *domain.DogProfile) { d.WeightKg = kg }
}

func WithActivity(a domain.ActivityLevel) DogOption {
	return func(d *domain.DogProfile) { d.Activity = a }
}

func WithIntact() DogOption {
	return func(d *domain.DogProfile) { d.Neutered = false }
}

func WithFlags(flags ...domain.SpecialFlag) DogOption {
	return func(d *domain.DogProfile) { d.Flags = domain.NewFlagSet(flags...) }
}

func WithMeals(n int) DogOption {
	return func(d *domain.DogProfile) { d.MealsPerDay = n }
}

func WithKcalPerGram(v float64) DogOption {
	return func(d *domain.DogProfile) { d.KcalPerGram = v }
}

// NewTestDog returns a valid profile with the session defaults and a fresh id.
func NewTestDog(name string, opts ...DogOption) *domain.DogProfile {
	d := domain.NewDefaultDog(uuid.New().String())
	d.Name = name
	for _, opt := range opts {
		opt(d)
	}
	return d
}

type TasteOption func(*domain.TasteEntry)

func WithProtein(name string) TasteOption {
	return func(e *domain.TasteEntry) { e.Protein = &name }
}

func WithVeg(name string) TasteOption {
	return func(e *domain.TasteEntry) { e.Veg = &name }
}

func WithNote(note string) TasteOption {
	return func(e *domain.TasteEntry) { e.Note = note }
}

// NewTestTasteEntry returns an entry for dogID with the given label.
func NewTestTasteEntry(dogID string, pref domain.PreferenceLabel, opts ...TasteOption) *domain.TasteEntry {
	e := &domain.TasteEntry{
		ID:         uuid.New().String(),
		DogID:      dogID,
		Preference: pref,
		CreatedAt:  time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
