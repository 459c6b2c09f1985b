package planner

import (
	"math"
	"strings"

	"github.com/alexanderramin/pawplan/internal/domain"
)

// EnergyEstimate is the daily caloric target for one dog, in kcal/day.
type EnergyEstimate struct {
	RER         float64
	MER         float64
	AdjustedMER float64
	LifeStage   domain.LifeStage
	Notes       []string
	Explanation string
}

const (
	rerCoefficient = 70.0
	rerExponent    = 0.75
)

const (
	noteWeightLoss   = "Weight-loss adjusted target."
	notePancreatitis = "Fat-sensitive conservative target."
	noteKidney       = "Energy conservative; protein strategy must be vet-guided."
	notePicky        = "Use palatability tactics & stronger rotation."
)

// RestingEnergy returns RER = 70 × weight^0.75.
func RestingEnergy(weightKg float64) float64 {
	return rerCoefficient * math.Pow(weightKg, rerExponent)
}

// BaseMultiplier selects the maintenance multiplier for a life stage.
func BaseMultiplier(stage domain.LifeStage, neutered bool) float64 {
	switch stage {
	case domain.StagePuppy:
		if neutered {
			return 2.2
		}
		return 2.4
	case domain.StageSenior:
		if neutered {
			return 1.3
		}
		return 1.4
	default:
		if neutered {
			return 1.6
		}
		return 1.8
	}
}

// ActivityMultiplier maps an activity level; unrecognized levels count as 1.0.
func ActivityMultiplier(a domain.ActivityLevel) float64 {
	switch a {
	case domain.ActivityLow:
		return 0.9
	case domain.ActivityHigh:
		return 1.2
	case domain.ActivityAthletic:
		return 1.35
	default:
		return 1.0
	}
}

// ComputeDailyEnergy estimates RER, MER and the flag-adjusted MER. Inputs
// are assumed validated (weight and age positive).
func ComputeDailyEnergy(weightKg, ageYears float64, activity domain.ActivityLevel, neutered bool, flags domain.FlagSet) EnergyEstimate {
	stage := domain.LifeStageForAge(ageYears)
	rer := RestingEnergy(weightKg)
	mer := rer * BaseMultiplier(stage, neutered) * ActivityMultiplier(activity)

	adj := 1.0
	var notes []string
	if flags.Has(domain.FlagWeightLoss) {
		adj *= 0.85
		notes = append(notes, noteWeightLoss)
	}
	if flags.Has(domain.FlagPancreatitis) {
		adj *= 0.95
		notes = append(notes, notePancreatitis)
	}
	if flags.Has(domain.FlagKidney) {
		adj *= 0.95
		notes = append(notes, noteKidney)
	}
	if flags.Has(domain.FlagPickyEater) {
		notes = append(notes, notePicky)
	}

	explanation := string(stage)
	if len(notes) > 0 {
		explanation += " | " + strings.Join(notes, " ")
	}

	return EnergyEstimate{
		RER:         rer,
		MER:         mer,
		AdjustedMER: mer * adj,
		LifeStage:   stage,
		Notes:       notes,
		Explanation: explanation,
	}
}

// EnergyForDog is ComputeDailyEnergy over a profile.
func EnergyForDog(d *domain.DogProfile) EnergyEstimate {
	return ComputeDailyEnergy(d.WeightKg, d.AgeYears, d.Activity, d.Neutered, d.Flags)
}
