package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/alexanderramin/pawplan/internal/domain"
)

// profileFlags is the flag set shared by "dog add" and "dog edit". Only
// flags the user actually set end up in the patch.
type profileFlags struct {
	name        string
	breed       string
	age         float64
	weight      float64
	neutered    bool
	activity    string
	special     []string
	meals       int
	kcalPerGram float64
}

func (p *profileFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&p.name, "name", "", "Dog name (blank shows as \"Dog N\")")
	fs.StringVar(&p.breed, "breed", "", "Breed (see 'breeds')")
	fs.Float64Var(&p.age, "age", domain.DefaultAgeYears, "Age in years")
	fs.Float64Var(&p.weight, "weight", domain.DefaultWeightKg, "Body weight in kg")
	fs.BoolVar(&p.neutered, "neutered", true, "Spayed/neutered")
	fs.StringVar(&p.activity, "activity", string(domain.ActivityNormal), "Activity: low, normal, high, athletic")
	fs.StringSliceVar(&p.special, "flags", nil, "Special considerations, e.g. weight_loss,sensitive_stomach (none clears)")
	fs.IntVar(&p.meals, "meals", domain.DefaultMealsPerDay, fmt.Sprintf("Meals per day (%d-%d)", domain.MinMealsPerDay, domain.MaxMealsPerDay))
	fs.Float64Var(&p.kcalPerGram, "kcal-per-gram", domain.DefaultKcalPerGram, "Energy density of the cooked mix")
}

func (p *profileFlags) patch(fs *pflag.FlagSet) (domain.DogPatch, error) {
	var patch domain.DogPatch
	if fs.Changed("name") {
		patch.Name = &p.name
	}
	if fs.Changed("breed") {
		patch.Breed = &p.breed
	}
	if fs.Changed("age") {
		patch.AgeYears = &p.age
	}
	if fs.Changed("weight") {
		patch.WeightKg = &p.weight
	}
	if fs.Changed("neutered") {
		patch.Neutered = &p.neutered
	}
	if fs.Changed("activity") {
		a, ok := domain.ParseActivityLevel(p.activity)
		if !ok {
			return domain.DogPatch{}, domain.NewValidationError("activity", fmt.Sprintf("unknown activity level %q", p.activity))
		}
		patch.Activity = &a
	}
	if fs.Changed("flags") {
		set, err := domain.ParseFlagSet(p.special)
		if err != nil {
			return domain.DogPatch{}, err
		}
		patch.Flags = &set
	}
	if fs.Changed("meals") {
		patch.MealsPerDay = &p.meals
	}
	if fs.Changed("kcal-per-gram") {
		patch.KcalPerGram = &p.kcalPerGram
	}
	return patch, nil
}
