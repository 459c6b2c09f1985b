package domain

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// DogPatch carries optional replacements for a profile's editable fields.
// Nil fields keep the current value.
type DogPatch struct {
	Name        *string
	Breed       *string
	AgeYears    *float64
	WeightKg    *float64
	Neutered    *bool
	Activity    *ActivityLevel
	Flags       *FlagSet
	MealsPerDay *int
	KcalPerGram *float64
}

// Apply returns a copy of d with the patch applied. d is not modified, so a
// failed validation on the result leaves the stored profile untouched.
func (p DogPatch) Apply(d *DogProfile) *DogProfile {
	next := *d
	if p.Name != nil {
		next.Name = *p.Name
	}
	next.Breed = CoalesceStr(strFromPtr(p.Breed), d.Breed, DefaultBreed)
	next.AgeYears = float64FromPtrWithDefault(d.AgeYears, p.AgeYears)
	next.WeightKg = float64FromPtrWithDefault(d.WeightKg, p.WeightKg)
	next.Neutered = boolFromPtrWithDefault(d.Neutered, p.Neutered)
	if p.Activity != nil {
		next.Activity = *p.Activity
	}
	if p.Flags != nil {
		next.Flags = *p.Flags
	}
	next.MealsPerDay = intFromPtrWithDefault(d.MealsPerDay, p.MealsPerDay)
	next.KcalPerGram = float64FromPtrWithDefault(d.KcalPerGram, p.KcalPerGram)
	return &next
}

// IsEmpty reports whether the patch changes nothing.
func (p DogPatch) IsEmpty() bool {
	return p.Name == nil && p.Breed == nil && p.AgeYears == nil && p.WeightKg == nil &&
		p.Neutered == nil && p.Activity == nil && p.Flags == nil &&
		p.MealsPerDay == nil && p.KcalPerGram == nil
}

func strFromPtr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func intFromPtrWithDefault(fallback int, p *int) int {
	if p != nil {
		return *p
	}
	return fallback
}

func boolFromPtrWithDefault(fallback bool, p *bool) bool {
	if p != nil {
		return *p
	}
	return fallback
}

func float64FromPtrWithDefault(fallback float64, p *float64) float64 {
	if p != nil {
		return *p
	}
	return fallback
}
