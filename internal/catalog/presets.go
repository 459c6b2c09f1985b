package catalog

import "github.com/alexanderramin/pawplan/internal/domain"

const DefaultPresetKey = "balanced"

var presets = []domain.RatioPreset{
	{Key: "balanced", Label: "Balanced Cooked Fresh (default)", MeatPct: 50, VegPct: 35, CarbPct: 15,
		Note: "A practical cooked-fresh ratio emphasizing lean protein and diverse vegetables."},
	{Key: "weight", Label: "Weight-Aware & Satiety", MeatPct: 45, VegPct: 45, CarbPct: 10,
		Note: "Higher vegetable volume and slightly reduced energy density."},
	{Key: "active", Label: "Active Adult Energy", MeatPct: 55, VegPct: 25, CarbPct: 20,
		Note: "More energy support for high activity while keeping vegetables present."},
	{Key: "senior", Label: "Senior Gentle Balance", MeatPct: 48, VegPct: 40, CarbPct: 12,
		Note: "Fiber and micronutrient focus, moderate carbs."},
	{Key: "puppy", Label: "Puppy Growth (cooked baseline)", MeatPct: 55, VegPct: 30, CarbPct: 15,
		Note: "Growth needs are complex; ensure calcium/vitamin balance with veterinary guidance."},
	{Key: "gentle_gi", Label: "Gentle GI Rotation", MeatPct: 50, VegPct: 40, CarbPct: 10,
		Note: "A calmer profile leaning on easy proteins and soothing fiber veggies."},
}

// Custom ratio bounds for user-entered splits.
const (
	MinCustomMeat = 30
	MaxCustomMeat = 70
	MinCustomVeg  = 15
	MaxCustomVeg  = 55
	MinCustomCarb = 0
	MaxCustomCarb = 30
)

func Presets() []domain.RatioPreset {
	out := make([]domain.RatioPreset, len(presets))
	copy(out, presets)
	return out
}

// Preset looks a preset up by key.
func Preset(key string) (domain.RatioPreset, bool) {
	for _, p := range presets {
		if p.Key == key {
			return p, true
		}
	}
	return domain.RatioPreset{}, false
}

// DefaultPreset returns the balanced preset.
func DefaultPreset() domain.RatioPreset {
	p, _ := Preset(DefaultPresetKey)
	return p
}
