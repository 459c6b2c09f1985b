package contract

import (
	"github.com/alexanderramin/pawplan/internal/catalog"
	"github.com/alexanderramin/pawplan/internal/domain"
	"github.com/alexanderramin/pawplan/internal/planner"
)

// RatioChoice selects the meat/veg/carb split. Custom wins over PresetKey;
// an empty PresetKey means the default preset.
type RatioChoice struct {
	PresetKey string
	Custom    *domain.Ratio
}

type EnergyRequest struct {
	DogID string // empty means the active dog
	Ratio RatioChoice
}

func NewEnergyRequest() EnergyRequest {
	return EnergyRequest{Ratio: RatioChoice{PresetKey: catalog.DefaultPresetKey}}
}

// MacroLens is the approximate kcal one category contributes, using the
// category's mean energy density.
type MacroLens struct {
	Category domain.Category
	Grams    float64
	Kcal     float64
}

type EnergyResponse struct {
	Dog             *domain.DogProfile
	Energy          planner.EnergyEstimate
	Ratio           domain.Ratio
	RatioLabel      string
	DailyGrams      float64
	Targets         domain.Grams
	PerMeal         domain.Grams
	Lens            []MacroLens
	Recommendations catalog.Recommendations
}
