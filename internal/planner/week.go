package planner

import (
	"github.com/alexanderramin/pawplan/internal/catalog"
	"github.com/alexanderramin/pawplan/internal/domain"
)

// DayNutrition sums each chosen ingredient's facts scaled to its grams.
// Names missing from the catalog contribute nothing and are returned.
func DayNutrition(c domain.Combo, g domain.Grams) (domain.NutritionFacts, []string) {
	var total domain.NutritionFacts
	var missing []string
	for _, part := range []struct {
		name  string
		grams float64
	}{
		{c.Meat, g.Meat},
		{c.Veg, g.Veg},
		{c.Carb, g.Carb},
	} {
		in, ok := catalog.Lookup(part.name)
		if !ok {
			missing = append(missing, part.name)
			continue
		}
		total = total.Add(in.Per100g.Scale(part.grams))
	}
	return total, missing
}

// BuildWeekPlan applies the same daily allocation to every day of the
// rotation. toppers may be nil or shorter than the rotation.
func BuildWeekPlan(rotation []domain.Combo, daily domain.Grams, mealsPerDay int, toppers []string) ([]domain.RotationPlanDay, []string) {
	perMeal := daily.Div(mealsPerDay)
	days := make([]domain.RotationPlanDay, len(rotation))
	var missing []string
	for i, combo := range rotation {
		nut, miss := DayNutrition(combo, daily)
		missing = append(missing, miss...)
		var topper string
		if i < len(toppers) {
			topper = toppers[i]
		}
		days[i] = domain.RotationPlanDay{
			Day:         i + 1,
			Combo:       combo,
			FruitTopper: topper,
			Daily:       daily,
			PerMeal:     perMeal,
			Nutrition:   nut,
		}
	}
	return days, unionOrdered(missing)
}
