package domain

// Combo is one day's ingredient choice.
type Combo struct {
	Meat string
	Veg  string
	Carb string
}

// Grams is a per-category gram allocation.
type Grams struct {
	Meat float64
	Veg  float64
	Carb float64
}

func (g Grams) Total() float64 {
	return g.Meat + g.Veg + g.Carb
}

// Div splits the allocation evenly, e.g. across meals.
func (g Grams) Div(n int) Grams {
	if n <= 0 {
		return g
	}
	d := float64(n)
	return Grams{Meat: g.Meat / d, Veg: g.Veg / d, Carb: g.Carb / d}
}

type RotationPlanDay struct {
	Day         int
	Combo       Combo
	FruitTopper string // empty when no topper
	Daily       Grams
	PerMeal     Grams
	Nutrition   NutritionFacts
}
