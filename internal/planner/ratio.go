package planner

import (
	"fmt"
	"math"

	"github.com/alexanderramin/pawplan/internal/domain"
)

// NormalizeRatio rescales a meat/veg/carb split to sum to exactly 100.
// Meat and veg are scaled and rounded half to even, carb takes the
// remainder (floored at 0) and any residual is folded into meat.
func NormalizeRatio(meat, veg, carb int) (domain.Ratio, error) {
	if meat < 0 || veg < 0 || carb < 0 {
		return domain.Ratio{}, domain.NewValidationError("ratio", fmt.Sprintf("percentages must be non-negative, got %d/%d/%d", meat, veg, carb))
	}
	total := meat + veg + carb
	if total == 100 {
		return domain.Ratio{MeatPct: meat, VegPct: veg, CarbPct: carb}, nil
	}
	if total <= 0 {
		return domain.Ratio{}, domain.NewValidationError("ratio", "percentages sum to zero")
	}

	m := int(math.RoundToEven(float64(meat) / float64(total) * 100))
	v := int(math.RoundToEven(float64(veg) / float64(total) * 100))
	c := max(0, 100-m-v)
	if diff := 100 - (m + v + c); diff != 0 {
		m = max(0, m+diff)
	}
	return domain.Ratio{MeatPct: m, VegPct: v, CarbPct: c}, nil
}

// GramsForDay splits a daily total by percentage without rounding.
func GramsForDay(totalGrams float64, r domain.Ratio) domain.Grams {
	return domain.Grams{
		Meat: totalGrams * float64(r.MeatPct) / 100,
		Veg:  totalGrams * float64(r.VegPct) / 100,
		Carb: totalGrams * float64(r.CarbPct) / 100,
	}
}

// EstimateGrams converts kcal into grams of cooked mix.
func EstimateGrams(dailyKcal, kcalPerGram float64) (float64, error) {
	if kcalPerGram <= 0 {
		return 0, domain.NewValidationError("kcal_per_gram", fmt.Sprintf("must be positive, got %g", kcalPerGram))
	}
	return dailyKcal / kcalPerGram, nil
}

// GramTargets is EstimateGrams followed by GramsForDay.
func GramTargets(dailyKcal, kcalPerGram float64, r domain.Ratio) (domain.Grams, error) {
	total, err := EstimateGrams(dailyKcal, kcalPerGram)
	if err != nil {
		return domain.Grams{}, err
	}
	return GramsForDay(total, r), nil
}
