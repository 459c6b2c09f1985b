package planner

import (
	"math"
	"sort"

	"github.com/alexanderramin/pawplan/internal/catalog"
	"github.com/alexanderramin/pawplan/internal/domain"
)

// ShoppingItem is one ingredient's total for the week.
type ShoppingItem struct {
	Ingredient     string
	Category       domain.Category
	TotalGrams     float64 // whole grams
	AvgGramsPerDay float64 // one decimal
}

// CategoryTotal is the week's total grams for one category.
type CategoryTotal struct {
	Category   domain.Category
	TotalGrams float64
}

// ShoppingList is the aggregated shopping output of a week plan.
type ShoppingList struct {
	Items      []ShoppingItem
	Categories []CategoryTotal
}

// BuildShoppingList totals grams per ingredient across the week. Items are
// sorted by category then name; ingredients missing from the catalog are
// reported under CategoryUnknown.
func BuildShoppingList(days []domain.RotationPlanDay) ShoppingList {
	totals := map[string]float64{}
	var order []string
	add := func(name string, grams float64) {
		if name == "" {
			return
		}
		if _, ok := totals[name]; !ok {
			order = append(order, name)
		}
		totals[name] += grams
	}
	for _, d := range days {
		add(d.Combo.Meat, d.Daily.Meat)
		add(d.Combo.Veg, d.Daily.Veg)
		add(d.Combo.Carb, d.Daily.Carb)
	}

	items := make([]ShoppingItem, 0, len(order))
	for _, name := range order {
		g := totals[name]
		items = append(items, ShoppingItem{
			Ingredient:     name,
			Category:       catalog.CategoryOf(name),
			TotalGrams:     math.RoundToEven(g),
			AvgGramsPerDay: roundTo(g/float64(WeekDays), 1),
		})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		return items[i].Ingredient < items[j].Ingredient
	})

	return ShoppingList{Items: items, Categories: CategoryTotals(items)}
}

// CategoryTotals sums item totals per category, largest first.
func CategoryTotals(items []ShoppingItem) []CategoryTotal {
	sums := map[domain.Category]float64{}
	for _, it := range items {
		sums[it.Category] += it.TotalGrams
	}
	out := make([]CategoryTotal, 0, len(sums))
	for c, g := range sums {
		out = append(out, CategoryTotal{Category: c, TotalGrams: math.RoundToEven(g)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalGrams != out[j].TotalGrams {
			return out[i].TotalGrams > out[j].TotalGrams
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// UnknownIngredients lists shopping items whose names are not in the catalog.
func (l ShoppingList) UnknownIngredients() []string {
	var out []string
	for _, it := range l.Items {
		if it.Category == domain.CategoryUnknown {
			out = append(out, it.Ingredient)
		}
	}
	return out
}

// roundTo rounds half to even at the given number of decimals.
func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.RoundToEven(v*p) / p
}
