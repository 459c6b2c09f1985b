package domain

// NutritionFacts are approximate values per 100g of the cooked ingredient.
type NutritionFacts struct {
	Kcal     float64
	ProteinG float64
	FatG     float64
	CarbsG   float64
}

// Scale returns the facts for the given weight in grams.
func (n NutritionFacts) Scale(grams float64) NutritionFacts {
	f := grams / 100.0
	return NutritionFacts{
		Kcal:     n.Kcal * f,
		ProteinG: n.ProteinG * f,
		FatG:     n.FatG * f,
		CarbsG:   n.CarbsG * f,
	}
}

// Add sums two sets of facts.
func (n NutritionFacts) Add(o NutritionFacts) NutritionFacts {
	return NutritionFacts{
		Kcal:     n.Kcal + o.Kcal,
		ProteinG: n.ProteinG + o.ProteinG,
		FatG:     n.FatG + o.FatG,
		CarbsG:   n.CarbsG + o.CarbsG,
	}
}

type Ingredient struct {
	Name      string
	Category  Category
	Per100g   NutritionFacts
	MicroNote string
	Benefits  []string
	Cautions  []string
}

type RatioPreset struct {
	Key     string
	Label   string
	MeatPct int
	VegPct  int
	CarbPct int
	Note    string
}

// Ratio is a meat/veg/carb percentage split.
type Ratio struct {
	MeatPct int
	VegPct  int
	CarbPct int
}

func (r Ratio) Sum() int {
	return r.MeatPct + r.VegPct + r.CarbPct
}

// Ratio returns the preset's split.
func (p RatioPreset) Ratio() Ratio {
	return Ratio{MeatPct: p.MeatPct, VegPct: p.VegPct, CarbPct: p.CarbPct}
}
