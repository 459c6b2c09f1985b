package catalog

import "github.com/alexanderramin/pawplan/internal/domain"

// Recommendations maps a category to suggested ingredient names.
type Recommendations map[domain.Category][]string

var lowFatExcluded = map[string]bool{
	"Salmon (cooked)":            true,
	"Duck (lean, cooked)":        true,
	"Sardines (cooked, deboned)": true,
}

// Recommend builds the suggestion lists for a life stage and flag set.
// Lists keep first-seen order and only contain catalog names.
func Recommend(stage domain.LifeStage, flags domain.FlagSet) Recommendations {
	meats := []string{"Turkey (lean, cooked)", "White Fish (cod, cooked)", "Salmon (cooked)", "Egg (cooked)", "Lamb (lean, cooked)"}
	vegs := []string{"Pumpkin (cooked)", "Zucchini (cooked)", "Green Beans (cooked)", "Carrot (cooked)", "Bell Pepper (red, cooked)"}
	carbs := []string{"Sweet Potato (cooked)", "Brown Rice (cooked)", "Oats (cooked)", "Quinoa (cooked)"}
	treats := []string{"Blueberries (small portions)", "Apple (peeled, no seeds)", "Strawberries (small portions)"}

	switch stage {
	case domain.StagePuppy:
		meats = append(meats, "Chicken (lean, cooked)", "Beef (lean, cooked)")
		carbs = append(carbs, "White Rice (cooked)")
		vegs = append(vegs, "Pumpkin (cooked)")
	case domain.StageSenior:
		meats = append(meats, "White Fish (cod, cooked)", "Salmon (cooked)")
		vegs = append(vegs, "Pumpkin (cooked)", "Zucchini (cooked)")
	}

	if flags.Has(domain.FlagSensitiveGut) {
		meats = append(meats, "Turkey (lean, cooked)", "White Fish (cod, cooked)")
		vegs = append(vegs, "Pumpkin (cooked)")
		carbs = append(carbs, "White Rice (cooked)", "Oats (cooked)")
	}
	if flags.Has(domain.FlagSkinCoat) {
		meats = append(meats, "Salmon (cooked)", "Sardines (cooked, deboned)")
		treats = append(treats, "Blueberries (small portions)")
	}
	if flags.Has(domain.FlagWeightLoss) {
		meats = append(meats, "Turkey (lean, cooked)", "White Fish (cod, cooked)", "Rabbit (cooked)")
		vegs = append(vegs, "Green Beans (cooked)", "Zucchini (cooked)", "Cauliflower (cooked)")
	}
	if flags.Has(domain.FlagPancreatitis) {
		kept := meats[:0:0]
		for _, m := range meats {
			if !lowFatExcluded[m] {
				kept = append(kept, m)
			}
		}
		meats = append(kept, "Turkey (lean, cooked)", "White Fish (cod, cooked)")
	}

	return Recommendations{
		domain.CategoryMeat:  dedupeKnown(meats),
		domain.CategoryVeg:   dedupeKnown(vegs),
		domain.CategoryCarb:  dedupeKnown(carbs),
		domain.CategoryTreat: dedupeKnown(treats),
	}
}

func dedupeKnown(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if !Has(n) || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
