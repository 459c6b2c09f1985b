package catalog

import (
	"sort"
	"strings"

	"github.com/alexanderramin/pawplan/internal/domain"
)

func ing(name string, cat domain.Category, kcal, protein, fat, carbs float64, micro string, benefits, cautions []string) domain.Ingredient {
	return domain.Ingredient{
		Name:      name,
		Category:  cat,
		Per100g:   domain.NutritionFacts{Kcal: kcal, ProteinG: protein, FatG: fat, CarbsG: carbs},
		MicroNote: micro,
		Benefits:  benefits,
		Cautions:  cautions,
	}
}

var ingredients = []domain.Ingredient{
	// Meats / proteins
	ing("Chicken (lean, cooked)", domain.CategoryMeat, 165, 31, 3.6, 0, "B vitamins, selenium.",
		[]string{"High-quality protein for muscle maintenance", "Generally well tolerated", "Excellent base protein for rotation"},
		[]string{"Avoid if chicken allergy suspected", "Remove skin for lower-fat plans"}),
	ing("Turkey (lean, cooked)", domain.CategoryMeat, 150, 29, 2.0, 0, "Niacin, selenium.",
		[]string{"Lean protein option", "Great for weight-aware plans", "Mild flavor"},
		[]string{"Avoid processed/deli products"}),
	ing("Beef (lean, cooked)", domain.CategoryMeat, 200, 26, 10, 0, "Iron, zinc, B12.",
		[]string{"Supports red blood cell health", "Strong palatability", "Good for active adults"},
		[]string{"Higher fat depending on cut"}),
	ing("Lamb (lean, cooked)", domain.CategoryMeat, 206, 25, 12, 0, "Zinc, carnitine.",
		[]string{"Alternative protein", "Rich taste for picky dogs", "Useful rotation option"},
		[]string{"Can be richer; adjust for pancreatitis risk"}),
	ing("Pork (lean, cooked)", domain.CategoryMeat, 195, 27, 9, 0, "Thiamine-rich protein.",
		[]string{"Good rotation variety", "Often highly palatable", "Supports energy metabolism"},
		[]string{"Use lean cuts; avoid processed pork"}),
	ing("Duck (lean, cooked)", domain.CategoryMeat, 190, 24, 11, 0, "Rich flavor, B vitamins.",
		[]string{"Great for variety", "High palatability", "Useful to prevent boredom"},
		[]string{"Moderate fat"}),
	ing("Venison (lean, cooked)", domain.CategoryMeat, 158, 30, 3.2, 0, "Often considered novel protein.",
		[]string{"Lean novel option", "Rotation diversity", "Good for some sensitive dogs"},
		[]string{"Novel protein strategies should be vet-guided"}),
	ing("Rabbit (cooked)", domain.CategoryMeat, 173, 33, 3.5, 0, "Very lean, novel option.",
		[]string{"Lean and light", "Excellent rotation diversity"},
		[]string{"Ensure safe sourcing"}),
	ing("Egg (cooked)", domain.CategoryMeat, 155, 13, 11, 1.1, "Complete amino acid profile.",
		[]string{"Top-tier protein quality", "Palatability booster"},
		[]string{"Introduce gradually"}),
	ing("Salmon (cooked)", domain.CategoryMeat, 208, 20, 13, 0, "Omega-3, vitamin D.",
		[]string{"Skin/coat support", "Anti-inflammatory profile", "Good for seniors"},
		[]string{"Higher fat; portion carefully"}),
	ing("White Fish (cod, cooked)", domain.CategoryMeat, 105, 23, 0.9, 0, "Very lean protein.",
		[]string{"Excellent for weight plans", "Gentle for GI-sensitive dogs"},
		[]string{"Keep it plain"}),
	ing("Sardines (cooked, deboned)", domain.CategoryMeat, 208, 25, 11, 0, "Omega-3 rich mini-fish.",
		[]string{"Great topper for coat/joints", "Very palatable"},
		[]string{"Watch sodium if canned"}),

	// Vegetables
	ing("Pumpkin (cooked)", domain.CategoryVeg, 26, 1, 0.1, 6.5, "Soluble fiber + beta-carotene.",
		[]string{"Supports stool quality", "Great transition veggie", "Gentle gut support"},
		[]string{"Too much can dilute calories"}),
	ing("Carrot (cooked)", domain.CategoryVeg, 35, 0.8, 0.2, 8, "Beta-carotene.",
		[]string{"Antioxidant support", "Low calorie micronutrient boost"},
		[]string{"Chop/soften for tiny breeds"}),
	ing("Broccoli (cooked)", domain.CategoryVeg, 34, 2.8, 0.4, 7, "Vitamin C, K.",
		[]string{"Rotation-friendly antioxidants", "Good micronutrient diversity"},
		[]string{"Large amounts may cause gas"}),
	ing("Zucchini (cooked)", domain.CategoryVeg, 17, 1.2, 0.3, 3.1, "Hydration-friendly veggie.",
		[]string{"Great for volumizing meals", "Mild taste"},
		[]string{"Avoid seasoning"}),
	ing("Green Beans (cooked)", domain.CategoryVeg, 31, 1.8, 0.1, 7, "Low-calorie bulk.",
		[]string{"Helpful for weight management", "Gentle fiber"},
		nil),
	ing("Cauliflower (cooked)", domain.CategoryVeg, 25, 1.9, 0.3, 5, "Low-cal crucifer.",
		[]string{"Adds volume", "Good rotation veggie"},
		[]string{"May cause gas"}),
	ing("Sweet Peas (cooked)", domain.CategoryVeg, 84, 5.4, 0.4, 15.6, "Plant protein + fiber.",
		[]string{"Adds variety", "Good texture mix-in"},
		[]string{"Moderate starch"}),
	ing("Kale (cooked, small portions)", domain.CategoryVeg, 35, 2.9, 1.5, 4.4, "Dense micronutrients.",
		[]string{"Small-dose antioxidant boost"},
		[]string{"Use small portions"}),
	ing("Spinach (cooked, small portions)", domain.CategoryVeg, 23, 2.9, 0.4, 3.6, "Folate, magnesium.",
		[]string{"Micronutrient variety"},
		[]string{"Use small portions due to oxalates"}),
	ing("Bell Pepper (red, cooked)", domain.CategoryVeg, 31, 1, 0.3, 6, "Colorful vitamin-rich veggie.",
		[]string{"Adds antioxidant color diversity"},
		[]string{"Avoid spicy/seasoned"}),
	ing("Cabbage (cooked, small portions)", domain.CategoryVeg, 23, 1.3, 0.1, 5.5, "Budget-friendly fiber.",
		[]string{"Adds variety"},
		[]string{"May cause gas"}),
	ing("Cucumber (peeled, small portions)", domain.CategoryVeg, 15, 0.7, 0.1, 3.6, "Hydrating crunch.",
		[]string{"Cooling low-cal add-on"},
		[]string{"Chop small"}),

	// Carbs
	ing("Sweet Potato (cooked)", domain.CategoryCarb, 86, 1.6, 0.1, 20, "Beta-carotene, potassium.",
		[]string{"Palatable energy base", "Great controlled carb"},
		[]string{"Portion for weight control"}),
	ing("Brown Rice (cooked)", domain.CategoryCarb, 123, 2.7, 1.0, 25.6, "Gentle starch base.",
		[]string{"Neutral, easy-to-digest"},
		[]string{"Lower if overweight/diabetic plan"}),
	ing("White Rice (cooked)", domain.CategoryCarb, 130, 2.4, 0.3, 28.2, "Very gentle GI carb.",
		[]string{"Useful during sensitive stomach phases"},
		[]string{"Lower micronutrients vs brown rice"}),
	ing("Oats (cooked)", domain.CategoryCarb, 71, 2.5, 1.4, 12, "Soluble fiber.",
		[]string{"Satiety support", "Gut-friendly option"},
		[]string{"Introduce gradually"}),
	ing("Quinoa (cooked)", domain.CategoryCarb, 120, 4.4, 1.9, 21.3, "Higher protein carb.",
		[]string{"Adds amino acid diversity"},
		[]string{"Rinse well before cooking"}),
	ing("Barley (cooked)", domain.CategoryCarb, 123, 2.3, 0.4, 28, "Fiber-rich grain.",
		[]string{"Satiety-friendly carb"},
		[]string{"Introduce gradually"}),
	ing("Buckwheat (cooked)", domain.CategoryCarb, 92, 3.4, 0.6, 19.9, "Alternative pseudo-grain.",
		[]string{"Variety option"},
		[]string{"Cook thoroughly"}),
	ing("Potato (cooked, plain)", domain.CategoryCarb, 87, 2, 0.1, 20, "Simple starch.",
		[]string{"Palatable limited-ingredient carb"},
		[]string{"Never raw; avoid green parts"}),

	// Oils
	ing("Fish Oil (supplemental)", domain.CategoryOil, 900, 0, 100, 0, "EPA/DHA omega-3s.",
		[]string{"Skin/coat support", "Joint and inflammatory support"},
		[]string{"Dose carefully"}),
	ing("Olive Oil (small amounts)", domain.CategoryOil, 884, 0, 100, 0, "Monounsaturated fats.",
		[]string{"Palatability booster"},
		[]string{"Too much may trigger GI upset"}),
	ing("Flaxseed Oil (small amounts)", domain.CategoryOil, 884, 0, 100, 0, "ALA omega-3 (plant-based).",
		[]string{"Rotation fat option"},
		[]string{"ALA conversion to EPA/DHA is limited"}),
	ing("MCT Oil (very small amounts)", domain.CategoryOil, 900, 0, 100, 0, "Specialized fat.",
		[]string{"Occasional vet-guided senior cognition support"},
		[]string{"Can cause diarrhea"}),

	// Treats / fruit toppers
	ing("Blueberries (small portions)", domain.CategoryTreat, 57, 0.7, 0.3, 14.5, "Antioxidant fruit topper.",
		[]string{"Small antioxidant boost", "Fun topper variety"},
		[]string{"Use small portions"}),
	ing("Apple (peeled, no seeds)", domain.CategoryTreat, 52, 0.3, 0.2, 14, "Hydrating sweet crunch.",
		[]string{"Low-cal treat topper"},
		[]string{"Remove seeds/core"}),
	ing("Strawberries (small portions)", domain.CategoryTreat, 32, 0.7, 0.3, 7.7, "Vitamin C + flavor variety.",
		[]string{"Light fruity enrichment"},
		[]string{"Use small portions"}),
}

var ingredientIndex = func() map[string]int {
	idx := make(map[string]int, len(ingredients))
	for i, in := range ingredients {
		idx[in.Name] = i
	}
	return idx
}()

// Ingredients returns the full catalog in definition order.
func Ingredients() []domain.Ingredient {
	out := make([]domain.Ingredient, len(ingredients))
	copy(out, ingredients)
	return out
}

// Lookup finds an ingredient by exact name.
func Lookup(name string) (domain.Ingredient, bool) {
	i, ok := ingredientIndex[name]
	if !ok {
		return domain.Ingredient{}, false
	}
	return ingredients[i], true
}

// Has reports whether name is a catalog key.
func Has(name string) bool {
	_, ok := ingredientIndex[name]
	return ok
}

// CategoryOf returns the catalog category of name, or CategoryUnknown.
func CategoryOf(name string) domain.Category {
	if in, ok := Lookup(name); ok {
		return in.Category
	}
	return domain.CategoryUnknown
}

// NamesIn lists ingredient names of one category in catalog order.
func NamesIn(cat domain.Category) []string {
	var out []string
	for _, in := range ingredients {
		if in.Category == cat {
			out = append(out, in.Name)
		}
	}
	return out
}

// Resolve matches user input against catalog names. An exact match wins;
// otherwise a unique case-insensitive prefix match is accepted ("chicken"
// resolves to "Chicken (lean, cooked)").
func Resolve(input string, cat domain.Category) (string, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", false
	}
	if in, ok := Lookup(input); ok && (cat == "" || in.Category == cat) {
		return in.Name, true
	}
	lower := strings.ToLower(input)
	var match string
	for _, in := range ingredients {
		if cat != "" && in.Category != cat {
			continue
		}
		if strings.HasPrefix(strings.ToLower(in.Name), lower) {
			if match != "" {
				return "", false
			}
			match = in.Name
		}
	}
	return match, match != ""
}

// IngredientFilter narrows the encyclopedia view.
type IngredientFilter struct {
	Categories []domain.Category
	Search     string
}

// FilterIngredients applies f and sorts by category then name.
func FilterIngredients(f IngredientFilter) []domain.Ingredient {
	allowed := make(map[domain.Category]bool, len(f.Categories))
	for _, c := range f.Categories {
		allowed[c] = true
	}
	needle := strings.ToLower(strings.TrimSpace(f.Search))

	var out []domain.Ingredient
	for _, in := range ingredients {
		if len(allowed) > 0 && !allowed[in.Category] {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(in.Name), needle) {
			continue
		}
		out = append(out, in)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// CategoryMeanKcal averages kcal/100g across a category.
func CategoryMeanKcal(cat domain.Category) float64 {
	var sum float64
	var n int
	for _, in := range ingredients {
		if in.Category == cat {
			sum += in.Per100g.Kcal
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
