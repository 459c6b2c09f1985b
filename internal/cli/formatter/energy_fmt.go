package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pawplan/internal/contract"
	"github.com/alexanderramin/pawplan/internal/domain"
)

// FormatEnergy renders the daily energy estimate and gram targets.
func FormatEnergy(resp *contract.EnergyResponse) string {
	e := resp.Energy
	var b strings.Builder
	b.WriteString(KeyValue("RER", Kcal(e.RER)))
	b.WriteString(KeyValue("MER", Kcal(e.MER)))
	b.WriteString(KeyValue("Daily target", StyleGreen.Render(Kcal(e.AdjustedMER))))
	b.WriteString(KeyValue("Basis", e.Explanation))
	b.WriteString(KeyValue("Ratio", fmt.Sprintf("%s  %s", Ratio(resp.Ratio), Dim(resp.RatioLabel))))
	b.WriteString(KeyValue("Cooked mix / day", fmt.Sprintf("%s at %.2f kcal/g", Grams(resp.DailyGrams), resp.Dog.KcalPerGram)))

	var out strings.Builder
	out.WriteString(RenderBox(resp.Dog.DisplayName()+" energy", strings.TrimRight(b.String(), "\n")))
	out.WriteString("\n\n")

	out.WriteString(Header("Gram targets") + "\n")
	out.WriteString(formatTargets(resp.Targets, resp.PerMeal, resp.Dog.MealsPerDay))

	if len(resp.Lens) > 0 {
		out.WriteString("\n" + Header("Macro energy lens") + "\n")
		rows := make([][]string, 0, len(resp.Lens))
		for _, l := range resp.Lens {
			rows = append(rows, []string{
				CategoryStyle(l.Category).Render(string(l.Category)),
				Grams(l.Grams),
				Kcal(l.Kcal),
			})
		}
		out.WriteString(RenderTable([]string{"CATEGORY", "GRAMS", "APPROX ENERGY"}, rows))
	}

	out.WriteString("\n" + Header("Recommended for this profile") + "\n")
	for _, cat := range []domain.Category{domain.CategoryMeat, domain.CategoryVeg, domain.CategoryCarb, domain.CategoryTreat} {
		names := resp.Recommendations[cat]
		out.WriteString("  " + CategoryStyle(cat).Render(fmt.Sprintf("%-6s", cat)) + " " + strings.Join(names, ", ") + "\n")
	}
	return out.String()
}

func formatTargets(daily, perMeal domain.Grams, meals int) string {
	headers := []string{"", "MEAT", "VEG", "CARB", "TOTAL"}
	rows := [][]string{
		{"Per day", Grams(daily.Meat), Grams(daily.Veg), Grams(daily.Carb), Grams(daily.Total())},
		{fmt.Sprintf("Per meal (x%d)", meals), Grams(perMeal.Meat), Grams(perMeal.Veg), Grams(perMeal.Carb), Grams(perMeal.Total())},
	}
	return RenderTable(headers, rows)
}

// FormatPresets renders the ratio presets, marking the default.
func FormatPresets(presets []domain.RatioPreset, defaultKey string) string {
	rows := make([][]string, 0, len(presets))
	for _, p := range presets {
		key := p.Key
		if p.Key == defaultKey {
			key = StyleGreen.Render(key)
		}
		rows = append(rows, []string{key, p.Label, Ratio(p.Ratio()), Dim(p.Note)})
	}
	return RenderTable([]string{"KEY", "PRESET", "M/V/C", "NOTE"}, rows)
}
