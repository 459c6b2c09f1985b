package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pawplan/internal/catalog"
	"github.com/alexanderramin/pawplan/internal/domain"
)

// FormatIngredientList renders the encyclopedia rows with per-100g facts.
func FormatIngredientList(items []domain.Ingredient) string {
	if len(items) == 0 {
		return Dim("No ingredients match.") + "\n"
	}
	rows := make([][]string, 0, len(items))
	for _, in := range items {
		rows = append(rows, []string{
			in.Name,
			CategoryStyle(in.Category).Render(string(in.Category)),
			fmt.Sprintf("%g", in.Per100g.Kcal),
			fmt.Sprintf("%g", in.Per100g.ProteinG),
			fmt.Sprintf("%g", in.Per100g.FatG),
			fmt.Sprintf("%g", in.Per100g.CarbsG),
		})
	}
	return RenderTable([]string{"INGREDIENT", "CATEGORY", "KCAL", "PROTEIN", "FAT", "CARBS"}, rows) +
		Dim("  Values per 100 g cooked.") + "\n"
}

// FormatIngredientCard renders one ingredient in detail.
func FormatIngredientCard(in domain.Ingredient) string {
	var b strings.Builder
	b.WriteString(KeyValue("Category", CategoryStyle(in.Category).Render(string(in.Category))))
	b.WriteString(KeyValue("Per 100 g", fmt.Sprintf("%g kcal · %g g protein · %g g fat · %g g carbs",
		in.Per100g.Kcal, in.Per100g.ProteinG, in.Per100g.FatG, in.Per100g.CarbsG)))
	if in.MicroNote != "" {
		b.WriteString(KeyValue("Micronutrients", in.MicroNote))
	}
	b.WriteString("\n  " + StyleGreen.Render("Benefits") + "\n")
	b.WriteString(Bullets(in.Benefits))
	b.WriteString("\n  " + StyleYellow.Render("Cautions") + "\n")
	b.WriteString(Bullets(in.Cautions))
	return RenderBox(in.Name, strings.TrimRight(b.String(), "\n")) + "\n"
}

// FormatSupplements renders the guide. When highlight is non-empty only the
// named supplements are shown, in that order.
func FormatSupplements(all []catalog.Supplement, highlight []string) string {
	shown := all
	if len(highlight) > 0 {
		byName := make(map[string]catalog.Supplement, len(all))
		for _, s := range all {
			byName[s.Name] = s
		}
		shown = shown[:0:0]
		for _, n := range highlight {
			if s, ok := byName[n]; ok {
				shown = append(shown, s)
			}
		}
	}
	var b strings.Builder
	for i, s := range shown {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(StyleHeader.Render(s.Name) + "\n")
		b.WriteString("  " + s.Why + "\n")
		b.WriteString(KeyValue("Best for", strings.Join(s.BestFor, ", ")))
		b.WriteString(KeyValue("Cautions", s.Cautions))
		b.WriteString(KeyValue("Pairing", s.Pairing))
	}
	b.WriteString("\n" + Dim("  Supplements are not a substitute for a veterinary-formulated diet.") + "\n")
	return b.String()
}

// FormatBreeds renders matched breed names with their facets.
func FormatBreeds(names []string) string {
	rows := make([][]string, 0, len(names))
	for _, n := range names {
		br, ok := catalog.LookupBreed(n)
		if !ok {
			rows = append(rows, []string{n, "", "", ""})
			continue
		}
		rows = append(rows, []string{br.Name, br.SizeClass, br.Region, Dim(br.FCIGroup)})
	}
	return RenderTable([]string{"BREED", "SIZE", "REGION", "FCI GROUP"}, rows)
}
