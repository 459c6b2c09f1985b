package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pawplan/internal/contract"
	"github.com/alexanderramin/pawplan/internal/domain"
	"github.com/alexanderramin/pawplan/internal/planner"
)

// FormatWeekPlan renders the rotation, allocations, nutrition and shopping list.
func FormatWeekPlan(resp *contract.WeekPlanResponse) string {
	var summary strings.Builder
	summary.WriteString(KeyValue("Dog", resp.Dog.DisplayName()))
	summary.WriteString(KeyValue("Daily target", Kcal(resp.Energy.AdjustedMER)))
	summary.WriteString(KeyValue("Ratio", fmt.Sprintf("%s  %s", Ratio(resp.Ratio), Dim(resp.RatioLabel))))
	summary.WriteString(KeyValue("Cooked mix / day", Grams(resp.DailyGrams)))
	summary.WriteString(KeyValue("Seed", fmt.Sprintf("%d", resp.Seed)))

	var b strings.Builder
	b.WriteString(RenderBox("Weekly rotation", strings.TrimRight(summary.String(), "\n")))
	b.WriteString("\n\n")
	b.WriteString(Header("Rotation") + "\n")
	b.WriteString(FormatRotationDays(resp.Days))
	b.WriteString("\n" + Header("Portions") + "\n")
	b.WriteString(formatPortions(resp.Days))
	b.WriteString("\n" + Header("Shopping list") + "\n")
	b.WriteString(FormatShoppingList(resp.Shopping))

	if len(resp.Warnings) > 0 {
		b.WriteString("\n" + StyleYellow.Render("Warnings") + "\n")
		for _, w := range resp.Warnings {
			b.WriteString("  " + StyleYellow.Render("!") + " " + w + "\n")
		}
	}
	return b.String()
}

// FormatRotationDays renders one row per day with the chosen combo.
func FormatRotationDays(days []domain.RotationPlanDay) string {
	withTopper := false
	for _, d := range days {
		if d.FruitTopper != "" {
			withTopper = true
			break
		}
	}
	headers := []string{"DAY", "MEAT", "VEG", "CARB"}
	if withTopper {
		headers = append(headers, "TOPPER")
	}
	rows := make([][]string, 0, len(days))
	for _, d := range days {
		row := []string{
			fmt.Sprintf("%d", d.Day),
			StyleRed.Render(d.Combo.Meat),
			StyleGreen.Render(d.Combo.Veg),
			StyleYellow.Render(d.Combo.Carb),
		}
		if withTopper {
			row = append(row, StylePurple.Render(d.FruitTopper))
		}
		rows = append(rows, row)
	}
	return RenderTable(headers, rows)
}

func formatPortions(days []domain.RotationPlanDay) string {
	headers := []string{"DAY", "DAILY M/V/C", "PER MEAL M/V/C", "KCAL", "PROTEIN", "FAT", "CARBS"}
	rows := make([][]string, 0, len(days))
	for _, d := range days {
		rows = append(rows, []string{
			fmt.Sprintf("%d", d.Day),
			gramsTriple(d.Daily),
			gramsTriple(d.PerMeal),
			fmt.Sprintf("%.0f", d.Nutrition.Kcal),
			fmt.Sprintf("%.1f g", d.Nutrition.ProteinG),
			fmt.Sprintf("%.1f g", d.Nutrition.FatG),
			fmt.Sprintf("%.1f g", d.Nutrition.CarbsG),
		})
	}
	return RenderTable(headers, rows)
}

func gramsTriple(g domain.Grams) string {
	return fmt.Sprintf("%.0f/%.0f/%.0f", g.Meat, g.Veg, g.Carb)
}

// FormatShoppingList renders per-ingredient totals followed by category totals.
func FormatShoppingList(list planner.ShoppingList) string {
	if len(list.Items) == 0 {
		return Dim("Nothing to buy.") + "\n"
	}
	rows := make([][]string, 0, len(list.Items))
	for _, it := range list.Items {
		rows = append(rows, []string{
			it.Ingredient,
			CategoryStyle(it.Category).Render(string(it.Category)),
			fmt.Sprintf("%.0f g", it.TotalGrams),
			fmt.Sprintf("%.1f g", it.AvgGramsPerDay),
		})
	}
	var b strings.Builder
	b.WriteString(RenderTable([]string{"INGREDIENT", "CATEGORY", "TOTAL (7 DAYS)", "AVG / DAY"}, rows))

	if len(list.Categories) > 0 {
		b.WriteString("\n")
		parts := make([]string, 0, len(list.Categories))
		for _, c := range list.Categories {
			parts = append(parts, CategoryStyle(c.Category).Render(string(c.Category))+" "+fmt.Sprintf("%.0f g", c.TotalGrams))
		}
		b.WriteString("  " + strings.Join(parts, Dim("  ·  ")) + "\n")
	}
	return b.String()
}
