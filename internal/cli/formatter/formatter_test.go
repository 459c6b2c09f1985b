package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/pawplan/internal/catalog"
	"github.com/alexanderramin/pawplan/internal/contract"
	"github.com/alexanderramin/pawplan/internal/domain"
	"github.com/alexanderramin/pawplan/internal/planner"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"A", "LONGER"}, [][]string{{"wide cell", "x"}, {"b", "y"}})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, strings.Index(lines[0], "LONGER"), strings.Index(lines[2], "x"))
	assert.Equal(t, strings.Index(lines[2], "x"), strings.Index(lines[3], "y"))
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"a"}}))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
	assert.Equal(t, "…", Truncate("abc", 1))
}

func TestFormatters_Ratio(t *testing.T) {
	assert.Equal(t, "50/35/15", Ratio(domain.Ratio{MeatPct: 50, VegPct: 35, CarbPct: 15}))
	assert.Equal(t, "212 g", Grams(211.7))
}

func TestFormatDogList_MarksActive(t *testing.T) {
	a := domain.NewDefaultDog("aaaaaaaa-1111")
	a.Position = 1
	b := domain.NewDefaultDog("bbbbbbbb-2222")
	b.Position = 2
	b.Name = "Rex"

	out := FormatDogList([]*domain.DogProfile{a, b}, b.ID)
	assert.Contains(t, out, "Dog 1")
	assert.Contains(t, out, "● 2")
	assert.Contains(t, out, "bbbbbbbb")
}

func TestFormatWeekPlan_IncludesShoppingAndWarnings(t *testing.T) {
	dog := domain.NewDefaultDog("d1")
	dog.Position = 1
	days, _ := planner.BuildWeekPlan(
		[]domain.Combo{{Meat: "Chicken (lean, cooked)", Veg: "Pumpkin (cooked)", Carb: "Oats (cooked)"}},
		domain.Grams{Meat: 100, Veg: 70, Carb: 30}, 2, []string{"Apple (peeled, no seeds)"},
	)
	resp := &contract.WeekPlanResponse{
		Dog:        dog,
		Seed:       42,
		Ratio:      domain.Ratio{MeatPct: 50, VegPct: 35, CarbPct: 15},
		RatioLabel: "Balanced",
		DailyGrams: 200,
		Days:       days,
		Shopping:   planner.BuildShoppingList(days),
		Warnings:   []string{"something odd"},
	}
	out := FormatWeekPlan(resp)
	assert.Contains(t, out, "Chicken (lean, cooked)")
	assert.Contains(t, out, "TOPPER")
	assert.Contains(t, out, "100/70/30")
	assert.Contains(t, out, "50/35/15")
	assert.Contains(t, out, "SHOPPING LIST")
	assert.Contains(t, out, "something odd")
}

func TestFormatShoppingList_Empty(t *testing.T) {
	assert.Contains(t, FormatShoppingList(planner.ShoppingList{}), "Nothing to buy")
}

func TestFormatPreferenceSummary_RanksByScore(t *testing.T) {
	prefs := planner.PreferenceMaps{
		Protein: map[string]float64{"Beef (lean, cooked)": 0.5, "Turkey (lean, cooked)": 3},
		Veg:     map[string]float64{},
	}
	out := FormatPreferenceSummary("Rex", prefs)
	assert.Less(t, strings.Index(out, "Turkey"), strings.Index(out, "Beef"))
	assert.Contains(t, out, "(no entries)")
}

func TestFormatSupplements_Highlight(t *testing.T) {
	names := catalog.SuggestSupplements([]string{"Joint/Mobility"})
	require.NotEmpty(t, names)
	out := FormatSupplements(catalog.Supplements(), names)
	assert.Contains(t, out, names[0])
	assert.NotContains(t, out, "Dental Additives")
}

func TestFormatIngredientCard(t *testing.T) {
	in, ok := catalog.Lookup("Pumpkin (cooked)")
	require.True(t, ok)
	out := FormatIngredientCard(in)
	assert.Contains(t, out, "PUMPKIN (COOKED)")
	assert.Contains(t, out, "Benefits")
}

func TestFormatShellHelp_ListsCommands(t *testing.T) {
	out := FormatShellHelp()
	for _, c := range []string{"dog add", "plan week", "taste summary", "breeds"} {
		assert.Contains(t, out, c)
	}
}
