package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/pawplan/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestAggregatePreferences_MeanPerIngredient(t *testing.T) {
	log := []domain.TasteEntry{
		{DogID: "a", Protein: strPtr("A"), Preference: domain.PrefLike},
		{DogID: "a", Protein: strPtr("A"), Preference: domain.PrefLove},
		{DogID: "b", Protein: strPtr("A"), Preference: domain.PrefDislike},
		{DogID: "a", Veg: strPtr("V"), Preference: domain.PrefDislike},
		{DogID: "a", Protein: strPtr("B"), Veg: strPtr("V"), Preference: domain.PrefLike},
	}
	m := AggregatePreferences(log, "a")

	assert.Equal(t, map[string]float64{"A": 2.5, "B": 2}, m.Protein)
	assert.Equal(t, map[string]float64{"V": 1}, m.Veg)
}

func TestAggregatePreferences_NoEntries(t *testing.T) {
	m := AggregatePreferences(nil, "a")
	assert.Empty(t, m.Protein)
	assert.Empty(t, m.Veg)
}

func TestAggregatePreferences_LabelOnlyEntriesIgnored(t *testing.T) {
	m := AggregatePreferences([]domain.TasteEntry{{DogID: "a", Preference: domain.PrefLove}}, "a")
	assert.Empty(t, m.Protein)
	assert.Empty(t, m.Veg)
}

func TestAggregatePreferences_UnknownLabelScoresNeutral(t *testing.T) {
	m := AggregatePreferences([]domain.TasteEntry{{DogID: "a", Protein: strPtr("A"), Preference: "Meh"}}, "a")
	assert.Equal(t, 1.0, m.Protein["A"])
}

func TestRankPreferences(t *testing.T) {
	got := RankPreferences(map[string]float64{"B": 2, "A": 2, "C": 3, "D": 0})
	assert.Equal(t, []RankedPreference{{"C", 3}, {"A", 2}, {"B", 2}, {"D", 0}}, got)
}
