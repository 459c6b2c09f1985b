package planner

import (
	"sort"

	"github.com/alexanderramin/pawplan/internal/domain"
)

// PreferenceMaps holds mean preference scores (0..3) keyed by ingredient name.
type PreferenceMaps struct {
	Protein map[string]float64
	Veg     map[string]float64
}

// AggregatePreferences reduces the taste log to per-ingredient mean scores
// for one dog. Entries for other dogs are ignored, as are entries without
// the relevant field.
func AggregatePreferences(log []domain.TasteEntry, dogID string) PreferenceMaps {
	type acc struct {
		sum float64
		n   int
	}
	protein := map[string]*acc{}
	veg := map[string]*acc{}
	add := func(m map[string]*acc, name string, score int) {
		a, ok := m[name]
		if !ok {
			a = &acc{}
			m[name] = a
		}
		a.sum += float64(score)
		a.n++
	}

	for _, e := range log {
		if e.DogID != dogID {
			continue
		}
		score := e.Preference.Score()
		if e.Protein != nil {
			add(protein, *e.Protein, score)
		}
		if e.Veg != nil {
			add(veg, *e.Veg, score)
		}
	}

	out := PreferenceMaps{
		Protein: make(map[string]float64, len(protein)),
		Veg:     make(map[string]float64, len(veg)),
	}
	for name, a := range protein {
		out.Protein[name] = a.sum / float64(a.n)
	}
	for name, a := range veg {
		out.Veg[name] = a.sum / float64(a.n)
	}
	return out
}

// RankedPreference is one row of a preference summary.
type RankedPreference struct {
	Name  string
	Score float64
}

// RankPreferences orders a score map by score descending, then name.
func RankPreferences(m map[string]float64) []RankedPreference {
	out := make([]RankedPreference, 0, len(m))
	for name, s := range m {
		out = append(out, RankedPreference{Name: name, Score: s})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Name < out[j].Name
	})
	return out
}
