package catalog

import (
	"sort"
	"strings"

	"github.com/alexanderramin/pawplan/internal/domain"
)

type Breed struct {
	Name      string
	FCIGroup  string
	Region    string
	SizeClass string
	Notes     string
}

var breeds = func() []Breed {
	b := []Breed{
		{Name: domain.DefaultBreed, FCIGroup: "N/A", Region: "Global", SizeClass: "Unknown"},
		{Name: "Labrador Retriever", FCIGroup: "Group 8 - Retrievers, Flushing Dogs, Water Dogs", Region: "Europe", SizeClass: "Large"},
		{Name: "German Shepherd Dog", FCIGroup: "Group 1 - Sheepdogs and Cattle Dogs", Region: "Europe", SizeClass: "Large"},
		{Name: "Shiba Inu", FCIGroup: "Group 5 - Spitz and Primitive types", Region: "Asia", SizeClass: "Medium"},
	}
	sort.Slice(b, func(i, j int) bool { return b[i].Name < b[j].Name })
	return b
}()

// Breeds returns the breed table sorted by name.
func Breeds() []Breed {
	out := make([]Breed, len(breeds))
	copy(out, breeds)
	return out
}

// LookupBreed finds breed metadata by exact name.
func LookupBreed(name string) (Breed, bool) {
	for _, b := range breeds {
		if b.Name == name {
			return b, true
		}
	}
	return Breed{}, false
}

// BreedFilter selects breeds. Empty slices match everything; Search matches
// name or notes case-insensitively.
type BreedFilter struct {
	Search  string
	Groups  []string
	Regions []string
	Sizes   []string
}

// FilterBreeds returns matching breed names. It never returns an empty
// list: with no matches the default mixed-breed entry is returned.
func FilterBreeds(f BreedFilter) []string {
	needle := strings.ToLower(strings.TrimSpace(f.Search))
	var out []string
	for _, b := range breeds {
		if !inOrEmpty(f.Groups, b.FCIGroup) || !inOrEmpty(f.Regions, b.Region) || !inOrEmpty(f.Sizes, b.SizeClass) {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(b.Name), needle) &&
			!strings.Contains(strings.ToLower(b.Notes), needle) {
			continue
		}
		out = append(out, b.Name)
	}
	if len(out) == 0 {
		return []string{domain.DefaultBreed}
	}
	return out
}

// BreedFacets lists the distinct sorted values of each filter column.
func BreedFacets() (groups, regions, sizes []string) {
	g, r, s := map[string]bool{}, map[string]bool{}, map[string]bool{}
	for _, b := range breeds {
		g[b.FCIGroup] = true
		r[b.Region] = true
		s[b.SizeClass] = true
	}
	return sortedKeys(g), sortedKeys(r), sortedKeys(s)
}

func inOrEmpty(set []string, v string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
