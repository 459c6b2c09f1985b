package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pawplan/internal/domain"
	"github.com/alexanderramin/pawplan/internal/planner"
)

// FormatTasteLog renders taste entries oldest first.
func FormatTasteLog(entries []*domain.TasteEntry) string {
	if len(entries) == 0 {
		return Dim("No taste entries yet. Log one with 'taste log'.") + "\n"
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			orDash(e.Protein),
			orDash(e.Veg),
			PreferenceStyle(e.Preference).Render(string(e.Preference)),
			Truncate(e.Note, 40),
		})
	}
	return RenderTable([]string{"WHEN", "PROTEIN", "VEG", "REACTION", "NOTE"}, rows)
}

// FormatPreferenceSummary ranks proteins and vegetables by mean score.
func FormatPreferenceSummary(dogName string, prefs planner.PreferenceMaps) string {
	var b strings.Builder
	b.WriteString(Header(dogName+" taste profile") + "\n")
	b.WriteString(formatRanked("Proteins", planner.RankPreferences(prefs.Protein)))
	b.WriteString(formatRanked("Vegetables", planner.RankPreferences(prefs.Veg)))
	b.WriteString(Dim("  Scores: 0 Dislike · 1 Neutral · 2 Like · 3 Love") + "\n")
	return b.String()
}

func formatRanked(title string, ranked []planner.RankedPreference) string {
	var b strings.Builder
	b.WriteString("\n  " + Bold(title) + "\n")
	if len(ranked) == 0 {
		b.WriteString("  " + Dim("(no entries)") + "\n")
		return b.String()
	}
	for _, r := range ranked {
		b.WriteString(fmt.Sprintf("  %s  %s\n", ScoreStyle(r.Score).Render(fmt.Sprintf("%.2f", r.Score)), r.Name))
	}
	return b.String()
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return Dim("-")
	}
	return *s
}
