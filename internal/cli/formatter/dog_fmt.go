package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pawplan/internal/domain"
)

// FormatDogList renders the session's profiles, marking the active one.
func FormatDogList(dogs []*domain.DogProfile, activeID string) string {
	if len(dogs) == 0 {
		return Dim("No dogs in this session.") + "\n"
	}
	headers := []string{"#", "NAME", "BREED", "AGE", "WEIGHT", "ACTIVITY", "MEALS", "ID"}
	rows := make([][]string, 0, len(dogs))
	for _, d := range dogs {
		marker := fmt.Sprintf("%d", d.Position)
		name := d.DisplayName()
		if d.ID == activeID {
			marker = StyleGreen.Render("●") + " " + marker
			name = StyleGreen.Render(name)
		}
		rows = append(rows, []string{
			marker,
			name,
			Truncate(d.Breed, 28),
			fmt.Sprintf("%gy", d.AgeYears),
			fmt.Sprintf("%g kg", d.WeightKg),
			string(d.Activity),
			fmt.Sprintf("%d", d.MealsPerDay),
			Dim(shortID(d.ID)),
		})
	}
	return RenderTable(headers, rows)
}

// FormatDogCard renders the full profile.
func FormatDogCard(d *domain.DogProfile, active bool) string {
	var b strings.Builder
	b.WriteString(KeyValue("Breed", d.Breed))
	b.WriteString(KeyValue("Age", fmt.Sprintf("%g years (%s)", d.AgeYears, d.LifeStage())))
	b.WriteString(KeyValue("Weight", fmt.Sprintf("%g kg", d.WeightKg)))
	neutered := "no"
	if d.Neutered {
		neutered = "yes"
	}
	b.WriteString(KeyValue("Neutered", neutered))
	b.WriteString(KeyValue("Activity", string(d.Activity)))
	b.WriteString(KeyValue("Considerations", d.Flags.String()))
	b.WriteString(KeyValue("Meals per day", fmt.Sprintf("%d", d.MealsPerDay)))
	b.WriteString(KeyValue("Energy density", fmt.Sprintf("%.2f kcal/g", d.KcalPerGram)))
	b.WriteString(KeyValue("ID", Dim(d.ID)))

	title := d.DisplayName()
	if active {
		title += " (active)"
	}
	return RenderBox(title, strings.TrimRight(b.String(), "\n")) + "\n"
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
