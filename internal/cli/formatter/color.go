package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/pawplan/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// CategoryStyle colors an ingredient category consistently across views.
func CategoryStyle(cat domain.Category) lipgloss.Style {
	switch cat {
	case domain.CategoryMeat:
		return StyleRed
	case domain.CategoryVeg:
		return StyleGreen
	case domain.CategoryCarb:
		return StyleYellow
	case domain.CategoryOil:
		return StyleBlue
	case domain.CategoryTreat:
		return StylePurple
	default:
		return StyleDim
	}
}

// PreferenceStyle maps a taste label onto the palette.
func PreferenceStyle(p domain.PreferenceLabel) lipgloss.Style {
	switch p {
	case domain.PrefLove:
		return StyleGreen
	case domain.PrefLike:
		return StyleBlue
	case domain.PrefDislike:
		return StyleRed
	default:
		return StyleDim
	}
}

// ScoreStyle colors a 0..3 mean preference score.
func ScoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= 2.5:
		return StyleGreen
	case score >= 1.5:
		return StyleBlue
	case score >= 1:
		return StyleFg
	default:
		return StyleRed
	}
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
