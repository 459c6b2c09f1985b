package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/pawplan/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// Grams renders a gram amount rounded to the nearest gram.
func Grams(g float64) string {
	return fmt.Sprintf("%.0f g", g)
}

func Kcal(k float64) string {
	return fmt.Sprintf("%.0f kcal", k)
}

// Ratio renders a split as "50/35/15".
func Ratio(r domain.Ratio) string {
	return fmt.Sprintf("%d/%d/%d", r.MeatPct, r.VegPct, r.CarbPct)
}

// KeyValue renders an aligned "label  value" line.
func KeyValue(label, value string) string {
	return "  " + StyleDim.Render(fmt.Sprintf("%-18s", label)) + " " + value + "\n"
}

// Bullets renders one dim bullet per line, or a dim placeholder when empty.
func Bullets(items []string) string {
	if len(items) == 0 {
		return "  " + Dim("(none)") + "\n"
	}
	var b strings.Builder
	for _, it := range items {
		b.WriteString("  " + Dim("•") + " " + it + "\n")
	}
	return b.String()
}

// Truncate shortens s to n visible runes with a trailing ellipsis.
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
