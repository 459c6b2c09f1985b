package formatter

import (
	"fmt"
	"strings"
)

// FormatShellWelcome renders the banner shown when the shell starts.
func FormatShellWelcome() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(StylePurple.Render("  pawplan") + "\n")
	b.WriteString(StyleDim.Render("  ─────────────────────────────") + "\n\n")
	b.WriteString(StyleDim.Render("  Profiles live for this session. Pick a dog with 'dog use <n>'.") + "\n\n")
	for _, c := range [][]string{
		{"dog list", "Show the session's dogs"},
		{"energy", "Daily kcal and gram targets"},
		{"plan week", "Generate a 7-day rotation"},
		{"taste log", "Record how a meal went"},
		{"help", "Show all commands"},
	} {
		b.WriteString(fmt.Sprintf("  %s%s\n", StyleGreen.Render(fmt.Sprintf("%-14s", c[0])), StyleDim.Render(c[1])))
	}
	b.WriteString("\n")
	return b.String()
}

type helpCategory struct {
	title    string
	commands [][]string
}

func renderHelpCategory(cat helpCategory) string {
	var b strings.Builder
	b.WriteString("\n " + StyleHeader.Render(strings.ToUpper(cat.title)) + "\n")
	for _, c := range cat.commands {
		b.WriteString("  " + StyleGreen.Render(fmt.Sprintf("%-34s", c[0])) + " " + StyleDim.Render(c[1]) + "\n")
	}
	return b.String()
}

// FormatShellHelp renders the categorized command reference.
func FormatShellHelp() string {
	categories := []helpCategory{
		{
			title: "Dogs",
			commands: [][]string{
				{"dog list", "List profiles (● marks the active dog)"},
				{"dog add", "Add a profile (wizard in the shell)"},
				{"dog use <n|name>", "Switch the active dog"},
				{"dog show [n|name]", "Show a profile"},
				{"dog edit [n|name]", "Edit a profile (wizard in the shell)"},
				{"dog remove <n|name>", "Remove a profile"},
			},
		},
		{
			title: "Planning",
			commands: [][]string{
				{"energy", "Energy estimate and gram targets"},
				{"ratio --meat 55 --veg 30 --carb 15", "Try a custom split"},
				{"plan week [--seed N] [--reshuffle]", "7-day rotation and shopping list"},
				{"plan week --csv shopping.csv", "Also export the shopping list"},
			},
		},
		{
			title: "Taste",
			commands: [][]string{
				{"taste log", "Record a reaction (wizard in the shell)"},
				{"taste list", "Show the active dog's log"},
				{"taste summary", "Ranked preferences"},
			},
		},
		{
			title: "Reference",
			commands: [][]string{
				{"ingredients list [--category Meat]", "Ingredient encyclopedia"},
				{"ingredients show <name>", "Ingredient details"},
				{"presets", "Ratio presets"},
				{"supplements [--focus joint]", "Supplement guide"},
				{"breeds [--search lab]", "Breed atlas"},
			},
		},
		{
			title: "Shell",
			commands: [][]string{
				{"help", "This reference"},
				{"clear", "Clear the output"},
				{"exit", "Leave the shell"},
			},
		},
	}

	var b strings.Builder
	for _, cat := range categories {
		b.WriteString(renderHelpCategory(cat))
	}
	b.WriteString("\n")
	return b.String()
}
