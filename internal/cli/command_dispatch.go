package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/pawplan/internal/cli/formatter"
	"github.com/alexanderramin/pawplan/internal/domain"
)

// executeCommand dispatches one shell line. Shell verbs and the wizard
// forms are handled here; everything else runs through the cobra tree.
func (c *commandBar) executeCommand(input string) tea.Cmd {
	parts, err := splitShellArgs(input)
	if err != nil {
		return outputCmd(shellError(err))
	}
	if len(parts) == 0 {
		return nil
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help":
		if len(args) == 0 {
			return outputCmd(formatter.FormatShellHelp())
		}
	case "clear":
		// Enter already dismissed the previous output.
		return nil
	case "exit", "quit":
		return func() tea.Msg { return quitMsg{} }
	case "shell":
		return outputCmd(formatter.StyleYellow.Render("Already in the shell.") + "\n")
	case "dog", "dogs":
		if len(args) == 1 && args[0] == "add" {
			return c.startDogAddWizard()
		}
		if len(args) >= 1 && args[0] == "edit" && len(args) <= 2 && !hasFlag(args) {
			return c.startDogEditWizard(firstArg(args[1:]))
		}
	case "taste":
		if len(args) == 1 && args[0] == "log" {
			return c.startTasteWizard()
		}
	}

	return outputCmd(captureCobraOutput(c.state.App, parts))
}

func hasFlag(args []string) bool {
	for _, a := range args {
		if strings.HasPrefix(a, "-") {
			return true
		}
	}
	return false
}

// captureCobraOutput runs args through a fresh command tree and returns
// everything it printed, errors included.
func captureCobraOutput(app *App, args []string) string {
	root := NewRootCmd(app)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		buf.WriteString(shellError(err))
		if strings.Contains(err.Error(), "unknown command") {
			buf.WriteString(formatter.Dim("Type 'help' for the command list.") + "\n")
		}
	}
	return buf.String()
}

func (c *commandBar) startDogAddWizard() tea.Cmd {
	app := c.state.App
	values := newDogFormValues(domain.NewDefaultDog(""))
	return pushView(newWizardView("Add dog", wizardDogProfile(values), func() tea.Cmd {
		patch, err := values.patch()
		if err != nil {
			return outputCmd(shellError(err))
		}
		d, err := app.Dogs.Add(context.Background(), patch.Apply(domain.NewDefaultDog("")))
		if err != nil {
			return outputCmd(shellError(err))
		}
		return outputCmd(fmt.Sprintf("%s %s\n", formatter.StyleGreen.Render("Added"), formatter.Bold(d.DisplayName())) +
			formatter.FormatDogCard(d, true))
	}))
}

func (c *commandBar) startDogEditWizard(ref string) tea.Cmd {
	app := c.state.App
	ctx := context.Background()
	d, err := resolveDog(ctx, app, ref)
	if err != nil {
		return outputCmd(shellError(err))
	}
	values := newDogFormValues(d)
	return pushView(newWizardView("Edit "+d.DisplayName(), wizardDogProfile(values), func() tea.Cmd {
		patch, err := values.patch()
		if err != nil {
			return outputCmd(shellError(err))
		}
		updated, err := app.Dogs.Edit(context.Background(), d.ID, patch)
		if err != nil {
			return outputCmd(shellError(err))
		}
		active, _ := app.Dogs.Active(context.Background())
		return outputCmd(fmt.Sprintf("%s %s\n", formatter.StyleGreen.Render("Saved"), formatter.Bold(updated.DisplayName())) +
			formatter.FormatDogCard(updated, active != nil && active.ID == updated.ID))
	}))
}

func (c *commandBar) startTasteWizard() tea.Cmd {
	app := c.state.App
	d, err := app.Dogs.Active(context.Background())
	if err != nil {
		return outputCmd(shellError(err))
	}
	values := newTasteFormValues()
	return pushView(newWizardView("Taste log", wizardTasteLog(d.DisplayName(), values), func() tea.Cmd {
		e, err := values.entry(d.ID)
		if err != nil {
			return outputCmd(shellError(err))
		}
		if err := app.Tastes.Log(context.Background(), e); err != nil {
			return outputCmd(shellError(err))
		}
		return outputCmd(fmt.Sprintf("%s %s for %s\n",
			formatter.StyleGreen.Render("Logged"),
			formatter.PreferenceStyle(e.Preference).Render(string(e.Preference)),
			formatter.Bold(d.DisplayName())))
	}))
}
