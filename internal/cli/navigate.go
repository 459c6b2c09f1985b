package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views and the command bar. The appModel
// handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg returns to the previous view.
type popViewMsg struct{}

// cmdOutputMsg carries command output to be shown in the content area.
type cmdOutputMsg struct {
	output string
}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel pops the wizard view, then runs nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// quitMsg signals the app to quit.
type quitMsg struct{}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func outputCmd(s string) tea.Cmd {
	if s == "" {
		return nil
	}
	return func() tea.Msg { return cmdOutputMsg{output: s} }
}

func wizardCompleteOutput(s string) tea.Msg {
	return wizardCompleteMsg{nextCmd: outputCmd(s)}
}
