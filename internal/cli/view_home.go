package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/pawplan/internal/cli/formatter"
)

// homeView is the bottom of the stack: the welcome banner and the
// session's dogs.
type homeView struct {
	state *sharedState
}

func newHomeView(state *sharedState) *homeView {
	return &homeView{state: state}
}

func (v *homeView) Init() tea.Cmd { return nil }

func (v *homeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) { return v, nil }

func (v *homeView) View() string {
	var b strings.Builder
	b.WriteString(formatter.FormatShellWelcome())

	ctx := context.Background()
	dogs, err := v.state.App.Dogs.List(ctx)
	if err != nil {
		b.WriteString(shellError(err))
		return b.String()
	}
	activeID := ""
	if d, err := v.state.App.Dogs.Active(ctx); err == nil {
		activeID = d.ID
	}
	b.WriteString(formatter.FormatDogList(dogs, activeID))
	return b.String()
}

func (v *homeView) ID() ViewID    { return ViewHome }
func (v *homeView) Title() string { return "" }
func (v *homeView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}
