package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/pawplan/internal/cli/formatter"
)

// commandBar is the persistent text input at the bottom of the shell. It
// handles command entry, suggestions and history.
type commandBar struct {
	input   textinput.Model
	state   *sharedState
	focused bool

	historyPath string
	history     []string
	historyIdx  int
}

func newCommandBar(state *sharedState) commandBar {
	ti := textinput.New()
	ti.Prompt = ""
	ti.ShowSuggestions = true
	ti.CharLimit = 500
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))

	path := ""
	if state.App != nil {
		path = state.App.Config.HistoryPath
	}
	hist := loadHistoryFromPath(path)

	return commandBar{
		input:       ti,
		state:       state,
		historyPath: path,
		history:     hist,
		historyIdx:  len(hist),
	}
}

func (c *commandBar) Focus() {
	c.focused = true
	c.input.Focus()
}

func (c *commandBar) Blur() {
	c.focused = false
	c.input.Blur()
}

func (c *commandBar) Focused() bool {
	return c.focused
}

func (c *commandBar) SetWidth(w int) {
	c.input.Width = w - len(c.promptPrefixPlain()) - 1
}

// Update handles key messages while the bar is focused.
func (c *commandBar) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(c.input.Value())
		c.input.Reset()
		c.input.SetSuggestions(nil)
		if input == "" {
			return nil
		}
		c.addHistory(input)
		return c.executeCommand(input)

	case tea.KeyUp:
		c.historyUp()
		return nil

	case tea.KeyDown:
		c.historyDown()
		return nil

	case tea.KeyEsc:
		c.Blur()
		return nil

	default:
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		c.updateSuggestions()
		return cmd
	}
}

// UpdateNonKey handles non-key messages such as cursor blink.
func (c *commandBar) UpdateNonKey(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

func (c *commandBar) View() string {
	if !c.focused {
		return c.promptPrefix() + formatter.Dim("press : to type a command")
	}
	return c.promptPrefix() + c.input.View()
}

func (c *commandBar) promptPrefix() string {
	if c.state.ActiveDogName == "" {
		return formatter.StylePurple.Render("pawplan") + " " + formatter.Dim("❯") + " "
	}
	return formatter.StylePurple.Render("pawplan") + " " +
		formatter.Dim("(") + formatter.StyleGreen.Render(c.state.ActiveDogName) + formatter.Dim(")") +
		" " + formatter.Dim("❯") + " "
}

func (c *commandBar) promptPrefixPlain() string {
	if c.state.ActiveDogName == "" {
		return "pawplan > "
	}
	return "pawplan (" + c.state.ActiveDogName + ") > "
}

// ── history ──────────────────────────────────────────────────────────────────

func (c *commandBar) addHistory(line string) {
	c.history = append(c.history, line)
	c.historyIdx = len(c.history)
	appendHistoryToPath(c.historyPath, line)
}

func (c *commandBar) historyUp() {
	if c.historyIdx > 0 {
		c.historyIdx--
		c.input.SetValue(c.history[c.historyIdx])
		c.input.CursorEnd()
	}
}

func (c *commandBar) historyDown() {
	if c.historyIdx < len(c.history)-1 {
		c.historyIdx++
		c.input.SetValue(c.history[c.historyIdx])
		c.input.CursorEnd()
	} else {
		c.historyIdx = len(c.history)
		c.input.SetValue("")
	}
}

// ── suggestions ──────────────────────────────────────────────────────────────

func allCommandNames() []string {
	return []string{
		"dog", "energy", "ratio", "plan", "taste",
		"ingredients", "presets", "supplements", "breeds",
		"clear", "help", "exit", "quit",
	}
}

func subcommandNames() map[string][]string {
	return map[string][]string{
		"dog":         {"add", "list", "use", "show", "edit", "remove"},
		"plan":        {"week"},
		"taste":       {"log", "list", "summary"},
		"ingredients": {"list", "show"},
	}
}

// updateSuggestions offers whole-line completions, since textinput matches
// suggestions against the full input value.
func (c *commandBar) updateSuggestions() {
	c.input.SetSuggestions(lineSuggestions(c.input.Value()))
}

func lineSuggestions(text string) []string {
	if text == "" {
		return nil
	}
	parts := strings.Fields(text)
	trailingSpace := strings.HasSuffix(text, " ")

	if len(parts) == 1 && !trailingSpace {
		return filterSuggestions(allCommandNames(), parts[0])
	}

	cmd := strings.ToLower(parts[0])
	subs, ok := subcommandNames()[cmd]
	if !ok {
		return nil
	}
	prefix := ""
	switch {
	case len(parts) == 2 && !trailingSpace:
		prefix = parts[1]
	case len(parts) == 1 && trailingSpace:
	default:
		return nil
	}
	matches := filterSuggestions(subs, prefix)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, parts[0]+" "+m)
	}
	return out
}

// filterSuggestions returns items from pool that start with prefix
// (case-insensitive).
func filterSuggestions(pool []string, prefix string) []string {
	if prefix == "" {
		return pool
	}
	lp := strings.ToLower(prefix)
	var result []string
	for _, s := range pool {
		if strings.HasPrefix(strings.ToLower(s), lp) {
			result = append(result, s)
		}
	}
	return result
}
