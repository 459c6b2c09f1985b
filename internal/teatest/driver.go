// Package teatest drives bubbletea models synchronously in tests.
//
// A Driver calls Update directly and runs every returned Cmd to completion,
// feeding the resulting messages back in. Cmds that block (cursor blink
// timers) are abandoned after a short timeout.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDepth bounds how many chained Cmds one Send may run.
const maxDepth = 100

// cmdTimeout separates instant Cmds (message factories, in-memory store
// calls) from timer-driven ones such as cursor blink, which waits ~530ms.
const cmdTimeout = 100 * time.Millisecond

// Driver is a synchronous harness around a tea.Model.
type Driver struct {
	t     *testing.T
	Model tea.Model

	// Quit is set once a tea.QuitMsg has been produced.
	Quit bool
}

// New wraps model. When w and h are positive a WindowSizeMsg is sent first.
func New(t *testing.T, model tea.Model, w, h int) *Driver {
	t.Helper()
	d := &Driver{t: t, Model: model}
	if w > 0 && h > 0 {
		d.Model, _ = d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
	return d
}

// Init runs the model's Init command.
func (d *Driver) Init() {
	d.t.Helper()
	d.run(d.Model.Init(), 0)
}

// Send feeds msg through Update and drains the resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.t.Helper()
	if d.Quit {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.run(cmd, 0)
}

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.t.Helper()
	for _, r := range s {
		d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Key sends a non-rune key such as tea.KeyEnter or tea.KeyEsc.
func (d *Driver) Key(k tea.KeyType) {
	d.t.Helper()
	d.Send(tea.KeyMsg{Type: k})
}

// Submit types line and presses Enter.
func (d *Driver) Submit(line string) {
	d.t.Helper()
	d.Type(line)
	d.Key(tea.KeyEnter)
}

// View renders the model.
func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) run(cmd tea.Cmd, depth int) {
	d.t.Helper()
	if cmd == nil {
		return
	}
	if depth >= maxDepth {
		d.t.Logf("teatest: stopped after %d chained commands", maxDepth)
		return
	}

	msg, ok := callWithTimeout(cmd)
	if !ok || msg == nil || isBlink(msg) {
		return
	}

	switch m := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range m {
			d.run(sub, depth+1)
		}
	case tea.QuitMsg:
		d.Quit = true
		d.Model, _ = d.Model.Update(m)
	default:
		var next tea.Cmd
		d.Model, next = d.Model.Update(m)
		d.run(next, depth+1)
	}
}

func callWithTimeout(cmd tea.Cmd) (tea.Msg, bool) {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg, true
	case <-time.After(cmdTimeout):
		return nil, false
	}
}

// isBlink matches the unexported cursor blink message types from bubbles.
func isBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}
