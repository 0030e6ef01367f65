// Package helpoverlay holds the demo key bindings and renders them as
// grouped help.
package helpoverlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"pico-x/internal/tui/state"
)

// KeyMap is every binding the demo reacts to.
type KeyMap struct {
	// Divider
	Nudge    key.Binding
	Jump     key.Binding
	Edges    key.Binding
	Collapse key.Binding

	// Editor
	Insert key.Binding
	Cmd    key.Binding
	Copy   key.Binding
	Paste  key.Binding

	// View
	Orient key.Binding
	Diff   key.Binding
	Wrap   key.Binding

	// Gallery
	Next   key.Binding
	Remove key.Binding

	// Global
	Focus key.Binding
	Toast key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Nudge:    key.NewBinding(key.WithKeys("left", "right", "up", "down"), key.WithHelp("←/→ ↑/↓", "move divider 1%")),
		Jump:     key.NewBinding(key.WithKeys("shift+left", "shift+right", "shift+up", "shift+down"), key.WithHelp("shift+arrow", "move 10%")),
		Edges:    key.NewBinding(key.WithKeys("home", "end"), key.WithHelp("home/end", "edges")),
		Collapse: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "collapse/restore")),

		Insert: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "INSERT mode")),
		Cmd:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "CMD mode")),
		Copy:   key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy")),
		Paste:  key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "paste")),

		Orient: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "stack/side by side")),
		Diff:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "unified/side-by-side diff")),
		Wrap:   key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "wrap on/off")),

		Next:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next widget")),
		Remove: key.NewBinding(key.WithKeys("backspace", "delete"), key.WithHelp("backspace", "remove chip")),

		Focus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next pane")),
		Toast: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss toast")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Nudge, k.Jump, k.Edges, k.Collapse},
		{k.Insert, k.Cmd, k.Copy, k.Paste},
		{k.Orient, k.Diff, k.Wrap},
		{k.Next, k.Remove},
		{k.Focus, k.Toast, k.Help, k.Quit},
	}
}

var groupTitles = []string{"Divider", "Editor", "View", "Gallery", "Global"}

type HelpOverlay struct {
	Keys KeyMap
}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{Keys: DefaultKeyMap()} }

// View returns grouped keys help with the current mode and focus indicated.
func (h HelpOverlay) View(s state.UIState) string {
	mode := "CMD"
	if s.Mode == state.INSERT {
		mode = "INSERT"
	}
	hm := help.New()
	var b strings.Builder
	fmt.Fprintf(&b, "Help (Mode: %s, Focus: %s)\n", mode, s.Focus)
	for i, group := range h.Keys.FullHelp() {
		fmt.Fprintf(&b, "\n%s:\n", groupTitles[i])
		for _, line := range strings.Split(hm.FullHelpView([][]key.Binding{group}), "\n") {
			fmt.Fprintf(&b, "  %s\n", line)
		}
	}
	return b.String()
}

// Short is the one-line hint shown under the status bar.
func (h HelpOverlay) Short() string {
	return help.New().ShortHelpView(h.Keys.ShortHelp())
}
