// Package toast is a stack of dismissible notifications.
package toast

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"pico-x/internal/tui/util"
)

type Toast struct {
	ID      string
	Message string
	Variant string
}

// ShowMsg asks the stack to add a toast; useful from commands.
type ShowMsg struct {
	Message string
	Variant string
}

// DismissMsg asks the stack to dismiss a toast by id.
type DismissMsg struct{ ID string }

// DismissedMsg is emitted once per toast when it leaves the stack.
type DismissedMsg struct{ ID string }

// Show returns a command that adds a toast through Update.
func Show(message, variant string) tea.Cmd {
	return func() tea.Msg { return ShowMsg{Message: message, Variant: variant} }
}

// Stack holds toasts newest last. An empty stack renders nothing.
type Stack struct {
	Width   int
	NoColor bool

	items []Toast
}

func (s *Stack) Push(message, variant string) string {
	t := Toast{ID: uuid.NewString(), Message: message, Variant: variant}
	s.items = append(s.items, t)
	log.Debug().Str("toast", t.ID).Str("variant", variant).Msg("toast: shown")
	return t.ID
}

// Dismiss removes a toast. Dismissing an unknown or already dismissed id
// does nothing and emits nothing.
func (s *Stack) Dismiss(id string) tea.Cmd {
	for i, t := range s.items {
		if t.ID != id {
			continue
		}
		s.items = append(s.items[:i], s.items[i+1:]...)
		return func() tea.Msg { return DismissedMsg{ID: id} }
	}
	return nil
}

// DismissNewest removes the most recent toast, if any.
func (s *Stack) DismissNewest() tea.Cmd {
	if len(s.items) == 0 {
		return nil
	}
	return s.Dismiss(s.items[len(s.items)-1].ID)
}

func (s *Stack) Items() []Toast { return append([]Toast(nil), s.items...) }

func (s *Stack) Visible() bool { return len(s.items) > 0 }

func (s *Stack) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ShowMsg:
		s.Push(msg.Message, msg.Variant)
	case DismissMsg:
		return s.Dismiss(msg.ID)
	}
	return nil
}

func (s *Stack) View() string {
	if !s.Visible() {
		return ""
	}
	noColor := util.NoColor(s.NoColor)
	pal := util.DefaultPalette()
	rows := make([]string, 0, len(s.items))
	for _, t := range s.items {
		text := t.Message + "  ×"
		if noColor {
			rows = append(rows, "["+strings.ToUpper(label(t.Variant))+"] "+t.Message+"  x")
			continue
		}
		st := lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(pal.Variant(t.Variant)).
			Padding(0, 1)
		if s.Width > 0 {
			st = st.Width(s.Width)
		}
		rows = append(rows, st.Render(text))
	}
	if noColor {
		return strings.Join(rows, "\n")
	}
	return lipgloss.JoinVertical(lipgloss.Right, rows...)
}

func label(variant string) string {
	if variant == "" {
		return "info"
	}
	return variant
}
