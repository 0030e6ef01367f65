// Package tagchips renders rows of chips and handles chip removal.
package tagchips

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pico-x/internal/tui/state"
	"pico-x/internal/tui/util"
)

// RemovedMsg is emitted when a chip is removed. Value is the chip's Key.
type RemovedMsg struct {
	Group string
	Value string
}

// View renders tags in order using colored chips, or ASCII brackets when
// color is disabled.
func View(tags []state.Tag, noColor bool) string {
	return render(tags, -1, util.NoColor(noColor))
}

func render(tags []state.Tag, cursor int, noColor bool) string {
	if len(tags) == 0 {
		return ""
	}
	pal := util.DefaultPalette()
	parts := make([]string, 0, len(tags))
	for i, t := range tags {
		parts = append(parts, renderChip(t, i == cursor, noColor, pal))
	}
	return strings.Join(parts, " ")
}

func renderChip(t state.Tag, selected, noColor bool, pal util.Palette) string {
	label := t.Label
	if t.Removable {
		label += " ×"
		if noColor {
			label = t.Label + " x"
		}
	}
	if noColor {
		if selected {
			return "[>" + label + "<]"
		}
		return "[" + label + "]"
	}
	st := lipgloss.NewStyle().Padding(0, 1).Bold(true).
		Background(pal.Variant(t.Variant)).
		Foreground(pal.OnFill)
	if selected {
		st = st.Underline(true)
	}
	return st.Render(label)
}

// Remove drops tags[i] when it is removable and returns the new slice and
// the removed chip's Key.
func Remove(tags []state.Tag, i int) ([]state.Tag, string, bool) {
	if i < 0 || i >= len(tags) || !tags[i].Removable {
		return tags, "", false
	}
	key := tags[i].Key()
	out := make([]state.Tag, 0, len(tags)-1)
	out = append(out, tags[:i]...)
	out = append(out, tags[i+1:]...)
	return out, key, true
}

// Model is an interactive chip row: left/right move the cursor and
// backspace or delete removes the chip under it.
type Model struct {
	Group   string
	Tags    []state.Tag
	NoColor bool

	cursor  int
	focused bool
}

func New(group string, tags []state.Tag) Model {
	return Model{Group: group, Tags: tags}
}

func (m *Model) Focus() { m.focused = true }
func (m *Model) Blur() { m.focused = false }
func (m Model) Focused() bool { return m.focused }
func (m Model) Cursor() int { return m.cursor }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused || len(m.Tags) == 0 {
		return m, nil
	}
	switch k.String() {
	case "left":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right":
		if m.cursor < len(m.Tags)-1 {
			m.cursor++
		}
	case "backspace", "delete":
		tags, key, removed := Remove(m.Tags, m.cursor)
		if !removed {
			return m, nil
		}
		m.Tags = tags
		if m.cursor >= len(m.Tags) && m.cursor > 0 {
			m.cursor--
		}
		group := m.Group
		return m, func() tea.Msg { return RemovedMsg{Group: group, Value: key} }
	}
	return m, nil
}

func (m Model) View() string {
	cursor := -1
	if m.focused {
		cursor = m.cursor
	}
	return render(m.Tags, cursor, util.NoColor(m.NoColor))
}
