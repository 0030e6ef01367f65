// Package multiselect is a dropdown that selects several options and shows
// the selection as removable chips.
package multiselect

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pico-x/internal/tui/state"
	"pico-x/internal/tui/util"
	"pico-x/internal/tui/widgets/tagchips"
)

const (
	DefaultPlaceholder = "Select…"

	msgValueMissing = "Please select at least one option."
)

type Option struct {
	Value    string
	Label    string
	Selected bool
}

// ChangeMsg reports the selection after every change, in selection order.
type ChangeMsg struct {
	Name   string
	Values []string
}

type Model struct {
	Name        string
	Placeholder string
	Required    bool
	Disabled    bool
	NoColor     bool

	options  []Option
	selected []string // insertion order
	initial  []string
	open     bool
	cursor   int
	filter   string
	focused  bool
}

// New builds a multiselect; options flagged Selected form the initial
// selection that Reset returns to.
func New(name string, options []Option) Model {
	m := Model{Name: name, Placeholder: DefaultPlaceholder}
	m.options = append([]Option(nil), options...)
	for _, o := range options {
		if o.Selected {
			m.selected = append(m.selected, o.Value)
		}
	}
	m.initial = append([]string(nil), m.selected...)
	return m
}

// Value returns the selected values in the order they were selected.
func (m Model) Value() []string { return append([]string(nil), m.selected...) }

// SetValue replaces the selection. Unknown and duplicate values are dropped.
func (m *Model) SetValue(vals []string) {
	m.selected = m.selected[:0]
	for _, v := range vals {
		if _, ok := m.option(v); ok && !m.isSelected(v) {
			m.selected = append(m.selected, v)
		}
	}
}

// FormValue returns one entry per selected value under the field name.
func (m Model) FormValue() map[string][]string {
	if len(m.selected) == 0 {
		return nil
	}
	return map[string][]string{m.Name: m.Value()}
}

func (m Model) Valid() bool { return !(m.Required && len(m.selected) == 0) }

func (m Model) ValidationMessage() string {
	if m.Valid() {
		return ""
	}
	return msgValueMissing
}

func (m *Model) Reset() {
	m.selected = append(m.selected[:0], m.initial...)
	m.filter = ""
	m.cursor = 0
}

func (m Model) IsOpen() bool { return m.open }

func (m *Model) Open() {
	if !m.Disabled {
		m.open = true
	}
}

func (m *Model) Close() {
	m.open = false
	m.filter = ""
	m.cursor = 0
}

func (m *Model) Toggle() {
	if m.open {
		m.Close()
	} else {
		m.Open()
	}
}

func (m *Model) Focus() {
	if !m.Disabled {
		m.focused = true
	}
}

// Blur also closes the dropdown, like a click outside.
func (m *Model) Blur() {
	m.focused = false
	m.Close()
}

func (m Model) Focused() bool { return m.focused }

// Filter returns the current type-ahead text.
func (m Model) Filter() string { return m.filter }

func (m Model) option(v string) (Option, bool) {
	for _, o := range m.options {
		if o.Value == v {
			return o, true
		}
	}
	return Option{}, false
}

func (m Model) isSelected(v string) bool {
	for _, s := range m.selected {
		if s == v {
			return true
		}
	}
	return false
}

// ToggleOption flips v in the selection; new selections go last.
func (m *Model) ToggleOption(v string) tea.Cmd {
	if _, ok := m.option(v); !ok {
		return nil
	}
	if m.isSelected(v) {
		return m.Remove(v)
	}
	m.selected = append(m.selected, v)
	return m.changed()
}

// Remove drops v from the selection, as the chip's remove button does.
func (m *Model) Remove(v string) tea.Cmd {
	for i, s := range m.selected {
		if s == v {
			m.selected = append(m.selected[:i], m.selected[i+1:]...)
			return m.changed()
		}
	}
	return nil
}

func (m Model) changed() tea.Cmd {
	ev := ChangeMsg{Name: m.Name, Values: m.Value()}
	return func() tea.Msg { return ev }
}

// Visible returns the options matching the type-ahead filter, best first.
// Substring matches rank ahead of near misses; near misses are options whose
// label prefix is within a small edit distance of the filter.
func (m Model) Visible() []Option {
	f := strings.ToLower(strings.TrimSpace(m.filter))
	if f == "" {
		return append([]Option(nil), m.options...)
	}
	type scored struct {
		opt      Option
		contains bool
		dist     int
	}
	budget := len([]rune(f)) / 3
	var hits []scored
	for _, o := range m.options {
		label := strings.ToLower(o.Label)
		s := scored{opt: o, contains: strings.Contains(label, f), dist: prefixDistance(f, label)}
		if s.contains || s.dist <= budget {
			hits = append(hits, s)
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].contains != hits[j].contains {
			return hits[i].contains
		}
		return hits[i].dist < hits[j].dist
	})
	out := make([]Option, len(hits))
	for i, h := range hits {
		out[i] = h.opt
	}
	return out
}

func prefixDistance(f, label string) int {
	r := []rune(label)
	if n := len([]rune(f)); len(r) > n {
		r = r[:n]
	}
	return levenshtein.ComputeDistance(f, string(r))
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused || m.Disabled {
		return m, nil
	}
	if !m.open {
		switch k.String() {
		case "enter", " ", "down":
			m.Open()
		case "backspace":
			if n := len(m.selected); n > 0 {
				return m, m.Remove(m.selected[n-1])
			}
		}
		return m, nil
	}

	visible := m.Visible()
	switch k.String() {
	case "esc", "enter":
		m.Close()
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case " ":
		if m.cursor < len(visible) {
			return m, m.ToggleOption(visible[m.cursor].Value)
		}
	case "backspace":
		if r := []rune(m.filter); len(r) > 0 {
			m.filter = string(r[:len(r)-1])
			m.cursor = 0
		}
	default:
		if k.Type == tea.KeyRunes {
			m.filter += string(k.Runes)
			m.cursor = 0
		}
	}
	return m, nil
}

func (m Model) chips() []state.Tag {
	tags := make([]state.Tag, 0, len(m.selected))
	for _, v := range m.selected {
		o, _ := m.option(v)
		tags = append(tags, state.Tag{Label: o.Label, Value: v, Removable: true})
	}
	return tags
}

func (m Model) View() string {
	noColor := util.NoColor(m.NoColor)
	pal := util.DefaultPalette()

	field := m.Placeholder
	if len(m.selected) > 0 {
		field = tagchips.View(m.chips(), noColor)
	} else if !noColor {
		field = lipgloss.NewStyle().Foreground(pal.Muted).Render(field)
	}
	caret := "▾"
	if m.open {
		caret = "▴"
	}
	line := field + " " + caret
	if m.focused && !noColor {
		line = lipgloss.NewStyle().Foreground(pal.Focus).Render("> ") + line
	} else if m.focused {
		line = "> " + line
	}
	if !m.open {
		return line
	}

	var b strings.Builder
	b.WriteString(line)
	if m.filter != "" {
		b.WriteString("\n  / " + m.filter)
	}
	for i, o := range m.Visible() {
		box := "[ ]"
		if m.isSelected(o.Value) {
			box = "[x]"
		}
		row := box + " " + o.Label
		if i == m.cursor {
			if noColor {
				row = "> " + row
			} else {
				row = lipgloss.NewStyle().Foreground(pal.Primary).Bold(true).Render("> " + row)
			}
		} else {
			row = "  " + row
		}
		b.WriteString("\n" + row)
	}
	return b.String()
}
