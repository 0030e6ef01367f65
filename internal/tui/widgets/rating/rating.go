// Package rating is a star rating input.
package rating

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"pico-x/internal/tui/util"
)

const (
	DefaultMax    = 5
	DefaultSymbol = "★"

	msgValueMissing = "Please select a rating."
)

// ChangeMsg reports a committed value change.
type ChangeMsg struct {
	Name  string
	Value int
}

type Model struct {
	Name     string
	Symbol   string
	Readonly bool
	Required bool
	Disabled bool
	NoColor  bool

	max, value, initial int
	hover               int // 0 when the pointer is not over a star
	focused             bool
	x, y                int
}

// New returns a rating with max stars (DefaultMax when max <= 0) and an
// initial value that Reset returns to.
func New(max, value int) Model {
	if max <= 0 {
		max = DefaultMax
	}
	m := Model{Symbol: DefaultSymbol, max: max}
	m.value = clampInt(value, 0, max)
	m.initial = m.value
	return m
}

func (m Model) Value() int { return m.value }
func (m Model) Max() int { return m.max }

// FormValue is the submitted value; a rating of 0 submits nothing.
func (m Model) FormValue() (string, bool) {
	if m.value == 0 {
		return "", false
	}
	return strconv.Itoa(m.value), true
}

func (m Model) Valid() bool { return !(m.Required && m.value == 0) }

// ValidationMessage is empty while the rating is valid.
func (m Model) ValidationMessage() string {
	if m.Valid() {
		return ""
	}
	return msgValueMissing
}

// Select picks star v. Picking the current value lowers it by one, so a
// single star can be cleared by selecting it again.
func (m *Model) Select(v int) tea.Cmd {
	if v == m.value {
		v--
	}
	return m.set(v)
}

// SetValue assigns v directly, clamped to [0, max].
func (m *Model) SetValue(v int) tea.Cmd { return m.set(v) }

func (m *Model) set(v int) tea.Cmd {
	m.value = clampInt(v, 0, m.max)
	ev := ChangeMsg{Name: m.Name, Value: m.value}
	return func() tea.Msg { return ev }
}

// Reset restores the initial value without emitting a change.
func (m *Model) Reset() {
	m.value = m.initial
	m.hover = 0
}

func (m *Model) Focus() {
	if !m.Disabled && !m.Readonly {
		m.focused = true
	}
}

func (m *Model) Blur() { m.focused = false }
func (m Model) Focused() bool { return m.focused }

// Place sets the screen origin used for pointer hit testing.
func (m *Model) Place(x, y int) { m.x, m.y = x, y }

func (m Model) inert() bool { return m.Readonly || m.Disabled }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.inert() {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		switch msg.String() {
		case "right", "up", "l", "k":
			return m, m.set(m.value + 1)
		case "left", "down", "h", "j":
			return m, m.set(m.value - 1)
		case "home":
			return m, m.set(0)
		case "end":
			return m, m.set(m.max)
		}
	case tea.MouseMsg:
		star := m.starAt(msg.X, msg.Y)
		switch msg.Action {
		case tea.MouseActionMotion:
			m.hover = star
		case tea.MouseActionPress:
			if star > 0 && msg.Button == tea.MouseButtonLeft {
				return m, m.Select(star)
			}
		}
	}
	return m, nil
}

// starAt maps a screen cell to a 1-based star index, 0 when outside.
func (m Model) starAt(x, y int) int {
	if y != m.y || x < m.x {
		return 0
	}
	w := ansi.StringWidth(m.symbol()) + 1
	i := (x-m.x)/w + 1
	if i > m.max {
		return 0
	}
	return i
}

func (m Model) symbol() string {
	if m.Symbol == "" {
		return DefaultSymbol
	}
	return m.Symbol
}

func (m Model) View() string {
	lit := m.value
	if m.hover > 0 {
		lit = m.hover
	}
	noColor := util.NoColor(m.NoColor)
	pal := util.DefaultPalette()
	on := lipgloss.NewStyle().Foreground(pal.Warning)
	off := lipgloss.NewStyle().Foreground(pal.Muted)
	if m.Disabled {
		on, off = on.Faint(true), off.Faint(true)
	}

	stars := make([]string, 0, m.max)
	for i := 1; i <= m.max; i++ {
		s := m.symbol()
		switch {
		case noColor && i > lit:
			s = strings.Repeat(".", ansi.StringWidth(s))
		case noColor:
		case i <= lit:
			s = on.Render(s)
		default:
			s = off.Render(s)
		}
		stars = append(stars, s)
	}
	out := strings.Join(stars, " ")
	if m.focused {
		out += fmt.Sprintf("  %d of %d stars", m.value, m.max)
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
