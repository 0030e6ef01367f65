// Package modal manages a single visible dialog over the rest of the screen.
package modal

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"pico-x/internal/tui/util"
)

type Modal struct {
	ID    string
	Title string
	Body  string

	NoEscapeClose   bool
	NoBackdropClose bool
}

type OpenedMsg struct{ ID string }
type ClosedMsg struct{ ID string }

// Manager shows at most one modal at a time. Opening another replaces the
// visible one.
type Manager struct {
	NoColor bool

	modals        map[string]Modal
	current       string
	width, height int
}

func NewManager() *Manager { return &Manager{modals: map[string]Modal{}} }

// Register adds or replaces a modal definition.
func (m *Manager) Register(d Modal) { m.modals[d.ID] = d }

func (m *Manager) SetSize(width, height int) { m.width, m.height = width, height }

// Current returns the visible modal.
func (m *Manager) Current() (Modal, bool) {
	if m.current == "" {
		return Modal{}, false
	}
	d, ok := m.modals[m.current]
	return d, ok
}

func (m *Manager) IsOpen() bool { return m.current != "" }

// Open shows the modal registered under id. Unknown ids are ignored.
func (m *Manager) Open(id string) tea.Cmd {
	if _, ok := m.modals[id]; !ok {
		log.Debug().Str("modal", id).Msg("modal: open of unknown id ignored")
		return nil
	}
	if m.current == id {
		return nil
	}
	var cmds []tea.Cmd
	if m.current != "" {
		cmds = append(cmds, m.Close())
	}
	m.current = id
	cmds = append(cmds, func() tea.Msg { return OpenedMsg{ID: id} })
	return tea.Sequence(cmds...)
}

// Close hides the visible modal; with nothing open it does nothing.
func (m *Manager) Close() tea.Cmd {
	if m.current == "" {
		return nil
	}
	id := m.current
	m.current = ""
	return func() tea.Msg { return ClosedMsg{ID: id} }
}

func (m *Manager) Toggle(id string) tea.Cmd {
	if m.current == id {
		return m.Close()
	}
	return m.Open(id)
}

// Update handles escape and backdrop presses. While a modal is open every
// key and mouse message is consumed so the screen underneath stays inert.
func (m *Manager) Update(msg tea.Msg) (tea.Cmd, bool) {
	d, ok := m.Current()
	if !ok {
		return nil, false
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "esc" && !d.NoEscapeClose {
			return m.Close(), true
		}
		return nil, true
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return nil, true
		}
		x, y, w, h := m.bounds(d)
		inside := msg.X >= x && msg.X < x+w && msg.Y >= y && msg.Y < y+h
		if !inside && !d.NoBackdropClose {
			return m.Close(), true
		}
		return nil, true
	}
	return nil, false
}

func (m *Manager) article(d Modal) string {
	noColor := util.NoColor(m.NoColor)
	pal := util.DefaultPalette()
	title := lipgloss.NewStyle().Bold(true)
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
	if !noColor {
		title = title.Foreground(pal.Primary)
		box = box.BorderForeground(pal.Border)
	}
	body := d.Body
	if d.Title != "" {
		body = title.Render(d.Title) + "\n\n" + body
	}
	return box.Render(body)
}

// bounds is where View centers the article, matching lipgloss.Place.
func (m *Manager) bounds(d Modal) (x, y, w, h int) {
	a := m.article(d)
	w, h = lipgloss.Width(a), lipgloss.Height(a)
	if gap := m.width - w; gap > 0 {
		x = int(math.Round(float64(gap) * 0.5))
	}
	if gap := m.height - h; gap > 0 {
		y = int(math.Round(float64(gap) * 0.5))
	}
	return x, y, w, h
}

// View renders the visible modal centered in the screen, or "" when none is
// open.
func (m *Manager) View() string {
	d, ok := m.Current()
	if !ok {
		return ""
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.article(d))
}
