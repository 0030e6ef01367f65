// Package editor wraps the bubbles textarea as a form field that tracks its
// edits against the value it was opened with.
package editor

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"pico-x/internal/tui/state"
	"pico-x/internal/tui/util"
	"pico-x/internal/tui/widgets/diff"
	"pico-x/internal/tui/widgets/tagchips"
)

// InputMsg is emitted after every edit that changes the value.
type InputMsg struct {
	Name  string
	Value string
}

// ClipboardMsg reports the outcome of a copy or paste.
type ClipboardMsg struct {
	Action string // "copy" or "paste"
	Err    error
}

type Model struct {
	Name    string
	Limit   int
	NoColor bool

	ta      textarea.Model
	initial string
	edited  bool

	copyFn  func(string) error
	pasteFn func() (string, error)
}

func New(name, initial string) Model {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.Prompt = ""
	ta.SetValue(initial)
	return Model{
		Name:    name,
		ta:      ta,
		initial: initial,
		copyFn:  clipboard.WriteAll,
		pasteFn: clipboard.ReadAll,
	}
}

// SetClipboard swaps the system clipboard for another implementation.
func (m *Model) SetClipboard(copyFn func(string) error, pasteFn func() (string, error)) {
	m.copyFn, m.pasteFn = copyFn, pasteFn
}

func (m Model) Value() string { return m.ta.Value() }
func (m Model) Initial() string { return m.initial }
func (m Model) Edited() bool { return m.edited }

// FormValue is the submitted value.
func (m Model) FormValue() string { return m.ta.Value() }

// SetValue replaces the text programmatically; it does not count as an edit.
func (m *Model) SetValue(s string) { m.ta.SetValue(s) }

// Reset restores the initial text and clears the edited flag.
func (m *Model) Reset() {
	m.ta.SetValue(m.initial)
	m.edited = false
}

func (m *Model) Focus() tea.Cmd { return m.ta.Focus() }
func (m *Model) Blur() { m.ta.Blur() }
func (m Model) Focused() bool { return m.ta.Focused() }

func (m *Model) SetSize(width, height int) {
	m.ta.SetWidth(width)
	m.ta.SetHeight(height)
}

// Update applies a message. Text keys only reach the textarea in INSERT
// mode; ctrl+y copies and ctrl+p pastes in either mode.
func (m Model) Update(msg tea.Msg, mode state.EditorMode) (Model, tea.Cmd) {
	k, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch k.String() {
		case "ctrl+y":
			err := m.copyFn(m.ta.Value())
			if err != nil {
				log.Warn().Err(err).Msg("editor: copy failed")
			}
			return m, clipboardCmd("copy", err)
		case "ctrl+p":
			text, err := m.pasteFn()
			if err != nil {
				log.Warn().Err(err).Msg("editor: paste failed")
				return m, clipboardCmd("paste", err)
			}
			before := m.ta.Value()
			m.ta.InsertString(text)
			return m, tea.Batch(clipboardCmd("paste", nil), m.changed(before))
		}
		if mode != state.INSERT {
			return m, nil
		}
	}

	before := m.ta.Value()
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, tea.Batch(cmd, m.changed(before))
}

func (m *Model) changed(before string) tea.Cmd {
	after := m.ta.Value()
	if after == before {
		return nil
	}
	m.edited = true
	ev := InputMsg{Name: m.Name, Value: after}
	return func() tea.Msg { return ev }
}

func clipboardCmd(action string, err error) tea.Cmd {
	return func() tea.Msg { return ClipboardMsg{Action: action, Err: err} }
}

// Tags describes the current text against the initial one.
func (m Model) Tags() []state.Tag {
	limit := m.Limit
	if limit == 0 {
		limit = 300
	}
	return util.EditorTags(m.initial, m.ta.Value(), limit, m.edited)
}

// Diff renders the current text against the initial one.
func (m Model) Diff(s state.UIState) string {
	return diff.DiffView{NoColor: util.NoColor(m.NoColor)}.View(s, m.initial, m.ta.Value())
}

// View renders the mode header, edit chips and the text area.
func (m Model) View(s state.UIState) string {
	header := "[CMD]"
	if s.Mode == state.INSERT {
		header = "[INSERT]"
	}
	wrap := "Wrap: Off"
	if s.Wrap {
		wrap = "Wrap: On"
	}
	line := header + "  " + wrap
	if st := diff.Compute(m.initial, m.ta.Value()); st.Changed() {
		line += fmt.Sprintf("  +%d -%d", st.Inserted, st.Deleted)
	}
	var b strings.Builder
	b.WriteString(line + "\n")
	fmt.Fprintf(&b, "%s\n", tagchips.View(m.Tags(), m.NoColor))
	b.WriteString(m.ta.View())
	return b.String()
}
