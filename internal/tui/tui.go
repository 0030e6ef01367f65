package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"pico-x/internal/config"
	"pico-x/internal/tui/pointer"
	"pico-x/internal/tui/split"
	"pico-x/internal/tui/state"
	"pico-x/internal/tui/util"
	"pico-x/internal/tui/widgets/editor"
	"pico-x/internal/tui/widgets/helpoverlay"
	"pico-x/internal/tui/widgets/modal"
	"pico-x/internal/tui/widgets/multiselect"
	"pico-x/internal/tui/widgets/rating"
	"pico-x/internal/tui/widgets/statusbar"
	"pico-x/internal/tui/widgets/tagchips"
	"pico-x/internal/tui/widgets/toast"
)

// Result is what the demo leaves behind when it exits.
type Result struct {
	Position  float64
	Collapsed bool
	Text      string
	Rating    int
	Languages []string
}

// Run starts the demo and blocks until the user quits.
func Run(cfg config.Config) (Result, error) {
	m := newModel(cfg)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return Result{}, fmt.Errorf("run demo: %w", err)
	}
	return m.result(), nil
}

// ===== Model =====

const (
	helpModal = "help"

	// rows under the panel: status line and key hint
	chromeRows = 2

	sampleText = "Drag the divider, or focus it with tab and use the arrow keys.\n" +
		"Press i to edit this text; esc returns to command mode."
)

type galleryItem int

const (
	galleryRating galleryItem = iota
	galleryLanguages
	galleryTags

	galleryItems = 3
)

type model struct {
	ui      state.UIState
	keys    helpoverlay.KeyMap
	help    helpoverlay.HelpOverlay
	status  statusbar.StatusBar
	noColor bool

	doc    *pointer.Document
	panel  *split.Panel
	editor editor.Model
	rating rating.Model
	langs  multiselect.Model
	tags   tagchips.Model
	toasts *toast.Stack
	modals *modal.Manager

	gallery       galleryItem
	width, height int
}

func newModel(cfg config.Config) *model {
	noColor := util.NoColor(cfg.UI.NoColor)
	doc := pointer.NewDocument()
	panel := split.New(split.WithDocument(doc), split.WithNoColor(noColor))
	attrs := cfg.Split.Attributes()
	for _, name := range split.ObservedAttributes {
		if v, ok := attrs[name]; ok {
			panel.SetAttribute(name, v)
		}
	}
	panel.Focus()

	ed := editor.New("notes", sampleText)
	ed.Limit = cfg.UI.EditorLimit
	ed.NoColor = noColor

	r := rating.New(5, 3)
	r.Name = "rating"
	r.NoColor = noColor

	langs := multiselect.New("languages", []multiselect.Option{
		{Value: "go", Label: "Go", Selected: true},
		{Value: "rust", Label: "Rust"},
		{Value: "zig", Label: "Zig"},
		{Value: "python", Label: "Python"},
		{Value: "typescript", Label: "TypeScript"},
		{Value: "haskell", Label: "Haskell"},
	})
	langs.Required = true
	langs.NoColor = noColor

	tags := tagchips.New("topics", []state.Tag{
		{Label: "layout", Variant: "primary", Removable: true},
		{Label: "mouse", Variant: "success", Removable: true},
		{Label: "keyboard", Variant: "warning", Removable: true},
		{Label: "pinned", Variant: "muted"},
	})
	tags.NoColor = noColor

	help := helpoverlay.NewHelpOverlay()
	modals := modal.NewManager()
	modals.NoColor = noColor
	modals.Register(modal.Modal{ID: helpModal, Title: "Keys", Body: strings.TrimRight(help.View(state.UIState{}), "\n")})

	ui := state.UIState{
		Focus:    state.FocusDivider,
		Wrap:     cfg.UI.Wrap,
		MinCol:   20,
		Limit:    cfg.UI.EditorLimit,
		Position: panel.Position(),
		Vertical: panel.Orientation() == split.Vertical,
	}
	if cfg.UI.DiffView == "side-by-side" {
		ui.View = state.SideBySide
	}

	return &model{
		ui:      ui,
		keys:    help.Keys,
		help:    help,
		status:  statusbar.NewStatusBar(),
		noColor: noColor,
		doc:     doc,
		panel:   panel,
		editor:  ed,
		rating:  r,
		langs:   langs,
		tags:    tags,
		toasts:  &toast.Stack{NoColor: noColor},
		modals:  modals,
	}
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) result() Result {
	return Result{
		Position:  m.panel.Position(),
		Collapsed: m.panel.Collapsed(),
		Text:      m.editor.Value(),
		Rating:    m.rating.Value(),
		Languages: m.langs.Value(),
	}
}

// layout sizes the panel to the screen and places the gallery widgets that
// do their own hit testing.
func (m *model) layout() {
	m.panel.SetBounds(0, 0, m.width, max(m.height-chromeRows, 0))
	m.modals.SetSize(m.width, m.height)

	l := m.panel.Layout()
	w, h := m.regionSize(split.RegionStart)
	m.editor.SetSize(w, max(h-3, 1))

	offset := 0
	if l.Tracks[0].Region != split.RegionEnd {
		offset = l.Tracks[0].Cells + l.DividerWidth
	}
	x, y := offset, 0
	if m.panel.Orientation() == split.Vertical {
		x, y = 0, offset
	}
	// gallery line 1 holds the stars
	m.rating.Place(x, y+1)
}

func (m *model) regionSize(r split.Region) (int, int) {
	cells := m.panel.Layout().Track(r).Cells
	_, _, w, h := m.panel.Bounds()
	if m.panel.Orientation() == split.Vertical {
		return w, cells
	}
	return cells, h
}

// typing reports whether printable keys belong to a text field right now.
func (m *model) typing() bool {
	if m.ui.Focus == state.FocusEditor && m.ui.Mode == state.INSERT {
		return true
	}
	return m.ui.Focus == state.FocusGallery && m.gallery == galleryLanguages && m.langs.IsOpen()
}

// applyFocus moves widget focus to match ui.Focus. The returned command
// starts the editor's cursor blink.
func (m *model) applyFocus() tea.Cmd {
	m.panel.Blur()
	m.editor.Blur()
	m.rating.Blur()
	m.langs.Blur()
	m.tags.Blur()
	switch m.ui.Focus {
	case state.FocusDivider:
		m.panel.Focus()
	case state.FocusEditor:
		return m.editor.Focus()
	case state.FocusGallery:
		switch m.gallery {
		case galleryRating:
			m.rating.Focus()
		case galleryLanguages:
			m.langs.Focus()
		case galleryTags:
			m.tags.Focus()
		}
	}
	return nil
}

func (m *model) syncSplit() {
	m.ui = state.Reposition(m.ui, m.panel.Position(), m.panel.Collapsed(), m.panel.Dragging())
}

// Update routes input: an open modal first, then captured pointer motion,
// then global keys, then the focused pane.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.modals.Update(msg); ok {
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ui = state.Resize(m.ui, msg.Width)
		m.layout()
		return m, nil

	case tea.MouseMsg:
		return m, m.updateMouse(msg)

	case tea.KeyMsg:
		return m, m.updateKey(msg)

	case split.RepositionMsg:
		m.syncSplit()
		m.layout()
		log.Debug().Float64("position", msg.Position).Msg("tui: split repositioned")
		return m, nil

	case editor.InputMsg:
		m.ui.Edited = true
		return m, nil

	case editor.ClipboardMsg:
		if msg.Err != nil {
			return m, toast.Show(fmt.Sprintf("Clipboard %s failed: %v", msg.Action, msg.Err), "danger")
		}
		return m, toast.Show("Clipboard "+msg.Action+" done", "success")

	case rating.ChangeMsg:
		m.ui.Notice = fmt.Sprintf("Rating: %d", msg.Value)
		return m, nil

	case multiselect.ChangeMsg:
		if !m.langs.Valid() {
			return m, toast.Show(m.langs.ValidationMessage(), "warning")
		}
		m.ui.Notice = "Languages: " + strings.Join(msg.Values, ", ")
		return m, nil

	case tagchips.RemovedMsg:
		m.ui.Notice = "Removed " + msg.Group + ": " + msg.Value
		return m, toast.Show("Removed tag "+msg.Value, "info")

	case toast.ShowMsg, toast.DismissMsg:
		return m, m.toasts.Update(msg)
	}
	return m, nil
}

func (m *model) updateMouse(msg tea.MouseMsg) tea.Cmd {
	// captured drags see every motion and release, wherever they land
	if cmd, ok := m.doc.Dispatch(msg); ok {
		m.syncSplit()
		return cmd
	}
	if m.doc.SelectionSuppressed() {
		return nil
	}
	if cmd, ok := m.panel.HandleMouse(msg); ok {
		m.ui.Focus = state.FocusDivider
		focus := m.applyFocus()
		m.syncSplit()
		return tea.Batch(cmd, focus)
	}
	var cmd tea.Cmd
	m.rating, cmd = m.rating.Update(msg)
	return cmd
}

func (m *model) updateKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	if key.Matches(msg, m.keys.Focus) {
		m.ui = state.CycleFocus(m.ui)
		return m.applyFocus()
	}

	if !m.typing() {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return tea.Quit
		case key.Matches(msg, m.keys.Help):
			return m.modals.Toggle(helpModal)
		case key.Matches(msg, m.keys.Orient):
			m.ui = state.ToggleOrientation(m.ui)
			if m.ui.Vertical {
				m.panel.SetAttribute(split.AttrOrientation, "vertical")
			} else {
				m.panel.SetAttribute(split.AttrOrientation, "horizontal")
			}
			m.layout()
			return nil
		case key.Matches(msg, m.keys.Diff):
			m.ui = state.ToggleView(m.ui)
			m.ui = state.Resize(m.ui, m.width)
			return nil
		case key.Matches(msg, m.keys.Wrap):
			m.ui = state.ToggleWrap(m.ui)
			return nil
		case key.Matches(msg, m.keys.Toast):
			return m.toasts.DismissNewest()
		}
	}

	switch m.ui.Focus {
	case state.FocusDivider:
		cmd, _ := m.panel.HandleKey(msg)
		return cmd

	case state.FocusEditor:
		switch {
		case m.ui.Mode == state.CMD && key.Matches(msg, m.keys.Insert):
			m.ui = state.ToggleMode(m.ui)
			return nil
		case m.ui.Mode == state.INSERT && key.Matches(msg, m.keys.Cmd):
			m.ui = state.ToggleMode(m.ui)
			return nil
		}
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg, m.ui.Mode)
		return cmd

	case state.FocusGallery:
		if !m.typing() && key.Matches(msg, m.keys.Next) {
			m.gallery = (m.gallery + 1) % galleryItems
			return m.applyFocus()
		}
		var cmd tea.Cmd
		switch m.gallery {
		case galleryRating:
			m.rating, cmd = m.rating.Update(msg)
		case galleryLanguages:
			m.langs, cmd = m.langs.Update(msg)
		case galleryTags:
			m.tags, cmd = m.tags.Update(msg)
		}
		return cmd
	}
	return nil
}

// ===== Views =====

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	selStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "205", Dark: "213"}).Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

func (m *model) title(s string, focused bool) string {
	if m.noColor {
		if focused {
			return "> " + s
		}
		return s
	}
	if focused {
		return selStyle.Render("> " + s)
	}
	return titleStyle.Render(s)
}

func (m *model) View() string {
	if m.width == 0 {
		return ""
	}
	if m.modals.IsOpen() {
		return m.modals.View()
	}
	m.panel.SetSlots(split.Slots{
		Start: split.RenderFunc(m.viewEditor),
		End:   split.RenderFunc(m.viewGallery),
	})
	hint := m.help.Short()
	if !m.noColor {
		hint = faintStyle.Render(hint)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.panel.View(),
		m.status.View(m.ui),
		hint,
	)
}

func (m *model) viewEditor(width, height int) string {
	var b strings.Builder
	b.WriteString(m.title("Editor", m.ui.Focus == state.FocusEditor) + "\n")
	b.WriteString(m.editor.View(m.ui) + "\n\n")
	if m.ui.Edited {
		ui := m.ui
		ui.Width = width
		b.WriteString(m.editor.Diff(ui))
	}
	return b.String()
}

func (m *model) viewGallery(width, height int) string {
	inGallery := m.ui.Focus == state.FocusGallery
	var b strings.Builder
	b.WriteString(m.title("Rating", inGallery && m.gallery == galleryRating) + "\n")
	b.WriteString(m.rating.View() + "\n\n")
	b.WriteString(m.title("Languages", inGallery && m.gallery == galleryLanguages) + "\n")
	b.WriteString(m.langs.View() + "\n")
	if msg := m.langs.ValidationMessage(); msg != "" {
		b.WriteString(msg + "\n")
	}
	b.WriteString("\n" + m.title("Topics", inGallery && m.gallery == galleryTags) + "\n")
	b.WriteString(m.tags.View() + "\n")
	if m.toasts.Visible() {
		m.toasts.Width = max(width-2, 0)
		b.WriteString("\n" + m.toasts.View())
	}
	return b.String()
}
