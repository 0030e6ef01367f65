package split

import (
	tea "github.com/charmbracelet/bubbletea"
)

// HandleMouse starts a drag on a left press over the divider. Motion and
// release normally arrive through the pointer document; when the caller
// forwards them here instead they are routed to the document.
func (p *Panel) HandleMouse(msg tea.MouseMsg) (tea.Cmd, bool) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil, false
		}
		if !p.PointerDown(msg.X, msg.Y) {
			return nil, false
		}
		return p.Flush(), true
	default:
		if !p.doc.Holds(p.id) {
			return nil, false
		}
		return p.doc.Dispatch(msg)
	}
}

// Update lets the panel sit directly in a Bubble Tea model tree.
func (p *Panel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, _ := p.HandleKey(msg)
		return cmd
	case tea.MouseMsg:
		cmd, _ := p.HandleMouse(msg)
		return cmd
	case tea.WindowSizeMsg:
		p.Resize(msg.Width, msg.Height)
	}
	return p.Flush()
}
