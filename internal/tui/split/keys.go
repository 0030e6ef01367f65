package split

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// HandleKey applies a key press to the focused divider. It reports whether
// the key was recognised; recognised keys should not reach other handlers.
func (p *Panel) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if p.disabled || !p.focused {
		return nil, false
	}
	k := strings.ToLower(msg.String())
	a := p.axis()
	next := p.position

	switch k {
	case "left", "right", "up", "down", "shift+left", "shift+right", "shift+up", "shift+down":
		incr := 1.0
		if strings.HasPrefix(k, "shift+") {
			incr = 10
		}
		near, far := a.arrows()
		switch strings.TrimPrefix(k, "shift+") {
		case near:
			next -= a.step(incr)
		case far:
			next += a.step(incr)
		default:
			// cross-axis arrow: swallowed, no movement
			return nil, true
		}
	case "home":
		next = a.nearEdge()
	case "end":
		next = a.farEdge()
	case "enter":
		p.toggleCollapse()
		return p.Flush(), true
	default:
		return nil, false
	}

	p.commit(next)
	return p.Flush(), true
}

// toggleCollapse collapses to 0 or restores the saved position. The saved
// position is recorded after the layout pass of the collapse write, which
// itself clears collapse state.
func (p *Panel) toggleCollapse() {
	if p.collapsed {
		p.commit(p.beforeCollapse)
		return
	}
	saved := p.position
	p.afterLayout = append(p.afterLayout, func() {
		p.collapsed = true
		p.beforeCollapse = saved
	})
	p.commit(0)
}
