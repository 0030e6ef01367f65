// Package pointer routes mouse motion and release events to whichever
// component currently holds a pointer capture, independent of where the
// pointer is on screen.
package pointer

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

// Listener receives pointer events while it holds a capture. x and y are
// absolute screen cells.
type Listener interface {
	PointerMove(x, y int) tea.Cmd
	PointerUp() tea.Cmd
}

type registration struct {
	owner    string
	listener Listener
}

// Document is the screen-wide listener registry. The root model hands every
// mouse message to Dispatch before any hit testing.
type Document struct {
	regs     []registration
	noSelect int
}

func NewDocument() *Document { return &Document{} }

// Capture registers l under owner and suppresses text selection until the
// matching Release. Capturing twice with the same owner replaces the listener.
func (d *Document) Capture(owner string, l Listener) {
	for i, r := range d.regs {
		if r.owner == owner {
			d.regs[i].listener = l
			return
		}
	}
	d.regs = append(d.regs, registration{owner: owner, listener: l})
	d.noSelect++
	log.Debug().Str("owner", owner).Msg("pointer: capture acquired")
}

// Release drops the capture held by owner. Releasing an owner that holds
// nothing is a no-op.
func (d *Document) Release(owner string) {
	for i, r := range d.regs {
		if r.owner != owner {
			continue
		}
		d.regs = append(d.regs[:i], d.regs[i+1:]...)
		if d.noSelect > 0 {
			d.noSelect--
		}
		log.Debug().Str("owner", owner).Msg("pointer: capture released")
		return
	}
}

// Captured reports whether any component holds a capture.
func (d *Document) Captured() bool { return len(d.regs) > 0 }

// Holds reports whether owner currently holds a capture.
func (d *Document) Holds(owner string) bool {
	for _, r := range d.regs {
		if r.owner == owner {
			return true
		}
	}
	return false
}

// SelectionSuppressed is true while a capture is active; views that
// implement mouse text selection should ignore drags meanwhile.
func (d *Document) SelectionSuppressed() bool { return d.noSelect > 0 }

// Dispatch delivers motion and release events to every registered listener.
// It reports whether the message was consumed.
func (d *Document) Dispatch(msg tea.MouseMsg) (tea.Cmd, bool) {
	if len(d.regs) == 0 {
		return nil, false
	}
	// listeners may release themselves while handling the event
	regs := append([]registration(nil), d.regs...)
	var cmds []tea.Cmd
	switch msg.Action {
	case tea.MouseActionMotion:
		for _, r := range regs {
			cmds = append(cmds, r.listener.PointerMove(msg.X, msg.Y))
		}
	case tea.MouseActionRelease:
		for _, r := range regs {
			cmds = append(cmds, r.listener.PointerUp())
		}
	default:
		return nil, false
	}
	return tea.Batch(cmds...), true
}
