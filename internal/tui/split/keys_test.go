package split

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func focusedPanel(t *testing.T) *Panel {
	t.Helper()
	p := measuredPanel(t, 400, 10)
	p.Focus()
	return p
}

func TestArrowKeysNudge(t *testing.T) {
	p := focusedPanel(t)
	steps := []struct {
		k    tea.KeyType
		want float64
	}{
		{tea.KeyRight, 51},
		{tea.KeyShiftRight, 61},
		{tea.KeyLeft, 60},
		{tea.KeyShiftLeft, 50},
	}
	for _, s := range steps {
		if _, ok := p.HandleKey(key(s.k)); !ok {
			t.Fatalf("%v not handled", s.k)
		}
		if p.Position() != s.want {
			t.Fatalf("after %v expected %v, got %v", s.k, s.want, p.Position())
		}
	}
}

func TestArrowKeysClampAtEdges(t *testing.T) {
	p := focusedPanel(t)
	p.SetPosition(95)
	p.HandleKey(key(tea.KeyShiftRight))
	if p.Position() != 100 {
		t.Fatalf("expected clamp to 100, got %v", p.Position())
	}
	p.SetPosition(3)
	p.HandleKey(key(tea.KeyShiftLeft))
	if p.Position() != 0 {
		t.Fatalf("expected clamp to 0, got %v", p.Position())
	}
}

func TestCrossAxisArrowIsSwallowed(t *testing.T) {
	p := focusedPanel(t)
	if _, ok := p.HandleKey(key(tea.KeyDown)); !ok {
		t.Fatalf("cross-axis arrow should be consumed")
	}
	if p.Position() != 50 {
		t.Fatalf("cross-axis arrow moved the divider to %v", p.Position())
	}

	p.SetOrientation(Vertical)
	p.HandleKey(key(tea.KeyDown))
	if p.Position() != 51 {
		t.Fatalf("down should nudge a vertical split, got %v", p.Position())
	}
	p.HandleKey(key(tea.KeyRight))
	if p.Position() != 51 {
		t.Fatalf("right should not move a vertical split, got %v", p.Position())
	}
}

func TestPrimaryEndInvertsArrows(t *testing.T) {
	p := focusedPanel(t)
	p.SetPrimary(PrimaryEnd)
	p.HandleKey(key(tea.KeyRight))
	if p.Position() != 49 {
		t.Fatalf("right with primary=end should shrink the end region, got %v", p.Position())
	}
	p.HandleKey(key(tea.KeyHome))
	if p.Position() != 100 {
		t.Fatalf("home with primary=end should grow the end region to 100, got %v", p.Position())
	}
	p.HandleKey(key(tea.KeyEnd))
	if p.Position() != 0 {
		t.Fatalf("end with primary=end should collapse the end region, got %v", p.Position())
	}
}

func TestHomeEnd(t *testing.T) {
	p := focusedPanel(t)
	p.HandleKey(key(tea.KeyEnd))
	if p.Position() != 100 {
		t.Fatalf("expected 100, got %v", p.Position())
	}
	p.HandleKey(key(tea.KeyHome))
	if p.Position() != 0 {
		t.Fatalf("expected 0, got %v", p.Position())
	}
}

func TestHomeEndRightToLeft(t *testing.T) {
	p := focusedPanel(t)
	p.SetDirection(RTL)
	// home and end follow the screen, so in rtl home reaches the far edge
	p.HandleKey(key(tea.KeyHome))
	if p.Position() != 100 {
		t.Fatalf("rtl home: expected 100, got %v", p.Position())
	}
	p.HandleKey(key(tea.KeyEnd))
	if p.Position() != 0 {
		t.Fatalf("rtl end: expected 0, got %v", p.Position())
	}

	p.SetOrientation(Vertical)
	p.HandleKey(key(tea.KeyEnd))
	if p.Position() != 100 {
		t.Fatalf("vertical ignores direction: expected end at 100, got %v", p.Position())
	}
}

func TestCollapseAndRestore(t *testing.T) {
	p := focusedPanel(t)
	p.SetPosition(40)
	var events []float64
	p.OnReposition(func(ev RepositionMsg) { events = append(events, ev.Position) })

	p.HandleKey(key(tea.KeyEnter))
	if p.Position() != 0 || !p.Collapsed() || p.PositionBeforeCollapsing() != 40 {
		t.Fatalf("collapse: position=%v collapsed=%v before=%v", p.Position(), p.Collapsed(), p.PositionBeforeCollapsing())
	}

	p.HandleKey(key(tea.KeyEnter))
	if p.Position() != 40 || p.Collapsed() || p.PositionBeforeCollapsing() != 0 {
		t.Fatalf("restore: position=%v collapsed=%v before=%v", p.Position(), p.Collapsed(), p.PositionBeforeCollapsing())
	}
	if len(events) != 2 || events[0] != 0 || events[1] != 40 {
		t.Fatalf("expected reposition events [0 40], got %v", events)
	}
}

func TestUnknownKeyIsNotHandled(t *testing.T) {
	p := focusedPanel(t)
	p.SetPosition(33)
	if cmd, ok := p.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}); ok || cmd != nil {
		t.Fatalf("unknown key should not be handled")
	}
	if p.Position() != 33 || p.Collapsed() {
		t.Fatalf("unknown key changed state")
	}
}

func TestKeysIgnoredWhenDisabledOrBlurred(t *testing.T) {
	p := measuredPanel(t, 400, 10)
	if _, ok := p.HandleKey(key(tea.KeyRight)); ok {
		t.Fatalf("unfocused divider handled a key")
	}
	p.Focus()
	p.SetDisabled(true)
	if p.Focused() {
		t.Fatalf("disabling should drop focus")
	}
	p.Focus()
	if _, ok := p.HandleKey(key(tea.KeyRight)); ok || p.Position() != 50 {
		t.Fatalf("disabled divider handled a key")
	}
}

func TestKeyReturnsRepositionCmd(t *testing.T) {
	p := focusedPanel(t)
	cmd, _ := p.HandleKey(key(tea.KeyRight))
	if cmd == nil {
		t.Fatalf("expected reposition command")
	}
	msg, ok := cmd().(RepositionMsg)
	if !ok || msg.Position != 51 || !approx(msg.PositionInPixels, 204) {
		t.Fatalf("unexpected message %#v", msg)
	}
}
