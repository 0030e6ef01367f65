package rating

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestSelectTogglesDown(t *testing.T) {
	m := New(5, 0)
	m.Select(3)
	if m.Value() != 3 {
		t.Fatalf("expected 3, got %d", m.Value())
	}
	m.Select(3)
	if m.Value() != 2 {
		t.Fatalf("selecting the current value should lower it, got %d", m.Value())
	}
	m.Select(1)
	m.Select(1)
	if m.Value() != 0 {
		t.Fatalf("expected single star to clear, got %d", m.Value())
	}
}

func TestKeyboard(t *testing.T) {
	m := New(5, 2)
	m.Focus()
	steps := []struct {
		k    tea.KeyType
		want int
	}{
		{tea.KeyRight, 3},
		{tea.KeyUp, 4},
		{tea.KeyLeft, 3},
		{tea.KeyDown, 2},
		{tea.KeyEnd, 5},
		{tea.KeyRight, 5},
		{tea.KeyHome, 0},
		{tea.KeyLeft, 0},
	}
	for _, s := range steps {
		var cmd tea.Cmd
		m, cmd = m.Update(tea.KeyMsg{Type: s.k})
		if m.Value() != s.want {
			t.Fatalf("after %v expected %d, got %d", s.k, s.want, m.Value())
		}
		if cmd == nil {
			t.Fatalf("expected change command after %v", s.k)
		}
	}
}

func TestReadonlyIgnoresInput(t *testing.T) {
	m := New(5, 2)
	m.Readonly = true
	m.Focus()
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if cmd != nil || m.Value() != 2 || m.Focused() {
		t.Fatalf("readonly rating reacted to input")
	}
}

func TestValidityAndFormValue(t *testing.T) {
	m := New(0, 0)
	m.Required = true
	if m.Max() != DefaultMax {
		t.Fatalf("expected default max %d, got %d", DefaultMax, m.Max())
	}
	if m.Valid() || m.ValidationMessage() != "Please select a rating." {
		t.Fatalf("required rating with no value should be invalid")
	}
	if _, ok := m.FormValue(); ok {
		t.Fatalf("zero rating should submit nothing")
	}
	m.SetValue(4)
	if v, ok := m.FormValue(); !ok || v != "4" || !m.Valid() {
		t.Fatalf("expected form value 4, got %q", v)
	}
}

func TestResetRestoresInitial(t *testing.T) {
	m := New(5, 3)
	m.SetValue(1)
	m.Reset()
	if m.Value() != 3 {
		t.Fatalf("expected reset to 3, got %d", m.Value())
	}
}

func TestMouseSelectAndHover(t *testing.T) {
	m := New(5, 0)
	m.NoColor = true
	m.Place(10, 4)
	// stars sit every 2 cells: 10, 12, 14, ...
	m, _ = m.Update(tea.MouseMsg{X: 14, Y: 4, Action: tea.MouseActionMotion})
	if got := m.View(); got != "★ ★ ★ . ." {
		t.Fatalf("hover should preview three stars, got %q", got)
	}
	m, cmd := m.Update(tea.MouseMsg{X: 16, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.Value() != 4 || cmd == nil {
		t.Fatalf("click on fourth star should select 4, got %d", m.Value())
	}
	if msg, ok := cmd().(ChangeMsg); !ok || msg.Value != 4 {
		t.Fatalf("unexpected message %#v", msg)
	}
	m, _ = m.Update(tea.MouseMsg{X: 40, Y: 4, Action: tea.MouseActionMotion})
	if got := m.View(); got != "★ ★ ★ ★ ." {
		t.Fatalf("leaving the stars should show the value, got %q", got)
	}
}
