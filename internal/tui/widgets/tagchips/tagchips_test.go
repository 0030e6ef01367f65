package tagchips

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"pico-x/internal/tui/state"
)

func TestViewNoColor(t *testing.T) {
	out := View([]state.Tag{{Label: "Edited"}, {Label: "Go", Removable: true}}, true)
	if out != "[Edited] [Go x]" {
		t.Fatalf("unexpected ascii chips %q", out)
	}
	if View(nil, true) != "" {
		t.Fatalf("no tags should render nothing")
	}
}

func TestRemoveReportsValueOrLabel(t *testing.T) {
	tags := []state.Tag{
		{Label: "Go", Value: "golang", Removable: true},
		{Label: "Rust", Removable: true},
		{Label: "Fixed"},
	}
	out, key, ok := Remove(tags, 0)
	if !ok || key != "golang" || len(out) != 2 {
		t.Fatalf("expected value key, got %q ok=%v len=%d", key, ok, len(out))
	}
	_, key, ok = Remove(out, 0)
	if !ok || key != "Rust" {
		t.Fatalf("expected label key, got %q", key)
	}
	if _, _, ok := Remove(tags, 2); ok {
		t.Fatalf("non-removable chip was removed")
	}
	if _, _, ok := Remove(tags, 9); ok {
		t.Fatalf("out of range index was removed")
	}
}

func TestModelBackspaceRemoves(t *testing.T) {
	m := New("langs", []state.Tag{{Label: "Go", Removable: true}, {Label: "Zig", Removable: true}})
	m.Focus()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if cmd == nil {
		t.Fatalf("expected removal command")
	}
	msg, ok := cmd().(RemovedMsg)
	if !ok || msg.Value != "Zig" || msg.Group != "langs" {
		t.Fatalf("unexpected message %#v", msg)
	}
	if len(m.Tags) != 1 || m.Cursor() != 0 {
		t.Fatalf("cursor should move back onto the remaining chip")
	}
}

func TestModelIgnoresKeysWhenBlurred(t *testing.T) {
	m := New("langs", []state.Tag{{Label: "Go", Removable: true}})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if cmd != nil || len(m.Tags) != 1 {
		t.Fatalf("blurred chip row reacted to a key")
	}
}
