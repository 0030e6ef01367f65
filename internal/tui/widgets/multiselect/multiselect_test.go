package multiselect

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func langs() []Option {
	return []Option{
		{Value: "go", Label: "Go"},
		{Value: "rust", Label: "Rust", Selected: true},
		{Value: "zig", Label: "Zig"},
		{Value: "py", Label: "Python"},
	}
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestSelectionKeepsInsertionOrder(t *testing.T) {
	m := New("langs", langs())
	m.ToggleOption("zig")
	m.ToggleOption("go")
	if got := m.Value(); !reflect.DeepEqual(got, []string{"rust", "zig", "go"}) {
		t.Fatalf("unexpected order %v", got)
	}
	m.ToggleOption("zig")
	if got := m.Value(); !reflect.DeepEqual(got, []string{"rust", "go"}) {
		t.Fatalf("unexpected selection after deselect %v", got)
	}
	if cmd := m.ToggleOption("cobol"); cmd != nil {
		t.Fatalf("unknown option should be ignored")
	}
}

func TestRemoveEmitsChange(t *testing.T) {
	m := New("langs", langs())
	cmd := m.Remove("rust")
	if cmd == nil {
		t.Fatalf("expected change command")
	}
	msg, ok := cmd().(ChangeMsg)
	if !ok || msg.Name != "langs" || len(msg.Values) != 0 {
		t.Fatalf("unexpected message %#v", msg)
	}
	if m.Remove("rust") != nil {
		t.Fatalf("removing an unselected value should be a no-op")
	}
}

func TestValidityResetAndFormValue(t *testing.T) {
	m := New("langs", langs())
	m.Required = true
	m.Remove("rust")
	if m.Valid() || m.ValidationMessage() != "Please select at least one option." {
		t.Fatalf("required multiselect with no selection should be invalid")
	}
	if m.FormValue() != nil {
		t.Fatalf("empty selection should submit nothing")
	}
	m.SetValue([]string{"py", "py", "nope", "go"})
	if got := m.FormValue()["langs"]; !reflect.DeepEqual(got, []string{"py", "go"}) {
		t.Fatalf("unexpected form value %v", got)
	}
	m.Reset()
	if got := m.Value(); !reflect.DeepEqual(got, []string{"rust"}) {
		t.Fatalf("reset should restore the preselection, got %v", got)
	}
}

func TestKeyboardOpenToggleClose(t *testing.T) {
	m := New("langs", langs())
	m.Focus()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.IsOpen() {
		t.Fatalf("enter should open")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	if cmd == nil || !reflect.DeepEqual(m.Value(), []string{"rust", "zig"}) {
		t.Fatalf("space should toggle the option under the cursor, got %v", m.Value())
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.IsOpen() {
		t.Fatalf("esc should close")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if !reflect.DeepEqual(m.Value(), []string{"rust"}) {
		t.Fatalf("backspace on the closed field should drop the last chip, got %v", m.Value())
	}
}

func TestTypeAheadFilter(t *testing.T) {
	m := New("langs", langs())
	m.Focus()
	m.Open()
	m, _ = m.Update(runes("pyt"))
	if v := m.Visible(); len(v) != 1 || v[0].Value != "py" {
		t.Fatalf("expected only Python, got %+v", v)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if len(m.Visible()) != 4 || m.Filter() != "" {
		t.Fatalf("clearing the filter should show every option")
	}
	m, _ = m.Update(runes("zug"))
	if v := m.Visible(); len(v) != 1 || v[0].Value != "zig" {
		t.Fatalf("one typo should still match Zig, got %+v", v)
	}
	m.Close()
	if m.Filter() != "" {
		t.Fatalf("closing should clear the filter")
	}
}

func TestSubstringMatchesRankFirst(t *testing.T) {
	m := New("x", []Option{
		{Value: "a", Label: "Gap"},
		{Value: "b", Label: "Gopher"},
	})
	m.Open()
	m.filter = "go"
	if v := m.Visible(); len(v) != 1 || v[0].Value != "b" {
		t.Fatalf("expected only Gopher for a short filter, got %+v", v)
	}
	m.filter = "gopx"
	if v := m.Visible(); len(v) != 1 || v[0].Value != "b" {
		t.Fatalf("expected Gopher as near miss, got %+v", v)
	}
}

func TestDisabledIgnoresInput(t *testing.T) {
	m := New("langs", langs())
	m.Disabled = true
	m.Focus()
	m.Open()
	if m.Focused() || m.IsOpen() {
		t.Fatalf("disabled multiselect should not focus or open")
	}
}

func TestViewNoColor(t *testing.T) {
	m := New("langs", langs())
	m.NoColor = true
	if got := m.View(); got != "[Rust x] ▾" {
		t.Fatalf("unexpected closed view %q", got)
	}
	m.Remove("rust")
	if got := m.View(); got != "Select… ▾" {
		t.Fatalf("unexpected placeholder view %q", got)
	}
}
