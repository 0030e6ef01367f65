package state

import "testing"

func TestToggleWrap(t *testing.T) {
	s := UIState{Wrap: false}
	s = ToggleWrap(s)
	if !s.Wrap {
		t.Fatalf("expected Wrap to be true")
	}
}

func TestToggleModeSetsNotice(t *testing.T) {
	s := UIState{Mode: CMD}
	s = ToggleMode(s)
	if s.Mode != INSERT || s.Notice == "" {
		t.Fatalf("expected INSERT mode and notice")
	}
	s = ToggleMode(s)
	if s.Mode != CMD || s.Notice == "" {
		t.Fatalf("expected CMD mode and notice")
	}
}

func TestToggleView(t *testing.T) {
	s := UIState{View: Unified}
	s = ToggleView(s)
	if s.View != SideBySide {
		t.Fatalf("expected SideBySide view")
	}
}

func TestResizeFallbackToUnified(t *testing.T) {
	s := UIState{View: SideBySide, MinCol: 20}
	s = Resize(s, 30) // threshold = 2*20+3 = 43; 30 < 43 => unified
	if s.View != Unified {
		t.Fatalf("expected Unified after resize fallback")
	}
	if s.Notice == "" {
		t.Fatalf("expected fallback notice to be set")
	}
}

func TestCycleFocus(t *testing.T) {
	s := UIState{Focus: FocusDivider}
	want := []Focus{FocusEditor, FocusGallery, FocusDivider}
	for _, w := range want {
		s = CycleFocus(s)
		if s.Focus != w {
			t.Fatalf("expected focus %v, got %v", w, s.Focus)
		}
	}
}

func TestCycleFocusLeavesInsertMode(t *testing.T) {
	s := UIState{Focus: FocusEditor, Mode: INSERT}
	s = CycleFocus(s)
	if s.Mode != CMD {
		t.Fatalf("leaving the editor should return to CMD mode")
	}
}

func TestReposition(t *testing.T) {
	s := Reposition(UIState{}, 42.5, true, false)
	if s.Position != 42.5 || !s.Collapsed || s.Dragging {
		t.Fatalf("unexpected readout %+v", s)
	}
}

func TestTagKeyFallsBackToLabel(t *testing.T) {
	if k := (Tag{Label: "Go"}).Key(); k != "Go" {
		t.Fatalf("expected label as key, got %q", k)
	}
	if k := (Tag{Label: "Go", Value: "golang"}).Key(); k != "golang" {
		t.Fatalf("expected value as key, got %q", k)
	}
}
