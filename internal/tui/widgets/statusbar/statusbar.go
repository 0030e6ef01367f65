package statusbar

import (
	"fmt"
	"strings"

	"pico-x/internal/tui/state"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line reflecting key UI state.
func (StatusBar) View(s state.UIState) string {
	mode := "[CMD]"
	if s.Mode == state.INSERT {
		mode = "[INSERT]"
	}
	split := fmt.Sprintf("Split: %.1f%%", s.Position)
	if s.Collapsed {
		split += " (collapsed)"
	}
	if s.Dragging {
		split += " (dragging)"
	}
	orient := "Side by side"
	if s.Vertical {
		orient = "Stacked"
	}
	wrap := "Wrap: Off"
	if s.Wrap {
		wrap = "Wrap: On"
	}
	view := "Unified"
	if s.View == state.SideBySide {
		view = "Side-by-side"
	}
	width := fmt.Sprintf("W:%d", s.Width)

	parts := []string{mode, "Focus: " + s.Focus.String(), split, orient, wrap, view, width}
	if s.Notice != "" {
		parts = append(parts, s.Notice)
	}
	return strings.Join(parts, "  ")
}
