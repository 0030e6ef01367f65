package state

// ToggleWrap flips the Wrap flag and returns a new state copy.
func ToggleWrap(s UIState) UIState {
	s.Wrap = !s.Wrap
	return s
}

// ToggleMode switches between CMD and INSERT modes and sets a brief notice.
func ToggleMode(s UIState) UIState {
	if s.Mode == CMD {
		s.Mode = INSERT
		s.Notice = "[INSERT]"
	} else {
		s.Mode = CMD
		s.Notice = "[CMD]"
	}
	return s
}

// ToggleView switches between Unified and SideBySide diff views.
func ToggleView(s UIState) UIState {
	if s.View == Unified {
		s.View = SideBySide
	} else {
		s.View = Unified
	}
	return s
}

// Resize updates width and sets a fallback notice if too narrow for side-by-side.
// Threshold heuristic: need at least 2*MinCol plus 3 chars for separator/gutters.
func Resize(s UIState, width int) UIState {
	s.Width = width
	threshold := 2*s.MinCol + 3
	if s.View == SideBySide && s.Width < threshold {
		s.View = Unified
		s.Notice = "Narrow width: using unified view"
	}
	return s
}

// CycleFocus moves focus divider -> editor -> gallery -> divider. Leaving the
// editor drops back to CMD mode.
func CycleFocus(s UIState) UIState {
	s.Focus = (s.Focus + 1) % 3
	if s.Focus != FocusEditor {
		s.Mode = CMD
	}
	return s
}

// Reposition records the split readout shown in the status bar.
func Reposition(s UIState, position float64, collapsed, dragging bool) UIState {
	s.Position = position
	s.Collapsed = collapsed
	s.Dragging = dragging
	return s
}

// ToggleOrientation flips the split between side by side and stacked.
func ToggleOrientation(s UIState) UIState {
	s.Vertical = !s.Vertical
	if s.Vertical {
		s.Notice = "Stacked"
	} else {
		s.Notice = "Side by side"
	}
	return s
}

// ClearNotice drops the ephemeral notice.
func ClearNotice(s UIState) UIState {
	s.Notice = ""
	return s
}
