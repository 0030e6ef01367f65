package state

// Focus names the demo pane that receives key input.
type Focus int

const (
	FocusDivider Focus = iota
	FocusEditor
	FocusGallery
)

func (f Focus) String() string {
	switch f {
	case FocusEditor:
		return "editor"
	case FocusGallery:
		return "gallery"
	default:
		return "divider"
	}
}

// EditorMode represents the editor's current input mode.
type EditorMode int

const (
	CMD EditorMode = iota
	INSERT
)

// DiffMode controls how the diff is rendered.
type DiffMode int

const (
	Unified DiffMode = iota
	SideBySide
)

// UIState holds cross-widget UI state used by the status bar, diff, editor
// and help overlay.
type UIState struct {
	Focus Focus

	// Mode & View
	Mode EditorMode
	Wrap bool
	View DiffMode

	// Layout
	Width  int
	MinCol int

	// Split readout, refreshed from reposition messages
	Position  float64
	Collapsed bool
	Dragging  bool
	Vertical  bool

	// Editor constraints & flags
	Limit  int // default 300 at runtime if zero
	Edited bool

	// Notices and ephemeral messages
	Notice string
}
