// Package split implements a resizable two-region panel: pointer drags,
// keyboard nudges, snapping, collapse/restore and re-layout on resize.
//
// Position is a percentage and the only stored value; cell offsets are
// always derived from the measured container size.
package split

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"pico-x/internal/tui/pointer"
)

const (
	DefaultPosition      = 50
	DefaultSnapThreshold = 12
)

// RepositionMsg is emitted after every effective position change. It is
// delivered synchronously to OnReposition listeners and as a tea.Msg to the
// enclosing model.
type RepositionMsg struct {
	ID               string
	Position         float64
	PositionInPixels float64
}

// DividerState is the numeric state the divider reports after each layout.
type DividerState struct {
	Now, Min, Max float64
}

// Panel is a split panel instance. It is not safe for concurrent use; all
// calls are expected from the Bubble Tea update loop.
type Panel struct {
	id    string
	doc   *pointer.Document
	attrs map[string]string

	position      float64
	orientation   Orientation
	dir           Direction
	primary       Primary
	disabled      bool
	snap          []SnapPoint
	snapThreshold float64
	min, max      float64

	collapsed      bool
	beforeCollapse float64

	x, y          int
	width, height int
	size          extent

	// anchor is the primary region's cell size at the last effective change.
	anchor   float64
	anchored bool
	// pending holds a cell position requested before the first measurement.
	pending    float64
	hasPending bool

	drag    dragState
	focused bool

	dividerWidth int
	hitArea      int
	noColor      bool
	slots        Slots

	layout      Layout
	divider     DividerState
	afterLayout []func()

	listeners []func(RepositionMsg)
	outbox    []RepositionMsg
}

// Option configures a Panel at construction.
type Option func(*Panel)

// WithDocument shares a pointer document with the rest of the screen so drags
// keep tracking when the pointer leaves the divider.
func WithDocument(d *pointer.Document) Option { return func(p *Panel) { p.doc = d } }

// WithDividerWidth sets the divider thickness in cells (default 1).
func WithDividerWidth(n int) Option {
	return func(p *Panel) {
		if n >= 0 {
			p.dividerWidth = n
		}
	}
}

// WithHitArea widens the divider's press target by n cells on each side.
func WithHitArea(n int) Option {
	return func(p *Panel) {
		if n >= 0 {
			p.hitArea = n
		}
	}
}

func WithSlots(s Slots) Option { return func(p *Panel) { p.slots = s } }

func WithNoColor(v bool) Option { return func(p *Panel) { p.noColor = v } }

// New returns a panel with position 50, horizontal orientation and a snap
// threshold of 12 cells. It is unmeasured until the first Resize.
func New(opts ...Option) *Panel {
	p := &Panel{
		id:            uuid.NewString(),
		attrs:         map[string]string{},
		position:      DefaultPosition,
		snapThreshold: DefaultSnapThreshold,
		min:           0,
		max:           100,
		dividerWidth:  1,
		hitArea:       1,
	}
	for _, o := range opts {
		o(p)
	}
	if p.doc == nil {
		p.doc = pointer.NewDocument()
	}
	p.applyLayout()
	return p
}

func (p *Panel) ID() string { return p.id }

func (p *Panel) axis() axis {
	return axis{orientation: p.orientation, dir: p.dir, primary: p.primary}
}

// ===== accessors =====

func (p *Panel) Position() float64 { return p.position }

// PositionInPixels derives the cell offset from the current measurement; it
// is 0 while unmeasured.
func (p *Panel) PositionInPixels() float64 { return p.size.toPixels(p.position) }

// ContainerSize returns the measured main-axis extent.
func (p *Panel) ContainerSize() (float64, bool) { return p.size.cells, p.size.ok }

func (p *Panel) Orientation() Orientation { return p.orientation }
func (p *Panel) Direction() Direction { return p.dir }
func (p *Panel) Primary() Primary { return p.primary }
func (p *Panel) Disabled() bool { return p.disabled }
func (p *Panel) SnapPoints() []SnapPoint { return append([]SnapPoint(nil), p.snap...) }
func (p *Panel) SnapThreshold() float64 { return p.snapThreshold }
func (p *Panel) Collapsed() bool { return p.collapsed }
func (p *Panel) PositionBeforeCollapsing() float64 { return p.beforeCollapse }
func (p *Panel) Dragging() bool { return p.drag == dragDragging }
func (p *Panel) Layout() Layout { return p.layout }
func (p *Panel) DividerState() DividerState { return p.divider }
func (p *Panel) Focused() bool { return p.focused }

// Limits returns the min/max percentage bounds of the elastic track.
func (p *Panel) Limits() (min, max float64) { return p.min, p.max }

// Focus gives the divider keyboard focus. Disabled panels cannot be focused.
func (p *Panel) Focus() {
	if !p.disabled {
		p.focused = true
	}
}

func (p *Panel) Blur() { p.focused = false }

// OnReposition registers a listener called synchronously after every
// effective position change.
func (p *Panel) OnReposition(fn func(RepositionMsg)) {
	p.listeners = append(p.listeners, fn)
}

// ===== position model =====

// SetPosition moves the split to pct percent, clamped to [0, 100].
func (p *Panel) SetPosition(pct float64) { p.commit(pct) }

// SetPositionInPixels moves the split to an absolute cell offset. Before the
// first measurement the request is held and resolved on Resize.
func (p *Panel) SetPositionInPixels(px float64) {
	if pct, ok := p.size.toPercent(px); ok {
		p.commit(pct)
		return
	}
	p.pending, p.hasPending = px, true
	log.Debug().Str("panel", p.id).Float64("px", px).Msg("split: pixel position deferred until measured")
}

// commit is the single write path for position.
func (p *Panel) commit(pct float64) {
	pct = clamp(pct, 0, 100)
	changed := pct != p.position
	p.position = pct
	p.collapsed = false
	p.beforeCollapse = 0
	p.hasPending = false
	if p.size.ok {
		p.anchor, p.anchored = p.size.toPixels(pct), true
	} else {
		// re-derived from the stored percentage on the next measurement
		p.anchored = false
	}
	p.applyLayout()
	if changed {
		p.emit()
	}
}

func (p *Panel) emit() {
	ev := RepositionMsg{ID: p.id, Position: p.position, PositionInPixels: p.PositionInPixels()}
	for _, fn := range p.listeners {
		fn(ev)
	}
	p.outbox = append(p.outbox, ev)
}

// Flush returns the queued reposition messages as a command, in order.
func (p *Panel) Flush() tea.Cmd {
	if len(p.outbox) == 0 {
		return nil
	}
	evs := p.outbox
	p.outbox = nil
	cmds := make([]tea.Cmd, 0, len(evs))
	for _, ev := range evs {
		ev := ev
		cmds = append(cmds, func() tea.Msg { return ev })
	}
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Sequence(cmds...)
}

// ===== settings =====

func (p *Panel) SetOrientation(o Orientation) {
	if o == p.orientation {
		return
	}
	p.orientation = o
	p.remeasure(true)
}

func (p *Panel) SetPrimary(pr Primary) {
	if pr == p.primary {
		return
	}
	p.primary = pr
	p.applyLayout()
}

func (p *Panel) SetDirection(d Direction) {
	if d == p.dir {
		return
	}
	p.dir = d
	p.applyLayout()
}

// SetDisabled makes input handlers inert. A drag already in progress keeps
// going until release.
func (p *Panel) SetDisabled(v bool) {
	p.disabled = v
	if v {
		p.focused = false
	}
}

func (p *Panel) SetSnap(points []SnapPoint) { p.snap = append([]SnapPoint(nil), points...) }

// SetSnapThreshold sets the snap radius in cells; negative values reset it
// to the default.
func (p *Panel) SetSnapThreshold(v float64) {
	if v < 0 {
		v = DefaultSnapThreshold
	}
	p.snapThreshold = v
}

// SetLimits bounds the elastic track to [min, max] percent.
func (p *Panel) SetLimits(min, max float64) {
	min = clamp(min, 0, 100)
	max = clamp(max, 0, 100)
	if max < min {
		max = min
	}
	p.min, p.max = min, max
	p.applyLayout()
}

// Close tears the panel down: any active drag is ended and its pointer
// capture released. Listeners are dropped.
func (p *Panel) Close() {
	p.endDrag()
	p.listeners = nil
	p.outbox = nil
}
