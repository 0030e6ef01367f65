package split

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

type dragState int

const (
	dragIdle dragState = iota
	dragDragging
)

func (s dragState) String() string {
	if s == dragDragging {
		return "dragging"
	}
	return "idle"
}

// beginDrag enters Dragging and takes the document capture so motion and
// release keep arriving wherever the pointer goes.
func (p *Panel) beginDrag() bool {
	if p.drag == dragDragging {
		return false
	}
	p.drag = dragDragging
	p.doc.Capture(p.id, p)
	log.Debug().Str("panel", p.id).Msg("split: drag start")
	return true
}

// endDrag leaves Dragging and releases the capture. Calling it while idle
// does nothing.
func (p *Panel) endDrag() bool {
	if p.drag != dragDragging {
		return false
	}
	p.drag = dragIdle
	p.doc.Release(p.id)
	log.Debug().Str("panel", p.id).Float64("position", p.position).Msg("split: drag end")
	return true
}

// PointerDown handles a press at screen cell (x, y). It reports whether the
// press landed on the divider and started a drag.
func (p *Panel) PointerDown(x, y int) bool {
	if p.disabled || !p.onDivider(x, y) {
		return false
	}
	p.focused = true
	p.beginDrag()
	return true
}

// PointerMove tracks the divider while dragging. Only the main-axis
// coordinate matters.
func (p *Panel) PointerMove(x, y int) tea.Cmd {
	if p.drag != dragDragging || !p.size.ok {
		return nil
	}
	a := p.axis()
	size := p.size.cells
	offset := p.snapOffset(float64(a.main(x, y, p.x, p.y)))
	pct, _ := p.size.toPercent(a.transform(offset, size))
	p.commit(pct)
	return p.Flush()
}

// PointerUp ends the drag.
func (p *Panel) PointerUp() tea.Cmd {
	p.endDrag()
	return nil
}

// snapOffset replaces a physical offset with the first snap target within
// the threshold. Targets are resolved logically and mapped to physical
// offsets, which mirrors them in right-to-left layouts.
func (p *Panel) snapOffset(offset float64) float64 {
	a := p.axis()
	size := p.size.cells
	for _, pt := range p.snap {
		target := a.transform(pt.Pixels(size), size)
		if offset >= target-p.snapThreshold && offset <= target+p.snapThreshold {
			return target
		}
	}
	return offset
}

// onDivider hit-tests a screen cell against the divider and its hit area.
func (p *Panel) onDivider(x, y int) bool {
	if !p.size.ok {
		return false
	}
	a := p.axis()
	cross := a.cross(x, y, p.x, p.y)
	if cross < 0 || cross >= a.extent(p.height, p.width) {
		return false
	}
	main := a.main(x, y, p.x, p.y)
	lo := p.layout.DividerAt - p.hitArea
	hi := p.layout.DividerAt + p.layout.DividerWidth - 1 + p.hitArea
	if p.layout.DividerWidth == 0 {
		hi = p.layout.DividerAt + p.hitArea
	}
	return main >= lo && main <= hi
}
