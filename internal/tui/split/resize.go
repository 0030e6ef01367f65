package split

// Place sets the panel's screen origin, used to turn pointer coordinates into
// offsets.
func (p *Panel) Place(x, y int) { p.x, p.y = x, y }

// Resize is the container-size notification. It re-measures the main axis
// and re-applies layout; with a primary region set the percentage is
// recomputed so that region keeps its cell size.
func (p *Panel) Resize(width, height int) {
	p.width, p.height = width, height
	p.remeasure(false)
}

// SetBounds places and resizes in one call.
func (p *Panel) SetBounds(x, y, width, height int) {
	p.Place(x, y)
	p.Resize(width, height)
}

// Bounds returns the last origin and size given to Place and Resize.
func (p *Panel) Bounds() (x, y, width, height int) { return p.x, p.y, p.width, p.height }

func (p *Panel) remeasure(axisChanged bool) {
	p.size = measured(p.axis().extent(p.width, p.height))
	if !p.size.ok {
		p.applyLayout()
		return
	}

	switch {
	case p.hasPending:
		// first measurement after a cell position was requested
		pct, _ := p.size.toPercent(p.pending)
		p.commit(pct)
		return
	case !p.anchored || axisChanged:
		p.anchor, p.anchored = p.size.toPixels(p.position), true
	case p.primary != PrimaryNone:
		pct, _ := p.size.toPercent(p.anchor)
		p.position = clamp(pct, 0, 100)
	default:
		p.anchor = p.size.toPixels(p.position)
	}
	p.applyLayout()
}
