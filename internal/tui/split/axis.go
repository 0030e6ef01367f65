package split

// axis maps between physical offsets (cells from the panel origin along the
// main axis) and logical offsets (the size of the region that position
// measures). Drag, keyboard and layout all go through it so mirroring lives
// in one place.
//
// Two things mirror: a right-to-left horizontal context places the start
// region on the right, and primary=end makes position measure the end
// region. Both together cancel out.
type axis struct {
	orientation Orientation
	dir         Direction
	primary     Primary
}

func (a axis) rtl() bool { return a.dir == RTL && a.orientation == Horizontal }

func (a axis) mirrored() bool { return a.rtl() != (a.primary == PrimaryEnd) }

// transform converts a physical offset to a logical one. It is its own
// inverse.
func (a axis) transform(offset, size float64) float64 {
	if a.mirrored() {
		return size - offset
	}
	return offset
}

// step is the position delta that moves the divider n percent toward the
// far screen edge (right or bottom).
func (a axis) step(n float64) float64 {
	if a.mirrored() {
		return -n
	}
	return n
}

// nearEdge is the position that puts the divider at the left or top edge.
func (a axis) nearEdge() float64 {
	if a.mirrored() {
		return 100
	}
	return 0
}

func (a axis) farEdge() float64 { return 100 - a.nearEdge() }

// elastic returns the region whose track carries the percentage.
func (a axis) elastic() Region {
	if a.primary == PrimaryEnd {
		return RegionEnd
	}
	return RegionStart
}

// order returns the regions in physical order.
func (a axis) order() [2]Region {
	if a.rtl() {
		return [2]Region{RegionEnd, RegionStart}
	}
	return [2]Region{RegionStart, RegionEnd}
}

// main picks the main-axis component of a point relative to an origin;
// the cross-axis component is ignored.
func (a axis) main(x, y, originX, originY int) int {
	if a.orientation == Vertical {
		return y - originY
	}
	return x - originX
}

func (a axis) cross(x, y, originX, originY int) int {
	if a.orientation == Vertical {
		return x - originX
	}
	return y - originY
}

// extent picks the main-axis extent of a width/height pair.
func (a axis) extent(width, height int) int {
	if a.orientation == Vertical {
		return height
	}
	return width
}

// arrows returns the key names that move the divider toward the near and
// far screen edges along this axis.
func (a axis) arrows() (near, far string) {
	if a.orientation == Vertical {
		return "up", "down"
	}
	return "left", "right"
}
