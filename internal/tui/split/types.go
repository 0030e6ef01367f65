package split

import "strings"

// Orientation selects the main axis of the split.
type Orientation int

const (
	Horizontal Orientation = iota // regions side by side, divider moves along x
	Vertical                      // regions stacked, divider moves along y
)

// ParseOrientation maps the attribute encoding; anything but "vertical" is horizontal.
func ParseOrientation(s string) Orientation {
	if strings.EqualFold(strings.TrimSpace(s), "vertical") {
		return Vertical
	}
	return Horizontal
}

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Primary designates the region whose cell size survives container resizes.
type Primary int

const (
	PrimaryNone Primary = iota
	PrimaryStart
	PrimaryEnd
)

// ParsePrimary maps the attribute encoding; unknown values mean no primary.
func ParsePrimary(s string) Primary {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "start":
		return PrimaryStart
	case "end":
		return PrimaryEnd
	default:
		return PrimaryNone
	}
}

func (p Primary) String() string {
	switch p {
	case PrimaryStart:
		return "start"
	case PrimaryEnd:
		return "end"
	default:
		return ""
	}
}

// Direction is the writing direction of the surrounding content.
type Direction int

const (
	LTR Direction = iota
	RTL
)

func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), "rtl") {
		return RTL
	}
	return LTR
}

func (d Direction) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// Region names one of the two content areas in document order.
type Region int

const (
	RegionStart Region = iota
	RegionEnd
)

func (r Region) String() string {
	if r == RegionEnd {
		return "end"
	}
	return "start"
}
