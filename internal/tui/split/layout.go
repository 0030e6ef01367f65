package split

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Track is one content track of the layout.
type Track struct {
	Region  Region
	Elastic bool    // sized from the percentage; the other track is auto
	Percent float64 // elastic share of the main axis, 0 for auto tracks
	Cells   int
}

// Layout is the two-track arrangement along the main axis. Tracks are in
// physical order (left to right, or top to bottom) with the divider between.
type Layout struct {
	Orientation  Orientation
	Tracks       [2]Track
	DividerAt    int // first divider cell, relative to the panel origin
	DividerWidth int
	Size         int
	Min, Max     float64
}

// Track returns the track that holds region r.
func (l Layout) Track(r Region) Track {
	if l.Tracks[0].Region == r {
		return l.Tracks[0]
	}
	return l.Tracks[1]
}

// String renders the track template, e.g. "clamp(0%, 30%, 100%) 1 auto".
func (l Layout) String() string {
	parts := make([]string, 0, 3)
	for i, t := range l.Tracks {
		if t.Elastic {
			parts = append(parts, fmt.Sprintf("clamp(%s%%, %s%%, %s%%)", num(l.Min), num(t.Percent), num(l.Max)))
		} else {
			parts = append(parts, "auto")
		}
		if i == 0 {
			parts = append(parts, strconv.Itoa(l.DividerWidth))
		}
	}
	return strings.Join(parts, " ")
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

type layoutInput struct {
	axis     axis
	position float64
	min, max float64
	size     int
	divider  int
}

// computeLayout sizes the elastic track as pos% minus half the divider,
// bounded by min/max and by the room left beside the divider; the auto track
// takes the rest.
func computeLayout(in layoutInput) Layout {
	order := in.axis.order()
	elastic := in.axis.elastic()
	room := in.size - in.divider
	if room < 0 {
		room = 0
	}

	cells := 0
	if in.size > 0 {
		size := float64(in.size)
		want := size*in.position/100 - float64(in.divider)/2
		want = clamp(want, size*in.min/100, size*in.max/100)
		want = clamp(want, 0, float64(room))
		cells = int(math.Round(want))
	}

	l := Layout{
		Orientation:  in.axis.orientation,
		DividerWidth: in.divider,
		Size:         in.size,
		Min:          in.min,
		Max:          in.max,
	}
	for i, r := range order {
		t := Track{Region: r}
		if r == elastic {
			t.Elastic = true
			t.Percent = in.position
			t.Cells = cells
		} else {
			t.Cells = room - cells
		}
		l.Tracks[i] = t
	}
	l.DividerAt = l.Tracks[0].Cells
	return l
}

// applyLayout recomputes the layout, refreshes the divider state and runs
// work queued for after the layout pass.
func (p *Panel) applyLayout() {
	size := 0
	if p.size.ok {
		size = int(p.size.cells)
	}
	p.layout = computeLayout(layoutInput{
		axis:     p.axis(),
		position: p.position,
		min:      p.min,
		max:      p.max,
		size:     size,
		divider:  p.dividerWidth,
	})
	p.divider = DividerState{Now: p.position, Min: 0, Max: 100}

	queued := p.afterLayout
	p.afterLayout = nil
	for _, fn := range queued {
		fn()
	}
}
