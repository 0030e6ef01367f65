package split

import (
	"strconv"
	"strings"
)

// SnapUnit tells how a snap point's value is interpreted.
type SnapUnit int

const (
	SnapPercent SnapUnit = iota
	SnapPixels
)

// SnapPoint is a divider position that attracts drags within the snap threshold.
type SnapPoint struct {
	Value float64
	Unit  SnapUnit
}

// Pixels resolves the point against a container size.
func (s SnapPoint) Pixels(size float64) float64 {
	if s.Unit == SnapPercent {
		return PercentToPixels(s.Value, size)
	}
	return s.Value
}

func (s SnapPoint) String() string {
	v := strconv.FormatFloat(s.Value, 'f', -1, 64)
	if s.Unit == SnapPercent {
		return v + "%"
	}
	return v + "px"
}

// ParseSnap parses a space separated list such as "25% 50% 120px 300".
// Bare numbers are pixels. Unparsable tokens are skipped; order is kept.
func ParseSnap(s string) []SnapPoint {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil
	}
	out := make([]SnapPoint, 0, len(fields))
	for _, f := range fields {
		unit := SnapPixels
		switch {
		case strings.HasSuffix(f, "%"):
			unit = SnapPercent
			f = strings.TrimSuffix(f, "%")
		case strings.HasSuffix(strings.ToLower(f), "px"):
			f = f[:len(f)-2]
		}
		v, ok := parseFinite(f)
		if !ok {
			continue
		}
		out = append(out, SnapPoint{Value: v, Unit: unit})
	}
	return out
}

// FormatSnap is the inverse of ParseSnap.
func FormatSnap(points []SnapPoint) string {
	parts := make([]string, 0, len(points))
	for _, p := range points {
		parts = append(parts, p.String())
	}
	return strings.Join(parts, " ")
}
