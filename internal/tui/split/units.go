package split

import (
	"math"
	"strconv"
	"strings"
)

// PercentToPixels converts a percentage of size to cells.
func PercentToPixels(pct, size float64) float64 {
	return size * (pct / 100)
}

// PixelsToPercent converts cells to a percentage of size. ok is false when
// size has not been measured, in which case the conversion must be deferred.
func PixelsToPercent(px, size float64) (pct float64, ok bool) {
	if size <= 0 || math.IsNaN(size) || math.IsInf(size, 0) {
		return 0, false
	}
	return px / size * 100, true
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// extent is the measured main-axis size. The zero value means the panel has
// not been measured yet.
type extent struct {
	cells float64
	ok    bool
}

func measured(n int) extent {
	if n <= 0 {
		return extent{}
	}
	return extent{cells: float64(n), ok: true}
}

func (e extent) toPixels(pct float64) float64 {
	if !e.ok {
		return 0
	}
	return PercentToPixels(pct, e.cells)
}

func (e extent) toPercent(px float64) (float64, bool) {
	if !e.ok {
		return 0, false
	}
	return PixelsToPercent(px, e.cells)
}

func parseFinite(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// parseNumber reads a numeric attribute, tolerating a trailing "%" or "px".
// Anything else yields def.
func parseNumber(s string, def float64) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	if strings.HasSuffix(strings.ToLower(s), "px") {
		s = s[:len(s)-2]
	}
	if v, ok := parseFinite(s); ok {
		return v
	}
	return def
}
