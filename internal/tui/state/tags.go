package state

// Tag is a single chip. Value is what a remove action reports; when empty the
// Label is reported instead. Variant picks the palette entry (primary,
// success, danger, warning, muted).
type Tag struct {
	Label     string
	Value     string
	Variant   string
	Removable bool
}

// Key is the value reported when the chip is removed.
func (t Tag) Key() string {
	if t.Value != "" {
		return t.Value
	}
	return t.Label
}
