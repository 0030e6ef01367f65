package split

import (
	"sort"

	"github.com/rs/zerolog/log"
)

// Attribute names of the string-encoded surface.
const (
	AttrPosition         = "position"
	AttrPositionInPixels = "position-in-pixels"
	AttrOrientation      = "orientation"
	AttrDisabled         = "disabled"
	AttrPrimary          = "primary"
	AttrSnap             = "snap"
	AttrSnapThreshold    = "snap-threshold"
	AttrDir              = "dir"
	AttrMin              = "min"
	AttrMax              = "max"
)

// ObservedAttributes lists every attribute the panel reacts to.
var ObservedAttributes = []string{
	AttrPosition,
	AttrPositionInPixels,
	AttrOrientation,
	AttrDisabled,
	AttrPrimary,
	AttrSnap,
	AttrSnapThreshold,
	AttrDir,
	AttrMin,
	AttrMax,
}

// SetAttribute sets a string attribute and reacts to it. Setting the current
// value again is a no-op. Unparsable numbers fall back to their defaults.
func (p *Panel) SetAttribute(name, value string) {
	if old, ok := p.attrs[name]; ok && old == value {
		return
	}
	p.attrs[name] = value
	p.attributeChanged(name, value, true)
}

// RemoveAttribute removes an attribute, which restores its default.
func (p *Panel) RemoveAttribute(name string) {
	if _, ok := p.attrs[name]; !ok {
		return
	}
	delete(p.attrs, name)
	p.attributeChanged(name, "", false)
}

// Attribute returns the raw value last set for name.
func (p *Panel) Attribute(name string) (string, bool) {
	v, ok := p.attrs[name]
	return v, ok
}

// Attributes returns the names of all attributes currently set, sorted.
func (p *Panel) Attributes() []string {
	names := make([]string, 0, len(p.attrs))
	for k := range p.attrs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func (p *Panel) attributeChanged(name, value string, present bool) {
	switch name {
	case AttrPosition:
		p.SetPosition(parseNumber(value, DefaultPosition))
	case AttrPositionInPixels:
		p.SetPositionInPixels(parseNumber(value, 0))
	case AttrOrientation:
		p.SetOrientation(ParseOrientation(value))
	case AttrDisabled:
		p.SetDisabled(present)
	case AttrPrimary:
		p.SetPrimary(ParsePrimary(value))
	case AttrSnap:
		p.SetSnap(ParseSnap(value))
	case AttrSnapThreshold:
		p.SetSnapThreshold(parseNumber(value, DefaultSnapThreshold))
	case AttrDir:
		p.SetDirection(ParseDirection(value))
	case AttrMin:
		p.SetLimits(parseNumber(value, 0), p.max)
	case AttrMax:
		p.SetLimits(p.min, parseNumber(value, 100))
	default:
		log.Debug().Str("panel", p.id).Str("attr", name).Msg("split: ignoring unknown attribute")
	}
}
