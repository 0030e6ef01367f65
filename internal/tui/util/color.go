package util

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// NoColor returns true if color output should be disabled, either explicitly
// or through the NO_COLOR convention.
func NoColor(explicit bool) bool {
	if explicit {
		return true
	}
	return os.Getenv("NO_COLOR") != ""
}

// Palette is the small set of colors shared by every widget.
type Palette struct {
	Primary lipgloss.AdaptiveColor
	Focus   lipgloss.AdaptiveColor
	Success lipgloss.AdaptiveColor
	Danger  lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Muted   lipgloss.AdaptiveColor
	Border  lipgloss.AdaptiveColor
	OnFill  lipgloss.AdaptiveColor
}

func DefaultPalette() Palette {
	return Palette{
		Primary: lipgloss.AdaptiveColor{Light: "#0172AD", Dark: "#01AAFF"},
		Focus:   lipgloss.AdaptiveColor{Light: "205", Dark: "213"},
		Success: lipgloss.AdaptiveColor{Light: "#2AA876", Dark: "#2AA876"},
		Danger:  lipgloss.AdaptiveColor{Light: "#D9534F", Dark: "#D9534F"},
		Warning: lipgloss.AdaptiveColor{Light: "#F0AD4E", Dark: "#F0AD4E"},
		Muted:   lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#8891AA"},
		Border:  lipgloss.AdaptiveColor{Light: "#CFD5E2", Dark: "#2A3140"},
		OnFill:  lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"},
	}
}

// Variant maps a widget variant name ("success", "danger", "warning",
// anything else) to a fill color.
func (p Palette) Variant(name string) lipgloss.AdaptiveColor {
	switch name {
	case "success":
		return p.Success
	case "danger", "error":
		return p.Danger
	case "warning":
		return p.Warning
	case "muted", "secondary":
		return p.Muted
	default:
		return p.Primary
	}
}
