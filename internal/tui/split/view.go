package split

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"pico-x/internal/tui/util"
)

// Renderer draws slot content into a width x height box.
type Renderer interface {
	Render(width, height int) string
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(width, height int) string

func (f RenderFunc) Render(width, height int) string { return f(width, height) }

// Slots are the three insertion points. A nil Divider draws the default rule.
type Slots struct {
	Start   Renderer
	Divider Renderer
	End     Renderer
}

func (p *Panel) SetSlots(s Slots) { p.slots = s }

// View renders the current layout. An unmeasured panel renders nothing.
func (p *Panel) View() string {
	if !p.size.ok || p.width <= 0 || p.height <= 0 {
		return ""
	}
	l := p.layout
	parts := make([]string, 0, 3)
	for i, t := range l.Tracks {
		if t.Cells > 0 {
			w, h := p.box(t.Cells)
			parts = append(parts, fit(p.renderRegion(t.Region, w, h), w, h))
		}
		if i == 0 && l.DividerWidth > 0 {
			w, h := p.box(l.DividerWidth)
			parts = append(parts, p.renderDivider(w, h))
		}
	}
	if p.orientation == Vertical {
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// box converts a main-axis cell count into a width/height pair.
func (p *Panel) box(cells int) (int, int) {
	if p.orientation == Vertical {
		return p.width, cells
	}
	return cells, p.height
}

func (p *Panel) renderRegion(r Region, w, h int) string {
	slot := p.slots.Start
	if r == RegionEnd {
		slot = p.slots.End
	}
	if slot == nil {
		return ""
	}
	return slot.Render(w, h)
}

func (p *Panel) renderDivider(w, h int) string {
	if p.slots.Divider != nil {
		return fit(p.slots.Divider.Render(w, h), w, h)
	}
	glyph := "│"
	if p.orientation == Vertical {
		glyph = "─"
	}
	if p.Dragging() {
		glyph = "┃"
		if p.orientation == Vertical {
			glyph = "━"
		}
	}
	rows := make([]string, h)
	for i := range rows {
		rows[i] = strings.Repeat(glyph, w)
	}
	body := strings.Join(rows, "\n")
	if util.NoColor(p.noColor) {
		return body
	}
	pal := util.DefaultPalette()
	st := lipgloss.NewStyle().Foreground(pal.Border)
	switch {
	case p.disabled:
		st = st.Faint(true)
	case p.Dragging(), p.focused:
		st = st.Foreground(pal.Focus).Bold(true)
	}
	return st.Render(body)
}

// fit clips or pads s to exactly w x h cells.
func fit(s string, w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	for i, ln := range lines {
		ln = ansi.Truncate(ln, w, "")
		if pad := w - ansi.StringWidth(ln); pad > 0 {
			ln += strings.Repeat(" ", pad)
		}
		lines[i] = ln
	}
	return strings.Join(lines, "\n")
}
