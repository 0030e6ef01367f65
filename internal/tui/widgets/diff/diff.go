// Package diff renders the difference between two texts with line and
// character highlights.
package diff

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	dmp "github.com/sergi/go-diff/diffmatchpatch"

	"pico-x/internal/tui/state"
)

var (
	delLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
	addLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
	delChar = delLine.Underline(true)
	addChar = addLine.Underline(true)
	faint   = lipgloss.NewStyle().Faint(true)
	header  = lipgloss.NewStyle().Bold(true)
)

const sep = " │ "

// Stats counts inserted and deleted runes between two texts.
type Stats struct {
	Inserted, Deleted int
}

func (s Stats) Changed() bool { return s.Inserted > 0 || s.Deleted > 0 }

// Compute diffs before against after at character level.
func Compute(before, after string) Stats {
	d := dmp.New()
	diffs := d.DiffMain(before, after, false)
	var st Stats
	for _, df := range diffs {
		switch df.Type {
		case dmp.DiffInsert:
			st.Inserted += len([]rune(df.Text))
		case dmp.DiffDelete:
			st.Deleted += len([]rune(df.Text))
		}
	}
	return st
}

type DiffView struct {
	NoColor bool
}

func NewDiffView() DiffView { return DiffView{} }

// View renders before against after, unified or side by side per s.View.
func (v DiffView) View(s state.UIState, before, after string) string {
	if before == after {
		return "No changes\n"
	}
	if s.View == state.SideBySide {
		return v.sideBySide(s, before, after)
	}
	return v.unified(before, after)
}

func (v DiffView) paint(st lipgloss.Style, s string) string {
	if v.NoColor {
		return s
	}
	return st.Render(s)
}

// spans diffs one line pair and returns both sides with changed runs marked.
// Without color, changed runs are bracketed: [-gone-] and {+new+}.
func (v DiffView) spans(bl, al string) (left, right string) {
	d := dmp.New()
	diffs := d.DiffMain(bl, al, false)
	d.DiffCleanupSemantic(diffs)
	var lb, rb strings.Builder
	for _, df := range diffs {
		switch df.Type {
		case dmp.DiffDelete:
			if v.NoColor {
				lb.WriteString("[-" + df.Text + "-]")
			} else {
				lb.WriteString(delChar.Render(df.Text))
			}
		case dmp.DiffInsert:
			if v.NoColor {
				rb.WriteString("{+" + df.Text + "+}")
			} else {
				rb.WriteString(addChar.Render(df.Text))
			}
		case dmp.DiffEqual:
			lb.WriteString(v.paint(delLine, df.Text))
			rb.WriteString(v.paint(addLine, df.Text))
		}
	}
	return lb.String(), rb.String()
}

func (v DiffView) unified(before, after string) string {
	bLines := strings.Split(before, "\n")
	aLines := strings.Split(after, "\n")
	var b strings.Builder
	b.WriteString(v.paint(header, "BEFORE vs AFTER (Unified)") + "\n")

	// Line counts differ: show both blocks whole.
	if len(bLines) != len(aLines) {
		for _, l := range bLines {
			b.WriteString(v.paint(delLine, "- ") + l + "\n")
		}
		for _, l := range aLines {
			b.WriteString(v.paint(addLine, "+ ") + l + "\n")
		}
		return b.String()
	}
	for i := range bLines {
		bl, al := bLines[i], aLines[i]
		if bl == al {
			b.WriteString("  " + v.paint(faint, bl) + "\n")
			continue
		}
		l, r := v.spans(bl, al)
		b.WriteString(v.paint(delLine, "- ") + l + "\n")
		b.WriteString(v.paint(addLine, "+ ") + r + "\n")
	}
	return b.String()
}

func (v DiffView) sideBySide(s state.UIState, before, after string) string {
	left := strings.Split(before, "\n")
	right := strings.Split(after, "\n")
	n := len(left)
	if len(right) > n {
		n = len(right)
	}
	colWidth := 40
	if s.Width > 0 {
		colWidth = (s.Width - len([]rune(sep))) / 2
		if colWidth < 10 {
			colWidth = 10
		}
	}

	var b strings.Builder
	b.WriteString(pad(v.paint(header, "BEFORE"), colWidth) + sep + v.paint(header, "AFTER") + "\n")
	for i := 0; i < n; i++ {
		var bl, al string
		if i < len(left) {
			bl = left[i]
		}
		if i < len(right) {
			al = right[i]
		}
		var l, r string
		if bl == al {
			l, r = v.paint(faint, bl), v.paint(faint, al)
		} else {
			l, r = v.spans(bl, al)
		}
		if !s.Wrap {
			l = ansi.Truncate(l, colWidth, "…")
			r = ansi.Truncate(r, colWidth, "…")
		}
		b.WriteString(pad(l, colWidth) + sep + r + "\n")
	}
	return b.String()
}

func pad(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
