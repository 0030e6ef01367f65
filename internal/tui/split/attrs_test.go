package split

import (
	"reflect"
	"testing"
)

func TestPositionAttribute(t *testing.T) {
	p := measuredPanel(t, 400, 10)
	cases := []struct {
		in   string
		want float64
	}{
		{"30", 30},
		{"12.5%", 12.5},
		{"abc", 50},
		{"0", 0},
		{"250", 100},
		{"", 50},
	}
	for _, c := range cases {
		p.SetAttribute(AttrPosition, c.in)
		if p.Position() != c.want {
			t.Fatalf("position=%q: expected %v, got %v", c.in, c.want, p.Position())
		}
	}
}

func TestPositionInPixelsAttribute(t *testing.T) {
	p := measuredPanel(t, 400, 10)
	p.SetAttribute(AttrPositionInPixels, "120px")
	if !approx(p.Position(), 30) {
		t.Fatalf("expected 30, got %v", p.Position())
	}
}

func TestSettingSameAttributeIsNoop(t *testing.T) {
	p := measuredPanel(t, 400, 10)
	p.SetAttribute(AttrPosition, "30")
	p.SetPosition(10)
	p.SetAttribute(AttrPosition, "30")
	if p.Position() != 10 {
		t.Fatalf("unchanged attribute should not rewrite position, got %v", p.Position())
	}
}

func TestEnumAttributesFallBack(t *testing.T) {
	p := New()
	p.SetAttribute(AttrOrientation, "diagonal")
	p.SetAttribute(AttrPrimary, "middle")
	p.SetAttribute(AttrDir, "sideways")
	if p.Orientation() != Horizontal || p.Primary() != PrimaryNone || p.Direction() != LTR {
		t.Fatalf("invalid values should fall back to defaults")
	}
	p.SetAttribute(AttrOrientation, "VERTICAL")
	p.SetAttribute(AttrPrimary, "end")
	p.SetAttribute(AttrDir, "rtl")
	if p.Orientation() != Vertical || p.Primary() != PrimaryEnd || p.Direction() != RTL {
		t.Fatalf("valid values not applied")
	}
	p.RemoveAttribute(AttrPrimary)
	if p.Primary() != PrimaryNone {
		t.Fatalf("removing primary should clear it")
	}
}

func TestDisabledIsPresence(t *testing.T) {
	p := New()
	p.SetAttribute(AttrDisabled, "")
	if !p.Disabled() {
		t.Fatalf("an empty disabled attribute still disables")
	}
	p.RemoveAttribute(AttrDisabled)
	if p.Disabled() {
		t.Fatalf("removing disabled should re-enable")
	}
}

func TestSnapThresholdAttribute(t *testing.T) {
	p := New()
	for in, want := range map[string]float64{"20": 20, "-": 12, "-5": 12, "4px": 4} {
		p.SetAttribute(AttrSnapThreshold, in)
		if p.SnapThreshold() != want {
			t.Fatalf("snap-threshold=%q: expected %v, got %v", in, want, p.SnapThreshold())
		}
	}
}

func TestLimitAttributes(t *testing.T) {
	p := New()
	p.SetAttribute(AttrMin, "20")
	p.SetAttribute(AttrMax, "10")
	if lo, hi := p.Limits(); lo != 20 || hi != 20 {
		t.Fatalf("max below min should be raised to min, got %v..%v", lo, hi)
	}
	p.RemoveAttribute(AttrMin)
	p.RemoveAttribute(AttrMax)
	if lo, hi := p.Limits(); lo != 0 || hi != 100 {
		t.Fatalf("removing limits should restore 0..100, got %v..%v", lo, hi)
	}
}

func TestUnknownAttributeIsKept(t *testing.T) {
	p := New()
	p.SetAttribute("color", "red")
	p.SetAttribute(AttrSnap, "25%")
	if v, ok := p.Attribute("color"); !ok || v != "red" {
		t.Fatalf("unknown attribute should still be stored")
	}
	if got := p.Attributes(); !reflect.DeepEqual(got, []string{"color", "snap"}) {
		t.Fatalf("unexpected attribute names %v", got)
	}
}

func TestParseSnap(t *testing.T) {
	got := ParseSnap(" 25% 100px 40 bogus 50%% 75% ")
	want := []SnapPoint{
		{25, SnapPercent},
		{100, SnapPixels},
		{40, SnapPixels},
		{75, SnapPercent},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if s := FormatSnap(got); s != "25% 100px 40px 75%" {
		t.Fatalf("unexpected format %q", s)
	}
	if ParseSnap("   ") != nil {
		t.Fatalf("blank snap list should parse to nil")
	}
}
