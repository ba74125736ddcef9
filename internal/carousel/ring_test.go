package carousel

import (
	gomath "math"
	"testing"
)

func TestBreakpointFor(t *testing.T) {
	tests := []struct {
		width       int
		want        Breakpoint
		panel       float64
		perspective float64
		mobile      bool
	}{
		{320, BreakpointSmall, 200, 700, true},
		{599, BreakpointSmall, 200, 700, true},
		{600, BreakpointMedium, 280, 1000, true},
		{899, BreakpointMedium, 280, 1000, true},
		{900, BreakpointLarge, 480, 1400, false},
		{1920, BreakpointLarge, 480, 1400, false},
	}

	for _, tt := range tests {
		bp := BreakpointFor(tt.width)
		if bp != tt.want {
			t.Errorf("BreakpointFor(%d) = %v, want %v", tt.width, bp, tt.want)
			continue
		}
		if bp.PanelSize() != tt.panel {
			t.Errorf("%v.PanelSize() = %v, want %v", bp, bp.PanelSize(), tt.panel)
		}
		if bp.Perspective() != tt.perspective {
			t.Errorf("%v.Perspective() = %v, want %v", bp, bp.Perspective(), tt.perspective)
		}
		if bp.Mobile() != tt.mobile {
			t.Errorf("%v.Mobile() = %v, want %v", bp, bp.Mobile(), tt.mobile)
		}
	}
}

func TestNewRingEmpty(t *testing.T) {
	if _, ok := NewRing(0, 480); ok {
		t.Error("NewRing(0) should report no ring")
	}
	if _, ok := NewRing(-1, 480); ok {
		t.Error("NewRing(-1) should report no ring")
	}
}

func TestNewRingAngleIncrement(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 13, 360} {
		r, ok := NewRing(n, 480)
		if !ok {
			t.Fatalf("NewRing(%d) failed", n)
		}
		if want := 360 / float64(n); r.AngleIncrement != want {
			t.Errorf("NewRing(%d).AngleIncrement = %v, want %v", n, r.AngleIncrement, want)
		}
		if gomath.IsNaN(r.Radius) || gomath.IsInf(r.Radius, 0) || r.Radius < 0 {
			t.Errorf("NewRing(%d).Radius = %v, want finite non-negative", n, r.Radius)
		}
	}
}

func TestNewRingRadius(t *testing.T) {
	// Values the page used, rounded to whole pixels.
	tests := []struct {
		n       int
		size    float64
		rounded float64
	}{
		{3, 480, 139},
		{4, 480, 240},
		{5, 480, 330},
		{13, 480, 974},
		{13, 200, 406},
	}

	for _, tt := range tests {
		r, _ := NewRing(tt.n, tt.size)
		if got := gomath.Round(r.Radius); got != tt.rounded {
			t.Errorf("NewRing(%d, %v) rounded radius = %v, want %v (radius %v)",
				tt.n, tt.size, got, tt.rounded, r.Radius)
		}
	}
}

func TestNewRingSinglePanel(t *testing.T) {
	r, ok := NewRing(1, 480)
	if !ok {
		t.Fatal("NewRing(1) failed")
	}
	if r.Radius != 0 {
		t.Errorf("single panel radius = %v, want 0", r.Radius)
	}
	if r.AngleIncrement != 360 {
		t.Errorf("single panel increment = %v, want 360", r.AngleIncrement)
	}
}
