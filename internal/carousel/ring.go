package carousel

import gomath "math"

// Breakpoint is a viewport size class.
type Breakpoint int

const (
	BreakpointSmall Breakpoint = iota
	BreakpointMedium
	BreakpointLarge
)

// Viewport width thresholds in pixels.
const (
	smallMaxWidth  = 600
	mediumMaxWidth = 900
)

// BreakpointFor classifies a viewport width.
func BreakpointFor(width int) Breakpoint {
	switch {
	case width < smallMaxWidth:
		return BreakpointSmall
	case width < mediumMaxWidth:
		return BreakpointMedium
	default:
		return BreakpointLarge
	}
}

// PanelSize returns the panel edge length in pixels for this breakpoint.
func (b Breakpoint) PanelSize() float64 {
	switch b {
	case BreakpointSmall:
		return 200
	case BreakpointMedium:
		return 280
	default:
		return 480
	}
}

// Perspective returns the viewer distance in pixels for this breakpoint.
func (b Breakpoint) Perspective() float64 {
	switch b {
	case BreakpointSmall:
		return 700
	case BreakpointMedium:
		return 1000
	default:
		return 1400
	}
}

// Mobile reports whether the breakpoint uses the touch-oriented layout.
func (b Breakpoint) Mobile() bool {
	return b != BreakpointLarge
}

func (b Breakpoint) String() string {
	switch b {
	case BreakpointSmall:
		return "small"
	case BreakpointMedium:
		return "medium"
	default:
		return "large"
	}
}

// Ring is the derived geometry of N panels arranged as a closed drum.
type Ring struct {
	PanelCount     int
	PanelSize      float64
	AngleIncrement float64 // degrees between adjacent panels
	Radius         float64 // distance from ring axis to each panel's plane
}

// NewRing builds the ring for panelCount panels of width panelSize.
// It returns false when panelCount < 1.
//
// The radius is that of the regular polygon whose sides are the panels, so
// adjacent panel edges meet exactly. A single panel has no neighbour to meet
// and sits flat at the ring center.
func NewRing(panelCount int, panelSize float64) (Ring, bool) {
	if panelCount < 1 {
		return Ring{}, false
	}

	inc := 360 / float64(panelCount)
	r := Ring{
		PanelCount:     panelCount,
		PanelSize:      panelSize,
		AngleIncrement: inc,
	}
	if panelCount > 1 {
		r.Radius = panelSize / 2 / gomath.Tan(gomath.Pi/180*(inc/2))
	}
	return r, true
}
