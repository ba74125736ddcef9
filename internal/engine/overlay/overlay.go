// Package overlay lays out the carousel's on-screen controls and answers hit tests.
package overlay

import "github.com/Faultbox/photo-carousel/internal/carousel"

// Color is an RGBA color with components in [0, 1].
type Color [4]float32

// Palette.
var (
	BackgroundFrom = Color{0x66 / 255.0, 0x7e / 255.0, 0xea / 255.0, 1}
	BackgroundTo   = Color{0x76 / 255.0, 0x4b / 255.0, 0xa2 / 255.0, 1}
	Gold           = Color{1, 0xd7 / 255.0, 0, 1}
	GoldLight      = Color{1, 0xed / 255.0, 0x4e / 255.0, 1}
	White          = Color{1, 1, 1, 1}
	Shadow         = Color{0, 0, 0, 0.3}
)

// Rect is an axis-aligned rectangle in window pixels, origin top-left.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Control identifies a clickable element.
type Control int

const (
	ControlNone Control = iota
	ControlToggle
	ControlReset
)

func (c Control) String() string {
	switch c {
	case ControlToggle:
		return "toggle"
	case ControlReset:
		return "reset"
	default:
		return "none"
	}
}

// Layout is the position of every overlay element for one window size.
type Layout struct {
	Toggle Rect
	Reset  Rect
	Badge  Rect
}

type metrics struct {
	inset       float64 // distance of the reset button from the top/right edges
	toggleRight float64 // distance of the toggle button from the right edge
	button      float64
	badgeBottom float64
	badgeW      float64
	badgeH      float64
}

func metricsFor(bp carousel.Breakpoint) metrics {
	switch bp {
	case carousel.BreakpointSmall:
		return metrics{inset: 15, toggleRight: 70, button: 45, badgeBottom: 15, badgeW: 90, badgeH: 30}
	case carousel.BreakpointMedium:
		return metrics{inset: 20, toggleRight: 100, button: 55, badgeBottom: 25, badgeW: 110, badgeH: 36}
	default:
		return metrics{inset: 30, toggleRight: 130, button: 70, badgeBottom: 40, badgeW: 130, badgeH: 44}
	}
}

// Compute places the controls for a window of width x height pixels.
func Compute(width, height int) Layout {
	w, h := float64(width), float64(height)
	m := metricsFor(carousel.BreakpointFor(width))

	return Layout{
		Reset:  Rect{X: w - m.inset - m.button, Y: m.inset, W: m.button, H: m.button},
		Toggle: Rect{X: w - m.toggleRight - m.button, Y: m.inset, W: m.button, H: m.button},
		Badge:  Rect{X: w - m.inset - m.badgeW, Y: h - m.badgeBottom - m.badgeH, W: m.badgeW, H: m.badgeH},
	}
}

// HitTest returns the control under (x, y).
func (l Layout) HitTest(x, y float64) Control {
	switch {
	case l.Toggle.Contains(x, y):
		return ControlToggle
	case l.Reset.Contains(x, y):
		return ControlReset
	default:
		return ControlNone
	}
}

// ToggleColor returns the toggle button fill: gold while auto-rotating,
// white while paused, one shade lighter when hovered.
func ToggleColor(autoRotate, hovered bool) Color {
	switch {
	case autoRotate && hovered:
		return GoldLight
	case autoRotate, hovered:
		return Gold
	default:
		return White
	}
}

// ResetColor returns the reset button fill.
func ResetColor(hovered bool) Color {
	if hovered {
		return Gold
	}
	return White
}
