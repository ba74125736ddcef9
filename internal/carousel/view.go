package carousel

import "fmt"

// Overlay texts.
const (
	DefaultCaption     = "Photo Gallery"
	PlaceholderMessage = "No images provided"
	AutoHint           = "Auto-rotating • Drag to control"
	TouchHint          = "Swipe to rotate"
)

// Cursor is the pointer affordance over the ring.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorGrab
	CursorGrabbing
)

// View is what a display surface needs besides the Layout.
type View struct {
	Placeholder bool
	Message     string

	Caption     string
	CountLabel  string
	ToggleLabel string

	Mode       Mode
	AutoRotate bool
	Dragging   bool

	Cursor         Cursor
	SuppressScroll bool

	ShowAutoHint  bool
	ShowTouchHint bool

	Breakpoint  Breakpoint
	Perspective float64
}

// Hint returns the hint line to show, or "".
func (v View) Hint() string {
	switch {
	case v.ShowAutoHint:
		return AutoHint
	case v.ShowTouchHint:
		return TouchHint
	default:
		return ""
	}
}

func countLabel(n int) string {
	if n == 1 {
		return "1 Photo"
	}
	return fmt.Sprintf("%d Photos", n)
}

func toggleLabel(autoRotate bool) string {
	if autoRotate {
		return "Pause"
	}
	return "Resume"
}
