package carousel

// Mode is the current owner of the rotation.
type Mode int

const (
	ModeAuto Mode = iota
	ModeManualIdle
	ModeDragging
)

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeManualIdle:
		return "manual-idle"
	case ModeDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// ModeController arbitrates between the auto-rotate tick and manual drag.
// The zero value is MANUAL_IDLE.
type ModeController struct {
	autoRotate bool
	dragging   bool
}

// NewModeController creates a controller with auto-rotation on or off.
func NewModeController(autoRotate bool) *ModeController {
	return &ModeController{autoRotate: autoRotate}
}

// Mode returns the current state.
func (m *ModeController) Mode() Mode {
	switch {
	case m.dragging:
		return ModeDragging
	case m.autoRotate:
		return ModeAuto
	default:
		return ModeManualIdle
	}
}

// AutoRotateEnabled reports the user toggle, independent of dragging.
func (m *ModeController) AutoRotateEnabled() bool {
	return m.autoRotate
}

// Dragging reports whether a pointer is captured.
func (m *ModeController) Dragging() bool {
	return m.dragging
}

// AutoAdvance reports whether the auto-rotate tick may mutate the pose.
func (m *ModeController) AutoAdvance() bool {
	return m.autoRotate && !m.dragging
}

// PressStart enters DRAGGING. It returns false if a drag was already active.
func (m *ModeController) PressStart() bool {
	if m.dragging {
		return false
	}
	m.dragging = true
	return true
}

// PressEnd leaves DRAGGING. It returns false if no drag was active.
func (m *ModeController) PressEnd() bool {
	if !m.dragging {
		return false
	}
	m.dragging = false
	return true
}

// ToggleAutoRotate flips the auto-rotate flag and returns the new value.
// While dragging, the flag flips but DRAGGING keeps precedence until release.
func (m *ModeController) ToggleAutoRotate() bool {
	m.autoRotate = !m.autoRotate
	return m.autoRotate
}
