package carousel

// PointerSample is one position reported by a pointer or touch source.
type PointerSample interface {
	Position() (x, y float64)
}

// MouseSample is a mouse/pen pointer position.
type MouseSample struct {
	X, Y float64
}

// Position implements PointerSample.
func (s MouseSample) Position() (float64, float64) { return s.X, s.Y }

// TouchSample is one finger's position.
type TouchSample struct {
	Finger int64
	X, Y   float64
}

// Position implements PointerSample.
func (s TouchSample) Position() (float64, float64) { return s.X, s.Y }

// DefaultSensitivity is the drag sensitivity in degrees per pixel.
const DefaultSensitivity = 0.5

// InputTracker turns pointer samples into incremental deltas.
// Only the pointer that started the drag is followed; for touch that is the
// first finger down.
type InputTracker struct {
	lastX, lastY float64
	active       bool
	touch        bool
	finger       int64
}

// Begin captures s. It returns false if another pointer is already captured.
func (t *InputTracker) Begin(s PointerSample) bool {
	if t.active {
		return false
	}
	t.lastX, t.lastY = s.Position()
	t.active = true
	t.touch, t.finger = false, 0
	if ts, ok := s.(TouchSample); ok {
		t.touch, t.finger = true, ts.Finger
	}
	return true
}

// Move returns the delta from the previous sample of the captured pointer.
// ok is false when nothing is captured or s belongs to another pointer.
func (t *InputTracker) Move(s PointerSample) (dx, dy float64, ok bool) {
	if !t.owns(s) {
		return 0, 0, false
	}
	x, y := s.Position()
	dx, dy = x-t.lastX, y-t.lastY
	t.lastX, t.lastY = x, y
	return dx, dy, true
}

// Release ends the capture if s is the captured pointer.
func (t *InputTracker) Release(s PointerSample) bool {
	if !t.owns(s) {
		return false
	}
	t.active = false
	return true
}

// Reset drops any capture unconditionally.
func (t *InputTracker) Reset() {
	t.active = false
}

func (t *InputTracker) owns(s PointerSample) bool {
	if !t.active {
		return false
	}
	switch v := s.(type) {
	case TouchSample:
		return t.touch && v.Finger == t.finger
	default:
		return !t.touch
	}
}
