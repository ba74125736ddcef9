// Package input converts SDL2 events into carousel pointer events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/photo-carousel/internal/carousel"
)

// EventType classifies an Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventPress   // pointer or finger down
	EventMove    // pointer or finger motion
	EventRelease // pointer or finger up
	EventLeave   // pointer left the window
	EventFocusLost
	EventFocusGained
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Keycode
	Width  int
	Height int

	// Sample is set for press, move and release events.
	Sample carousel.PointerSample
}

// Position returns the sample position, or (0, 0) without a sample.
func (e Event) Position() (x, y float64) {
	if e.Sample == nil {
		return 0, 0
	}
	return e.Sample.Position()
}

// Input handles all input processing.
type Input struct {
	events        []Event
	width, height int // window size for normalized finger coordinates
}

// New creates a new input handler for a window of width x height.
func New(width, height int) *Input {
	return &Input{
		events: make([]Event, 0, 16),
		width:  width,
		height: height,
	}
}

// SetSize updates the window size used to scale finger positions.
func (i *Input) SetSize(width, height int) {
	i.width, i.height = width, height
}

// Update polls SDL events and converts them.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		e, ok := i.Translate(event)
		if !ok {
			continue
		}
		if e.Type == EventWindowResize {
			i.SetSize(e.Width, e.Height)
		}
		i.events = append(i.events, e)
		if e.Type == EventQuit {
			return true
		}
	}

	return false
}

// Translate converts one SDL event. ok is false for events the carousel ignores.
func (i *Input) Translate(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_SIZE_CHANGED, sdl.WINDOWEVENT_RESIZED:
			return Event{Type: EventWindowResize, Width: int(e.Data1), Height: int(e.Data2)}, true
		case sdl.WINDOWEVENT_LEAVE:
			return Event{Type: EventLeave}, true
		case sdl.WINDOWEVENT_FOCUS_LOST:
			return Event{Type: EventFocusLost}, true
		case sdl.WINDOWEVENT_FOCUS_GAINED:
			return Event{Type: EventFocusGained}, true
		}

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
			return Event{Type: EventKeyDown, Key: e.Keysym.Sym}, true
		}

	case *sdl.MouseMotionEvent:
		// SDL mirrors touches as mouse events; the finger events carry them.
		if e.Which == sdl.TOUCH_MOUSEID {
			return Event{}, false
		}
		return Event{Type: EventMove, Sample: carousel.MouseSample{X: float64(e.X), Y: float64(e.Y)}}, true

	case *sdl.MouseButtonEvent:
		if e.Which == sdl.TOUCH_MOUSEID || e.Button != sdl.BUTTON_LEFT {
			return Event{}, false
		}
		sample := carousel.MouseSample{X: float64(e.X), Y: float64(e.Y)}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			return Event{Type: EventPress, Sample: sample}, true
		}
		return Event{Type: EventRelease, Sample: sample}, true

	case *sdl.TouchFingerEvent:
		sample := carousel.TouchSample{
			Finger: int64(e.FingerID),
			X:      float64(e.X) * float64(i.width),
			Y:      float64(e.Y) * float64(i.height),
		}
		switch e.Type {
		case sdl.FINGERDOWN:
			return Event{Type: EventPress, Sample: sample}, true
		case sdl.FINGERMOTION:
			return Event{Type: EventMove, Sample: sample}, true
		case sdl.FINGERUP:
			return Event{Type: EventRelease, Sample: sample}, true
		}
	}

	return Event{}, false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(key sdl.Keycode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == key {
			return true
		}
	}
	return false
}
