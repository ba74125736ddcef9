package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/photo-carousel/internal/carousel"
)

func TestTranslateMouse(t *testing.T) {
	in := New(800, 600)

	e, ok := in.Translate(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT, X: 10, Y: 20})
	if !ok || e.Type != EventPress {
		t.Fatalf("left down = %+v, %v; want press", e, ok)
	}
	if e.Sample != (carousel.MouseSample{X: 10, Y: 20}) {
		t.Errorf("sample = %+v", e.Sample)
	}

	e, ok = in.Translate(&sdl.MouseMotionEvent{X: 15, Y: 25})
	if !ok || e.Type != EventMove {
		t.Fatalf("motion = %+v, %v; want move", e, ok)
	}
	if x, y := e.Position(); x != 15 || y != 25 {
		t.Errorf("Position = (%v, %v), want (15, 25)", x, y)
	}

	if _, ok := in.Translate(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_RIGHT}); ok {
		t.Error("right button should be ignored")
	}
}

func TestTranslateIgnoresSyntheticMouse(t *testing.T) {
	in := New(800, 600)
	if _, ok := in.Translate(&sdl.MouseMotionEvent{Which: sdl.TOUCH_MOUSEID, X: 1, Y: 1}); ok {
		t.Error("touch-generated motion should be ignored")
	}
	if _, ok := in.Translate(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Which: sdl.TOUCH_MOUSEID, Button: sdl.BUTTON_LEFT}); ok {
		t.Error("touch-generated button should be ignored")
	}
}

func TestTranslateFingerScalesToWindow(t *testing.T) {
	in := New(800, 600)

	e, ok := in.Translate(&sdl.TouchFingerEvent{Type: sdl.FINGERDOWN, FingerID: 3, X: 0.5, Y: 0.25})
	if !ok || e.Type != EventPress {
		t.Fatalf("finger down = %+v, %v; want press", e, ok)
	}
	want := carousel.TouchSample{Finger: 3, X: 400, Y: 150}
	if e.Sample != want {
		t.Errorf("sample = %+v, want %+v", e.Sample, want)
	}

	in.SetSize(400, 400)
	e, _ = in.Translate(&sdl.TouchFingerEvent{Type: sdl.FINGERUP, FingerID: 3, X: 0.5, Y: 0.5})
	if e.Type != EventRelease || e.Sample != (carousel.TouchSample{Finger: 3, X: 200, Y: 200}) {
		t.Errorf("finger up after resize = %+v", e)
	}
}

func TestTranslateWindow(t *testing.T) {
	in := New(800, 600)

	e, ok := in.Translate(&sdl.WindowEvent{Event: sdl.WINDOWEVENT_SIZE_CHANGED, Data1: 1024, Data2: 768})
	if !ok || e.Type != EventWindowResize || e.Width != 1024 || e.Height != 768 {
		t.Errorf("resize = %+v, %v", e, ok)
	}

	windowEvents := []struct {
		event uint8
		want  EventType
	}{
		{sdl.WINDOWEVENT_LEAVE, EventLeave},
		{sdl.WINDOWEVENT_FOCUS_LOST, EventFocusLost},
		{sdl.WINDOWEVENT_FOCUS_GAINED, EventFocusGained},
	}
	for _, tt := range windowEvents {
		e, ok := in.Translate(&sdl.WindowEvent{Event: tt.event})
		if !ok || e.Type != tt.want {
			t.Errorf("window event %d = %+v, want type %d", tt.event, e, tt.want)
		}
	}

	if _, ok := in.Translate(&sdl.WindowEvent{Event: sdl.WINDOWEVENT_MOVED}); ok {
		t.Error("move should be ignored")
	}
}

func TestTranslateKeys(t *testing.T) {
	in := New(800, 600)

	e, ok := in.Translate(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_SPACE}})
	if !ok || e.Type != EventKeyDown || e.Key != sdl.K_SPACE {
		t.Errorf("space = %+v, %v", e, ok)
	}
	if _, ok := in.Translate(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Sym: sdl.K_SPACE}}); ok {
		t.Error("key repeat should be ignored")
	}
	if _, ok := in.Translate(&sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Sym: sdl.K_SPACE}}); ok {
		t.Error("key up should be ignored")
	}
}

func TestQuitEvent(t *testing.T) {
	in := New(800, 600)
	e, ok := in.Translate(&sdl.QuitEvent{})
	if !ok || e.Type != EventQuit {
		t.Errorf("quit = %+v, %v", e, ok)
	}
}
