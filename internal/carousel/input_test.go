package carousel

import "testing"

func TestInputTrackerDeltas(t *testing.T) {
	var tr InputTracker

	if _, _, ok := tr.Move(MouseSample{X: 10, Y: 10}); ok {
		t.Fatal("Move without capture should be ignored")
	}

	tr.Begin(MouseSample{X: 100, Y: 100})
	moves := []struct {
		x, y   float64
		dx, dy float64
	}{
		{150, 100, 50, 0},
		{150, 140, 0, 40},
		{149, 141, -1, 1},
		{149, 141, 0, 0},
	}
	for _, m := range moves {
		dx, dy, ok := tr.Move(MouseSample{X: m.x, Y: m.y})
		if !ok || dx != m.dx || dy != m.dy {
			t.Errorf("Move(%v, %v) = (%v, %v, %v), want (%v, %v, true)", m.x, m.y, dx, dy, ok, m.dx, m.dy)
		}
	}
}

func TestInputTrackerNoDrift(t *testing.T) {
	var tr InputTracker
	tr.Begin(MouseSample{X: 0, Y: 0})

	var sumX, sumY float64
	for i := 1; i <= 1000; i++ {
		dx, dy, _ := tr.Move(MouseSample{X: float64(i) * 0.7, Y: float64(-i) * 0.3})
		sumX += dx
		sumY += dy
	}
	if d := sumX - 700; d > 1e-9 || d < -1e-9 {
		t.Errorf("sum of dx = %v, want 700", sumX)
	}
	if d := sumY + 300; d > 1e-9 || d < -1e-9 {
		t.Errorf("sum of dy = %v, want -300", sumY)
	}
}

func TestInputTrackerFirstTouchOnly(t *testing.T) {
	var tr InputTracker

	if !tr.Begin(TouchSample{Finger: 1, X: 10, Y: 10}) {
		t.Fatal("first finger should be captured")
	}
	if tr.Begin(TouchSample{Finger: 2, X: 50, Y: 50}) {
		t.Error("second finger should be ignored")
	}
	if _, _, ok := tr.Move(TouchSample{Finger: 2, X: 60, Y: 60}); ok {
		t.Error("moves of the second finger should be ignored")
	}
	if tr.Release(TouchSample{Finger: 2}) {
		t.Error("lifting the second finger should not end the drag")
	}
	if _, _, ok := tr.Move(MouseSample{X: 0, Y: 0}); ok {
		t.Error("mouse moves should not drive a touch drag")
	}

	dx, dy, ok := tr.Move(TouchSample{Finger: 1, X: 15, Y: 5})
	if !ok || dx != 5 || dy != -5 {
		t.Errorf("first finger move = (%v, %v, %v), want (5, -5, true)", dx, dy, ok)
	}
	if !tr.Release(TouchSample{Finger: 1}) {
		t.Error("lifting the first finger should end the drag")
	}
	if _, _, ok := tr.Move(TouchSample{Finger: 1, X: 20, Y: 5}); ok {
		t.Error("tracker should be idle after release")
	}
}

func TestInputTrackerReset(t *testing.T) {
	var tr InputTracker
	tr.Begin(MouseSample{})
	tr.Reset()
	if _, _, ok := tr.Move(MouseSample{X: 5}); ok {
		t.Error("Reset should drop the capture")
	}
	if !tr.Begin(TouchSample{Finger: 3}) {
		t.Error("Begin after Reset should capture")
	}
}
