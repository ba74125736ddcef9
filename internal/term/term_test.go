package term

import (
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/Faultbox/photo-carousel/internal/carousel"
	"github.com/Faultbox/photo-carousel/internal/engine/snapshot"
)

func newScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.SetSize(cols, rows)
	t.Cleanup(s.Fini)
	return s
}

func newTerminal(t *testing.T, n int) (*Terminal, *carousel.Carousel, tcell.SimulationScreen) {
	t.Helper()
	s := carousel.DefaultSettings()
	s.UseDriver = false
	s.InitialPose = carousel.Pose{}

	images := make([]string, n)
	photos := make([]*image.RGBA, n)
	for i := range images {
		images[i] = "photo.png"
		photos[i] = image.NewRGBA(image.Rect(0, 0, 8, 8))
		draw.Draw(photos[i], photos[i].Bounds(), image.NewUniform(color.RGBA{0xff, 0xd7, 0, 0xff}), image.Point{}, draw.Src)
	}
	c := carousel.New(images, "", carousel.WithSettings(s))
	t.Cleanup(c.Close)

	screen := newScreen(t, 100, 40)
	return New(screen, c, photos, nil), c, screen
}

func TestTerminalViewportInPixels(t *testing.T) {
	_, c, _ := newTerminal(t, 3)
	// 100 columns of 8 virtual pixels is a medium viewport.
	if bp := c.View().Breakpoint; bp != carousel.BreakpointMedium {
		t.Errorf("breakpoint = %v, want medium", bp)
	}
}

func TestTerminalMouseDrag(t *testing.T) {
	term, c, _ := newTerminal(t, 3)

	term.mouse(10, 10, tcell.Button1)
	if c.Mode() != carousel.ModeDragging {
		t.Fatalf("mode = %v, want dragging", c.Mode())
	}
	term.mouse(12, 11, tcell.Button1)
	// Two columns and one row: 16 px right, 16 px down.
	if got := c.Pose(); got != (carousel.Pose{Pitch: -8, Yaw: -8}) {
		t.Errorf("pose = %+v, want {-8 -8}", got)
	}

	term.mouse(12, 11, tcell.ButtonNone)
	if c.Mode() != carousel.ModeAuto {
		t.Errorf("mode after release = %v, want auto", c.Mode())
	}

	// Motion without a button only hovers.
	term.mouse(20, 20, tcell.ButtonNone)
	if got := c.Pose(); got != (carousel.Pose{Pitch: -8, Yaw: -8}) {
		t.Errorf("hover moved the pose to %+v", got)
	}
}

func TestTerminalFocusLossEndsDrag(t *testing.T) {
	term, c, _ := newTerminal(t, 3)

	term.mouse(10, 10, tcell.Button1)
	term.release()
	if c.Mode() == carousel.ModeDragging {
		t.Error("losing focus should end the drag")
	}
	// The next press starts a fresh drag.
	term.mouse(10, 10, tcell.Button1)
	if c.Mode() != carousel.ModeDragging {
		t.Error("press after focus loss should drag again")
	}
}

func TestTerminalKeys(t *testing.T) {
	term, c, _ := newTerminal(t, 3)

	if !term.key(tcell.KeyRune, ' ') || c.View().AutoRotate {
		t.Error("space should pause auto-rotation")
	}
	term.mouse(1, 1, tcell.Button1)
	term.mouse(3, 1, tcell.Button1)
	term.mouse(3, 1, tcell.ButtonNone)
	if !term.key(tcell.KeyRune, 'r') || c.Pose() != (carousel.Pose{}) {
		t.Errorf("r should reset the view, pose %+v", c.Pose())
	}
	if term.key(tcell.KeyRune, 'q') {
		t.Error("q should quit")
	}
	if term.key(tcell.KeyEscape, 0) {
		t.Error("escape should quit")
	}
}

func rowText(s tcell.SimulationScreen, row, cols int) string {
	var b strings.Builder
	for col := 0; col < cols; col++ {
		r, _, _, _ := s.GetContent(col, row)
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func TestTerminalDraw(t *testing.T) {
	term, _, screen := newTerminal(t, 5)
	term.Draw()

	if r, _, _, _ := screen.GetContent(50, 10); r != '▀' {
		t.Errorf("ring cell = %q, want half block", r)
	}
	status := rowText(screen, 39, 100)
	if !strings.HasPrefix(status, "Photo Gallery | 5 Photos") {
		t.Errorf("status line = %q", status)
	}
	if !strings.Contains(status, "space: Pause") {
		t.Errorf("status line %q should offer Pause", status)
	}
}

func TestTerminalDrawPlaceholder(t *testing.T) {
	term, _, screen := newTerminal(t, 0)
	term.Draw()

	if status := rowText(screen, 39, 100); status != carousel.PlaceholderMessage {
		t.Errorf("status line = %q, want %q", status, carousel.PlaceholderMessage)
	}
}

func TestTerminalResize(t *testing.T) {
	term, c, screen := newTerminal(t, 3)

	screen.SetSize(140, 40)
	term.Resize()
	if bp := c.View().Breakpoint; bp != carousel.BreakpointLarge {
		t.Errorf("breakpoint after resize = %v, want large", bp)
	}
	if term.canvas.W != 140 || term.canvas.H != 78 {
		t.Errorf("canvas = %dx%d, want 140x78", term.canvas.W, term.canvas.H)
	}
}

func TestTerminalSnapshotKey(t *testing.T) {
	term, c, _ := newTerminal(t, 3)
	dir := t.TempDir()
	term.SetSnapshot(snapshot.New(dir, "term"))
	term.Draw()

	if !term.key(tcell.KeyRune, 's') {
		t.Fatal("s should not quit")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || !strings.HasSuffix(entries[0].Name(), ".png") {
		t.Errorf("snapshot dir = %v, want one PNG", entries)
	}
	if !c.View().AutoRotate {
		t.Error("snapshot must not toggle auto-rotation")
	}
}
