// Package term renders the carousel in a terminal with tcell.
package term

import (
	"context"
	"image"
	"image/color"
	gomath "math"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/photo-carousel/internal/carousel"
	"github.com/Faultbox/photo-carousel/internal/control"
	"github.com/Faultbox/photo-carousel/internal/engine/camera"
	"github.com/Faultbox/photo-carousel/internal/engine/overlay"
	"github.com/Faultbox/photo-carousel/internal/engine/snapshot"
)

// A terminal cell stands for CellWidth x CellHeight virtual pixels, so drag
// sensitivity and breakpoints keep their pixel meaning.
const (
	CellWidth  = 8
	CellHeight = 16

	// PhotoSize is the edge of the photo images sampled per panel.
	PhotoSize = 96
)

var (
	bgFrom = rgba(overlay.BackgroundFrom)
	bgTo   = rgba(overlay.BackgroundTo)
)

// Terminal draws one carousel onto a tcell screen.
type Terminal struct {
	screen   tcell.Screen
	carousel *carousel.Carousel
	control  *control.Controller
	camera   *camera.PerspectiveCamera
	log      *zap.Logger

	photos []*image.RGBA
	canvas *Canvas
	shots  *snapshot.Capture

	cols, rows int
	buttons    tcell.ButtonMask
}

// New binds a carousel to an initialized screen. photos[i] is drawn on panel i.
func New(screen tcell.Screen, c *carousel.Carousel, photos []*image.RGBA, log *zap.Logger) *Terminal {
	if log == nil {
		log = zap.NewNop()
	}
	t := &Terminal{
		screen:   screen,
		carousel: c,
		log:      log,
		photos:   photos,
		canvas:   NewCanvas(0, 0),
	}
	cols, rows := screen.Size()
	t.control = control.New(c, cols*CellWidth, rows*CellHeight,
		control.WithoutButtons(),
		control.WithLogger(log),
	)
	t.camera = camera.NewPerspectiveCamera(cols*CellWidth, rows*CellHeight, c.View().Perspective)
	t.Resize()
	return t
}

// SetSnapshot enables the s key, which saves the ring canvas as a PNG.
func (t *Terminal) SetSnapshot(c *snapshot.Capture) {
	t.shots = c
}

// Resize follows the screen size.
func (t *Terminal) Resize() {
	t.cols, t.rows = t.screen.Size()
	w, h := t.cols*CellWidth, t.rows*CellHeight
	t.control.Resize(w, h)
	t.camera.Resize(w, h-CellHeight)
	t.camera.SetDistance(t.carousel.View().Perspective)
	// Two canvas pixels per cell vertically; the last row is the status line.
	t.canvas.Resize(t.cols, 2*(t.rows-1))
}

// HandleEvent applies one tcell event. It returns false when the user quits.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.key(ev.Key(), ev.Rune())

	case *tcell.EventMouse:
		x, y := ev.Position()
		t.mouse(x, y, ev.Buttons())

	case *tcell.EventFocus:
		if !ev.Focused {
			t.release()
		}

	case *tcell.EventResize:
		t.Resize()
		t.screen.Sync()
	}
	return true
}

func (t *Terminal) key(k tcell.Key, r rune) bool {
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyHome:
		return t.control.Do(control.ActionReset)
	case tcell.KeyRune:
		if r == 's' && t.shots != nil {
			t.screenshot()
			return true
		}
		return t.control.Do(control.ActionForKey(r))
	}
	return true
}

func (t *Terminal) screenshot() {
	name, err := t.shots.SaveImage(t.canvas.Image())
	if err != nil {
		t.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	t.log.Info("screenshot saved", zap.String("path", name))
}

// mouse turns tcell's button state into press, move and release edges.
func (t *Terminal) mouse(col, row int, buttons tcell.ButtonMask) {
	s := carousel.MouseSample{
		X: (float64(col) + 0.5) * CellWidth,
		Y: (float64(row) + 0.5) * CellHeight,
	}
	down := buttons&tcell.Button1 != 0
	was := t.buttons&tcell.Button1 != 0
	t.buttons = buttons

	switch {
	case down && !was:
		t.control.Press(s)
	case !down && was:
		t.control.Release(s)
	default:
		t.control.Move(s)
	}
}

func (t *Terminal) release() {
	t.buttons = 0
	t.control.Leave()
}

// Draw renders the ring and the status line and shows the screen.
func (t *Terminal) Draw() {
	v := t.carousel.View()
	t.canvas.Gradient(bgFrom, bgTo)
	if !v.Placeholder {
		t.drawRing(t.carousel.Layout())
	}

	for row := 0; row < t.rows-1; row++ {
		for col := 0; col < t.cols; col++ {
			top := t.canvas.At(col, 2*row)
			bottom := t.canvas.At(col, 2*row+1)
			style := tcell.StyleDefault.Foreground(cellColor(top)).Background(cellColor(bottom))
			t.screen.SetContent(col, row, '▀', nil, style)
		}
	}

	if v.Placeholder {
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(cellColor(bgTo))
		t.text((t.cols-len(v.Message))/2, (t.rows-1)/2, v.Message, style)
	}
	t.drawStatus(v)
	t.screen.Show()
}

func (t *Terminal) drawRing(l carousel.Layout) {
	for _, i := range l.DepthOrder() {
		if i >= len(t.photos) || t.photos[i] == nil {
			continue
		}
		world := l.WorldCorners(i)
		var quad [4]Point
		visible := true
		for k, p := range world {
			x, y, ok := t.camera.Project(p)
			if !ok {
				visible = false
				break
			}
			quad[k] = Point{X: x / CellWidth, Y: y / (CellHeight / 2)}
		}
		if !visible {
			continue
		}
		t.canvas.FillQuad(quad, Sampler(t.photos[i], facing(l, i)))
	}
}

// facing shades panels by how squarely they face the viewer.
func facing(l carousel.Layout, i int) float64 {
	return 0.55 + 0.45*gomath.Abs(l.Facing(i))
}

func (t *Terminal) drawStatus(v carousel.View) {
	row := t.rows - 1
	style := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.NewRGBColor(0xff, 0xd7, 0x00))
	for col := 0; col < t.cols; col++ {
		t.screen.SetContent(col, row, ' ', nil, style)
	}
	status := control.Title(v)
	if !v.Placeholder {
		status += " | space: " + v.ToggleLabel + " | r: Reset | q: Quit"
		if t.shots != nil {
			status += " | s: Snapshot"
		}
	}
	t.text(0, row, status, style)
}

func (t *Terminal) text(col, row int, s string, style tcell.Style) {
	if col < 0 {
		col = 0
	}
	for _, r := range s {
		if col >= t.cols {
			return
		}
		t.screen.SetContent(col, row, r, nil, style)
		col++
	}
}

// Run mounts the carousel and redraws every interval until the user quits
// or ctx ends. With frameTick the loop drives the rotation itself.
func (t *Terminal) Run(ctx context.Context, interval time.Duration, frameTick bool) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	t.carousel.Start(ctx)
	defer t.carousel.Close()
	t.log.Debug("carousel mounted", zap.Bool("ticker_armed", t.carousel.DriverRunning()))

	t.screen.EnableMouse(tcell.MouseMotionEvents)
	t.screen.EnableFocus()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	last := time.Now()
	t.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if !t.HandleEvent(ev) {
				t.log.Info("quit requested")
				return nil
			}

		case now := <-ticker.C:
			if frameTick {
				t.carousel.Tick(now.Sub(last))
			}
			last = now
			t.Draw()
		}
	}
}

func cellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func rgba(c overlay.Color) color.RGBA {
	return color.RGBA{
		R: uint8(c[0]*255 + 0.5),
		G: uint8(c[1]*255 + 0.5),
		B: uint8(c[2]*255 + 0.5),
		A: 0xff,
	}
}
