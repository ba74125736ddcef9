// Package app runs the desktop carousel: an SDL2 window with an OpenGL
// renderer driving the rotation engine.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/photo-carousel/internal/carousel"
	"github.com/Faultbox/photo-carousel/internal/config"
	"github.com/Faultbox/photo-carousel/internal/control"
	"github.com/Faultbox/photo-carousel/internal/engine/audio"
	"github.com/Faultbox/photo-carousel/internal/engine/camera"
	"github.com/Faultbox/photo-carousel/internal/engine/input"
	"github.com/Faultbox/photo-carousel/internal/engine/overlay"
	"github.com/Faultbox/photo-carousel/internal/engine/renderer"
	"github.com/Faultbox/photo-carousel/internal/engine/snapshot"
	"github.com/Faultbox/photo-carousel/internal/engine/texture"
	"github.com/Faultbox/photo-carousel/internal/engine/window"
	"github.com/Faultbox/photo-carousel/internal/logger"
)

// App is the desktop carousel instance.
type App struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.PerspectiveCamera
	audio    *audio.Manager
	snapshot *snapshot.Capture

	carousel *carousel.Carousel
	control  *control.Controller
	textures []uint32
	title    string

	pendingShot bool
}

// New creates the window, renderer and carousel for cfg.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing carousel",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Int("images", len(cfg.Carousel.Images)),
	)

	a := &App{cfg: cfg}

	// Window first: it creates the OpenGL context.
	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := a.window.GetSize()
	pw, ph := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:       width,
		Height:      height,
		PixelWidth:  pw,
		PixelHeight: ph,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.input = input.New(width, height)
	a.snapshot = snapshot.New(cfg.Window.ScreenshotDir, "carousel")

	settings := cfg.Settings()
	settings.ViewportWidth = width
	a.carousel = carousel.New(cfg.Carousel.Images, cfg.Carousel.Caption,
		carousel.WithSettings(settings),
		carousel.WithLogger(logger.Named("carousel")),
	)
	a.control = control.New(a.carousel, width, height,
		control.WithLogger(logger.Named("control")),
		control.WithOnControl(a.playCue),
		control.WithOnMute(a.toggleMusic),
	)
	a.camera = camera.NewPerspectiveCamera(width, height, a.carousel.View().Perspective)

	a.loadTextures()
	a.initAudio()

	logger.Info("carousel initialized")
	return a, nil
}

func (a *App) loadTextures() {
	for _, path := range a.carousel.Images() {
		img, err := texture.LoadPanel(path, texture.DefaultSize)
		if err != nil {
			logger.Warn("showing broken image", zap.String("path", path), zap.Error(err))
		}
		a.textures = append(a.textures, a.renderer.UploadTexture(img))
	}
}

// initAudio starts the music loop. Audio failures are not fatal.
func (a *App) initAudio() {
	if !a.cfg.Audio.Enabled {
		return
	}
	a.audio = audio.New(a.cfg.Audio.MusicVolume, a.cfg.Audio.ClickVolume)
	if err := a.audio.Init(); err != nil {
		logger.Warn("audio unavailable", zap.Error(err))
		a.audio = nil
		return
	}
	logger.Debug("audio ready",
		zap.Float64("music_volume", a.audio.MusicVolume()),
		zap.Float64("click_volume", a.audio.ClickVolume()),
	)
	if path := a.cfg.Audio.MusicPath; path != "" {
		if err := a.audio.PlayMusic(path); err != nil {
			logger.Warn("failed to play music", zap.String("path", path), zap.Error(err))
			return
		}
		logger.Info("music playing", zap.String("path", a.audio.MusicPath()))
	}
}

func (a *App) audioReady() bool {
	return a.audio != nil && a.audio.Initialized()
}

// toggleMusic mutes the music loop, or restores the configured level.
func (a *App) toggleMusic() {
	if !a.audioReady() {
		return
	}
	level := musicLevel(a.audio.MusicVolume(), a.cfg.Audio.MusicVolume)
	a.audio.SetMusicVolume(level)
	logger.Debug("music volume", zap.Float64("level", level))
}

// musicLevel is the level after a mute toggle from current.
func musicLevel(current, configured float64) float64 {
	if current > 0 {
		return 0
	}
	if configured > 0 {
		return configured
	}
	return 1
}

func (a *App) playCue(ctl overlay.Control, v carousel.View) {
	if !a.audioReady() {
		return
	}
	cue := audio.CueReset
	if ctl == overlay.ControlToggle {
		cue = audio.CuePause
		if v.AutoRotate {
			cue = audio.CueResume
		}
	}
	if err := a.audio.Play(cue); err != nil {
		logger.Debug("cue not played", zap.Error(err))
	}
}

// Run mounts the carousel and runs the frame loop until quit or ctx ends.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.carousel.Start(ctx)
	defer a.carousel.Close()

	a.running = true
	frameMode := a.cfg.Carousel.Driver == config.DriverFrame

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting frame loop",
		zap.Bool("frame_driver", frameMode),
		zap.Bool("ticker_armed", a.carousel.DriverRunning()),
	)

	for a.running {
		if ctx.Err() != nil {
			break
		}

		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		if a.input.Update() {
			a.running = false
			break
		}
		for _, event := range a.input.Events() {
			a.handle(event)
		}
		if a.input.IsKeyPressed(sdl.K_F12) {
			a.pendingShot = true
		}

		if frameMode {
			a.carousel.Tick(dt)
		}

		a.render()
		if a.pendingShot {
			a.screenshot()
			a.pendingShot = false
		}
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount), zap.Duration("dt", dt))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (a *App) handle(e input.Event) {
	switch e.Type {
	case input.EventWindowResize:
		pw, ph := a.window.DrawableSize()
		a.renderer.Resize(e.Width, e.Height, pw, ph)
		a.control.Resize(e.Width, e.Height)
		a.camera.Resize(e.Width, e.Height)
		a.camera.SetDistance(a.carousel.View().Perspective)

	case input.EventPress:
		a.control.Press(e.Sample)
	case input.EventMove:
		a.control.Move(e.Sample)
	case input.EventRelease:
		a.control.Release(e.Sample)
	case input.EventLeave:
		a.control.Leave()
	case input.EventFocusLost:
		a.control.Leave()
		if a.audioReady() {
			a.audio.SetMusicPaused(true)
		}
	case input.EventFocusGained:
		if a.audioReady() {
			a.audio.SetMusicPaused(false)
		}

	case input.EventKeyDown:
		if !a.control.Do(keyAction(e.Key)) {
			a.running = false
		}
	}
}

// screenshot saves the frame just rendered, before the buffer swap.
func (a *App) screenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	name, err := a.snapshot.SavePixels(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", name))
}

func keyAction(k sdl.Keycode) control.Action {
	switch k {
	case sdl.K_ESCAPE, sdl.K_q:
		return control.ActionQuit
	case sdl.K_m:
		return control.ActionMute
	case sdl.K_SPACE, sdl.K_p:
		return control.ActionToggle
	case sdl.K_r, sdl.K_HOME:
		return control.ActionReset
	default:
		return control.ActionNone
	}
}

// render draws the current frame.
func (a *App) render() {
	v := a.carousel.View()

	a.renderer.Begin()
	if v.Placeholder {
		a.drawCentered(v.Message, float64(a.camera.Height)/2, 3, overlay.White)
	} else {
		a.renderer.DrawRing(a.carousel.Layout(), a.camera, a.textures)
		a.drawOverlay(v)
	}
	a.renderer.End()

	if t := control.Title(v); t != a.title {
		a.window.SetTitle(t)
		a.title = t
	}
	a.window.SetCursor(a.control.Cursor())
}

func (a *App) drawOverlay(v carousel.View) {
	l := a.control.Layout()
	hover := a.control.Hover()
	scale := 2
	if v.Breakpoint == carousel.BreakpointLarge {
		scale = 3
	}

	a.drawCentered(v.Caption, l.Toggle.Y, scale, overlay.Gold)

	a.renderer.DrawDisc(l.Toggle, overlay.ToggleColor(v.AutoRotate, hover == overlay.ControlToggle))
	icon := ">"
	if v.AutoRotate {
		icon = "||"
	}
	a.drawIn(l.Toggle, icon, scale, overlay.BackgroundTo)
	a.drawBelow(l.Toggle, v.ToggleLabel, overlay.White)

	a.renderer.DrawDisc(l.Reset, overlay.ResetColor(hover == overlay.ControlReset))
	a.drawIn(l.Reset, "@", scale, overlay.BackgroundTo)
	a.drawBelow(l.Reset, "Reset", overlay.White)

	a.renderer.DrawRect(l.Badge, overlay.Shadow, overlay.Shadow)
	a.drawIn(l.Badge, v.CountLabel, 1+scale/2, overlay.Gold)

	if hint := v.Hint(); hint != "" {
		_, h := renderer.LabelSize(hint, 2)
		a.drawCentered(hint, float64(a.camera.Height)-l.Badge.H-h-20, 2, overlay.White)
	}
}

func (a *App) drawCentered(text string, y float64, scale int, c overlay.Color) {
	w, _ := renderer.LabelSize(text, scale)
	a.renderer.DrawLabel(text, (a.camera.Width-w)/2, y, scale, c)
}

func (a *App) drawIn(r overlay.Rect, text string, scale int, c overlay.Color) {
	w, h := renderer.LabelSize(text, scale)
	a.renderer.DrawLabel(text, r.X+(r.W-w)/2, r.Y+(r.H-h)/2, scale, c)
}

func (a *App) drawBelow(r overlay.Rect, text string, c overlay.Color) {
	w, _ := renderer.LabelSize(text, 1)
	a.renderer.DrawLabel(text, r.X+(r.W-w)/2, r.Y+r.H+4, 1, c)
}

// Close releases every resource in reverse creation order.
func (a *App) Close() {
	logger.Info("closing carousel")

	if a.carousel != nil {
		a.carousel.Close()
	}
	if a.audio != nil {
		a.audio.Close()
	}
	if a.renderer != nil {
		a.renderer.DeleteTextures(a.textures)
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
