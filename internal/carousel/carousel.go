// Package carousel implements the rotation engine of a 3D photo ring:
// pointer and touch drag, a cancellable auto-rotate driver, and the
// projector that places every panel on the drum.
package carousel

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Carousel owns the rotation state of one mounted photo ring.
// All methods are safe to call from the UI goroutine while the auto-rotate
// driver ticks on its own goroutine; each call runs to completion under one lock.
type Carousel struct {
	settings Settings
	log      *zap.Logger
	project  Projector
	onChange func(Layout)

	images  []string
	caption string

	mu         sync.Mutex
	mode       *ModeController
	input      InputTracker
	pose       Pose
	breakpoint Breakpoint
	ring       Ring
	hasPanels  bool
	layout     Layout
	ctx        context.Context
	closed     bool

	driver *Driver
}

// New creates a carousel for images in display order.
// With no images the carousel only reports the placeholder view.
func New(images []string, caption string, opts ...Option) *Carousel {
	c := &Carousel{
		settings: DefaultSettings(),
		log:      zap.NewNop(),
		project:  Project,
	}
	for _, opt := range opts {
		opt(c)
	}

	if caption == "" {
		caption = DefaultCaption
	}
	c.caption = caption
	c.images = append([]string(nil), images...)

	c.mode = NewModeController(c.settings.AutoRotate)
	c.pose = c.settings.InitialPose
	c.breakpoint = BreakpointFor(c.settings.ViewportWidth)
	c.ring, c.hasPanels = NewRing(len(c.images), c.breakpoint.PanelSize())

	if !c.hasPanels {
		c.log.Info("carousel has no images, showing placeholder")
		return c
	}

	c.layout = c.project(c.pose, c.ring)
	if c.settings.UseDriver {
		c.driver = NewDriver(c.settings.FrameInterval, func(elapsed time.Duration) {
			c.Tick(elapsed)
		})
	}

	c.log.Debug("carousel created",
		zap.Int("panels", c.ring.PanelCount),
		zap.Stringer("breakpoint", c.breakpoint),
		zap.Float64("radius", c.ring.Radius),
		zap.Stringer("mode", c.mode.Mode()),
	)
	return c
}

// Start mounts the carousel: the auto-rotate driver is armed when enabled.
// Cancelling ctx stops the driver as well.
func (c *Carousel) Start(ctx context.Context) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.ctx = ctx
	arm := c.mode.AutoRotateEnabled()
	c.mu.Unlock()

	c.syncDriver(arm)
}

// Close unmounts the carousel: it stops the driver and releases any drag.
// Close is idempotent.
func (c *Carousel) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.mode.PressEnd()
	c.input.Reset()
	c.mu.Unlock()

	if c.driver != nil {
		c.driver.Stop()
	}
	c.log.Debug("carousel closed")
}

// PressStart captures a pointer and enters DRAGGING.
func (c *Carousel) PressStart(s PointerSample) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.live() || !c.input.Begin(s) {
		return false
	}
	from := c.mode.Mode()
	c.mode.PressStart()
	c.logTransition(from, "press-start")
	return true
}

// Move applies the drag delta of s to the pose.
func (c *Carousel) Move(s PointerSample) bool {
	c.mu.Lock()
	if !c.live() || !c.mode.Dragging() {
		c.mu.Unlock()
		return false
	}
	dx, dy, ok := c.input.Move(s)
	if !ok {
		c.mu.Unlock()
		return false
	}
	k := c.settings.Sensitivity
	l := c.apply(c.pose.Rotate(-dy*k, -dx*k))
	c.mu.Unlock()

	c.notify(l)
	return true
}

// Release ends the drag if s is the captured pointer.
func (c *Carousel) Release(s PointerSample) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.live() || !c.input.Release(s) {
		return false
	}
	c.endDrag()
	return true
}

// PressEnd ends any drag regardless of which pointer holds it. Hosts call it
// when the pointer leaves the surface or touch is cancelled.
func (c *Carousel) PressEnd() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.live() || !c.mode.Dragging() {
		return false
	}
	c.input.Reset()
	c.endDrag()
	return true
}

// Tick advances the auto-rotation by one frame. It is a no-op unless the
// mode is AUTO. elapsed is only used by time-based settings.
func (c *Carousel) Tick(elapsed time.Duration) bool {
	c.mu.Lock()
	if !c.live() || !c.mode.AutoAdvance() {
		c.mu.Unlock()
		return false
	}
	step := c.settings.AutoStep
	if c.settings.TimeBased {
		step = c.settings.DegreesPerSecond * elapsed.Seconds()
	}
	l := c.apply(c.pose.Rotate(0, step))
	c.mu.Unlock()

	c.notify(l)
	return true
}

// ToggleAutoRotate flips auto-rotation and arms or disarms the driver.
// It returns the new state.
func (c *Carousel) ToggleAutoRotate() bool {
	c.mu.Lock()
	if c.closed {
		enabled := c.mode.AutoRotateEnabled()
		c.mu.Unlock()
		return enabled
	}
	from := c.mode.Mode()
	enabled := c.mode.ToggleAutoRotate()
	c.logTransition(from, "toggle")
	mounted := c.ctx != nil
	c.mu.Unlock()

	if mounted {
		c.syncDriver(enabled)
	}
	return enabled
}

// ResetView restores the reset pose without touching the mode.
func (c *Carousel) ResetView() {
	c.mu.Lock()
	if !c.live() {
		c.mu.Unlock()
		return
	}
	l := c.apply(c.settings.ResetPose)
	c.mu.Unlock()

	c.notify(l)
}

// SetViewport reclassifies the viewport and rebuilds the ring when the
// breakpoint changes. It reports whether the layout was recomputed.
func (c *Carousel) SetViewport(width int) bool {
	c.mu.Lock()
	bp := BreakpointFor(width)
	if bp == c.breakpoint {
		c.mu.Unlock()
		return false
	}
	c.breakpoint = bp
	if !c.live() {
		c.mu.Unlock()
		return false
	}
	c.ring, _ = NewRing(len(c.images), bp.PanelSize())
	l := c.apply(c.pose)
	c.mu.Unlock()

	c.log.Debug("viewport breakpoint changed",
		zap.Stringer("breakpoint", bp),
		zap.Float64("radius", l.Ring.Radius),
	)
	c.notify(l)
	return true
}

// Layout returns the most recent projection. It is the zero Layout when
// there are no images.
func (c *Carousel) Layout() Layout {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.layout
}

// Pose returns the current orientation.
func (c *Carousel) Pose() Pose {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pose
}

// Mode returns the current controller state.
func (c *Carousel) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode.Mode()
}

// Empty reports whether the carousel has no images.
func (c *Carousel) Empty() bool {
	return !c.hasPanels
}

// Images returns the image references in display order.
func (c *Carousel) Images() []string {
	return append([]string(nil), c.images...)
}

// DriverRunning reports whether the internal auto-rotate driver is armed.
func (c *Carousel) DriverRunning() bool {
	return c.driver != nil && c.driver.Running()
}

// View returns the overlay state for the display surface.
func (c *Carousel) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := View{
		Caption:     c.caption,
		Breakpoint:  c.breakpoint,
		Perspective: c.breakpoint.Perspective(),
		AutoRotate:  c.mode.AutoRotateEnabled(),
		Mode:        c.mode.Mode(),
	}
	if !c.hasPanels {
		v.Placeholder = true
		v.Message = PlaceholderMessage
		return v
	}

	v.Dragging = c.mode.Dragging()
	v.CountLabel = countLabel(len(c.images))
	v.ToggleLabel = toggleLabel(v.AutoRotate)
	v.Cursor = CursorGrab
	if v.Dragging {
		v.Cursor = CursorGrabbing
		v.SuppressScroll = true
	}
	mobile := c.breakpoint.Mobile()
	v.ShowAutoHint = v.AutoRotate && !v.Dragging && !mobile
	v.ShowTouchHint = mobile && !v.Dragging
	return v
}

// live reports whether the carousel accepts rotation input. Caller holds c.mu.
func (c *Carousel) live() bool {
	return c.hasPanels && !c.closed
}

// apply stores p and recomputes the layout. Caller holds c.mu.
func (c *Carousel) apply(p Pose) Layout {
	c.pose = p
	c.layout = c.project(p, c.ring)
	return c.layout
}

// endDrag leaves DRAGGING. Caller holds c.mu.
func (c *Carousel) endDrag() {
	from := c.mode.Mode()
	c.mode.PressEnd()
	c.logTransition(from, "press-end")
}

func (c *Carousel) logTransition(from Mode, event string) {
	to := c.mode.Mode()
	c.log.Debug("mode transition",
		zap.String("event", event),
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.Bool("auto_rotate", c.mode.AutoRotateEnabled()),
	)
}

func (c *Carousel) notify(l Layout) {
	if c.onChange != nil {
		c.onChange(l)
	}
}

// syncDriver arms or disarms the driver. It must be called without c.mu held,
// since Stop waits for an in-flight tick that needs the lock.
func (c *Carousel) syncDriver(arm bool) {
	if c.driver == nil {
		return
	}
	c.mu.Lock()
	ctx, closed := c.ctx, c.closed
	c.mu.Unlock()

	if arm && !closed && ctx != nil {
		if c.driver.Start(ctx) {
			c.log.Debug("auto-rotate driver armed")
		}
		return
	}
	if c.driver.Stop() {
		c.log.Debug("auto-rotate driver stopped")
	}
}
