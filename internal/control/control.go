// Package control routes front-end pointer and key input to a carousel and
// its overlay buttons.
package control

import (
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/photo-carousel/internal/carousel"
	"github.com/Faultbox/photo-carousel/internal/engine/overlay"
)

// Action is a keyboard command.
type Action int

const (
	ActionNone Action = iota
	ActionToggle
	ActionReset
	ActionQuit
	ActionMute
)

// ActionForKey maps the shared key bindings: space toggles auto-rotate,
// r resets the view, m mutes music, q and escape quit.
func ActionForKey(r rune) Action {
	switch r {
	case ' ':
		return ActionToggle
	case 'r', 'R':
		return ActionReset
	case 'q', 'Q', 0x1b:
		return ActionQuit
	case 'm', 'M':
		return ActionMute
	default:
		return ActionNone
	}
}

// Controller owns the overlay hit regions of one front-end.
type Controller struct {
	carousel *carousel.Carousel
	log      *zap.Logger

	buttons   bool
	layout    overlay.Layout
	hover     overlay.Control
	onControl func(overlay.Control, carousel.View)
	onMute    func()
}

// Option configures a Controller.
type Option func(*Controller)

// WithoutButtons disables the on-screen buttons; only keys reach the controls.
func WithoutButtons() Option {
	return func(c *Controller) { c.buttons = false }
}

// WithOnControl registers a callback run after a control fires, with the
// view as it stands afterwards.
func WithOnControl(fn func(overlay.Control, carousel.View)) Option {
	return func(c *Controller) { c.onControl = fn }
}

// WithOnMute registers the handler for ActionMute. Without one the action
// does nothing.
func WithOnMute(fn func()) Option {
	return func(c *Controller) { c.onMute = fn }
}

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a controller for a surface of width x height.
func New(c *carousel.Carousel, width, height int, opts ...Option) *Controller {
	ctl := &Controller{
		carousel: c,
		log:      zap.NewNop(),
		buttons:  true,
	}
	for _, opt := range opts {
		opt(ctl)
	}
	ctl.Resize(width, height)
	return ctl
}

// Resize updates the carousel breakpoint and the button layout.
func (c *Controller) Resize(width, height int) {
	c.carousel.SetViewport(width)
	c.layout = overlay.Compute(width, height)
}

// Layout returns the current button layout.
func (c *Controller) Layout() overlay.Layout {
	return c.layout
}

// Hover returns the control under the mouse.
func (c *Controller) Hover() overlay.Control {
	return c.hover
}

// Press handles a pointer or finger going down. A press on a button fires
// it and does not start a drag. It returns the control fired, if any.
func (c *Controller) Press(s carousel.PointerSample) overlay.Control {
	if ctl := c.hit(s); ctl != overlay.ControlNone {
		c.Activate(ctl)
		return ctl
	}
	c.carousel.PressStart(s)
	return overlay.ControlNone
}

// Move handles pointer or finger motion.
func (c *Controller) Move(s carousel.PointerSample) {
	if _, ok := s.(carousel.MouseSample); ok {
		c.hover = c.hit(s)
	}
	c.carousel.Move(s)
}

// Release handles a pointer or finger going up.
func (c *Controller) Release(s carousel.PointerSample) {
	c.carousel.Release(s)
}

// Leave handles the pointer leaving the surface; it ends any drag.
func (c *Controller) Leave() {
	c.hover = overlay.ControlNone
	c.carousel.PressEnd()
}

// Activate fires a control.
func (c *Controller) Activate(ctl overlay.Control) {
	if c.carousel.Empty() {
		return
	}
	switch ctl {
	case overlay.ControlToggle:
		c.carousel.ToggleAutoRotate()
	case overlay.ControlReset:
		c.carousel.ResetView()
	default:
		return
	}
	c.log.Debug("control fired", zap.Stringer("control", ctl))
	if c.onControl != nil {
		c.onControl(ctl, c.carousel.View())
	}
}

// Do runs a keyboard action. It returns false for ActionQuit.
func (c *Controller) Do(a Action) bool {
	switch a {
	case ActionToggle:
		c.Activate(overlay.ControlToggle)
	case ActionReset:
		c.Activate(overlay.ControlReset)
	case ActionMute:
		if c.onMute != nil {
			c.onMute()
		}
	case ActionQuit:
		return false
	}
	return true
}

// Cursor returns the pointer affordance: the default arrow over buttons,
// otherwise the ring's grab state.
func (c *Controller) Cursor() carousel.Cursor {
	v := c.carousel.View()
	if c.hover != overlay.ControlNone && !v.Dragging {
		return carousel.CursorDefault
	}
	return v.Cursor
}

// Title joins the caption, photo count and hint for a window title or
// status line.
func Title(v carousel.View) string {
	if v.Placeholder {
		return v.Message
	}
	parts := []string{v.Caption, v.CountLabel}
	if hint := v.Hint(); hint != "" {
		parts = append(parts, hint)
	}
	return strings.Join(parts, " | ")
}

func (c *Controller) hit(s carousel.PointerSample) overlay.Control {
	if !c.buttons || c.carousel.Empty() {
		return overlay.ControlNone
	}
	x, y := s.Position()
	return c.layout.HitTest(x, y)
}
