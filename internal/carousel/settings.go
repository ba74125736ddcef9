package carousel

import (
	"time"

	"go.uber.org/zap"
)

// Reference tuning values.
const (
	DefaultAutoStep         = 0.15                  // degrees per frame
	DefaultDegreesPerSecond = DefaultAutoStep * 60 // time-based equivalent at 60 Hz
	DefaultInitialPitch     = -18.0
	DefaultViewportWidth    = 1280
)

// Settings tunes a Carousel.
type Settings struct {
	Sensitivity float64 // degrees per dragged pixel
	AutoRotate  bool    // initial toggle state

	// Per-frame step, used unless TimeBased is set.
	AutoStep float64
	// TimeBased advances yaw by DegreesPerSecond * elapsed instead of AutoStep.
	TimeBased        bool
	DegreesPerSecond float64

	// UseDriver arms an internal ticker at FrameInterval. Without it the
	// host calls Tick from its own frame loop.
	UseDriver     bool
	FrameInterval time.Duration

	InitialPose Pose
	ResetPose   Pose

	ViewportWidth int
}

// DefaultSettings returns the reference behaviour.
func DefaultSettings() Settings {
	return Settings{
		Sensitivity:      DefaultSensitivity,
		AutoRotate:       true,
		AutoStep:         DefaultAutoStep,
		DegreesPerSecond: DefaultDegreesPerSecond,
		UseDriver:        true,
		FrameInterval:    DefaultFrameInterval,
		InitialPose:      Pose{Pitch: DefaultInitialPitch},
		ViewportWidth:    DefaultViewportWidth,
	}
}

// Option configures a Carousel.
type Option func(*Carousel)

// WithSettings replaces the default settings.
func WithSettings(s Settings) Option {
	return func(c *Carousel) { c.settings = s }
}

// WithLogger sets the logger used for mode transitions.
func WithLogger(log *zap.Logger) Option {
	return func(c *Carousel) {
		if log != nil {
			c.log = log
		}
	}
}

// WithProjector overrides the projector.
func WithProjector(p Projector) Option {
	return func(c *Carousel) {
		if p != nil {
			c.project = p
		}
	}
}

// WithOnChange registers an observer called after every layout recompute.
// It runs outside the carousel lock, on the goroutine that caused the change.
func WithOnChange(fn func(Layout)) Option {
	return func(c *Carousel) { c.onChange = fn }
}
