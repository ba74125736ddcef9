// Package config handles carousel configuration loading and management.
package config

import (
	"fmt"
	"time"

	"github.com/Faultbox/photo-carousel/internal/carousel"
)

// Config holds all application settings.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Carousel CarouselConfig `yaml:"carousel"`
	Audio    AudioConfig    `yaml:"audio"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`

	ScreenshotDir string `yaml:"screenshot_dir"`
}

// Driver names for CarouselConfig.Driver.
const (
	DriverTicker = "ticker" // internal goroutine ticker
	DriverFrame  = "frame"  // host frame loop calls Tick
)

// CarouselConfig holds the photo ring settings.
type CarouselConfig struct {
	Caption string   `yaml:"caption"`
	Images  []string `yaml:"images"`

	Sensitivity float64 `yaml:"sensitivity"` // degrees per pixel
	AutoRotate  bool    `yaml:"auto_rotate"`

	AutoStep         float64       `yaml:"auto_step"` // degrees per frame
	TimeBased        bool          `yaml:"time_based"`
	DegreesPerSecond float64       `yaml:"degrees_per_second"`
	Driver           string        `yaml:"driver"`
	FrameInterval    time.Duration `yaml:"frame_interval"`

	InitialPitch float64 `yaml:"initial_pitch"`
	InitialYaw   float64 `yaml:"initial_yaw"`
	ResetPitch   float64 `yaml:"reset_pitch"`
	ResetYaw     float64 `yaml:"reset_yaw"`
}

// AudioConfig holds background music and click sound settings.
type AudioConfig struct {
	Enabled     bool    `yaml:"enabled"`
	MusicPath   string  `yaml:"music_path"` // WAV file, optional
	MusicVolume float64 `yaml:"music_volume"`
	ClickVolume float64 `yaml:"click_volume"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Photo Carousel",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,

			ScreenshotDir: "screenshots",
		},
		Carousel: CarouselConfig{
			Caption:          carousel.DefaultCaption,
			Sensitivity:      carousel.DefaultSensitivity,
			AutoRotate:       true,
			AutoStep:         carousel.DefaultAutoStep,
			TimeBased:        false,
			DegreesPerSecond: carousel.DefaultDegreesPerSecond,
			Driver:           DriverTicker,
			FrameInterval:    carousel.DefaultFrameInterval,
			InitialPitch:     carousel.DefaultInitialPitch,
		},
		Audio: AudioConfig{
			Enabled:     true,
			MusicVolume: 0.7,
			ClickVolume: 0.5,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings that cannot drive a carousel.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	switch c.Carousel.Driver {
	case DriverTicker, DriverFrame:
	default:
		return fmt.Errorf("unknown carousel driver %q (want %q or %q)", c.Carousel.Driver, DriverTicker, DriverFrame)
	}
	if c.Carousel.Driver == DriverTicker && c.Carousel.FrameInterval <= 0 {
		return fmt.Errorf("frame_interval must be positive, got %v", c.Carousel.FrameInterval)
	}
	if c.Audio.MusicVolume < 0 || c.Audio.MusicVolume > 1 {
		return fmt.Errorf("music_volume %v out of range [0, 1]", c.Audio.MusicVolume)
	}
	if c.Audio.ClickVolume < 0 || c.Audio.ClickVolume > 1 {
		return fmt.Errorf("click_volume %v out of range [0, 1]", c.Audio.ClickVolume)
	}
	return nil
}

// Settings converts the carousel section into engine settings for a
// viewport of the configured window width.
func (c *Config) Settings() carousel.Settings {
	cc := c.Carousel
	return carousel.Settings{
		Sensitivity:      cc.Sensitivity,
		AutoRotate:       cc.AutoRotate,
		AutoStep:         cc.AutoStep,
		TimeBased:        cc.TimeBased,
		DegreesPerSecond: cc.DegreesPerSecond,
		UseDriver:        cc.Driver == DriverTicker,
		FrameInterval:    cc.FrameInterval,
		InitialPose:      carousel.Pose{Pitch: cc.InitialPitch, Yaw: cc.InitialYaw},
		ResetPose:        carousel.Pose{Pitch: cc.ResetPitch, Yaw: cc.ResetYaw},
		ViewportWidth:    c.Window.Width,
	}
}
