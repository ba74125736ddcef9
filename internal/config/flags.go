package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagCaption    = flag.String("caption", "", "Caption shown above the carousel")
	flagNoAuto     = flag.Bool("no-auto", false, "Start with auto-rotation paused")
	flagTimeBased  = flag.Bool("time-based", false, "Rotate by elapsed time instead of per frame")
	flagMute       = flag.Bool("mute", false, "Disable audio")
	flagSave       = flag.Bool("save-config", false, "Write the merged config to the user config dir and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
// Remaining arguments are image paths.
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveRequested reports whether --save-config was given.
func SaveRequested() bool {
	return *flagSave
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagCaption != "" {
		cfg.Carousel.Caption = *flagCaption
	}
	if *flagNoAuto {
		cfg.Carousel.AutoRotate = false
	}
	if *flagTimeBased {
		cfg.Carousel.TimeBased = true
	}
	if *flagMute {
		cfg.Audio.Enabled = false
	}
	if flag.NArg() > 0 {
		cfg.Carousel.Images = flag.Args()
	}
}
