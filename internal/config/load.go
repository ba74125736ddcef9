package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./carousel.yaml",
		UserConfigPath(),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "PhotoCarousel")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "PhotoCarousel")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "photo-carousel")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "photo-carousel")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
// Relative image paths are resolved against the file's directory.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}

	base := filepath.Dir(path)
	for i, img := range cfg.Carousel.Images {
		if img != "" && !filepath.IsAbs(img) {
			cfg.Carousel.Images[i] = filepath.Join(base, img)
		}
	}
	if p := cfg.Audio.MusicPath; p != "" && !filepath.IsAbs(p) {
		cfg.Audio.MusicPath = filepath.Join(base, p)
	}
	return nil
}
