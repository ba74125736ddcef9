// Package main is the terminal photo carousel.
package main

import (
	"context"
	"fmt"
	"image"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/photo-carousel/internal/carousel"
	"github.com/Faultbox/photo-carousel/internal/config"
	"github.com/Faultbox/photo-carousel/internal/engine/snapshot"
	"github.com/Faultbox/photo-carousel/internal/engine/texture"
	"github.com/Faultbox/photo-carousel/internal/logger"
	"github.com/Faultbox/photo-carousel/internal/term"
)

const redrawInterval = 16 * time.Millisecond // ~60 FPS

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if config.SaveRequested() {
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Save config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config saved to %s\n", config.UserConfigPath())
		return
	}

	// The screen owns stdout, so logs only go to the file.
	opts := logger.Options{Level: cfg.Logging.Level}
	if cfg.Logging.LogFile != "" {
		opts.File = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	if err := logger.InitWithOptions(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		logger.Error("carousel error", zap.Error(err))
		logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Sync()
}

func run(cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	cols, _ := screen.Size()
	settings := cfg.Settings()
	settings.ViewportWidth = cols * term.CellWidth

	c := carousel.New(cfg.Carousel.Images, cfg.Carousel.Caption,
		carousel.WithSettings(settings),
		carousel.WithLogger(logger.Named("carousel")),
	)

	photos := make([]*image.RGBA, 0, len(cfg.Carousel.Images))
	for _, path := range c.Images() {
		img, err := texture.LoadPanel(path, term.PhotoSize)
		if err != nil {
			logger.Warn("showing broken image", zap.String("path", path), zap.Error(err))
		}
		photos = append(photos, img)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	t := term.New(screen, c, photos, logger.Named("term"))
	t.SetSnapshot(snapshot.New(cfg.Window.ScreenshotDir, "carousel-term"))
	logger.Info("terminal carousel started", zap.Int("images", len(photos)))
	return t.Run(ctx, redrawInterval, cfg.Carousel.Driver == config.DriverFrame)
}
