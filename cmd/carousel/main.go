// Package main is the entry point for the desktop photo carousel.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/Faultbox/photo-carousel/internal/app"
	"github.com/Faultbox/photo-carousel/internal/config"
	"github.com/Faultbox/photo-carousel/internal/logger"
)

func main() {
	// Parse CLI flags first
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

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		logger.Error("carousel error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("carousel closed normally")
	logger.Sync()
}

func run(cfg *config.Config) error {
	logger.Info("=== Photo Carousel ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Run(ctx)
}
