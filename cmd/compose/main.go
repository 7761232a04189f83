// Package main renders the compositing scene in an SDL2 window through
// OpenGL.
package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/compose/internal/config"
	"github.com/Faultbox/compose/internal/engine/opengl"
	"github.com/Faultbox/compose/internal/engine/render"
	"github.com/Faultbox/compose/internal/engine/scene"
	"github.com/Faultbox/compose/internal/engine/window"
	"github.com/Faultbox/compose/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== compose (OpenGL) ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("compose failed", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("closed normally")
}

func run(cfg *config.Config) error {
	win, err := window.New(window.Config{
		Title:      "compose",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	dev, err := opengl.New()
	if err != nil {
		return err
	}
	defer dev.Close()

	s, err := scene.New(dev, cfg.Render)
	if err != nil {
		return fmt.Errorf("building scene: %w", err)
	}
	defer s.Close()

	width, height := win.Size()
	screen := render.NewScreen(dev, width, height)
	s.FitComposite(width, height)

	onResize := func(w, h int) {
		screen.Resize(w, h)
		s.FitComposite(w, h)
		logger.Debug("window resized", zap.Int("width", w), zap.Int("height", h))
	}

	last := time.Now()
	fpsStart, frames := last, 0
	for win.PollEvents(onResize) {
		now := time.Now()
		s.Update(float32(now.Sub(last).Seconds()))
		last = now

		s.Render(screen)
		win.SwapBuffers()

		frames++
		if elapsed := now.Sub(fpsStart); elapsed >= time.Second {
			win.SetTitle(fmt.Sprintf("compose - %.0f FPS", float64(frames)/elapsed.Seconds()))
			fpsStart, frames = now, 0
		}
	}
	return nil
}
