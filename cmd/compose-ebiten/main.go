// Package main renders the compositing scene inside an ebiten game, with
// the composite fading in and out.
package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"

	"github.com/Faultbox/compose/internal/config"
	"github.com/Faultbox/compose/internal/engine/ebitengpu"
	"github.com/Faultbox/compose/internal/engine/render"
	"github.com/Faultbox/compose/internal/engine/scene"
	"github.com/Faultbox/compose/internal/logger"
	"github.com/Faultbox/compose/pkg/color"
)

type game struct {
	dev    *ebitengpu.Device
	scene  *scene.Scene
	screen *render.Target
	fade   *pulse
}

func (g *game) Update() error {
	dt := float32(1 / float64(ebiten.TPS()))
	g.scene.Update(dt)
	g.scene.Composite().SetColor(color.RGBA(1, 1, 1, g.fade.Update(dt)))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.dev.SetScreen(screen)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if g.screen == nil || g.screen.Width() != w || g.screen.Height() != h {
		g.screen = render.NewScreen(g.dev, w, h)
		g.scene.FitComposite(w, h)
	}
	g.scene.Render(g.screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

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

	logger.Info("=== compose (ebiten) ===")

	dev := ebitengpu.New()
	s, err := scene.New(dev, cfg.Render)
	if err != nil {
		logger.Error("building scene", zap.Error(err))
		os.Exit(1)
	}
	defer s.Close()

	ebiten.SetWindowTitle("compose")
	ebiten.SetWindowSize(cfg.Graphics.Width, cfg.Graphics.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Graphics.Fullscreen)
	ebiten.SetVsyncEnabled(cfg.Graphics.VSync)

	g := &game{
		dev:   dev,
		scene: s,
		fade:  newPulse(1, 0.35, 1.5, ease.InOutQuad),
	}
	if err := ebiten.RunGame(g); err != nil {
		logger.Error("game error", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("closed normally")
}
