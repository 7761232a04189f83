// Package config loads the settings for the compositing demos.
package config

import (
	"fmt"

	"github.com/Faultbox/compose/internal/engine/gpu"
	"github.com/Faultbox/compose/pkg/color"
	"github.com/Faultbox/compose/pkg/math"
)

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Render   RenderConfig   `yaml:"render"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds window settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// RenderConfig holds settings for the offscreen pass and the sprite atlas.
type RenderConfig struct {
	ClearColor      string `yaml:"clear_color"` // color name or #rrggbb[aa]
	OffscreenWidth  int    `yaml:"offscreen_width"`
	OffscreenHeight int    `yaml:"offscreen_height"`
	Atlas           string `yaml:"atlas"` // image path; empty generates a checker atlas
	TileSize        int    `yaml:"tile_size"`
	Blend           string `yaml:"blend"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Render: RenderConfig{
			ClearColor:      "midnightblue",
			OffscreenWidth:  512,
			OffscreenHeight: 512,
			Atlas:           "",
			TileSize:        32,
			Blend:           "alpha",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// ClearColorValue parses the configured clear color.
func (r RenderConfig) ClearColorValue() (math.Vec4, error) {
	return color.Parse(r.ClearColor)
}

// BlendMode returns the configured blend mode for composited sprites.
func (r RenderConfig) BlendMode() (gpu.BlendMode, error) {
	return gpu.ParseBlendMode(r.Blend)
}

// Validate checks values that cannot be fixed up silently.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Render.TileSize <= 0 {
		return fmt.Errorf("render: tile_size must be positive, got %d", c.Render.TileSize)
	}
	if _, err := c.Render.ClearColorValue(); err != nil {
		return fmt.Errorf("render: clear_color: %w", err)
	}
	if _, err := c.Render.BlendMode(); err != nil {
		return fmt.Errorf("render: blend: %w", err)
	}
	return nil
}
