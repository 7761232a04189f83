// Package scene is the compositing demo shared by the commands: atlas tiles
// and a spinning marker are drawn into an offscreen framebuffer, which is
// then composited onto the screen as a single sprite.
package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/compose/internal/config"
	"github.com/Faultbox/compose/internal/engine/framebuffer"
	"github.com/Faultbox/compose/internal/engine/gpu"
	"github.com/Faultbox/compose/internal/engine/render"
	"github.com/Faultbox/compose/internal/logger"
	"github.com/Faultbox/compose/pkg/color"
	"github.com/Faultbox/compose/pkg/math"
)

// spin speed in radians per second
const spinSpeed = 1.5

// Scene owns its atlas reference and offscreen framebuffer.
type Scene struct {
	atlas     *Atlas
	offscreen *framebuffer.Framebuffer

	tiles     []*render.Sprite
	marker    *render.Transform2D
	composite *render.Sprite

	clearColor math.Vec4
	blend      gpu.BlendMode
}

// New builds the scene on dev. An empty cfg.Atlas generates a checker atlas.
func New(dev gpu.Device, cfg config.RenderConfig) (*Scene, error) {
	clearColor, err := cfg.ClearColorValue()
	if err != nil {
		return nil, fmt.Errorf("clear color: %w", err)
	}
	blend, err := cfg.BlendMode()
	if err != nil {
		return nil, err
	}

	var atlas *Atlas
	if cfg.Atlas != "" {
		atlas, err = LoadAtlas(dev, cfg.Atlas, cfg.TileSize)
	} else {
		atlas, err = GenerateAtlas(dev, cfg.TileSize)
	}
	if err != nil {
		return nil, err
	}

	offscreen, err := framebuffer.New(dev, cfg.OffscreenWidth, cfg.OffscreenHeight)
	if err != nil {
		atlas.Release()
		return nil, err
	}

	s := &Scene{
		atlas:      atlas,
		offscreen:  offscreen,
		clearColor: clearColor,
		blend:      blend,
	}
	s.layoutTiles()
	s.marker = newMarker(float32(cfg.TileSize) * 2)
	s.marker.SetPosition(math.Vec2{
		X: float32(offscreen.Width()) / 2,
		Y: float32(offscreen.Height()) / 2,
	})

	s.composite = render.NewFramebufferSprite(offscreen)
	s.composite.SetBlendMode(blend)

	logger.Info("scene ready",
		zap.Int("tiles", len(s.tiles)),
		zap.Int("atlas_tiles", atlas.Len()),
		zap.Int("offscreen_width", offscreen.Width()),
		zap.Int("offscreen_height", offscreen.Height()),
	)
	return s, nil
}

// layoutTiles covers the offscreen target with atlas tiles, cycling through
// the atlas.
func (s *Scene) layoutTiles() {
	size := s.atlas.TileSize
	cols := (s.offscreen.Width() + size - 1) / size
	rows := (s.offscreen.Height() + size - 1) / size

	s.tiles = make([]*render.Sprite, 0, cols*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			tile := render.NewSpriteRegion(s.atlas.Texture, s.atlas.Tile(y*cols+x))
			tile.SetPosition(math.Vec2{X: float32(x * size), Y: float32(y * size)})
			s.tiles = append(s.tiles, tile)
		}
	}
}

// newMarker returns an untextured square of the given size rotating about
// its own center.
func newMarker(size float32) *render.Transform2D {
	h := size / 2
	corner := func(x, y float32) gpu.Vertex {
		return gpu.Vertex{Position: math.Vec2{X: x, Y: y}}
	}
	m := render.NewTransform2D()
	m.SetVertexArray(gpu.NewVertexArray([]gpu.Vertex{
		corner(-h, -h), corner(-h, h), corner(h, h),
		corner(-h, -h), corner(h, h), corner(h, -h),
	}))
	m.SetColor(color.RGBA(1, 1, 1, 0.85))
	return m
}

// Composite is the sprite showing the offscreen result on screen. Callers
// position and scale it.
func (s *Scene) Composite() *render.Sprite { return s.composite }

// Marker is the spinning square drawn into the offscreen target.
func (s *Scene) Marker() *render.Transform2D { return s.marker }

// Tiles returns the tile sprites in draw order.
func (s *Scene) Tiles() []*render.Sprite { return s.tiles }

// Update advances the animation by dt seconds.
func (s *Scene) Update(dt float32) {
	s.marker.Rotate(spinSpeed * dt)
}

// Render draws the tiles and marker offscreen, then composites the result
// onto screen.
func (s *Scene) Render(screen *render.Target) {
	state := render.DefaultRenderState()

	s.offscreen.Clear(s.clearColor)
	for _, tile := range s.tiles {
		tile.Draw(s.offscreen, state)
	}
	s.marker.Draw(s.offscreen, state)

	screen.Clear(color.Black)
	s.composite.Draw(screen, state)
}

// FitComposite centers the composite on a width x height screen, scaled to
// fit while keeping its aspect ratio.
func (s *Scene) FitComposite(width, height int) {
	w, h := float32(s.offscreen.Width()), float32(s.offscreen.Height())
	scale := min(float32(width)/w, float32(height)/h)
	s.composite.SetScaleUniform(scale)
	s.composite.SetPosition(math.Vec2{
		X: (float32(width) - w*scale) / 2,
		Y: (float32(height) - h*scale) / 2,
	})
}

// Close releases the framebuffer and the atlas.
func (s *Scene) Close() {
	s.offscreen.Destroy()
	if s.atlas.Texture != nil {
		s.atlas.Release()
	}
}
