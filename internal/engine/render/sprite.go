package render

import (
	"github.com/Faultbox/compose/internal/engine/gpu"
	"github.com/Faultbox/compose/pkg/math"
)

// Sprite draws a texture, or a region of one. Change its texture only
// through Sprite.SetTexture: the embedded Base.SetTexture swaps the texture
// but keeps the old region and texture coordinates.
type Sprite struct {
	TransformRectangle
}

var _ Transformable = (*Sprite)(nil)

// TextureSource is anything that renders into a texture, such as a
// framebuffer.
type TextureSource interface {
	ColorTexture() *gpu.Texture
}

// NewSprite returns a sprite showing all of tex. tex must have non-zero
// width and height; a nil texture panics.
func NewSprite(tex *gpu.Texture) *Sprite {
	s := &Sprite{TransformRectangle: *NewTransformRectangle()}
	s.SetTexture(tex)
	return s
}

// NewSpriteRegion returns a sprite showing the rect region of tex, which
// must have non-zero width and height.
func NewSpriteRegion(tex *gpu.Texture, rect math.Rectangle) *Sprite {
	s := &Sprite{TransformRectangle: *NewTransformRectangle()}
	s.texture = tex
	s.SetVertexRectangle(rect)
	return s
}

// NewFramebufferSprite returns a sprite showing everything rendered into
// src. The sprite does not follow src if it is later resized or destroyed. The quad spans the whole texture without the half-texel inset, and
// its texture coordinates are flipped vertically because render textures
// are stored bottom row first.
func NewFramebufferSprite(src TextureSource) *Sprite {
	tex := src.ColorTexture()
	s := &Sprite{TransformRectangle: *NewTransformRectangle()}
	s.texture = tex

	w, h := float32(tex.Width()), float32(tex.Height())
	s.rect = math.Rectangle{Width: w, Height: h}
	s.vertices = quad(w, h, 0, 1, 1, 0)
	return s
}

// SetTexture replaces the texture and shows all of it. Like NewSprite it
// requires a texture with non-zero size.
func (s *Sprite) SetTexture(tex *gpu.Texture) {
	s.texture = tex
	s.SetVertexRectangle(math.Rectangle{
		Width:  float32(tex.Width()),
		Height: float32(tex.Height()),
	})
}

// SetTextureRectangle shows the rect region of the current texture.
func (s *Sprite) SetTextureRectangle(rect math.Rectangle) {
	s.SetVertexRectangle(rect)
}
