package render

import (
	"github.com/Faultbox/compose/internal/engine/gpu"
	"github.com/Faultbox/compose/pkg/color"
	"github.com/Faultbox/compose/pkg/math"
)

// Transformable is a Drawable with its own model transform. The variants are
// Transform2D, Transform3D and TransformRectangle (and Sprite, which is a
// TransformRectangle).
type Transformable interface {
	Drawable
	Transformation() math.Mat4
	base() *Base
}

// Base holds the drawing attributes shared by every transformable.
// Copying a Base shares its texture and vertex array.
type Base struct {
	color    math.Vec4
	texture  *gpu.Texture
	blend    gpu.BlendMode
	vertices *gpu.VertexArray
}

func newBase() Base {
	return Base{
		color: color.White,
		blend: gpu.BlendAlpha,
	}
}

func (b *Base) base() *Base { return b }

// SetColor sets the tint applied to the geometry.
func (b *Base) SetColor(c math.Vec4) { b.color = c }

// Color returns the tint.
func (b *Base) Color() math.Vec4 { return b.color }

// SetTexture sets the texture sampled by the geometry. The transformable
// does not take a reference; the caller keeps tex alive while it is drawn.
func (b *Base) SetTexture(tex *gpu.Texture) { b.texture = tex }

// Texture returns the texture, or nil.
func (b *Base) Texture() *gpu.Texture { return b.texture }

// SetBlendMode sets how the geometry is composited.
func (b *Base) SetBlendMode(m gpu.BlendMode) { b.blend = m }

// BlendMode returns the blend mode.
func (b *Base) BlendMode() gpu.BlendMode { return b.blend }

// VertexArray returns the geometry, or nil.
func (b *Base) VertexArray() *gpu.VertexArray { return b.vertices }

// resolve combines the inherited state with this object's attributes: the
// transform composes, everything else is overridden.
func (b *Base) resolve(inherited RenderState, own math.Mat4) RenderState {
	return RenderState{
		Transform: inherited.Transform.Mul(own),
		Blend:     b.blend,
		Texture:   b.texture,
		Color:     b.color,
	}
}

func (b *Base) draw(target RenderTarget, inherited RenderState, own math.Mat4) {
	target.DrawVertices(b.vertices, b.resolve(inherited, own))
}

// Resolve returns the state t would submit when drawn under inherited.
// Use it to draw children relative to t.
func Resolve(t Transformable, inherited RenderState) RenderState {
	return t.base().resolve(inherited, t.Transformation())
}

// placement is the translate/scale part shared by the 2D variants.
type placement struct {
	position math.Vec2
	scale    math.Vec2
}

func newPlacement() placement {
	return placement{scale: math.Vec2{X: 1, Y: 1}}
}

// Move adds offset to the position.
func (p *placement) Move(offset math.Vec2) { p.position = p.position.Add(offset) }

// SetPosition sets the position.
func (p *placement) SetPosition(pos math.Vec2) { p.position = pos }

// Position returns the position.
func (p *placement) Position() math.Vec2 { return p.position }

// SetScale sets both scale factors.
func (p *placement) SetScale(s math.Vec2) { p.scale = s }

// SetScaleUniform sets both scale factors to s.
func (p *placement) SetScaleUniform(s float32) { p.scale = math.Vec2{X: s, Y: s} }

// SetScaleX sets the horizontal scale only.
func (p *placement) SetScaleX(x float32) { p.scale.X = x }

// SetScaleY sets the vertical scale only.
func (p *placement) SetScaleY(y float32) { p.scale.Y = y }

// Scale returns the scale factors.
func (p *placement) Scale() math.Vec2 { return p.scale }
