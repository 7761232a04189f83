package render

import (
	"github.com/Faultbox/compose/internal/engine/gpu"
	"github.com/Faultbox/compose/pkg/math"
)

// TransformRectangle draws a pixel region of an atlas texture as an
// axis-aligned quad. It has position and scale but no rotation or center,
// so its bound rectangle is always exact.
type TransformRectangle struct {
	Base
	placement
	rect math.Rectangle
}

var _ Transformable = (*TransformRectangle)(nil)

// NewTransformRectangle returns an empty rectangle transformable. Set a
// texture before calling SetVertexRectangle.
func NewTransformRectangle() *TransformRectangle {
	return &TransformRectangle{
		Base:      newBase(),
		placement: newPlacement(),
	}
}

// SetVertexRectangle selects the texture region rect (in pixels) and builds
// a quad covering [0,rect.Width]x[0,rect.Height] in local space. Texture
// coordinates are inset by half a texel on every edge so linear filtering
// never samples neighboring atlas tiles.
//
// The texture must have non-zero width and height.
func (t *TransformRectangle) SetVertexRectangle(rect math.Rectangle) {
	tw, th := float32(t.texture.Width()), float32(t.texture.Height())
	if tw == 0 || th == 0 {
		panic("render: SetVertexRectangle requires a texture with non-zero size")
	}
	t.rect = rect

	l := (rect.Left() + 0.5) / tw
	r := (rect.Right() - 0.5) / tw
	top := (rect.Top() + 0.5) / th
	b := (rect.Bottom() - 0.5) / th
	t.vertices = quad(rect.Width, rect.Height, l, top, r, b)
}

// quad returns two triangles covering [0,w]x[0,h] with the given texture
// coordinates at the left, top, right and bottom edges.
func quad(w, h, l, t, r, b float32) *gpu.VertexArray {
	vert := func(x, y, u, v float32) gpu.Vertex {
		return gpu.Vertex{Position: math.Vec2{X: x, Y: y}, UV: math.Vec2{X: u, Y: v}}
	}
	return gpu.NewVertexArray([]gpu.Vertex{
		vert(0, 0, l, t), vert(0, h, l, b), vert(w, h, r, b),
		vert(0, 0, l, t), vert(w, h, r, b), vert(w, 0, r, t),
	})
}

// Rectangle returns the texture region.
func (t *TransformRectangle) Rectangle() math.Rectangle { return t.rect }

// BoundRectangle returns the on-target area covered by the quad.
func (t *TransformRectangle) BoundRectangle() math.Rectangle {
	return CalculateBoundRectangle(t.rect, t)
}

// IsInside reports whether pt lies inside the bound rectangle.
func (t *TransformRectangle) IsInside(pt math.Vec2) bool {
	return t.BoundRectangle().IsInside(pt)
}

// SetSizeRectangle scales the quad so it covers target's size. The texture
// region is unchanged.
func (t *TransformRectangle) SetSizeRectangle(target math.Rectangle) {
	t.SetScale(math.Vec2{
		X: target.Width / t.rect.Width,
		Y: target.Height / t.rect.Height,
	})
}

// CalculateBoundRectangle returns rect moved to t's position and resized by
// t's scale, i.e. what t.BoundRectangle would return if t showed rect.
func CalculateBoundRectangle(rect math.Rectangle, t *TransformRectangle) math.Rectangle {
	out := rect
	out.SetPosition(t.Position())
	out.SetSize(rect.Size().Mul(t.Scale()))
	return out
}

// Transformation returns Translate(position) * Scale(scale).
func (t *TransformRectangle) Transformation() math.Mat4 {
	return math.Translate(t.position.X, t.position.Y, 0).
		Mul(math.Scale(t.scale.X, t.scale.Y, 1))
}

// Draw submits the quad to target.
func (t *TransformRectangle) Draw(target RenderTarget, state RenderState) {
	t.draw(target, state, t.Transformation())
}
