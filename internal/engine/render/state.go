// Package render composes drawable objects into draw submissions.
//
// A transformable combines its own color, texture, blend mode and geometry
// with a transform. Drawing it into a RenderTarget resolves a RenderState
// (inherited transform times own transform; own color, blend mode and
// texture) and submits the geometry synchronously, in call order.
//
// There is no scene graph: each transformable is independent. To nest
// objects, pass the parent's resolved state as the child's inherited state.
package render

import (
	"github.com/Faultbox/compose/internal/engine/gpu"
	"github.com/Faultbox/compose/pkg/color"
	"github.com/Faultbox/compose/pkg/math"
)

// RenderState is the resolved state active when geometry is submitted.
// Texture is a non-owning reference.
type RenderState struct {
	Transform math.Mat4
	Blend     gpu.BlendMode
	Texture   *gpu.Texture
	Color     math.Vec4
}

// DefaultRenderState is the root state: identity transform, alpha blending,
// no texture, opaque white.
func DefaultRenderState() RenderState {
	return RenderState{
		Transform: math.Identity(),
		Blend:     gpu.BlendAlpha,
		Color:     color.White,
	}
}

// Drawable is anything that can render itself into a target. Draw must not
// retain or modify state.
type Drawable interface {
	Draw(target RenderTarget, state RenderState)
}

// RenderTarget is a destination for geometry.
type RenderTarget interface {
	// DrawVertices submits va with a fully resolved state.
	DrawVertices(va *gpu.VertexArray, state RenderState)
	Width() int
	Height() int
}
