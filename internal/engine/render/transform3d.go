package render

import (
	"github.com/Faultbox/compose/internal/engine/gpu"
	"github.com/Faultbox/compose/pkg/math"
)

// Transform3D is an object whose model matrix is supplied directly, for
// callers that already have one (skinned meshes, billboards).
type Transform3D struct {
	Base
	transformation math.Mat4
}

var _ Transformable = (*Transform3D)(nil)

// NewTransform3D returns an object with an identity transformation.
func NewTransform3D() *Transform3D {
	return &Transform3D{
		Base:           newBase(),
		transformation: math.Identity(),
	}
}

// SetVertexArray sets the geometry in local space.
func (t *Transform3D) SetVertexArray(va *gpu.VertexArray) { t.vertices = va }

// SetTransformation replaces the model matrix.
func (t *Transform3D) SetTransformation(m math.Mat4) { t.transformation = m }

// Transformation returns the model matrix as set.
func (t *Transform3D) Transformation() math.Mat4 { return t.transformation }

// Draw submits the geometry to target.
func (t *Transform3D) Draw(target RenderTarget, state RenderState) {
	t.draw(target, state, t.transformation)
}
