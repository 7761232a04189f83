package render

import (
	"github.com/Faultbox/compose/internal/engine/gpu"
	"github.com/Faultbox/compose/pkg/math"
)

// Transform2D is a 2D object with position, rotation around a center, and
// scale. The center is only the rotation pivot; it does not offset the
// geometry.
type Transform2D struct {
	Base
	placement
	rotation float32
	center   math.Vec2
}

var _ Transformable = (*Transform2D)(nil)

// NewTransform2D returns an untransformed, white, alpha-blended object.
func NewTransform2D() *Transform2D {
	return &Transform2D{
		Base:      newBase(),
		placement: newPlacement(),
	}
}

// SetVertexArray sets the geometry in local space.
func (t *Transform2D) SetVertexArray(va *gpu.VertexArray) { t.vertices = va }

// Rotate adds angle (radians) to the rotation.
func (t *Transform2D) Rotate(angle float32) { t.rotation += angle }

// SetRotation sets the rotation in radians.
func (t *Transform2D) SetRotation(angle float32) { t.rotation = angle }

// Rotation returns the rotation in radians.
func (t *Transform2D) Rotation() float32 { return t.rotation }

// SetCenter sets the rotation pivot in local space.
func (t *Transform2D) SetCenter(c math.Vec2) { t.center = c }

// Center returns the rotation pivot.
func (t *Transform2D) Center() math.Vec2 { return t.center }

// Transformation returns Translate(position) * RotateAround(center, rotation) * Scale(scale).
func (t *Transform2D) Transformation() math.Mat4 {
	return math.Translate(t.position.X, t.position.Y, 0).
		Mul(math.RotateAround(t.center, t.rotation)).
		Mul(math.Scale(t.scale.X, t.scale.Y, 1))
}

// Draw submits the geometry to target.
func (t *Transform2D) Draw(target RenderTarget, state RenderState) {
	t.draw(target, state, t.Transformation())
}
