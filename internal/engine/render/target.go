package render

import (
	"go.uber.org/zap"

	"github.com/Faultbox/compose/internal/engine/gpu"
	"github.com/Faultbox/compose/internal/logger"
	"github.com/Faultbox/compose/pkg/math"
)

// Target is the shared render-target state: which framebuffer to draw into,
// its size and the view matrix applied on top of every draw. The zero Target
// is inert; every method on it is a no-op.
type Target struct {
	device      gpu.Device
	framebuffer gpu.FramebufferID
	width       int
	height      int
	view        math.Mat4
}

var _ RenderTarget = (*Target)(nil)

// NewTarget returns a target drawing into fb. The view starts as DefaultView.
func NewTarget(dev gpu.Device, fb gpu.FramebufferID, width, height int) Target {
	return Target{
		device:      dev,
		framebuffer: fb,
		width:       width,
		height:      height,
		view:        DefaultView(width, height),
	}
}

// NewScreen returns a target for the default (on-screen) framebuffer.
func NewScreen(dev gpu.Device, width, height int) *Target {
	t := NewTarget(dev, gpu.DefaultFramebuffer, width, height)
	return &t
}

// DefaultView maps pixel coordinates to clip space with the origin at the
// top-left corner and y pointing down.
func DefaultView(width, height int) math.Mat4 {
	return math.Ortho(0, float32(width), float32(height), 0, -1, 1)
}

// Width returns the target width in pixels.
func (t *Target) Width() int { return t.width }

// Height returns the target height in pixels.
func (t *Target) Height() int { return t.height }

// View returns the view matrix.
func (t *Target) View() math.Mat4 { return t.view }

// SetView replaces the view matrix, e.g. with a perspective camera for
// 3D transformables.
func (t *Target) SetView(view math.Mat4) { t.view = view }

// Resize changes the target size and resets the view to DefaultView.
func (t *Target) Resize(width, height int) {
	t.width = width
	t.height = height
	t.view = DefaultView(width, height)
}

// Bind makes this target the device's destination.
func (t *Target) Bind() {
	if t.device == nil {
		return
	}
	t.device.BindFramebuffer(t.framebuffer, t.width, t.height)
}

// Clear fills the target with c.
func (t *Target) Clear(c math.Vec4) {
	if t.device == nil {
		return
	}
	t.Bind()
	t.device.Clear(c)
}

// DrawVertices submits va immediately. An empty array draws nothing.
func (t *Target) DrawVertices(va *gpu.VertexArray, state RenderState) {
	if t.device == nil || va.Len() == 0 {
		return
	}
	t.Bind()
	t.device.Draw(gpu.DrawCall{
		Transform: t.view.Mul(state.Transform),
		Blend:     state.Blend,
		Texture:   state.Texture.ID(),
		Color:     state.Color,
		Vertices:  va.Vertices(),
	})
	logger.Debug("draw submitted",
		zap.Uint32("framebuffer", uint32(t.framebuffer)),
		zap.Int("vertices", va.Len()),
		zap.Uint32("texture", uint32(state.Texture.ID())),
	)
}
