// Package gpu defines the graphics-context collaborator used by the
// composition layer: native handle types, the Device contract, blend modes,
// vertex data and shared textures.
//
// All Device calls must be made from the thread that owns the graphics
// context. Nothing in this package synchronizes access.
package gpu

import "github.com/Faultbox/compose/pkg/math"

// Native handle types. Zero means "no object".
type (
	TextureID      uint32
	FramebufferID  uint32
	RenderbufferID uint32
)

// DefaultFramebuffer is the on-screen surface.
const DefaultFramebuffer FramebufferID = 0

// Filter selects texture sampling.
type Filter int

const (
	FilterLinear Filter = iota
	FilterNearest
)

// DrawCall is one submission of geometry with fully resolved state.
// Transform maps vertex positions to clip space.
type DrawCall struct {
	Transform math.Mat4
	Blend     BlendMode
	Texture   TextureID // 0 draws untextured
	Color     math.Vec4
	Vertices  []Vertex
}

// Device allocates GPU objects and submits draws.
type Device interface {
	// CreateTexture allocates a width x height RGBA8 texture. pixels may be
	// nil, otherwise it holds width*height*4 bytes, rows top to bottom.
	CreateTexture(width, height int, pixels []byte, filter Filter) TextureID
	DeleteTexture(id TextureID)

	CreateFramebuffer() FramebufferID
	DeleteFramebuffer(id FramebufferID)

	// CreateRenderbuffer allocates combined depth24/stencil8 storage.
	CreateRenderbuffer(width, height int) RenderbufferID
	DeleteRenderbuffer(id RenderbufferID)

	AttachColorTexture(fb FramebufferID, tex TextureID)
	AttachDepthStencil(fb FramebufferID, rb RenderbufferID)

	// FramebufferStatus returns nil when fb is complete.
	FramebufferStatus(fb FramebufferID) error

	// BindFramebuffer makes fb the destination of Clear and Draw and sets the
	// viewport to width x height.
	BindFramebuffer(fb FramebufferID, width, height int)
	Clear(color math.Vec4)
	Draw(call DrawCall)
}
