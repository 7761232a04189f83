// Package framebuffer provides offscreen render targets backed by a GPU
// framebuffer object with a color texture and a depth/stencil renderbuffer.
package framebuffer

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/compose/internal/engine/gpu"
	"github.com/Faultbox/compose/internal/engine/render"
	"github.com/Faultbox/compose/internal/logger"
)

// ErrIncomplete is returned by New when the device reports the framebuffer
// as incomplete.
var ErrIncomplete = errors.New("framebuffer incomplete")

// Framebuffer is an offscreen render target. It exclusively owns its
// framebuffer object and depth/stencil renderbuffer, and holds one
// reference to its color texture. Ownership moves with Move; a Framebuffer
// must not be copied.
type Framebuffer struct {
	noCopy noCopy

	render.Target

	device       gpu.Device
	fbo          gpu.FramebufferID
	depthStencil gpu.RenderbufferID
	color        *gpu.Texture
}

var (
	_ render.RenderTarget  = (*Framebuffer)(nil)
	_ render.TextureSource = (*Framebuffer)(nil)
)

// New creates a framebuffer with the specified dimensions. Sizes below 1 are
// clamped to 1. If the result is incomplete, everything allocated so far is
// released and an error wrapping ErrIncomplete is returned.
func New(dev gpu.Device, width, height int) (*Framebuffer, error) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	fb := &Framebuffer{device: dev}
	if err := fb.create(width, height); err != nil {
		fb.Destroy()
		return nil, fmt.Errorf("creating %dx%d framebuffer: %w", width, height, err)
	}
	fb.Target = render.NewTarget(dev, fb.fbo, width, height)

	logger.Debug("framebuffer created",
		zap.Uint32("fbo", uint32(fb.fbo)),
		zap.Uint32("color", uint32(fb.color.ID())),
		zap.Uint32("depth_stencil", uint32(fb.depthStencil)),
		zap.Int("width", width),
		zap.Int("height", height),
	)
	return fb, nil
}

func (fb *Framebuffer) create(width, height int) error {
	fb.fbo = fb.device.CreateFramebuffer()

	color, err := gpu.NewTexture(fb.device, width, height, nil, gpu.FilterLinear)
	if err != nil {
		return fmt.Errorf("color attachment: %w", err)
	}
	fb.color = color
	fb.device.AttachColorTexture(fb.fbo, color.ID())

	fb.depthStencil = fb.device.CreateRenderbuffer(width, height)
	fb.device.AttachDepthStencil(fb.fbo, fb.depthStencil)

	if err := fb.device.FramebufferStatus(fb.fbo); err != nil {
		logger.Error("framebuffer is not complete",
			zap.Int("width", width),
			zap.Int("height", height),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %w", ErrIncomplete, err)
	}
	return nil
}

// ColorTexture returns the texture holding everything drawn into fb. It
// stays valid while fb is alive; Retain it to outlive fb.
func (fb *Framebuffer) ColorTexture() *gpu.Texture {
	return fb.color
}

// Valid reports whether fb still owns its GPU objects.
func (fb *Framebuffer) Valid() bool {
	return fb.fbo != 0
}

// Move transfers every handle and the target state to a new Framebuffer.
// fb is left empty: drawing into it does nothing and Destroy issues no GPU
// calls.
func (fb *Framebuffer) Move() *Framebuffer {
	dst := &Framebuffer{
		Target:       fb.Target,
		device:       fb.device,
		fbo:          fb.fbo,
		depthStencil: fb.depthStencil,
		color:        fb.color,
	}
	fb.Target = render.Target{}
	fb.device = nil
	fb.fbo = 0
	fb.depthStencil = 0
	fb.color = nil
	return dst
}

// Resize reallocates fb's attachments at width x height and resets the view.
// Sizes below 1 are clamped to 1. The contents are lost, and the previous
// color texture is released, so sprites built from ColorTexture must be
// rebuilt. If the new attachments are incomplete, fb keeps its old ones and
// the error wraps ErrIncomplete.
func (fb *Framebuffer) Resize(width, height int) error {
	if !fb.Valid() {
		return errors.New("resizing a destroyed framebuffer")
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if width == fb.Width() && height == fb.Height() {
		return nil
	}

	next := &Framebuffer{device: fb.device}
	if err := next.create(width, height); err != nil {
		next.release()
		return fmt.Errorf("resizing framebuffer to %dx%d: %w", width, height, err)
	}

	fb.release()
	fb.fbo, next.fbo = next.fbo, 0
	fb.depthStencil, next.depthStencil = next.depthStencil, 0
	fb.color, next.color = next.color, nil
	fb.Target = render.NewTarget(fb.device, fb.fbo, width, height)

	logger.Debug("framebuffer resized",
		zap.Uint32("fbo", uint32(fb.fbo)),
		zap.Int("width", width),
		zap.Int("height", height),
	)
	return nil
}

// Destroy releases the framebuffer object, the renderbuffer and fb's
// reference to the color texture. It is safe to call more than once.
func (fb *Framebuffer) Destroy() {
	if fb.fbo == 0 && fb.depthStencil == 0 && fb.color == nil {
		return
	}
	logger.Debug("framebuffer destroyed", zap.Uint32("fbo", uint32(fb.fbo)))
	fb.release()
	fb.Target = render.Target{}
}

func (fb *Framebuffer) release() {
	if fb.fbo != 0 {
		fb.device.DeleteFramebuffer(fb.fbo)
		fb.fbo = 0
	}
	if fb.depthStencil != 0 {
		fb.device.DeleteRenderbuffer(fb.depthStencil)
		fb.depthStencil = 0
	}
	if fb.color != nil {
		fb.color.Release()
		fb.color = nil
	}
}

// noCopy makes go vet's copylocks check flag copies of a Framebuffer.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
