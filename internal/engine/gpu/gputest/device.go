// Package gputest provides a recording gpu.Device for tests that run without
// a graphics context.
package gputest

import (
	"errors"
	"fmt"

	"github.com/Faultbox/compose/internal/engine/gpu"
	"github.com/Faultbox/compose/pkg/math"
)

// TextureInfo describes a live texture.
type TextureInfo struct {
	Width, Height int
	Filter        gpu.Filter
	Pixels        []byte
}

// FramebufferInfo describes a live framebuffer and its attachments.
type FramebufferInfo struct {
	Color        gpu.TextureID
	DepthStencil gpu.RenderbufferID
}

// Draw is a recorded draw call with the framebuffer it was issued against.
type Draw struct {
	Framebuffer gpu.FramebufferID
	Width       int
	Height      int
	Call        gpu.DrawCall
}

// Clear is a recorded clear.
type Clear struct {
	Framebuffer gpu.FramebufferID
	Color       math.Vec4
}

// Device records every call. Handles are allocated from a single counter
// starting at 1, so handles are unique across object kinds.
type Device struct {
	// ForceIncomplete makes FramebufferStatus report failure.
	ForceIncomplete bool

	Textures      map[gpu.TextureID]TextureInfo
	Framebuffers  map[gpu.FramebufferID]*FramebufferInfo
	Renderbuffers map[gpu.RenderbufferID][2]int

	// Calls lists method names in call order.
	Calls  []string
	Draws  []Draw
	Clears []Clear

	// BadDeletes records deletes of handles that were not live: zero
	// handles, double frees, or handles the device never issued.
	BadDeletes []string

	next  uint32
	bound gpu.FramebufferID
	w, h  int
}

var _ gpu.Device = (*Device)(nil)

// NewDevice returns an empty recording device.
func NewDevice() *Device {
	return &Device{
		Textures:      make(map[gpu.TextureID]TextureInfo),
		Framebuffers:  make(map[gpu.FramebufferID]*FramebufferInfo),
		Renderbuffers: make(map[gpu.RenderbufferID][2]int),
	}
}

func (d *Device) alloc() uint32 {
	d.next++
	return d.next
}

func (d *Device) record(format string, args ...any) {
	d.Calls = append(d.Calls, fmt.Sprintf(format, args...))
}

// Live returns the number of live objects of every kind.
func (d *Device) Live() int {
	return len(d.Textures) + len(d.Framebuffers) + len(d.Renderbuffers)
}

func (d *Device) CreateTexture(width, height int, pixels []byte, filter gpu.Filter) gpu.TextureID {
	id := gpu.TextureID(d.alloc())
	d.Textures[id] = TextureInfo{Width: width, Height: height, Filter: filter, Pixels: pixels}
	d.record("CreateTexture %d", id)
	return id
}

func (d *Device) DeleteTexture(id gpu.TextureID) {
	d.record("DeleteTexture %d", id)
	if _, ok := d.Textures[id]; !ok {
		d.BadDeletes = append(d.BadDeletes, fmt.Sprintf("texture %d", id))
		return
	}
	delete(d.Textures, id)
}

func (d *Device) CreateFramebuffer() gpu.FramebufferID {
	id := gpu.FramebufferID(d.alloc())
	d.Framebuffers[id] = &FramebufferInfo{}
	d.record("CreateFramebuffer %d", id)
	return id
}

func (d *Device) DeleteFramebuffer(id gpu.FramebufferID) {
	d.record("DeleteFramebuffer %d", id)
	if _, ok := d.Framebuffers[id]; !ok {
		d.BadDeletes = append(d.BadDeletes, fmt.Sprintf("framebuffer %d", id))
		return
	}
	delete(d.Framebuffers, id)
}

func (d *Device) CreateRenderbuffer(width, height int) gpu.RenderbufferID {
	id := gpu.RenderbufferID(d.alloc())
	d.Renderbuffers[id] = [2]int{width, height}
	d.record("CreateRenderbuffer %d", id)
	return id
}

func (d *Device) DeleteRenderbuffer(id gpu.RenderbufferID) {
	d.record("DeleteRenderbuffer %d", id)
	if _, ok := d.Renderbuffers[id]; !ok {
		d.BadDeletes = append(d.BadDeletes, fmt.Sprintf("renderbuffer %d", id))
		return
	}
	delete(d.Renderbuffers, id)
}

func (d *Device) AttachColorTexture(fb gpu.FramebufferID, tex gpu.TextureID) {
	d.record("AttachColorTexture %d %d", fb, tex)
	if info, ok := d.Framebuffers[fb]; ok {
		info.Color = tex
	}
}

func (d *Device) AttachDepthStencil(fb gpu.FramebufferID, rb gpu.RenderbufferID) {
	d.record("AttachDepthStencil %d %d", fb, rb)
	if info, ok := d.Framebuffers[fb]; ok {
		info.DepthStencil = rb
	}
}

func (d *Device) FramebufferStatus(fb gpu.FramebufferID) error {
	d.record("FramebufferStatus %d", fb)
	if d.ForceIncomplete {
		return errors.New("forced incomplete")
	}
	info, ok := d.Framebuffers[fb]
	if !ok {
		return fmt.Errorf("framebuffer %d does not exist", fb)
	}
	if _, ok := d.Textures[info.Color]; !ok {
		return errors.New("missing color attachment")
	}
	if _, ok := d.Renderbuffers[info.DepthStencil]; !ok {
		return errors.New("missing depth/stencil attachment")
	}
	return nil
}

func (d *Device) BindFramebuffer(fb gpu.FramebufferID, width, height int) {
	d.bound, d.w, d.h = fb, width, height
}

func (d *Device) Clear(color math.Vec4) {
	d.Clears = append(d.Clears, Clear{Framebuffer: d.bound, Color: color})
}

func (d *Device) Draw(call gpu.DrawCall) {
	d.Draws = append(d.Draws, Draw{Framebuffer: d.bound, Width: d.w, Height: d.h, Call: call})
}
