// Package ebitengpu implements gpu.Device on top of ebiten images, so the
// composition layer can run inside an ebiten game loop.
package ebitengpu

import (
	"errors"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/compose/internal/engine/gpu"
	"github.com/Faultbox/compose/internal/logger"
	"github.com/Faultbox/compose/pkg/math"
)

type texture struct {
	img    *ebiten.Image
	filter gpu.Filter
	// target is set once the texture is attached to a framebuffer. Such
	// textures are sampled bottom-up, like an OpenGL render texture.
	target bool
}

type framebuffer struct {
	color        gpu.TextureID
	depthStencil gpu.RenderbufferID
}

// Device maps handles to ebiten images. Depth/stencil renderbuffers are
// tracked for ownership only; ebiten has no depth buffer.
type Device struct {
	textures      map[gpu.TextureID]*texture
	framebuffers  map[gpu.FramebufferID]*framebuffer
	renderbuffers map[gpu.RenderbufferID]struct{}

	screen *ebiten.Image
	white  *ebiten.Image

	next  uint32
	bound gpu.FramebufferID

	vertices []ebiten.Vertex
	indices  []uint32
}

var _ gpu.Device = (*Device)(nil)

// New returns an empty device. Call SetScreen every frame before drawing
// to the default framebuffer.
func New() *Device {
	white := ebiten.NewImage(3, 3)
	white.Fill(imageWhite)

	return &Device{
		textures:      make(map[gpu.TextureID]*texture),
		framebuffers:  make(map[gpu.FramebufferID]*framebuffer),
		renderbuffers: make(map[gpu.RenderbufferID]struct{}),
		// Sampling the center pixel avoids bleeding at the sub-image edge.
		white: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// SetScreen sets the image backing the default framebuffer.
func (d *Device) SetScreen(screen *ebiten.Image) {
	d.screen = screen
}

// Image returns the ebiten image behind a texture handle, or nil.
func (d *Device) Image(id gpu.TextureID) *ebiten.Image {
	if t, ok := d.textures[id]; ok {
		return t.img
	}
	return nil
}

func (d *Device) alloc() uint32 {
	d.next++
	return d.next
}

func (d *Device) CreateTexture(width, height int, pixels []byte, filter gpu.Filter) gpu.TextureID {
	img := ebiten.NewImage(width, height)
	if len(pixels) > 0 {
		img.WritePixels(premultiply(pixels))
	}
	id := gpu.TextureID(d.alloc())
	d.textures[id] = &texture{img: img, filter: filter}
	return id
}

func (d *Device) DeleteTexture(id gpu.TextureID) {
	t, ok := d.textures[id]
	if !ok {
		logger.Warn("deleting unknown texture", zap.Uint32("id", uint32(id)))
		return
	}
	t.img.Deallocate()
	delete(d.textures, id)
}

func (d *Device) CreateFramebuffer() gpu.FramebufferID {
	id := gpu.FramebufferID(d.alloc())
	d.framebuffers[id] = &framebuffer{}
	return id
}

func (d *Device) DeleteFramebuffer(id gpu.FramebufferID) {
	if d.bound == id {
		d.bound = gpu.DefaultFramebuffer
	}
	delete(d.framebuffers, id)
}

func (d *Device) CreateRenderbuffer(width, height int) gpu.RenderbufferID {
	id := gpu.RenderbufferID(d.alloc())
	d.renderbuffers[id] = struct{}{}
	return id
}

func (d *Device) DeleteRenderbuffer(id gpu.RenderbufferID) {
	delete(d.renderbuffers, id)
}

func (d *Device) AttachColorTexture(fb gpu.FramebufferID, tex gpu.TextureID) {
	f, ok := d.framebuffers[fb]
	if !ok {
		return
	}
	f.color = tex
	if t, ok := d.textures[tex]; ok {
		t.target = true
	}
}

func (d *Device) AttachDepthStencil(fb gpu.FramebufferID, rb gpu.RenderbufferID) {
	if f, ok := d.framebuffers[fb]; ok {
		f.depthStencil = rb
	}
}

func (d *Device) FramebufferStatus(fb gpu.FramebufferID) error {
	f, ok := d.framebuffers[fb]
	if !ok {
		return fmt.Errorf("unknown framebuffer %d", fb)
	}
	if _, ok := d.textures[f.color]; !ok {
		return errors.New("missing color attachment")
	}
	return nil
}

// BindFramebuffer selects the destination image. The size is implied by the
// image itself.
func (d *Device) BindFramebuffer(fb gpu.FramebufferID, width, height int) {
	d.bound = fb
}

func (d *Device) destination() *ebiten.Image {
	if d.bound == gpu.DefaultFramebuffer {
		return d.screen
	}
	f, ok := d.framebuffers[d.bound]
	if !ok {
		return nil
	}
	if t, ok := d.textures[f.color]; ok {
		return t.img
	}
	return nil
}

func (d *Device) Clear(c math.Vec4) {
	dst := d.destination()
	if dst == nil {
		return
	}
	dst.Fill(toColor(c))
}

func (d *Device) Draw(call gpu.DrawCall) {
	dst := d.destination()
	// Triangle lists only; a trailing partial triangle is dropped.
	n := len(call.Vertices) - len(call.Vertices)%3
	if dst == nil || n == 0 {
		return
	}

	src := d.white
	flipped := false
	filter := ebiten.FilterNearest
	if t, ok := d.textures[call.Texture]; ok {
		src = t.img
		flipped = t.target
		if t.filter == gpu.FilterLinear {
			filter = ebiten.FilterLinear
		}
	}

	dw, dh := dst.Bounds().Dx(), dst.Bounds().Dy()
	sb := src.Bounds()

	d.vertices = d.vertices[:0]
	d.indices = d.indices[:0]
	for i, v := range call.Vertices[:n] {
		clip := call.Transform.TransformVec2(v.Position)
		dx, dy := clipToPixel(clip, dw, dh)
		sx, sy := uvToSource(v.UV, sb, flipped)
		if src == d.white {
			sx, sy = float32(sb.Min.X)+0.5, float32(sb.Min.Y)+0.5
		}
		d.vertices = append(d.vertices, ebiten.Vertex{
			DstX:   dx,
			DstY:   dy,
			SrcX:   sx,
			SrcY:   sy,
			ColorR: call.Color[0],
			ColorG: call.Color[1],
			ColorB: call.Color[2],
			ColorA: call.Color[3],
		})
		d.indices = append(d.indices, uint32(i))
	}

	var op ebiten.DrawTrianglesOptions
	op.Blend = ebitenBlend(call.Blend)
	op.Filter = filter
	dst.DrawTriangles32(d.vertices, d.indices, src, &op)
}
