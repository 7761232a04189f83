package gpu

import (
	"fmt"
	"image"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/image/draw"

	"github.com/Faultbox/compose/internal/logger"
)

// Texture is a shared, reference-counted GPU texture. The creator holds the
// first reference; every Retain must be paired with a Release, and the last
// Release deletes the native texture.
//
// Transformables and render states hold a *Texture without owning a
// reference: keeping it alive is up to whoever created or retained it.
// A nil *Texture is the empty texture (zero size, id 0).
type Texture struct {
	device Device
	id     TextureID
	width  int
	height int
	refs   atomic.Int32
}

// NewTexture allocates a texture on dev. pixels may be nil (uninitialized
// storage, as used for render targets) or hold width*height RGBA8 pixels.
func NewTexture(dev Device, width, height int, pixels []byte, filter Filter) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("texture size %dx%d must be positive", width, height)
	}
	if pixels != nil && len(pixels) != width*height*4 {
		return nil, fmt.Errorf("texture %dx%d: got %d bytes of pixel data, want %d",
			width, height, len(pixels), width*height*4)
	}

	t := &Texture{
		device: dev,
		id:     dev.CreateTexture(width, height, pixels, filter),
		width:  width,
		height: height,
	}
	t.refs.Store(1)

	logger.Debug("texture created",
		zap.Uint32("id", uint32(t.id)),
		zap.Int("width", width),
		zap.Int("height", height),
	)
	return t, nil
}

// NewTextureFromImage uploads img, converting it to RGBA8 when needed.
func NewTextureFromImage(dev Device, img image.Image, filter Filter) (*Texture, error) {
	rgba := ImageToRGBA(img)
	b := rgba.Bounds()
	return NewTexture(dev, b.Dx(), b.Dy(), rgba.Pix, filter)
}

// ImageToRGBA returns img as a tightly packed *image.RGBA anchored at (0,0).
func ImageToRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) && rgba.Stride == 4*b.Dx() {
		return rgba
	}
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// Retain adds a reference and returns t for chaining.
func (t *Texture) Retain() *Texture {
	if t != nil {
		t.refs.Add(1)
	}
	return t
}

// Release drops a reference. The native texture is deleted when the count
// reaches zero; releasing a dead texture does nothing.
func (t *Texture) Release() {
	if t == nil {
		return
	}
	for {
		n := t.refs.Load()
		if n <= 0 {
			return
		}
		if t.refs.CompareAndSwap(n, n-1) {
			if n == 1 {
				logger.Debug("texture deleted", zap.Uint32("id", uint32(t.id)))
				t.device.DeleteTexture(t.id)
				t.id = 0
			}
			return
		}
	}
}

// ID returns the native handle, or 0 for an empty or deleted texture.
func (t *Texture) ID() TextureID {
	if t == nil {
		return 0
	}
	return t.id
}

// Width returns the width in pixels.
func (t *Texture) Width() int {
	if t == nil {
		return 0
	}
	return t.width
}

// Height returns the height in pixels.
func (t *Texture) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// Refs returns the current reference count.
func (t *Texture) Refs() int {
	if t == nil {
		return 0
	}
	return int(t.refs.Load())
}
