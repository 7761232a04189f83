package ebitengpu

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Faultbox/compose/internal/engine/gpu"
	"github.com/Faultbox/compose/pkg/math"
)

func TestClipToPixel(t *testing.T) {
	tests := []struct {
		clip math.Vec2
		x, y float32
	}{
		{math.Vec2{X: -1, Y: 1}, 0, 0},
		{math.Vec2{X: 1, Y: -1}, 200, 100},
		{math.Vec2{X: 0, Y: 0}, 100, 50},
	}
	for _, tt := range tests {
		x, y := clipToPixel(tt.clip, 200, 100)
		if x != tt.x || y != tt.y {
			t.Errorf("clipToPixel(%v) = (%v, %v), want (%v, %v)", tt.clip, x, y, tt.x, tt.y)
		}
	}
}

func TestUVToSource(t *testing.T) {
	bounds := image.Rect(10, 20, 50, 40)

	x, y := uvToSource(math.Vec2{X: 0.5, Y: 0.25}, bounds, false)
	if x != 30 || y != 25 {
		t.Errorf("uploaded texture: got (%v, %v), want (30, 25)", x, y)
	}

	x, y = uvToSource(math.Vec2{X: 0.5, Y: 0.25}, bounds, true)
	if x != 30 || y != 35 {
		t.Errorf("render texture: got (%v, %v), want (30, 35)", x, y)
	}
}

func TestPremultiply(t *testing.T) {
	got := premultiply([]byte{255, 128, 0, 128, 10, 20, 30, 255})
	want := []byte{128, 64, 0, 128, 10, 20, 30, 255}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("premultiply = %v, want %v", got, want)
		}
	}
}

func TestToColorClamps(t *testing.T) {
	c := toColor(math.Vec4{-1, 0.5, 2, 1})
	if c.R != 0 || c.G != 128 || c.B != 255 || c.A != 255 {
		t.Errorf("toColor = %+v", c)
	}
}

func TestEbitenBlend(t *testing.T) {
	if got := ebitenBlend(gpu.BlendAlpha); got != ebiten.BlendSourceOver {
		t.Errorf("alpha maps to %+v, want BlendSourceOver", got)
	}
	if got := ebitenBlend(gpu.BlendAdd); got != ebiten.BlendLighter {
		t.Errorf("add maps to %+v, want BlendLighter", got)
	}
	if got := ebitenBlend(gpu.BlendReplace); got != ebiten.BlendCopy {
		t.Errorf("replace maps to %+v, want BlendCopy", got)
	}
	sub := ebitenBlend(gpu.BlendSubtract)
	if sub.BlendOperationRGB != ebiten.BlendOperationReverseSubtract {
		t.Errorf("subtract uses operation %v", sub.BlendOperationRGB)
	}
}

func TestFramebufferBookkeeping(t *testing.T) {
	d := New()

	fb := d.CreateFramebuffer()
	if err := d.FramebufferStatus(fb); err == nil {
		t.Error("framebuffer without color attachment reported complete")
	}

	tex := d.CreateTexture(16, 8, nil, gpu.FilterLinear)
	d.AttachColorTexture(fb, tex)
	rb := d.CreateRenderbuffer(16, 8)
	d.AttachDepthStencil(fb, rb)

	if err := d.FramebufferStatus(fb); err != nil {
		t.Errorf("complete framebuffer reported %v", err)
	}
	if img := d.Image(tex); img == nil || img.Bounds().Dx() != 16 || img.Bounds().Dy() != 8 {
		t.Error("color texture image missing or wrong size")
	}
	if !d.textures[tex].target {
		t.Error("attached texture not marked as render target")
	}

	d.BindFramebuffer(fb, 16, 8)
	if d.destination() != d.Image(tex) {
		t.Error("bound framebuffer does not draw into its color texture")
	}

	d.DeleteFramebuffer(fb)
	if d.bound != gpu.DefaultFramebuffer {
		t.Error("deleting the bound framebuffer should rebind the screen")
	}
	d.DeleteRenderbuffer(rb)
	d.DeleteTexture(tex)
	if len(d.textures) != 0 || len(d.framebuffers) != 0 || len(d.renderbuffers) != 0 {
		t.Error("objects left after deletion")
	}
}

func TestDrawWithoutScreenIsIgnored(t *testing.T) {
	d := New()
	d.Draw(gpu.DrawCall{
		Transform: math.Identity(),
		Blend:     gpu.BlendAlpha,
		Color:     math.Vec4{1, 1, 1, 1},
		Vertices:  make([]gpu.Vertex, 3),
	})
	if len(d.vertices) != 0 {
		t.Error("draw without a destination built vertices")
	}
}
