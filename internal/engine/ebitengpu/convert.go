package ebitengpu

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Faultbox/compose/internal/engine/gpu"
	"github.com/Faultbox/compose/pkg/math"
)

var imageWhite = color.White

// clipToPixel maps clip space (y up) to image pixels (y down).
func clipToPixel(p math.Vec2, width, height int) (float32, float32) {
	x := (p.X + 1) / 2 * float32(width)
	y := (1 - p.Y) / 2 * float32(height)
	return x, y
}

// uvToSource maps a texture coordinate to source pixels inside bounds.
// Uploaded textures store their first row at v=0. Render textures hold
// clip-space y=+1 in their first row, so v is flipped to match OpenGL.
func uvToSource(uv math.Vec2, bounds image.Rectangle, flipped bool) (float32, float32) {
	w, h := float32(bounds.Dx()), float32(bounds.Dy())
	v := uv.Y
	if flipped {
		v = 1 - v
	}
	return float32(bounds.Min.X) + uv.X*w, float32(bounds.Min.Y) + v*h
}

func toColor(c math.Vec4) color.NRGBA {
	return color.NRGBA{R: to8(c[0]), G: to8(c[1]), B: to8(c[2]), A: to8(c[3])}
}

func to8(f float32) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 1:
		return 255
	default:
		return uint8(f*255 + 0.5)
	}
}

// premultiply converts straight RGBA8 to the premultiplied form ebiten
// expects from WritePixels.
func premultiply(pixels []byte) []byte {
	out := make([]byte, len(pixels))
	for i := 0; i+3 < len(pixels); i += 4 {
		a := uint32(pixels[i+3])
		out[i] = uint8((uint32(pixels[i])*a + 127) / 255)
		out[i+1] = uint8((uint32(pixels[i+1])*a + 127) / 255)
		out[i+2] = uint8((uint32(pixels[i+2])*a + 127) / 255)
		out[i+3] = uint8(a)
	}
	return out
}

// ebitenBlend converts b for ebiten's premultiplied pipeline: a source
// alpha factor on the color term is already folded into the source.
func ebitenBlend(b gpu.BlendMode) ebiten.Blend {
	src := b.SrcRGB
	if src == gpu.FactorSrcAlpha {
		src = gpu.FactorOne
	}
	op := ebitenOperation(b.Equation)
	return ebiten.Blend{
		BlendFactorSourceRGB:        ebitenFactor(src),
		BlendFactorSourceAlpha:      ebitenFactor(b.SrcAlpha),
		BlendFactorDestinationRGB:   ebitenFactor(b.DstRGB),
		BlendFactorDestinationAlpha: ebitenFactor(b.DstAlpha),
		BlendOperationRGB:           op,
		BlendOperationAlpha:         op,
	}
}

func ebitenOperation(e gpu.BlendEquation) ebiten.BlendOperation {
	switch e {
	case gpu.EquationSubtract:
		return ebiten.BlendOperationSubtract
	case gpu.EquationReverseSubtract:
		return ebiten.BlendOperationReverseSubtract
	default:
		return ebiten.BlendOperationAdd
	}
}

func ebitenFactor(f gpu.BlendFactor) ebiten.BlendFactor {
	switch f {
	case gpu.FactorZero:
		return ebiten.BlendFactorZero
	case gpu.FactorOne:
		return ebiten.BlendFactorOne
	case gpu.FactorSrcColor:
		return ebiten.BlendFactorSourceColor
	case gpu.FactorOneMinusSrcColor:
		return ebiten.BlendFactorOneMinusSourceColor
	case gpu.FactorDstColor:
		return ebiten.BlendFactorDestinationColor
	case gpu.FactorOneMinusDstColor:
		return ebiten.BlendFactorOneMinusDestinationColor
	case gpu.FactorSrcAlpha:
		return ebiten.BlendFactorSourceAlpha
	case gpu.FactorOneMinusSrcAlpha:
		return ebiten.BlendFactorOneMinusSourceAlpha
	case gpu.FactorDstAlpha:
		return ebiten.BlendFactorDestinationAlpha
	case gpu.FactorOneMinusDstAlpha:
		return ebiten.BlendFactorOneMinusDestinationAlpha
	default:
		return ebiten.BlendFactorOne
	}
}
