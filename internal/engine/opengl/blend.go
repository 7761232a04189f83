package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/compose/internal/engine/gpu"
)

func applyBlend(b gpu.BlendMode) {
	eq := glEquation(b.Equation)
	gl.BlendEquationSeparate(eq, eq)
	gl.BlendFuncSeparate(glFactor(b.SrcRGB), glFactor(b.DstRGB), glFactor(b.SrcAlpha), glFactor(b.DstAlpha))
}

func glEquation(e gpu.BlendEquation) uint32 {
	switch e {
	case gpu.EquationSubtract:
		return gl.FUNC_SUBTRACT
	case gpu.EquationReverseSubtract:
		return gl.FUNC_REVERSE_SUBTRACT
	default:
		return gl.FUNC_ADD
	}
}

func glFactor(f gpu.BlendFactor) uint32 {
	switch f {
	case gpu.FactorZero:
		return gl.ZERO
	case gpu.FactorOne:
		return gl.ONE
	case gpu.FactorSrcColor:
		return gl.SRC_COLOR
	case gpu.FactorOneMinusSrcColor:
		return gl.ONE_MINUS_SRC_COLOR
	case gpu.FactorDstColor:
		return gl.DST_COLOR
	case gpu.FactorOneMinusDstColor:
		return gl.ONE_MINUS_DST_COLOR
	case gpu.FactorSrcAlpha:
		return gl.SRC_ALPHA
	case gpu.FactorOneMinusSrcAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	case gpu.FactorDstAlpha:
		return gl.DST_ALPHA
	case gpu.FactorOneMinusDstAlpha:
		return gl.ONE_MINUS_DST_ALPHA
	default:
		return gl.ONE
	}
}
