package gpu

import "fmt"

// BlendEquation combines the source and destination terms.
type BlendEquation int

const (
	EquationAdd BlendEquation = iota
	EquationSubtract
	EquationReverseSubtract
)

// BlendFactor scales a source or destination term.
type BlendFactor int

const (
	FactorZero BlendFactor = iota
	FactorOne
	FactorSrcColor
	FactorOneMinusSrcColor
	FactorDstColor
	FactorOneMinusDstColor
	FactorSrcAlpha
	FactorOneMinusSrcAlpha
	FactorDstAlpha
	FactorOneMinusDstAlpha
)

// BlendMode describes how a draw is composited onto its target.
type BlendMode struct {
	Equation BlendEquation
	SrcRGB   BlendFactor
	DstRGB   BlendFactor
	SrcAlpha BlendFactor
	DstAlpha BlendFactor
}

// Predefined blend modes.
var (
	// BlendReplace overwrites the destination.
	BlendReplace = BlendMode{EquationAdd, FactorOne, FactorZero, FactorOne, FactorZero}
	// BlendAdd brightens the destination.
	BlendAdd = BlendMode{EquationAdd, FactorSrcAlpha, FactorOne, FactorOne, FactorOne}
	// BlendSubtract darkens the destination.
	BlendSubtract = BlendMode{EquationReverseSubtract, FactorSrcAlpha, FactorOne, FactorOne, FactorOne}
	// BlendMultiply multiplies source and destination colors.
	BlendMultiply = BlendMode{EquationAdd, FactorDstColor, FactorOneMinusSrcAlpha, FactorOne, FactorOneMinusSrcAlpha}
	// BlendScreen is the inverse of multiply.
	BlendScreen = BlendMode{EquationAdd, FactorOne, FactorOneMinusSrcColor, FactorOne, FactorOneMinusSrcAlpha}
	// BlendAlpha is standard source-over compositing and the default for every transformable.
	BlendAlpha = BlendMode{EquationAdd, FactorSrcAlpha, FactorOneMinusSrcAlpha, FactorOne, FactorOneMinusSrcAlpha}
	// BlendInvert inverts the destination where the source is drawn.
	BlendInvert = BlendMode{EquationAdd, FactorOneMinusDstColor, FactorZero, FactorOne, FactorZero}
)

var blendModesByName = map[string]BlendMode{
	"replace":  BlendReplace,
	"add":      BlendAdd,
	"subtract": BlendSubtract,
	"multiply": BlendMultiply,
	"screen":   BlendScreen,
	"alpha":    BlendAlpha,
	"invert":   BlendInvert,
}

// ParseBlendMode returns the predefined blend mode with the given name.
func ParseBlendMode(name string) (BlendMode, error) {
	b, ok := blendModesByName[name]
	if !ok {
		return BlendMode{}, fmt.Errorf("unknown blend mode %q", name)
	}
	return b, nil
}
