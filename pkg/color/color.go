// Package color builds RGBA tint values for transformables.
// Colors are math.Vec4 with float components in [0, 1].
package color

import (
	"fmt"
	imgcolor "image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/Faultbox/compose/pkg/math"
)

// Predefined colors.
var (
	White       = math.Vec4{1, 1, 1, 1}
	Black       = math.Vec4{0, 0, 0, 1}
	Grey        = math.Vec4{0.5, 0.5, 0.5, 1}
	Red         = math.Vec4{1, 0, 0, 1}
	Green       = math.Vec4{0, 1, 0, 1}
	Blue        = math.Vec4{0, 0, 1, 1}
	Yellow      = math.Vec4{1, 1, 0, 1}
	Magenta     = math.Vec4{1, 0, 1, 1}
	Cyan        = math.Vec4{0, 1, 1, 1}
	Transparent = math.Vec4{0, 0, 0, 0}
)

// RGBA creates a color from float components.
func RGBA(r, g, b, a float32) math.Vec4 {
	return math.Vec4{r, g, b, a}
}

// RGB creates a color from float components with full alpha.
func RGB(r, g, b float32) math.Vec4 {
	return math.Vec4{r, g, b, 1}
}

// RGB255 creates a color from 8-bit style integer components (0-255).
func RGB255(r, g, b, a int) math.Vec4 {
	return math.Vec4{toNorm(r), toNorm(g), toNorm(b), toNorm(a)}
}

func toNorm(i int) float32 {
	return float32(i) / 255
}

// FromColor converts a standard library color. The result is straight
// (non-premultiplied) alpha.
func FromColor(c imgcolor.Color) math.Vec4 {
	n := imgcolor.NRGBAModel.Convert(c).(imgcolor.NRGBA)
	return RGB255(int(n.R), int(n.G), int(n.B), int(n.A))
}

// Named looks up an SVG 1.1 color keyword such as "cornflowerblue".
func Named(name string) (math.Vec4, bool) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return math.Vec4{}, false
	}
	return FromColor(c), true
}

// Parse accepts a color keyword or a hex string in #rrggbb or #rrggbbaa form.
func Parse(s string) (math.Vec4, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		if c, ok := Named(s); ok {
			return c, nil
		}
		return math.Vec4{}, fmt.Errorf("unknown color %q", s)
	}

	hex := s[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return math.Vec4{}, fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return math.Vec4{}, fmt.Errorf("color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return RGB255(int(v>>24&0xff), int(v>>16&0xff), int(v>>8&0xff), int(v&0xff)), nil
}
