package core

import (
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// RGB stores explicit 8-bit color channels, decoupled from any frontend
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// ParseHex parses "#RRGGBB" or "#RGB" into RGB
func ParseHex(s string) (RGB, error) {
	if len(s) == 4 && s[0] == '#' {
		s = string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGBBlack, errors.Wrapf(err, "parse color %q", s)
	}
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}, nil
}

// MustParseHex is ParseHex for compile-time palette constants
func MustParseHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	dst := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	top := colorful.Color{R: float64(src.R) / 255, G: float64(src.G) / 255, B: float64(src.B) / 255}
	r, g, b := dst.BlendRgb(top, alpha).Clamped().RGB255()
	return RGB{r, g, b}
}

// Hex returns the "#rrggbb" form
func (c RGB) Hex() string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}
