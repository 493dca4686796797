package render

import (
	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit sRGB pixel as written to the host surface
type RGB struct {
	R, G, B uint8
}

var RGBBlack = RGB{0, 0, 0}

// FromColor quantizes a display-space color, clamping out-of-gamut channels
func FromColor(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// ParseHex decodes "#RRGGBB", falling back to black on malformed input
func ParseHex(s string) (RGB, bool) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGBBlack, false
	}
	return FromColor(c), true
}

// clamp converts float to uint8
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v + 0.5)
}

// Blend composites src over c with straight alpha
// If alpha is 1.0 or 0.0, we return early to save math
func Blend(c, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}

	inv := 1.0 - alpha

	return RGB{
		R: clamp(float64(src.R)*alpha + float64(c.R)*inv),
		G: clamp(float64(src.G)*alpha + float64(c.G)*inv),
		B: clamp(float64(src.B)*alpha + float64(c.B)*inv),
	}
}
