package scene

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/ballpit/vmath"
)

// Palette is an ordered gradient interpolated in linear RGB
type Palette struct {
	stops []colorful.Color
}

// ParsePalette parses hex colors, skipping entries that fail to parse
// The returned slice lists rejected inputs
func ParsePalette(hexes []string) (Palette, []string) {
	var p Palette
	var rejected []string
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			rejected = append(rejected, h)
			continue
		}
		p.stops = append(p.stops, c)
	}
	return p, rejected
}

// NewPalette builds a palette from parsed colors
func NewPalette(colors ...colorful.Color) Palette {
	return Palette{stops: colors}
}

// Valid reports whether the palette can interpolate, which needs two stops
func (p Palette) Valid() bool {
	return len(p.stops) >= 2
}

func (p Palette) Len() int { return len(p.stops) }

// Stop returns the i-th stop, or black when out of range
func (p Palette) Stop(i int) colorful.Color {
	if i < 0 || i >= len(p.stops) {
		return colorful.Color{}
	}
	return p.stops[i]
}

// At returns the gradient color at ratio in [0, 1], ratio is clamped
func (p Palette) At(ratio float64) colorful.Color {
	if len(p.stops) == 0 {
		return colorful.Color{}
	}
	s := vmath.Clamp(ratio, 0, 1) * float64(len(p.stops)-1)
	i := int(math.Floor(s))
	if i >= len(p.stops)-1 {
		return p.stops[len(p.stops)-1]
	}
	return p.stops[i].BlendLinearRgb(p.stops[i+1], s-float64(i))
}
