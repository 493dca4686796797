package render

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/ballpit/parameter"
	"github.com/lixenwraith/ballpit/vmath"
)

// glow is one elliptical radial gradient fading from alpha at its center to clear at stop
type glow struct {
	cx, cy float64 // fraction of surface size
	alpha  float64
	stop   float64 // fraction of the farthest-corner radius
}

// Layers top to bottom
var fallbackGlows = [3]glow{
	{cx: 0.2, cy: 0.2, alpha: parameter.FallbackAlphaPrimary, stop: 0.5},
	{cx: 0.8, cy: 0.8, alpha: parameter.FallbackAlphaSecondary, stop: 0.5},
	{cx: 0.5, cy: 0.5, alpha: parameter.FallbackAlphaTertiary, stop: 0.6},
}

// DrawBackdrop paints the static backdrop shown when the simulation is not run
// colors supplies one tint per gradient, missing entries reuse the last
func DrawBackdrop(fb *Framebuffer, bg RGB, colors []colorful.Color) {
	fb.Fill(bg)
	if len(colors) == 0 || fb.Width == 0 || fb.Height == 0 {
		return
	}

	w, h := float64(fb.Width), float64(fb.Height)
	for i := len(fallbackGlows) - 1; i >= 0; i-- {
		g := fallbackGlows[i]
		tint := FromColor(colors[min(i, len(colors)-1)])

		px, py := g.cx*w, g.cy*h
		// Ellipse through the farthest corner, proportioned like the farthest sides
		rx := math.Sqrt2 * math.Max(px, w-px)
		ry := math.Sqrt2 * math.Max(py, h-py)

		for y := 0; y < fb.Height; y++ {
			dy := (float64(y) + 0.5 - py) / ry
			for x := 0; x < fb.Width; x++ {
				dx := (float64(x) + 0.5 - px) / rx
				t := math.Sqrt(dx*dx+dy*dy) / g.stop
				if t >= 1 {
					continue
				}
				fb.BlendAt(x, y, tint, g.alpha*vmath.Clamp(1-t, 0, 1))
			}
		}
	}
}
