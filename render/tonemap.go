package render

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/ballpit/vmath"
)

// ACES filmic fit, input and output transforms in column-major order
var (
	acesInput = mgl64.Mat3{
		0.59719, 0.07600, 0.02840,
		0.35458, 0.90834, 0.13383,
		0.04823, 0.01566, 0.83777,
	}
	acesOutput = mgl64.Mat3{
		1.60475, -0.10208, -0.00327,
		-0.53108, 1.10813, -0.07276,
		-0.07367, -0.00605, 1.07602,
	}
)

func rrtAndODTFit(v float64) float64 {
	a := v*(v+0.0245786) - 0.000090537
	b := v*(0.983729*v+0.4329510) + 0.238081
	return a / b
}

// ACESFilmic maps linear HDR radiance into [0,1] linear display range
func ACESFilmic(c mgl64.Vec3, exposure float64) mgl64.Vec3 {
	c = acesInput.Mul3x1(c.Mul(exposure / 0.6))
	c = mgl64.Vec3{rrtAndODTFit(c[0]), rrtAndODTFit(c[1]), rrtAndODTFit(c[2])}
	c = acesOutput.Mul3x1(c)
	return mgl64.Vec3{vmath.Clamp(c[0], 0, 1), vmath.Clamp(c[1], 0, 1), vmath.Clamp(c[2], 0, 1)}
}

// Encode tone maps linear radiance and converts it to an sRGB pixel
func Encode(c mgl64.Vec3, exposure float64) RGB {
	t := ACESFilmic(c, exposure)
	return FromColor(colorful.LinearRgb(t[0], t[1], t[2]))
}

// Linear converts a display color into linear radiance
func Linear(c colorful.Color) mgl64.Vec3 {
	r, g, b := c.LinearRgb()
	return mgl64.Vec3{r, g, b}
}
