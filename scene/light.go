package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// AmbientLight lights every surface uniformly
type AmbientLight struct {
	Color     colorful.Color
	Intensity float64
}

// PointLight radiates from Position with inverse-power falloff
// Distance > 0 windows the falloff to zero at that range
type PointLight struct {
	Color     colorful.Color
	Intensity float64
	Distance  float64
	Decay     float64
	Position  mgl64.Vec3
}
