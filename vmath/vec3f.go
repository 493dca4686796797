package vmath

import "math"

// Vec3F is the value-type vector the particle step works in
type Vec3F struct {
	X, Y, Z float64
}

func V3FAdd(a, b Vec3F) Vec3F { return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }

func V3FSub(a, b Vec3F) Vec3F { return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

func V3FScale(v Vec3F, s float64) Vec3F { return Vec3F{v.X * s, v.Y * s, v.Z * s} }

func V3FMag(v Vec3F) float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// V3FClampMagnitude shortens v to maxMag, keeping its direction
func V3FClampMagnitude(v Vec3F, maxMag float64) Vec3F {
	if m := V3FMag(v); m > maxMag && m > 0 {
		return V3FScale(v, maxMag/m)
	}
	return v
}

// V3FLerp moves a toward b by fraction t
func V3FLerp(a, b Vec3F, t float64) Vec3F {
	return Vec3F{Lerp(a.X, b.X, t), Lerp(a.Y, b.Y, t), Lerp(a.Z, b.Z, t)}
}

// V3FXY projects onto the XY plane
func V3FXY(v Vec3F) Vec3F { return Vec3F{X: v.X, Y: v.Y} }
