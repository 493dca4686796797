package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Plane is the set of points p with Normal·p + Constant = 0
type Plane struct {
	Normal   mgl64.Vec3
	Constant float64
}

// Ray is a half line from Origin along unit Direction
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// RayFromNDC builds the view ray through a normalized device coordinate
func (c *Camera) RayFromNDC(ndc mgl64.Vec2) Ray {
	inv := c.ViewProjection().Inv()
	far := inv.Mul4x1(mgl64.Vec4{ndc.X(), ndc.Y(), 0.5, 1})
	if far.W() != 0 {
		far = far.Mul(1 / far.W())
	}
	dir := far.Vec3().Sub(c.Position)
	if dir.Len() == 0 {
		dir = c.WorldDirection()
	}
	return Ray{Origin: c.Position, Direction: dir.Normalize()}
}

// IntersectPlane returns the hit point, false when parallel or behind the origin
func (r Ray) IntersectPlane(p Plane) (mgl64.Vec3, bool) {
	denom := p.Normal.Dot(r.Direction)
	if math.Abs(denom) < 1e-12 {
		return mgl64.Vec3{}, false
	}
	t := -(r.Origin.Dot(p.Normal) + p.Constant) / denom
	if t < 0 {
		return mgl64.Vec3{}, false
	}
	return r.Origin.Add(r.Direction.Mul(t)), true
}

// Raycast projects a pointer NDC onto the plane through the origin facing the camera
func (c *Camera) Raycast(ndc mgl64.Vec2) (mgl64.Vec3, bool) {
	plane := Plane{Normal: c.WorldDirection()}
	return c.RayFromNDC(ndc).IntersectPlane(plane)
}
