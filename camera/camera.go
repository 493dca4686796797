// Package camera provides the perspective camera, aspect clamping and
// pointer ray casting used to map surface pixels into the ballpit's world
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/ballpit/parameter"
)

// Camera is a perspective camera looking at Target
// Fov is the effective vertical field of view in degrees after aspect clamping
type Camera struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3

	BaseFov   float64
	Fov       float64
	Aspect    float64
	Near, Far float64

	// MinAspect and MaxAspect bound the framed aspect ratio, 0 disables a bound
	MinAspect float64
	MaxAspect float64

	projection mgl64.Mat4
	view       mgl64.Mat4
}

// WorldSize is the visible extent of the plane through the target at camera distance
type WorldSize struct {
	Width, Height float64
}

// New returns the default camera at (0, 0, distance) looking at the origin
func New() *Camera {
	c := &Camera{
		Position:  mgl64.Vec3{0, 0, parameter.CameraDistance},
		Up:        mgl64.Vec3{0, 1, 0},
		BaseFov:   parameter.CameraFov,
		Fov:       parameter.CameraFov,
		Aspect:    1,
		Near:      parameter.CameraNear,
		Far:       parameter.CameraFar,
		MaxAspect: parameter.CameraMaxAspect,
	}
	c.UpdateProjection()
	return c
}

// SetAspect applies a new surface aspect, narrowing the fov when outside [MinAspect, MaxAspect]
func (c *Camera) SetAspect(aspect float64) {
	c.Aspect = aspect
	switch {
	case c.MinAspect > 0 && aspect < c.MinAspect:
		c.Fov = clampedFov(c.BaseFov, aspect, c.MinAspect)
	case c.MaxAspect > 0 && aspect > c.MaxAspect:
		c.Fov = clampedFov(c.BaseFov, aspect, c.MaxAspect)
	default:
		c.Fov = c.BaseFov
	}
	c.UpdateProjection()
}

// clampedFov keeps the framing of limit when the real aspect exceeds it
func clampedFov(baseFov, aspect, limit float64) float64 {
	tanFov := math.Tan(mgl64.DegToRad(baseFov / 2))
	newTan := tanFov / (aspect / limit)
	return 2 * mgl64.RadToDeg(math.Atan(newTan))
}

// Resize sets the aspect from surface pixels; zero height is ignored
func (c *Camera) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.SetAspect(float64(width) / float64(height))
}

// UpdateProjection rebuilds projection and view matrices from the current fields
func (c *Camera) UpdateProjection() {
	c.projection = mgl64.Perspective(mgl64.DegToRad(c.Fov), c.Aspect, c.Near, c.Far)
	c.view = mgl64.LookAtV(c.Position, c.Target, c.Up)
}

// WorldSize returns visible width and height at the camera's distance from the origin
func (c *Camera) WorldSize() WorldSize {
	h := 2 * math.Tan(mgl64.DegToRad(c.Fov)/2) * c.Position.Len()
	return WorldSize{Width: h * c.Aspect, Height: h}
}

// WorldDirection is the unit vector the camera faces
func (c *Camera) WorldDirection() mgl64.Vec3 {
	d := c.Target.Sub(c.Position)
	if d.Len() == 0 {
		return mgl64.Vec3{0, 0, -1}
	}
	return d.Normalize()
}

func (c *Camera) Projection() mgl64.Mat4 { return c.projection }

func (c *Camera) View() mgl64.Mat4 { return c.view }

// ViewProjection maps world to clip space
func (c *Camera) ViewProjection() mgl64.Mat4 {
	return c.projection.Mul4(c.view)
}

// Project maps a world point to normalized device coordinates and clip w
func (c *Camera) Project(p mgl64.Vec3) (ndc mgl64.Vec3, w float64) {
	clip := c.ViewProjection().Mul4x1(p.Vec4(1))
	w = clip.W()
	if w == 0 {
		return mgl64.Vec3{}, 0
	}
	return clip.Vec3().Mul(1 / w), w
}
