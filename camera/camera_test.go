package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const tol = 1e-6

func baseHeight() float64 {
	return 2 * math.Tan(mgl64.DegToRad(25)) * 20
}

func TestResizeWithinAspectKeepsBaseFov(t *testing.T) {
	c := New()
	c.Resize(1200, 1000)

	if c.Fov != c.BaseFov {
		t.Errorf("Fov = %v, want base %v", c.Fov, c.BaseFov)
	}
	ws := c.WorldSize()
	if math.Abs(ws.Height-baseHeight()) > tol {
		t.Errorf("World height = %v, want %v", ws.Height, baseHeight())
	}
	if math.Abs(ws.Width-ws.Height*1.2) > tol {
		t.Errorf("World width = %v, want %v", ws.Width, ws.Height*1.2)
	}
}

func TestResizeBeyondMaxAspectClampsFraming(t *testing.T) {
	c := New()
	c.Resize(3000, 1000)

	if c.Fov >= c.BaseFov {
		t.Fatalf("Fov should narrow beyond max aspect, got %v", c.Fov)
	}
	ws := c.WorldSize()
	// horizontal framing equals what the max aspect would show at base fov
	want := baseHeight() * c.MaxAspect
	if math.Abs(ws.Width-want) > tol {
		t.Errorf("World width = %v, want clamped %v", ws.Width, want)
	}
	if math.Abs(ws.Width/ws.Height-3) > tol {
		t.Errorf("Projection aspect should still match the surface, got %v", ws.Width/ws.Height)
	}
}

func TestResizeBelowMinAspectWidensFov(t *testing.T) {
	c := New()
	c.MinAspect = 0.5
	c.Resize(250, 1000)

	if c.Fov <= c.BaseFov {
		t.Fatalf("Fov should widen below min aspect, got %v", c.Fov)
	}
	if got, want := c.WorldSize().Width, baseHeight()*0.5; math.Abs(got-want) > tol {
		t.Errorf("World width = %v, want %v", got, want)
	}
}

func TestResizeIgnoresEmptySurface(t *testing.T) {
	c := New()
	c.Resize(800, 0)
	if c.Aspect != 1 {
		t.Errorf("Aspect changed on empty surface: %v", c.Aspect)
	}
}

func TestRaycastHitsFacingPlane(t *testing.T) {
	c := New()
	c.Resize(1000, 1000)

	tests := []struct {
		name string
		ndc  mgl64.Vec2
		want mgl64.Vec3
	}{
		{"center", mgl64.Vec2{0, 0}, mgl64.Vec3{0, 0, 0}},
		{"right edge", mgl64.Vec2{1, 0}, mgl64.Vec3{baseHeight() / 2, 0, 0}},
		{"top left", mgl64.Vec2{-1, 1}, mgl64.Vec3{-baseHeight() / 2, baseHeight() / 2, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := c.Raycast(tt.ndc)
			if !ok {
				t.Fatal("Expected a hit")
			}
			if !hit.ApproxEqualThreshold(tt.want, 1e-4) {
				t.Errorf("Hit = %v, want %v", hit, tt.want)
			}
		})
	}
}

func TestIntersectPlaneParallelMisses(t *testing.T) {
	r := Ray{Origin: mgl64.Vec3{0, 0, 5}, Direction: mgl64.Vec3{1, 0, 0}}
	if _, ok := r.IntersectPlane(Plane{Normal: mgl64.Vec3{0, 0, 1}}); ok {
		t.Error("Parallel ray should miss")
	}
	behind := Ray{Origin: mgl64.Vec3{0, 0, 5}, Direction: mgl64.Vec3{0, 0, 1}}
	if _, ok := behind.IntersectPlane(Plane{Normal: mgl64.Vec3{0, 0, 1}}); ok {
		t.Error("Plane behind the origin should miss")
	}
}

func TestProjectOrigin(t *testing.T) {
	c := New()
	ndc, w := c.Project(mgl64.Vec3{})
	if math.Abs(ndc.X()) > tol || math.Abs(ndc.Y()) > tol {
		t.Errorf("Origin NDC = %v, want center", ndc)
	}
	if math.Abs(w-20) > tol {
		t.Errorf("Clip w = %v, want camera distance 20", w)
	}
}
