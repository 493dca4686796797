package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/ballpit/camera"
	"github.com/lixenwraith/ballpit/parameter"
	"github.com/lixenwraith/ballpit/scene"
)

// Rasterizer draws instanced spheres into a framebuffer with per-pixel shading
// Spheres are composited far to near; there is no depth buffer
type Rasterizer struct {
	Background RGB
	Exposure   float64

	fb       *Framebuffer
	order    []Disc
	disposed bool
}

func NewRasterizer() *Rasterizer {
	bg, _ := ParseHex(parameter.BackgroundColor)
	return &Rasterizer{
		Background: bg,
		Exposure:   parameter.ToneExposure,
		fb:         NewFramebuffer(0, 0),
	}
}

func (r *Rasterizer) SetSize(w, h int) {
	if r.disposed {
		return
	}
	r.fb.Resize(w, h)
}

func (r *Rasterizer) Framebuffer() *Framebuffer { return r.fb }

func (r *Rasterizer) Dispose() {
	r.disposed = true
	r.fb.Resize(0, 0)
	r.order = nil
}

func (r *Rasterizer) Disposed() bool { return r.disposed }

// Render clears to the background and draws every visible instance of every mesh
func (r *Rasterizer) Render(s *scene.Scene, cam *camera.Camera) {
	if r.disposed {
		return
	}
	r.fb.Fill(r.Background)
	if r.fb.Width == 0 || r.fb.Height == 0 {
		return
	}

	r.order = ProjectScene(s, cam, r.fb.Width, r.fb.Height, r.order[:0])

	lt := newLighting(s, cam.Position)
	for i := range r.order {
		r.drawSphere(&lt, &r.order[i])
	}
}

func (r *Rasterizer) drawSphere(lt *lighting, p *Disc) {
	minX := max(0, int(p.X-p.Radius-1))
	maxX := min(r.fb.Width-1, int(p.X+p.Radius+1))
	minY := max(0, int(p.Y-p.Radius-1))
	maxY := min(r.fb.Height-1, int(p.Y+p.Radius+1))

	mat := p.Material
	if mat == nil {
		mat = &scene.Material{}
	}

	for sy := minY; sy <= maxY; sy++ {
		for sx := minX; sx <= maxX; sx++ {
			nx := (float64(sx) + 0.5 - p.X) / p.Radius
			ny := (float64(sy) + 0.5 - p.Y) / p.Radius
			distSq := nx*nx + ny*ny
			if distSq > 1 {
				continue
			}

			// Screen y grows downward, world y upward
			n := mgl64.Vec3{nx, -ny, math.Sqrt(1 - distSq)}
			pos := p.Center.Add(n.Mul(p.WorldRadius))
			color := Encode(lt.shade(p.Color, mat, pos, n), r.Exposure)

			alpha := 1.0
			if edge := 1 - math.Sqrt(distSq); edge < parameter.EdgeSoftness {
				alpha = edge / parameter.EdgeSoftness
			}
			r.fb.BlendAt(sx, sy, color, alpha)
		}
	}
}
