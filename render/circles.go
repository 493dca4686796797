package render

import (
	"github.com/lixenwraith/ballpit/camera"
	"github.com/lixenwraith/ballpit/parameter"
	"github.com/lixenwraith/ballpit/scene"
)

// Circle is a flat disc for backends that only fill circles
type Circle struct {
	X, Y, Radius float32
	Color        RGB
}

// CircleRenderer projects spheres to discs shaded once at the pole facing the camera
type CircleRenderer struct {
	Exposure float64
	Circles  []Circle

	discs    []Disc
	w, h     int
	disposed bool
}

func NewCircleRenderer() *CircleRenderer {
	return &CircleRenderer{Exposure: parameter.ToneExposure}
}

func (r *CircleRenderer) SetSize(w, h int) {
	r.w, r.h = w, h
}

func (r *CircleRenderer) Size() (int, int) { return r.w, r.h }

func (r *CircleRenderer) Render(s *scene.Scene, cam *camera.Camera) {
	if r.disposed {
		return
	}
	r.discs = ProjectScene(s, cam, r.w, r.h, r.discs[:0])
	r.Circles = r.Circles[:0]

	lt := newLighting(s, cam.Position)
	n := cam.WorldDirection().Mul(-1)
	for i := range r.discs {
		d := &r.discs[i]
		mat := d.Material
		if mat == nil {
			mat = &scene.Material{}
		}
		pole := d.Center.Add(n.Mul(d.WorldRadius))
		r.Circles = append(r.Circles, Circle{
			X:      float32(d.X),
			Y:      float32(d.Y),
			Radius: float32(d.Radius),
			Color:  Encode(lt.shade(d.Color, mat, pole, n), r.Exposure),
		})
	}
}

func (r *CircleRenderer) Dispose() {
	r.disposed = true
	r.Circles = nil
	r.discs = nil
}

func (r *CircleRenderer) Disposed() bool { return r.disposed }
