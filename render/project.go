package render

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/ballpit/camera"
	"github.com/lixenwraith/ballpit/parameter"
	"github.com/lixenwraith/ballpit/scene"
)

// Disc is one sphere instance projected onto a width x height surface
type Disc struct {
	X, Y, Radius float64 // surface pixels, Y down
	Depth        float64 // clip w

	Center      mgl64.Vec3
	WorldRadius float64
	Color       mgl64.Vec3 // linear RGB
	Material    *scene.Material
}

// ProjectScene appends every visible instance to dst sorted far to near
// Zero-scale instances, instances behind the near plane and sub-pixel discs are skipped
func ProjectScene(s *scene.Scene, cam *camera.Camera, width, height int, dst []Disc) []Disc {
	if width <= 0 || height <= 0 {
		return dst
	}
	pxPerUnit := float64(height) / 2 / math.Tan(mgl64.DegToRad(cam.Fov)/2)

	s.Traverse(func(m *scene.InstancedMesh) {
		for i := 0; i < m.Count(); i++ {
			c, scale := scene.Instance(m.Matrices[i])
			if scale <= 0 {
				continue
			}
			center := mgl64.Vec3{float64(c[0]), float64(c[1]), float64(c[2])}
			ndc, w := cam.Project(center)
			if w <= cam.Near {
				continue
			}
			radius := float64(scale) / w * pxPerUnit
			if radius < parameter.MinPixelRadius {
				continue
			}
			dst = append(dst, Disc{
				X:           (ndc.X() + 1) / 2 * float64(width),
				Y:           (1 - ndc.Y()) / 2 * float64(height),
				Radius:      radius,
				Depth:       w,
				Center:      center,
				WorldRadius: float64(scale),
				Color:       Linear(m.ColorAt(i)),
				Material:    m.Material,
			})
		}
	})

	// Painter's algorithm
	sort.SliceStable(dst, func(i, j int) bool {
		return dst[i].Depth > dst[j].Depth
	})
	return dst
}
