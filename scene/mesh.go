package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// Disposable is a resource released when its owner is torn down
type Disposable interface {
	Dispose()
	Disposed() bool
}

// Geometry describes the shared unit sphere every instance draws
type Geometry struct {
	WidthSegments  int
	HeightSegments int
	disposed       bool
}

func NewSphereGeometry() *Geometry {
	return &Geometry{WidthSegments: 32, HeightSegments: 16}
}

func (g *Geometry) Dispose() { g.disposed = true }
func (g *Geometry) Disposed() bool { return g.disposed }

// Material is a physically based surface description
type Material struct {
	Metalness          float64
	Roughness          float64
	Clearcoat          float64
	ClearcoatRoughness float64
	disposed           bool
}

func (m *Material) Dispose() { m.disposed = true }
func (m *Material) Disposed() bool { return m.disposed }

// InstancedMesh draws Count copies of one geometry, each with its own transform and color
// Versions bump on every write so renderers can skip unchanged uploads
type InstancedMesh struct {
	Geometry *Geometry
	Material *Material

	Matrices []mgl32.Mat4
	Colors   []colorful.Color

	MatrixVersion uint64
	ColorVersion  uint64
}

// NewInstancedMesh allocates count identity transforms
func NewInstancedMesh(g *Geometry, m *Material, count int) *InstancedMesh {
	mats := make([]mgl32.Mat4, count)
	for i := range mats {
		mats[i] = mgl32.Ident4()
	}
	return &InstancedMesh{Geometry: g, Material: m, Matrices: mats}
}

func (im *InstancedMesh) Count() int { return len(im.Matrices) }

func (im *InstancedMesh) SetMatrixAt(i int, m mgl32.Mat4) {
	im.Matrices[i] = m
}

// SetColorAt allocates the color buffer lazily; meshes without it draw white
func (im *InstancedMesh) SetColorAt(i int, c colorful.Color) {
	if im.Colors == nil {
		im.Colors = make([]colorful.Color, len(im.Matrices))
		for j := range im.Colors {
			im.Colors[j] = colorful.Color{R: 1, G: 1, B: 1}
		}
	}
	im.Colors[i] = c
}

// ColorAt returns the instance color, white when no colors were set
func (im *InstancedMesh) ColorAt(i int) colorful.Color {
	if im.Colors == nil {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return im.Colors[i]
}

// Instance decodes translation and uniform scale from a transform
func Instance(m mgl32.Mat4) (center [3]float32, scale float32) {
	col := m.Col(3)
	return [3]float32{col.X(), col.Y(), col.Z()}, m.At(0, 0)
}
