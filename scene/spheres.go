package scene

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/ballpit/parameter"
	"github.com/lixenwraith/ballpit/particle"
	"github.com/lixenwraith/ballpit/physics"
	"github.com/lixenwraith/ballpit/vmath"
)

// SpheresConfig configures the instanced ballpit and its lights
type SpheresConfig struct {
	Simulation particle.Config
	Palette    Palette
	Material   Material

	AmbientColor     colorful.Color
	AmbientIntensity float64
	LightIntensity   float64

	CursorLightColor     colorful.Color
	CursorLightIntensity float64
	CursorLightDistance  float64
}

// DefaultSpheresConfig returns the stock look
func DefaultSpheresConfig() SpheresConfig {
	pal, _ := ParsePalette(parameter.DefaultColors)
	white := colorful.Color{R: 1, G: 1, B: 1}
	return SpheresConfig{
		Simulation: particle.DefaultConfig(),
		Palette:    pal,
		Material: Material{
			Metalness:          parameter.MaterialMetalness,
			Roughness:          parameter.MaterialRoughness,
			Clearcoat:          parameter.MaterialClearcoat,
			ClearcoatRoughness: parameter.MaterialClearcoatRoughness,
		},
		AmbientColor:         white,
		AmbientIntensity:     parameter.AmbientIntensity,
		LightIntensity:       parameter.TrackingLightIntensity,
		CursorLightColor:     white,
		CursorLightIntensity: parameter.CursorLightIntensity,
		CursorLightDistance:  parameter.CursorLightDistance,
	}
}

// Spheres binds a physics simulation to an instanced mesh and its lights
type Spheres struct {
	*InstancedMesh

	Sim         *physics.Simulation
	Ambient     *AmbientLight
	Light       *PointLight
	CursorLight *PointLight

	followCursor bool
}

// cursorLightSentinel parks a light where it cannot reach any sphere
var cursorLightSentinel = mgl64.Vec3{
	parameter.CursorSentinelX,
	parameter.CursorSentinelY,
	parameter.CursorSentinelZ,
}

// NewSpheres seeds the simulation and assigns palette colors once
func NewSpheres(cfg SpheresConfig, rng *rand.Rand) *Spheres {
	sim := physics.NewSimulation(cfg.Simulation, rng)
	mat := cfg.Material

	sp := &Spheres{
		InstancedMesh: NewInstancedMesh(NewSphereGeometry(), &mat, sim.Store.Len()),
		Sim:           sim,
		Ambient: &AmbientLight{
			Color:     cfg.AmbientColor,
			Intensity: cfg.AmbientIntensity,
		},
		Light: &PointLight{
			Color:     cfg.Palette.Stop(0),
			Intensity: cfg.LightIntensity,
			Decay:     parameter.PointLightDecay,
		},
		CursorLight: &PointLight{
			Color:     cfg.CursorLightColor,
			Intensity: cfg.CursorLightIntensity,
			Distance:  cfg.CursorLightDistance,
			Decay:     parameter.PointLightDecay,
			Position:  cursorLightSentinel,
		},
		followCursor: cfg.Simulation.FollowCursor,
	}
	sp.SetColors(cfg.Palette)
	sp.writeMatrices()
	return sp
}

// SetColors assigns each instance the palette color at i/count
// Palettes with fewer than two stops leave colors untouched
func (sp *Spheres) SetColors(p Palette) {
	if !p.Valid() {
		return
	}
	n := sp.Count()
	for i := 0; i < n; i++ {
		sp.SetColorAt(i, p.At(float64(i)/float64(n)))
	}
	sp.Light.Color = p.At(0)
	sp.ColorVersion++
}

// AddTo registers the mesh and lights with a scene
func (sp *Spheres) AddTo(s *Scene) {
	s.AddMesh(sp.InstancedMesh)
	s.AddAmbient(sp.Ambient)
	s.AddPointLight(sp.Light)
	s.AddPointLight(sp.CursorLight)
}

// Update advances physics by delta seconds and rewrites instance transforms
func (sp *Spheres) Update(delta float64) physics.Stats {
	st := sp.Sim.Update(delta)
	sp.writeMatrices()
	return st
}

func (sp *Spheres) writeMatrices() {
	store := sp.Sim.Store
	for i := 0; i < store.Len(); i++ {
		p := store.Position(i)
		scale := float32(store.Size[i])
		if i == 0 && !sp.followCursor {
			scale = 0
		}
		m := mgl32.Translate3D(float32(p.X), float32(p.Y), float32(p.Z)).
			Mul4(mgl32.Scale3D(scale, scale, scale))
		sp.SetMatrixAt(i, m)

		if i == 0 {
			if sp.followCursor {
				sp.Light.Position = mgl64.Vec3{p.X, p.Y, p.Z}
			} else {
				sp.Light.Position = mgl64.Vec3{0, 0, parameter.TrackingLightFixedZ}
			}
		}
	}
	sp.MatrixVersion++
}

// SetCursor feeds a world-space pointer hit to repulsion and the cursor light together
func (sp *Spheres) SetCursor(p mgl64.Vec3) {
	sp.Sim.SetCursor(vmath.Vec3F{X: p.X(), Y: p.Y(), Z: p.Z()})
	sp.UpdateCursorLight(p)
}

// ClearCursor parks both the repulsion point and the cursor light at the sentinel
func (sp *Spheres) ClearCursor() {
	sp.Sim.ClearCursor()
	sp.HideCursorLight()
}

func (sp *Spheres) UpdateCursorLight(p mgl64.Vec3) {
	sp.CursorLight.Position = p
}

func (sp *Spheres) HideCursorLight() {
	sp.CursorLight.Position = cursorLightSentinel
}

// SetBounds updates containment after a resize
func (sp *Spheres) SetBounds(maxX, maxY float64) {
	sp.Sim.Config.SetBounds(maxX, maxY)
}
