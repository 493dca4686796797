package physics

import (
	"math/rand/v2"

	"github.com/lixenwraith/ballpit/parameter"
	"github.com/lixenwraith/ballpit/particle"
	"github.com/lixenwraith/ballpit/vmath"
)

// CursorSentinel is the inactive cursor position, outside any reachable bounds
var CursorSentinel = vmath.Vec3F{
	X: parameter.CursorSentinelX,
	Y: parameter.CursorSentinelY,
	Z: parameter.CursorSentinelZ,
}

// Simulation owns one ballpit's particle state and the inputs the step reads
type Simulation struct {
	Config *particle.Config
	Store  *particle.Store
	Center vmath.Vec3F
	Cursor vmath.Vec3F
}

// NewSimulation seeds particles for cfg; the config is copied and owned by the simulation
func NewSimulation(cfg particle.Config, rng *rand.Rand) *Simulation {
	c := cfg
	return &Simulation{
		Config: &c,
		Store:  particle.New(&c, rng),
		Cursor: CursorSentinel,
	}
}

// Update runs one physics step
func (sim *Simulation) Update(delta float64) Stats {
	return Step(sim.Store, sim.Config, sim.Cursor, sim.Center, delta)
}

// SetCursor sets the world-space repulsion point
func (sim *Simulation) SetCursor(p vmath.Vec3F) {
	sim.Cursor = p
}

// ClearCursor parks the repulsion point at the sentinel
func (sim *Simulation) ClearCursor() {
	sim.Cursor = CursorSentinel
}
