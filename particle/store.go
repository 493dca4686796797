package particle

import (
	"math/rand/v2"

	"github.com/lixenwraith/ballpit/vmath"
)

// Store holds particle state as parallel arrays, identity is the index
// Pos and Vel are packed xyz triples
type Store struct {
	Pos  []float64
	Vel  []float64
	Size []float64
}

// New allocates and seeds a store for cfg
// Particle 0 starts at the origin with Size0, the rest are spread across the bounds
func New(cfg *Config, rng *rand.Rand) *Store {
	n := max(cfg.Count, 1)
	s := &Store{
		Pos:  make([]float64, 3*n),
		Vel:  make([]float64, 3*n),
		Size: make([]float64, n),
	}

	for i := 1; i < n; i++ {
		b := 3 * i
		s.Pos[b] = vmath.RandSpread(rng, 2*cfg.MaxX)
		s.Pos[b+1] = vmath.RandSpread(rng, 2*cfg.MaxY)
		s.Pos[b+2] = vmath.RandSpread(rng, 2*cfg.MaxZ)
	}

	s.Size[0] = cfg.Size0
	for i := 1; i < n; i++ {
		s.Size[i] = vmath.RandRange(rng, cfg.MinSize, cfg.MaxSize)
	}
	return s
}

// Len returns the particle count
func (s *Store) Len() int {
	return len(s.Size)
}

func (s *Store) Position(i int) vmath.Vec3F {
	b := 3 * i
	return vmath.Vec3F{X: s.Pos[b], Y: s.Pos[b+1], Z: s.Pos[b+2]}
}

func (s *Store) SetPosition(i int, v vmath.Vec3F) {
	b := 3 * i
	s.Pos[b], s.Pos[b+1], s.Pos[b+2] = v.X, v.Y, v.Z
}

func (s *Store) Velocity(i int) vmath.Vec3F {
	b := 3 * i
	return vmath.Vec3F{X: s.Vel[b], Y: s.Vel[b+1], Z: s.Vel[b+2]}
}

func (s *Store) SetVelocity(i int, v vmath.Vec3F) {
	b := 3 * i
	s.Vel[b], s.Vel[b+1], s.Vel[b+2] = v.X, v.Y, v.Z
}
