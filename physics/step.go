package physics

import (
	"github.com/lixenwraith/ballpit/parameter"
	"github.com/lixenwraith/ballpit/particle"
	"github.com/lixenwraith/ballpit/vmath"
)

// Stats summarizes one physics step for metrics and audio
type Stats struct {
	Collisions int
	Walls      WallStats
}

// Integrate applies gravity scaled by radius, friction and the velocity cap, then moves particles
// delta is in seconds; velocities are per-frame displacements
func Integrate(s *particle.Store, cfg *particle.Config, start int, delta float64) {
	for i := start; i < s.Len(); i++ {
		v := s.Velocity(i)
		v.Y -= delta * cfg.Gravity * s.Size[i]
		v = vmath.V3FScale(v, cfg.Friction)
		v = vmath.V3FClampMagnitude(v, cfg.MaxVelocity)
		s.SetVelocity(i, v)
		s.SetPosition(i, vmath.V3FAdd(s.Position(i), v))
	}
}

// FollowCenter eases particle 0 toward center and pins its velocity at zero
func FollowCenter(s *particle.Store, center vmath.Vec3F) {
	s.SetPosition(0, vmath.V3FLerp(s.Position(0), center, parameter.FollowLerp))
	s.SetVelocity(0, vmath.Vec3F{})
}

// Repel pushes particles away from cursor in the XY plane
// Force falls off linearly to zero at radius and accumulates into velocity, not position
func Repel(s *particle.Store, start int, cursor vmath.Vec3F, radius, strength float64) {
	for i := start; i < s.Len(); i++ {
		d := vmath.V3FXY(vmath.V3FSub(s.Position(i), cursor))
		dist := vmath.V3FMag(d)
		if dist >= radius || dist <= vmath.Epsilon {
			continue
		}
		force := (1 - dist/radius) * strength
		s.SetVelocity(i, vmath.V3FAdd(s.Velocity(i), vmath.V3FScale(d, force/dist)))
	}
}

// Step advances the store by one frame
func Step(s *particle.Store, cfg *particle.Config, cursor, center vmath.Vec3F, delta float64) Stats {
	start := cfg.StartIndex()

	Integrate(s, cfg, start, delta)
	if cfg.ControlSphere0 {
		FollowCenter(s, center)
	}

	var st Stats
	st.Collisions = ResolveCollisions(s, start)
	st.Walls = ContainWalls(s, cfg, start)
	Repel(s, start, cursor, cfg.RepelRadius, cfg.RepelStrength)
	return st
}
