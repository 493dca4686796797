package physics

import (
	"math"

	"github.com/lixenwraith/ballpit/particle"
)

// ResolveCollisions runs one positional correction pass over every pair i<j from start
// Each overlapping pair is pushed apart by half the overlap each along the contact normal,
// velocities receive the same correction scaled by max(speed, 1) of the receiving particle
// No iteration: deep or stacked contacts may remain overlapped until later frames
func ResolveCollisions(s *particle.Store, start int) int {
	n := s.Len()
	collisions := 0

	for i := start; i < n; i++ {
		bi := 3 * i
		ri := s.Size[i]

		for j := i + 1; j < n; j++ {
			bj := 3 * j

			dx := s.Pos[bj] - s.Pos[bi]
			dy := s.Pos[bj+1] - s.Pos[bi+1]
			dz := s.Pos[bj+2] - s.Pos[bi+2]
			dist := math.Sqrt(dx*dx + dy*dy + dz*dz)

			sumR := ri + s.Size[j]
			if dist >= sumR {
				continue
			}
			// Coincident centers have no contact normal
			if dist == 0 {
				continue
			}

			k := 0.5 * (sumR - dist) / dist
			cx, cy, cz := dx*k, dy*k, dz*k

			vi := velocityScale(s, bi)
			s.Pos[bi] -= cx
			s.Pos[bi+1] -= cy
			s.Pos[bi+2] -= cz
			s.Vel[bi] -= cx * vi
			s.Vel[bi+1] -= cy * vi
			s.Vel[bi+2] -= cz * vi

			vj := velocityScale(s, bj)
			s.Pos[bj] += cx
			s.Pos[bj+1] += cy
			s.Pos[bj+2] += cz
			s.Vel[bj] += cx * vj
			s.Vel[bj+1] += cy * vj
			s.Vel[bj+2] += cz * vj

			collisions++
		}
	}
	return collisions
}

// velocityScale is the impulse multiplier for the particle at base offset b
// Slow particles take at least the raw correction so they never stall in contact
func velocityScale(s *particle.Store, b int) float64 {
	vx, vy, vz := s.Vel[b], s.Vel[b+1], s.Vel[b+2]
	return math.Max(math.Sqrt(vx*vx+vy*vy+vz*vz), 1)
}
