package physics

import (
	"math"

	"github.com/lixenwraith/ballpit/particle"
	"github.com/lixenwraith/ballpit/vmath"
)

// WallStats reports boundary contacts of one containment pass
type WallStats struct {
	Hits      int
	MaxImpact float64 // largest normal speed reflected this pass
}

// ContainWalls clamps particles from start into the configured box and reflects velocity
// X and Z are symmetric; Y is symmetric only without gravity, otherwise floor-only
func ContainWalls(s *particle.Store, cfg *particle.Config, start int) WallStats {
	var ws WallStats
	zBound := math.Max(cfg.MaxZ, cfg.MaxSize)

	hit := func(v float64) {
		ws.Hits++
		ws.MaxImpact = math.Max(ws.MaxImpact, math.Abs(v))
	}

	for i := start; i < s.Len(); i++ {
		b := 3 * i
		r := s.Size[i]

		if x := s.Pos[b]; math.Abs(x)+r > cfg.MaxX {
			hit(s.Vel[b])
			s.Pos[b] = vmath.Sign(x) * (cfg.MaxX - r)
			s.Vel[b] = -s.Vel[b] * cfg.WallBounce
		}

		y := s.Pos[b+1]
		if cfg.Gravity == 0 {
			if math.Abs(y)+r > cfg.MaxY {
				hit(s.Vel[b+1])
				s.Pos[b+1] = vmath.Sign(y) * (cfg.MaxY - r)
				s.Vel[b+1] = -s.Vel[b+1] * cfg.WallBounce
			}
		} else if y-r < -cfg.MaxY {
			hit(s.Vel[b+1])
			s.Pos[b+1] = -cfg.MaxY + r
			s.Vel[b+1] = -s.Vel[b+1] * cfg.WallBounce
		}

		if z := s.Pos[b+2]; math.Abs(z)+r > zBound {
			hit(s.Vel[b+2])
			s.Pos[b+2] = vmath.Sign(z) * (cfg.MaxZ - r)
			s.Vel[b+2] = -s.Vel[b+2] * cfg.WallBounce
		}
	}
	return ws
}
