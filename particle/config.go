package particle

import "github.com/lixenwraith/ballpit/parameter"

// Config is the per-run simulation configuration
// Only MaxX and MaxY change after construction, through SetBounds on resize
type Config struct {
	Count          int
	MaxX           float64
	MaxY           float64
	MaxZ           float64
	MinSize        float64
	MaxSize        float64
	Size0          float64
	Gravity        float64
	Friction       float64
	WallBounce     float64
	MaxVelocity    float64
	ControlSphere0 bool
	FollowCursor   bool
	RepelRadius    float64
	RepelStrength  float64
}

// DefaultConfig returns the stock ballpit tuning
func DefaultConfig() Config {
	return Config{
		Count:         parameter.DefaultCount,
		MaxX:          parameter.DefaultMaxX,
		MaxY:          parameter.DefaultMaxY,
		MaxZ:          parameter.DefaultMaxZ,
		MinSize:       parameter.DefaultMinSize,
		MaxSize:       parameter.DefaultMaxSize,
		Size0:         parameter.DefaultSize0,
		Gravity:       parameter.DefaultGravity,
		Friction:      parameter.DefaultFriction,
		WallBounce:    parameter.DefaultWallBounce,
		MaxVelocity:   parameter.DefaultMaxVelocity,
		FollowCursor:  true,
		RepelRadius:   parameter.DefaultRepelRadius,
		RepelStrength: parameter.DefaultRepelStrength,
	}
}

// StartIndex is the first particle integrated freely
// Particle 0 is skipped when it is pinned (ControlSphere0) or hidden (!FollowCursor)
func (c *Config) StartIndex() int {
	if !c.FollowCursor || c.ControlSphere0 {
		return 1
	}
	return 0
}

// SetBounds updates the world-space containment half extents
func (c *Config) SetBounds(maxX, maxY float64) {
	c.MaxX = maxX
	c.MaxY = maxY
}
