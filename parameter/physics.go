package parameter

// Simulation defaults, tuned for a 20-unit camera distance
const (
	DefaultCount       = 30
	DefaultMaxX        = 5.0
	DefaultMaxY        = 5.0
	DefaultMaxZ        = 2.0
	DefaultMinSize     = 0.5
	DefaultMaxSize     = 1.0
	DefaultSize0       = 1.0
	DefaultGravity     = 0.5
	DefaultFriction    = 0.9975
	DefaultWallBounce  = 0.95
	DefaultMaxVelocity = 0.15

	DefaultRepelRadius   = 3.0
	DefaultRepelStrength = 0.4

	// FollowLerp is the per-frame fraction particle 0 moves toward the center when controlled
	FollowLerp = 0.1
)

// CursorSentinel is the world position used when no pointer is over the surface
// Far enough outside any bounds that neither repulsion nor cursor light has effect
const (
	CursorSentinelX = 99999.0
	CursorSentinelY = 99999.0
	CursorSentinelZ = 0.0
)

// DefaultColors is the default ballpit palette
var DefaultColors = []string{"#FF3366", "#6B4CE6", "#00D9FF"}
