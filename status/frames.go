package status

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/ballpit/parameter"
)

// FrameMeter records per-frame simulation counters into a Registry
type FrameMeter struct {
	frames     *atomic.Int64
	collisions *atomic.Int64
	wallHits   *atomic.Int64
	particles  *atomic.Int64
	fps        *AtomicFloat
	maxImpact  *AtomicFloat

	window       time.Duration
	windowStart  time.Time
	windowFrames int
}

func NewFrameMeter(reg *Registry) *FrameMeter {
	return &FrameMeter{
		frames:     reg.Ints.Get(KeyFrames),
		collisions: reg.Ints.Get(KeyCollisions),
		wallHits:   reg.Ints.Get(KeyWallHits),
		particles:  reg.Ints.Get(KeyParticles),
		fps:        reg.Floats.Get(KeyFPS),
		maxImpact:  reg.Floats.Get(KeyMaxImpact),
		window:     parameter.FPSWindow,
	}
}

func (m *FrameMeter) SetParticles(n int) {
	m.particles.Store(int64(n))
}

// Record counts one frame and refreshes the fps gauge once per window
func (m *FrameMeter) Record(now time.Time, collisions, wallHits int, impact float64) {
	m.frames.Add(1)
	m.collisions.Add(int64(collisions))
	m.wallHits.Add(int64(wallHits))
	m.maxImpact.Max(impact)

	if m.windowStart.IsZero() {
		m.windowStart = now
	}
	m.windowFrames++
	if elapsed := now.Sub(m.windowStart); elapsed >= m.window {
		m.fps.Store(float64(m.windowFrames) / elapsed.Seconds())
		m.windowStart = now
		m.windowFrames = 0
	}
}

// Pause drops the partial fps window so stopped time is not averaged in
func (m *FrameMeter) Pause() {
	m.windowStart = time.Time{}
	m.windowFrames = 0
}

// Summary is the one-line HUD text
func (m *FrameMeter) Summary() string {
	return fmt.Sprintf("%5.1f fps  %d balls  %d frames  %d collisions  %d wall hits",
		m.fps.Load(), m.particles.Load(), m.frames.Load(), m.collisions.Load(), m.wallHits.Load())
}
