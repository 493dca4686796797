package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/ballpit/parameter"
)

// Player plays wall impact ticks through the speaker mixer
// Calls are rate limited so dense contact produces a steady patter
type Player struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	sink        func(beep.Streamer)
	now         func() time.Time
	last        time.Time
	initialized bool
	logger      *zap.Logger
}

func NewPlayer(cfg Config, logger *zap.Logger) *Player {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Player{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		now:    time.Now,
		logger: logger,
	}
}

// Initialize opens the speaker; disabled configs are a no-op
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(p.mixer)
	p.sink = func(s beep.Streamer) {
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
	p.initialized = true
	p.logger.Debug("audio initialized", zap.Int("sample_rate", p.cfg.SampleRate))
	return nil
}

// Cleanup stops all sounds
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.sink = nil
	p.initialized = false
}

// PlayImpact queues a tick for a wall impact of the given speed
// Returns false when muted, too soft or inside the cooldown
func (p *Player) PlayImpact(speed, maxVelocity float64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.sink == nil || speed < parameter.ImpactMinSpeed {
		return false
	}
	now := p.now()
	if !p.last.IsZero() && now.Sub(p.last) < parameter.ImpactCooldown {
		return false
	}
	p.last = now
	p.sink(CreateImpactSound(ImpactLevel(speed, maxVelocity), p.cfg))
	return true
}
