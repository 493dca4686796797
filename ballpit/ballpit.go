// Package ballpit assembles one interactive ballpit on a host surface
//
// A Ballpit owns a lifecycle controller, the instanced spheres in its scene
// and a pointer tracker on the host registry. Everything it touches runs on
// the host loop goroutine.
package ballpit

import (
	"math/rand/v2"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/lixenwraith/ballpit/config"
	"github.com/lixenwraith/ballpit/engine"
	"github.com/lixenwraith/ballpit/pointer"
	"github.com/lixenwraith/ballpit/scene"
	"github.com/lixenwraith/ballpit/status"
)

// ImpactSink receives the strongest wall impact of a frame
type ImpactSink interface {
	PlayImpact(speed, maxVelocity float64) bool
}

// Options carries the host collaborators for New
type Options struct {
	Config       *config.Config
	Surface      engine.Surface
	Registry     *pointer.Registry
	Scheduler    engine.Scheduler
	TimeProvider engine.TimeProvider
	Open         engine.OpenRenderer

	// Optional
	Element pointer.Element
	Meter   *status.FrameMeter
	Impacts ImpactSink
	Rand    *rand.Rand
	Logger  *zap.Logger
}

// Ballpit is a running instance; the embedded controller exposes visibility and resize
type Ballpit struct {
	*engine.Controller

	Spheres *scene.Spheres
	Tracker *pointer.Tracker

	cfg    *config.Config
	meter  *status.FrameMeter
	sink   ImpactSink
	now    func() time.Time
	logger *zap.Logger
}

// New builds the controller, seeds the spheres and starts tracking the pointer
// A rendering context failure is returned wrapped in engine.ErrContextUnavailable
// and nothing is registered or scheduled
func New(opts Options) (*Ballpit, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	tp := opts.TimeProvider
	if tp == nil {
		tp = engine.NewMonotonicTimeProvider()
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	ctrl, err := engine.NewController(opts.Surface, engine.ControllerOptions{
		Scheduler:    opts.Scheduler,
		TimeProvider: tp,
		Open:         opts.Open,
		Logger:       logger,
	})
	if err != nil {
		logger.Warn("ballpit unavailable", zap.Error(err))
		return nil, err
	}

	rng := opts.Rand
	if rng == nil {
		rng = newRand(cfg.Simulation.Seed)
	}

	b := &Ballpit{
		Controller: ctrl,
		Spheres:    scene.NewSpheres(cfg.Spheres(), rng),
		cfg:        cfg,
		meter:      opts.Meter,
		sink:       opts.Impacts,
		now:        tp.Now,
		logger:     logger,
	}
	b.Spheres.AddTo(ctrl.Scene)
	if b.meter != nil {
		b.meter.SetParticles(b.Spheres.Count())
	}

	ctrl.OnBeforeRender = b.update
	ctrl.OnAfterResize = func(s engine.Size) {
		b.Spheres.SetBounds(s.WorldWidth/2, s.WorldHeight/2)
	}
	cfg.Camera.Apply(ctrl.Camera)
	ctrl.Resize()

	el := opts.Element
	if el == nil {
		el = SurfaceElement{opts.Surface}
	}
	b.Tracker = opts.Registry.Register(el, pointer.Handlers{
		OnMove:  b.pointerMove,
		OnLeave: b.pointerLeave,
	})
	ctrl.AddCleanup(b.Tracker.Dispose)

	logger.Info("ballpit created",
		zap.Int("count", b.Spheres.Count()),
		zap.Float64("world_width", ctrl.Size().WorldWidth),
		zap.Float64("world_height", ctrl.Size().WorldHeight))
	return b, nil
}

func (b *Ballpit) update(fs engine.FrameState) {
	st := b.Spheres.Update(fs.Delta)
	if b.meter != nil {
		b.meter.Record(b.now(), st.Collisions, st.Walls.Hits, st.Walls.MaxImpact)
	}
	if b.sink != nil && st.Walls.Hits > 0 {
		b.sink.PlayImpact(st.Walls.MaxImpact, b.Spheres.Sim.Config.MaxVelocity)
	}
}

// A miss keeps the previous cursor point
func (b *Ballpit) pointerMove(t *pointer.Tracker) {
	hit, ok := b.Camera.Raycast(t.NPosition)
	if !ok {
		return
	}
	b.Spheres.SetCursor(hit)
}

func (b *Ballpit) pointerLeave(*pointer.Tracker) {
	b.Spheres.ClearCursor()
}

// SetHidden also drops the partial fps window so paused time is not averaged
func (b *Ballpit) SetHidden(v bool) {
	if v && b.meter != nil {
		b.meter.Pause()
	}
	b.Controller.SetHidden(v)
}

// Cursor is the current world-space repulsion point
func (b *Ballpit) Cursor() mgl64.Vec3 {
	c := b.Spheres.Sim.Cursor
	return mgl64.Vec3{c.X, c.Y, c.Z}
}

// Config returns the normalized configuration the instance was built from
func (b *Ballpit) Config() *config.Config { return b.cfg }

// SurfaceElement tracks a surface whose origin is the host origin
type SurfaceElement struct {
	engine.Surface
}

func (e SurfaceElement) Bounds() pointer.Rect {
	w, h := e.Size()
	return pointer.Rect{Width: float64(w), Height: float64(h)}
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}
