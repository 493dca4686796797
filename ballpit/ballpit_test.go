package ballpit

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/lixenwraith/ballpit/camera"
	"github.com/lixenwraith/ballpit/config"
	"github.com/lixenwraith/ballpit/engine"
	"github.com/lixenwraith/ballpit/parameter"
	"github.com/lixenwraith/ballpit/pointer"
	"github.com/lixenwraith/ballpit/scene"
	"github.com/lixenwraith/ballpit/status"
)

type fakeSurface struct{ w, h int }

func (s *fakeSurface) Size() (int, int) { return s.w, s.h }

type fakeRenderer struct{ renders, disposed int }

func (r *fakeRenderer) SetSize(int, int) {}
func (r *fakeRenderer) Render(*scene.Scene, *camera.Camera) { r.renders++ }
func (r *fakeRenderer) Dispose() { r.disposed++ }

type impactRecorder struct{ speeds []float64 }

func (r *impactRecorder) PlayImpact(speed, _ float64) bool {
	r.speeds = append(r.speeds, speed)
	return true
}

type fixture struct {
	bp       *Ballpit
	feed     *pointer.Feed
	queue    *engine.FrameQueue
	mock     *engine.MockTimeProvider
	renderer *fakeRenderer
	reg      *status.Registry
	impacts  *impactRecorder
}

func newFixture(t *testing.T, cfg *config.Config) *fixture {
	t.Helper()
	mock := engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	f := &fixture{
		feed:     pointer.NewFeed(),
		queue:    engine.NewFrameQueue(mock),
		mock:     mock,
		renderer: &fakeRenderer{},
		reg:      status.NewRegistry(),
		impacts:  &impactRecorder{},
	}
	bp, err := New(Options{
		Config:       cfg,
		Surface:      &fakeSurface{w: 300, h: 200},
		Registry:     pointer.NewRegistry(f.feed),
		Scheduler:    f.queue,
		TimeProvider: mock,
		Open:         func(engine.Surface) (engine.Renderer, error) { return f.renderer, nil },
		Meter:        status.NewFrameMeter(f.reg),
		Impacts:      f.impacts,
		Rand:         rand.New(rand.NewPCG(1, 2)),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	f.bp = bp
	return f
}

func (f *fixture) tick() {
	f.queue.Tick(f.mock.Advance(16 * time.Millisecond))
}

func smallConfig() *config.Config {
	cfg := config.Default()
	cfg.Simulation.Count = 20
	return cfg
}

func TestNewPopulatesScene(t *testing.T) {
	f := newFixture(t, smallConfig())
	s := f.bp.Scene

	if len(s.Meshes) != 1 || s.Meshes[0].Count() != 20 {
		t.Fatalf("Expected one mesh of 20 instances, got %d meshes", len(s.Meshes))
	}
	if len(s.Ambient) != 1 || len(s.PointLights) != 2 {
		t.Errorf("Expected 1 ambient and 2 point lights, got %d and %d", len(s.Ambient), len(s.PointLights))
	}
	if f.feed.Subscribers() != 1 {
		t.Errorf("Expected pointer subscription, got %d", f.feed.Subscribers())
	}
}

func TestBoundsFollowWorldSize(t *testing.T) {
	f := newFixture(t, smallConfig())
	size := f.bp.Size()
	cfg := f.bp.Spheres.Sim.Config

	if math.Abs(cfg.MaxX-size.WorldWidth/2) > 1e-9 || math.Abs(cfg.MaxY-size.WorldHeight/2) > 1e-9 {
		t.Errorf("Bounds (%v, %v) do not match half world %vx%v", cfg.MaxX, cfg.MaxY, size.WorldWidth, size.WorldHeight)
	}
}

func TestPointerMoveAndLeave(t *testing.T) {
	f := newFixture(t, smallConfig())

	f.feed.Move(150, 100)
	c := f.bp.Cursor()
	if math.Abs(c.X()) > 1e-6 || math.Abs(c.Y()) > 1e-6 || math.Abs(c.Z()) > 1e-6 {
		t.Errorf("Center pointer should hit the origin, got %v", c)
	}
	if f.bp.Spheres.CursorLight.Position != c {
		t.Errorf("Cursor light %v should follow the cursor %v", f.bp.Spheres.CursorLight.Position, c)
	}

	f.feed.Move(300, 0)
	c = f.bp.Cursor()
	if c.X() <= 0 || c.Y() <= 0 {
		t.Errorf("Top right corner should map to +X +Y, got %v", c)
	}

	f.feed.Leave()
	c = f.bp.Cursor()
	if c.X() != parameter.CursorSentinelX || c.Y() != parameter.CursorSentinelY {
		t.Errorf("Leave should park the cursor at the sentinel, got %v", c)
	}
	if f.bp.Spheres.CursorLight.Position != c {
		t.Errorf("Leave should park the cursor light with the cursor, got %v", f.bp.Spheres.CursorLight.Position)
	}
}

func TestFramesRecordMetrics(t *testing.T) {
	f := newFixture(t, smallConfig())
	f.bp.SetIntersecting(true)

	for range 3 {
		f.tick()
	}
	if f.renderer.renders != 3 {
		t.Errorf("Expected 3 renders, got %d", f.renderer.renders)
	}
	if got := f.reg.Ints.Get(status.KeyFrames).Load(); got != 3 {
		t.Errorf("Expected 3 frames recorded, got %d", got)
	}
	if got := f.reg.Ints.Get(status.KeyParticles).Load(); got != 20 {
		t.Errorf("Expected 20 particles, got %d", got)
	}

	f.bp.SetHidden(true)
	f.tick()
	if f.renderer.renders != 3 {
		t.Errorf("Hidden ballpit rendered, got %d renders", f.renderer.renders)
	}
}

func TestWallImpactsReachSink(t *testing.T) {
	cfg := smallConfig()
	cfg.Simulation.Gravity = 5
	f := newFixture(t, cfg)
	f.bp.SetIntersecting(true)

	for range 300 {
		f.tick()
	}
	if len(f.impacts.speeds) == 0 {
		t.Fatal("Falling spheres never reported a floor impact")
	}
	for _, s := range f.impacts.speeds {
		if s < 0 || s > parameter.DefaultMaxVelocity*2 {
			t.Errorf("Impact speed out of range: %v", s)
		}
	}
}

func TestContextUnavailableRegistersNothing(t *testing.T) {
	feed := pointer.NewFeed()
	mock := engine.NewMockTimeProvider(time.Now())
	q := engine.NewFrameQueue(mock)

	bp, err := New(Options{
		Config:       smallConfig(),
		Surface:      &fakeSurface{w: 300, h: 200},
		Registry:     pointer.NewRegistry(feed),
		Scheduler:    q,
		TimeProvider: mock,
		Open: func(engine.Surface) (engine.Renderer, error) {
			return nil, errors.New("no context")
		},
	})
	if !errors.Is(err, engine.ErrContextUnavailable) {
		t.Fatalf("Expected ErrContextUnavailable, got %v", err)
	}
	if bp != nil {
		t.Error("Failed construction must not return an instance")
	}
	if feed.Subscribers() != 0 || q.PendingFrames() != 0 || q.PendingTimers() != 0 {
		t.Error("Failed construction must leave nothing registered or scheduled")
	}
}

func TestDisposeReleasesEverything(t *testing.T) {
	f := newFixture(t, smallConfig())
	f.bp.SetIntersecting(true)
	mesh := f.bp.Spheres.InstancedMesh

	f.bp.Dispose()
	f.bp.Dispose()

	if f.feed.Subscribers() != 0 {
		t.Errorf("Dispose should drop the pointer subscription, %d left", f.feed.Subscribers())
	}
	if f.renderer.disposed != 1 {
		t.Errorf("Renderer disposed %d times", f.renderer.disposed)
	}
	if !mesh.Geometry.Disposed() || !mesh.Material.Disposed() {
		t.Error("Mesh resources should be disposed")
	}
	if f.queue.PendingFrames() != 0 {
		t.Error("Dispose should cancel the scheduled frame")
	}
}

func TestSelectMode(t *testing.T) {
	cfg := config.Default().Render
	tests := []struct {
		name  string
		width int
		min   int
		want  Mode
	}{
		{"wide terminal", TerminalWidthPx(120), cfg.FallbackMinWidth, ModeFull},
		{"narrow terminal", TerminalWidthPx(80), cfg.FallbackMinWidth, ModeFallback},
		{"exact threshold", 768, 768, ModeFull},
		{"fallback disabled", 10, 0, ModeFull},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := cfg
			rc.FallbackMinWidth = tt.min
			if got := SelectMode(tt.width, rc); got != tt.want {
				t.Errorf("SelectMode(%d) = %v, want %v", tt.width, got, tt.want)
			}
		})
	}
}

func TestBackdropColors(t *testing.T) {
	sim := config.Default().Simulation
	sim.Colors = []string{"#FF0000", "#00FF00", "#0000FF", "#FFFFFF"}
	if got := BackdropColors(sim); len(got) != 3 || got[2].B != 1 {
		t.Errorf("Expected first three colors, got %v", got)
	}

	sim.Colors = []string{"#FF0000"}
	if got := BackdropColors(sim); len(got) != 1 {
		t.Errorf("Expected one color, got %d", len(got))
	}
}
