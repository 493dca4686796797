package engine

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/ballpit/camera"
	"github.com/lixenwraith/ballpit/parameter"
	"github.com/lixenwraith/ballpit/scene"
)

// ErrContextUnavailable reports that a surface could not provide a rendering context
var ErrContextUnavailable = errors.New("rendering context unavailable")

// Surface is the host drawable the controller measures
type Surface interface {
	Size() (width, height int)
}

// Renderer draws a scene through a camera into its surface
type Renderer interface {
	SetSize(width, height int)
	Render(s *scene.Scene, cam *camera.Camera)
	Dispose()
}

// OpenRenderer acquires a rendering context for a surface
type OpenRenderer func(Surface) (Renderer, error)

// FrameState is passed to per-frame hooks, both in seconds
type FrameState struct {
	Elapsed float64
	Delta   float64
}

// Size is the measured surface and the world extent it frames
type Size struct {
	Width, Height int
	Ratio         float64
	WorldWidth    float64
	WorldHeight   float64
}

// Controller runs the frame loop only while the surface is on screen and the host is visible
type Controller struct {
	Camera *camera.Camera
	Scene  *scene.Scene

	OnBeforeRender func(FrameState)
	OnAfterRender  func(FrameState)
	OnAfterResize  func(Size)

	surface  Surface
	renderer Renderer
	sched    Scheduler
	clock    *Clock
	resize   *Debouncer
	logger   *zap.Logger

	intersecting bool
	hidden       bool
	running      bool
	frame        FrameID
	state        FrameState
	size         Size
	cleanups     []func()
	disposed     bool
}

// ControllerOptions carries the host collaborators
type ControllerOptions struct {
	Scheduler      Scheduler
	TimeProvider   TimeProvider
	Open           OpenRenderer
	ResizeDebounce time.Duration
	Logger         *zap.Logger
}

// NewController acquires the renderer and measures the surface
// The loop stays stopped until the surface is reported intersecting
func NewController(surface Surface, opts ControllerOptions) (*Controller, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	tp := opts.TimeProvider
	if tp == nil {
		tp = NewMonotonicTimeProvider()
	}
	debounce := opts.ResizeDebounce
	if debounce <= 0 {
		debounce = parameter.ResizeDebounce
	}

	r, err := opts.Open(surface)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrContextUnavailable, err)
	}

	c := &Controller{
		Camera:   camera.New(),
		Scene:    scene.New(),
		surface:  surface,
		renderer: r,
		sched:    opts.Scheduler,
		clock:    NewClock(tp),
		resize:   NewDebouncer(opts.Scheduler, debounce),
		logger:   logger,
	}
	c.Resize()
	return c, nil
}

// SetIntersecting is the visibility observer callback
func (c *Controller) SetIntersecting(v bool) {
	c.intersecting = v
	c.sync()
}

// SetHidden is the host visibility callback (tab hidden, window unfocused or minimized)
func (c *Controller) SetHidden(v bool) {
	c.hidden = v
	c.sync()
}

func (c *Controller) sync() {
	if c.intersecting && !c.hidden && !c.disposed {
		c.Start()
	} else {
		c.Stop()
	}
}

// Start schedules the first frame, no-op while running or disposed
func (c *Controller) Start() {
	if c.running || c.disposed {
		return
	}
	c.running = true
	c.clock.Start()
	c.frame = c.sched.RequestFrame(c.loop)
	c.logger.Debug("animation started")
}

// Stop cancels the scheduled frame and stops the clock, no-op when stopped
func (c *Controller) Stop() {
	if !c.running {
		return
	}
	c.sched.CancelFrame(c.frame)
	c.running = false
	c.clock.Stop()
	c.logger.Debug("animation stopped", zap.Float64("elapsed", c.state.Elapsed))
}

func (c *Controller) loop(time.Time) {
	c.frame = c.sched.RequestFrame(c.loop)

	c.state.Delta = c.clock.Delta()
	c.state.Elapsed += c.state.Delta

	if c.OnBeforeRender != nil {
		c.OnBeforeRender(c.state)
	}
	c.renderer.Render(c.Scene, c.Camera)
	if c.OnAfterRender != nil {
		c.OnAfterRender(c.state)
	}
}

// RequestResize debounces surface measurement
func (c *Controller) RequestResize() {
	if c.disposed {
		return
	}
	c.resize.Trigger(c.Resize)
}

// Resize measures the surface now and updates camera, world size and renderer
func (c *Controller) Resize() {
	w, h := c.surface.Size()
	if w <= 0 || h <= 0 {
		c.logger.Debug("resize skipped, empty surface", zap.Int("width", w), zap.Int("height", h))
		return
	}

	c.Camera.Resize(w, h)
	ws := c.Camera.WorldSize()
	c.size = Size{
		Width:       w,
		Height:      h,
		Ratio:       float64(w) / float64(h),
		WorldWidth:  ws.Width,
		WorldHeight: ws.Height,
	}
	c.renderer.SetSize(w, h)

	if c.OnAfterResize != nil {
		c.OnAfterResize(c.size)
	}
}

// AddCleanup registers a listener or observer removal for Dispose
func (c *Controller) AddCleanup(fn func()) {
	c.cleanups = append(c.cleanups, fn)
}

// Dispose removes listeners, stops the loop and releases scene and renderer resources
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	for _, fn := range slices.Backward(c.cleanups) {
		fn()
	}
	c.cleanups = nil
	c.resize.Cancel()
	c.Stop()
	c.Scene.Clear()
	c.renderer.Dispose()
	c.disposed = true
	c.logger.Debug("controller disposed")
}

func (c *Controller) Running() bool  { return c.running }
func (c *Controller) Disposed() bool { return c.disposed }
func (c *Controller) Size() Size     { return c.size }
func (c *Controller) State() FrameState {
	return c.state
}
