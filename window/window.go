// Package window hosts the ballpit in a desktop window through ebiten
package window

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/lixenwraith/ballpit/audio"
	"github.com/lixenwraith/ballpit/ballpit"
	"github.com/lixenwraith/ballpit/config"
	"github.com/lixenwraith/ballpit/engine"
	"github.com/lixenwraith/ballpit/parameter"
	"github.com/lixenwraith/ballpit/pointer"
	"github.com/lixenwraith/ballpit/render"
	"github.com/lixenwraith/ballpit/status"
)

// titleEvery is the number of updates between window title refreshes
const titleEvery = 30

// Game implements ebiten.Game; every callback runs on ebiten's update goroutine
type Game struct {
	ctx    context.Context
	cfg    *config.Config
	logger *zap.Logger

	tp       engine.TimeProvider
	queue    *engine.FrameQueue
	feed     *pointer.Feed
	registry *pointer.Registry
	meter    *status.FrameMeter
	player   *audio.Player

	mode     ballpit.Mode
	bp       *ballpit.Ballpit
	circles  *render.CircleRenderer
	backdrop *ebiten.Image
	bg       color.RGBA

	width, height int
	hidden        bool
	paused        bool
	showHUD       bool
	updates       int
}

// NewGame builds the instance for a window of the configured logical size
func NewGame(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Game, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	tp := engine.NewMonotonicTimeProvider()
	feed := pointer.NewFeed()
	bg, _ := render.ParseHex(cfg.Render.Background)

	g := &Game{
		ctx:      ctx,
		cfg:      cfg,
		logger:   logger,
		tp:       tp,
		queue:    engine.NewFrameQueue(tp),
		feed:     feed,
		registry: pointer.NewRegistry(feed),
		meter:    status.NewFrameMeter(status.NewRegistry()),
		player:   audio.NewPlayer(cfg.Audio, logger),
		mode:     ballpit.SelectMode(parameter.WindowWidth, cfg.Render),
		bg:       color.RGBA{bg.R, bg.G, bg.B, 0xff},
		width:    parameter.WindowWidth,
		height:   parameter.WindowHeight,
	}

	if g.mode == ballpit.ModeFallback {
		logger.Info("window narrower than capability threshold, drawing static backdrop")
		return g, nil
	}

	if err := g.player.Initialize(); err != nil {
		logger.Warn("audio disabled", zap.Error(err))
	}

	bp, err := ballpit.New(ballpit.Options{
		Config:       cfg,
		Surface:      g,
		Registry:     g.registry,
		Scheduler:    g.queue,
		TimeProvider: tp,
		Open: func(engine.Surface) (engine.Renderer, error) {
			g.circles = render.NewCircleRenderer()
			g.circles.Exposure = cfg.Render.Exposure
			return g.circles, nil
		},
		Meter:   g.meter,
		Impacts: g.player,
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}
	g.bp = bp
	bp.SetIntersecting(true)
	return g, nil
}

// Size reports the device-pixel layout, implementing engine.Surface
func (g *Game) Size() (int, int) { return g.width, g.height }

func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if g.bp == nil {
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	focused := ebiten.IsFocused()
	if hidden := g.paused || !focused || ebiten.IsWindowMinimized(); hidden != g.hidden {
		g.hidden = hidden
		g.bp.SetHidden(hidden)
	}

	// ebiten keeps reporting the last in-window position once the cursor is gone,
	// so an unfocused window counts as left
	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)
	inside := focused && fx >= 0 && fy >= 0 && fx < float64(g.width) && fy < float64(g.height)
	g.feed.Track(fx, fy, inside)

	g.queue.Tick(g.tp.Now())

	g.updates++
	if g.updates%titleEvery == 0 {
		ebiten.SetWindowTitle(parameter.WindowTitle + "  " + g.meter.Summary())
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bg)

	if g.mode == ballpit.ModeFallback {
		g.drawBackdrop(screen)
	} else if g.circles != nil {
		for _, c := range g.circles.Circles {
			col := color.RGBA{c.Color.R, c.Color.G, c.Color.B, 0xff}
			vector.DrawFilledCircle(screen, c.X, c.Y, c.Radius, col, true)
		}
	}

	if g.showHUD {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("%s\nTPS %.1f", g.meter.Summary(), ebiten.ActualTPS()))
	}
}

// drawBackdrop renders the gradient at quarter resolution and scales it up
func (g *Game) drawBackdrop(screen *ebiten.Image) {
	if g.backdrop == nil {
		fb := render.NewFramebuffer(max(1, g.width/4), max(1, g.height/4))
		bg, _ := render.ParseHex(g.cfg.Render.Background)
		render.DrawBackdrop(fb, bg, ballpit.BackdropColors(g.cfg.Simulation))
		g.backdrop = ebiten.NewImage(fb.Width, fb.Height)
		g.backdrop.WritePixels(framebufferRGBA(fb))
	}
	op := &ebiten.DrawImageOptions{}
	bw, bh := g.backdrop.Bounds().Dx(), g.backdrop.Bounds().Dy()
	op.GeoM.Scale(float64(g.width)/float64(bw), float64(g.height)/float64(bh))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(g.backdrop, op)
}

// Layout sizes the screen in device pixels, capped at the configured pixel ratio
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := min(ebiten.Monitor().DeviceScaleFactor(), g.cfg.Render.MaxPixelRatio)
	w := int(float64(outsideWidth) * scale)
	h := int(float64(outsideHeight) * scale)
	if w != g.width || h != g.height {
		g.width, g.height = w, h
		if g.backdrop != nil {
			g.backdrop.Deallocate()
			g.backdrop = nil
		}
		if g.bp != nil {
			g.bp.RequestResize()
		}
	}
	return w, h
}

// Close releases the instance and audio
func (g *Game) Close() {
	if g.bp != nil {
		g.bp.Dispose()
	}
	g.player.Cleanup()
}

// Run opens the window and blocks until it closes or ctx is canceled
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	g, err := NewGame(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer g.Close()

	ebiten.SetWindowSize(parameter.WindowWidth, parameter.WindowHeight)
	ebiten.SetWindowTitle(parameter.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(int(time.Second / cfg.Render.FrameInterval))

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

func framebufferRGBA(fb *render.Framebuffer) []byte {
	out := make([]byte, 0, len(fb.Pix)*4)
	for _, p := range fb.Pix {
		out = append(out, p.R, p.G, p.B, 0xff)
	}
	return out
}
