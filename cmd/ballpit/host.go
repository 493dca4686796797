package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/ballpit/audio"
	"github.com/lixenwraith/ballpit/ballpit"
	"github.com/lixenwraith/ballpit/config"
	"github.com/lixenwraith/ballpit/engine"
	"github.com/lixenwraith/ballpit/parameter"
	"github.com/lixenwraith/ballpit/pointer"
	"github.com/lixenwraith/ballpit/render"
	"github.com/lixenwraith/ballpit/status"
	"github.com/lixenwraith/ballpit/terminal"
)

var (
	hudForeground = render.RGB{R: 0xC8, G: 0xC8, B: 0xD2}
	hudBackground = render.RGB{R: 0x14, G: 0x14, B: 0x1E}
)

// host owns the terminal session; after start every method runs on the loop goroutine
type host struct {
	cfg    *config.Config
	term   *terminal.Terminal
	loop   *engine.Loop
	feed   *pointer.Feed
	reg    *pointer.Registry
	meter  *status.FrameMeter
	player *audio.Player
	logger *zap.Logger
	quit   context.CancelFunc

	mode     ballpit.Mode
	bp       *ballpit.Ballpit
	rast     *render.Rasterizer
	backdrop *render.Framebuffer

	paused  bool
	blurred bool
	showHUD bool
}

// crashHandler restores the terminal before reporting a panic
func crashHandler(term *terminal.Terminal, where string) {
	if r := recover(); r != nil {
		term.Fini()
		// \r\n in case the tty is still raw
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mBALLPIT CRASHED (%s): %v\x1b[0m\r\n", where, r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	}
}

func runTerminal(cmd *cobra.Command, _ []string) error {
	cfg, logger, closeLog, err := bootstrap()
	if err != nil {
		return err
	}
	defer closeLog()

	term, err := terminal.New()
	if err != nil {
		return err
	}
	if err := term.Init(); err != nil {
		return err
	}
	defer term.Fini()
	defer crashHandler(term, "main")

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	feed := pointer.NewFeed()
	h := &host{
		cfg:     cfg,
		term:    term,
		loop:    engine.NewLoop(cfg.Render.FrameInterval, logger),
		feed:    feed,
		reg:     pointer.NewRegistry(feed),
		meter:   status.NewFrameMeter(status.NewRegistry()),
		player:  audio.NewPlayer(cfg.Audio, logger),
		logger:  logger,
		quit:    cancel,
		showHUD: true,
	}
	if err := h.player.Initialize(); err != nil {
		logger.Warn("audio disabled", zap.Error(err))
	}
	defer h.player.Cleanup()

	cols, _ := term.Size()
	h.mode = ballpit.SelectMode(ballpit.TerminalWidthPx(cols), cfg.Render)
	logger.Info("capability selected", zap.Stringer("mode", h.mode), zap.Int("cols", cols))
	h.build()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer crashHandler(term, "loop")
		return h.loop.Run(gctx)
	})
	g.Go(func() error {
		defer crashHandler(term, "input")
		return h.pollInput()
	})
	g.Go(func() error {
		// Fini unblocks PollEvent
		<-gctx.Done()
		term.Fini()
		return nil
	})
	if w, err := config.NewWatcher(configPath, parameter.ConfigReloadDebounce, logger); err != nil {
		logger.Warn("config reload disabled", zap.Error(err))
	} else {
		g.Go(func() error { return w.Run(gctx) })
		g.Go(func() error {
			for {
				select {
				case <-gctx.Done():
					return nil
				case <-w.Changes():
					h.loop.Post(h.reload)
				}
			}
		})
	}

	err = g.Wait()
	h.dispose()
	return err
}

func (h *host) pollInput() error {
	for {
		ev := h.term.PollEvent()
		switch ev.Type {
		case terminal.EventClosed:
			return nil
		case terminal.EventError:
			h.quit()
			return fmt.Errorf("terminal input: %w", ev.Err)
		}
		if !h.loop.Post(func() { h.handle(ev) }) {
			return nil
		}
	}
}

// build creates the instance for the current mode and config
func (h *host) build() {
	if h.mode == ballpit.ModeFallback {
		h.drawBackdrop()
		return
	}

	bp, err := ballpit.New(ballpit.Options{
		Config:       h.cfg,
		Surface:      terminal.PixelSurface{Terminal: h.term},
		Registry:     h.reg,
		Scheduler:    h.loop,
		TimeProvider: engine.NewMonotonicTimeProvider(),
		Open: func(engine.Surface) (engine.Renderer, error) {
			h.rast = ballpit.NewRasterizer(h.cfg.Render)
			return h.rast, nil
		},
		Meter:   h.meter,
		Impacts: h.player,
		Logger:  h.logger,
	})
	if err != nil {
		// Surface stays blank
		h.logger.Error("ballpit construction failed", zap.Error(err))
		return
	}
	h.bp = bp
	bp.OnAfterRender = func(engine.FrameState) { h.flush() }
	bp.SetIntersecting(true)
	bp.SetHidden(h.paused || h.blurred)
}

func (h *host) dispose() {
	if h.bp != nil {
		h.bp.Dispose()
		h.bp = nil
	}
}

func (h *host) rebuild() {
	h.dispose()
	h.build()
}

func (h *host) reload() {
	cfg, err := reloadConfig(h.logger)
	if err != nil {
		h.logger.Warn("config reload failed, keeping current instance", zap.Error(err))
		return
	}
	h.logger.Info("config changed, rebuilding")
	h.cfg = cfg
	h.rebuild()
}

func (h *host) flush() {
	if h.rast == nil {
		return
	}
	h.term.Flush(h.rast.Framebuffer(), h.hudText(), hudForeground, hudBackground)
}

func (h *host) hudText() string {
	if !h.showHUD {
		return ""
	}
	text := " " + h.meter.Summary()
	if h.paused {
		text += "  [paused]"
	}
	return text
}

func (h *host) drawBackdrop() {
	w, ht := h.term.PixelSize()
	if h.backdrop == nil {
		h.backdrop = render.NewFramebuffer(w, ht)
	} else {
		h.backdrop.Resize(w, ht)
	}
	bg, _ := render.ParseHex(h.cfg.Render.Background)
	render.DrawBackdrop(h.backdrop, bg, ballpit.BackdropColors(h.cfg.Simulation))
	h.term.Flush(h.backdrop, "", hudForeground, bg)
}

func (h *host) setVisibility() {
	if h.bp != nil {
		h.bp.SetHidden(h.paused || h.blurred)
	}
}

func (h *host) handle(ev terminal.Event) {
	switch ev.Type {
	case terminal.EventKey:
		h.handleKey(ev)

	case terminal.EventResize:
		h.term.Sync()
		if h.mode == ballpit.ModeFallback {
			h.drawBackdrop()
		} else if h.bp != nil {
			h.bp.RequestResize()
		}

	case terminal.EventMouse:
		x, y := terminal.CellToPixel(ev.MouseX, ev.MouseY)
		if _, ph := h.term.PixelSize(); y < float64(ph) {
			h.feed.Move(x, y)
		} else {
			// The HUD row is outside the surface
			h.feed.Leave()
		}

	case terminal.EventFocus:
		h.blurred = !ev.Focused
		if h.blurred {
			h.feed.Leave()
		}
		h.setVisibility()
	}
}

func (h *host) handleKey(ev terminal.Event) {
	switch ev.Key {
	case terminal.KeyEscape, terminal.KeyCtrlC:
		h.quit()
		return
	case terminal.KeyRune:
	default:
		return
	}

	switch ev.Rune {
	case 'q':
		h.quit()
	case ' ':
		h.paused = !h.paused
		h.setVisibility()
		h.flush()
	case 'r':
		if h.mode == ballpit.ModeFull {
			h.logger.Debug("rebuild requested")
			h.rebuild()
		}
	case 'h':
		h.showHUD = !h.showHUD
		h.flush()
	}
}
