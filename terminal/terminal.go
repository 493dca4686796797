package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ballpit/parameter"
	"github.com/lixenwraith/ballpit/render"
)

// Terminal is the tcell-backed host surface
type Terminal struct {
	screen tcell.Screen
	hud    int

	finiOnce sync.Once
}

// New opens the process terminal
func New() (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open screen: %w", err)
	}
	return &Terminal{screen: s, hud: parameter.HUDRows}, nil
}

// NewWithScreen wraps an existing screen, used with tcell simulation screens
func NewWithScreen(s tcell.Screen) *Terminal {
	return &Terminal{screen: s, hud: parameter.HUDRows}
}

// Init enters the alternate screen with mouse motion and focus reporting
func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	t.screen.EnableMouse(tcell.MouseMotionEvents)
	t.screen.EnableFocus()
	t.screen.HideCursor()
	t.screen.Clear()
	return nil
}

// Fini restores terminal state. Safe to call multiple times
func (t *Terminal) Fini() {
	t.finiOnce.Do(t.screen.Fini)
}

// Size returns current terminal dimensions in cells
func (t *Terminal) Size() (width, height int) {
	return t.screen.Size()
}

// PixelSize is the drawable area in half-block pixels, excluding the HUD rows
func (t *Terminal) PixelSize() (width, height int) {
	w, h := t.screen.Size()
	return w, max(h-t.hud, 0) * 2
}

// PollEvent blocks until the next input event; EventClosed after Fini
func (t *Terminal) PollEvent() Event {
	return translate(t.screen.PollEvent())
}

// Sync forces full redraw
func (t *Terminal) Sync() {
	t.screen.Sync()
}

// Screen exposes the underlying tcell screen
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// PixelSurface adapts the terminal to a host surface measured in half-block pixels
type PixelSurface struct {
	*Terminal
}

func (s PixelSurface) Size() (int, int) { return s.PixelSize() }

// CellToPixel maps a mouse cell to the pixel at the center of its upper half
func CellToPixel(x, y int) (float64, float64) {
	return float64(x) + 0.5, float64(y)*2 + 1
}

func rgbToTcell(c render.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
