package ballpit

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/ballpit/config"
	"github.com/lixenwraith/ballpit/parameter"
	"github.com/lixenwraith/ballpit/render"
)

// Mode is the rendering capability chosen once at startup
type Mode int

const (
	ModeFull Mode = iota
	ModeFallback
)

func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// SelectMode picks the static backdrop for surfaces narrower than the configured width
func SelectMode(widthPx int, cfg config.RenderConfig) Mode {
	if cfg.FallbackMinWidth > 0 && widthPx < cfg.FallbackMinWidth {
		return ModeFallback
	}
	return ModeFull
}

// TerminalWidthPx converts terminal columns to the width capability selection compares against
func TerminalWidthPx(cols int) int {
	return cols * parameter.TerminalCellWidthPx
}

// BackdropColors returns up to the first three palette colors for the static backdrop
func BackdropColors(sim config.SimulationConfig) []colorful.Color {
	pal := sim.Palette()
	n := min(pal.Len(), 3)
	out := make([]colorful.Color, n)
	for i := range n {
		out[i] = pal.Stop(i)
	}
	return out
}

// NewRasterizer builds the terminal renderer with configured background and exposure
func NewRasterizer(cfg config.RenderConfig) *render.Rasterizer {
	r := render.NewRasterizer()
	if bg, ok := render.ParseHex(cfg.Background); ok {
		r.Background = bg
	}
	if cfg.Exposure > 0 {
		r.Exposure = cfg.Exposure
	}
	return r
}
