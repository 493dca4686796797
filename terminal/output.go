package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ballpit/render"
)

// HalfBlock draws the top pixel as foreground and the bottom pixel as background
const HalfBlock = '▀'

// Flush writes the framebuffer two pixel rows per cell, then the HUD line below it
func (t *Terminal) Flush(fb *render.Framebuffer, hud string, hudFg, hudBg render.RGB) {
	w, h := t.screen.Size()
	rows := min(h-t.hud, (fb.Height+1)/2)

	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < w; cx++ {
			top := fb.At(cx, cy*2)
			bottom := fb.At(cx, cy*2+1)
			style := tcell.StyleDefault.Foreground(rgbToTcell(top)).Background(rgbToTcell(bottom))
			t.screen.SetContent(cx, cy, HalfBlock, nil, style)
		}
	}

	if t.hud > 0 && h > 0 {
		y := h - t.hud
		style := tcell.StyleDefault.Foreground(rgbToTcell(hudFg)).Background(rgbToTcell(hudBg))
		x := 0
		for _, r := range hud {
			if x >= w {
				break
			}
			t.screen.SetContent(x, y, r, nil, style)
			x++
		}
		for ; x < w; x++ {
			t.screen.SetContent(x, y, ' ', nil, style)
		}
	}

	t.screen.Show()
}
