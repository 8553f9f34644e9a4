package clicker

import (
	"fmt"

	"github.com/lixenwraith/neon-arcade/constants"
	"github.com/lixenwraith/neon-arcade/render"
)

// layout holds the clickable regions of the last render
type layout struct {
	button render.Rect
	rows   []render.Rect
}

func computeLayout(w int) layout {
	bw := min(24, w-2)
	l := layout{button: render.Rect{X: (w - bw) / 2, Y: constants.HUDRows + 3, W: bw, H: 5}}
	top := l.button.Y + l.button.H + 2
	for i := range Upgrades {
		l.rows = append(l.rows, render.Rect{X: 2, Y: top + i*2, W: max(0, w-4), H: 1})
	}
	return l
}

func (g *Game) render() {
	if g.host == nil {
		return
	}
	c := g.host.Canvas()
	c.Clear()
	w, h := c.Size()
	g.layout = computeLayout(w)
	s := g.econ.State

	hud := fmt.Sprintf(" BITS %.0f  TOTAL %.0f  %d/click  %d/s", s.Bits, s.Total, s.BitsPerClick, s.BitsPerSecond)
	render.DrawText(c, 0, 0, hud, render.StyleWarn)

	b := g.layout.button
	render.DrawBox(c, b, render.StyleTitle)
	render.DrawCentered(c, b.Y+b.H/2, "[ HACK ]", render.StyleTitle)
	if g.critFlash > 0 {
		render.DrawCentered(c, b.Y-1, fmt.Sprintf("CRIT +%.0f", g.lastGain), render.StyleAccent)
	}

	for i, u := range Upgrades {
		row := g.layout.rows[i]
		level := u.Level(&s)
		cost := u.Cost(level)
		style := render.StyleDim
		if s.Bits >= float64(cost) {
			style = render.StyleGood
		}
		line := fmt.Sprintf("%c  %-16s lv %-3d cost %-8d %s", u.Key, u.Title, level, cost, u.Description)
		render.DrawText(c, row.X, row.Y, line, style)
	}

	if g.paused {
		render.DrawCentered(c, h-2, constants.TextPaused, render.StyleOverlay)
	}
}
