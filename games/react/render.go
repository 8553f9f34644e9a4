package react

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/neon-arcade/constants"
	"github.com/lixenwraith/neon-arcade/render"
)

const padGap = 2

func padLayout(w, h int) []render.Rect {
	pw := max(3, (w-padGap*(constants.ReactTargets+1))/constants.ReactTargets)
	ph := max(3, min(7, h-8))
	y := constants.HUDRows + 3
	pads := make([]render.Rect, constants.ReactTargets)
	for i := range pads {
		pads[i] = render.Rect{X: padGap + i*(pw+padGap), Y: y, W: pw, H: ph}
	}
	return pads
}

func (g *Game) render() {
	if g.host == nil {
		return
	}
	c := g.host.Canvas()
	c.Clear()
	w, h := c.Size()
	g.pads = padLayout(w, h)
	s := g.session

	render.DrawText(c, 0, 0, fmt.Sprintf(" STREAK %d  BEST %d", s.Streak, g.best), render.StyleWarn)

	for i, r := range g.pads {
		style := render.StyleDim
		if s.Phase == Live && i == s.Target {
			style = render.StyleAccent
			render.FillRect(c, r, '█', style)
		} else {
			render.DrawBox(c, r, style)
		}
		render.DrawText(c, r.X+r.W/2, r.Y+r.H, fmt.Sprintf("%d", i+1), render.StyleBase)
	}

	barY := constants.HUDRows + 3 + g.pads[0].H + 2
	if s.Phase == Live {
		width := max(0, w-4)
		filled := int(float64(width) * s.Remaining() / Window(s.Streak))
		bar := strings.Repeat("▮", filled) + strings.Repeat("·", width-filled)
		style := render.StyleGood
		if s.Remaining() < Window(s.Streak)/3 {
			style = render.StyleDanger
		}
		render.DrawText(c, 2, barY, bar, style)
	} else {
		msg := "Enter to start"
		if s.Outcome != OutcomeNone {
			msg = fmt.Sprintf("%s - streak %d - Enter to retry", s.Outcome, s.Streak)
		}
		render.DrawCentered(c, barY, msg, render.StyleTitle)
	}

	if s.Paused {
		render.DrawCentered(c, h-2, constants.TextPaused, render.StyleOverlay)
	}
}
