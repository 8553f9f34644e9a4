package runner

import (
	"fmt"

	"github.com/lixenwraith/neon-arcade/constants"
	"github.com/lixenwraith/neon-arcade/render"
)

// render draws the field, entities and HUD; it never mutates the session
func (g *Game) render() {
	if g.host == nil {
		return
	}
	c := g.host.Canvas()
	c.Clear()
	w, h := c.Size()
	rows := h - constants.HUDRows
	if w <= 0 || rows <= 0 {
		return
	}

	sx := float64(w) / constants.RunnerFieldWidth
	sy := float64(rows) / constants.RunnerFieldHeight
	col := func(fx float64) int { return int(fx * sx) }
	row := func(fy float64) int { return constants.HUDRows + int(fy*sy) }

	// Lane separators sit halfway between lane centers
	for i := 0; i < constants.RunnerLanes-1; i++ {
		x := col((LaneX(i) + LaneX(i+1)) / 2)
		for y := constants.HUDRows; y < h; y += 2 {
			c.SetContent(x, y, '┊', render.StyleDim)
		}
	}

	s := g.session
	for _, o := range s.Obstacles {
		b := o.Box()
		r := render.Rect{X: col(b.X), Y: row(b.Y), W: max(1, col(b.W)), H: max(1, int(b.H*sy+0.5))}
		if r.Y < constants.HUDRows {
			r.H -= constants.HUDRows - r.Y
			r.Y = constants.HUDRows
		}
		render.FillRect(c, r, '█', render.StyleAccent)
	}

	p := PlayerBox(s.PlayerLane)
	playerStyle := render.StyleTitle
	if !s.Alive {
		playerStyle = render.StyleDanger
	}
	pr := render.Rect{X: col(p.X), Y: row(p.Y), W: max(1, col(p.W)), H: max(1, int(p.H*sy+0.5))}
	render.FillRect(c, pr, '▲', playerStyle)

	hud := fmt.Sprintf(" SCORE %d  BEST %d  SPEED %.0f", int(s.Score), g.best, s.Speed)
	render.DrawText(c, 0, 0, hud, render.StyleWarn)

	mid := constants.HUDRows + rows/2
	switch {
	case !s.Alive:
		render.DrawCentered(c, mid, constants.TextCrashed, render.StyleOverlay)
	case s.Paused:
		render.DrawCentered(c, mid, constants.TextPaused, render.StyleOverlay)
	}
}
