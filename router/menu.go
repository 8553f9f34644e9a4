package router

import (
	"fmt"

	"github.com/lixenwraith/neon-arcade/constants"
	"github.com/lixenwraith/neon-arcade/render"
	"github.com/lixenwraith/neon-arcade/status"
)

// entryAt maps a screen row to a menu entry
func entryAt(y, n int) (int, bool) {
	if y < constants.MenuTop {
		return 0, false
	}
	i := (y - constants.MenuTop) / constants.MenuEntryHeight
	if i >= n || (y-constants.MenuTop)%constants.MenuEntryHeight == constants.MenuEntryHeight-1 {
		return 0, false
	}
	return i, true
}

// Render draws the menu, or the control footer over the mounted game
func (r *Router) Render() {
	c := r.app.Canvas
	_, h := c.Size()
	if r.active != menu {
		render.DrawText(c, 0, h-1, constants.TextHelp, render.StyleDim)
		return
	}

	c.Clear()
	render.DrawCentered(c, 1, "N E O N   A R C A D E", render.StyleTitle)
	for i, g := range r.games {
		info := g.Info()
		y := constants.MenuTop + i*constants.MenuEntryHeight
		style := render.StyleBase
		marker := "  "
		if i == r.cursor {
			style = render.StyleSelected
			marker = "> "
		}
		badge := r.app.Status.Badge(info.ID).Get()
		line := fmt.Sprintf("%s%d  %-14s %s %.0f", marker, i+1, info.Title, info.BadgeLabel, badge)
		render.DrawText(c, 2, y, line, style)
		render.DrawText(c, 7, y+1, info.Subtitle, render.StyleDim)
	}

	footer := "1-3 or arrows+Enter to play  m mute  q quit"
	if r.app.Status.Bools.Get(status.AudioMuted).Load() {
		footer += "  [muted]"
	}
	render.DrawText(c, 2, h-1, footer, render.StyleDim)
}
