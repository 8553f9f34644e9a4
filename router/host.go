package router

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/neon-arcade/engine"
)

// host is the container handed to the mounted game
// It owns the single input listener slot
type host struct {
	canvas  engine.Canvas
	display engine.Display

	handler engine.InputHandler
	token   uint64
}

func (h *host) Canvas() engine.Canvas   { return h.canvas }
func (h *host) Display() engine.Display { return h.display }

// Listen replaces the current handler; a stale cancel does not remove a newer one
func (h *host) Listen(fn engine.InputHandler) func() {
	h.token++
	token := h.token
	h.handler = fn
	return func() {
		if h.token == token {
			h.handler = nil
		}
	}
}

func (h *host) dispatch(ev tcell.Event) bool {
	if h.handler == nil {
		return false
	}
	return h.handler(ev)
}
