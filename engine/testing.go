package engine

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/neon-arcade/render"
)

// TestHost is a Host backed by a mock clock and an in-memory canvas
// Tests drive frames with Step and input with Send
type TestHost struct {
	Clock  *MockTimeProvider
	Frames *Refresher
	Screen *render.Buffer

	handler InputHandler
	token   int
}

// NewTestHost creates a host with a w by h canvas
func NewTestHost(w, h int) *TestHost {
	clock := NewMockTimeProvider(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	return &TestHost{
		Clock:  clock,
		Frames: NewRefresher(clock, nil),
		Screen: render.NewBuffer(w, h),
	}
}

func (h *TestHost) Canvas() Canvas   { return h.Screen }
func (h *TestHost) Display() Display { return h.Frames }

func (h *TestHost) Listen(fn InputHandler) func() {
	h.token++
	token := h.token
	h.handler = fn
	return func() {
		if h.token == token {
			h.handler = nil
		}
	}
}

// Listening reports whether a handler is installed
func (h *TestHost) Listening() bool {
	return h.handler != nil
}

// Send delivers ev to the installed handler
func (h *TestHost) Send(ev tcell.Event) bool {
	if h.handler == nil {
		return false
	}
	return h.handler(ev)
}

// Key sends a key event
func (h *TestHost) Key(k tcell.Key, r rune) bool {
	return h.Send(tcell.NewEventKey(k, r, tcell.ModNone))
}

// Step advances the clock by d and flushes one frame
func (h *TestHost) Step(d time.Duration) int {
	h.Clock.Advance(d)
	return h.Frames.Flush()
}
