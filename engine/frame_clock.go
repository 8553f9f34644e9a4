package engine

import (
	"time"

	"github.com/lixenwraith/neon-arcade/constants"
)

// ClampStep converts the elapsed time between frames to a simulation step in
// seconds, capped at constants.MaxFrameStep; negative elapsed yields 0
func ClampStep(elapsed time.Duration) float64 {
	dt := elapsed.Seconds()
	if dt < 0 {
		return 0
	}
	if dt > constants.MaxFrameStep {
		return constants.MaxFrameStep
	}
	return dt
}

// FrameClock is a game's repeating subscription on a Display
// Each frame runs Update (only when Advance allows it) then Render
type FrameClock struct {
	Update  func(dt float64)
	Render  func()
	Advance func() bool

	display   Display
	handle    FrameID
	scheduled bool
	gen       uint64
	last      time.Time
}

// Start subscribes to d, replacing any previous subscription
func (c *FrameClock) Start(d Display) {
	c.Stop()
	c.display = d
	c.last = d.Now()
	c.scheduled = true
	c.schedule()
}

// Stop cancels the pending frame; a callback already handed out becomes a no-op
func (c *FrameClock) Stop() {
	if !c.scheduled {
		return
	}
	c.scheduled = false
	c.gen++
	c.display.CancelFrame(c.handle)
	c.handle = 0
}

// Running reports whether a frame is scheduled
func (c *FrameClock) Running() bool {
	return c.scheduled
}

func (c *FrameClock) schedule() {
	gen := c.gen
	c.handle = c.display.RequestFrame(func(now time.Time) {
		c.tick(gen, now)
	})
}

func (c *FrameClock) tick(gen uint64, now time.Time) {
	if !c.scheduled || gen != c.gen {
		return
	}

	dt := ClampStep(now.Sub(c.last))
	c.last = now

	if c.Update != nil && (c.Advance == nil || c.Advance()) {
		c.Update(dt)
	}
	if c.Render != nil {
		c.Render()
	}

	// Update or Render may have stopped the clock
	if c.scheduled && gen == c.gen {
		c.schedule()
	}
}
