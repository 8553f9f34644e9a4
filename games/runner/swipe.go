package runner

import (
	"math"
	"time"

	"github.com/lixenwraith/neon-arcade/constants"
)

// Swipe recognizes a quick horizontal drag as a lane shift
type Swipe struct {
	active bool
	x, y   float64
	at     time.Time
}

// Begin records the press point in field units
func (s *Swipe) Begin(x, y float64, at time.Time) {
	s.active = true
	s.x, s.y, s.at = x, y, at
}

// Active reports whether a press is being tracked
func (s *Swipe) Active() bool {
	return s.active
}

// End finishes the gesture and returns -1, +1, or 0 when it does not qualify
func (s *Swipe) End(x, y float64, at time.Time) int {
	if !s.active {
		return 0
	}
	s.active = false

	dx, dy := x-s.x, y-s.y
	if at.Sub(s.at) > constants.RunnerSwipeMaxTime {
		return 0
	}
	if math.Abs(dx) <= constants.RunnerSwipeThreshold || math.Abs(dx) <= math.Abs(dy) {
		return 0
	}
	if dx < 0 {
		return -1
	}
	return 1
}
