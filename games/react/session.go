package react

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/neon-arcade/constants"
)

// Phase of a reaction session
type Phase int

const (
	Idle Phase = iota
	Live
)

// Outcome records how the last session ended
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeFail
	OutcomeTimeout
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFail:
		return "WRONG PAD"
	case OutcomeTimeout:
		return "TOO SLOW"
	default:
		return ""
	}
}

// Window returns the response window in seconds for a streak
func Window(streak int) float64 {
	w := constants.ReactWindowMax - float64(streak)*constants.ReactWindowStep
	return math.Max(constants.ReactWindowMin, math.Min(constants.ReactWindowMax, w))
}

// Session is one Glitch React run
type Session struct {
	Phase   Phase
	Outcome Outcome
	Target  int
	Streak  int
	Elapsed float64
	Paused  bool
	// Issued counts targets handed out this session
	Issued int

	rng *rand.Rand
}

func NewSession(rng *rand.Rand) *Session {
	return &Session{rng: rng}
}

// Running reports whether the timer should advance
func (s *Session) Running() bool {
	return s.Phase == Live && !s.Paused
}

// Start begins a fresh live session
func (s *Session) Start() {
	s.Phase = Live
	s.Outcome = OutcomeNone
	s.Streak = 0
	s.Elapsed = 0
	s.Paused = false
	s.Issued = 0
	s.issue()
}

// Reset returns to Idle with a cleared streak
func (s *Session) Reset() {
	s.Phase = Idle
	s.Outcome = OutcomeNone
	s.Streak = 0
	s.Elapsed = 0
	s.Paused = false
	s.Issued = 0
}

// Remaining returns the seconds left in the current window
func (s *Session) Remaining() float64 {
	return math.Max(0, Window(s.Streak)-s.Elapsed)
}

// Tick advances the timer; returns true when the window expired
func (s *Session) Tick(dt float64) bool {
	if !s.Running() || dt <= 0 {
		return false
	}
	s.Elapsed += dt
	if s.Elapsed > Window(s.Streak) {
		s.end(OutcomeTimeout)
		return true
	}
	return false
}

// Press handles a target input; ok is false when the press ended the session
// Presses outside a running session are ignored and report handled false
func (s *Session) Press(target int) (handled, ok bool) {
	if !s.Running() || target < 0 || target >= constants.ReactTargets {
		return false, false
	}
	if target != s.Target {
		s.end(OutcomeFail)
		return true, false
	}
	s.Streak++
	s.Elapsed = 0
	s.issue()
	return true, true
}

func (s *Session) issue() {
	s.Target = s.rng.Intn(constants.ReactTargets)
	s.Issued++
}

func (s *Session) end(o Outcome) {
	s.Phase = Idle
	s.Outcome = o
	s.Elapsed = 0
}
