package constants

import "time"

// Frame Loop Timing Constants
const (
	// DefaultFPS is the display refresh rate driving every frame clock
	DefaultFPS = 60

	// MinFPS and MaxFPS bound the configurable refresh rate
	MinFPS = 10
	MaxFPS = 240

	// MaxFrameStep caps the simulation step in seconds so a stalled terminal
	// resumes without a catch-up jump
	MaxFrameStep = 0.05
)

// FrameInterval converts a refresh rate to the ticker period
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}
