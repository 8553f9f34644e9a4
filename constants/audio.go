package constants

import "time"

// Audio output
const (
	AudioSampleRate    = 44100
	AudioBufferLatency = 100 * time.Millisecond
	DefaultVolume      = 0.5
)

// Cue timing
const (
	CueAttack       = 4 * time.Millisecond
	CueBlipDuration = 45 * time.Millisecond
	CueToneDuration = 90 * time.Millisecond
	CueLongDuration = 260 * time.Millisecond
)
