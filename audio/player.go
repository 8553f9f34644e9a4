package audio

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/neon-arcade/constants"
)

// Config selects audio output settings
type Config struct {
	Enabled bool
	Volume  float64
}

// Player mixes cues into the system speaker
type Player struct {
	mu      sync.Mutex
	cfg     Config
	rate    beep.SampleRate
	mixer   *beep.Mixer
	running bool

	muted  atomic.Bool
	silent atomic.Bool
}

// NewPlayer creates a stopped player; disabled audio starts muted
func NewPlayer(cfg Config) *Player {
	p := &Player{
		cfg:   cfg,
		rate:  beep.SampleRate(constants.AudioSampleRate),
		mixer: &beep.Mixer{},
	}
	p.muted.Store(!cfg.Enabled)
	return p
}

// Start opens the speaker; failure switches to silent mode and is not an error
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(constants.AudioBufferLatency)); err != nil {
		log.Printf("audio: speaker unavailable, running silent: %v", err)
		p.silent.Store(true)
		p.running = true
		return nil
	}
	speaker.Play(p.mixer)
	p.running = true
	return nil
}

// Stop clears the mixer and closes the speaker
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.running {
		return
	}
	p.running = false
	if p.silent.Load() {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// Play queues cue c unless muted or silent
func (p *Player) Play(c Cue) {
	if p.muted.Load() || p.silent.Load() {
		return
	}
	p.mu.Lock()
	running := p.running
	p.mu.Unlock()
	if !running {
		return
	}

	s := Synth(c, p.rate, p.cfg.Volume)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// ToggleMute flips the mute flag and returns the new state
func (p *Player) ToggleMute() bool {
	for {
		old := p.muted.Load()
		if p.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

func (p *Player) Muted() bool { return p.muted.Load() }
