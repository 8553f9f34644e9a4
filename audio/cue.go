// Package audio turns gameplay events into short synthesized cues played
// through beep. Audio is optional: a failed speaker leaves the player silent
// and every call still succeeds.
package audio

// Cue identifies a gameplay sound
type Cue int

const (
	CueMove Cue = iota
	CueCrash
	CueClick
	CueCrit
	CuePurchase
	CueHit
	CueFail
	CueSelect
)

var cueNames = [...]string{"move", "crash", "click", "crit", "purchase", "hit", "fail", "select"}

func (c Cue) String() string {
	if c < 0 || int(c) >= len(cueNames) {
		return "unknown"
	}
	return cueNames[c]
}

// Cues is what games and the router call to emit sound
type Cues interface {
	Play(c Cue)
	ToggleMute() bool
	Muted() bool
}

// Silent discards every cue; it reports itself as muted
type Silent struct{}

func (Silent) Play(Cue)         {}
func (Silent) ToggleMute() bool { return true }
func (Silent) Muted() bool      { return true }

// Recorder collects played cues for tests
type Recorder struct {
	Played []Cue
	muted  bool
}

func (r *Recorder) Play(c Cue) {
	if !r.muted {
		r.Played = append(r.Played, c)
	}
}

func (r *Recorder) ToggleMute() bool {
	r.muted = !r.muted
	return r.muted
}

func (r *Recorder) Muted() bool { return r.muted }

// Count returns how many times c was played
func (r *Recorder) Count(c Cue) int {
	n := 0
	for _, p := range r.Played {
		if p == c {
			n++
		}
	}
	return n
}
