package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/neon-arcade/constants"
)

// Wave is an oscillator shape
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// tone is a single oscillator note with an optional linear pitch sweep
type tone struct {
	from, to float64
	phase    float64
	pos      int
	total    int
	wave     Wave
	rate     beep.SampleRate
	rng      *rand.Rand
}

func newTone(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) *tone {
	return &tone{
		from:  from,
		to:    to,
		total: rate.N(d),
		wave:  wave,
		rate:  rate,
		rng:   rand.New(rand.NewSource(int64(from*1000 + to))),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		var v float64
		switch t.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			if t.phase < 0.5 {
				v = 0.6
			} else {
				v = -0.6
			}
		case WaveSaw:
			v = 2*t.phase - 1
		case WaveNoise:
			v = t.rng.Float64()*2 - 1
		}

		// Attack/release ramps keep cues click-free
		attack := t.rate.N(constants.CueAttack)
		gain := 1.0
		if attack > 0 && t.pos < attack {
			gain = float64(t.pos) / float64(attack)
		}
		if remain := t.total - t.pos; remain < attack*4 {
			gain *= float64(remain) / float64(attack*4)
		}

		samples[i][0] = v * gain
		samples[i][1] = v * gain

		freq := t.from + (t.to-t.from)*float64(t.pos)/float64(t.total)
		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

type note struct {
	from, to float64
	d        time.Duration
	wave     Wave
}

var recipes = map[Cue][]note{
	CueMove:     {{660, 700, constants.CueBlipDuration, WaveSquare}},
	CueCrash:    {{0, 0, constants.CueLongDuration, WaveNoise}, {180, 60, constants.CueToneDuration, WaveSaw}},
	CueClick:    {{880, 880, constants.CueBlipDuration, WaveSine}},
	CueCrit:     {{880, 880, constants.CueBlipDuration, WaveSine}, {1320, 1760, constants.CueToneDuration, WaveSine}},
	CuePurchase: {{523, 523, constants.CueToneDuration, WaveSquare}, {784, 784, constants.CueToneDuration, WaveSquare}},
	CueHit:      {{1046, 1046, constants.CueBlipDuration, WaveSine}},
	CueFail:     {{220, 110, constants.CueLongDuration, WaveSaw}},
	CueSelect:   {{440, 660, constants.CueBlipDuration, WaveSine}},
}

// Synth builds the finite streamer for cue c at volume vol in [0,1]
func Synth(c Cue, rate beep.SampleRate, vol float64) beep.Streamer {
	notes, ok := recipes[c]
	if !ok {
		return beep.Silence(0)
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, newTone(n.from, n.to, n.d, n.wave, rate))
	}
	return withVolume(beep.Seq(parts...), vol)
}

// Duration returns the total length of cue c
func Duration(c Cue) time.Duration {
	var d time.Duration
	for _, n := range recipes[c] {
		d += n.d
	}
	return d
}

// math.Log2(0) is -Inf, so zero volume maps to Silent
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
