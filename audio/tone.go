// Package audio plays the game's synthesized sound cues through beep.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// WaveType selects the oscillator's wave shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

// toneGain keeps the raw waves well below clipping.
const toneGain = 0.25

// tone is a fixed-duration oscillator streamer.
type tone struct {
	freq   float64
	phase  float64
	remain int
	wave   WaveType
	rate   beep.SampleRate
}

// NewTone returns a streamer that plays a single wave at freq for duration.
func NewTone(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:   freq,
		remain: rate.N(duration),
		wave:   wave,
		rate:   rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.remain <= 0 {
			return i, false
		}

		var val float64
		switch t.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			if t.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		}
		val *= toneGain

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase) // keep in [0, 1)
		t.remain--
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
