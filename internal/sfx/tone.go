// Package sfx synthesizes the game's sound effects and plays them through
// the system speaker when one is available.
package sfx

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave selects the oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// tone is an oscillator whose frequency and gain both ramp exponentially
// from their start to their end value over its duration.
type tone struct {
	wave     Wave
	rate     beep.SampleRate
	f0, f1   float64
	g0, g1   float64
	phase    float64
	position int
	total    int
}

// NewTone creates a finite streamer sweeping from f0 to f1 Hz while the gain
// decays from g0 to g1. Frequencies and gains must be positive.
func NewTone(wave Wave, f0, f1, g0, g1 float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{
		wave:  wave,
		rate:  rate,
		f0:    f0,
		f1:    f1,
		g0:    g0,
		g1:    g1,
		total: rate.N(d),
	}
}

// expRamp interpolates exponentially between a and b at t in [0, 1].
func expRamp(a, b, t float64) float64 {
	return a * math.Pow(b/a, t)
}

func (o *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}

		t := float64(o.position) / float64(o.total)
		freq := expRamp(o.f0, o.f1, t)
		gain := expRamp(o.g0, o.g1, t)

		var val float64
		switch o.wave {
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		default:
			val = math.Sin(2 * math.Pi * o.phase)
		}
		val *= gain

		samples[i][0] = val
		samples[i][1] = val

		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *tone) Err() error { return nil }

// newVolume scales a stream linearly; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
