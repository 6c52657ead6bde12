// Package audio plays short synthesized cues for hits, misses and game over.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// tone is a sine oscillator with a linear fade-out, optionally sweeping
// from freq to endFreq over its duration.
type tone struct {
	freq     float64
	endFreq  float64
	volume   float64
	phase    float64
	position int
	duration int
	rate     beep.SampleRate
}

// NewTone creates a finite streamer of the given length.
func NewTone(rate beep.SampleRate, freq, endFreq float64, d time.Duration, volume float64) beep.Streamer {
	return &tone{
		freq:     freq,
		endFreq:  endFreq,
		volume:   volume,
		duration: rate.N(d),
		rate:     rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, i > 0
		}

		progress := float64(t.position) / float64(t.duration)
		freq := t.freq + (t.endFreq-t.freq)*progress
		val := math.Sin(2*math.Pi*t.phase) * t.volume * (1 - progress)

		samples[i][0] = val
		samples[i][1] = val

		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
