// Package sound plays short feedback tones through the beep speaker.
package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// tone is a finite sine with a linear fade-out, so it ends without a click.
type tone struct {
	step      float64 // phase advance per sample
	amplitude float64
	total     int
	pos       int
}

// Tone returns a streamer that plays freq Hz for d and then drains.
func Tone(sr beep.SampleRate, freq float64, d time.Duration, amplitude float64) beep.Streamer {
	return &tone{
		step:      2 * math.Pi * freq / float64(sr),
		amplitude: amplitude,
		total:     sr.N(d),
	}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	n := 0
	for i := range samples {
		if t.pos >= t.total {
			break
		}
		fade := 1 - float64(t.pos)/float64(t.total)
		v := t.amplitude * fade * math.Sin(t.step*float64(t.pos))
		samples[i] = [2]float64{v, v}
		t.pos++
		n++
	}
	return n, true
}

func (t *tone) Err() error { return nil }
