package game

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/rolling-circles/internal/config"
	"github.com/iburimskiy/rolling-circles/internal/sound"
)

// Clicker gives audible feedback for toggles. A nil Clicker is silent.
type Clicker struct {
	sr beep.SampleRate
}

// NewClicker initializes the speaker. The speaker can only be initialized
// once per process.
func NewClicker() (*Clicker, error) {
	sr := beep.SampleRate(config.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Clicker{sr: sr}, nil
}

// Toggled plays a high tone when on and a low one otherwise.
func (c *Clicker) Toggled(on bool) {
	if c == nil {
		return
	}
	freq := float64(config.ToneOffHz)
	if on {
		freq = config.ToneOnHz
	}
	speaker.Play(sound.Tone(c.sr, freq, config.ToneDuration, config.ToneAmplitude))
}
