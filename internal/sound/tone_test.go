package sound

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, s beep.Streamer, chunk int) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, chunk)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			break
		}
		require.LessOrEqual(t, len(out), 1<<20, "stream never drained")
	}
	require.NoError(t, s.Err())
	return out
}

func TestToneLength(t *testing.T) {
	sr := beep.SampleRate(44100)
	for _, chunk := range []int{1, 100, 512, 10000} {
		got := drain(t, Tone(sr, 440, 60*time.Millisecond, 0.5), chunk)
		require.Len(t, got, sr.N(60*time.Millisecond), "chunk %d", chunk)
	}
}

func TestToneAmplitudeAndFade(t *testing.T) {
	got := drain(t, Tone(beep.SampleRate(8000), 1000, 100*time.Millisecond, 0.25), 256)

	peakHead, peakTail := 0.0, 0.0
	for i, s := range got {
		require.Equal(t, s[0], s[1])
		require.LessOrEqual(t, math.Abs(s[0]), 0.25)
		if i < len(got)/4 {
			peakHead = math.Max(peakHead, math.Abs(s[0]))
		} else if i > 3*len(got)/4 {
			peakTail = math.Max(peakTail, math.Abs(s[0]))
		}
	}
	require.Greater(t, peakHead, peakTail)
	require.Greater(t, peakHead, 0.15)
}
