package toy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/rolling-circles/internal/canvas"
	"github.com/iburimskiy/rolling-circles/internal/config"
	"github.com/iburimskiy/rolling-circles/internal/orbit"
	"github.com/iburimskiy/rolling-circles/internal/widget"
)

type toggles []bool

func (t *toggles) Toggled(on bool) { *t = append(*t, on) }

func newToy(t *testing.T, fb Feedback) *Toy {
	t.Helper()
	l, err := config.Load()
	require.NoError(t, err)
	return New(l, config.DefaultPalette(), config.WindowWidth, config.WindowHeight, fb)
}

func press(x, y int) widget.Pointer {
	return widget.Pointer{X: x, Y: y, Buttons: widget.ButtonPrimary}
}

func TestInitialParams(t *testing.T) {
	toy := newToy(t, nil)
	p := toy.Params()
	require.Equal(t, 60.0, p.CenterRadius)
	require.Equal(t, 60.0, p.OrbitRadius)
	require.Equal(t, 55.0, p.Definition)
	require.Equal(t, 11.0, p.Passes)
	require.False(t, p.Trace)
	require.Equal(t, float32(320), p.Center.X)
	require.Equal(t, float32(160), p.Center.Y)
	require.NoError(t, toy.Err())
}

func TestDragOnlyMovesGrabbedSlider(t *testing.T) {
	toy := newToy(t, nil)

	// Grab the center radius bar at its left edge and sweep down over the
	// other bars; only the center radius follows.
	toy.Update(press(10, 12))
	toy.Update(press(60, 28))
	toy.Update(press(60, 58))
	require.Equal(t, 35.0, toy.Params().CenterRadius)
	require.Equal(t, 60.0, toy.Params().OrbitRadius)
	require.Equal(t, 55.0, toy.Params().Definition)

	toy.Update(widget.Pointer{X: 60, Y: 58})
	toy.Update(press(210, 28))
	require.Equal(t, 110.0, toy.Params().OrbitRadius)
	require.Equal(t, 35.0, toy.Params().CenterRadius)
}

func TestTraceToggle(t *testing.T) {
	var fb toggles
	toy := newToy(t, &fb)
	require.Empty(t, toy.Scene().Trace)

	toy.Update(press(15, 95))
	toy.Update(press(15, 95))
	require.True(t, toy.Params().Trace)
	require.Equal(t, 109*11+10, toy.Scene().Segments())

	toy.Update(widget.Pointer{X: 15, Y: 95})
	toy.Update(press(15, 95))
	require.False(t, toy.Params().Trace)
	require.Empty(t, toy.Scene().Trace)

	require.Equal(t, toggles{true, false}, fb)
}

func TestDrawFrame(t *testing.T) {
	toy := newToy(t, nil)
	pal := config.DefaultPalette()
	var rec canvas.Recorder

	toy.Draw(&rec)
	require.Equal(t, "Clear", rec.Ops[0].Kind)
	require.Equal(t, pal.Background, rec.Ops[0].Color)
	require.Equal(t, 5, rec.Count("FillCircle"))
	require.Equal(t, 5+1, rec.Count("FillRect"))
	require.Equal(t, 6, rec.Count("Text"))
	require.Equal(t, 2, rec.Count("StrokeCircle"))
	require.Equal(t, 1, rec.Count("Line"))

	var labels []string
	for _, op := range rec.Ops {
		if op.Kind == "Text" {
			labels = append(labels, op.Text)
		}
	}
	require.Contains(t, labels, "center radius: 60")
	require.Contains(t, labels, "angle: 3.14")
	require.Contains(t, labels, "trace")

	toy.Update(press(15, 95))
	rec.Reset()
	toy.Draw(&rec)
	require.Equal(t, 1+toy.Scene().Segments(), rec.Count("Line"))
}

func TestDrawShowsError(t *testing.T) {
	l, err := config.Load()
	require.NoError(t, err)
	// Bypass validation to feed the geometry a zero radius.
	l.CenterRadius.Min = 0
	l.CenterRadius.Max = 0.5
	l.CenterRadius.Step = 1
	toy := New(l, config.DefaultPalette(), 640, 320, nil)
	require.ErrorIs(t, toy.Err(), orbit.ErrDegenerate)

	var rec canvas.Recorder
	toy.Draw(&rec)
	require.Zero(t, rec.Count("StrokeCircle"))
	found := false
	for _, op := range rec.Ops {
		if op.Kind == "Text" && strings.HasPrefix(op.Text, "Error: ") {
			found = true
		}
	}
	require.True(t, found)
}

func TestFormatValue(t *testing.T) {
	require.Equal(t, "60", formatValue(60, 1))
	require.Equal(t, "3.14", formatValue(3.14159265, 0.031415926))
	require.Equal(t, "0.5", formatValue(0.5, 0.1))
	require.Equal(t, "12", formatValue(12.4, 2.5))
}
