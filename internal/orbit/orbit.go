// Package orbit computes the rolling-circle scene: a fixed circle, a circle
// orbiting it, a radial indicator on the orbiting circle and the curve
// traced by its rim point.
package orbit

import (
	"errors"
	"fmt"
	"math"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms2"

	"github.com/iburimskiy/rolling-circles/internal/canvas"
	"github.com/iburimskiy/rolling-circles/internal/config"
)

// ErrDegenerate is returned for parameters that would divide by zero or
// produce non-finite geometry.
var ErrDegenerate = errors.New("degenerate orbit")

// Params are read from the widgets every frame.
type Params struct {
	Center       ms2.Vec
	CenterRadius float64
	OrbitRadius  float64
	// Angle is the position of the orbiting circle around Center, in radians.
	Angle float64
	// Definition divides π into the angular step of the trace.
	Definition float64
	// Passes is the number of full revolutions the trace sweeps.
	Passes float64
	Trace  bool
}

// Scene is the geometry of a single frame. It holds no state between frames.
type Scene struct {
	Center       ms2.Vec
	CenterRadius float32
	Orbit        ms2.Vec
	OrbitRadius  float32
	// Ratio of the larger radius to the smaller one.
	Ratio     float32
	Indicator ms2.Vec
	// Trace is empty unless Params.Trace is set.
	Trace []ms2.Vec
}

// Segments returns the number of line segments in the trace.
func (s Scene) Segments() int {
	if len(s.Trace) < 2 {
		return 0
	}
	return len(s.Trace) - 1
}

// Compute derives the scene from p.
func Compute(p Params) (Scene, error) {
	if err := p.validate(); err != nil {
		return Scene{}, err
	}
	crad := float32(p.CenterRadius)
	srad := float32(p.OrbitRadius)
	ratio := math32.Max(crad, srad) / math32.Min(crad, srad)
	angle := float32(p.Angle)

	orbit := ms2.Add(p.Center, ms2.Scale(crad+srad, unit(angle)))
	s := Scene{
		Center:       p.Center,
		CenterRadius: crad,
		Orbit:        orbit,
		OrbitRadius:  srad,
		Ratio:        ratio,
		Indicator:    ms2.Add(orbit, ms2.Scale(srad, unit(angle*ratio))),
	}
	if !p.Trace {
		return s, nil
	}

	// t_i = i·π/definition < 2π·passes  ⇔  i < 2·definition·passes
	n := int(math.Ceil(2*p.Definition*p.Passes)) - 1
	s.Trace = make([]ms2.Vec, 0, n+1)
	s.Trace = append(s.Trace, rimPoint(p.Center, crad, srad, ratio, 0))
	for i := 1; i <= n; i++ {
		t := float64(i) * math.Pi / p.Definition
		s.Trace = append(s.Trace, rimPoint(p.Center, crad, srad, ratio, float32(t)))
	}
	return s, nil
}

// Draw issues the draw calls of the scene.
func (s Scene) Draw(c canvas.Canvas, pal config.Palette) {
	c.StrokeCircle(s.Center.X, s.Center.Y, s.CenterRadius, pal.Center)
	c.StrokeCircle(s.Orbit.X, s.Orbit.Y, s.OrbitRadius, pal.Orbit)
	c.Line(s.Orbit.X, s.Orbit.Y, s.Indicator.X, s.Indicator.Y, pal.Indicator)
	for i := 1; i < len(s.Trace); i++ {
		a, b := s.Trace[i-1], s.Trace[i]
		c.Line(a.X, a.Y, b.X, b.Y, pal.Trace)
	}
}

func rimPoint(center ms2.Vec, crad, srad, ratio, t float32) ms2.Vec {
	p := ms2.Add(center, ms2.Scale(crad+srad, unit(t)))
	return ms2.Add(p, ms2.Scale(srad, unit(t*ratio)))
}

func unit(theta float32) ms2.Vec {
	sin, cos := math32.Sincos(theta)
	return ms2.Vec{X: cos, Y: sin}
}

func (p Params) validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"center radius", p.CenterRadius},
		{"orbit radius", p.OrbitRadius},
		{"definition", p.Definition},
		{"passes", p.Passes},
	} {
		if !(f.v > 0) || math.IsInf(f.v, 1) {
			return fmt.Errorf("%w: %s %g", ErrDegenerate, f.name, f.v)
		}
	}
	if math.IsNaN(p.Angle) || math.IsInf(p.Angle, 0) {
		return fmt.Errorf("%w: angle %g", ErrDegenerate, p.Angle)
	}
	return nil
}
