package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"math"

	"github.com/pelletier/go-toml/v2"
)

//go:embed layout.toml
var defaultLayout []byte

// ErrInvalidLayout is wrapped by every validation failure returned from Parse.
var ErrInvalidLayout = errors.New("invalid layout")

// SliderSpec places a slider and fixes its value range.
type SliderSpec struct {
	Label string  `toml:"label"`
	X     int     `toml:"x"`
	Y     int     `toml:"y"`
	W     int     `toml:"w"`
	Min   float64 `toml:"min"`
	Max   float64 `toml:"max"`
	Step  float64 `toml:"step"`
}

// CheckBoxSpec places a square checkbox.
type CheckBoxSpec struct {
	Label string `toml:"label"`
	X     int    `toml:"x"`
	Y     int    `toml:"y"`
	Side  int    `toml:"side"`
}

// Layout is the full widget set of the window.
type Layout struct {
	CenterRadius SliderSpec   `toml:"center_radius"`
	OrbitRadius  SliderSpec   `toml:"orbit_radius"`
	Angle        SliderSpec   `toml:"angle"`
	Definition   SliderSpec   `toml:"definition"`
	Passes       SliderSpec   `toml:"passes"`
	Trace        CheckBoxSpec `toml:"trace"`
}

// Load decodes the layout compiled into the binary.
func Load() (Layout, error) {
	return Parse(defaultLayout)
}

// Parse decodes a TOML layout, rejecting unknown keys, and validates it.
func Parse(data []byte) (Layout, error) {
	var l Layout
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&l); err != nil {
		return Layout{}, fmt.Errorf("decode layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Validate checks every widget. Radius, definition and passes sliders must
// stay strictly positive so the geometry never divides by zero.
func (l Layout) Validate() error {
	var errs []error
	check := func(name string, s SliderSpec, positive bool) {
		if err := s.validate(positive); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %w", ErrInvalidLayout, name, err))
		}
	}
	check("center_radius", l.CenterRadius, true)
	check("orbit_radius", l.OrbitRadius, true)
	check("angle", l.Angle, false)
	check("definition", l.Definition, true)
	check("passes", l.Passes, true)
	if l.Trace.Side <= 4 {
		errs = append(errs, fmt.Errorf("%w: trace: side %d too small", ErrInvalidLayout, l.Trace.Side))
	}
	return errors.Join(errs...)
}

func (s SliderSpec) validate(positive bool) error {
	switch {
	case s.W <= 0:
		return fmt.Errorf("width %d must be positive", s.W)
	case math.IsInf(s.Min, 0) || math.IsInf(s.Max, 0):
		return errors.New("range must be finite")
	case !(s.Max > s.Min):
		return fmt.Errorf("max %g must exceed min %g", s.Max, s.Min)
	case !(s.Step > 0) || s.Step > s.Max-s.Min:
		return fmt.Errorf("step %g outside (0, %g]", s.Step, s.Max-s.Min)
	case positive && s.Min <= 0:
		return fmt.Errorf("min %g must be positive", s.Min)
	}
	return nil
}
