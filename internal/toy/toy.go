// Package toy runs one frame of the rolling-circles visualization: it
// feeds the pointer to the widgets, derives the orbit from their values
// and draws everything.
package toy

import (
	"fmt"

	"github.com/soypat/geometry/ms2"

	"github.com/iburimskiy/rolling-circles/internal/canvas"
	"github.com/iburimskiy/rolling-circles/internal/config"
	"github.com/iburimskiy/rolling-circles/internal/orbit"
	"github.com/iburimskiy/rolling-circles/internal/widget"
)

// Feedback is told about every checkbox toggle.
type Feedback interface {
	Toggled(on bool)
}

type labeledSlider struct {
	*widget.Slider
	label string
	step  float64
}

// Toy owns the widget set and the scene of the current frame.
type Toy struct {
	pal    config.Palette
	center ms2.Vec
	fb     Feedback

	lock         widget.DragLock
	centerRadius labeledSlider
	orbitRadius  labeledSlider
	angle        labeledSlider
	definition   labeledSlider
	passes       labeledSlider
	trace        *widget.CheckBox
	traceLabel   string

	scene orbit.Scene
	err   error
}

// New builds the widgets from l. The circles are centered in a width×height
// window. fb may be nil.
func New(l config.Layout, pal config.Palette, width, height int, fb Feedback) *Toy {
	t := &Toy{
		pal:        pal,
		center:     ms2.Vec{X: float32(width) / 2, Y: float32(height) / 2},
		fb:         fb,
		trace:      widget.CheckBoxFromSpec(l.Trace),
		traceLabel: l.Trace.Label,
	}
	t.centerRadius = t.slider(l.CenterRadius)
	t.orbitRadius = t.slider(l.OrbitRadius)
	t.angle = t.slider(l.Angle)
	t.definition = t.slider(l.Definition)
	t.passes = t.slider(l.Passes)
	t.recompute()
	return t
}

func (t *Toy) slider(spec config.SliderSpec) labeledSlider {
	return labeledSlider{
		Slider: widget.FromSpec(&t.lock, spec),
		label:  spec.Label,
		step:   spec.Step,
	}
}

func (t *Toy) sliders() []labeledSlider {
	return []labeledSlider{t.centerRadius, t.orbitRadius, t.angle, t.definition, t.passes}
}

// Update advances every widget by one pointer sample and recomputes the scene.
func (t *Toy) Update(p widget.Pointer) {
	for _, s := range t.sliders() {
		s.Update(p)
	}
	if t.trace.Update(p) && t.fb != nil {
		t.fb.Toggled(t.trace.Value())
	}
	t.recompute()
}

// Params returns the orbit parameters the widgets currently hold.
func (t *Toy) Params() orbit.Params {
	return orbit.Params{
		Center:       t.center,
		CenterRadius: t.centerRadius.Value(),
		OrbitRadius:  t.orbitRadius.Value(),
		Angle:        t.angle.Value(),
		Definition:   t.definition.Value(),
		Passes:       t.passes.Value(),
		Trace:        t.trace.Value(),
	}
}

// Scene returns the geometry of the last update.
func (t *Toy) Scene() orbit.Scene { return t.scene }

// Err returns the error of the last update, if any.
func (t *Toy) Err() error { return t.err }

func (t *Toy) recompute() {
	t.scene, t.err = orbit.Compute(t.Params())
}

// Draw renders the widgets, their labels and the scene.
func (t *Toy) Draw(c canvas.Canvas) {
	c.Clear(t.pal.Background)

	for _, s := range t.sliders() {
		s.Draw(c, t.pal)
		x, y, w := s.Bounds()
		c.Text(fmt.Sprintf("%s: %s", s.label, formatValue(s.Value(), s.step)),
			float32(x+w+config.LabelOffset), float32(y), t.pal.Text)
	}
	t.trace.Draw(c, t.pal)
	x, y, side := t.trace.Bounds()
	c.Text(t.traceLabel, float32(x+side+config.LabelOffset), float32(y), t.pal.Text)

	if t.err != nil {
		c.Text("Error: "+t.err.Error(), float32(x), float32(y+side+config.LabelOffset), t.pal.Text)
		return
	}
	t.scene.Draw(c, t.pal)
}
