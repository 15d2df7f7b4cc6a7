package widget

import (
	"math"

	"github.com/iburimskiy/rolling-circles/internal/canvas"
	"github.com/iburimskiy/rolling-circles/internal/config"
)

const (
	// Hit box height of the bar
	barHeight  = 9
	knobRadius = 7
)

// Slider picks a value in [min, max] quantized to step. Dragging starts
// when the primary button is pressed over the bar and lasts until it is
// released, wherever the pointer goes in between.
type Slider struct {
	x, y, w  int
	min, max float64
	step     float64
	current  float64
	dragging bool
	lock     *DragLock
}

// NewSlider builds a slider starting at the middle of its range. A nil
// lock gives the slider a private one.
func NewSlider(lock *DragLock, x, y, w int, min, max, step float64) *Slider {
	if lock == nil {
		lock = &DragLock{}
	}
	s := &Slider{
		x: x, y: y, w: w,
		min: min, max: max, step: step,
		lock: lock,
	}
	s.current = s.snap((min + max) / 2)
	return s
}

// FromSpec builds a slider from its layout entry.
func FromSpec(lock *DragLock, spec config.SliderSpec) *Slider {
	return NewSlider(lock, spec.X, spec.Y, spec.W, spec.Min, spec.Max, spec.Step)
}

func (s *Slider) Value() float64 { return s.current }

func (s *Slider) Dragging() bool { return s.dragging }

// Bounds returns the bar position and width.
func (s *Slider) Bounds() (x, y, w int) { return s.x, s.y, s.w }

// Draw renders the bar and the knob at the current value.
func (s *Slider) Draw(c canvas.Canvas, pal config.Palette) {
	c.FillRect(float32(s.x+2), float32(s.y+1), float32(s.w-2), barHeight, pal.SliderBar)
	knobX := float64(s.x) + float64(s.w)*((s.current-s.min)/(s.max-s.min))
	c.FillCircle(float32(knobX), float32(s.y+5), knobRadius, pal.SliderKnob)
}

// Update consumes one pointer sample.
func (s *Slider) Update(p Pointer) {
	if p.Pressed(ButtonPrimary) {
		if !s.dragging && p.within(s.x, s.y, s.w, barHeight) && s.lock.Acquire(s) {
			s.dragging = true
		}
	} else {
		s.lock.Release(s)
		s.dragging = false
	}

	if s.dragging {
		v := (float64(p.X-s.x)/float64(s.w))*(s.max-s.min) + s.min
		s.current = s.snap(clamp(v, s.min, s.max))
	}
}

// snap moves v to the nearest point of the grid min + k*step. Exact ties
// go to the higher point, unless that point lies past max.
func (s *Slider) snap(v float64) float64 {
	k := math.Floor((v - s.min) / s.step)
	less := s.min + k*s.step
	more := s.min + (k+1)*s.step
	if more > s.max+s.step*1e-9 {
		return math.Min(less, s.max)
	}
	if more-v <= v-less {
		return math.Min(more, s.max)
	}
	return less
}
