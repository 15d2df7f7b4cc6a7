// Package widget implements the immediate-mode slider and checkbox
// controls. Widgets read one Pointer sample per frame and draw themselves
// onto a canvas.Canvas.
package widget

// Buttons is a bitmask of pressed pointer buttons.
type Buttons uint8

const (
	ButtonPrimary Buttons = 1 << iota
	ButtonSecondary
	ButtonMiddle
)

// Pointer is the pointer state sampled once per frame.
type Pointer struct {
	X, Y    int
	Buttons Buttons
}

// Pressed reports whether every button in b is held.
func (p Pointer) Pressed(b Buttons) bool {
	return p.Buttons&b == b
}

// within reports whether the pointer lies in the closed box [x, x+w] × [y, y+h].
func (p Pointer) within(x, y, w, h int) bool {
	return p.X >= x && p.X <= x+w && p.Y >= y && p.Y <= y+h
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
