package widget

import (
	"github.com/iburimskiy/rolling-circles/internal/canvas"
	"github.com/iburimskiy/rolling-circles/internal/config"
)

// CheckBox toggles on the press edge of the primary button. Each box keeps
// its own record of the previous frame's button state.
type CheckBox struct {
	x, y, side  int
	selected    bool
	pressedLast bool
}

func NewCheckBox(x, y, side int) *CheckBox {
	return &CheckBox{x: x, y: y, side: side}
}

// CheckBoxFromSpec builds a checkbox from its layout entry.
func CheckBoxFromSpec(spec config.CheckBoxSpec) *CheckBox {
	return NewCheckBox(spec.X, spec.Y, spec.Side)
}

func (b *CheckBox) Value() bool { return b.selected }

// Bounds returns the box position and side length.
func (b *CheckBox) Bounds() (x, y, side int) { return b.x, b.y, b.side }

func (b *CheckBox) Draw(c canvas.Canvas, pal config.Palette) {
	side := float32(b.side)
	c.FillRect(float32(b.x), float32(b.y), side, side, pal.BoxFill)
	if b.selected {
		c.FillRect(float32(b.x+2), float32(b.y+2), side-4, side-4, pal.BoxSelected)
	}
}

// Update consumes one pointer sample and reports whether the box toggled.
func (b *CheckBox) Update(p Pointer) bool {
	pressed := p.Pressed(ButtonPrimary)
	toggled := pressed && !b.pressedLast && p.within(b.x, b.y, b.side, b.side)
	if toggled {
		b.selected = !b.selected
	}
	b.pressedLast = pressed
	return toggled
}
