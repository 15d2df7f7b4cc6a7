// Package canvas defines the drawing primitives the widgets and the
// orbit scene render through.
package canvas

import "image/color"

// Canvas is an immediate-mode 2D surface. Coordinates are in pixels with
// the origin at the top-left corner.
type Canvas interface {
	Clear(c color.Color)
	FillRect(x, y, w, h float32, c color.Color)
	FillCircle(cx, cy, r float32, c color.Color)
	StrokeCircle(cx, cy, r float32, c color.Color)
	Line(x0, y0, x1, y1 float32, c color.Color)
	Text(s string, x, y float32, c color.Color)
}
