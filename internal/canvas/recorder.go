package canvas

import (
	"fmt"
	"image/color"
)

// Op is one recorded draw call.
type Op struct {
	Kind  string
	Args  []float32
	Text  string
	Color color.Color
}

func (o Op) String() string {
	if o.Text != "" {
		return fmt.Sprintf("%s(%q, %v)", o.Kind, o.Text, o.Args)
	}
	return fmt.Sprintf("%s%v", o.Kind, o.Args)
}

// Recorder is a Canvas that keeps every call instead of drawing it.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) Clear(c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "Clear", Color: c})
}

func (r *Recorder) FillRect(x, y, w, h float32, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "FillRect", Args: []float32{x, y, w, h}, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, rad float32, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "FillCircle", Args: []float32{cx, cy, rad}, Color: c})
}

func (r *Recorder) StrokeCircle(cx, cy, rad float32, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "StrokeCircle", Args: []float32{cx, cy, rad}, Color: c})
}

func (r *Recorder) Line(x0, y0, x1, y1 float32, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "Line", Args: []float32{x0, y0, x1, y1}, Color: c})
}

func (r *Recorder) Text(s string, x, y float32, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "Text", Args: []float32{x, y}, Text: s, Color: c})
}

// Count returns how many recorded calls have the given kind.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }
