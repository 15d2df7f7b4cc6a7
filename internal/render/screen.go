// Package render implements canvas.Canvas on an ebiten image.
package render

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/rolling-circles/internal/config"
)

// LoadFace loads the label face once per process.
func LoadFace() (text.Face, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &text.GoTextFace{Source: src, Size: config.FontSize}, nil
}

// Screen draws onto an ebiten image. Set Image before each frame.
type Screen struct {
	Image *ebiten.Image
	Face  text.Face
}

func (s *Screen) Clear(c color.Color) {
	s.Image.Fill(c)
}

func (s *Screen) FillRect(x, y, w, h float32, c color.Color) {
	vector.DrawFilledRect(s.Image, x, y, w, h, c, false)
}

func (s *Screen) FillCircle(cx, cy, r float32, c color.Color) {
	vector.DrawFilledCircle(s.Image, cx, cy, r, c, true)
}

func (s *Screen) StrokeCircle(cx, cy, r float32, c color.Color) {
	vector.StrokeCircle(s.Image, cx, cy, r, config.OutlineWidth, c, true)
}

func (s *Screen) Line(x0, y0, x1, y1 float32, c color.Color) {
	vector.StrokeLine(s.Image, x0, y0, x1, y1, config.LineWidth, c, true)
}

func (s *Screen) Text(str string, x, y float32, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.Image, str, s.Face, op)
}
