package config

import (
	"image/color"
	"time"
)

const (
	WindowWidth  = 640
	WindowHeight = 320
	WindowTitle  = "Rolling Circles"

	// Stroke widths in pixels
	OutlineWidth = 1
	LineWidth    = 1

	// Label text
	FontSize    = 10
	LabelOffset = 12

	// Toggle feedback
	SampleRate    = 44100
	ToneOnHz      = 880
	ToneOffHz     = 440
	ToneDuration  = 60 * time.Millisecond
	ToneAmplitude = 0.25
)

// Palette holds every color the frame uses. It is passed to draw calls
// instead of living in package-level variables.
type Palette struct {
	Background  color.RGBA
	SliderBar   color.RGBA
	SliderKnob  color.RGBA
	BoxFill     color.RGBA
	BoxSelected color.RGBA
	Center      color.RGBA
	Orbit       color.RGBA
	Indicator   color.RGBA
	Trace       color.RGBA
	Text        color.RGBA
}

func DefaultPalette() Palette {
	return Palette{
		Background:  rgb(255, 255, 255),
		SliderBar:   rgb(150, 150, 150),
		SliderKnob:  rgb(200, 200, 255),
		BoxFill:     rgb(200, 200, 200),
		BoxSelected: rgb(50, 255, 128),
		Center:      rgb(255, 0, 0),
		Orbit:       rgb(0, 0, 255),
		Indicator:   rgb(0, 0, 0),
		Trace:       rgb(0, 255, 0),
		Text:        rgb(40, 40, 40),
	}
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
