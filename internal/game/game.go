// Package game adapts the toy to ebiten's game loop.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/rolling-circles/internal/config"
	"github.com/iburimskiy/rolling-circles/internal/render"
	"github.com/iburimskiy/rolling-circles/internal/toy"
	"github.com/iburimskiy/rolling-circles/internal/widget"
)

type Game struct {
	toy    *toy.Toy
	screen render.Screen
}

func New(t *toy.Toy, screen render.Screen) *Game {
	return &Game{toy: t, screen: screen}
}

func (g *Game) Update() error {
	g.toy.Update(pointer())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Image = screen
	g.toy.Draw(&g.screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// pointer samples the mouse once per tick.
func pointer() widget.Pointer {
	x, y := ebiten.CursorPosition()
	p := widget.Pointer{X: x, Y: y}
	for _, b := range []struct {
		mouse ebiten.MouseButton
		mask  widget.Buttons
	}{
		{ebiten.MouseButtonLeft, widget.ButtonPrimary},
		{ebiten.MouseButtonRight, widget.ButtonSecondary},
		{ebiten.MouseButtonMiddle, widget.ButtonMiddle},
	} {
		if ebiten.IsMouseButtonPressed(b.mouse) {
			p.Buttons |= b.mask
		}
	}
	return p
}
