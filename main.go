package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/rolling-circles/internal/config"
	"github.com/iburimskiy/rolling-circles/internal/game"
	"github.com/iburimskiy/rolling-circles/internal/render"
	"github.com/iburimskiy/rolling-circles/internal/toy"
)

func main() {
	if err := run(); err != nil {
		fatal(err)
	}
}

func run() error {
	layout, err := config.Load()
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	face, err := render.LoadFace()
	if err != nil {
		return err
	}

	clicker, err := game.NewClicker()
	if err != nil {
		log.Printf("warn: audio disabled: %v", err)
	}

	t := toy.New(layout, config.DefaultPalette(), config.WindowWidth, config.WindowHeight, clicker)
	g := game.New(t, render.Screen{Face: face})

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// fatal logs err, shows it in a dialog when a desktop is available and exits.
func fatal(err error) {
	log.Printf("error: %v", err)
	if derr := zenity.Error(err.Error(), zenity.Title(config.WindowTitle), zenity.ErrorIcon); derr != nil {
		log.Printf("warn: error dialog: %v", derr)
	}
	os.Exit(1)
}
