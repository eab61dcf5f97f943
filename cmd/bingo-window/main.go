package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lixenwraith/bingo-caller/config"
	"github.com/lixenwraith/bingo-caller/logging"
	"github.com/lixenwraith/bingo-caller/raster"
	"tinygo.org/x/tinyfont/freemono"
)

const (
	windowTitle = "Bingo Master"
	windowCols  = 140
	windowRows  = 44
)

func main() {
	os.Exit(run())
}

// run owns every deferred cleanup and returns the exit code
func run() int {
	cfg, err := config.Load(os.Args[0], os.Args[1:], nil, os.Stderr)
	if err != nil {
		return config.Report(os.Stderr, err)
	}
	if logFile := logging.Setup(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	painter := raster.NewPainter(&freemono.Regular9pt7b)
	g, err := newWindowGame(cfg, painter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create window: %v\n", err)
		return 1
	}
	defer g.Close()

	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowSize(windowCols*painter.CellW, windowRows*painter.CellH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		log.Printf("Window loop failed: %v", err)
		fmt.Fprintf(os.Stderr, "Window error: %v\n", err)
		return 1
	}
	return 0
}
