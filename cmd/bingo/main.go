package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/bingo-caller/app"
	"github.com/lixenwraith/bingo-caller/config"
	"github.com/lixenwraith/bingo-caller/logging"
	"github.com/lixenwraith/bingo-caller/render"
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
	log.Printf("Starting: number-size=%d zoom=%d color=%s", cfg.NumberSize, cfg.Zoom, cfg.Color)

	applyColorMode(cfg.Color)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}

	// Panic Recovery: restore the terminal before printing the crash
	crash := func(where string, r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\n\x1b[31m%s CRASHED: %v\x1b[0m\n", where, r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			crash("BINGO", r)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse()
	screen.SetStyle(render.StyleBackground)

	a := app.New(cfg.Settings(), app.NewPresentationMode(screen.PostEvent))
	orchestrator := render.NewDefaultOrchestrator(screen)

	eventChan := make(chan tcell.Event, 64)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				crash("EVENT POLLER", r)
			}
		}()
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	orchestrator.RenderFrame(a)
	for ev := range eventChan {
		if _, ok := ev.(*tcell.EventResize); ok {
			screen.Sync()
		}
		if !a.HandleEvent(ev) {
			log.Printf("Exit requested")
			return 0
		}
		orchestrator.RenderFrame(a)
	}
	return 0
}

// applyColorMode pins tcell's color depth before the screen is created
func applyColorMode(mode config.ColorMode) {
	switch mode {
	case config.Color256:
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case config.ColorTrueColor:
		if os.Getenv("COLORTERM") == "" {
			os.Setenv("COLORTERM", "truecolor")
		}
	}
}
