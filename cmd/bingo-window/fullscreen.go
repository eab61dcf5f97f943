package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lixenwraith/bingo-caller/app"
)

var errFullscreenRefused = errors.New("window manager refused fullscreen change")

// windowFullscreen drives real window fullscreen
// A request applies on the next update and is checked on the one after
type windowFullscreen struct {
	pending   bool
	want      bool
	requested bool
}

// RequestFullscreen queues the change for the update loop
func (w *windowFullscreen) RequestFullscreen(on bool) {
	w.pending = true
	w.want = on
}

// poll advances a pending request and reports its result once known
func (w *windowFullscreen) poll() (app.FullscreenResult, bool) {
	switch {
	case w.pending:
		ebiten.SetFullscreen(w.want)
		w.pending = false
		w.requested = true
		return app.FullscreenResult{}, false
	case w.requested:
		w.requested = false
		if ebiten.IsFullscreen() != w.want {
			return app.FullscreenResult{On: w.want, Err: errFullscreenRefused}, true
		}
		return app.FullscreenResult{On: w.want}, true
	}
	return app.FullscreenResult{}, false
}
