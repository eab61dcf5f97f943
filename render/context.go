package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/bingo-caller/app"
	"github.com/lixenwraith/bingo-caller/display"
	"github.com/lixenwraith/bingo-caller/game"
)

// Context is the per-frame state shared by all layers
// View and Settings are derived once per frame so every layer draws the same snapshot
type Context struct {
	Screen   tcell.Screen
	App      *app.App
	View     game.View
	Settings display.Settings
	Layout   Layout

	// Hits collects clickable regions as layers draw
	Hits *app.Hits
}
