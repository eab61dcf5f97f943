package app

import (
	"github.com/lixenwraith/bingo-caller/display"
	"github.com/lixenwraith/bingo-caller/game"
	"github.com/lixenwraith/bingo-caller/tui"
)

// Hits is the set of clickable rectangles produced by the last render
// Coordinates are screen cells; the window shell maps pixels to cells first
type Hits struct {
	Cells [game.MaxNumber + 1]tui.Rect // indexed by board number

	Settings   tui.Rect
	Fullscreen tui.Rect
	Undo       tui.Rect
	Reset      tui.Rect
	Field      tui.Rect
	Submit     tui.Rect

	// Settings overlay
	Tracks [display.ParamCount]tui.Rect
	Done   tui.Rect
	Close  tui.Rect

	// Confirm overlay
	Dialog tui.ConfirmHits
}

// CellAt returns the board number under (x, y)
func (h *Hits) CellAt(x, y int) (int, bool) {
	for n := game.MinNumber; n <= game.MaxNumber; n++ {
		if h.Cells[n].Contains(x, y) {
			return n, true
		}
	}
	return 0, false
}
