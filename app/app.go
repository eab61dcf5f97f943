package app

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/bingo-caller/display"
	"github.com/lixenwraith/bingo-caller/entry"
	"github.com/lixenwraith/bingo-caller/game"
	"github.com/lixenwraith/bingo-caller/input"
	"github.com/lixenwraith/bingo-caller/tui"
)

// Mode represents which surface receives input
type Mode uint8

const (
	ModeBoard Mode = iota
	ModeSettings
	ModeConfirm
)

// String returns the mode name for logs
func (m Mode) String() string {
	switch m {
	case ModeSettings:
		return "settings"
	case ModeConfirm:
		return "confirm"
	default:
		return "board"
	}
}

// ResetDialogTitle heads the reset confirmation dialog
const ResetDialogTitle = "Reset Game"

// App holds all session state and routes events into it
// Owned by a single event loop; no method is safe for concurrent use
type App struct {
	store    *game.Store
	settings display.Settings
	entry    *entry.Field
	keys     *input.KeyTable

	mode    Mode
	confirm *tui.ConfirmState
	sliders [display.ParamCount]*tui.SliderState
	focus   display.Param // Focused slider in settings mode

	// Board keyboard cursor, shown once the operator navigates with keys
	cursor     int
	showCursor bool

	// Presentation flag, flips only when a fullscreen request resolves
	fullscreen bool
	presenter  Fullscreener

	hits        Hits
	prevButtons tcell.ButtonMask
}

// New creates an app with an empty game and the given initial settings
// A nil presenter disables the fullscreen toggle
func New(settings display.Settings, presenter Fullscreener) *App {
	a := &App{
		store:     game.NewStore(),
		settings:  settings,
		entry:     entry.NewField(),
		keys:      input.DefaultKeyTable(),
		mode:      ModeBoard,
		cursor:    game.MinNumber,
		presenter: presenter,
	}
	for p := display.Param(0); int(p) < display.ParamCount; p++ {
		b := display.BoundsOf(p)
		a.sliders[p] = &tui.SliderState{
			Label: b.Label,
			Unit:  b.Unit,
			Value: a.settings.Get(p),
			Min:   b.Min,
			Max:   b.Max,
			Step:  b.Step,
		}
	}
	return a
}

// --- Read access for renderers ---

// View derives the board snapshot from the current history
func (a *App) View() game.View {
	return a.store.View()
}

// Store exposes the game store
func (a *App) Store() *game.Store {
	return a.store
}

// Settings returns a copy of the display settings
func (a *App) Settings() display.Settings {
	return a.settings
}

// Entry exposes the quick-add field
func (a *App) Entry() *entry.Field {
	return a.entry
}

// Mode returns the active input surface
func (a *App) Mode() Mode {
	return a.mode
}

// Confirm returns the open dialog state, nil outside ModeConfirm
func (a *App) Confirm() *tui.ConfirmState {
	if a.mode != ModeConfirm {
		return nil
	}
	return a.confirm
}

// Slider returns the slider bound to p
func (a *App) Slider(p display.Param) *tui.SliderState {
	return a.sliders[p]
}

// FocusedSlider returns the slider receiving keys in settings mode
func (a *App) FocusedSlider() display.Param {
	return a.focus
}

// Cursor returns the board cursor number and whether it is shown
func (a *App) Cursor() (int, bool) {
	return a.cursor, a.showCursor
}

// Fullscreen reports the last resolved presentation state
func (a *App) Fullscreen() bool {
	return a.fullscreen
}

// CanUndo reports whether Undo would change state
func (a *App) CanUndo() bool {
	return a.store.Count() > 0
}

// SetHits records clickable regions from the last drawn frame
func (a *App) SetHits(h Hits) {
	a.hits = h
}

// Hits returns the clickable regions of the last drawn frame
func (a *App) Hits() Hits {
	return a.hits
}
