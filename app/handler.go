package app

import (
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/bingo-caller/display"
	"github.com/lixenwraith/bingo-caller/entry"
	"github.com/lixenwraith/bingo-caller/game"
	"github.com/lixenwraith/bingo-caller/input"
	"github.com/lixenwraith/bingo-caller/tui"
)

// HandleEvent processes a tcell event and returns false if the app should exit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKeyEvent(ev)
	case *tcell.EventMouse:
		if steps := input.WheelSteps(ev.Buttons()); steps != 0 {
			a.wheel(steps, ev.Modifiers())
		}
		it := input.ResolveMouse(ev, a.prevButtons)
		a.prevButtons = ev.Buttons()
		if it.Type == input.IntentMouseClick {
			a.handleClick(it.X, it.Y)
		}
	case *tcell.EventInterrupt:
		if res, ok := ev.Data().(FullscreenResult); ok {
			a.ResolveFullscreen(res)
		}
	}
	return true
}

// handleKeyEvent dispatches by mode
func (a *App) handleKeyEvent(ev *tcell.EventKey) bool {
	// Quit works on every surface
	if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyCtrlQ {
		return false
	}

	switch a.mode {
	case ModeConfirm:
		if a.confirm.HandleKey(ev.Key(), ev.Rune()) {
			a.closeConfirm()
		}
		return true
	case ModeSettings:
		return a.handleSettingsKey(ev)
	default:
		return a.apply(a.keys.Resolve(ev, a.entry.Focused()))
	}
}

// apply executes a board-mode intent
func (a *App) apply(it input.Intent) bool {
	if it.Type != input.IntentNone && it.Type != input.IntentTextChar {
		log.Printf("Intent: %s", it.Type)
	}
	switch it.Type {
	case input.IntentQuit:
		return false
	case input.IntentEscape:
		if a.entry.Focused() {
			a.entry.Clear()
			a.entry.Blur()
		} else {
			a.showCursor = false
		}
	case input.IntentUndo:
		a.Undo()
	case input.IntentReset:
		a.OpenReset()
	case input.IntentToggleSettings:
		a.ToggleSettings()
	case input.IntentToggleFullscreen:
		a.ToggleFullscreen()

	case input.IntentCursorUp:
		a.moveCursor(-game.RangeSize)
	case input.IntentCursorDown:
		a.moveCursor(game.RangeSize)
	case input.IntentCursorLeft:
		a.moveCursor(-1)
	case input.IntentCursorRight:
		a.moveCursor(1)
	case input.IntentToggleCell:
		a.showCursor = true
		a.Toggle(a.cursor)

	case input.IntentFocusEntry:
		if a.entry.Focused() {
			a.entry.Blur()
		} else {
			a.entry.Focus()
		}
	case input.IntentTextChar:
		if a.entry.Focused() {
			a.entry.Insert(it.Char)
		} else {
			a.entry.TypeDigit(it.Char)
		}
	case input.IntentTextBackspace:
		a.entry.DeleteBackward()
	case input.IntentTextDelete:
		a.entry.DeleteForward()
	case input.IntentTextLeft:
		a.entry.Left()
	case input.IntentTextRight:
		a.entry.Right()
	case input.IntentTextHome:
		a.entry.Home()
	case input.IntentTextEnd:
		a.entry.End()
	case input.IntentTextConfirm:
		a.Submit()
	}
	return true
}

// handleSettingsKey routes keys while the settings panel is open
func (a *App) handleSettingsKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyEnter, tcell.KeyF2:
		a.ToggleSettings()
		return true
	case tcell.KeyF11:
		a.ToggleFullscreen()
		return true
	case tcell.KeyUp, tcell.KeyDown, tcell.KeyTab, tcell.KeyBacktab:
		a.focus = (a.focus + 1) % display.Param(display.ParamCount)
		return true
	case tcell.KeyRune:
		r := ev.Rune()
		switch {
		case r == 's' || r == 'q':
			a.ToggleSettings()
			return true
		case r == 'j' || r == 'k':
			a.focus = (a.focus + 1) % display.Param(display.ParamCount)
			return true
		case entry.IsDigit(r):
			// Digits still reach the quick-add field behind the panel
			a.entry.TypeDigit(r)
			return true
		}
	}

	slider := a.sliders[a.focus]
	if slider.HandleKey(ev.Key(), ev.Rune()) {
		a.applySlider(a.focus)
	}
	return true
}

// handleClick routes a left press at absolute (x, y)
func (a *App) handleClick(x, y int) {
	h := &a.hits

	switch a.mode {
	case ModeConfirm:
		if a.confirm.HandleClick(x, y, h.Dialog) {
			a.closeConfirm()
		}
		return

	case ModeSettings:
		for p := display.Param(0); int(p) < display.ParamCount; p++ {
			if h.Tracks[p].Contains(x, y) {
				a.focus = p
				a.sliders[p].ClickTrack(x, h.Tracks[p])
				a.applySlider(p)
				return
			}
		}
		if h.Done.Contains(x, y) || h.Close.Contains(x, y) || h.Settings.Contains(x, y) {
			a.ToggleSettings()
		}
		return
	}

	switch {
	case h.Settings.Contains(x, y):
		a.ToggleSettings()
	case h.Fullscreen.Contains(x, y):
		a.ToggleFullscreen()
	case h.Undo.Contains(x, y):
		a.Undo()
	case h.Reset.Contains(x, y):
		a.OpenReset()
	case h.Submit.Contains(x, y):
		a.Submit()
	case h.Field.Contains(x, y):
		a.entry.Focus()
	default:
		if n, ok := h.CellAt(x, y); ok {
			a.cursor = n
			a.Toggle(n)
		}
	}
}

// --- Operations ---

// Toggle flips the called state of n, the board-click operation
func (a *App) Toggle(n int) {
	wasCalled := a.store.IsCalled(n)
	if a.store.Toggle(n) {
		if wasCalled {
			log.Printf("Uncalled %s via board", game.Label(n))
		} else {
			log.Printf("Called %s via board", game.Label(n))
		}
	}
}

// Submit sends the quick-add field to the store
func (a *App) Submit() {
	n, outcome := a.entry.Submit(a.store)
	switch outcome {
	case entry.OutcomeCalled:
		log.Printf("Called %s via entry", game.Label(n))
	case entry.OutcomeRejected, entry.OutcomeDuplicate:
		log.Printf("Entry %s", outcome)
	}
}

// Undo removes the most recent call
func (a *App) Undo() {
	if n, ok := a.store.Undo(); ok {
		log.Printf("Undo removed %s", game.Label(n))
	}
}

// OpenReset shows the reset confirmation with No focused
func (a *App) OpenReset() {
	a.confirm = tui.NewConfirmState(game.ResetPrompt, false)
	a.setMode(ModeConfirm)
}

// closeConfirm resolves the reset dialog into the store
func (a *App) closeConfirm() {
	answer := a.confirm
	a.setMode(ModeBoard)
	a.confirm = nil

	accepted := a.store.Reset(game.ConfirmFunc(func(string) bool {
		return answer.Accepted()
	}))
	if accepted {
		a.entry.Clear()
		log.Printf("Game reset")
	}
}

// setMode switches the input surface
func (a *App) setMode(m Mode) {
	if a.mode != m {
		log.Printf("Mode: %s -> %s", a.mode, m)
	}
	a.mode = m
}

// ToggleSettings opens or closes the settings panel
func (a *App) ToggleSettings() {
	if a.mode == ModeSettings {
		a.setMode(ModeBoard)
		return
	}
	if a.mode == ModeBoard {
		for p := display.Param(0); int(p) < display.ParamCount; p++ {
			a.sliders[p].Set(a.settings.Get(p))
		}
		a.setMode(ModeSettings)
	}
}

// applySlider writes a slider value through to the settings
func (a *App) applySlider(p display.Param) {
	v := a.settings.Set(p, a.sliders[p].Value)
	a.sliders[p].Value = v
}

// AdjustSetting moves a display setting by slider steps, keeping its slider in sync
func (a *App) AdjustSetting(p display.Param, steps int) {
	v := a.settings.Adjust(p, steps)
	a.sliders[p].Value = v
	log.Printf("%s: %d", display.BoundsOf(p).Label, v)
}

// wheel zooms the board, or resizes the current number with Shift held
func (a *App) wheel(steps int, mod tcell.ModMask) {
	if a.mode == ModeConfirm {
		return
	}
	p := display.ParamZoom
	if mod&tcell.ModShift != 0 {
		p = display.ParamNumberSize
	}
	a.AdjustSetting(p, steps)
}

// ToggleFullscreen requests the opposite of the last resolved state
func (a *App) ToggleFullscreen() {
	if a.presenter == nil {
		return
	}
	a.presenter.RequestFullscreen(!a.fullscreen)
}

// ResolveFullscreen applies a completed fullscreen request
// Failed requests leave the flag unchanged
func (a *App) ResolveFullscreen(res FullscreenResult) {
	if res.Err != nil {
		log.Printf("Fullscreen request failed: %v", res.Err)
		return
	}
	a.fullscreen = res.On
	log.Printf("Fullscreen: %v", res.On)
}

// moveCursor shifts the board cursor, staying within the board
// Horizontal moves stop at row edges
func (a *App) moveCursor(delta int) {
	if !a.showCursor {
		a.showCursor = true
		return
	}
	next := a.cursor + delta
	if !game.Valid(next) {
		return
	}
	if delta == 1 || delta == -1 {
		cur, _ := game.RangeOf(a.cursor)
		if !cur.Contains(next) {
			return
		}
	}
	a.cursor = next
}
