package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key repeat timing in ticks
const (
	repeatDelay    = 30
	repeatInterval = 4
)

// specialKeys maps non-text window keys to terminal keys
var specialKeys = map[ebiten.Key]tcell.Key{
	ebiten.KeyEnter:       tcell.KeyEnter,
	ebiten.KeyNumpadEnter: tcell.KeyEnter,
	ebiten.KeyEscape:      tcell.KeyEscape,
	ebiten.KeyBackspace:   tcell.KeyBackspace2,
	ebiten.KeyDelete:      tcell.KeyDelete,
	ebiten.KeyArrowUp:     tcell.KeyUp,
	ebiten.KeyArrowDown:   tcell.KeyDown,
	ebiten.KeyArrowLeft:   tcell.KeyLeft,
	ebiten.KeyArrowRight:  tcell.KeyRight,
	ebiten.KeyHome:        tcell.KeyHome,
	ebiten.KeyEnd:         tcell.KeyEnd,
	ebiten.KeyPageUp:      tcell.KeyPgUp,
	ebiten.KeyPageDown:    tcell.KeyPgDn,
	ebiten.KeyF2:          tcell.KeyF2,
	ebiten.KeyF11:         tcell.KeyF11,
}

// ctrlKeys maps Ctrl+letter chords to terminal control keys
var ctrlKeys = map[ebiten.Key]tcell.Key{
	ebiten.KeyQ: tcell.KeyCtrlQ,
	ebiten.KeyC: tcell.KeyCtrlC,
	ebiten.KeyZ: tcell.KeyCtrlZ,
	ebiten.KeyR: tcell.KeyCtrlR,
}

// repeating reports a fresh press or an auto-repeat tick of a held key
func repeating(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d == 1 || (d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0)
}

// pollKeys converts this tick's keyboard input to tcell key events
func pollKeys() []tcell.Event {
	var events []tcell.Event

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)

	if ctrl {
		for k, tk := range ctrlKeys {
			if inpututil.IsKeyJustPressed(k) {
				events = append(events, tcell.NewEventKey(tk, 0, tcell.ModCtrl))
			}
		}
		return events
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if shift {
			events = append(events, tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModShift))
		} else {
			events = append(events, tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone))
		}
	}
	for k, tk := range specialKeys {
		if repeating(k) {
			events = append(events, tcell.NewEventKey(tk, 0, tcell.ModNone))
		}
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		events = append(events, tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
	return events
}
