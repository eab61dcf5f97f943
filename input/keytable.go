package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents for the two keyboard contexts
// Board context: no text field focus, letters act as shortcuts
// Text context: the quick-add field has focus, printable runes are typed
type KeyTable struct {
	// Special keys valid in every context (Ctrl+*, function keys)
	SystemKeys map[tcell.Key]IntentType

	// Board context bindings
	BoardKeys  map[tcell.Key]IntentType
	BoardRunes map[rune]IntentType

	// Text context navigation keys
	TextKeys map[tcell.Key]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SystemKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlQ:  IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlZ:  IntentUndo,
			tcell.KeyCtrlR:  IntentReset,
			tcell.KeyF2:     IntentToggleSettings,
			tcell.KeyF11:    IntentToggleFullscreen,
			tcell.KeyEscape: IntentEscape,
			tcell.KeyEnter:  IntentTextConfirm,
			tcell.KeyTab:    IntentFocusEntry,
		},

		BoardKeys: map[tcell.Key]IntentType{
			tcell.KeyUp:         IntentCursorUp,
			tcell.KeyDown:       IntentCursorDown,
			tcell.KeyLeft:       IntentCursorLeft,
			tcell.KeyRight:      IntentCursorRight,
			tcell.KeyBackspace:  IntentTextBackspace,
			tcell.KeyBackspace2: IntentTextBackspace,
		},

		BoardRunes: map[rune]IntentType{
			'u': IntentUndo,
			'r': IntentReset,
			's': IntentToggleSettings,
			'f': IntentToggleFullscreen,
			'h': IntentCursorLeft,
			'j': IntentCursorDown,
			'k': IntentCursorUp,
			'l': IntentCursorRight,
			' ': IntentToggleCell,
		},

		TextKeys: map[tcell.Key]IntentType{
			tcell.KeyBackspace:  IntentTextBackspace,
			tcell.KeyBackspace2: IntentTextBackspace,
			tcell.KeyDelete:     IntentTextDelete,
			tcell.KeyLeft:       IntentTextLeft,
			tcell.KeyRight:      IntentTextRight,
			tcell.KeyHome:       IntentTextHome,
			tcell.KeyEnd:        IntentTextEnd,
		},
	}
}

// Resolve maps a key event to an intent
// textFocus selects the text context; digits always resolve to IntentTextChar
// so the caller can move focus to the field before typing
func (kt *KeyTable) Resolve(ev *tcell.EventKey, textFocus bool) Intent {
	key := ev.Key()

	if it, ok := kt.SystemKeys[key]; ok {
		return Intent{Type: it}
	}

	if key == tcell.KeyRune {
		r := ev.Rune()
		if textFocus || (r >= '0' && r <= '9') {
			return Intent{Type: IntentTextChar, Char: r}
		}
		if it, ok := kt.BoardRunes[r]; ok {
			return Intent{Type: it}
		}
		return Intent{}
	}

	if textFocus {
		if it, ok := kt.TextKeys[key]; ok {
			return Intent{Type: it}
		}
		return Intent{}
	}

	if it, ok := kt.BoardKeys[key]; ok {
		return Intent{Type: it}
	}
	return Intent{}
}

// ResolveMouse maps a mouse event to a click intent on left-button press
// prev is the button mask of the previous mouse event, used for edge detection
func ResolveMouse(ev *tcell.EventMouse, prev tcell.ButtonMask) Intent {
	btn := ev.Buttons()
	if btn&tcell.Button1 == 0 || prev&tcell.Button1 != 0 {
		return Intent{}
	}
	x, y := ev.Position()
	return Intent{Type: IntentMouseClick, X: x, Y: y}
}

// WheelSteps returns +1 for wheel up, -1 for wheel down, 0 otherwise
func WheelSteps(btn tcell.ButtonMask) int {
	switch {
	case btn&tcell.WheelUp != 0:
		return 1
	case btn&tcell.WheelDown != 0:
		return -1
	}
	return 0
}
