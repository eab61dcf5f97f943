package input

// intentNames maps intents to canonical action names used in debug logs
var intentNames = map[IntentType]string{
	IntentNone:             "none",
	IntentQuit:             "quit",
	IntentEscape:           "escape",
	IntentUndo:             "undo",
	IntentReset:            "reset",
	IntentToggleSettings:   "toggle_settings",
	IntentToggleFullscreen: "toggle_fullscreen",
	IntentCursorUp:         "cursor_up",
	IntentCursorDown:       "cursor_down",
	IntentCursorLeft:       "cursor_left",
	IntentCursorRight:      "cursor_right",
	IntentToggleCell:       "toggle_cell",
	IntentFocusEntry:       "focus_entry",
	IntentTextChar:         "text_char",
	IntentTextBackspace:    "text_backspace",
	IntentTextDelete:       "text_delete",
	IntentTextLeft:         "text_left",
	IntentTextRight:        "text_right",
	IntentTextHome:         "text_home",
	IntentTextEnd:          "text_end",
	IntentTextConfirm:      "text_confirm",
	IntentMouseClick:       "mouse_click",
}

// String returns the canonical action name
func (t IntentType) String() string {
	if name, ok := intentNames[t]; ok {
		return name
	}
	return "unknown"
}
