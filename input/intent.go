package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // Ctrl+Q, Ctrl+C
	IntentEscape // ESC key (context-dependent)

	// Game actions
	IntentUndo             // u, Ctrl+Z
	IntentReset            // r, Ctrl+R (confirmation gated)
	IntentToggleSettings   // s, F2
	IntentToggleFullscreen // f, F11

	// Board cursor
	IntentCursorUp
	IntentCursorDown
	IntentCursorLeft
	IntentCursorRight
	IntentToggleCell // Space on the board cursor

	// Quick-add field
	IntentFocusEntry    // Tab
	IntentTextChar      // Printable character while the field has focus
	IntentTextBackspace // Backspace
	IntentTextDelete    // Delete
	IntentTextLeft      // Left arrow in field
	IntentTextRight     // Right arrow in field
	IntentTextHome      // Home in field
	IntentTextEnd       // End in field
	IntentTextConfirm   // Enter (submit)

	// Mouse
	IntentMouseClick // Left press
)

// Intent is a resolved user action
type Intent struct {
	Type IntentType
	Char rune // IntentTextChar payload
	X, Y int  // IntentMouseClick payload
}
