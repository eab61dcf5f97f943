// Package tui provides region-based drawing primitives and small widget
// states (confirm dialog, slider, button) on top of a tcell.Screen.
//
// Widgets are split into a state type that handles keys and a Region method
// that draws it. Draw methods return the absolute Rect of every clickable
// part so the caller can route mouse presses without re-deriving layout.
package tui
