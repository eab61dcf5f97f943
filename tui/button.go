package tui

import "github.com/gdamore/tcell/v2"

// Button is a clickable label rendered as "[ Label ]"
type Button struct {
	Label    string
	Key      string // Keyboard hint (e.g., "u")
	Active   bool   // Toggled-on look, e.g. settings panel open
	Disabled bool
}

// ButtonStyle defines button colors
type ButtonStyle struct {
	Normal   tcell.Style
	Active   tcell.Style
	Disabled tcell.Style
	Key      tcell.Style
}

// Width returns the rendered width of the button
func (b Button) Width() int {
	w := RuneLen(b.Label) + 4
	if b.Key != "" {
		w += RuneLen(b.Key) + 1
	}
	return w
}

// Button draws b at (x, y) and returns its absolute hit rectangle
func (r Region) Button(x, y int, b Button, style ButtonStyle) Rect {
	st := style.Normal
	switch {
	case b.Disabled:
		st = style.Disabled
	case b.Active:
		st = style.Active
	}

	text := "[ " + b.Label
	r.Text(x, y, text, st)
	col := x + RuneLen(text)
	if b.Key != "" {
		keyStyle := style.Key
		if b.Disabled {
			keyStyle = style.Disabled
		}
		r.Text(col, y, " "+b.Key, keyStyle)
		col += RuneLen(b.Key) + 1
	}
	r.Text(col, y, " ]", st)

	return r.Sub(x, y, b.Width(), 1).Rect()
}

// ButtonRow draws buttons left to right separated by gap and returns their hit rectangles
func (r Region) ButtonRow(x, y, gap int, buttons []Button, style ButtonStyle) []Rect {
	rects := make([]Rect, len(buttons))
	for i, b := range buttons {
		rects[i] = r.Button(x, y, b, style)
		x += b.Width() + gap
	}
	return rects
}
