package tui

import "github.com/gdamore/tcell/v2"

// Rect is an absolute screen rectangle used for mouse hit testing
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether absolute point (x, y) lies in the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether the rectangle has no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Region represents a rectangular area of the screen
// All drawing coordinates are relative to the region's origin
type Region struct {
	Screen tcell.Screen
	X, Y   int // Absolute position on screen
	W, H   int // Region dimensions
}

// NewRegion creates a region over the screen
func NewRegion(screen tcell.Screen, x, y, w, h int) Region {
	return Region{Screen: screen, X: x, Y: y, W: w, H: h}
}

// FullScreen returns a region covering the whole screen
func FullScreen(screen tcell.Screen) Region {
	w, h := screen.Size()
	return NewRegion(screen, 0, 0, w, h)
}

// Sub returns a nested region with coordinates relative to parent, result is clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Region{Screen: r.Screen, X: r.X + x, Y: r.Y + y, W: w, H: h}
}

// Inset returns a region shrunk by n cells on all sides
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// Rect returns the absolute bounds of the region
func (r Region) Rect() Rect {
	return Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// Cell sets a single cell with bounds checking
func (r Region) Cell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	r.Screen.SetContent(r.X+x, r.Y+y, ch, nil, style)
}

// Fill fills the entire region with spaces in style
func (r Region) Fill(style tcell.Style) {
	r.FillRune(' ', style)
}

// FillRune fills the entire region with ch
func (r Region) FillRune(ch rune, style tcell.Style) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ch, style)
		}
	}
}

// Text renders text at position, truncates at region edge
func (r Region) Text(x, y int, s string, style tcell.Style) {
	if y < 0 || y >= r.H {
		return
	}
	col := 0
	for _, ch := range s {
		if x+col >= r.W {
			break
		}
		if x+col >= 0 {
			r.Cell(x+col, y, ch, style)
		}
		col++
	}
}

// TextRight renders text right-aligned on row
func (r Region) TextRight(y int, s string, style tcell.Style) {
	r.Text(r.W-RuneLen(s), y, s, style)
}

// TextCenter renders text centered on row
func (r Region) TextCenter(y int, s string, style tcell.Style) {
	r.Text((r.W-RuneLen(s))/2, y, s, style)
}

// Center returns a w x h region centered in outer
func Center(outer Region, w, h int) Region {
	return outer.Sub((outer.W-w)/2, (outer.H-h)/2, w, h)
}

// RuneLen returns the number of runes in s
func RuneLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
