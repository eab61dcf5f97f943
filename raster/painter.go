package raster

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"tinygo.org/x/tinyfont"
)

// Fallback colors for tcell.ColorDefault
var (
	DefaultForeground = color.RGBA{R: 0xe6, G: 0xe6, B: 0xe6, A: 0xff}
	DefaultBackground = color.RGBA{R: 0x10, G: 0x12, B: 0x18, A: 0xff}
)

// Line directions out of a cell center
const (
	lineLeft uint8 = 1 << iota
	lineRight
	lineUp
	lineDown
	lineThick
)

// boxLines maps box-drawing runes to the segments they connect
var boxLines = map[rune]uint8{
	'─': lineLeft | lineRight,
	'━': lineLeft | lineRight | lineThick,
	'═': lineLeft | lineRight | lineThick,
	'│': lineUp | lineDown,
	'┃': lineUp | lineDown | lineThick,
	'║': lineUp | lineDown | lineThick,
	'┌': lineRight | lineDown,
	'╭': lineRight | lineDown,
	'┏': lineRight | lineDown | lineThick,
	'╔': lineRight | lineDown | lineThick,
	'┐': lineLeft | lineDown,
	'╮': lineLeft | lineDown,
	'┓': lineLeft | lineDown | lineThick,
	'╗': lineLeft | lineDown | lineThick,
	'└': lineRight | lineUp,
	'╰': lineRight | lineUp,
	'┗': lineRight | lineUp | lineThick,
	'╚': lineRight | lineUp | lineThick,
	'┘': lineLeft | lineUp,
	'╯': lineLeft | lineUp,
	'┛': lineLeft | lineUp | lineThick,
	'╝': lineLeft | lineUp | lineThick,
}

// asciiFallback replaces runes the bitmap font lacks
var asciiFallback = map[rune]string{
	'▸': ">",
	'…': ".",
}

// Painter converts screen cells to pixels at a fixed cell size
type Painter struct {
	font     tinyfont.Fonter
	CellW    int
	CellH    int
	baseline int
}

// NewPainter derives the cell size from the font's advance metrics
func NewPainter(font tinyfont.Fonter) *Painter {
	_, outbox := tinyfont.LineWidth(font, "0")
	h := int(font.GetYAdvance())
	return &Painter{
		font:     font,
		CellW:    max(int(outbox), 1),
		CellH:    max(h, 1),
		baseline: h * 3 / 4,
	}
}

// GridSize returns how many whole cells fit in w x h pixels
func (p *Painter) GridSize(w, h int) (cols, rows int) {
	return max(w/p.CellW, 1), max(h/p.CellH, 1)
}

// CellAt maps a pixel position to a cell position
func (p *Painter) CellAt(px, py int) (x, y int) {
	return px / p.CellW, py / p.CellH
}

// Paint draws every cell of screen and its visible cursor into c
func (p *Painter) Paint(c *Canvas, screen tcell.Screen) {
	w, h := screen.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ch, _, style, _ := screen.GetContent(x, y)
			p.paintCell(c, x, y, ch, style)
		}
	}

	if sim, ok := screen.(tcell.SimulationScreen); ok {
		if cx, cy, visible := sim.GetCursor(); visible {
			c.FillRect(cx*p.CellW, cy*p.CellH, max(p.CellW/6, 1), p.CellH, DefaultForeground)
		}
	}
}

// paintCell fills the background then draws the rune as a shape or glyph
func (p *Painter) paintCell(c *Canvas, x, y int, ch rune, style tcell.Style) {
	fgc, bgc, attr := style.Decompose()
	fg := rgba(fgc, DefaultForeground)
	bg := rgba(bgc, DefaultBackground)
	if attr&tcell.AttrReverse != 0 {
		fg, bg = bg, fg
	}

	px, py := x*p.CellW, y*p.CellH
	c.FillRect(px, py, p.CellW, p.CellH, bg)

	switch {
	case ch == 0 || ch == ' ':
	case ch == '█':
		c.FillRect(px, py, p.CellW, p.CellH, fg)
	case ch == '●':
		d := min(p.CellW, p.CellH) * 2 / 3
		c.FillRect(px+(p.CellW-d)/2, py+(p.CellH-d)/2, d, d, fg)
	case boxLines[ch] != 0:
		p.paintLines(c, px, py, boxLines[ch], fg)
	default:
		s, ok := asciiFallback[ch]
		if !ok {
			s = string(ch)
		}
		tinyfont.WriteLine(c, p.font, int16(px), int16(py+p.baseline), s, fg)
	}

	if attr&tcell.AttrUnderline != 0 {
		c.FillRect(px, py+p.CellH-2, p.CellW, 1, fg)
	}
}

// paintLines draws segments from the cell center toward the marked edges
func (p *Painter) paintLines(c *Canvas, px, py int, mask uint8, col color.RGBA) {
	t := 1
	if mask&lineThick != 0 {
		t = 2
	}
	cx, cy := px+p.CellW/2, py+p.CellH/2
	if mask&lineLeft != 0 {
		c.FillRect(px, cy, cx-px+t, t, col)
	}
	if mask&lineRight != 0 {
		c.FillRect(cx, cy, px+p.CellW-cx, t, col)
	}
	if mask&lineUp != 0 {
		c.FillRect(cx, py, t, cy-py+t, col)
	}
	if mask&lineDown != 0 {
		c.FillRect(cx, cy, t, py+p.CellH-cy, col)
	}
}

// rgba converts a tcell color, using fallback for default or unset colors
func rgba(c tcell.Color, fallback color.RGBA) color.RGBA {
	if c == tcell.ColorDefault {
		return fallback
	}
	r, g, b := c.RGB()
	if r < 0 {
		return fallback
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}
}
