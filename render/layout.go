package render

import (
	"math"

	"github.com/lixenwraith/bingo-caller/asset"
	"github.com/lixenwraith/bingo-caller/display"
	"github.com/lixenwraith/bingo-caller/game"
	"github.com/lixenwraith/bingo-caller/tui"
)

// Terminal geometry
const (
	HeaderHeight   = 2 // title row + divider
	ControlsHeight = 7
	PanelMinWidth  = 28
	PanelPadding   = 2

	// Cell rows per rem; a terminal row is roughly twice as tall as wide
	RowsPerRem = 0.6
	ColsPerRem = 2.0

	// Size units per terminal row for the current-number glyph height
	SizeUnitsPerRow = 10

	// Widest current-number text, used to size the side panel
	widestNumber = "75"
)

// Layout partitions the screen for one frame
type Layout struct {
	Screen   tui.Region
	Header   tui.Region
	Panel    tui.Region
	Number   tui.Region // current-number readout area inside Panel
	Controls tui.Region
	Board    tui.Region
	Grid     BoardMetrics
}

// ComputeLayout derives regions from screen size and settings
// The fullscreen flag never changes the layout; it only relabels its button
func ComputeLayout(screen tui.Region, settings *display.Settings) Layout {
	l := Layout{Screen: screen}

	l.Header = screen.Sub(0, 0, screen.W, HeaderHeight)
	body := screen.Sub(0, HeaderHeight, screen.W, screen.H-HeaderHeight)

	panelW := PanelWidth(settings)
	if panelW > body.W/2 {
		panelW = body.W / 2
	}
	l.Panel = body.Sub(0, 0, panelW, body.H)
	l.Board = body.Sub(panelW+1, 0, body.W-panelW-1, body.H)

	inner := l.Panel.Sub(PanelPadding, 0, l.Panel.W-2*PanelPadding, l.Panel.H)
	l.Controls = inner.Sub(0, inner.H-ControlsHeight, inner.W, ControlsHeight)
	l.Number = inner.Sub(0, 1, inner.W, inner.H-ControlsHeight-1)

	l.Grid = ComputeBoard(l.Board, settings)
	return l
}

// GlyphScale converts a size in size units to a font-pixel scale
// One font pixel is scale rows tall and 2*scale columns wide
func GlyphScale(size float64) int {
	rows := int(size) / SizeUnitsPerRow
	k := rows / asset.GlyphHeight
	if k < 1 {
		k = 1
	}
	return k
}

// FitGlyphScale shrinks k until s fits in w x h cells, 0 if even k=1 does not fit
func FitGlyphScale(s string, k, w, h int) int {
	tw := asset.TextWidth(s)
	for ; k >= 1; k-- {
		if tw*2*k <= w && asset.GlyphHeight*k <= h {
			return k
		}
	}
	return 0
}

// PanelWidth sizes the side panel to hold the widest number at the configured size
func PanelWidth(settings *display.Settings) int {
	k := GlyphScale(float64(settings.NumberSize()))
	w := asset.TextWidth(widestNumber)*2*k + 2*PanelPadding + 2
	if w < PanelMinWidth {
		w = PanelMinWidth
	}
	return w
}

// BoardMetrics is the board grid geometry in terminal cells
type BoardMetrics struct {
	X, Y    int // absolute origin
	RowH    int
	RowGap  int
	LetterW int
	CellW   int
	CellGap int
}

// Width returns the total grid width
func (m BoardMetrics) Width() int {
	return m.LetterW + 1 + game.RangeSize*m.CellW + (game.RangeSize-1)*m.CellGap
}

// Height returns the total grid height
func (m BoardMetrics) Height() int {
	return game.LetterCount*m.RowH + (game.LetterCount-1)*m.RowGap
}

// LetterRect returns the absolute rectangle of row i's letter cell
func (m BoardMetrics) LetterRect(row int) tui.Rect {
	return tui.Rect{X: m.X, Y: m.Y + row*(m.RowH+m.RowGap), W: m.LetterW, H: m.RowH}
}

// CellRect returns the absolute rectangle of board number n
func (m BoardMetrics) CellRect(n int) tui.Rect {
	row := (n - game.MinNumber) / game.RangeSize
	col := (n - game.MinNumber) % game.RangeSize
	return tui.Rect{
		X: m.X + m.LetterW + 1 + col*(m.CellW+m.CellGap),
		Y: m.Y + row*(m.RowH+m.RowGap),
		W: m.CellW,
		H: m.RowH,
	}
}

// ComputeBoard scales every board dimension by the zoom factor, then fits region
func ComputeBoard(region tui.Region, settings *display.Settings) BoardMetrics {
	d := settings.Dimensions()

	m := BoardMetrics{
		RowH:    atLeast(int(math.Round(d.RowHeight*RowsPerRem)), 1),
		LetterW: atLeast(int(math.Round(d.LetterSize*ColsPerRem)), 3),
		CellW:   atLeast(int(math.Round(d.NumberSize*ColsPerRem)), 2),
		CellGap: 1,
	}
	if m.RowH >= 3 {
		m.RowGap = 1
	}

	// Shrink to fit, gaps first
	for m.Height() > region.H && (m.RowGap > 0 || m.RowH > 1) {
		if m.RowGap > 0 {
			m.RowGap = 0
		} else {
			m.RowH--
		}
	}
	for m.Width() > region.W && m.CellW > 2 {
		m.CellW--
	}
	if m.Width() > region.W {
		m.CellGap = 0
	}
	for m.Width() > region.W && m.LetterW > 1 {
		m.LetterW--
	}

	m.X = region.X + atLeast((region.W-m.Width())/2, 0)
	m.Y = region.Y + atLeast((region.H-m.Height())/2, 0)
	return m
}

func atLeast(v, lo int) int {
	if v < lo {
		return lo
	}
	return v
}
