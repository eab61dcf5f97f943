package render

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/bingo-caller/asset"
	"github.com/lixenwraith/bingo-caller/game"
	"github.com/lixenwraith/bingo-caller/tui"
)

// BoardLayer draws the five lettered rows of number cells
type BoardLayer struct{}

// Render draws letters and cells and records cell hits
func (l *BoardLayer) Render(ctx *Context) {
	m := ctx.Layout.Grid
	cursor, showCursor := ctx.App.Cursor()

	for i, row := range ctx.View.Rows {
		lr := m.LetterRect(i)
		l.renderLetter(ctx, rectRegion(ctx.Screen, lr), row.Range.Letter)

		for _, c := range row.Cells {
			rect := m.CellRect(c.Number)
			style := CellStyle(c.State)
			if showCursor && c.Number == cursor {
				style = style.Underline(true).Reverse(c.State == game.CellUncalled)
			}
			l.renderCell(rectRegion(ctx.Screen, rect), c.Number, style)
			ctx.Hits.Cells[c.Number] = rect
		}
	}
}

// renderLetter draws the row letter, with the block font when the row is tall enough
func (l *BoardLayer) renderLetter(ctx *Context, r tui.Region, letter game.Letter) {
	style := LetterStyle(letter)
	r.Fill(style)
	if r.H >= asset.GlyphHeight && r.W >= asset.GlyphWidth*2 {
		DrawGlyphText(r, letter.String(), float64(r.H*SizeUnitsPerRow), style)
		return
	}
	r.TextCenter(r.H/2, letter.String(), style)
}

// renderCell fills the cell and centers its number
func (l *BoardLayer) renderCell(r tui.Region, n int, style tcell.Style) {
	r.Fill(style)
	r.TextCenter(r.H/2, strconv.Itoa(n), style)
}

// rectRegion converts an absolute rectangle back to a drawable region
func rectRegion(screen tcell.Screen, rect tui.Rect) tui.Region {
	return tui.NewRegion(screen, rect.X, rect.Y, rect.W, rect.H)
}
