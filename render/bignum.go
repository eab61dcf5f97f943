package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/bingo-caller/asset"
	"github.com/lixenwraith/bingo-caller/tui"
)

const glyphBlock = '█'

// DrawGlyphText draws s with the block font centered in region
// size is in size units; the scale shrinks to fit and falls back to plain text
func DrawGlyphText(region tui.Region, s string, size float64, style tcell.Style) {
	k := FitGlyphScale(s, GlyphScale(size), region.W, region.H)
	if k == 0 {
		region.TextCenter(region.H/2, s, style.Bold(true))
		return
	}

	w := asset.TextWidth(s) * 2 * k
	h := asset.GlyphHeight * k
	ox := (region.W - w) / 2
	oy := (region.H - h) / 2

	asset.Rasterize(s, func(px, py int) {
		for dy := 0; dy < k; dy++ {
			for dx := 0; dx < 2*k; dx++ {
				region.Cell(ox+px*2*k+dx, oy+py*k+dy, glyphBlock, style)
			}
		}
	})
}
