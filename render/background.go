package render

import "github.com/lixenwraith/bingo-caller/tui"

// BackgroundLayer paints the board backdrop, the side panel surface and the divider between them
type BackgroundLayer struct{}

// Render fills the screen and panel
func (l *BackgroundLayer) Render(ctx *Context) {
	lay := ctx.Layout
	lay.Screen.Fill(StyleBackground)
	lay.Panel.Fill(StylePanel)

	divider := tui.NewRegion(ctx.Screen, lay.Panel.X+lay.Panel.W, lay.Panel.Y, 1, lay.Panel.H)
	divider.VLine(0, tui.LineSingle, StyleBackground.Foreground(RgbBorder))
}
