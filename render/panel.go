package render

import (
	"github.com/lixenwraith/bingo-caller/game"
	"github.com/lixenwraith/bingo-caller/tui"
)

// Quick-add field geometry
const (
	fieldPrefix      = "# "
	fieldPlaceholder = "Type..."
)

// PanelLayer draws the current-number readout and the entry controls
type PanelLayer struct{}

// Render draws readout and controls
func (l *PanelLayer) Render(ctx *Context) {
	l.renderNumber(ctx)
	if ctx.Layout.Controls.H > 0 {
		l.renderControls(ctx)
	}
}

// renderNumber draws the caption and the scaled last call or placeholder
func (l *PanelLayer) renderNumber(ctx *Context) {
	r := ctx.Layout.Number
	caption := ctx.Layout.Panel.Sub(0, r.Y-ctx.Layout.Panel.Y-1, ctx.Layout.Panel.W, 1)
	caption.TextCenter(0, "CURRENT NUMBER", StyleCaption)

	// Glyphs above, letter-number label on the last row
	area := r.Sub(0, 1, r.W, r.H-2)
	if !ctx.View.HasLast {
		DrawGlyphText(area, game.Placeholder, ctx.Settings.PlaceholderSize(), StylePlaceholder)
		return
	}
	DrawGlyphText(area, ctx.View.Current(), float64(ctx.Settings.NumberSize()), StyleBigNumber)
	r.TextCenter(r.H-1, game.Label(ctx.View.Last), StyleCaption)
}

// renderControls draws the quick-add field and the Undo/Reset buttons
func (l *PanelLayer) renderControls(ctx *Context) {
	r := ctx.Layout.Controls
	field := ctx.App.Entry()

	r.HLine(0, tui.LineSingle, StyleDivider)
	r.Text(0, 2, "QUICK ADD", StyleCaption)

	// Field row: "# ____ [ Call ]"
	callBtn := tui.Button{Label: "Call", Disabled: field.Empty()}
	boxW := r.W - tui.RuneLen(fieldPrefix) - callBtn.Width() - 1
	if boxW < 4 {
		boxW = 4
	}
	r.Text(0, 3, fieldPrefix, StylePanel.Foreground(RgbMuted))
	box := r.Sub(tui.RuneLen(fieldPrefix), 3, boxW, 1)

	boxStyle := StyleField
	if field.Focused() {
		boxStyle = StyleFieldFocus
	}
	box.Fill(boxStyle)
	if field.Empty() && !field.Focused() {
		box.Text(1, 0, fieldPlaceholder, StyleFieldHint)
	} else {
		box.Text(1, 0, field.Value(), boxStyle)
	}
	if field.Focused() {
		ctx.Screen.ShowCursor(box.X+1+field.Cursor(), box.Y)
	}
	ctx.Hits.Field = box.Rect()
	ctx.Hits.Submit = r.Button(tui.RuneLen(fieldPrefix)+boxW+1, 3, callBtn, buttonStyle(StylePanel))

	// Action row
	undo := tui.Button{Label: "Undo", Key: "u", Disabled: !ctx.App.CanUndo()}
	reset := tui.Button{Label: "Reset", Key: "r"}
	ctx.Hits.Undo = r.Button(0, 5, undo, buttonStyle(StylePanel))
	ctx.Hits.Reset = r.Button(undo.Width()+2, 5, reset, dangerButtonStyle())
}
