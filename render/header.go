package render

import (
	"github.com/lixenwraith/bingo-caller/app"
	"github.com/lixenwraith/bingo-caller/tui"
)

// HeaderLayer draws title, call counter and the settings/fullscreen buttons
type HeaderLayer struct{}

// IsVisible hides the header when the screen has no room for it
func (l *HeaderLayer) IsVisible(ctx *Context) bool {
	return ctx.Layout.Header.H > 0
}

// Render draws the header row and records button hits
func (l *HeaderLayer) Render(ctx *Context) {
	r := ctx.Layout.Header
	r.Sub(0, 0, r.W, 1).Fill(StylePanel)
	r.HLine(1, tui.LineSingle, StyleDivider)

	r.Text(1, 0, "BINGO", StyleTitle)
	r.Text(6, 0, "MASTER", StyleTitleAlt)

	settingsBtn := tui.Button{Label: "Settings", Key: "s", Active: ctx.App.Mode() == app.ModeSettings}
	fsLabel := "Fullscreen"
	if ctx.App.Fullscreen() {
		fsLabel = "Exit Fullscreen"
	}
	fsBtn := tui.Button{Label: fsLabel, Key: "f"}

	counter := "Called: " + ctx.View.Counter()
	right := tui.RuneLen(counter) + 2 + settingsBtn.Width() + 1 + fsBtn.Width() + 1
	x := r.W - right
	if x < 14 {
		x = 14
	}

	style := buttonStyle(StylePanel)
	r.Text(x, 0, "Called: ", StylePanel.Foreground(RgbMuted))
	r.Text(x+8, 0, ctx.View.Counter(), StyleTitle)
	x += tui.RuneLen(counter) + 2

	hits := r.ButtonRow(x, 0, 1, []tui.Button{settingsBtn, fsBtn}, style)
	ctx.Hits.Settings, ctx.Hits.Fullscreen = hits[0], hits[1]
}
