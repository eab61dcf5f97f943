package render

import (
	"github.com/lixenwraith/bingo-caller/app"
	"github.com/lixenwraith/bingo-caller/display"
	"github.com/lixenwraith/bingo-caller/tui"
)

// Settings panel geometry
const (
	settingsWidth  = 48
	settingsHeight = 13
)

// SettingsLayer draws the display settings modal
type SettingsLayer struct{}

// IsVisible shows the panel only in settings mode
func (l *SettingsLayer) IsVisible(ctx *Context) bool {
	return ctx.App.Mode() == app.ModeSettings
}

// Render draws both sliders and the Done button
func (l *SettingsLayer) Render(ctx *Context) {
	frame := tui.Center(ctx.Layout.Screen, settingsWidth, settingsHeight)
	content := frame.Modal(tui.ModalOpts{
		Title:      "Display Settings",
		Border:     tui.LineRounded,
		FrameStyle: StylePanel.Foreground(RgbMuted),
		TitleStyle: StyleTitle,
	})

	// Close mark on the top border
	frame.Text(frame.W-4, 0, " x ", StylePanel.Foreground(RgbText))
	ctx.Hits.Close = frame.Sub(frame.W-4, 0, 3, 1).Rect()

	focused := ctx.App.FocusedSlider()
	y := 0
	for p := display.Param(0); int(p) < display.ParamCount; p++ {
		ctx.Hits.Tracks[p] = content.Slider(y, ctx.App.Slider(p), p == focused, sliderStyle())
		y += 3
	}

	done := tui.Button{Label: "Done", Active: true}
	ctx.Hits.Done = content.Button((content.W-done.Width())/2, content.H-1, done, buttonStyle(StylePanel))
}

// ConfirmLayer draws the reset confirmation dialog
type ConfirmLayer struct{}

// IsVisible shows the dialog only in confirm mode
func (l *ConfirmLayer) IsVisible(ctx *Context) bool {
	return ctx.App.Confirm() != nil
}

// Render draws the dialog and records button hits
func (l *ConfirmLayer) Render(ctx *Context) {
	ctx.Hits.Dialog = ctx.Layout.Screen.ConfirmDialog(ctx.App.Confirm(), app.ResetDialogTitle, confirmStyle())
}
