package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/bingo-caller/game"
	"github.com/lixenwraith/bingo-caller/tui"
)

// RGB color definitions, slate/indigo palette
var (
	RgbBackground = tcell.NewRGBColor(2, 6, 23)      // Slate 950
	RgbPanel      = tcell.NewRGBColor(15, 23, 42)    // Slate 900
	RgbBorder     = tcell.NewRGBColor(30, 41, 59)    // Slate 800
	RgbControl    = tcell.NewRGBColor(30, 41, 59)    // Slate 800
	RgbMuted      = tcell.NewRGBColor(100, 116, 139) // Slate 500
	RgbText       = tcell.NewRGBColor(241, 245, 249) // Slate 100
	RgbDim        = tcell.NewRGBColor(51, 65, 85)    // Slate 700
	RgbAccent     = tcell.NewRGBColor(99, 102, 241)  // Indigo 500
	RgbAccentText = tcell.NewRGBColor(129, 140, 248) // Indigo 400
	RgbDanger     = tcell.NewRGBColor(248, 113, 113) // Red 400
	RgbDangerBg   = tcell.NewRGBColor(127, 29, 29)   // Red 900

	// Board cell states
	RgbCellUncalledBg = tcell.NewRGBColor(15, 23, 42)
	RgbCellUncalledFg = tcell.NewRGBColor(71, 85, 105)
	RgbCellCalledBg   = tcell.NewRGBColor(226, 232, 240)
	RgbCellCalledFg   = tcell.NewRGBColor(15, 23, 42)
	RgbCellLatestBg   = tcell.NewRGBColor(99, 102, 241)
	RgbCellLatestFg   = tcell.NewRGBColor(255, 255, 255)
)

// letterColors holds foreground and background per letter row
var letterColors = [game.LetterCount][2]tcell.Color{
	game.LetterB: {tcell.NewRGBColor(248, 113, 113), tcell.NewRGBColor(69, 10, 10)},  // Red
	game.LetterI: {tcell.NewRGBColor(250, 204, 21), tcell.NewRGBColor(66, 32, 6)},    // Yellow
	game.LetterN: {tcell.NewRGBColor(74, 222, 128), tcell.NewRGBColor(5, 46, 22)},    // Green
	game.LetterG: {tcell.NewRGBColor(96, 165, 250), tcell.NewRGBColor(23, 37, 84)},   // Blue
	game.LetterO: {tcell.NewRGBColor(192, 132, 252), tcell.NewRGBColor(46, 16, 101)}, // Purple
}

// Base styles
var (
	StyleBackground  = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	StylePanel       = tcell.StyleDefault.Background(RgbPanel).Foreground(RgbText)
	StyleCaption     = StylePanel.Foreground(RgbMuted).Bold(true)
	StyleTitle       = StylePanel.Foreground(RgbText).Bold(true)
	StyleTitleAlt    = StylePanel.Foreground(RgbAccentText).Bold(true)
	StyleDivider     = StylePanel.Foreground(RgbBorder)
	StyleBigNumber   = StylePanel.Foreground(RgbText)
	StylePlaceholder = StylePanel.Foreground(RgbDim)
	StyleField       = tcell.StyleDefault.Background(RgbControl).Foreground(RgbText)
	StyleFieldFocus  = StyleField.Underline(true)
	StyleFieldHint   = StyleField.Foreground(RgbMuted)
)

// CellStyle returns the board style for a number state
func CellStyle(state game.CellState) tcell.Style {
	switch state {
	case game.CellLatest:
		return tcell.StyleDefault.Background(RgbCellLatestBg).Foreground(RgbCellLatestFg).Bold(true)
	case game.CellCalled:
		return tcell.StyleDefault.Background(RgbCellCalledBg).Foreground(RgbCellCalledFg).Bold(true)
	default:
		return tcell.StyleDefault.Background(RgbCellUncalledBg).Foreground(RgbCellUncalledFg)
	}
}

// LetterStyle returns the header cell style for a letter row
func LetterStyle(l game.Letter) tcell.Style {
	c := letterColors[l]
	return tcell.StyleDefault.Foreground(c[0]).Background(c[1]).Bold(true)
}

// ButtonStyles for header and panel buttons
func buttonStyle(base tcell.Style) tui.ButtonStyle {
	return tui.ButtonStyle{
		Normal:   base.Foreground(RgbText),
		Active:   tcell.StyleDefault.Background(RgbAccent).Foreground(RgbCellLatestFg).Bold(true),
		Disabled: base.Foreground(RgbDim),
		Key:      base.Foreground(RgbMuted),
	}
}

func dangerButtonStyle() tui.ButtonStyle {
	s := buttonStyle(StylePanel)
	s.Normal = StylePanel.Foreground(RgbDanger)
	return s
}

func confirmStyle() tui.ConfirmStyle {
	frame := StylePanel.Foreground(RgbMuted)
	return tui.ConfirmStyle{
		Frame:       frame,
		Title:       StyleTitle,
		Message:     StylePanel.Foreground(RgbText),
		Button:      tcell.StyleDefault.Background(RgbControl).Foreground(RgbText),
		ButtonFocus: tcell.StyleDefault.Background(RgbAccent).Foreground(RgbCellLatestFg).Bold(true),
		Destructive: tcell.StyleDefault.Background(RgbDangerBg).Foreground(RgbCellLatestFg).Bold(true),
	}
}

func sliderStyle() tui.SliderStyle {
	return tui.SliderStyle{
		Label:       StylePanel.Foreground(RgbText),
		Value:       StylePanel.Foreground(RgbAccentText).Bold(true),
		Track:       StylePanel.Foreground(RgbDim),
		Fill:        StylePanel.Foreground(RgbAccent),
		Knob:        StylePanel.Foreground(RgbText),
		FocusedKnob: StylePanel.Foreground(RgbAccentText).Bold(true),
	}
}
