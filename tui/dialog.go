package tui

import "github.com/gdamore/tcell/v2"

// ConfirmResult represents dialog outcome
type ConfirmResult uint8

const (
	ConfirmPending ConfirmResult = iota
	ConfirmYes
	ConfirmNo
	ConfirmCancel
)

// ConfirmState holds confirmation dialog state
type ConfirmState struct {
	Message  string
	FocusYes bool // true = Yes focused, false = No focused
	Result   ConfirmResult
}

// NewConfirmState creates dialog state with default selection
func NewConfirmState(message string, defaultYes bool) *ConfirmState {
	return &ConfirmState{
		Message:  message,
		FocusYes: defaultYes,
		Result:   ConfirmPending,
	}
}

// Toggle switches focus between Yes and No
func (c *ConfirmState) Toggle() {
	c.FocusYes = !c.FocusYes
}

// Confirm selects currently focused button
func (c *ConfirmState) Confirm() {
	if c.FocusYes {
		c.Result = ConfirmYes
	} else {
		c.Result = ConfirmNo
	}
}

// SelectYes directly selects Yes
func (c *ConfirmState) SelectYes() {
	c.Result = ConfirmYes
}

// SelectNo directly selects No
func (c *ConfirmState) SelectNo() {
	c.Result = ConfirmNo
}

// Cancel cancels the dialog
func (c *ConfirmState) Cancel() {
	c.Result = ConfirmCancel
}

// Accepted reports whether the dialog closed with Yes
func (c *ConfirmState) Accepted() bool {
	return c.Result == ConfirmYes
}

// HandleKey processes input, returns true if dialog should close
func (c *ConfirmState) HandleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyLeft, tcell.KeyRight, tcell.KeyTab, tcell.KeyBacktab:
		c.Toggle()
		return false
	case tcell.KeyEnter:
		c.Confirm()
		return true
	case tcell.KeyEscape:
		c.Cancel()
		return true
	case tcell.KeyRune:
		switch r {
		case 'y', 'Y':
			c.SelectYes()
			return true
		case 'n', 'N':
			c.SelectNo()
			return true
		case 'h':
			c.FocusYes = true
		case 'l':
			c.FocusYes = false
		}
	}
	return false
}

// HandleClick resolves a mouse press against the drawn buttons
// Returns true if the press landed on a button and closed the dialog
func (c *ConfirmState) HandleClick(x, y int, hits ConfirmHits) bool {
	switch {
	case hits.Yes.Contains(x, y):
		c.SelectYes()
		return true
	case hits.No.Contains(x, y):
		c.SelectNo()
		return true
	}
	return false
}

// ConfirmStyle defines dialog colors
type ConfirmStyle struct {
	Frame       tcell.Style
	Title       tcell.Style
	Message     tcell.Style
	Button      tcell.Style
	ButtonFocus tcell.Style
	Destructive tcell.Style
}

// ConfirmHits holds absolute button rectangles of a drawn dialog
type ConfirmHits struct {
	Yes, No Rect
}

// ConfirmDialog renders the dialog centered in region
// Yes is styled as destructive when focused
func (r Region) ConfirmDialog(state *ConfirmState, title string, style ConfirmStyle) ConfirmHits {
	w := RuneLen(state.Message) + 6
	if w < 32 {
		w = 32
	}
	if w > r.W-2 {
		w = r.W - 2
	}
	h := 7

	content := Center(r, w, h).Modal(ModalOpts{
		Title:      title,
		Border:     LineDouble,
		FrameStyle: style.Frame,
		TitleStyle: style.Title,
	})

	content.TextCenter(0, Truncate(state.Message, content.W), style.Message)

	yesLabel, noLabel := " Yes ", " No "
	gap := 4
	total := RuneLen(yesLabel) + gap + RuneLen(noLabel)
	x := (content.W - total) / 2
	if x < 0 {
		x = 0
	}
	buttonY := content.H - 1

	yesStyle, noStyle := style.Button, style.ButtonFocus
	if state.FocusYes {
		yesStyle, noStyle = style.Destructive, style.Button
	}

	content.Text(x, buttonY, yesLabel, yesStyle)
	noX := x + RuneLen(yesLabel) + gap
	content.Text(noX, buttonY, noLabel, noStyle)

	return ConfirmHits{
		Yes: content.Sub(x, buttonY, RuneLen(yesLabel), 1).Rect(),
		No:  content.Sub(noX, buttonY, RuneLen(noLabel), 1).Rect(),
	}
}
