package app

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/bingo-caller/display"
	"github.com/lixenwraith/bingo-caller/tui"
)

type fakePresenter struct {
	requests []bool
}

func (f *fakePresenter) RequestFullscreen(on bool) {
	f.requests = append(f.requests, on)
}

func newTestApp() (*App, *fakePresenter) {
	p := &fakePresenter{}
	return New(display.Default(), p), p
}

func key(a *App, k tcell.Key) bool {
	return a.HandleEvent(tcell.NewEventKey(k, 0, tcell.ModNone))
}

func typeText(a *App, s string) {
	for _, r := range s {
		a.HandleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
}

func click(a *App, x, y int) {
	a.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	a.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
}

func history(a *App) []int {
	return a.Store().History()
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestQuickAdd_DigitFocusesAndSubmits(t *testing.T) {
	a, _ := newTestApp()

	typeText(a, "42")
	if !a.Entry().Focused() {
		t.Fatal("typing a digit should focus the field")
	}
	if got := a.Entry().Value(); got != "42" {
		t.Fatalf("field = %q, want 42", got)
	}

	key(a, tcell.KeyEnter)
	if !equalInts(history(a), []int{42}) {
		t.Errorf("history = %v, want [42]", history(a))
	}
	if !a.Entry().Empty() {
		t.Error("field should clear after submit")
	}
}

func TestQuickAdd_RejectionsClearSilently(t *testing.T) {
	a, _ := newTestApp()

	for _, text := range []string{"0", "76", "7.5", "99999999"} {
		typeText(a, text)
		key(a, tcell.KeyEnter)
		if !a.Entry().Empty() {
			t.Errorf("field not cleared after %q", text)
		}
	}
	if a.Store().Count() != 0 {
		t.Errorf("rejected entries changed history: %v", history(a))
	}

	typeText(a, "12")
	key(a, tcell.KeyEnter)
	typeText(a, "12")
	key(a, tcell.KeyEnter)
	if !equalInts(history(a), []int{12}) {
		t.Errorf("duplicate entry changed history: %v", history(a))
	}
}

func TestQuickAdd_EditingKeys(t *testing.T) {
	a, _ := newTestApp()

	typeText(a, "123")
	key(a, tcell.KeyLeft)
	key(a, tcell.KeyBackspace2)
	if got := a.Entry().Value(); got != "13" {
		t.Errorf("after backspace = %q, want 13", got)
	}

	key(a, tcell.KeyEscape)
	if a.Entry().Focused() || !a.Entry().Empty() {
		t.Error("escape should clear and blur the field")
	}
}

func TestUndoAndToggle(t *testing.T) {
	a, _ := newTestApp()

	for _, n := range []string{"5", "12"} {
		typeText(a, n)
		key(a, tcell.KeyEnter)
	}
	key(a, tcell.KeyEscape)

	// Undo key while the field is blurred
	typeText(a, "u")
	if !equalInts(history(a), []int{5}) {
		t.Fatalf("after undo = %v, want [5]", history(a))
	}

	a.Toggle(5)
	if a.Store().Count() != 0 || a.View().HasLast {
		t.Errorf("toggle should uncall 5, view = %+v", a.View())
	}
	if got := a.View().Counter(); got != "0 / 75" {
		t.Errorf("counter = %q", got)
	}
	if a.CanUndo() {
		t.Error("CanUndo should be false on empty history")
	}

	// Ctrl+Z with nothing to undo is a no-op
	key(a, tcell.KeyCtrlZ)
	if a.Store().Count() != 0 {
		t.Error("undo on empty history changed state")
	}
}

func TestReset_ConfirmKeys(t *testing.T) {
	a, _ := newTestApp()
	typeText(a, "7")
	key(a, tcell.KeyEnter)
	key(a, tcell.KeyEscape)

	key(a, tcell.KeyCtrlR)
	if a.Mode() != ModeConfirm || a.Confirm() == nil {
		t.Fatal("reset should open the confirm dialog")
	}
	if a.Confirm().FocusYes {
		t.Error("confirm dialog should default to No")
	}

	// Enter on the default answer declines
	key(a, tcell.KeyEnter)
	if a.Mode() != ModeBoard {
		t.Fatalf("mode = %v, want board", a.Mode())
	}
	if !equalInts(history(a), []int{7}) {
		t.Fatalf("declined reset changed history: %v", history(a))
	}

	typeText(a, "r")
	typeText(a, "y")
	if a.Store().Count() != 0 {
		t.Errorf("accepted reset left history %v", history(a))
	}
	if a.Mode() != ModeBoard {
		t.Errorf("mode = %v after accept", a.Mode())
	}
}

func TestReset_ConfirmClicks(t *testing.T) {
	a, _ := newTestApp()
	a.Store().Call(3)

	a.OpenReset()
	a.SetHits(Hits{Dialog: tui.ConfirmHits{
		Yes: tui.Rect{X: 10, Y: 10, W: 5, H: 1},
		No:  tui.Rect{X: 20, Y: 10, W: 4, H: 1},
	}})

	click(a, 0, 0)
	if a.Mode() != ModeConfirm {
		t.Fatal("click outside buttons should keep dialog open")
	}
	click(a, 21, 10)
	if a.Mode() != ModeBoard || a.Store().Count() != 1 {
		t.Fatalf("No click: mode=%v history=%v", a.Mode(), history(a))
	}

	a.OpenReset()
	click(a, 12, 10)
	if a.Store().Count() != 0 {
		t.Errorf("Yes click left history %v", history(a))
	}
}

func TestBoardClick_UsesHits(t *testing.T) {
	a, _ := newTestApp()
	var h Hits
	h.Cells[42] = tui.Rect{X: 30, Y: 8, W: 4, H: 2}
	h.Undo = tui.Rect{X: 0, Y: 20, W: 8, H: 1}
	a.SetHits(h)

	click(a, 31, 9)
	if !a.Store().IsCalled(42) {
		t.Fatal("click on cell should call 42")
	}
	if n, _ := a.Cursor(); n != 42 {
		t.Errorf("cursor = %d, want 42", n)
	}

	// A fresh press toggles once; held motion events do not repeat
	for range 3 {
		a.HandleEvent(tcell.NewEventMouse(31, 9, tcell.Button1, tcell.ModNone))
	}
	if a.Store().IsCalled(42) {
		t.Error("held button should flip 42 exactly once")
	}
	a.HandleEvent(tcell.NewEventMouse(31, 9, tcell.ButtonNone, tcell.ModNone))
	click(a, 31, 9)
	if !a.Store().IsCalled(42) {
		t.Fatal("second click should call 42 again")
	}

	click(a, 2, 20)
	if a.Store().Count() != 0 {
		t.Errorf("undo click left history %v", history(a))
	}
}

func TestCursorNavigation(t *testing.T) {
	a, _ := newTestApp()

	if _, shown := a.Cursor(); shown {
		t.Fatal("cursor hidden initially")
	}
	key(a, tcell.KeyRight)
	if n, shown := a.Cursor(); !shown || n != 1 {
		t.Fatalf("first arrow should only show cursor, got %d %v", n, shown)
	}

	key(a, tcell.KeyLeft)
	if n, _ := a.Cursor(); n != 1 {
		t.Errorf("left at row start moved to %d", n)
	}
	key(a, tcell.KeyDown)
	if n, _ := a.Cursor(); n != 16 {
		t.Errorf("down = %d, want 16", n)
	}
	for range 14 {
		key(a, tcell.KeyRight)
	}
	key(a, tcell.KeyRight)
	if n, _ := a.Cursor(); n != 30 {
		t.Errorf("right past row end = %d, want 30", n)
	}

	typeText(a, " ")
	if !a.Store().IsCalled(30) {
		t.Error("space should toggle cursor cell")
	}
}

func TestSettings_DoNotTouchHistory(t *testing.T) {
	a, _ := newTestApp()
	a.Store().Call(9)

	key(a, tcell.KeyF2)
	if a.Mode() != ModeSettings {
		t.Fatal("F2 should open settings")
	}

	// Number size focused first
	key(a, tcell.KeyRight)
	if got := a.Settings().NumberSize(); got != display.NumberSizeDefault+display.NumberSizeStep {
		t.Errorf("number size = %d", got)
	}

	key(a, tcell.KeyTab)
	if a.FocusedSlider() != display.ParamZoom {
		t.Fatalf("focus = %v, want zoom", a.FocusedSlider())
	}
	key(a, tcell.KeyEnd)
	if got := a.Settings().Zoom(); got != display.ZoomMax {
		t.Errorf("zoom = %d, want %d", got, display.ZoomMax)
	}
	key(a, tcell.KeyRight)
	if got := a.Settings().Zoom(); got != display.ZoomMax {
		t.Errorf("zoom past max = %d", got)
	}

	key(a, tcell.KeyEscape)
	if a.Mode() != ModeBoard {
		t.Error("escape should close settings")
	}
	if !equalInts(history(a), []int{9}) {
		t.Errorf("settings changed history: %v", history(a))
	}
}

func TestSettings_TrackClick(t *testing.T) {
	a, _ := newTestApp()
	a.ToggleSettings()

	var h Hits
	h.Tracks[display.ParamZoom] = tui.Rect{X: 10, Y: 5, W: 21, H: 1}
	h.Done = tui.Rect{X: 10, Y: 9, W: 6, H: 1}
	a.SetHits(h)

	click(a, 10, 5)
	if got := a.Settings().Zoom(); got != display.ZoomMin {
		t.Errorf("zoom = %d, want min after left-edge click", got)
	}
	if a.FocusedSlider() != display.ParamZoom {
		t.Error("track click should focus its slider")
	}

	click(a, 11, 9)
	if a.Mode() != ModeBoard {
		t.Error("Done should close settings")
	}
}

func TestFullscreen_FlipsOnResolution(t *testing.T) {
	a, p := newTestApp()

	key(a, tcell.KeyF11)
	if len(p.requests) != 1 || !p.requests[0] {
		t.Fatalf("requests = %v, want [true]", p.requests)
	}
	if a.Fullscreen() {
		t.Fatal("flag must not flip before resolution")
	}

	a.HandleEvent(tcell.NewEventInterrupt(FullscreenResult{On: true, Err: errors.New("denied")}))
	if a.Fullscreen() {
		t.Fatal("failed request flipped the flag")
	}

	a.HandleEvent(tcell.NewEventInterrupt(FullscreenResult{On: true}))
	if !a.Fullscreen() {
		t.Fatal("resolved request should set the flag")
	}

	key(a, tcell.KeyF11)
	if p.requests[len(p.requests)-1] {
		t.Error("second toggle should request leaving fullscreen")
	}
}

func TestPresentationMode_PostsResult(t *testing.T) {
	var posted []tcell.Event
	pm := NewPresentationMode(func(ev tcell.Event) error {
		posted = append(posted, ev)
		return nil
	})
	a := New(display.Default(), pm)

	a.ToggleFullscreen()
	if len(posted) != 1 {
		t.Fatalf("posted %d events, want 1", len(posted))
	}
	a.HandleEvent(posted[0])
	if !a.Fullscreen() {
		t.Error("posted result should resolve to fullscreen")
	}

	failing := New(display.Default(), NewPresentationMode(func(tcell.Event) error {
		return errors.New("queue full")
	}))
	failing.ToggleFullscreen()
	if failing.Fullscreen() {
		t.Error("dropped post must not flip the flag")
	}
}

func TestQuit(t *testing.T) {
	a, _ := newTestApp()
	if key(a, tcell.KeyCtrlQ) {
		t.Error("Ctrl+Q should quit")
	}
	a.OpenReset()
	if key(a, tcell.KeyCtrlC) {
		t.Error("Ctrl+C should quit from the dialog")
	}
	if !key(a, tcell.KeyF1) {
		t.Error("unbound key should not quit")
	}
}

func TestWheel_AdjustsSettings(t *testing.T) {
	a, _ := newTestApp()
	a.Store().Call(20)

	a.HandleEvent(tcell.NewEventMouse(5, 5, tcell.WheelUp, tcell.ModNone))
	if got := a.Settings().Zoom(); got != display.ZoomDefault+display.ZoomStep {
		t.Errorf("zoom = %d after wheel up", got)
	}
	a.HandleEvent(tcell.NewEventMouse(5, 5, tcell.WheelDown, tcell.ModShift))
	if got := a.Settings().NumberSize(); got != display.NumberSizeDefault-display.NumberSizeStep {
		t.Errorf("number size = %d after shift wheel down", got)
	}
	if got := a.Slider(display.ParamNumberSize).Value; got != a.Settings().NumberSize() {
		t.Errorf("slider %d out of sync with setting", got)
	}
	if !equalInts(history(a), []int{20}) {
		t.Errorf("wheel changed history: %v", history(a))
	}

	a.OpenReset()
	a.HandleEvent(tcell.NewEventMouse(5, 5, tcell.WheelUp, tcell.ModNone))
	if got := a.Settings().Zoom(); got != display.ZoomDefault+display.ZoomStep {
		t.Errorf("wheel under the dialog changed zoom to %d", got)
	}
}
