package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/bingo-caller/display"
	"github.com/lixenwraith/bingo-caller/game"
	"github.com/lixenwraith/bingo-caller/tui"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func overlaps(a, b tui.Rect) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

func TestComputeLayout_BoardFitsScreen(t *testing.T) {
	sizes := []struct{ w, h int }{{80, 24}, {120, 40}, {200, 60}}
	zooms := []int{display.ZoomMin, display.ZoomDefault, display.ZoomMax}

	for _, sz := range sizes {
		for _, zoom := range zooms {
			screen := newSimScreen(t, sz.w, sz.h)
			settings := display.New(display.NumberSizeDefault, zoom)
			l := ComputeLayout(tui.FullScreen(screen), &settings)
			board := l.Board.Rect()

			for n := game.MinNumber; n <= game.MaxNumber; n++ {
				r := l.Grid.CellRect(n)
				if r.Empty() {
					t.Fatalf("%dx%d zoom %d: cell %d empty", sz.w, sz.h, zoom, n)
				}
				if r.X < board.X || r.Y < board.Y || r.X+r.W > board.X+board.W || r.Y+r.H > board.Y+board.H {
					t.Errorf("%dx%d zoom %d: cell %d %+v outside board %+v", sz.w, sz.h, zoom, n, r, board)
				}
				if n > game.MinNumber && overlaps(r, l.Grid.CellRect(n-1)) {
					t.Errorf("%dx%d zoom %d: cells %d and %d overlap", sz.w, sz.h, zoom, n-1, n)
				}
			}
			if overlaps(l.Panel.Rect(), board) {
				t.Errorf("%dx%d: panel overlaps board", sz.w, sz.h)
			}
		}
	}
}

func TestComputeLayout_KeepsChrome(t *testing.T) {
	screen := newSimScreen(t, 120, 40)
	settings := display.Default()

	l := ComputeLayout(tui.FullScreen(screen), &settings)
	if l.Header.H != HeaderHeight || l.Controls.H != ControlsHeight {
		t.Errorf("header/controls = %d/%d, want %d/%d", l.Header.H, l.Controls.H, HeaderHeight, ControlsHeight)
	}
	if l.Number.H <= 0 {
		t.Errorf("number area height = %d", l.Number.H)
	}
}

func TestComputeBoard_ZoomScalesUniformly(t *testing.T) {
	screen := newSimScreen(t, 400, 200)
	region := tui.FullScreen(screen)

	metrics := func(zoom int) BoardMetrics {
		s := display.New(display.NumberSizeDefault, zoom)
		return ComputeBoard(region, &s)
	}
	small, mid, large := metrics(50), metrics(100), metrics(150)

	if !(small.RowH < mid.RowH && mid.RowH < large.RowH) {
		t.Errorf("row heights not increasing: %d %d %d", small.RowH, mid.RowH, large.RowH)
	}
	if !(small.CellW < mid.CellW && mid.CellW < large.CellW) {
		t.Errorf("cell widths not increasing: %d %d %d", small.CellW, mid.CellW, large.CellW)
	}
	if !(small.LetterW <= mid.LetterW && mid.LetterW < large.LetterW) {
		t.Errorf("letter widths not increasing: %d %d %d", small.LetterW, mid.LetterW, large.LetterW)
	}

	// Centered in the region
	if left, right := mid.X, region.W-(mid.X+mid.Width()); left-right > 1 || right-left > 1 {
		t.Errorf("grid not centered: margins %d/%d", left, right)
	}
}

func TestComputeBoard_NumberSizeIndependent(t *testing.T) {
	screen := newSimScreen(t, 300, 100)
	region := tui.FullScreen(screen)

	a := display.New(display.NumberSizeMin, 100)
	b := display.New(display.NumberSizeMax, 100)
	if ComputeBoard(region, &a) != ComputeBoard(region, &b) {
		t.Error("number size must not affect the board grid")
	}
}

func TestGlyphScale(t *testing.T) {
	tests := []struct {
		size float64
		want int
	}{
		{60, 1},
		{150, 2},
		{400, 5},
		{0, 1},
	}
	for _, tt := range tests {
		if got := GlyphScale(tt.size); got != tt.want {
			t.Errorf("GlyphScale(%v) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestFitGlyphScale(t *testing.T) {
	// "75" is 11 font pixels wide, 7 tall
	if got := FitGlyphScale("75", 3, 66, 21); got != 3 {
		t.Errorf("exact fit = %d, want 3", got)
	}
	if got := FitGlyphScale("75", 3, 44, 14); got != 2 {
		t.Errorf("shrink = %d, want 2", got)
	}
	if got := FitGlyphScale("75", 3, 10, 6); got != 0 {
		t.Errorf("no fit = %d, want 0", got)
	}
}

func TestPanelWidth_GrowsWithNumberSize(t *testing.T) {
	small := display.New(display.NumberSizeMin, 100)
	large := display.New(display.NumberSizeMax, 100)
	if PanelWidth(&small) != PanelMinWidth {
		t.Errorf("small panel = %d, want min %d", PanelWidth(&small), PanelMinWidth)
	}
	if PanelWidth(&large) <= PanelWidth(&small) {
		t.Error("panel should widen for larger numbers")
	}
}
