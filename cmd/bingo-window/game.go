package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/lixenwraith/bingo-caller/app"
	"github.com/lixenwraith/bingo-caller/config"
	"github.com/lixenwraith/bingo-caller/raster"
	"github.com/lixenwraith/bingo-caller/render"
)

// windowGame drives the shared app from ebiten's update loop
// Frames render into a simulation screen, then paint to pixels
type windowGame struct {
	app     *app.App
	screen  tcell.SimulationScreen
	orch    *render.Orchestrator
	painter *raster.Painter
	canvas  *raster.Canvas
	image   *ebiten.Image
	full    *windowFullscreen

	cols, rows int
	dirty      bool
	quit       bool
}

func newWindowGame(cfg config.Config, painter *raster.Painter) (*windowGame, error) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetSize(windowCols, windowRows)

	full := &windowFullscreen{}
	g := &windowGame{
		screen:  screen,
		orch:    render.NewDefaultOrchestrator(screen),
		painter: painter,
		canvas:  raster.NewCanvas(windowCols*painter.CellW, windowRows*painter.CellH),
		full:    full,
		cols:    windowCols,
		rows:    windowRows,
		dirty:   true,
	}
	g.app = app.New(cfg.Settings(), full)
	return g, nil
}

// Close releases the simulation screen
func (g *windowGame) Close() {
	g.screen.Fini()
}

// dispatch feeds one event to the app and marks the frame dirty
func (g *windowGame) dispatch(ev tcell.Event) {
	if !g.app.HandleEvent(ev) {
		g.quit = true
	}
	g.dirty = true
}

// Update implements ebiten.Game
func (g *windowGame) Update() error {
	if res, ok := g.full.poll(); ok {
		g.dispatch(tcell.NewEventInterrupt(res))
	}

	for _, ev := range pollKeys() {
		g.dispatch(ev)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := g.painter.CellAt(ebiten.CursorPosition())
		g.dispatch(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
		g.dispatch(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		btn, mod := tcell.WheelUp, tcell.ModNone
		if dy < 0 {
			btn = tcell.WheelDown
		}
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			mod = tcell.ModShift
		}
		x, y := g.painter.CellAt(ebiten.CursorPosition())
		g.dispatch(tcell.NewEventMouse(x, y, btn, mod))
		g.dispatch(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
	}

	if g.quit {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game
func (g *windowGame) Draw(dst *ebiten.Image) {
	if g.dirty {
		g.orch.RenderFrame(g.app)
		g.painter.Paint(g.canvas, g.screen)
		g.dirty = false
	}

	img := g.canvas.Image()
	b := img.Bounds()
	upload := g.canvas.TakeDirty()
	if g.image == nil || g.image.Bounds().Dx() != b.Dx() || g.image.Bounds().Dy() != b.Dy() {
		if g.image != nil {
			g.image.Deallocate()
		}
		g.image = ebiten.NewImage(b.Dx(), b.Dy())
		upload = true
	}
	if upload {
		g.image.WritePixels(img.Pix)
	}
	dst.DrawImage(g.image, nil)
}

// Layout implements ebiten.Game, resizing the cell grid to the window
func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	cols, rows := g.painter.GridSize(outsideWidth, outsideHeight)
	if cols != g.cols || rows != g.rows {
		g.cols, g.rows = cols, rows
		g.screen.SetSize(cols, rows)
		g.canvas.Resize(cols*g.painter.CellW, rows*g.painter.CellH)
		g.dispatch(tcell.NewEventResize(cols, rows))
	}
	return outsideWidth, outsideHeight
}
