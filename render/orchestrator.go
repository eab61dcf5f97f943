package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/bingo-caller/app"
	"github.com/lixenwraith/bingo-caller/tui"
)

type layerEntry struct {
	layer    Layer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline
type Orchestrator struct {
	screen   tcell.Screen
	layers   []layerEntry
	regCount int
}

// NewOrchestrator creates an orchestrator drawing to screen
func NewOrchestrator(screen tcell.Screen) *Orchestrator {
	return &Orchestrator{
		screen: screen,
		layers: make([]layerEntry, 0, 8),
	}
}

// NewDefaultOrchestrator registers the standard layer set
func NewDefaultOrchestrator(screen tcell.Screen) *Orchestrator {
	o := NewOrchestrator(screen)
	o.Register(&BackgroundLayer{}, PriorityBackground)
	o.Register(&BoardLayer{}, PriorityBoard)
	o.Register(&PanelLayer{}, PriorityPanel)
	o.Register(&HeaderLayer{}, PriorityHeader)
	o.Register(&SettingsLayer{}, PriorityOverlay)
	o.Register(&ConfirmLayer{}, PriorityOverlay)
	return o
}

// Register adds a layer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(l Layer, priority RenderPriority) {
	entry := layerEntry{
		layer:    l,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.layers)
	for i, e := range o.layers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.layers = append(o.layers, layerEntry{})
	copy(o.layers[pos+1:], o.layers[pos:])
	o.layers[pos] = entry
}

// RenderFrame executes the render pipeline: clear, derive, render all, show
// The collected hit regions are stored back into the app for mouse routing
func (o *Orchestrator) RenderFrame(a *app.App) {
	o.screen.Clear()
	o.screen.HideCursor()

	screen := tui.FullScreen(o.screen)
	settings := a.Settings()
	hits := app.Hits{}

	ctx := &Context{
		Screen:   o.screen,
		App:      a,
		View:     a.View(),
		Settings: settings,
		Layout:   ComputeLayout(screen, &settings),
		Hits:     &hits,
	}

	for _, entry := range o.layers {
		if vt, ok := entry.layer.(VisibilityToggle); ok && !vt.IsVisible(ctx) {
			continue
		}
		entry.layer.Render(ctx)
	}

	a.SetHits(hits)
	o.screen.Show()
}
