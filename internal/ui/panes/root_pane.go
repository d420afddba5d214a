package panes

import (
	"maps"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/lunadash/internal/input"
	"github.com/ja-he/lunadash/internal/ui"
)

// RootPane owns the render cycle. It stacks layers bottom to top: the
// dashboard, then the overlays in the given order. The topmost visible layer
// has focus. The performance overlay is drawn last and never focussed.
type RootPane struct {
	ui.BasePane

	screen ui.RenderOrchestratorControl
	dims   ui.Dims

	layers []ui.Pane
	perf   ui.Pane

	drawing sync.Mutex

	queued   sync.Mutex
	preDraws []func()

	log zerolog.Logger
}

// NewRootPane wires the layers under a new root.
func NewRootPane(
	screen ui.RenderOrchestratorControl,
	dims ui.Dims,
	dashboard ui.Pane,
	overlays []ui.Pane,
	perf ui.Pane,
	processor input.ModalInputProcessor,
) *RootPane {
	p := &RootPane{
		BasePane: ui.BasePane{ID: ui.GeneratePaneID(), InputProcessor: processor},
		screen:   screen,
		dims:     dims,
		layers:   append([]ui.Pane{dashboard}, overlays...),
		perf:     perf,
		log:      log.With().Str("component", "root-pane").Logger(),
	}
	for _, layer := range p.layers {
		layer.SetParent(p)
	}
	p.log.Trace().Int("layers", len(p.layers)).Msg("root pane ready")
	return p
}

func (p *RootPane) Dimensions() (x, y, w, h int) { return p.dims() }

// DeferPreDraw queues f to run on the render goroutine right before the next
// draw.
func (p *RootPane) DeferPreDraw(f func()) {
	p.queued.Lock()
	p.preDraws = append(p.preDraws, f)
	p.queued.Unlock()
}

func (p *RootPane) runPreDraws() {
	p.queued.Lock()
	pending := p.preDraws
	p.preDraws = nil
	p.queued.Unlock()
	for _, f := range pending {
		f()
	}
}

// Draw runs one render cycle. The dashboard layer is always drawn.
func (p *RootPane) Draw() {
	p.runPreDraws()

	p.drawing.Lock()
	defer p.drawing.Unlock()

	p.screen.Clear()
	for i, layer := range p.layers {
		switch {
		case i == 0 || layer.IsVisible():
			layer.Draw()
		default:
			layer.Undraw()
		}
	}
	if p.perf != nil && p.perf.IsVisible() {
		p.perf.Draw()
	}
	p.screen.Show()
}

func (p *RootPane) Undraw() {
	p.drawing.Lock()
	defer p.drawing.Unlock()

	p.screen.Clear()
	for _, layer := range p.layers {
		layer.Undraw()
	}
	p.screen.Show()
}

func (p *RootPane) top() ui.Pane {
	for i := len(p.layers) - 1; i > 0; i-- {
		if p.layers[i].IsVisible() {
			return p.layers[i]
		}
	}
	return p.layers[0]
}

func (p *RootPane) CapturesInput() bool {
	return p.BasePane.CapturesInput() || p.top().CapturesInput()
}

// ProcessInput hands a key to the root's own bindings while they hold a
// partial sequence, otherwise to the top layer first.
func (p *RootPane) ProcessInput(key input.Key) bool {
	if p.BasePane.CapturesInput() {
		return p.BasePane.ProcessInput(key)
	}
	top := p.top()
	if top.CapturesInput() {
		return top.ProcessInput(key)
	}
	return top.ProcessInput(key) || p.BasePane.ProcessInput(key)
}

// GetHelp lists the root's bindings overridden by the top layer's.
func (p *RootPane) GetHelp() input.Help {
	help := input.Help{}
	maps.Copy(help, p.BasePane.GetHelp())
	maps.Copy(help, p.top().GetHelp())
	return help
}

func (p *RootPane) IsVisible() bool          { return true }
func (p *RootPane) HasFocus() bool           { return true }
func (p *RootPane) Focusses() ui.PaneID      { return p.top().Identify() }
func (p *RootPane) FocusPrev()               {}
func (p *RootPane) FocusNext()               {}
func (p *RootPane) SetParent(ui.PaneQuerier) { panic("root pane has no parent") }
