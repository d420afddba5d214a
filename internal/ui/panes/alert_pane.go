package panes

import (
	"github.com/ja-he/lunadash/internal/input"
	"github.com/ja-he/lunadash/internal/styling"
	"github.com/ja-he/lunadash/internal/ui"
	"github.com/ja-he/lunadash/internal/util"
)

// AlertPane is a popup showing an error message until dismissed.
type AlertPane struct {
	ui.LeafPane

	message func() string
}

// Draw draws the pane.
func (p *AlertPane) Draw() {
	x, y, w, h := p.Dimensions()
	style := p.Stylesheet.Alert
	p.Renderer.DrawBox(x, y, w, h, style)
	p.Renderer.DrawText(x+1, y, w-2, 1, style.Bolded(), "Error")
	for i, line := range util.Wrap(p.message(), w-4) {
		if 2+i >= h-1 {
			break
		}
		p.Renderer.DrawText(x+2, y+2+i, w-4, 1, style, line)
	}
	p.Renderer.DrawText(x+1, y+h-1, w-2, 1, style.Italicized(), "<esc> to dismiss")
}

// NewAlertPane constructs and returns a new AlertPane.
func NewAlertPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	visible func() bool,
	inputProcessor input.ModalInputProcessor,
	message func() string,
) *AlertPane {
	return &AlertPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID:             ui.GeneratePaneID(),
				InputProcessor: inputProcessor,
				Visible:        visible,
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		message: message,
	}
}
