package panes

import (
	"unicode/utf8"

	"github.com/ja-he/lunadash/internal/control"
	"github.com/ja-he/lunadash/internal/styling"
	"github.com/ja-he/lunadash/internal/ui"
	"github.com/ja-he/lunadash/internal/util"
)

// ViewSource supplies the current dashboard view; ok is false until the
// first snapshot has been computed.
type ViewSource func() (v control.View, ok bool)

const blurPercentage = 60

// dashboardPane is the common base of the dashboard's panels.
type dashboardPane struct {
	ui.LeafPane

	view ViewSource
	blur func() bool
}

func newDashboardPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	view ViewSource,
	blur func() bool,
) dashboardPane {
	return dashboardPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID: ui.GeneratePaneID(),
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		view: view,
		blur: blur,
	}
}

// style returns s, blurred towards the backdrop while blur is enabled.
func (p *dashboardPane) style(s styling.DrawStyling) styling.DrawStyling {
	if p.blur != nil && p.blur() {
		return s.Blurred(p.Stylesheet.Normal, blurPercentage)
	}
	return s
}

// drawPanel draws the panel background and title bar and returns the content
// area.
func (p *dashboardPane) drawPanel(title string) (x, y, w, h int) {
	x, y, w, h = p.Dimensions()
	panel := p.style(p.Stylesheet.Panel)
	titleStyle := p.style(p.Stylesheet.PanelTitle)
	p.Renderer.DrawBox(x, y, w, h, panel)
	p.Renderer.DrawBox(x, y, w, 1, titleStyle)
	p.Renderer.DrawText(x+1, y, w-2, 1, titleStyle, util.TruncateAt(title, w-2))
	return x + 2, y + 2, w - 4, h - 3
}

// drawLoading draws a placeholder while no view is available.
func (p *dashboardPane) drawLoading(x, y, w int) {
	p.Renderer.DrawText(x, y, w, 1, p.style(p.Stylesheet.Label.Italicized()), "Loading...")
}

// drawRow draws a label left-aligned and its value right-aligned in a single
// line.
func drawRow(r ui.Renderer, x, y, w int, label, value string, labelStyle, valueStyle styling.DrawStyling) {
	valueLen := utf8.RuneCountInString(value)
	labelW := max(w-valueLen-1, 0)
	r.DrawText(x, y, labelW, 1, labelStyle, util.TruncateAt(label, labelW))
	if valueLen > w {
		value = util.TruncateAt(value, w)
		valueLen = w
	}
	r.DrawText(x+w-valueLen, y, valueLen, 1, valueStyle, value)
}
