package panes

import (
	"github.com/ja-he/lunadash/internal/control"
	"github.com/ja-he/lunadash/internal/model"
	"github.com/ja-he/lunadash/internal/styling"
	"github.com/ja-he/lunadash/internal/ui"
)

// RowsPane is a titled panel of labelled values, e.g. the position, timing or
// orbital details.
type RowsPane struct {
	dashboardPane

	title string
	rows  func(control.View) []control.Row
}

// Draw draws the pane.
func (p *RowsPane) Draw() {
	x, y, w, h := p.drawPanel(p.title)
	v, ok := p.view()
	if !ok {
		p.drawLoading(x, y, w)
		return
	}

	label := p.style(p.Stylesheet.Label)
	for i, row := range p.rows(v) {
		if i >= h {
			return
		}
		drawRow(p.Renderer, x, y+i, w, row.Label, row.Value, label, p.valueStyle(row))
	}
}

func (p *RowsPane) valueStyle(row control.Row) styling.DrawStyling {
	switch {
	case row.Label == "Visibility" && row.Value == model.AboveHorizon:
		return p.style(p.Stylesheet.AboveHorizon)
	case row.Label == "Visibility":
		return p.style(p.Stylesheet.BelowHorizon)
	case row.Value == model.NotAvailable:
		return p.style(p.Stylesheet.Label.Italicized())
	default:
		return p.style(p.Stylesheet.Panel.Bolded())
	}
}

// NewRowsPane constructs and returns a new RowsPane.
func NewRowsPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	view ViewSource,
	blur func() bool,
	title string,
	rows func(control.View) []control.Row,
) *RowsPane {
	return &RowsPane{
		dashboardPane: newDashboardPane(renderer, dimensions, stylesheet, view, blur),
		title:         title,
		rows:          rows,
	}
}
