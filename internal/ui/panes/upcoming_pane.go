package panes

import (
	"github.com/ja-he/lunadash/internal/styling"
	"github.com/ja-he/lunadash/internal/ui"
)

// UpcomingPane shows the next major phase with a countdown, followed by the
// list of upcoming major phases.
type UpcomingPane struct {
	dashboardPane
}

// Draw draws the pane.
func (p *UpcomingPane) Draw() {
	x, y, w, h := p.drawPanel("Upcoming Phases")
	v, ok := p.view()
	if !ok {
		p.drawLoading(x, y, w)
		return
	}

	label := p.style(p.Stylesheet.Label)
	normal := p.style(p.Stylesheet.Panel)
	emph := p.style(p.Stylesheet.Panel.DefaultEmphasized().Bolded())

	row := y
	if v.NextPhase != nil {
		drawRow(p.Renderer, x, row, w, "Next: "+string(v.NextPhase.Name), v.NextPhase.Countdown, emph, emph)
		row += 2
	}
	if len(v.Upcoming) == 0 {
		p.Renderer.DrawText(x, row, w, 1, label.Italicized(), "No phases found")
		return
	}
	for _, item := range v.Upcoming {
		if row >= y+h {
			return
		}
		drawRow(p.Renderer, x, row, w, item.Symbol+" "+string(item.Name), item.Date, normal, label)
		row++
	}
}

// NewUpcomingPane constructs and returns a new UpcomingPane.
func NewUpcomingPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	view ViewSource,
	blur func() bool,
) *UpcomingPane {
	return &UpcomingPane{
		dashboardPane: newDashboardPane(renderer, dimensions, stylesheet, view, blur),
	}
}
