package panes

import (
	"github.com/ja-he/lunadash/internal/model"
	"github.com/ja-he/lunadash/internal/styling"
	"github.com/ja-he/lunadash/internal/ui"
)

// MoonPane shows the current phase: a rendered disc, the phase name,
// illumination, age and distance.
type MoonPane struct {
	dashboardPane
}

// moonTextRows is the number of rows below the disc.
const moonTextRows = 5

// Draw draws the pane.
func (p *MoonPane) Draw() {
	x, y, w, h := p.drawPanel("Moon")
	v, ok := p.view()
	if !ok {
		p.drawLoading(x, y, w)
		return
	}
	main := v.Main

	emph := p.style(p.Stylesheet.Panel.DefaultEmphasized().Bolded())
	p.Renderer.DrawText(x, y, w, 1, emph, main.Symbol+"  "+string(main.PhaseName))

	discH := h - 1 - moonTextRows - 1
	p.drawDisc(x, y+2, w, discH, main.Phase)

	label := p.style(p.Stylesheet.Label)
	normal := p.style(p.Stylesheet.Panel)
	row := y + h - moonTextRows
	p.Renderer.DrawText(x, row, w, 1, normal, main.Illumination)
	p.Renderer.DrawText(x, row+1, w, 1, normal, main.Age)
	drawRow(p.Renderer, x, row+2, w, "Distance", main.Distance, label, normal)
	p.drawDistanceBar(x, row+3, w, main.DistancePct)
	drawRow(p.Renderer, x, row+4, w, "Perigee", "Apogee", label, label)
}

// drawDisc draws the moon as a disc of lit and dark cells, centered in the
// given area.
// Terminal cells are about twice as high as wide, so the disc is drawn twice
// as wide as high.
func (p *MoonPane) drawDisc(x, y, w, h int, phase float64) {
	radius := min(h/2, w/4)
	if radius < 1 {
		return
	}
	lit := p.style(p.Stylesheet.MoonLit)
	dark := p.style(p.Stylesheet.MoonDark)

	left := x + (w-4*radius)/2
	top := y + (h-2*radius)/2
	for row := 0; row < 2*radius; row++ {
		v := (float64(row) + 0.5 - float64(radius)) / float64(radius)
		for col := 0; col < 4*radius; col++ {
			u := (float64(col) + 0.5 - float64(2*radius)) / float64(2*radius)
			if u*u+v*v > 1 {
				continue
			}
			var s styling.DrawStyling = dark
			if model.IsLit(phase, u, v) {
				s = lit
			}
			p.Renderer.DrawBox(left+col, top+row, 1, 1, s)
		}
	}
}

func (p *MoonPane) drawDistanceBar(x, y, w int, percentage float64) {
	filled := int(percentage / 100 * float64(w))
	p.Renderer.DrawBox(x, y, w, 1, p.style(p.Stylesheet.Panel.DarkenedBG(15)))
	p.Renderer.DrawBox(x, y, filled, 1, p.style(p.Stylesheet.DistanceBar))
}

// NewMoonPane constructs and returns a new MoonPane.
func NewMoonPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	view ViewSource,
	blur func() bool,
) *MoonPane {
	return &MoonPane{
		dashboardPane: newDashboardPane(renderer, dimensions, stylesheet, view, blur),
	}
}
