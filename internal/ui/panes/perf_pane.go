package panes

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ja-he/lunadash/internal/styling"
	"github.com/ja-he/lunadash/internal/ui"
	"github.com/ja-he/lunadash/internal/util"
)

// PerfPane is an overlay showing render and input handling times, for
// debugging.
type PerfPane struct {
	ui.LeafPane

	renderTime          util.MetricsGetter
	eventProcessingTime util.MetricsGetter
}

// Draw draws this pane.
func (p *PerfPane) Draw() {
	x, y, w, _ := p.Dims()
	lastWidth := len(" render time: ....... xs ")
	avgWidth := w - lastWidth

	defaultStyle := styling.StyleFromHex("#000000", "#f0f0f0")

	p.Renderer.DrawBox(x, y, w, 2, defaultStyle)
	for i, m := range []struct {
		name   string
		metric util.MetricsGetter
	}{
		{"render", p.renderTime},
		{"input ", p.eventProcessingTime},
	} {
		last, avg := m.metric.GetLast(), m.metric.Avg()
		p.Renderer.DrawText(x, y+i, lastWidth, 1, deviationStyle(last, avg), fmt.Sprintf(" %s time: % 7d µs ", m.name, last))
		p.Renderer.DrawText(x+lastWidth, y+i, avgWidth, 1, defaultStyle, fmt.Sprintf(" %s avg ~ % 7d µs", m.name, avg))
	}
}

// deviationStyle is increasingly red the further last exceeds avg.
func deviationStyle(last, avg uint64) styling.DrawStyling {
	bad := colorful.Color{R: 1.0, G: 0.8, B: 0.8}
	hue, _, lightness := bad.Hsl()
	saturation := 0.0
	if avg > 0 && last > avg {
		saturation = math.Min(float64(last-avg)/float64(avg), 1.0)
	}
	return styling.StyleFromColors(colorful.Hsl(0, 0, 0), colorful.Hsl(hue, saturation, lightness))
}

// NewPerfPane constructs and returns a new PerfPane.
func NewPerfPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	condition func() bool,
	renderTime util.MetricsGetter,
	eventProcessingTime util.MetricsGetter,
) *PerfPane {
	return &PerfPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID:      ui.GeneratePaneID(),
				Visible: condition,
			},
			Renderer: renderer,
			Dims:     dimensions,
		},
		renderTime:          renderTime,
		eventProcessingTime: eventProcessingTime,
	}
}
