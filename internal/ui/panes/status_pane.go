package panes

import (
	"fmt"
	"unicode/utf8"

	"github.com/ja-he/lunadash/internal/styling"
	"github.com/ja-he/lunadash/internal/ui"
)

// StatusPane is the status bar: location on the left, the picture countdown
// in the middle and the current settings on the right.
type StatusPane struct {
	dashboardPane

	location func() string
}

// Draw draws the pane.
func (p *StatusPane) Draw() {
	x, y, w, h := p.Dimensions()
	bg := p.Stylesheet.Status
	emph := bg.DefaultEmphasized().Bolded()
	p.Renderer.DrawBox(x, y, w, h, bg)

	left := " ☾ " + p.location()
	p.Renderer.DrawText(x, y, w, 1, emph, left)

	v, ok := p.view()
	if !ok {
		return
	}

	settings := fmt.Sprintf("[%s]", v.TimeFormat)
	if v.Blur {
		settings += " [blur]"
	}
	settings += "  ? help "
	settingsLen := utf8.RuneCountInString(settings)
	p.Renderer.DrawText(x+w-settingsLen, y, settingsLen, 1, bg.Italicized(), settings)

	countdownLen := utf8.RuneCountInString(v.PictureCountdown)
	cx := x + (w-countdownLen)/2
	if cx > x+utf8.RuneCountInString(left) && cx+countdownLen < x+w-settingsLen {
		p.Renderer.DrawText(cx, y, countdownLen, 1, bg, v.PictureCountdown)
	}
}

// NewStatusPane constructs and returns a new StatusPane.
func NewStatusPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	view ViewSource,
	location func() string,
) *StatusPane {
	return &StatusPane{
		dashboardPane: newDashboardPane(renderer, dimensions, stylesheet, view, nil),
		location:      location,
	}
}
