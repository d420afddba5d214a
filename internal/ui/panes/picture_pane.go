package panes

import (
	"sync"

	"github.com/ja-he/lunadash/internal/styling"
	"github.com/ja-he/lunadash/internal/ui"
	"github.com/ja-he/lunadash/internal/util"
)

// PicturePane is a popup showing the astronomy picture of the day: its title,
// date, credit, link and the (scrollable) explanation.
type PicturePane struct {
	dashboardPane

	scrollMtx sync.Mutex
	scroll    int
}

// ScrollDown scrolls the explanation by one line.
func (p *PicturePane) ScrollDown() {
	p.scrollMtx.Lock()
	p.scroll++
	p.scrollMtx.Unlock()
}

// ScrollUp scrolls the explanation back by one line.
func (p *PicturePane) ScrollUp() {
	p.scrollMtx.Lock()
	p.scroll = max(p.scroll-1, 0)
	p.scrollMtx.Unlock()
}

// ResetScroll scrolls back to the top.
func (p *PicturePane) ResetScroll() {
	p.scrollMtx.Lock()
	p.scroll = 0
	p.scrollMtx.Unlock()
}

// Draw draws the pane.
func (p *PicturePane) Draw() {
	x, y, w, h := p.Dimensions()
	popup := p.Stylesheet.Popup
	title := popup.DefaultEmphasized().Bolded()
	p.Renderer.DrawBox(x, y, w, h, popup)
	p.Renderer.DrawBox(x, y, w, 1, title)
	p.Renderer.DrawText(x+1, y, w-2, 1, title, "Astronomy Picture of the Day")

	cx, cy, cw, ch := x+2, y+2, w-4, h-3
	v, ok := p.view()
	if !ok || v.Picture == nil {
		p.Renderer.DrawText(cx, cy, cw, 1, popup.Italicized(), "No picture available.")
		return
	}
	pic := v.Picture

	type line struct {
		text  string
		style styling.DrawStyling
	}
	lines := []line{
		{pic.Title, popup.Bolded()},
		{pic.Date, popup.Italicized()},
	}
	if pic.Copyright != "" {
		lines = append(lines, line{pic.Copyright, popup.Italicized()})
	}
	for i, l := range lines {
		p.Renderer.DrawText(cx, cy+i, cw, 1, l.style, util.TruncateAt(l.text, cw))
	}
	row := cy + len(lines) + 1

	media := "Image: "
	if !pic.IsImage {
		media = "Video: "
	}
	p.Renderer.DrawText(cx, row, cw, 1, popup.DefaultDimmed(), util.TruncateAt(media+pic.ImageURL, cw))
	row += 2

	explanation := util.Wrap(pic.Explanation, cw)
	p.scrollMtx.Lock()
	p.scroll = min(p.scroll, max(len(explanation)-1, 0))
	offset := p.scroll
	p.scrollMtx.Unlock()
	for i := offset; i < len(explanation) && row < cy+ch; i++ {
		p.Renderer.DrawText(cx, row, cw, 1, popup, explanation[i])
		row++
	}
}

// NewPicturePane constructs and returns a new PicturePane.
func NewPicturePane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	view ViewSource,
	visible func() bool,
) *PicturePane {
	p := &PicturePane{
		dashboardPane: newDashboardPane(renderer, dimensions, stylesheet, view, nil),
	}
	p.Visible = visible
	return p
}
