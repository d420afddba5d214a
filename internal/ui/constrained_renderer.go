package ui

import "github.com/ja-he/lunadash/internal/styling"

// CR is a constrained renderer.
// Requests reaching outside of its constraint are cut down to fit.
type CR struct {
	renderer   Renderer
	constraint func() (x, y, w, h int)
}

// NewConstrainedRenderer returns a renderer limited to the given area.
func NewConstrainedRenderer(renderer Renderer, constraint func() (x, y, w, h int)) *CR {
	return &CR{renderer: renderer, constraint: constraint}
}

// Dimensions returns the current constraint.
func (r *CR) Dimensions() (x, y, w, h int) {
	return r.constraint()
}

// DrawText draws text within the constraint.
func (r *CR) DrawText(x, y, w, h int, style styling.DrawStyling, text string) {
	cx, cy, cw, ch := r.constrain(x, y, w, h)
	if cw <= 0 || ch <= 0 {
		return
	}
	r.renderer.DrawText(cx, cy, cw, ch, style, text)
}

// DrawBox draws a box within the constraint.
func (r *CR) DrawBox(x, y, w, h int, style styling.DrawStyling) {
	cx, cy, cw, ch := r.constrain(x, y, w, h)
	if cw <= 0 || ch <= 0 {
		return
	}
	r.renderer.DrawBox(cx, cy, cw, ch, style)
}

func (r *CR) constrain(x, y, w, h int) (int, int, int, int) {
	bx, by, bw, bh := r.constraint()

	if x < bx {
		w -= bx - x
		x = bx
	}
	if y < by {
		h -= by - y
		y = by
	}
	w = min(w, bx+bw-x)
	h = min(h, by+bh-y)

	return x, y, w, h
}
