package panes

import (
	"maps"
	"slices"

	"github.com/ja-he/lunadash/internal/input"
	"github.com/ja-he/lunadash/internal/ui"
)

// Group bundles child panes under one input processor without drawing
// anything itself. Focus moves between the focussable children only.
type Group struct {
	ui.BasePane

	children []ui.Pane
	cycle    []ui.Pane
	Focussed ui.Pane
}

// NewGroup constructs a group drawing children in order. The first of
// focussables starts out focussed.
func NewGroup(children, focussables []ui.Pane, processor input.ModalInputProcessor) *Group {
	g := &Group{
		BasePane: ui.BasePane{ID: ui.GeneratePaneID(), InputProcessor: processor},
		children: children,
		cycle:    focussables,
	}
	if len(focussables) > 0 {
		g.Focussed = focussables[0]
	}
	for _, child := range children {
		child.SetParent(g)
	}
	return g
}

func (g *Group) Draw() {
	for _, child := range g.children {
		if child.IsVisible() {
			child.Draw()
		}
	}
}

func (g *Group) Undraw() {
	for _, child := range g.children {
		child.Undraw()
	}
}

// Dimensions is the bounding box of all children.
func (g *Group) Dimensions() (x, y, w, h int) {
	if len(g.children) == 0 {
		return 0, 0, 0, 0
	}
	x0, y0, w0, h0 := g.children[0].Dimensions()
	x1, y1 := x0+w0, y0+h0
	for _, child := range g.children[1:] {
		cx, cy, cw, ch := child.Dimensions()
		x0, y0 = min(x0, cx), min(y0, cy)
		x1, y1 = max(x1, cx+cw), max(y1, cy+ch)
	}
	return x0, y0, x1 - x0, y1 - y0
}

func (g *Group) FocusNext() { g.shiftFocus(+1) }
func (g *Group) FocusPrev() { g.shiftFocus(-1) }

// shiftFocus skips invisible panes and stops at either end of the cycle.
func (g *Group) shiftFocus(step int) {
	i := slices.Index(g.cycle, g.Focussed)
	if i < 0 {
		return
	}
	for i += step; i >= 0 && i < len(g.cycle); i += step {
		if g.cycle[i].IsVisible() {
			g.Focussed = g.cycle[i]
			return
		}
	}
}

func (g *Group) Focusses() ui.PaneID {
	if g.Focussed == nil {
		return ui.NonePaneID
	}
	return g.Focussed.Identify()
}

func (g *Group) CapturesInput() bool {
	return g.BasePane.CapturesInput() || (g.Focussed != nil && g.Focussed.CapturesInput())
}

// ProcessInput lets a capturing processor go first, the group's own before
// the focussed child's. Otherwise the focussed child gets the first try.
func (g *Group) ProcessInput(key input.Key) bool {
	if g.BasePane.CapturesInput() {
		return g.BasePane.ProcessInput(key)
	}
	if g.Focussed == nil {
		return g.BasePane.ProcessInput(key)
	}
	if g.Focussed.CapturesInput() {
		return g.Focussed.ProcessInput(key)
	}
	return g.Focussed.ProcessInput(key) || g.BasePane.ProcessInput(key)
}

// GetHelp merges the group's bindings with the focussed child's, the child
// winning on conflicts.
func (g *Group) GetHelp() input.Help {
	help := input.Help{}
	maps.Copy(help, g.BasePane.GetHelp())
	if g.Focussed != nil {
		maps.Copy(help, g.Focussed.GetHelp())
	}
	return help
}
