package ui

import (
	"github.com/ja-he/lunadash/internal/input"
	"github.com/ja-he/lunadash/internal/styling"
)

// BasePane carries identity, tree position and input handling shared by all
// panes. The ID must be set on construction, usually via GeneratePaneID.
type BasePane struct {
	ID             PaneID
	Parent         PaneQuerier
	InputProcessor input.ModalInputProcessor
	Visible        func() bool
}

func (p *BasePane) Identify() PaneID {
	if p.ID == NonePaneID {
		panic("pane has not been assigned an ID")
	}
	return p.ID
}

func (p *BasePane) SetParent(parent PaneQuerier) { p.Parent = parent }

// IsVisible is true unless a visibility condition is set and not met.
func (p *BasePane) IsVisible() bool { return p.Visible == nil || p.Visible() }

// HasFocus holds when the whole chain of parents up to the root focusses this
// pane.
func (p *BasePane) HasFocus() bool {
	return p.Parent != nil && p.Parent.HasFocus() && p.Parent.Focusses() == p.Identify()
}

func (p *BasePane) CapturesInput() bool {
	return p.InputProcessor != nil && p.InputProcessor.CapturesInput()
}

func (p *BasePane) ProcessInput(key input.Key) bool {
	return p.InputProcessor != nil && p.InputProcessor.ProcessInput(key)
}

func (p *BasePane) GetHelp() input.Help {
	if p.InputProcessor == nil {
		return input.Help{}
	}
	return p.InputProcessor.GetHelp()
}

// Overlays need a processor to sit on; a pane built without one is a wiring
// bug.
func (p *BasePane) overlayTarget() input.ModalInputProcessor {
	if p.InputProcessor == nil {
		panic("modal overlay on pane without input processor")
	}
	return p.InputProcessor
}

func (p *BasePane) ApplyModalOverlay(overlay input.SimpleInputProcessor) uint {
	return p.overlayTarget().ApplyModalOverlay(overlay)
}

func (p *BasePane) PopModalOverlay() error {
	return p.overlayTarget().PopModalOverlay()
}

func (p *BasePane) PopModalOverlays(index uint) {
	p.overlayTarget().PopModalOverlays(index)
}

// LeafPane is a pane without children that draws onto its own area.
// Embedders provide Draw.
type LeafPane struct {
	BasePane
	Renderer   ConstrainedRenderer
	Dims       Dims
	Stylesheet styling.Stylesheet
}

func (p *LeafPane) Dimensions() (x, y, w, h int) { return p.Dims() }

func (p *LeafPane) Undraw() {}

// Focusses is always NonePaneID for a leaf.
func (p *LeafPane) Focusses() PaneID { return NonePaneID }

func (p *LeafPane) FocusPrev() {}
func (p *LeafPane) FocusNext() {}
