package processors

import (
	"fmt"

	"github.com/ja-he/lunadash/internal/input"
)

// ModalInputProcessor delegates to the topmost of its overlays, or to its base
// processor when there are none.
// Implements input.ModalInputProcessor.
type ModalInputProcessor struct {
	base     input.SimpleInputProcessor
	overlays []input.SimpleInputProcessor
}

// NewModalInputProcessor returns a new ModalInputProcessor without overlays.
func NewModalInputProcessor(base input.SimpleInputProcessor) *ModalInputProcessor {
	return &ModalInputProcessor{base: base}
}

// CapturesInput delegates to the applicable processor.
func (p *ModalInputProcessor) CapturesInput() bool {
	return p.applicable().CapturesInput()
}

// ProcessInput delegates to the applicable processor.
func (p *ModalInputProcessor) ProcessInput(key input.Key) bool {
	return p.applicable().ProcessInput(key)
}

// GetHelp delegates to the applicable processor.
func (p *ModalInputProcessor) GetHelp() input.Help {
	return p.applicable().GetHelp()
}

// ApplyModalOverlay pushes the overlay and returns its index.
func (p *ModalInputProcessor) ApplyModalOverlay(overlay input.SimpleInputProcessor) uint {
	p.overlays = append(p.overlays, overlay)
	return uint(len(p.overlays) - 1)
}

// PopModalOverlay removes the topmost overlay.
func (p *ModalInputProcessor) PopModalOverlay() error {
	if len(p.overlays) == 0 {
		return fmt.Errorf("attempt to pop from empty overlay stack")
	}
	p.overlays = p.overlays[:len(p.overlays)-1]
	return nil
}

// PopModalOverlays removes all overlays down to and including index.
func (p *ModalInputProcessor) PopModalOverlays(index uint) {
	if int(index) < len(p.overlays) {
		p.overlays = p.overlays[:index]
	}
}

// HasOverlay returns whether any overlay is applied.
func (p *ModalInputProcessor) HasOverlay() bool {
	return len(p.overlays) > 0
}

func (p *ModalInputProcessor) applicable() input.SimpleInputProcessor {
	if len(p.overlays) > 0 {
		return p.overlays[len(p.overlays)-1]
	}
	return p.base
}
