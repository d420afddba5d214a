package input

// SimpleInputProcessor consumes keys. Trees, text prompts and panes all
// implement it.
type SimpleInputProcessor interface {
	// ProcessInput reports whether the key was consumed.
	ProcessInput(key Key) bool
	// CapturesInput is true while the processor must see every key first,
	// e.g. mid-sequence or while a prompt is open.
	CapturesInput() bool
	GetHelp() Help
}

// ModalInputProcessor stacks overlays on top of a base processor. The
// topmost overlay sees keys first; popups push one while open.
type ModalInputProcessor interface {
	SimpleInputProcessor

	ApplyModalOverlay(overlay SimpleInputProcessor) (index uint)
	PopModalOverlay() error
	// PopModalOverlays drops the overlay at index and everything above it.
	PopModalOverlays(index uint)
}
