package ui

import (
	"github.com/ja-he/lunadash/internal/input"
	"github.com/ja-he/lunadash/internal/styling"
)

// Pane is a UI pane.
//
// Panes form a tree: every pane but the root has a parent, which it can ask
// whether it has focus and which of its children it focusses.
// Input is processed by the focussed path through this tree.
type Pane interface {
	Draw()
	Undraw()
	IsVisible() bool
	Dimensions() (x, y, w, h int)

	input.ModalInputProcessor

	PaneQuerier

	SetParent(PaneQuerier)

	FocusNext()
	FocusPrev()
}

// PaneQuerier are the querying member functions of a pane, e.g. for a child
// to consult its parent.
type PaneQuerier interface {
	HasFocus() bool
	Focusses() PaneID
	IsVisible() bool
	Identify() PaneID
}

// PaneID uniquely identifies a pane. No two panes must ever share a PaneID.
type PaneID uint

// NonePaneID represents "no pane" or "invalid pane".
const NonePaneID PaneID = 0

var id = NonePaneID

// GeneratePaneID generates a new unique pane ID.
var GeneratePaneID = func() PaneID {
	id++
	return id
}

// Renderer draws boxes and text.
type Renderer interface {
	// DrawBox fills the given area with the style's background.
	DrawBox(x, y, w, h int, style styling.DrawStyling)
	// DrawText draws text into the given area, wrapping at its width.
	DrawText(x, y, w, h int, style styling.DrawStyling, text string)
}

// ConstrainedRenderer is a Renderer that does not draw outside its
// Dimensions.
type ConstrainedRenderer interface {
	Renderer
	Dimensions() (x, y, w, h int)
}

// RenderOrchestratorControl is what the root pane needs of the screen to run a
// render cycle.
type RenderOrchestratorControl interface {
	Clear()
	Show()
}

// TextCursorController shows and hides a terminal text cursor.
type TextCursorController interface {
	HideCursor()
	ShowCursor(x, y int)
}
