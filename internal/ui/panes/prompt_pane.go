package panes

import (
	"unicode/utf8"

	"github.com/ja-he/lunadash/internal/control/editor"
	"github.com/ja-he/lunadash/internal/input"
	"github.com/ja-he/lunadash/internal/styling"
	"github.com/ja-he/lunadash/internal/ui"
)

// PromptPane is a single-line input popup, used to search for a location.
type PromptPane struct {
	ui.LeafPane

	view             editor.LineView
	hint             string
	cursorController ui.TextCursorController
}

// Draw draws the prompt and places the text cursor.
func (p *PromptPane) Draw() {
	x, y, w, h := p.Dimensions()
	style := p.Stylesheet.Prompt
	p.Renderer.DrawBox(x, y, w, h, style)

	name := p.view.GetName() + ": "
	nameLen := utf8.RuneCountInString(name)
	p.Renderer.DrawText(x+1, y+1, nameLen, 1, style.Bolded(), name)

	fieldX, fieldW := x+1+nameLen, w-2-nameLen
	content := []rune(p.view.GetContent())
	cursor := p.view.GetCursorPos()
	start := max(cursor-fieldW+1, 0)
	visible := content[start:min(len(content), start+fieldW)]
	p.Renderer.DrawBox(fieldX, y+1, fieldW, 1, style.DarkenedBG(10))
	p.Renderer.DrawText(fieldX, y+1, fieldW, 1, style.DarkenedBG(10), string(visible))

	if h > 2 {
		p.Renderer.DrawText(x+1, y+h-1, w-2, 1, style.DefaultDimmed().Italicized(), p.hint)
	}

	p.cursorController.ShowCursor(fieldX+cursor-start, y+1)
}

// Undraw hides the cursor.
func (p *PromptPane) Undraw() {
	p.cursorController.HideCursor()
}

// NewPromptPane constructs and returns a new PromptPane.
func NewPromptPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	visible func() bool,
	inputProcessor input.ModalInputProcessor,
	view editor.LineView,
	hint string,
	cursorController ui.TextCursorController,
) *PromptPane {
	return &PromptPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID:             ui.GeneratePaneID(),
				InputProcessor: inputProcessor,
				Visible:        visible,
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		view:             view,
		hint:             hint,
		cursorController: cursorController,
	}
}
