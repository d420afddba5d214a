package panes

import (
	"sort"
	"unicode/utf8"

	"github.com/ja-he/lunadash/internal/input"
	"github.com/ja-he/lunadash/internal/styling"
	"github.com/ja-he/lunadash/internal/ui"
)

// A HelpPane is a popup listing key mappings and what they do.
type HelpPane struct {
	ui.LeafPane

	Content input.Help
}

// Draw draws the help popup.
func (p *HelpPane) Draw() {
	x, y, w, h := p.Dimensions()
	style := p.Stylesheet.Help
	p.Renderer.DrawBox(x, y, w, h, style)

	keyWidth := 0
	for keys := range p.Content {
		keyWidth = max(keyWidth, utf8.RuneCountInString(keys))
	}
	const border, pad = 1, 2
	descriptionOffset := x + border + keyWidth + pad

	for i, m := range sortedByAction(p.Content) {
		row := y + border + i
		if row >= y+h-border {
			return
		}
		keysLen := utf8.RuneCountInString(m.mapping)
		p.Renderer.DrawText(x+border+keyWidth-keysLen, row, keysLen, 1, style.DefaultEmphasized().Bolded(), m.mapping)
		p.Renderer.DrawText(descriptionOffset, row, x+w-border-descriptionOffset, 1, style.Italicized(), m.action)
	}
}

type mappingAndAction struct {
	mapping string
	action  string
}

func sortedByAction(help input.Help) []mappingAndAction {
	content := make([]mappingAndAction, 0, len(help))
	for mapping, action := range help {
		content = append(content, mappingAndAction{mapping: mapping, action: action})
	}
	sort.Slice(content, func(i, j int) bool {
		if content[i].action != content[j].action {
			return content[i].action < content[j].action
		}
		return content[i].mapping < content[j].mapping
	})
	return content
}

// NewHelpPane constructs and returns a new HelpPane.
func NewHelpPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	condition func() bool,
	inputProcessor input.ModalInputProcessor,
) *HelpPane {
	return &HelpPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID:             ui.GeneratePaneID(),
				Visible:        condition,
				InputProcessor: inputProcessor,
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
	}
}
