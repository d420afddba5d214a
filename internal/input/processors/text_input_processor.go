package processors

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/lunadash/internal/control/action"
	"github.com/ja-he/lunadash/internal/input"
)

// TextInputProcessor feeds runes to a callback and maps a few single keys
// (e.g. <cr>, <esc>, <bs>) to actions.
// It always captures input, so nothing below it sees keys while it is active.
type TextInputProcessor struct {
	mappings     map[input.Key]action.Action
	runeCallback func(r rune)
}

// NewTextInputProcessor returns a new TextInputProcessor.
// Every keyspec must describe exactly one key.
func NewTextInputProcessor(
	mappings map[input.Keyspec]action.Action,
	runeCallback func(r rune),
) (*TextInputProcessor, error) {
	keyed := make(map[input.Key]action.Action, len(mappings))
	for keyspec, a := range mappings {
		keys, err := input.ConfigKeyspecToKeys(keyspec)
		if err != nil {
			return nil, fmt.Errorf("could not convert '%s' to keys (%w)", keyspec, err)
		}
		if len(keys) != 1 {
			return nil, fmt.Errorf("keyspec '%s' for text processor has not exactly one key (but %d)", keyspec, len(keys))
		}
		keyed[keys[0]] = a
	}
	return &TextInputProcessor{
		mappings:     keyed,
		runeCallback: runeCallback,
	}, nil
}

// ProcessInput hands runes to the callback and runs mapped actions for
// anything else.
func (p *TextInputProcessor) ProcessInput(key input.Key) bool {
	if key.Key == tcell.KeyRune {
		p.runeCallback(key.Ch)
		return true
	}
	a, ok := p.mappings[key]
	if !ok {
		return false
	}
	a.Do()
	return true
}

// CapturesInput always returns true.
func (p *TextInputProcessor) CapturesInput() bool { return true }

// GetHelp returns the non-rune mappings.
func (p *TextInputProcessor) GetHelp() input.Help {
	result := input.Help{}
	for k, a := range p.mappings {
		result[input.ToConfigIdentifierString(k)] = a.Explain()
	}
	return result
}
