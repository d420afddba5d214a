package processors_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja-he/lunadash/internal/control/action"
	"github.com/ja-he/lunadash/internal/input"
	"github.com/ja-he/lunadash/internal/input/processors"
)

type fakeProcessor struct {
	captures bool
	applies  map[input.Key]bool
	seen     []input.Key
	help     input.Help
}

func (p *fakeProcessor) CapturesInput() bool { return p.captures }
func (p *fakeProcessor) ProcessInput(k input.Key) bool {
	p.seen = append(p.seen, k)
	return p.applies[k]
}
func (p *fakeProcessor) GetHelp() input.Help { return p.help }

func TestModalInputProcessor(t *testing.T) {
	x := input.Rune('x')

	t.Run("base without overlays", func(t *testing.T) {
		base := &fakeProcessor{applies: map[input.Key]bool{x: true}, help: input.Help{"x": "base"}}
		m := processors.NewModalInputProcessor(base)
		assert.False(t, m.HasOverlay())
		assert.False(t, m.CapturesInput())
		assert.True(t, m.ProcessInput(x))
		assert.False(t, m.ProcessInput(input.Rune('y')))
		assert.Equal(t, input.Help{"x": "base"}, m.GetHelp())
		base.captures = true
		assert.True(t, m.CapturesInput())
	})

	t.Run("topmost overlay receives input", func(t *testing.T) {
		base := &fakeProcessor{applies: map[input.Key]bool{x: true}}
		first := &fakeProcessor{captures: true}
		second := &fakeProcessor{applies: map[input.Key]bool{x: true}, help: input.Help{"<esc>": "close"}}
		m := processors.NewModalInputProcessor(base)

		assert.Equal(t, uint(0), m.ApplyModalOverlay(first))
		assert.Equal(t, uint(1), m.ApplyModalOverlay(second))
		assert.True(t, m.HasOverlay())
		assert.False(t, m.CapturesInput())
		assert.True(t, m.ProcessInput(x))
		assert.Equal(t, input.Help{"<esc>": "close"}, m.GetHelp())
		assert.Empty(t, base.seen)
		assert.Empty(t, first.seen)

		require.NoError(t, m.PopModalOverlay())
		assert.True(t, m.CapturesInput())
		assert.False(t, m.ProcessInput(x))
		assert.Len(t, first.seen, 1)
	})

	t.Run("popping", func(t *testing.T) {
		m := processors.NewModalInputProcessor(&fakeProcessor{})
		assert.Error(t, m.PopModalOverlay())

		m.ApplyModalOverlay(&fakeProcessor{})
		idx := m.ApplyModalOverlay(&fakeProcessor{})
		m.ApplyModalOverlay(&fakeProcessor{})
		m.PopModalOverlays(idx)
		require.True(t, m.HasOverlay())
		require.NoError(t, m.PopModalOverlay())
		assert.False(t, m.HasOverlay())

		// out of range is a no-op
		m.PopModalOverlays(5)
		assert.False(t, m.HasOverlay())
	})
}

func TestTextInputProcessor(t *testing.T) {
	var typed []rune
	submitted, cancelled := 0, 0
	p, err := processors.NewTextInputProcessor(
		map[input.Keyspec]action.Action{
			"<cr>":  action.NewSimple(action.Static("search"), func() { submitted++ }),
			"<esc>": action.NewSimple(action.Static("cancel"), func() { cancelled++ }),
		},
		func(r rune) { typed = append(typed, r) },
	)
	require.NoError(t, err)

	t.Run("runes go to callback", func(t *testing.T) {
		for _, r := range "Oslo" {
			assert.True(t, p.ProcessInput(input.Rune(r)))
		}
		assert.Equal(t, "Oslo", string(typed))
		assert.Zero(t, submitted)
	})

	t.Run("mapped specials run actions", func(t *testing.T) {
		assert.True(t, p.ProcessInput(input.Key{Key: tcell.KeyEnter}))
		assert.True(t, p.ProcessInput(input.Key{Key: tcell.KeyESC}))
		assert.Equal(t, 1, submitted)
		assert.Equal(t, 1, cancelled)
	})

	t.Run("unmapped specials do not apply", func(t *testing.T) {
		assert.False(t, p.ProcessInput(input.Key{Key: tcell.KeyF5}))
	})

	t.Run("always captures", func(t *testing.T) {
		assert.True(t, p.CapturesInput())
	})

	t.Run("help", func(t *testing.T) {
		assert.Equal(t, input.Help{"<cr>": "search", "<esc>": "cancel"}, p.GetHelp())
	})

	t.Run("multi-key specs are rejected", func(t *testing.T) {
		_, err := processors.NewTextInputProcessor(
			map[input.Keyspec]action.Action{"ab": action.NewSimple(action.Static(""), func() {})},
			func(rune) {},
		)
		assert.Error(t, err)
	})
}
