package input_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja-he/lunadash/internal/control/action"
	"github.com/ja-he/lunadash/internal/input"
)

func counting(label string, n *int) action.Action {
	return action.NewSimple(action.Static(label), func() { *n++ })
}

func TestConfigKeyspecToKeys(t *testing.T) {

	t.Run("valid", func(t *testing.T) {
		cases := map[input.Keyspec][]input.Key{
			"":        {},
			"f":       {input.Rune('f')},
			"L":       {input.Rune('L')},
			"?":       {input.Rune('?')},
			"<c-a>":   {{Key: tcell.KeyCtrlA}},
			"<C-Z>":   {{Key: tcell.KeyCtrlZ}},
			"<space>": {input.Rune(' ')},
			"<cr>":    {{Key: tcell.KeyEnter}},
			"<esc>q":  {{Key: tcell.KeyESC}, input.Rune('q')},
			"g<bs>x":  {input.Rune('g'), {Key: tcell.KeyBackspace2}, input.Rune('x')},
		}
		for spec, expected := range cases {
			t.Run(string(spec), func(t *testing.T) {
				keys, err := input.ConfigKeyspecToKeys(spec)
				require.NoError(t, err)
				if diff := cmp.Diff(expected, keys); diff != "" {
					t.Errorf("keys mismatch (-want +got):\n%s", diff)
				}
			})
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, spec := range []input.Keyspec{"a>", "<cr", "<<cr>", "<c_a>", "<nope>"} {
			t.Run(string(spec), func(t *testing.T) {
				_, err := input.ConfigKeyspecToKeys(spec)
				assert.Error(t, err)
			})
		}
	})
}

func TestToConfigIdentifierString(t *testing.T) {
	assert.Equal(t, "x", input.ToConfigIdentifierString(input.Rune('x')))
	assert.Equal(t, "<space>", input.ToConfigIdentifierString(input.Rune(' ')))
	assert.Equal(t, "<cr>", input.ToConfigIdentifierString(input.Key{Key: tcell.KeyEnter}))
	assert.Equal(t, "<esc>", input.ToConfigIdentifierString(input.Key{Key: tcell.KeyESC}))
	assert.Equal(t, "<c-l>", input.ToConfigIdentifierString(input.Key{Key: tcell.KeyCtrlL}))
}

func TestKeyFromTcellEvent(t *testing.T) {
	assert.Equal(t, input.Rune('q'), input.KeyFromTcellEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.Equal(t, input.Key{Key: tcell.KeyEnter}, input.KeyFromTcellEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
}

func TestTree(t *testing.T) {

	t.Run("empty tree applies nothing", func(t *testing.T) {
		tree := input.EmptyTree()
		assert.False(t, tree.ProcessInput(input.Rune('q')))
		assert.False(t, tree.CapturesInput())
		assert.Empty(t, tree.GetHelp())
	})

	t.Run("single keys and sequences", func(t *testing.T) {
		var quit, top, bottom int
		tree, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
			"q":  counting("quit", &quit),
			"gg": counting("top", &top),
			"G":  counting("bottom", &bottom),
		})
		require.NoError(t, err)

		assert.True(t, tree.ProcessInput(input.Rune('q')))
		assert.Equal(t, 1, quit)

		assert.True(t, tree.ProcessInput(input.Rune('g')))
		assert.True(t, tree.CapturesInput())
		assert.True(t, tree.ProcessInput(input.Rune('g')))
		assert.False(t, tree.CapturesInput())
		assert.Equal(t, 1, top)

		// a broken sequence resets to the root
		assert.True(t, tree.ProcessInput(input.Rune('g')))
		assert.False(t, tree.ProcessInput(input.Rune('x')))
		assert.False(t, tree.CapturesInput())
		assert.True(t, tree.ProcessInput(input.Rune('G')))
		assert.Equal(t, 1, bottom)
		assert.Equal(t, 1, top)
	})

	t.Run("help lists full sequences", func(t *testing.T) {
		var n int
		tree, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
			"q":        counting("quit", &n),
			"<space>f": counting("toggle format", &n),
		})
		require.NoError(t, err)
		assert.Equal(t, input.Help{"q": "quit", "<space>f": "toggle format"}, tree.GetHelp())
	})

	t.Run("errors", func(t *testing.T) {
		var n int
		for name, spec := range map[string]map[input.Keyspec]action.Action{
			"bad keyspec": {"<x": counting("", &n)},
			"empty":       {"": counting("", &n)},
			"prefix":      {"g": counting("", &n), "gg": counting("", &n)},
		} {
			t.Run(name, func(t *testing.T) {
				_, err := input.ConstructInputTree(spec)
				assert.Error(t, err)
			})
		}
	})
}

func TestBindingsResolve(t *testing.T) {
	var n int
	registry := map[input.Actionspec]action.Action{
		"quit":               counting("quit", &n),
		"toggle-time-format": counting("toggle", &n),
	}

	t.Run("known", func(t *testing.T) {
		resolved, err := input.Bindings{"q": "quit", "f": "toggle-time-format", "<c-c>": "quit"}.Resolve(registry)
		require.NoError(t, err)
		assert.Len(t, resolved, 3)
		resolved["f"].Do()
		assert.Equal(t, 1, n)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := input.Bindings{"q": "quit", "x": "explode"}.Resolve(registry)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "explode")
	})
}
