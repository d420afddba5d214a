package tui_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja-he/lunadash/internal/styling"
	"github.com/ja-he/lunadash/internal/tui"
)

func contentAt(s tcell.SimulationScreen, x, y, n int) string {
	cells, w, _ := s.GetContents()
	var out []rune
	for i := 0; i < n; i++ {
		c := cells[y*w+x+i]
		if len(c.Runes) > 0 {
			out = append(out, c.Runes[0])
		}
	}
	return string(out)
}

func TestScreenHandler(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	h, err := tui.NewScreenHandlerFor(screen)
	require.NoError(t, err)
	defer h.Fini()
	screen.SetSize(20, 4)

	_, _, w, hh := h.Dimensions()
	assert.Equal(t, 20, w)
	assert.Equal(t, 4, hh)

	style := styling.StyleFromHex("#ffffff", "#000000")

	t.Run("text wraps at width", func(t *testing.T) {
		h.Clear()
		h.DrawText(1, 1, 4, 2, style, "Full Moon")
		h.Show()
		assert.Equal(t, "Full", contentAt(screen, 1, 1, 4))
		assert.Equal(t, " Moo", contentAt(screen, 1, 2, 4))
	})

	t.Run("sync after resize", func(t *testing.T) {
		h.NeedsSync()
		h.DrawBox(0, 0, 20, 1, style)
		h.Show()
		assert.Equal(t, "    ", contentAt(screen, 0, 0, 4))
	})
}
