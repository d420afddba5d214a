package tui

import (
	"fmt"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/ja-he/lunadash/internal/styling"
)

// EventPollable is the event half of a tcell.Screen.
type EventPollable interface {
	PollEvent() tcell.Event
}

// ScreenSynchronizer can request a full redraw on the next Show.
type ScreenSynchronizer interface {
	NeedsSync()
}

// ScreenHandler renders onto a tcell.Screen. After a resize the next Show
// repaints the whole terminal instead of only the changed cells.
type ScreenHandler struct {
	screen tcell.Screen
	resync atomic.Bool
}

// NewTUIScreenHandler opens and initializes the terminal.
func NewTUIScreenHandler() (*ScreenHandler, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("could not create screen (%w)", err)
	}
	return NewScreenHandlerFor(screen)
}

// NewScreenHandlerFor initializes the given screen, e.g. a
// tcell.SimulationScreen.
func NewScreenHandlerFor(screen tcell.Screen) (*ScreenHandler, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("could not initialize screen (%w)", err)
	}
	screen.SetStyle(tcell.StyleDefault.Foreground(tcell.ColorReset).Background(tcell.ColorReset))
	screen.EnablePaste()
	screen.Clear()
	return &ScreenHandler{screen: screen}, nil
}

func (s *ScreenHandler) GetEventPollable() EventPollable { return s.screen }

// Fini restores the terminal.
func (s *ScreenHandler) Fini() { s.screen.Fini() }

func (s *ScreenHandler) NeedsSync() { s.resync.Store(true) }

func (s *ScreenHandler) Dimensions() (x, y, w, h int) {
	w, h = s.screen.Size()
	return 0, 0, w, h
}

func (s *ScreenHandler) ShowCursor(x, y int) { s.screen.ShowCursor(x, y) }
func (s *ScreenHandler) HideCursor()         { s.screen.HideCursor() }
func (s *ScreenHandler) Clear()              { s.screen.Clear() }

func (s *ScreenHandler) Show() {
	if s.resync.Swap(false) {
		s.screen.Sync()
		return
	}
	s.screen.Show()
}

// DrawText writes text into the area row by row, wrapping at its width.
// Wide runes such as the moon glyphs take two cells and move to the next row
// whole when only one cell is left.
func (s *ScreenHandler) DrawText(x, y, w, h int, style styling.DrawStyling, text string) {
	if w <= 0 || h <= 0 {
		return
	}
	st := style.AsTcell()
	col, row := 0, 0
	for _, r := range text {
		width := max(runewidth.RuneWidth(r), 1)
		if col+width > w {
			col, row = 0, row+1
		}
		if row >= h {
			return
		}
		s.screen.SetContent(x+col, y+row, r, nil, st)
		col += width
	}
}

// DrawBox fills the area with blanks in the style's background.
func (s *ScreenHandler) DrawBox(x, y, w, h int, style styling.DrawStyling) {
	st := style.AsTcell()
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.screen.SetContent(col, row, ' ', nil, st)
		}
	}
}
