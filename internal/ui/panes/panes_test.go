package panes_test

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja-he/lunadash/internal/config"
	"github.com/ja-he/lunadash/internal/control"
	"github.com/ja-he/lunadash/internal/control/action"
	"github.com/ja-he/lunadash/internal/control/editor"
	"github.com/ja-he/lunadash/internal/input"
	"github.com/ja-he/lunadash/internal/input/processors"
	"github.com/ja-he/lunadash/internal/memlog"
	"github.com/ja-he/lunadash/internal/model"
	"github.com/ja-he/lunadash/internal/styling"
	"github.com/ja-he/lunadash/internal/ui"
	"github.com/ja-he/lunadash/internal/ui/panes"
)

type textCall struct {
	x, y int
	text string
}

type fakeScreen struct {
	texts          []textCall
	boxes          int
	cleared, shown int
	cursorX        int
	cursorY        int
	cursorVisible  bool
}

func (s *fakeScreen) DrawBox(x, y, w, h int, _ styling.DrawStyling) { s.boxes++ }
func (s *fakeScreen) DrawText(x, y, w, h int, _ styling.DrawStyling, text string) {
	s.texts = append(s.texts, textCall{x: x, y: y, text: text})
}
func (s *fakeScreen) Dimensions() (x, y, w, h int) { return 0, 0, 100, 40 }
func (s *fakeScreen) Clear()                       { s.cleared++ }
func (s *fakeScreen) Show()                        { s.shown++ }
func (s *fakeScreen) ShowCursor(x, y int) {
	s.cursorX, s.cursorY, s.cursorVisible = x, y, true
}
func (s *fakeScreen) HideCursor() { s.cursorVisible = false }

func (s *fakeScreen) drewText(substr string) bool {
	for _, c := range s.texts {
		if strings.Contains(c.text, substr) {
			return true
		}
	}
	return false
}

func stylesheet() styling.Stylesheet {
	return *styling.NewStylesheetFromConfig(config.Default(config.Dark).Stylesheet)
}

func area(x, y, w, h int) ui.Dims {
	return func() (int, int, int, int) { return x, y, w, h }
}

func sampleView() control.View {
	at := time.Date(2024, time.March, 25, 12, 0, 0, 0, time.UTC)
	snapshot := &control.Snapshot{
		Observation: astroObservation(at),
		PlaceName:   "Paris, France",
		Upcoming: []model.UpcomingPhase{
			{Name: model.ThirdQuarter, Date: at.Add(7 * 24 * time.Hour)},
			{Name: model.NewMoon, Date: at.Add(15 * 24 * time.Hour)},
		},
	}
	picture := &model.Picture{Title: "Lunar Halo", Date: "2024-03-25", Explanation: "A ring of light around the Moon.", MediaType: "image", URL: "https://example.org/halo.jpg"}
	return control.BuildView(snapshot, picture, control.Settings{TimeFormat: model.Format24Hour}, at)
}

func viewOf(v control.View, ok bool) panes.ViewSource {
	return func() (control.View, bool) { return v, ok }
}

func TestMoonPane(t *testing.T) {
	t.Run("loading", func(t *testing.T) {
		s := &fakeScreen{}
		p := panes.NewMoonPane(s, area(0, 0, 40, 30), stylesheet(), viewOf(control.View{}, false), nil)
		p.Draw()
		assert.True(t, s.drewText("Loading"))
	})

	t.Run("phase and details", func(t *testing.T) {
		s := &fakeScreen{}
		p := panes.NewMoonPane(s, area(0, 0, 40, 30), stylesheet(), viewOf(sampleView(), true), func() bool { return true })
		p.Draw()
		assert.True(t, s.drewText(string(model.FullMoon)))
		assert.True(t, s.drewText("Illumination: "))
		assert.True(t, s.drewText("Distance"))
		assert.True(t, s.drewText("Perigee"))
		// the disc is drawn cell by cell
		assert.Greater(t, s.boxes, 50)
	})
}

func TestRowsPane(t *testing.T) {
	s := &fakeScreen{}
	p := panes.NewRowsPane(s, area(0, 0, 40, 10), stylesheet(), viewOf(sampleView(), true), nil, "Position",
		func(v control.View) []control.Row { return v.Position })
	p.Draw()
	assert.True(t, s.drewText("Position"))
	assert.True(t, s.drewText("Altitude"))
	assert.True(t, s.drewText("Paris, France"))

	t.Run("values are right-aligned", func(t *testing.T) {
		for _, c := range s.texts {
			if c.text == "Paris, France" {
				assert.Equal(t, 2+36-len("Paris, France"), c.x)
				return
			}
		}
		t.Error("location value not drawn")
	})
}

func TestUpcomingPane(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		s := &fakeScreen{}
		p := panes.NewUpcomingPane(s, area(0, 0, 40, 12), stylesheet(), viewOf(sampleView(), true), nil)
		p.Draw()
		assert.True(t, s.drewText("Next: "+string(model.ThirdQuarter)))
		assert.True(t, s.drewText("≈ 7d 0h"))
		assert.True(t, s.drewText("Apr 1"))
		assert.True(t, s.drewText(string(model.NewMoon)))
	})

	t.Run("empty", func(t *testing.T) {
		s := &fakeScreen{}
		v := sampleView()
		v.Upcoming, v.NextPhase = nil, nil
		panes.NewUpcomingPane(s, area(0, 0, 40, 12), stylesheet(), viewOf(v, true), nil).Draw()
		assert.True(t, s.drewText("No phases found"))
	})
}

func TestStatusPane(t *testing.T) {
	s := &fakeScreen{}
	p := panes.NewStatusPane(s, area(0, 39, 100, 1), stylesheet(), viewOf(sampleView(), true), func() string { return "Paris, France" })
	p.Draw()
	assert.True(t, s.drewText("Paris, France"))
	assert.True(t, s.drewText("[24h]"))
	assert.True(t, s.drewText("Next picture in: "))
}

func TestPicturePane(t *testing.T) {
	t.Run("no picture", func(t *testing.T) {
		s := &fakeScreen{}
		v := sampleView()
		v.Picture = nil
		panes.NewPicturePane(s, area(0, 0, 60, 20), stylesheet(), viewOf(v, true), nil).Draw()
		assert.True(t, s.drewText("No picture available."))
	})

	t.Run("picture and scrolling", func(t *testing.T) {
		s := &fakeScreen{}
		p := panes.NewPicturePane(s, area(0, 0, 60, 20), stylesheet(), viewOf(sampleView(), true), nil)
		p.Draw()
		assert.True(t, s.drewText("Lunar Halo"))
		assert.True(t, s.drewText("March 25, 2024"))
		assert.True(t, s.drewText("Image: https://example.org/halo.jpg"))
		assert.True(t, s.drewText("A ring of light"))

		// a single-line explanation can't be scrolled past
		p.ScrollDown()
		p.ScrollDown()
		s.texts = nil
		p.Draw()
		assert.True(t, s.drewText("A ring of light"))
		p.ScrollUp()
		p.ResetScroll()
	})
}

func TestPromptPane(t *testing.T) {
	s := &fakeScreen{}
	e := editor.NewLineEditor("Location")
	for _, r := range "Oslo" {
		e.AddRune(r)
	}
	visible := true
	p := panes.NewPromptPane(s, area(10, 10, 40, 3), stylesheet(), func() bool { return visible }, nil, e, "<cr> search", s)
	p.Draw()
	assert.True(t, s.drewText("Location: "))
	assert.True(t, s.drewText("Oslo"))
	assert.True(t, s.cursorVisible)
	assert.Equal(t, 11+len("Location: ")+4, s.cursorX)
	assert.Equal(t, 11, s.cursorY)

	p.Undraw()
	assert.False(t, s.cursorVisible)
}

func TestAlertPane(t *testing.T) {
	s := &fakeScreen{}
	panes.NewAlertPane(s, area(0, 0, 40, 6), stylesheet(), nil, nil, func() string { return "no results for 'Atlantis'" }).Draw()
	assert.True(t, s.drewText("Error"))
	assert.True(t, s.drewText("no results for 'Atlantis'"))
}

func TestHelpPane(t *testing.T) {
	s := &fakeScreen{}
	p := panes.NewHelpPane(s, area(0, 0, 60, 20), stylesheet(), nil, nil)
	p.Content = input.Help{"q": "quit", "f": "Use 12H Time", "?": "toggle help"}
	p.Draw()

	var descriptions []string
	for _, c := range s.texts {
		if c.text == "quit" || c.text == "Use 12H Time" || c.text == "toggle help" {
			descriptions = append(descriptions, c.text)
		}
	}
	assert.Equal(t, []string{"Use 12H Time", "quit", "toggle help"}, descriptions)
}

func TestLogPane(t *testing.T) {
	s := &fakeScreen{}
	l := memlog.New(10)
	_, err := l.Write([]byte(`{"level":"warn","message":"could not locate","attempt":2}`))
	require.NoError(t, err)
	panes.NewLogPane(s, area(0, 0, 80, 20), stylesheet(), nil, nil, func() string { return "LOG" }, l).Draw()
	assert.True(t, s.drewText("LOG"))
	assert.True(t, s.drewText(" warn  "))
	assert.True(t, s.drewText("could not locate"))
	assert.True(t, s.drewText("attempt"))
	assert.True(t, s.drewText("2"))
}

func TestRootPane(t *testing.T) {
	s := &fakeScreen{}
	var quit, closed int
	rootTree, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
		"q": action.NewSimple(action.Static("quit"), func() { quit++ }),
	})
	require.NoError(t, err)
	helpTree, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
		"<esc>": action.NewSimple(action.Static("close help"), func() { closed++ }),
	})
	require.NoError(t, err)

	helpVisible := false
	moon := panes.NewMoonPane(s, area(0, 0, 40, 30), stylesheet(), viewOf(sampleView(), true), nil)
	dashboard := panes.NewGroup([]ui.Pane{moon}, nil, processors.NewModalInputProcessor(input.EmptyTree()))
	help := panes.NewHelpPane(s, area(10, 10, 40, 10), stylesheet(), func() bool { return helpVisible }, processors.NewModalInputProcessor(helpTree))
	root := panes.NewRootPane(s, s.Dimensions, dashboard, []ui.Pane{help}, nil, processors.NewModalInputProcessor(rootTree))

	t.Run("dashboard focussed without overlays", func(t *testing.T) {
		assert.Equal(t, dashboard.Identify(), root.Focusses())
		assert.True(t, dashboard.HasFocus())
		assert.False(t, root.ProcessInput(input.Key{Key: tcell.KeyESC}))
		assert.True(t, root.ProcessInput(input.Rune('q')))
		assert.Equal(t, 1, quit)
	})

	t.Run("visible overlay takes focus", func(t *testing.T) {
		helpVisible = true
		assert.Equal(t, help.Identify(), root.Focusses())
		assert.True(t, help.HasFocus())
		assert.False(t, dashboard.HasFocus())
		assert.True(t, root.ProcessInput(input.Key{Key: tcell.KeyESC}))
		assert.Equal(t, 1, closed)
		// unhandled by the overlay falls through to the root
		assert.True(t, root.ProcessInput(input.Rune('q')))
		assert.Equal(t, 2, quit)
		assert.Equal(t, input.Help{"q": "quit", "<esc>": "close help"}, root.GetHelp())
	})

	t.Run("draw cycle", func(t *testing.T) {
		ran := false
		root.DeferPreDraw(func() { ran = true })
		root.Draw()
		assert.True(t, ran)
		assert.Equal(t, 1, s.cleared)
		assert.Equal(t, 1, s.shown)
	})
}
