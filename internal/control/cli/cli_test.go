package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja-he/lunadash/internal/astro"
	"github.com/ja-he/lunadash/internal/config"
	"github.com/ja-he/lunadash/internal/control"
	"github.com/ja-he/lunadash/internal/geo"
	"github.com/ja-he/lunadash/internal/input"
	"github.com/ja-he/lunadash/internal/model"
	"github.com/ja-he/lunadash/internal/storage"
	"github.com/ja-he/lunadash/internal/styling"
	"github.com/ja-he/lunadash/internal/tui"
)

var now = time.Date(2024, 3, 9, 20, 30, 0, 0, time.UTC)

var oslo = model.Coordinates{Latitude: 59.91, Longitude: 10.75}

type fixedSource struct{}

func (fixedSource) MoonIllumination(t time.Time) model.Illumination {
	p := float64(t.Sub(now)%(28*24*time.Hour)) / float64(28*24*time.Hour)
	if p < 0 {
		p += 1
	}
	return model.Illumination{Fraction: 0.5, Phase: p}
}

func (fixedSource) MoonPosition(time.Time, model.Coordinates) model.Position {
	return model.Position{Altitude: 0.5, Azimuth: -2, Distance: 384400}
}

func (fixedSource) MoonTimes(time.Time, model.Coordinates) model.MoonTimes { return model.MoonTimes{} }

func (fixedSource) SunTimes(time.Time, model.Coordinates) model.SunTimes {
	return model.SunTimes{SolarNoon: time.Date(2024, 3, 9, 12, 5, 0, 0, time.UTC)}
}

type fakeGeocoder struct{}

func (fakeGeocoder) Search(_ context.Context, query string) (model.Coordinates, error) {
	if query == "Oslo" {
		return oslo, nil
	}
	return model.Coordinates{}, geo.ErrNoResults
}

func (fakeGeocoder) PlaceName(_ context.Context, at model.Coordinates) string {
	if at == oslo {
		return "Oslo, NO"
	}
	return model.FallbackPlaceName
}

func newTestDashboard(t *testing.T) *control.Dashboard {
	t.Helper()
	calc, err := astro.NewCalculator(fixedSource{}, astro.DefaultOptions())
	require.NoError(t, err)
	d := control.NewDashboard(control.Dependencies{
		Geocoder:   fakeGeocoder{},
		Calculator: calc,
		Clock:      func() time.Time { return now },
	}, control.NewState(model.Format24Hour))
	_, err = d.Update(context.Background(), model.FallbackCoordinates)
	require.NoError(t, err)
	return d
}

func newTestController(t *testing.T, bindings input.Bindings) (*Controller, error) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	h, err := tui.NewScreenHandlerFor(screen)
	require.NoError(t, err)
	t.Cleanup(h.Fini)
	screen.SetSize(120, 40)

	stylesheet := styling.NewStylesheetFromConfig(config.Default(config.Dark).Stylesheet)
	return NewController(newTestDashboard(t), bindings, *stylesheet, h)
}

func press(c *Controller, keys ...input.Key) {
	for _, k := range keys {
		c.rootPane.ProcessInput(k)
	}
}

func typeText(c *Controller, s string) {
	for _, r := range s {
		press(c, input.Rune(r))
	}
}

var (
	enter  = input.Key{Key: tcell.KeyEnter}
	escape = input.Key{Key: tcell.KeyESC}
)

func TestController(t *testing.T) {
	t.Run("toggles", func(t *testing.T) {
		c, err := newTestController(t, config.DefaultKeys())
		require.NoError(t, err)

		press(c, input.Rune('f'))
		assert.Equal(t, model.Format12Hour, c.dashboard.Settings().TimeFormat)
		press(c, input.Rune('b'))
		assert.True(t, c.dashboard.Settings().Blur)
		press(c, input.Rune('P'))
		assert.True(t, c.showPerf.Load())

		assert.NotPanics(t, c.rootPane.Draw)
	})

	t.Run("picture popup", func(t *testing.T) {
		c, err := newTestController(t, config.DefaultKeys())
		require.NoError(t, err)

		press(c, input.Rune('i'))
		require.True(t, c.showPicture.Load())
		assert.NotPanics(t, c.rootPane.Draw)

		// the popup has focus, 'f' is still handled by the root
		press(c, input.Rune('j'), input.Rune('f'))
		assert.Equal(t, model.Format12Hour, c.dashboard.Settings().TimeFormat)

		press(c, escape)
		assert.False(t, c.showPicture.Load())
	})

	t.Run("location prompt", func(t *testing.T) {
		c, err := newTestController(t, config.DefaultKeys())
		require.NoError(t, err)

		press(c, input.Rune('L'))
		require.True(t, c.showPrompt.Load())

		// runes go to the prompt, not to the root bindings
		typeText(c, "Oslq")
		press(c, input.Key{Key: tcell.KeyBackspace2})
		typeText(c, "o")
		assert.Equal(t, "Oslo", c.locationEditor.GetContent())
		assert.Equal(t, model.Format24Hour, c.dashboard.Settings().TimeFormat)
		assert.NotPanics(t, c.rootPane.Draw)

		press(c, enter)
		assert.False(t, c.showPrompt.Load())
		require.Eventually(t, func() bool {
			_, name := c.dashboard.State.Location()
			return name == "Oslo, NO"
		}, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("failed lookup shows an alert and keeps the location", func(t *testing.T) {
		c, err := newTestController(t, config.DefaultKeys())
		require.NoError(t, err)

		press(c, input.Rune('L'))
		typeText(c, "Atlantis")
		press(c, enter)
		require.Eventually(t, func() bool { return c.getAlert() != "" }, 2*time.Second, 10*time.Millisecond)

		_, name := c.dashboard.State.Location()
		assert.Equal(t, model.FallbackPlaceName, name)
		assert.NotPanics(t, c.rootPane.Draw)

		press(c, escape)
		assert.Empty(t, c.getAlert())
	})

	t.Run("cancelled prompt", func(t *testing.T) {
		c, err := newTestController(t, config.DefaultKeys())
		require.NoError(t, err)

		press(c, input.Rune('L'))
		typeText(c, "Oslo")
		press(c, escape)
		assert.False(t, c.showPrompt.Load())
		assert.Empty(t, c.locationEditor.GetContent())
	})

	t.Run("help", func(t *testing.T) {
		c, err := newTestController(t, config.DefaultKeys())
		require.NoError(t, err)

		press(c, input.Rune('?'))
		require.True(t, c.showHelp.Load())
		c.rootPane.Draw()
		assert.Contains(t, c.helpPane.Content, "f")
		assert.Contains(t, c.helpPane.Content, "q")

		press(c, input.Rune('?'))
		assert.False(t, c.showHelp.Load())
	})

	t.Run("quit", func(t *testing.T) {
		c, err := newTestController(t, config.DefaultKeys())
		require.NoError(t, err)

		press(c, input.Rune('q'))
		assert.True(t, emptyRenderEvents(c.controllerEvents))
	})

	t.Run("custom bindings", func(t *testing.T) {
		bindings := config.DefaultKeys()
		bindings["t"] = "toggle-time-format"
		c, err := newTestController(t, bindings)
		require.NoError(t, err)

		press(c, input.Rune('t'))
		assert.Equal(t, model.Format12Hour, c.dashboard.Settings().TimeFormat)
	})

	t.Run("unknown action", func(t *testing.T) {
		_, err := newTestController(t, input.Bindings{"x": "fly-to-the-moon"})
		assert.Error(t, err)
	})
}

func TestSetUp(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LUNADASH_HOME", dir)
	for _, v := range []string{"NASA_API_KEY", "LATITUDE", "LONGITUDE", "REDIS_ADDRESS", "MQTT_BROKER", "SERVER_ADDRESS"} {
		t.Setenv(v, "")
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
time-format: 12h
location:
  latitude: 59.91
  longitude: 10.75
scan:
  step: 2h
`), 0o644))

	env, err := setUp(config.Dark, true)
	require.NoError(t, err)
	defer env.Close()

	assert.Equal(t, dir, env.BaseDir)
	assert.Equal(t, model.Format12Hour, env.Dashboard.Settings().TimeFormat)
	assert.Equal(t, 2*time.Hour, env.Dashboard.Calculator().Options().Step)
	assert.Empty(t, env.closers)

	t.Run("invalid time format", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("time-format: 36h\n"), 0o644))
		_, err := setUp(config.Dark, false)
		assert.Error(t, err)
	})
}

func TestParseStart(t *testing.T) {
	got, err := parseStart("", now)
	require.NoError(t, err)
	assert.Equal(t, now, got)

	got, err = parseStart("2024-03-10T12:00:00Z", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC), got)

	got, err = parseStart("2024-03-10", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local), got)

	_, err = parseStart("tomorrow", now)
	assert.Error(t, err)
}

func TestOutput(t *testing.T) {
	d := newTestDashboard(t)

	t.Run("phases", func(t *testing.T) {
		var b bytes.Buffer
		printPhases(&b, now, d.Calculator().UpcomingPhases(now))
		assert.Contains(t, b.String(), string(model.FirstQuarter))
		assert.Contains(t, b.String(), "≈")

		b.Reset()
		printPhases(&b, now, nil)
		assert.Equal(t, "No phases found\n", b.String())
	})

	t.Run("phases in local time", func(t *testing.T) {
		local := time.Local
		time.Local = time.FixedZone("UTC+14", 14*60*60)
		t.Cleanup(func() { time.Local = local })

		start := time.Date(2024, 3, 10, 9, 0, 0, 0, time.FixedZone("UTC-10", -10*60*60))
		full := []model.UpcomingPhase{{Name: model.FullMoon, Date: start.Add(3 * time.Hour)}}

		var b bytes.Buffer
		printPhases(&b, start, full)
		assert.Contains(t, b.String(), "Mar 11  12:00")
	})

	t.Run("view", func(t *testing.T) {
		view, ok := d.View(now)
		require.True(t, ok)

		var b bytes.Buffer
		printView(&b, view)
		out := b.String()
		for _, s := range []string{"New Moon", "Position", "Times", "Orbit", "Upcoming", "Solar Noon  12:05", "Berlin, DE", "Next picture in"} {
			assert.Contains(t, out, s)
		}
	})

	t.Run("json", func(t *testing.T) {
		view, _ := d.View(now)
		var b bytes.Buffer
		require.NoError(t, writeJSON(&b, view))
		assert.Contains(t, b.String(), `"phaseName": "New Moon"`)
	})

	t.Run("version", func(t *testing.T) {
		var b bytes.Buffer
		showVersion(&b)
		assert.Equal(t, "lunadash development (unknown)\n", b.String())
	})
}

func TestRestoreSettings(t *testing.T) {
	d := newTestDashboard(t)
	h := storage.NewFileHandler(filepath.Join(t.TempDir(), "state.yaml"))

	restoreSettings(h, d)
	assert.Equal(t, model.Format24Hour, d.Settings().TimeFormat)

	require.NoError(t, h.Write(storage.Saved{TimeFormat: "12h", Blur: true}))
	restoreSettings(h, d)
	assert.Equal(t, control.Settings{TimeFormat: model.Format12Hour, Blur: true}, d.Settings())

	require.NoError(t, h.Write(storage.Saved{TimeFormat: "36h"}))
	restoreSettings(h, d)
	assert.Equal(t, model.Format12Hour, d.Settings().TimeFormat)
}
