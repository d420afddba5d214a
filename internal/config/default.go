package config

import (
	"github.com/ja-he/lunadash/internal/apod"
	"github.com/ja-he/lunadash/internal/geo"
	"github.com/ja-he/lunadash/internal/input"
	"github.com/ja-he/lunadash/internal/publish"
)

// Default returns the default configuration with the colorscheme for the
// given type (light or dark).
func Default(colorschemeType ColorschemeType) Config {
	return Config{
		Stylesheet: defaultStylesheet(colorschemeType),
		TimeFormat: "24h",
		Scan:       Scan{Step: "1h", Horizon: "1680h"},
		APOD:       APOD{Key: apod.DemoKey, Endpoint: apod.DefaultEndpoint},
		Geocoding:  Geocoding{Endpoint: geo.DefaultGeocodeEndpoint, UserAgent: geo.DefaultUserAgent},
		Locate:     Locate{Endpoint: geo.DefaultLocateEndpoint, Timeout: geo.DefaultLocateTimeout.String()},
		MQTT:       MQTT{Topic: publish.DefaultTopic},
		Server:     Server{Address: ":8080", AllowOrigins: []string{"*"}},
		Keys:       DefaultKeys(),
	}
}

// DefaultKeys returns the default key bindings of the terminal UI.
func DefaultKeys() input.Bindings {
	return input.Bindings{
		"q":     "quit",
		"<c-c>": "quit",
		"f":     "toggle-time-format",
		"b":     "toggle-blur",
		"L":     "search-location",
		"i":     "show-picture",
		"r":     "refresh",
		"?":     "toggle-help",
		"E":     "toggle-log",
		"P":     "toggle-performance",
	}
}

func defaultStylesheet(colorschemeType ColorschemeType) Stylesheet {
	if colorschemeType == Light {
		return Stylesheet{
			Normal:            Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			NormalEmphasized:  Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
			Panel:             Styling{Fg: "#202040", Bg: "#eef0fa", Style: &FontStyle{}},
			PanelTitle:        Styling{Fg: "#202040", Bg: "#d8dcf0", Style: &FontStyle{Bold: true}},
			Label:             Styling{Fg: "#606080", Bg: "#eef0fa", Style: &FontStyle{}},
			MoonLit:           Styling{Fg: "#202040", Bg: "#f5f2dc", Style: &FontStyle{}},
			MoonDark:          Styling{Fg: "#f5f2dc", Bg: "#1a1c3b", Style: &FontStyle{}},
			AboveHorizon:      Styling{Fg: "#166534", Bg: "#eef0fa", Style: &FontStyle{Bold: true}},
			BelowHorizon:      Styling{Fg: "#991b1b", Bg: "#eef0fa", Style: &FontStyle{Bold: true}},
			DistanceBar:       Styling{Fg: "#ffffff", Bg: "#6366f1", Style: &FontStyle{}},
			Status:            Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
			Popup:             Styling{Fg: "#000000", Bg: "#e0e0e0", Style: &FontStyle{}},
			Prompt:            Styling{Fg: "#000000", Bg: "#ccebff", Style: &FontStyle{}},
			Alert:             Styling{Fg: "#882222", Bg: "#ffaaaa", Style: &FontStyle{Bold: true}},
			LogDefault:        Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			LogTitleBox:       Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{Bold: true}},
			LogEntryTypeError: Styling{Fg: "#882222", Bg: "#ffaaaa", Style: &FontStyle{Bold: true}},
			LogEntryTypeWarn:  Styling{Fg: "#cc8f00", Bg: "#fff0cc", Style: &FontStyle{Bold: true}},
			LogEntryTypeInfo:  Styling{Fg: "#3a751a", Bg: "#c2edab", Style: &FontStyle{Bold: true}},
			LogEntryTypeDebug: Styling{Fg: "#0065a3", Bg: "#ccebff", Style: &FontStyle{Bold: true}},
			LogEntryTypeTrace: Styling{Fg: "#a3008b", Bg: "#ffccf7", Style: &FontStyle{Bold: true}},
			LogEntryLocation:  Styling{Fg: "#cccccc", Bg: "#ffffff", Style: &FontStyle{}},
			LogEntryTime:      Styling{Fg: "#a0a0a0", Bg: "#ffffff", Style: &FontStyle{}},
			Help:              Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
		}
	}
	return Stylesheet{
		Normal:            Styling{Fg: "#ffffff", Bg: "#0b0c1e", Style: &FontStyle{}},
		NormalEmphasized:  Styling{Fg: "#ffffff", Bg: "#202040", Style: &FontStyle{}},
		Panel:             Styling{Fg: "#e0e0f0", Bg: "#14162e", Style: &FontStyle{}},
		PanelTitle:        Styling{Fg: "#ffffff", Bg: "#1f2247", Style: &FontStyle{Bold: true}},
		Label:             Styling{Fg: "#9094b8", Bg: "#14162e", Style: &FontStyle{}},
		MoonLit:           Styling{Fg: "#1a1c3b", Bg: "#f5f2dc", Style: &FontStyle{}},
		MoonDark:          Styling{Fg: "#f5f2dc", Bg: "#1a1c3b", Style: &FontStyle{}},
		AboveHorizon:      Styling{Fg: "#86efac", Bg: "#14162e", Style: &FontStyle{Bold: true}},
		BelowHorizon:      Styling{Fg: "#fca5a5", Bg: "#14162e", Style: &FontStyle{Bold: true}},
		DistanceBar:       Styling{Fg: "#ffffff", Bg: "#6366f1", Style: &FontStyle{}},
		Status:            Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{}},
		Popup:             Styling{Fg: "#ffffff", Bg: "#303050", Style: &FontStyle{}},
		Prompt:            Styling{Fg: "#ffffff", Bg: "#0067ab", Style: &FontStyle{}},
		Alert:             Styling{Fg: "#ffaaaa", Bg: "#882222", Style: &FontStyle{Bold: true}},
		LogDefault:        Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
		LogTitleBox:       Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{Bold: true}},
		LogEntryTypeError: Styling{Fg: "#ffaaaa", Bg: "#882222", Style: &FontStyle{Bold: true}},
		LogEntryTypeWarn:  Styling{Fg: "#fff0cc", Bg: "#cc8f00", Style: &FontStyle{Bold: true}},
		LogEntryTypeInfo:  Styling{Fg: "#c2edab", Bg: "#3a751a", Style: &FontStyle{Bold: true}},
		LogEntryTypeDebug: Styling{Fg: "#ccebff", Bg: "#0065a3", Style: &FontStyle{Bold: true}},
		LogEntryTypeTrace: Styling{Fg: "#ffccf7", Bg: "#a3008b", Style: &FontStyle{Bold: true}},
		LogEntryLocation:  Styling{Fg: "#c0c0c0", Bg: "#000000", Style: &FontStyle{}},
		LogEntryTime:      Styling{Fg: "#808080", Bg: "#000000", Style: &FontStyle{}},
		Help:              Styling{Fg: "#ffffff", Bg: "#404040", Style: &FontStyle{}},
	}
}
