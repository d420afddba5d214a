package styling

import (
	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/lunadash/internal/config"
)

// Stylesheet represents all styles used by the application for rendering.
type Stylesheet struct {
	Normal           DrawStyling
	NormalEmphasized DrawStyling

	Panel      DrawStyling
	PanelTitle DrawStyling
	Label      DrawStyling

	MoonLit  DrawStyling
	MoonDark DrawStyling

	AboveHorizon DrawStyling
	BelowHorizon DrawStyling
	DistanceBar  DrawStyling

	Status DrawStyling

	Popup  DrawStyling
	Prompt DrawStyling
	Alert  DrawStyling

	LogDefault  DrawStyling
	LogTitleBox DrawStyling

	LogEntryTypeError DrawStyling
	LogEntryTypeWarn  DrawStyling
	LogEntryTypeInfo  DrawStyling
	LogEntryTypeDebug DrawStyling
	LogEntryTypeTrace DrawStyling

	LogEntryLocation DrawStyling
	LogEntryTime     DrawStyling

	Help DrawStyling
}

// NewStylesheetFromConfig constructs a new stylesheet from a given config
// stylesheet.
func NewStylesheetFromConfig(config config.Stylesheet) *Stylesheet {
	stylesheet := Stylesheet{}

	stylesheet.Normal = StyleFromConfig(config.Normal)
	stylesheet.NormalEmphasized = StyleFromConfig(config.NormalEmphasized)
	stylesheet.Panel = StyleFromConfig(config.Panel)
	stylesheet.PanelTitle = StyleFromConfig(config.PanelTitle)
	stylesheet.Label = StyleFromConfig(config.Label)
	stylesheet.MoonLit = StyleFromConfig(config.MoonLit)
	stylesheet.MoonDark = StyleFromConfig(config.MoonDark)
	stylesheet.AboveHorizon = StyleFromConfig(config.AboveHorizon)
	stylesheet.BelowHorizon = StyleFromConfig(config.BelowHorizon)
	stylesheet.DistanceBar = StyleFromConfig(config.DistanceBar)
	stylesheet.Status = StyleFromConfig(config.Status)
	stylesheet.Popup = StyleFromConfig(config.Popup)
	stylesheet.Prompt = StyleFromConfig(config.Prompt)
	stylesheet.Alert = StyleFromConfig(config.Alert)
	stylesheet.LogDefault = StyleFromConfig(config.LogDefault)
	stylesheet.LogTitleBox = StyleFromConfig(config.LogTitleBox)
	stylesheet.LogEntryTypeError = StyleFromConfig(config.LogEntryTypeError)
	stylesheet.LogEntryTypeWarn = StyleFromConfig(config.LogEntryTypeWarn)
	stylesheet.LogEntryTypeInfo = StyleFromConfig(config.LogEntryTypeInfo)
	stylesheet.LogEntryTypeDebug = StyleFromConfig(config.LogEntryTypeDebug)
	stylesheet.LogEntryTypeTrace = StyleFromConfig(config.LogEntryTypeTrace)
	stylesheet.LogEntryLocation = StyleFromConfig(config.LogEntryLocation)
	stylesheet.LogEntryTime = StyleFromConfig(config.LogEntryTime)
	stylesheet.Help = StyleFromConfig(config.Help)

	return &stylesheet
}

// StyleFromConfig constructs a styling from a config styling.
func StyleFromConfig(c config.Styling) *Style {
	s := StyleFromHex(c.Fg, c.Bg)
	if c.Style == nil {
		return s
	}
	for attr, set := range map[tcell.AttrMask]bool{
		tcell.AttrBold:      c.Style.Bold,
		tcell.AttrItalic:    c.Style.Italic,
		tcell.AttrUnderline: c.Style.Underlined,
	} {
		if set {
			s.attrs |= attr
		}
	}
	return s
}
