package model

import "strings"

// PhaseName names one of the eight conventional phases of the moon.
type PhaseName string

const (
	NewMoon        PhaseName = "New Moon"
	WaxingCrescent PhaseName = "Waxing Crescent"
	FirstQuarter   PhaseName = "First Quarter"
	WaxingGibbous  PhaseName = "Waxing Gibbous"
	FullMoon       PhaseName = "Full Moon"
	WaningGibbous  PhaseName = "Waning Gibbous"
	ThirdQuarter   PhaseName = "Third Quarter"
	WaningCrescent PhaseName = "Waning Crescent"
)

// AllPhaseNames lists the phase names in cycle order, starting at new moon.
var AllPhaseNames = []PhaseName{
	NewMoon,
	WaxingCrescent,
	FirstQuarter,
	WaxingGibbous,
	FullMoon,
	WaningGibbous,
	ThirdQuarter,
	WaningCrescent,
}

// MajorPhase is a phase that starts at a fixed progress value.
type MajorPhase struct {
	Name      PhaseName
	Threshold float64
}

// MajorPhases are the four phases the upcoming-phase search looks for.
var MajorPhases = []MajorPhase{
	{Name: NewMoon, Threshold: 0},
	{Name: FirstQuarter, Threshold: 0.25},
	{Name: FullMoon, Threshold: 0.5},
	{Name: ThirdQuarter, Threshold: 0.75},
}

// PhaseNameFor returns the phase name for a phase progress value in [0,1).
//
// The named quarters cover a band of +-0.03 around their exact value, the
// in-between phases cover the rest.
func PhaseNameFor(phase float64) PhaseName {
	switch {
	case phase <= 0.03 || phase >= 0.97:
		return NewMoon
	case phase < 0.22:
		return WaxingCrescent
	case phase <= 0.28:
		return FirstQuarter
	case phase < 0.47:
		return WaxingGibbous
	case phase <= 0.53:
		return FullMoon
	case phase < 0.72:
		return WaningGibbous
	case phase <= 0.78:
		return ThirdQuarter
	default:
		return WaningCrescent
	}
}

// Slug returns a lowercase, dash-separated identifier, e.g. "first-quarter".
func (n PhaseName) Slug() string {
	return strings.ReplaceAll(strings.ToLower(string(n)), " ", "-")
}

// Symbol returns a single-rune glyph for the phase.
func (n PhaseName) Symbol() string {
	switch n {
	case NewMoon:
		return "🌑"
	case WaxingCrescent:
		return "🌒"
	case FirstQuarter:
		return "🌓"
	case WaxingGibbous:
		return "🌔"
	case FullMoon:
		return "🌕"
	case WaningGibbous:
		return "🌖"
	case ThirdQuarter:
		return "🌗"
	case WaningCrescent:
		return "🌘"
	}
	return "?"
}
