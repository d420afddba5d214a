package astro

import (
	"time"

	"github.com/nathan-osman/go-sunrise"
	"github.com/sixdouglas/suncalc"

	"github.com/ja-he/lunadash/internal/model"
)

// Source provides raw astronomical values.
// Implementations must not post-process the values they return.
type Source interface {
	MoonIllumination(t time.Time) model.Illumination
	MoonPosition(t time.Time, at model.Coordinates) model.Position
	MoonTimes(t time.Time, at model.Coordinates) model.MoonTimes
	SunTimes(t time.Time, at model.Coordinates) model.SunTimes
}

// LibrarySource is the Source backed by the suncalc and go-sunrise
// libraries.
type LibrarySource struct{}

// MoonIllumination implements Source.
func (LibrarySource) MoonIllumination(t time.Time) model.Illumination {
	i := suncalc.GetMoonIllumination(t)
	return model.Illumination{
		Fraction: i.Fraction,
		Phase:    i.Phase,
		Angle:    i.Angle,
	}
}

// MoonPosition implements Source.
func (LibrarySource) MoonPosition(t time.Time, at model.Coordinates) model.Position {
	p := suncalc.GetMoonPosition(t, at.Latitude, at.Longitude)
	return model.Position{
		Altitude:         p.Altitude,
		Azimuth:          p.Azimuth,
		Distance:         p.Distance,
		ParallacticAngle: p.ParallacticAngle,
	}
}

// MoonTimes implements Source.
// The times are those of the local calendar day of t.
func (LibrarySource) MoonTimes(t time.Time, at model.Coordinates) model.MoonTimes {
	m := suncalc.GetMoonTimes(t, at.Latitude, at.Longitude, false)
	return model.MoonTimes{
		Rise:       localOrZero(m.Rise, t.Location()),
		Set:        localOrZero(m.Set, t.Location()),
		AlwaysUp:   m.AlwaysUp,
		AlwaysDown: m.AlwaysDown,
	}
}

// SunTimes implements Source.
//
// Rise and set come from go-sunrise for the calendar day of t, solar noon
// from suncalc.
func (LibrarySource) SunTimes(t time.Time, at model.Coordinates) model.SunTimes {
	rise, set := sunrise.SunriseSunset(at.Latitude, at.Longitude, t.Year(), t.Month(), t.Day())

	var noon time.Time
	if n, ok := suncalc.GetTimes(t, at.Latitude, at.Longitude)[suncalc.SolarNoon]; ok {
		noon = n.Value
	}

	return model.SunTimes{
		Rise:      localOrZero(rise, t.Location()),
		Set:       localOrZero(set, t.Location()),
		SolarNoon: localOrZero(noon, t.Location()),
	}
}

func localOrZero(t time.Time, loc *time.Location) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return t.In(loc)
}
