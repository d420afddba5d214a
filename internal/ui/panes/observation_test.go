package panes_test

import (
	"time"

	"github.com/ja-he/lunadash/internal/astro"
	"github.com/ja-he/lunadash/internal/model"
)

// astroObservation is a fixed observation of a (nearly) full moon over Paris.
func astroObservation(at time.Time) astro.Observation {
	return astro.Observation{
		Time:        at,
		Coordinates: model.Coordinates{Latitude: 48.8566, Longitude: 2.3522},
		Illumination: model.Illumination{
			Fraction: 0.99,
			Phase:    0.51,
		},
		Position: model.Position{
			Altitude: 0.3,
			Azimuth:  1.2,
			Distance: 384400,
		},
		Moon: model.MoonTimes{Rise: at.Add(6 * time.Hour)},
	}
}
