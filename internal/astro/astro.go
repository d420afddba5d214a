// Package astro computes lunar and solar observations for a location by
// calling out to celestial-mechanics libraries.
package astro

import (
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/lunadash/internal/model"
)

// Observation bundles everything computed for one instant and location.
type Observation struct {
	Time         time.Time          `json:"time"`
	Coordinates  model.Coordinates  `json:"coordinates"`
	Illumination model.Illumination `json:"illumination"`
	Position     model.Position     `json:"position"`
	Sun          model.SunTimes     `json:"sun"`
	Moon         model.MoonTimes    `json:"moon"`
}

// PhaseName is the name of the observed phase.
func (o *Observation) PhaseName() model.PhaseName {
	return model.PhaseNameFor(o.Illumination.Phase)
}

// Calculator produces observations and phase forecasts from a Source.
type Calculator struct {
	source  Source
	options Options
}

// NewCalculator returns a calculator for the given source and options.
func NewCalculator(source Source, options Options) (*Calculator, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{source: source, options: options}, nil
}

// NewDefaultCalculator returns a calculator using the library source and the
// default options.
func NewDefaultCalculator() *Calculator {
	return &Calculator{source: LibrarySource{}, options: DefaultOptions()}
}

// Options returns the calculator's search options.
func (c *Calculator) Options() Options {
	return c.options
}

// Observe computes illumination, position and rise/set times at the given
// instant and location.
func (c *Calculator) Observe(now time.Time, at model.Coordinates) Observation {
	return Observation{
		Time:         now,
		Coordinates:  at,
		Illumination: c.source.MoonIllumination(now),
		Position:     c.source.MoonPosition(now, at),
		Sun:          c.source.SunTimes(now, at),
		Moon:         c.source.MoonTimes(now, at),
	}
}

// UpcomingPhases finds the next occurrence of each major phase after start.
//
// The phase progress is evaluated at every step within the horizon and
// compared against the previous step. A major phase is reached at the first
// step where the progress passes its threshold; new moon is additionally
// reached when the progress wraps from above 0.95 to below 0.05.
// The search ends early once all major phases were found.
// The result holds at most one entry per phase, sorted by date.
func (c *Calculator) UpcomingPhases(start time.Time) []model.UpcomingPhase {
	found := make([]model.UpcomingPhase, 0, len(model.MajorPhases))
	seen := map[model.PhaseName]bool{}

	steps := int(c.options.Horizon / c.options.Step)
	prev := c.source.MoonIllumination(start).Phase
	for i := 1; i <= steps && len(found) < len(model.MajorPhases); i++ {
		at := start.Add(time.Duration(i) * c.options.Step)
		cur := c.source.MoonIllumination(at).Phase
		for _, p := range model.MajorPhases {
			if seen[p.Name] {
				continue
			}
			if crossed(prev, cur, p.Threshold) {
				seen[p.Name] = true
				found = append(found, model.UpcomingPhase{Name: p.Name, Date: at})
			}
		}
		prev = cur
	}

	if len(found) < len(model.MajorPhases) {
		log.Debug().Int("found", len(found)).Dur("horizon", c.options.Horizon).Msg("not all major phases found within horizon")
	}

	sort.Slice(found, func(i, j int) bool { return found[i].Date.Before(found[j].Date) })
	return found
}

// NextPhase returns the earliest upcoming major phase after now.
func (c *Calculator) NextPhase(now time.Time) (model.UpcomingPhase, bool) {
	upcoming := c.UpcomingPhases(now)
	if len(upcoming) == 0 {
		return model.UpcomingPhase{}, false
	}
	return upcoming[0], true
}

func crossed(prev, cur, threshold float64) bool {
	if prev < threshold && cur >= threshold {
		return true
	}
	return threshold == 0 && prev > 0.95 && cur < 0.05
}
