package control

import (
	"fmt"
	"time"

	"github.com/ja-he/lunadash/internal/model"
)

// Row is a labelled value.
type Row struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// MainSection is the headline of the dashboard.
type MainSection struct {
	PhaseName    model.PhaseName      `json:"phaseName"`
	Phase        float64              `json:"phase"`
	Symbol       string               `json:"symbol"`
	Illumination string               `json:"illumination"`
	Age          string               `json:"age"`
	Distance     string               `json:"distance"`
	DistancePct  float64              `json:"distancePercentage"`
	Shadow       model.ShadowGeometry `json:"shadow"`
}

// NextPhaseSection names the next major phase and the time until it.
type NextPhaseSection struct {
	Name      model.PhaseName `json:"name"`
	Countdown string          `json:"countdown"`
}

// UpcomingItem is one upcoming major phase.
type UpcomingItem struct {
	Name   model.PhaseName `json:"name"`
	Slug   string          `json:"slug"`
	Symbol string          `json:"symbol"`
	Date   string          `json:"date"`
}

// PictureSection describes the picture of the day.
type PictureSection struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Explanation string `json:"explanation"`
	Copyright   string `json:"copyright"`
	ImageURL    string `json:"imageUrl"`
	IsImage     bool   `json:"isImage"`
}

// View is the complete display text of the dashboard.
type View struct {
	Main      MainSection       `json:"main"`
	Position  []Row             `json:"position"`
	Timing    []Row             `json:"timing"`
	NextPhase *NextPhaseSection `json:"nextPhase,omitempty"`
	Orbital   []Row             `json:"orbital"`
	Upcoming  []UpcomingItem    `json:"upcoming"`
	Picture   *PictureSection   `json:"picture,omitempty"`

	PictureCountdown string `json:"pictureCountdown"`
	TimeFormat       string `json:"timeFormat"`
	TimeFormatToggle string `json:"timeFormatToggle"`
	Blur             bool   `json:"blur"`
}

// BuildView renders the display text for a snapshot.
// The picture may be nil.
func BuildView(snapshot *Snapshot, picture *model.Picture, settings Settings, now time.Time) View {
	o := snapshot.Observation

	v := View{
		Main:             MainRows(o.Illumination, o.Position),
		Position:         PositionRows(o.Position, snapshot.PlaceName),
		Timing:           TimingRows(o.Sun, o.Moon, settings.TimeFormat),
		Orbital:          OrbitalRows(o.Position),
		Upcoming:         UpcomingItems(snapshot.Upcoming),
		PictureCountdown: model.PictureCountdown(now),
		TimeFormat:       settings.TimeFormat.String(),
		TimeFormatToggle: settings.TimeFormat.ToggleLabel(),
		Blur:             settings.Blur,
	}
	if len(snapshot.Upcoming) > 0 {
		next := snapshot.Upcoming[0]
		v.NextPhase = &NextPhaseSection{
			Name:      next.Name,
			Countdown: model.PhaseCountdown(now, next.Date),
		}
	}
	if picture != nil {
		v.Picture = &PictureSection{
			Title:       picture.Title,
			Date:        picture.DisplayDate(),
			Explanation: picture.Explanation,
			Copyright:   picture.CopyrightLine(),
			ImageURL:    picture.ImageURL(),
			IsImage:     picture.IsImage(),
		}
	}
	return v
}

// MainRows renders the main section.
func MainRows(i model.Illumination, p model.Position) MainSection {
	name := model.PhaseNameFor(i.Phase)
	return MainSection{
		PhaseName:    name,
		Phase:        i.Phase,
		Symbol:       name.Symbol(),
		Illumination: fmt.Sprintf("Illumination: %.2f%%", i.Fraction*100),
		Age:          fmt.Sprintf("Age: ≈%.1f days", model.MoonAgeDays(i.Phase)),
		Distance:     model.FormatThousands(p.Distance) + " km",
		DistancePct:  model.DistancePercentage(p.Distance),
		Shadow:       model.ShadowFor(i.Phase),
	}
}

// PositionRows renders the position section.
func PositionRows(p model.Position, placeName string) []Row {
	return []Row{
		{"Altitude", model.FormatDegrees(p.Altitude)},
		{"Azimuth", model.FormatDegrees(p.Azimuth)},
		{"Visibility", model.Visibility(p.Altitude)},
		{"Location", placeName},
	}
}

// TimingRows renders the timing section.
func TimingRows(sun model.SunTimes, moon model.MoonTimes, format model.TimeFormat) []Row {
	return []Row{
		{"Moonrise", model.FormatClock(moon.Rise, format)},
		{"Solar Noon", model.FormatClock(sun.SolarNoon, format)},
		{"Moonset", model.FormatClock(moon.Set, format)},
	}
}

// OrbitalRows renders the orbital section.
func OrbitalRows(p model.Position) []Row {
	return []Row{
		{"Parallactic Angle", model.FormatDegrees(p.ParallacticAngle)},
		{"Angular Diameter", fmt.Sprintf("%.1f\"", model.AngularDiameterArcsec(p.Distance))},
		{"Avg. Perigee", model.FormatThousands(model.AveragePerigeeKm) + " km"},
		{"Avg. Apogee", model.FormatThousands(model.AverageApogeeKm) + " km"},
	}
}

// UpcomingItems renders the upcoming phases.
func UpcomingItems(upcoming []model.UpcomingPhase) []UpcomingItem {
	items := make([]UpcomingItem, 0, len(upcoming))
	for _, u := range upcoming {
		items = append(items, UpcomingItem{
			Name:   u.Name,
			Slug:   u.Name.Slug(),
			Symbol: u.Name.Symbol(),
			Date:   model.FormatShortDate(u.Date),
		})
	}
	return items
}

// Value returns the value of the row with the given label.
func Value(rows []Row, label string) (string, bool) {
	for _, r := range rows {
		if r.Label == label {
			return r.Value, true
		}
	}
	return "", false
}
