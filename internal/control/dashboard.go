// Package control orchestrates the dashboard: it gathers the picture, the
// location and the lunar data, keeps the state and renders display text.
package control

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/ja-he/lunadash/internal/astro"
	"github.com/ja-he/lunadash/internal/model"
	"github.com/ja-he/lunadash/internal/publish"
)

// ErrEmptyQuery is returned when a location is set from a blank query.
var ErrEmptyQuery = errors.New("empty location query")

// PictureFetcher provides the picture of the day.
type PictureFetcher interface {
	Fetch(ctx context.Context) (*model.Picture, error)
}

// Locator provides the viewer's coordinates. It never fails.
type Locator interface {
	Locate(ctx context.Context) model.Coordinates
}

// Geocoder converts between place names and coordinates.
type Geocoder interface {
	Search(ctx context.Context, query string) (model.Coordinates, error)
	PlaceName(ctx context.Context, at model.Coordinates) string
}

// Snapshot is the result of one dashboard update.
type Snapshot struct {
	Observation astro.Observation     `json:"observation"`
	PlaceName   string                `json:"placeName"`
	Upcoming    []model.UpcomingPhase `json:"upcoming"`
}

// Dependencies are the collaborators of a Dashboard.
// Publisher and Clock are optional.
type Dependencies struct {
	Pictures   PictureFetcher
	Locator    Locator
	Geocoder   Geocoder
	Calculator *astro.Calculator
	Publisher  publish.Publisher
	Clock      func() time.Time
}

// Dashboard is the top-level controller shared by the terminal and the HTTP
// surfaces.
type Dashboard struct {
	State *State

	pictures   PictureFetcher
	locator    Locator
	geocoder   Geocoder
	calculator *astro.Calculator
	publisher  publish.Publisher
	now        func() time.Time
}

// NewDashboard creates a dashboard with the given initial state.
func NewDashboard(deps Dependencies, state *State) *Dashboard {
	d := &Dashboard{
		State:      state,
		pictures:   deps.Pictures,
		locator:    deps.Locator,
		geocoder:   deps.Geocoder,
		calculator: deps.Calculator,
		publisher:  deps.Publisher,
		now:        deps.Clock,
	}
	if d.publisher == nil {
		d.publisher = publish.Nop{}
	}
	if d.now == nil {
		d.now = time.Now
	}
	if d.calculator == nil {
		d.calculator = astro.NewDefaultCalculator()
	}
	return d
}

// Now returns the dashboard's current time.
func (d *Dashboard) Now() time.Time {
	return d.now()
}

// Calculator returns the calculator the dashboard computes with.
func (d *Dashboard) Calculator() *astro.Calculator {
	return d.calculator
}

// Init fetches the picture and determines the location concurrently, then
// performs the first update. A location set while Init runs is kept.
func (d *Dashboard) Init(ctx context.Context) (*Snapshot, error) {
	ticket := d.State.claim()
	var coords model.Coordinates

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d.RefreshPicture(gctx)
		return nil
	})
	g.Go(func() error {
		coords = d.locator.Locate(gctx)
		return nil
	})
	_ = g.Wait()

	return d.apply(ctx, coords, ticket, false)
}

// RefreshPicture fetches the picture of the day. On failure the previous
// picture (if any) is kept and false is returned.
func (d *Dashboard) RefreshPicture(ctx context.Context) bool {
	if d.pictures == nil {
		return false
	}
	p, err := d.pictures.Fetch(ctx)
	if err != nil {
		log.Error().Err(err).Msg("could not fetch picture of the day")
		return false
	}
	d.State.setPicture(p)
	log.Info().Str("title", p.Title).Str("date", p.Date).Msg("fetched picture of the day")
	return true
}

// Compute calculates a snapshot for the coordinates without touching the
// state.
func (d *Dashboard) Compute(ctx context.Context, at model.Coordinates) (*Snapshot, error) {
	if !at.Valid() {
		return nil, fmt.Errorf("invalid coordinates %s", at)
	}
	now := d.now()
	snapshot := &Snapshot{
		Observation: d.calculator.Observe(now, at),
		Upcoming:    d.calculator.UpcomingPhases(now),
	}
	if d.geocoder != nil {
		snapshot.PlaceName = d.geocoder.PlaceName(ctx, at)
	} else if at.IsFallback() {
		snapshot.PlaceName = model.FallbackPlaceName
	} else {
		snapshot.PlaceName = at.String()
	}
	return snapshot, nil
}

// Update computes a snapshot for the coordinates, makes it the current one
// and publishes it. If a location update started after this one lands first,
// the state keeps that one and its snapshot is returned.
func (d *Dashboard) Update(ctx context.Context, at model.Coordinates) (*Snapshot, error) {
	return d.apply(ctx, at, d.State.claim(), false)
}

// Refresh recomputes the snapshot for the current location. It is discarded
// if the location changes meanwhile.
func (d *Dashboard) Refresh(ctx context.Context) (*Snapshot, error) {
	coords, ticket := d.State.follow()
	return d.apply(ctx, coords, ticket, true)
}

func (d *Dashboard) apply(ctx context.Context, at model.Coordinates, ticket uint64, recompute bool) (*Snapshot, error) {
	snapshot, err := d.Compute(ctx, at)
	if err != nil {
		return nil, err
	}
	if !d.State.setSnapshot(snapshot, ticket, recompute) {
		log.Debug().Stringer("coordinates", at).Msg("discarding outdated update")
		return d.State.Snapshot(), nil
	}
	log.Debug().Stringer("coordinates", at).Str("place", snapshot.PlaceName).Str("phase", string(snapshot.Observation.PhaseName())).Msg("dashboard updated")

	if err := d.publisher.Publish(snapshot); err != nil {
		log.Warn().Err(err).Msg("could not publish snapshot")
	}
	return snapshot, nil
}

// SetLocation resolves the query to coordinates and updates the dashboard
// there. A blank query yields ErrEmptyQuery; failures leave the state on the
// previous location.
func (d *Dashboard) SetLocation(ctx context.Context, query string) (*Snapshot, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	ticket := d.State.claim()
	if d.geocoder == nil {
		return nil, fmt.Errorf("no geocoder available to look up '%s'", query)
	}
	coords, err := d.geocoder.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not find location '%s' (%w)", query, err)
	}
	log.Info().Str("query", query).Stringer("coordinates", coords).Msg("location set")
	return d.apply(ctx, coords, ticket, false)
}

// ToggleTimeFormat switches the time format and returns the re-rendered
// timing section.
func (d *Dashboard) ToggleTimeFormat() []Row {
	d.State.ToggleTimeFormat()
	return d.TimingView()
}

// ToggleBlur flips the blur flag.
func (d *Dashboard) ToggleBlur() bool {
	return d.State.ToggleBlur()
}

// TimingView renders the timing section from the cached times.
func (d *Dashboard) TimingView() []Row {
	sun, moon := d.State.Times()
	return TimingRows(sun, moon, d.State.TimeFormat())
}

// View renders the current state at the given time. It returns false before
// the first update.
func (d *Dashboard) View(now time.Time) (View, bool) {
	snapshot := d.State.Snapshot()
	if snapshot == nil {
		return View{}, false
	}
	return BuildView(snapshot, d.State.Picture(), d.State.Settings(), now), true
}

// Picture returns the current picture of the day, or nil.
func (d *Dashboard) Picture() *model.Picture {
	return d.State.Picture()
}

// Settings returns the current display settings.
func (d *Dashboard) Settings() Settings {
	return d.State.Settings()
}

// Snapshot returns the current snapshot, or nil before the first update.
func (d *Dashboard) Snapshot() *Snapshot {
	return d.State.Snapshot()
}
