package control

import (
	"sync"

	"github.com/ja-he/lunadash/internal/model"
)

// State holds the dashboard's mutable values.
// It is safe for concurrent use.
type State struct {
	mutex sync.RWMutex

	timeFormat model.TimeFormat
	blur       bool

	// kept so the timing section can be re-rendered on a format change
	sunTimes  model.SunTimes
	moonTimes model.MoonTimes

	coordinates model.Coordinates
	placeName   string
	picture     *model.Picture
	snapshot    *Snapshot

	// tickets order location updates: issued counts claimed ones, current is
	// the one whose location is shown
	issued  uint64
	current uint64
}

// NewState returns the initial state for the given time format, located at
// the fallback coordinates.
func NewState(format model.TimeFormat) *State {
	return &State{
		timeFormat:  format,
		coordinates: model.FallbackCoordinates,
		placeName:   model.FallbackPlaceName,
	}
}

// Settings are the user-toggleable display settings.
type Settings struct {
	TimeFormat model.TimeFormat
	Blur       bool
}

// Settings returns the current display settings.
func (s *State) Settings() Settings {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return Settings{TimeFormat: s.timeFormat, Blur: s.blur}
}

// SetSettings replaces the display settings, e.g. with ones saved by a
// previous run.
func (s *State) SetSettings(settings Settings) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.timeFormat = settings.TimeFormat
	s.blur = settings.Blur
}

// TimeFormat returns the active time format.
func (s *State) TimeFormat() model.TimeFormat {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.timeFormat
}

// ToggleTimeFormat switches between 12- and 24-hour display and returns the
// new format.
func (s *State) ToggleTimeFormat() model.TimeFormat {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.timeFormat = s.timeFormat.Toggled()
	return s.timeFormat
}

// Blur reports whether the backdrop is blurred.
func (s *State) Blur() bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.blur
}

// ToggleBlur flips the blur flag and returns the new value.
func (s *State) ToggleBlur() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.blur = !s.blur
	return s.blur
}

// Times returns the last computed sun and moon times.
func (s *State) Times() (model.SunTimes, model.MoonTimes) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.sunTimes, s.moonTimes
}

// Location returns the current coordinates and their display name.
func (s *State) Location() (model.Coordinates, string) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.coordinates, s.placeName
}

// Picture returns the current picture, or nil if none is available.
func (s *State) Picture() *model.Picture {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.picture
}

// Snapshot returns the last computed snapshot, or nil before the first
// update.
func (s *State) Snapshot() *Snapshot {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.snapshot
}

func (s *State) setPicture(p *model.Picture) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.picture = p
}

// claim issues the ticket for an update that sets the location.
func (s *State) claim() uint64 {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.issued++
	return s.issued
}

// follow returns the current location with the ticket it was set by, for an
// update that only recomputes it.
func (s *State) follow() (model.Coordinates, uint64) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.coordinates, s.current
}

// setSnapshot applies a location update unless one claimed later has already
// been applied. A recompute applies only while the location it followed is
// still current. Reports whether the snapshot was applied.
func (s *State) setSnapshot(snapshot *Snapshot, ticket uint64, recompute bool) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	stale := ticket < s.current
	if recompute {
		stale = ticket != s.current
	}
	if stale {
		return false
	}
	s.current = ticket
	s.snapshot = snapshot
	s.sunTimes = snapshot.Observation.Sun
	s.moonTimes = snapshot.Observation.Moon
	s.coordinates = snapshot.Observation.Coordinates
	s.placeName = snapshot.PlaceName
	return true
}
