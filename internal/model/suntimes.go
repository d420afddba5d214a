package model

import "time"

// SunTimes are the sun's rise, set and solar noon instants for a day at a
// location. A zero time means the event does not occur (polar day/night).
type SunTimes struct {
	Rise      time.Time `json:"rise"`
	Set       time.Time `json:"set"`
	SolarNoon time.Time `json:"solarNoon"`
}

// MoonTimes are the moon's rise and set instants for a day at a location.
// If the moon neither rises nor sets on that day, AlwaysUp or AlwaysDown is
// set and the respective times are zero.
type MoonTimes struct {
	Rise       time.Time `json:"rise"`
	Set        time.Time `json:"set"`
	AlwaysUp   bool      `json:"alwaysUp"`
	AlwaysDown bool      `json:"alwaysDown"`
}
