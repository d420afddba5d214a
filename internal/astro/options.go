package astro

import (
	"fmt"
	"time"
)

// Options control the upcoming-phase search.
type Options struct {
	// Step is the increment between two evaluated instants.
	Step time.Duration
	// Horizon bounds how far ahead of the start the search looks.
	Horizon time.Duration
}

// DefaultOptions steps hourly over 70 days.
func DefaultOptions() Options {
	return Options{
		Step:    time.Hour,
		Horizon: 70 * 24 * time.Hour,
	}
}

// Validate checks that step and horizon are usable.
func (o Options) Validate() error {
	if o.Step <= 0 {
		return fmt.Errorf("step must be positive (got %s)", o.Step)
	}
	if o.Horizon <= 0 {
		return fmt.Errorf("horizon must be positive (got %s)", o.Horizon)
	}
	if o.Horizon < o.Step {
		return fmt.Errorf("horizon %s is shorter than step %s", o.Horizon, o.Step)
	}
	return nil
}
