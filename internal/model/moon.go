package model

import (
	"fmt"
	"math"
	"time"
)

// Illumination describes the moon's lit fraction and its position within the
// lunar cycle.
type Illumination struct {
	// Fraction is the illuminated fraction of the disc in [0,1].
	Fraction float64 `json:"fraction"`
	// Phase is the progress through the lunar cycle in [0,1), where 0 is new
	// moon and 0.5 is full moon.
	Phase float64 `json:"phase"`
	// Angle is the midpoint angle of the illuminated limb in radians.
	Angle float64 `json:"angle"`
}

// Position is the moon's horizontal position as seen from a location.
// Angles are in radians, the distance in kilometers.
type Position struct {
	Altitude         float64 `json:"altitude"`
	Azimuth          float64 `json:"azimuth"`
	Distance         float64 `json:"distance"`
	ParallacticAngle float64 `json:"parallacticAngle"`
}

// UpcomingPhase is the first instant at which a major phase is reached.
type UpcomingPhase struct {
	Name PhaseName `json:"name"`
	Date time.Time `json:"date"`
}

// Reference distances of the moon in kilometers.
const (
	AveragePerigeeKm   = 363300.0
	AverageApogeeKm    = 405500.0
	MoonDiameterKm     = 3474.0
	SynodicMonthDays   = 29.53
	radiansToDegrees   = 180 / math.Pi
	degreesToArcsecond = 3600
)

// MoonAgeDays approximates the days since the last new moon from the phase
// progress.
func MoonAgeDays(phase float64) float64 {
	return phase * SynodicMonthDays
}

// DistancePercentage places the given distance between average perigee (0%)
// and average apogee (100%). The result is clamped to [0,100].
func DistancePercentage(distanceKm float64) float64 {
	percentage := (distanceKm - AveragePerigeeKm) / (AverageApogeeKm - AveragePerigeeKm) * 100
	if math.IsNaN(percentage) {
		return 0
	}
	return math.Max(0, math.Min(100, percentage))
}

// AngularDiameterArcsec is the apparent diameter of the moon at the given
// distance, in arcseconds.
func AngularDiameterArcsec(distanceKm float64) float64 {
	return MoonDiameterKm / distanceKm * radiansToDegrees * degreesToArcsecond
}

// ToDegrees converts radians to degrees.
func ToDegrees(radians float64) float64 {
	return radians * radiansToDegrees
}

// IsAboveHorizon reports whether the given altitude (radians) is above the
// horizon.
func IsAboveHorizon(altitude float64) bool {
	return altitude > 0
}

// Visibility is the display text for an altitude.
func Visibility(altitude float64) string {
	if IsAboveHorizon(altitude) {
		return AboveHorizon
	}
	return BelowHorizon
}

// Visibility labels.
const (
	AboveHorizon = "Above Horizon"
	BelowHorizon = "Below Horizon"
)

// ShadowGeometry describes how the terminator shadow is drawn over the moon
// disc: shifted by Offset (fraction of the disc width, negative is left) and
// horizontally scaled by Scale. When Waning, the disc is drawn dark and the
// shadow lit.
type ShadowGeometry struct {
	Offset float64 `json:"offset"`
	Scale  float64 `json:"scale"`
	Waning bool    `json:"waning"`
}

// ShadowFor computes the ShadowGeometry for a phase progress value.
func ShadowFor(phase float64) ShadowGeometry {
	t := (phase - 0.5) * 2
	return ShadowGeometry{
		Offset: t * -0.5,
		Scale:  math.Abs(t),
		Waning: phase > 0.5,
	}
}

// FormatDegrees converts radians to degrees and formats them with two
// decimals, e.g. "12.34°".
func FormatDegrees(radians float64) string {
	return fmt.Sprintf("%.2f°", ToDegrees(radians))
}

// IsLit reports whether the point (u, v) of the unit disc is sunlit at the
// given phase progress.
// u grows to the right (east on the sky as seen from the northern
// hemisphere), v is the vertical offset; points outside the disc are never
// lit.
func IsLit(phase, u, v float64) bool {
	if u*u+v*v > 1 {
		return false
	}
	terminator := math.Sqrt(1-v*v) * math.Cos(2*math.Pi*phase)
	if phase <= 0.5 {
		return u > terminator
	}
	return u < -terminator
}
