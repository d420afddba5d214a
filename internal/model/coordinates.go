package model

import "fmt"

// Coordinates is a geographic location in degrees (WGS84).
type Coordinates struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// FallbackCoordinates is the location used whenever no live location can be
// determined (Berlin).
var FallbackCoordinates = Coordinates{Latitude: 52.5200, Longitude: 13.4050}

// FallbackPlaceName is the display name of FallbackCoordinates.
const FallbackPlaceName = "Berlin, DE"

// IsFallback reports whether the coordinates are exactly the fallback
// coordinates.
func (c Coordinates) IsFallback() bool {
	return c == FallbackCoordinates
}

// Valid reports whether latitude and longitude are within their ranges.
func (c Coordinates) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// String returns the coordinates as they are shown when no place name is
// known, e.g. "52.52°, 13.40°".
func (c Coordinates) String() string {
	return fmt.Sprintf("%.2f°, %.2f°", c.Latitude, c.Longitude)
}
