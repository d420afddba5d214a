// Package geo determines the viewer's location and converts between place
// names and coordinates.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/lunadash/internal/model"
)

// DefaultLocateEndpoint is the IP geolocation service.
const DefaultLocateEndpoint = "http://ip-api.com/json"

// DefaultLocateTimeout bounds how long locating may take before falling back.
const DefaultLocateTimeout = 8 * time.Second

// LocatorOptions configure a Locator.
type LocatorOptions struct {
	// Configured coordinates take precedence over any lookup.
	Configured *model.Coordinates
	Endpoint   string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Locator determines the viewer's coordinates.
type Locator struct {
	configured *model.Coordinates
	endpoint   string
	timeout    time.Duration
	http       *http.Client
}

// NewLocator creates a locator, filling unset options with defaults.
func NewLocator(opts LocatorOptions) *Locator {
	l := &Locator{
		configured: opts.Configured,
		endpoint:   opts.Endpoint,
		timeout:    opts.Timeout,
		http:       opts.HTTPClient,
	}
	if l.endpoint == "" {
		l.endpoint = DefaultLocateEndpoint
	}
	if l.timeout <= 0 {
		l.timeout = DefaultLocateTimeout
	}
	if l.http == nil {
		l.http = http.DefaultClient
	}
	return l
}

type ipAPIResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	City    string  `json:"city"`
	Country string  `json:"countryCode"`
}

// Locate returns the configured coordinates if set, otherwise the coordinates
// of the IP lookup. Any failure yields model.FallbackCoordinates.
func (l *Locator) Locate(ctx context.Context) model.Coordinates {
	if l.configured != nil {
		return *l.configured
	}

	coords, err := l.lookup(ctx)
	if err != nil {
		log.Warn().Err(err).Str("fallback", model.FallbackPlaceName).Msg("could not determine location, using fallback")
		return model.FallbackCoordinates
	}
	log.Info().Stringer("coordinates", coords).Msg("determined location")
	return coords
}

func (l *Locator) lookup(ctx context.Context) (model.Coordinates, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.endpoint, nil)
	if err != nil {
		return model.Coordinates{}, fmt.Errorf("could not build location request (%w)", err)
	}
	resp, err := l.http.Do(req)
	if err != nil {
		return model.Coordinates{}, fmt.Errorf("location request failed (%w)", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.Coordinates{}, fmt.Errorf("location request returned status %d", resp.StatusCode)
	}

	var r ipAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return model.Coordinates{}, fmt.Errorf("could not decode location response (%w)", err)
	}
	if r.Status != "" && r.Status != "success" {
		return model.Coordinates{}, fmt.Errorf("location lookup unsuccessful: '%s'", r.Message)
	}

	coords := model.Coordinates{Latitude: r.Lat, Longitude: r.Lon}
	if !coords.Valid() {
		return model.Coordinates{}, fmt.Errorf("location lookup returned invalid coordinates %s", coords)
	}
	return coords, nil
}
