package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/ja-he/lunadash/internal/cache"
	"github.com/ja-he/lunadash/internal/model"
)

// DefaultGeocodeEndpoint is the public Nominatim instance.
const DefaultGeocodeEndpoint = "https://nominatim.openstreetmap.org"

// DefaultUserAgent identifies requests to the geocoding service.
const DefaultUserAgent = "lunadash (https://github.com/ja-he/lunadash)"

// UnknownArea is used as the place when a reverse lookup has no city, town
// or village.
const UnknownArea = "Unknown Area"

const geocodeCacheTTL = 7 * 24 * time.Hour

// ErrNoResults is returned when a search matches nothing.
var ErrNoResults = errors.New("no results")

// GeocoderOptions configure a Geocoder.
type GeocoderOptions struct {
	Endpoint   string
	UserAgent  string
	HTTPClient *http.Client
	Cache      cache.Store
	// Limit is the allowed request rate; zero means one request per second.
	Limit rate.Limit
}

// Geocoder converts between place names and coordinates via Nominatim.
type Geocoder struct {
	endpoint  string
	userAgent string
	http      *http.Client
	cache     cache.Store
	limiter   *rate.Limiter
}

// NewGeocoder creates a geocoder, filling unset options with defaults.
func NewGeocoder(opts GeocoderOptions) *Geocoder {
	g := &Geocoder{
		endpoint:  strings.TrimSuffix(opts.Endpoint, "/"),
		userAgent: opts.UserAgent,
		http:      opts.HTTPClient,
		cache:     opts.Cache,
	}
	if g.endpoint == "" {
		g.endpoint = DefaultGeocodeEndpoint
	}
	if g.userAgent == "" {
		g.userAgent = DefaultUserAgent
	}
	if g.http == nil {
		g.http = &http.Client{Timeout: 10 * time.Second}
	}
	if g.cache == nil {
		g.cache = cache.NewMemory()
	}
	limit := opts.Limit
	if limit == 0 {
		limit = rate.Every(time.Second)
	}
	g.limiter = rate.NewLimiter(limit, 1)
	return g
}

type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

type reverseResult struct {
	Error   string `json:"error"`
	Address struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		Country string `json:"country"`
	} `json:"address"`
}

// Search returns the coordinates of the best match for a free-form query.
func (g *Geocoder) Search(ctx context.Context, query string) (model.Coordinates, error) {
	query = strings.TrimSpace(query)
	key := "geo:search:" + strings.ToLower(query)

	var coords model.Coordinates
	if ok, err := cache.GetJSON(ctx, g.cache, key, &coords); err == nil && ok {
		return coords, nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	var results []searchResult
	if err := g.get(ctx, "/search", params, &results); err != nil {
		return model.Coordinates{}, err
	}
	if len(results) == 0 {
		return model.Coordinates{}, ErrNoResults
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return model.Coordinates{}, fmt.Errorf("invalid latitude '%s' in search result (%w)", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return model.Coordinates{}, fmt.Errorf("invalid longitude '%s' in search result (%w)", results[0].Lon, err)
	}
	coords = model.Coordinates{Latitude: lat, Longitude: lon}

	log.Debug().Str("query", query).Str("match", results[0].DisplayName).Stringer("coordinates", coords).Msg("geocoded")
	if err := cache.SetJSON(ctx, g.cache, key, coords, geocodeCacheTTL); err != nil {
		log.Warn().Err(err).Msg("could not cache search result")
	}
	return coords, nil
}

// Reverse returns a "place, country" name for the coordinates.
func (g *Geocoder) Reverse(ctx context.Context, at model.Coordinates) (string, error) {
	key := fmt.Sprintf("geo:reverse:%.4f,%.4f", at.Latitude, at.Longitude)

	var name string
	if ok, err := cache.GetJSON(ctx, g.cache, key, &name); err == nil && ok {
		return name, nil
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("lat", strconv.FormatFloat(at.Latitude, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(at.Longitude, 'f', -1, 64))

	var result reverseResult
	if err := g.get(ctx, "/reverse", params, &result); err != nil {
		return "", err
	}
	if result.Error != "" {
		return "", fmt.Errorf("reverse geocoding failed: '%s'", result.Error)
	}

	place := firstNonEmpty(result.Address.City, result.Address.Town, result.Address.Village, UnknownArea)
	name = place + ", " + result.Address.Country

	if err := cache.SetJSON(ctx, g.cache, key, name, geocodeCacheTTL); err != nil {
		log.Warn().Err(err).Msg("could not cache reverse result")
	}
	return name, nil
}

// PlaceName returns the display name for the coordinates.
// The fallback coordinates are named without a lookup; if the lookup fails
// the coordinates themselves are shown.
func (g *Geocoder) PlaceName(ctx context.Context, at model.Coordinates) string {
	if at.IsFallback() {
		return model.FallbackPlaceName
	}
	name, err := g.Reverse(ctx, at)
	if err != nil {
		log.Warn().Err(err).Stringer("coordinates", at).Msg("reverse geocoding failed")
		return at.String()
	}
	return name
}

func (g *Geocoder) get(ctx context.Context, path string, params url.Values, v any) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("geocoding rate limit wait aborted (%w)", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("could not build geocoding request (%w)", err)
	}
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		return fmt.Errorf("geocoding request failed (%w)", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("geocoding request returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("could not decode geocoding response (%w)", err)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
