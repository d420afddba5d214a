// Package apod fetches the astronomy picture of the day.
package apod

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/lunadash/internal/cache"
	"github.com/ja-he/lunadash/internal/model"
)

// DefaultEndpoint is NASA's picture-of-the-day API.
const DefaultEndpoint = "https://api.nasa.gov/planetary/apod"

// DemoKey is NASA's rate-limited key for unregistered use.
const DemoKey = "DEMO_KEY"

const cacheKey = "apod:today"

// Client fetches the picture of the day, caching it until the next scheduled
// update.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
	cache    cache.Store
	now      func() time.Time
}

// Option modifies a Client.
type Option func(*Client)

// WithEndpoint overrides the API endpoint.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) { c.endpoint = endpoint }
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithCache sets the store used to cache responses.
func WithCache(s cache.Store) Option {
	return func(c *Client) { c.cache = s }
}

// WithClock sets the clock used to determine cache expiry.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// NewClient creates a client for the given API key. An empty key is replaced
// by DemoKey.
func NewClient(apiKey string, opts ...Option) *Client {
	if apiKey == "" {
		apiKey = DemoKey
	}
	c := &Client{
		endpoint: DefaultEndpoint,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: 15 * time.Second},
		cache:    cache.NewMemory(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch returns today's picture record.
func (c *Client) Fetch(ctx context.Context) (*model.Picture, error) {
	var cached model.Picture
	ok, err := cache.GetJSON(ctx, c.cache, cacheKey, &cached)
	if err != nil {
		log.Warn().Err(err).Msg("could not read cached picture")
	}
	if ok {
		log.Debug().Str("date", cached.Date).Msg("using cached picture")
		return &cached, nil
	}

	picture, err := c.request(ctx)
	if err != nil {
		return nil, err
	}

	now := c.now()
	ttl := model.NextPictureUpdate(now).Sub(now)
	if err := cache.SetJSON(ctx, c.cache, cacheKey, picture, ttl); err != nil {
		log.Warn().Err(err).Msg("could not cache picture")
	}
	return picture, nil
}

func (c *Client) request(ctx context.Context) (*model.Picture, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid picture endpoint '%s' (%w)", c.endpoint, err)
	}
	q := u.Query()
	q.Set("api_key", c.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("could not build picture request (%w)", err)
	}

	log.Debug().Str("endpoint", c.endpoint).Msg("requesting picture of the day")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("picture request failed (%w)", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("picture request returned status %d", resp.StatusCode)
	}

	var picture model.Picture
	if err := json.NewDecoder(resp.Body).Decode(&picture); err != nil {
		return nil, fmt.Errorf("could not decode picture response (%w)", err)
	}
	return &picture, nil
}
