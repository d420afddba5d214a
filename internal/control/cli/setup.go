package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/lunadash/internal/apod"
	"github.com/ja-he/lunadash/internal/astro"
	"github.com/ja-he/lunadash/internal/cache"
	"github.com/ja-he/lunadash/internal/config"
	"github.com/ja-he/lunadash/internal/control"
	"github.com/ja-he/lunadash/internal/geo"
	"github.com/ja-he/lunadash/internal/model"
	"github.com/ja-he/lunadash/internal/publish"
)

const redisPingTimeout = 2 * time.Second

// environment is everything a command needs to run the dashboard.
type environment struct {
	BaseDir   string
	Config    config.Config
	Dashboard *control.Dashboard

	closers []func()
}

// Close releases connections opened during setup.
func (e *environment) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		e.closers[i]()
	}
}

// baseDir is '${LUNADASH_HOME}', defaulting to '${HOME}/.config/lunadash'.
func baseDir() string {
	if home := os.Getenv("LUNADASH_HOME"); home != "" {
		return strings.TrimRight(home, "/")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "lunadash")
}

// setUp loads the configuration and wires the dashboard's collaborators.
// Snapshots are published only if withPublisher is set and a broker is
// configured.
func setUp(theme config.ColorschemeType, withPublisher bool) (*environment, error) {
	env := &environment{BaseDir: baseDir()}

	cfg, err := config.Load(env.BaseDir, theme)
	if err != nil {
		return nil, fmt.Errorf("could not load config from '%s' (%w)", env.BaseDir, err)
	}
	env.Config = cfg

	format, err := model.ParseTimeFormat(cfg.TimeFormat)
	if err != nil {
		return nil, err
	}
	configured, err := cfg.Location.Coordinates()
	if err != nil {
		return nil, err
	}
	locateTimeout, err := cfg.Locate.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	scanOptions, err := cfg.Scan.Options()
	if err != nil {
		return nil, err
	}
	calculator, err := astro.NewCalculator(astro.LibrarySource{}, scanOptions)
	if err != nil {
		return nil, err
	}

	store := env.store(cfg.Redis)

	deps := control.Dependencies{
		Pictures: apod.NewClient(
			cfg.APOD.Key,
			apod.WithEndpoint(cfg.APOD.Endpoint),
			apod.WithCache(store),
		),
		Locator: geo.NewLocator(geo.LocatorOptions{
			Configured: configured,
			Endpoint:   cfg.Locate.Endpoint,
			Timeout:    locateTimeout,
		}),
		Geocoder: geo.NewGeocoder(geo.GeocoderOptions{
			Endpoint:  cfg.Geocoding.Endpoint,
			UserAgent: cfg.Geocoding.UserAgent,
			Cache:     store,
		}),
		Calculator: calculator,
	}
	if withPublisher && cfg.MQTT.Broker != "" {
		publisher, err := publish.NewMQTT(publish.MQTTOptions{
			Broker:   cfg.MQTT.Broker,
			ClientID: cfg.MQTT.ClientID,
			Topic:    cfg.MQTT.Topic,
			Username: cfg.MQTT.Username,
			Password: cfg.MQTT.Password,
		})
		if err != nil {
			log.Warn().Err(err).Msg("not publishing snapshots")
		} else {
			deps.Publisher = publisher
			env.closers = append(env.closers, publisher.Close)
		}
	}

	env.Dashboard = control.NewDashboard(deps, control.NewState(format))
	return env, nil
}

// store returns the Redis cache if one is configured and reachable, and an
// in-process cache otherwise.
func (e *environment) store(cfg config.Redis) cache.Store {
	if cfg.Address == "" {
		return cache.NewMemory()
	}

	r := cache.NewRedis(cache.RedisOptions{
		Address:  cfg.Address,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
		Prefix:   "lunadash:",
	})
	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := r.Ping(ctx); err != nil {
		log.Warn().Err(err).Str("address", cfg.Address).Msg("falling back to in-process cache")
		_ = r.Close()
		return cache.NewMemory()
	}
	log.Debug().Str("address", cfg.Address).Msg("using redis cache")
	e.closers = append(e.closers, func() { _ = r.Close() })
	return r
}

func themeFromFlag(flag string) config.ColorschemeType {
	if flag == "light" {
		return config.Light
	}
	return config.Dark
}
