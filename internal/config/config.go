package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/ja-he/lunadash/internal/astro"
	"github.com/ja-he/lunadash/internal/input"
	"github.com/ja-he/lunadash/internal/model"
)

// Config is the configuration data as present in a config file at
// '${LUNADASH_HOME}/config.yaml'.
type Config struct {
	Stylesheet Stylesheet     `yaml:"stylesheet"`
	Location   Location       `yaml:"location"`
	TimeFormat string         `yaml:"time-format"`
	Scan       Scan           `yaml:"scan"`
	APOD       APOD           `yaml:"apod"`
	Geocoding  Geocoding      `yaml:"geocoding"`
	Locate     Locate         `yaml:"locate"`
	Redis      Redis          `yaml:"redis"`
	MQTT       MQTT           `yaml:"mqtt"`
	Server     Server         `yaml:"server"`
	Keys       input.Bindings `yaml:"keys"`
}

// A Stylesheet is the stylesheet contents defined in a config file.
type Stylesheet struct {
	Normal            Styling `yaml:"normal"`
	NormalEmphasized  Styling `yaml:"normal-emphasized"`
	Panel             Styling `yaml:"panel"`
	PanelTitle        Styling `yaml:"panel-title"`
	Label             Styling `yaml:"label"`
	MoonLit           Styling `yaml:"moon-lit"`
	MoonDark          Styling `yaml:"moon-dark"`
	AboveHorizon      Styling `yaml:"above-horizon"`
	BelowHorizon      Styling `yaml:"below-horizon"`
	DistanceBar       Styling `yaml:"distance-bar"`
	Status            Styling `yaml:"status"`
	Popup             Styling `yaml:"popup"`
	Prompt            Styling `yaml:"prompt"`
	Alert             Styling `yaml:"alert"`
	LogDefault        Styling `yaml:"log-default"`
	LogTitleBox       Styling `yaml:"log-title-box"`
	LogEntryTypeError Styling `yaml:"log-entry-type-error"`
	LogEntryTypeWarn  Styling `yaml:"log-entry-type-warn"`
	LogEntryTypeInfo  Styling `yaml:"log-entry-type-info"`
	LogEntryTypeDebug Styling `yaml:"log-entry-type-debug"`
	LogEntryTypeTrace Styling `yaml:"log-entry-type-trace"`
	LogEntryLocation  Styling `yaml:"log-entry-location"`
	LogEntryTime      Styling `yaml:"log-entry-time"`
	Help              Styling `yaml:"help"`
}

// A Styling is a styling as defined in a config file.
// It must contain fore- and background colors and can optionally specify font
// style (bold, italic, underlined).
type Styling struct {
	Fg    string     `yaml:"fg"`
	Bg    string     `yaml:"bg"`
	Style *FontStyle `yaml:"style"`
}

// A FontStyle can be any combination of bold, italic, and underlined.
type FontStyle struct {
	Bold       bool `yaml:"bold,omitempty"`
	Italic     bool `yaml:"italic,omitempty"`
	Underlined bool `yaml:"underlined,omitempty"`
}

// Location pins the dashboard to fixed coordinates instead of looking them
// up.
type Location struct {
	Latitude  *float64 `yaml:"latitude,omitempty"`
	Longitude *float64 `yaml:"longitude,omitempty"`
}

// Scan configures the upcoming-phase search. Durations are in
// time.ParseDuration format.
type Scan struct {
	Step    string `yaml:"step,omitempty"`
	Horizon string `yaml:"horizon,omitempty"`
}

// APOD configures the picture-of-the-day API.
type APOD struct {
	Key      string `yaml:"key,omitempty"`
	Endpoint string `yaml:"endpoint,omitempty"`
}

// Geocoding configures the place search service.
type Geocoding struct {
	Endpoint  string `yaml:"endpoint,omitempty"`
	UserAgent string `yaml:"user-agent,omitempty"`
}

// Locate configures the IP geolocation service.
type Locate struct {
	Endpoint string `yaml:"endpoint,omitempty"`
	Timeout  string `yaml:"timeout,omitempty"`
}

// Redis configures an optional shared cache; empty address means in-process
// caching.
type Redis struct {
	Address  string `yaml:"address,omitempty"`
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
	DB       int    `yaml:"db,omitempty"`
}

// MQTT configures optional snapshot publishing; empty broker disables it.
type MQTT struct {
	Broker   string `yaml:"broker,omitempty"`
	Topic    string `yaml:"topic,omitempty"`
	ClientID string `yaml:"client-id,omitempty"`
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
}

// Server configures the HTTP surface.
type Server struct {
	Address      string   `yaml:"address,omitempty"`
	AllowOrigins []string `yaml:"allow-origins,omitempty"`
}

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment a given default configuration.
func ParseConfigAugmentDefaults(defaultTheme ColorschemeType, yamlData []byte) (Config, error) {
	defaultConfig := Default(defaultTheme)

	parsedConfig := Config{}
	err := yaml.Unmarshal(yamlData, &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml (%w)", err)
	}

	return defaultConfig.augmentWith(parsedConfig), nil
}

// Load reads '<baseDir>/config.yaml' (a missing file yields the defaults)
// and applies environment overrides. '.env' files in the working directory
// and in baseDir are loaded into the environment first; variables already set
// take precedence over them.
func Load(baseDir string, theme ColorschemeType) (Config, error) {
	LoadDotEnv(baseDir)

	yamlData, err := os.ReadFile(filepath.Join(baseDir, "config.yaml"))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Default(theme), fmt.Errorf("can't read config file (%w)", err)
		}
		yamlData = nil
	}

	c, err := ParseConfigAugmentDefaults(theme, yamlData)
	if err != nil {
		return c, err
	}
	if err := c.ApplyEnv(os.Getenv); err != nil {
		return c, err
	}
	return c, nil
}

// LoadDotEnv loads '.env' from the working directory and from baseDir, where
// present.
func LoadDotEnv(baseDir string) {
	for _, p := range []string{".env", filepath.Join(baseDir, ".env")} {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			log.Warn().Err(err).Str("file", p).Msg("could not load env file")
		}
	}
}

// ApplyEnv overrides values from the environment (NASA_API_KEY, LATITUDE,
// LONGITUDE, REDIS_ADDRESS, MQTT_BROKER, SERVER_ADDRESS).
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv("NASA_API_KEY"); v != "" {
		c.APOD.Key = v
	}
	if v := getenv("REDIS_ADDRESS"); v != "" {
		c.Redis.Address = v
	}
	if v := getenv("MQTT_BROKER"); v != "" {
		c.MQTT.Broker = v
	}
	if v := getenv("SERVER_ADDRESS"); v != "" {
		c.Server.Address = v
	}

	lat, lon := getenv("LATITUDE"), getenv("LONGITUDE")
	if lat != "" && lon != "" {
		latF, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
		if err != nil {
			return fmt.Errorf("could not parse LATITUDE '%s' (%w)", lat, err)
		}
		lonF, err := strconv.ParseFloat(strings.TrimSpace(lon), 64)
		if err != nil {
			return fmt.Errorf("could not parse LONGITUDE '%s' (%w)", lon, err)
		}
		c.Location.Latitude, c.Location.Longitude = &latF, &lonF
	}
	return nil
}

// Coordinates returns the configured coordinates, if both are set.
func (l Location) Coordinates() (*model.Coordinates, error) {
	if l.Latitude == nil || l.Longitude == nil {
		return nil, nil
	}
	c := model.Coordinates{Latitude: *l.Latitude, Longitude: *l.Longitude}
	if !c.Valid() {
		return nil, fmt.Errorf("configured coordinates %s out of range", c)
	}
	return &c, nil
}

// Options converts the scan settings into search options.
func (s Scan) Options() (astro.Options, error) {
	opts := astro.DefaultOptions()
	var err error
	if s.Step != "" {
		if opts.Step, err = time.ParseDuration(s.Step); err != nil {
			return opts, fmt.Errorf("invalid scan step '%s' (%w)", s.Step, err)
		}
	}
	if s.Horizon != "" {
		if opts.Horizon, err = time.ParseDuration(s.Horizon); err != nil {
			return opts, fmt.Errorf("invalid scan horizon '%s' (%w)", s.Horizon, err)
		}
	}
	return opts, opts.Validate()
}

// TimeoutDuration parses the locate timeout; zero if unset.
func (l Locate) TimeoutDuration() (time.Duration, error) {
	if l.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(l.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid locate timeout '%s' (%w)", l.Timeout, err)
	}
	return d, nil
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	result.Stylesheet = base.Stylesheet.augmentWith(augment.Stylesheet)

	if augment.Location.Latitude != nil && augment.Location.Longitude != nil {
		result.Location = augment.Location
	}
	overwriteStringIfDefined(&result.TimeFormat, augment.TimeFormat)
	overwriteStringIfDefined(&result.Scan.Step, augment.Scan.Step)
	overwriteStringIfDefined(&result.Scan.Horizon, augment.Scan.Horizon)
	overwriteStringIfDefined(&result.APOD.Key, augment.APOD.Key)
	overwriteStringIfDefined(&result.APOD.Endpoint, augment.APOD.Endpoint)
	overwriteStringIfDefined(&result.Geocoding.Endpoint, augment.Geocoding.Endpoint)
	overwriteStringIfDefined(&result.Geocoding.UserAgent, augment.Geocoding.UserAgent)
	overwriteStringIfDefined(&result.Locate.Endpoint, augment.Locate.Endpoint)
	overwriteStringIfDefined(&result.Locate.Timeout, augment.Locate.Timeout)
	if augment.Redis.Address != "" {
		result.Redis = augment.Redis
	}
	if augment.MQTT.Broker != "" {
		topic := result.MQTT.Topic
		result.MQTT = augment.MQTT
		overwriteStringIfDefined(&topic, augment.MQTT.Topic)
		result.MQTT.Topic = topic
	}
	overwriteStringIfDefined(&result.Server.Address, augment.Server.Address)
	if len(augment.Server.AllowOrigins) > 0 {
		result.Server.AllowOrigins = augment.Server.AllowOrigins
	}
	if len(augment.Keys) > 0 {
		result.Keys = make(input.Bindings, len(base.Keys)+len(augment.Keys))
		for k, a := range base.Keys {
			result.Keys[k] = a
		}
		for k, a := range augment.Keys {
			result.Keys[k] = a
		}
	}

	return result
}

func overwriteStringIfDefined(s *string, augment string) {
	if augment != "" {
		*s = augment
	}
}

func (base Stylesheet) augmentWith(augment Stylesheet) Stylesheet {
	result := base

	result.Normal.overwriteIfDefined(augment.Normal)
	result.NormalEmphasized.overwriteIfDefined(augment.NormalEmphasized)
	result.Panel.overwriteIfDefined(augment.Panel)
	result.PanelTitle.overwriteIfDefined(augment.PanelTitle)
	result.Label.overwriteIfDefined(augment.Label)
	result.MoonLit.overwriteIfDefined(augment.MoonLit)
	result.MoonDark.overwriteIfDefined(augment.MoonDark)
	result.AboveHorizon.overwriteIfDefined(augment.AboveHorizon)
	result.BelowHorizon.overwriteIfDefined(augment.BelowHorizon)
	result.DistanceBar.overwriteIfDefined(augment.DistanceBar)
	result.Status.overwriteIfDefined(augment.Status)
	result.Popup.overwriteIfDefined(augment.Popup)
	result.Prompt.overwriteIfDefined(augment.Prompt)
	result.Alert.overwriteIfDefined(augment.Alert)
	result.LogDefault.overwriteIfDefined(augment.LogDefault)
	result.LogTitleBox.overwriteIfDefined(augment.LogTitleBox)
	result.LogEntryTypeError.overwriteIfDefined(augment.LogEntryTypeError)
	result.LogEntryTypeWarn.overwriteIfDefined(augment.LogEntryTypeWarn)
	result.LogEntryTypeInfo.overwriteIfDefined(augment.LogEntryTypeInfo)
	result.LogEntryTypeDebug.overwriteIfDefined(augment.LogEntryTypeDebug)
	result.LogEntryTypeTrace.overwriteIfDefined(augment.LogEntryTypeTrace)
	result.LogEntryLocation.overwriteIfDefined(augment.LogEntryLocation)
	result.LogEntryTime.overwriteIfDefined(augment.LogEntryTime)
	result.Help.overwriteIfDefined(augment.Help)

	return result
}

func (s *Styling) overwriteIfDefined(augment Styling) {
	if augment.Fg != "" && augment.Bg != "" {
		s.Fg = augment.Fg
		s.Bg = augment.Bg
	}
	if augment.Style != nil {
		if s.Style == nil {
			s.Style = &FontStyle{}
		}
		s.Style.Bold = augment.Style.Bold
		s.Style.Italic = augment.Style.Italic
		s.Style.Underlined = augment.Style.Underlined
	}
}

// A ColorschemeType can either be light or dark.
type ColorschemeType = int

const (
	_ ColorschemeType = iota
	Dark
	Light
)
