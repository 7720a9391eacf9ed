package timezones

import (
	"net/http"
	"slices"
)

// EmptySearch controls what a blank query returns.
type EmptySearch string

const (
	EmptySearchNone EmptySearch = "none"
	EmptySearchTop  EmptySearch = "top"
)

const (
	defaultRoutePath   = "/api/timezones"
	defaultLimit       = 50
	defaultMaxLimit    = 200
	defaultSearchParam = "q"
	defaultLimitParam  = "limit"
	defaultSelected    = "selected"
)

// GuardFunc can reject a request before any zone is searched. Returning a
// StatusError picks the response code.
type GuardFunc func(r *http.Request) error

// Config drives search and the options endpoint.
type Config struct {
	RoutePath     string
	SearchParam   string
	LimitParam    string
	SelectedParam string
	DefaultLimit  int
	MaxLimit      int
	EmptySearch   EmptySearch
	Guard         GuardFunc

	// Zones overrides the embedded list when non-nil.
	Zones []string
}

// Option mutates a Config.
type Option func(*Config)

// NewConfig applies opts over the defaults and fills any zero values back in.
func NewConfig(opts ...Option) Config {
	cfg := Config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg.normalized()
}

func (c Config) normalized() Config {
	if c.RoutePath == "" {
		c.RoutePath = defaultRoutePath
	}
	if c.SearchParam == "" {
		c.SearchParam = defaultSearchParam
	}
	if c.LimitParam == "" {
		c.LimitParam = defaultLimitParam
	}
	if c.SelectedParam == "" {
		c.SelectedParam = defaultSelected
	}
	if c.DefaultLimit <= 0 {
		c.DefaultLimit = defaultLimit
	}
	if c.MaxLimit <= 0 {
		c.MaxLimit = defaultMaxLimit
	}
	if c.EmptySearch == "" {
		c.EmptySearch = EmptySearchNone
	}
	return c
}

func WithRoutePath(path string) Option {
	return func(c *Config) { c.RoutePath = path }
}

func WithSearchParam(name string) Option {
	return func(c *Config) { c.SearchParam = name }
}

func WithLimitParam(name string) Option {
	return func(c *Config) { c.LimitParam = name }
}

func WithSelectedParam(name string) Option {
	return func(c *Config) { c.SelectedParam = name }
}

func WithDefaultLimit(limit int) Option {
	return func(c *Config) { c.DefaultLimit = limit }
}

func WithMaxLimit(limit int) Option {
	return func(c *Config) { c.MaxLimit = limit }
}

func WithEmptySearch(mode EmptySearch) Option {
	return func(c *Config) { c.EmptySearch = mode }
}

func WithGuard(guard GuardFunc) Option {
	return func(c *Config) { c.Guard = guard }
}

// WithZones replaces the embedded list. A nil slice restores it.
func WithZones(zones []string) Option {
	return func(c *Config) { c.Zones = slices.Clone(zones) }
}

// limit resolves a requested limit: zero means the default, negatives mean
// nothing, and everything is capped at MaxLimit.
func (c Config) limit(requested int) int {
	switch {
	case requested < 0:
		return 0
	case requested == 0:
		requested = c.DefaultLimit
	}
	return min(requested, c.MaxLimit)
}

func (c Config) zones() ([]string, error) {
	if c.Zones != nil {
		return c.Zones, nil
	}
	return DefaultZones()
}
