package helpers

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultValidationErrorClass is appended to elements whose field has errors.
	DefaultValidationErrorClass = "validation-error"
	// DefaultSeparator joins a namespace and a helper name: "app-input".
	DefaultSeparator = "-"
)

// Config holds the settings a set of helpers is registered with.
type Config struct {
	// Namespace prefixes every registered helper name. Empty means no prefix.
	Namespace string
	// ValidationErrorClass is the class validation helpers add on error.
	ValidationErrorClass string
	// Separator sits between the namespace and the helper name. Engines that
	// only accept identifiers (html/template) need "_".
	Separator string
	// Sanitizer, when set, filters trusted markup passed as helper arguments
	// (markup.HTML / template.HTML labels, bodies and messages). Plain strings
	// are always escaped and block output is never filtered.
	Sanitizer *bluemonday.Policy
	// Logger receives registration diagnostics. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Option mutates a Config before helpers are built.
type Option func(*Config)

// WithNamespace sets the helper name prefix.
func WithNamespace(namespace string) Option {
	return func(cfg *Config) {
		cfg.Namespace = strings.TrimSpace(namespace)
	}
}

// WithValidationErrorClass overrides the class added by validation helpers.
func WithValidationErrorClass(class string) Option {
	return func(cfg *Config) {
		cfg.ValidationErrorClass = strings.TrimSpace(class)
	}
}

// WithSeparator overrides the namespace separator.
func WithSeparator(separator string) Option {
	return func(cfg *Config) {
		cfg.Separator = separator
	}
}

// WithSanitizer filters trusted markup arguments through policy.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(cfg *Config) {
		cfg.Sanitizer = policy
	}
}

// WithLogger sets the logger used for registration diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}

// WithConfig copies every non-zero field of other into the configuration,
// typically the result of LoadConfig.
func WithConfig(other Config) Option {
	return func(cfg *Config) {
		if other.Namespace != "" {
			cfg.Namespace = other.Namespace
		}
		if other.ValidationErrorClass != "" {
			cfg.ValidationErrorClass = other.ValidationErrorClass
		}
		if other.Separator != "" {
			cfg.Separator = other.Separator
		}
		if other.Sanitizer != nil {
			cfg.Sanitizer = other.Sanitizer
		}
		if other.Logger != nil {
			cfg.Logger = other.Logger
		}
	}
}

// NewConfig applies options over the defaults.
func NewConfig(options ...Option) Config {
	cfg := Config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.ValidationErrorClass == "" {
		cfg.ValidationErrorClass = DefaultValidationErrorClass
	}
	if cfg.Separator == "" {
		cfg.Separator = DefaultSeparator
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return cfg
}

// QualifiedName returns the name a helper is registered under.
func (c Config) QualifiedName(name string) string {
	if c.Namespace == "" {
		return name
	}
	separator := c.Separator
	if separator == "" {
		separator = DefaultSeparator
	}
	return c.Namespace + separator + name
}

type configFile struct {
	Namespace            string `json:"namespace" yaml:"namespace"`
	ValidationErrorClass string `json:"validationErrorClass" yaml:"validationErrorClass"`
	Separator            string `json:"separator" yaml:"separator"`
	Sanitize             bool   `json:"sanitize" yaml:"sanitize"`
}

// ParseConfig reads a JSON or YAML configuration document. Recognised keys are
// namespace, validationErrorClass, separator and sanitize; sanitize enables
// bluemonday's UGC policy for trusted markup arguments.
func ParseConfig(data []byte, source string) (Config, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Config{}, fmt.Errorf("helpers: config %s is empty", source)
	}

	var raw configFile
	if err := json.Unmarshal(data, &raw); err != nil {
		raw = configFile{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("helpers: parse config %s: %w", source, err)
		}
	}

	cfg := Config{
		Namespace:            strings.TrimSpace(raw.Namespace),
		ValidationErrorClass: strings.TrimSpace(raw.ValidationErrorClass),
		Separator:            raw.Separator,
	}
	if raw.Sanitize {
		cfg.Sanitizer = bluemonday.UGCPolicy()
	}
	return cfg, nil
}

// LoadConfig reads and parses the configuration file at path inside fsys.
func LoadConfig(fsys fs.FS, path string) (Config, error) {
	if fsys == nil {
		return Config{}, fmt.Errorf("helpers: config filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Config{}, fmt.Errorf("helpers: read config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}
