package timezones

import (
	"fmt"
	"net/http"

	"github.com/goliatone/go-formhelpers/pkg/helpers"
	"github.com/goliatone/go-formhelpers/pkg/markup"
)

// Component bundles a Config with the handler, routing and select rendering
// built from it.
type Component struct {
	cfg Config
}

// New constructs a component with default configuration plus overrides.
func New(opts ...Option) *Component {
	return &Component{cfg: NewConfig(opts...)}
}

// Config returns the component configuration.
func (c *Component) Config() Config {
	return c.cfg
}

// Handler returns the options endpoint.
func (c *Component) Handler() http.Handler {
	return HandlerWithConfig(c.cfg)
}

// RegisterRoutes mounts the options endpoint under basePath.
func (c *Component) RegisterRoutes(mux Mux, basePath string) (string, error) {
	return registerRoutes(mux, basePath, c.cfg)
}

// Select renders a full timezone select through h.
func (c *Component) Select(h *helpers.Helpers, name string, selected any, opts helpers.Options) (markup.HTML, error) {
	if h == nil {
		return "", fmt.Errorf("timezones: helpers are required")
	}
	zones, err := c.cfg.zones()
	if err != nil {
		return "", err
	}
	return h.Select(name, Choices(zones), selected, opts), nil
}
