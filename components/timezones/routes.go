package timezones

import (
	"fmt"
	"net/http"
	"strings"
)

// Mux is satisfied by *http.ServeMux and chi.Router.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// MountPath joins basePath and the configured route path.
func MountPath(basePath string, opts ...Option) string {
	return joinPath(basePath, NewConfig(opts...).RoutePath)
}

// RegisterRoutes mounts the options endpoint under basePath and returns the
// registered pattern.
func RegisterRoutes(mux Mux, basePath string, opts ...Option) (string, error) {
	return registerRoutes(mux, basePath, NewConfig(opts...))
}

func registerRoutes(mux Mux, basePath string, cfg Config) (string, error) {
	if mux == nil {
		return "", fmt.Errorf("timezones: missing mux")
	}
	pattern := joinPath(basePath, cfg.RoutePath)
	mux.Handle(pattern, HandlerWithConfig(cfg))
	return pattern, nil
}

func joinPath(basePath, routePath string) string {
	routePath = "/" + strings.TrimLeft(strings.TrimSpace(routePath), "/")
	basePath = strings.Trim(strings.TrimSpace(basePath), "/")
	if basePath == "" {
		return routePath
	}
	return "/" + basePath + routePath
}
