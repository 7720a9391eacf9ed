package pongo

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-formhelpers/pkg/helpers"
	"github.com/goliatone/go-formhelpers/pkg/markup"
)

// FilterFunc receives the filtered value and the filter parameter (nil when
// none is given).
type FilterFunc func(input any, param any) (any, error)

var registerFiltersOnce sync.Once

// registerFilters installs the error collection filters:
//
//	{% if errors|has_error:"email" %}...{% endif %}
//	{{ errors|messages:"email"|join:", " }}
func registerFilters() {
	registerFiltersOnce.Do(func() {
		_ = registerFilter("has_error", func(in any, field any) (any, error) {
			return helpers.HasError(in, markup.String(field)), nil
		})
		_ = registerFilter("messages", func(in any, field any) (any, error) {
			return helpers.Messages(in, markup.String(field)), nil
		})
	})
}

// RegisterFilter registers a pongo2 filter. Filters are process-wide in
// pongo2; registering an existing name fails.
func (e *Engine) RegisterFilter(name string, fn FilterFunc) error {
	return registerFilter(name, fn)
}

func registerFilter(name string, fn FilterFunc) error {
	if strings.TrimSpace(name) == "" || fn == nil {
		return errors.New("pongo: filter name and function required")
	}
	if pongo2.FilterExists(name) {
		return fmt.Errorf("pongo: filter %q already exists", name)
	}

	return pongo2.RegisterFilter(name, func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var paramValue any
		if param != nil {
			paramValue = param.Interface()
		}
		out, err := fn(in.Interface(), paramValue)
		if err != nil {
			return nil, &pongo2.Error{Sender: "filter:" + name, OrigError: err}
		}
		return pongo2.AsValue(out), nil
	})
}
