// Package formhelpers registers HTML form helpers (form, input, select,
// field_errors and their validation variants) into template engines.
//
// Most callers pick an engine constructor:
//
//	engine, err := formhelpers.NewPongo(nil, formhelpers.WithNamespace("app"))
//	out, err := engine.RenderString(`{% formhelper "app-input" "email" %}`, nil)
//
// Any engine implementing helpers.Registrar can be passed to Register.
package formhelpers

import (
	"github.com/goliatone/go-formhelpers/pkg/helpers"
	"github.com/goliatone/go-formhelpers/pkg/render/template/htmltemplate"
	"github.com/goliatone/go-formhelpers/pkg/render/template/pongo"
)

// Option configures the registered helpers.
type Option = helpers.Option

var (
	WithNamespace            = helpers.WithNamespace
	WithValidationErrorClass = helpers.WithValidationErrorClass
	WithSeparator            = helpers.WithSeparator
	WithSanitizer            = helpers.WithSanitizer
	WithLogger               = helpers.WithLogger
	WithConfig               = helpers.WithConfig
)

// Register binds every helper into host.
func Register(host helpers.Registrar, opts ...Option) (*helpers.Helpers, error) {
	return helpers.Register(host, opts...)
}

// NewPongo builds a pongo2 engine with the helpers registered.
func NewPongo(engineOpts []pongo.Option, opts ...Option) (*pongo.Engine, error) {
	engine, err := pongo.New(engineOpts...)
	if err != nil {
		return nil, err
	}
	if _, err := helpers.Register(engine, opts...); err != nil {
		return nil, err
	}
	return engine, nil
}

// NewHTMLTemplate builds an html/template host with the helpers registered.
// Namespaced helpers need WithSeparator("_") here.
func NewHTMLTemplate(hostOpts []htmltemplate.Option, opts ...Option) (*htmltemplate.Host, error) {
	host := htmltemplate.New(hostOpts...)
	if _, err := helpers.Register(host, opts...); err != nil {
		return nil, err
	}
	return host, nil
}
