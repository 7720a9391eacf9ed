package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formhelpers/pkg/helpers"
	"github.com/goliatone/go-formhelpers/pkg/render/template"
	"github.com/goliatone/go-formhelpers/pkg/render/template/htmltemplate"
	"github.com/goliatone/go-formhelpers/pkg/render/template/pongo"
)

const (
	enginePongo = "pongo"
	engineHTML  = "html"
)

// newHost builds the named engine over dir and registers helpers into it.
// Templates are read on every render so serve previews follow edits.
func newHost(engine, dir, ext string, opts []helpers.Option) (template.HelperHost, error) {
	var host template.HelperHost

	switch strings.ToLower(engine) {
	case "", enginePongo:
		e, err := pongo.New(pongo.WithBaseDir(dir), pongo.WithExtension(ext), pongo.WithReload())
		if err != nil {
			return nil, err
		}
		host = e
	case engineHTML:
		host = htmltemplate.New(
			htmltemplate.WithFS(os.DirFS(dir)),
			htmltemplate.WithExtension(ext),
			htmltemplate.WithSprig(),
		)
	default:
		return nil, fmt.Errorf("unknown engine %q (want %s or %s)", engine, enginePongo, engineHTML)
	}

	if _, err := helpers.Register(host, opts...); err != nil {
		return nil, err
	}
	return host, nil
}

func defaultExtension(engine string) string {
	if strings.EqualFold(engine, engineHTML) {
		return ".tmpl"
	}
	return ".tpl"
}

// loadData reads a JSON or YAML data file. An empty path yields no data.
func loadData(path string) (map[string]any, error) {
	out := map[string]any{}
	if path == "" {
		return out, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read data %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse data %s: %w", filepath.Base(path), err)
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}
