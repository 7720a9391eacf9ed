package pongo

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-formhelpers/pkg/helpers"
	"github.com/goliatone/go-formhelpers/pkg/render/template"
)

// Option configures the pongo2 engine before construction.
type Option func(*config)

type config struct {
	dir     string
	files   fs.FS
	ext     string
	globals map[string]any
	reload  bool
}

// WithBaseDir loads templates from a directory on disk.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.dir = strings.TrimSpace(dir)
	}
}

// WithFS loads templates from an fs.FS. It is consulted after WithBaseDir.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.files = files
	}
}

// WithExtension sets the extension RenderTemplate appends to bare names.
// Defaults to ".tpl".
func WithExtension(ext string) Option {
	return func(cfg *config) {
		ext = strings.TrimSpace(ext)
		switch {
		case ext == "":
		case strings.HasPrefix(ext, "."):
			cfg.ext = ext
		default:
			cfg.ext = "." + ext
		}
	}
}

// WithGlobalData adds values visible to every template. Later calls add to
// earlier ones.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		if cfg.globals == nil {
			cfg.globals = map[string]any{}
		}
		maps.Copy(cfg.globals, data)
	}
}

// WithReload parses template files on every render instead of caching them,
// so edits show up without a restart.
func WithReload() Option {
	return func(cfg *config) {
		cfg.reload = true
	}
}

// Engine is a pongo2 template set that form helpers can be registered into.
type Engine struct {
	// mu guards the set's globals, which renders read.
	mu sync.RWMutex

	set     *pongo2.TemplateSet
	ext     string
	reload  bool
	helpers *helpers.Table
}

var _ template.HelperHost = (*Engine)(nil)

// New constructs an Engine. Without a base dir or fs.FS, templates resolve
// relative to the working directory.
func New(options ...Option) (*Engine, error) {
	cfg := &config{ext: ".tpl"}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}

	loaders, err := cfg.loaders()
	if err != nil {
		return nil, err
	}

	engine := &Engine{
		set:     pongo2.NewSet("formhelpers", loaders...),
		ext:     cfg.ext,
		reload:  cfg.reload,
		helpers: helpers.NewTable(),
	}
	if engine.set.Globals == nil {
		engine.set.Globals = pongo2.Context{}
	}
	engine.set.Globals[tableKey] = engine.helpers
	engine.set.Globals[attrsFunc] = attrs
	engine.set.Globals[helperFunc] = engine.callHelper
	registerTags()
	registerFilters()

	if len(cfg.globals) > 0 {
		if err := engine.GlobalContext(cfg.globals); err != nil {
			return nil, err
		}
	}
	return engine, nil
}

func (cfg *config) loaders() ([]pongo2.TemplateLoader, error) {
	var loaders []pongo2.TemplateLoader
	if cfg.dir != "" || cfg.files == nil {
		local, err := pongo2.NewLocalFileSystemLoader(cfg.dir)
		if err != nil {
			return nil, fmt.Errorf("pongo: template dir %q: %w", cfg.dir, err)
		}
		loaders = append(loaders, local)
	}
	if cfg.files != nil {
		loaders = append(loaders, pongo2.NewFSLoader(cfg.files))
	}
	return loaders, nil
}

// Render treats name as template source when it contains pongo2 markup and
// as a template file otherwise.
func (e *Engine) Render(name string, data any, out ...io.Writer) (string, error) {
	if strings.Contains(name, "{{") || strings.Contains(name, "{%") {
		return e.RenderString(name, data, out...)
	}
	return e.RenderTemplate(name, data, out...)
}

// RenderTemplate renders a template file, appending the configured
// extension when name has none.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("pongo: engine is nil")
	}
	file := name
	if !strings.HasSuffix(file, e.ext) {
		file += e.ext
	}

	load := e.set.FromCache
	if e.reload {
		load = e.set.FromFile
	}
	tmpl, err := load(file)
	if err != nil {
		return "", fmt.Errorf("pongo: load template %q: %w", file, err)
	}
	return e.execute(tmpl, data, file, out)
}

// RenderString parses and renders template source.
func (e *Engine) RenderString(source string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("pongo: engine is nil")
	}
	tmpl, err := e.set.FromString(source)
	if err != nil {
		return "", fmt.Errorf("pongo: parse template string: %w", err)
	}
	return e.execute(tmpl, data, "inline", out)
}

func (e *Engine) execute(tmpl *pongo2.Template, data any, name string, out []io.Writer) (string, error) {
	ctx, err := contextFrom(data)
	if err != nil {
		return "", fmt.Errorf("pongo: %s data: %w", name, err)
	}

	var buf bytes.Buffer
	e.mu.RLock()
	err = tmpl.ExecuteWriter(ctx, &buf)
	e.mu.RUnlock()
	if err != nil {
		return "", fmt.Errorf("pongo: execute %s: %w", name, err)
	}

	for _, w := range out {
		if _, err := w.Write(buf.Bytes()); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// GlobalContext adds data to the values every template sees. The helper
// globals (attrs, helper) cannot be replaced.
func (e *Engine) GlobalContext(data any) error {
	if e == nil || e.set == nil {
		return errors.New("pongo: engine is nil")
	}
	if data == nil {
		return nil
	}

	globals, err := contextFrom(data)
	if err != nil {
		return fmt.Errorf("pongo: global data: %w", err)
	}
	for key := range globals {
		if isReserved(key) {
			return fmt.Errorf("pongo: global %q is reserved", key)
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.set.Globals.Update(globals)
	return nil
}
