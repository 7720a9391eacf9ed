package htmltemplate

import (
	"bytes"
	"errors"
	"fmt"
	htmltpl "html/template"
	"io"
	"io/fs"
	"maps"
	"path"
	"regexp"
	"strings"
	"sync"

	"github.com/Masterminds/sprig/v3"

	"github.com/goliatone/go-formhelpers/pkg/helpers"
	"github.com/goliatone/go-formhelpers/pkg/markup"
	"github.com/goliatone/go-formhelpers/pkg/render/template"
)

const (
	attrsFunc    = "attrs"
	nestedFunc   = "nested"
	globalFunc   = "global"
	hasErrorFunc = "has_error"
	messagesFunc = "messages"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var keywords = map[string]struct{}{
	"block": {}, "break": {}, "continue": {}, "define": {}, "else": {}, "end": {},
	"if": {}, "nil": {}, "range": {}, "template": {}, "with": {},
}

// Option configures a Host.
type Option func(*config)

type config struct {
	templates fs.FS
	extension string
	sprig     bool
}

// WithFS loads named templates from files.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithExtension overrides the extension appended by RenderTemplate.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		cfg.extension = trimmed
	}
}

// WithSprig makes the sprig HTML function map available to templates.
// Registered helpers take precedence over sprig functions of the same name.
func WithSprig() Option {
	return func(cfg *config) {
		cfg.sprig = true
	}
}

// Block names a template used as a helper body. It is built in templates
// with the nested function and passed as the last helper argument:
//
//	{{define "errors"}}<span>{{.}}</span>{{end}}
//	{{field_errors "name" .errors (nested "errors")}}
type Block struct {
	Name string
	Data any
}

// Host binds form helpers into html/template function maps. html/template
// resolves functions at parse time, so templates are parsed on each render.
// Helper names must be Go template identifiers; use a "_" separator when
// registering with a namespace.
type Host struct {
	mu sync.RWMutex

	templates fs.FS
	ext       string
	base      htmltpl.FuncMap
	helpers   *helpers.Table
	globals   map[string]any
}

var _ template.HelperHost = (*Host)(nil)

// New constructs a Host.
func New(options ...Option) *Host {
	cfg := &config{extension: ".tmpl"}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}

	host := &Host{
		templates: cfg.templates,
		ext:       cfg.extension,
		base:      htmltpl.FuncMap{},
		helpers:   helpers.NewTable(),
		globals:   map[string]any{},
	}
	if cfg.sprig {
		maps.Copy(host.base, sprig.HtmlFuncMap())
	}
	return host
}

// RegisterHelper exposes fn as a template function named name.
func (h *Host) RegisterHelper(name string, fn helpers.HelperFunc) error {
	if !identifierPattern.MatchString(name) {
		return fmt.Errorf("%w: %q is not a template identifier", helpers.ErrInvalidHelperName, name)
	}
	if _, ok := keywords[name]; ok || isReserved(name) {
		return fmt.Errorf("%w: %q is reserved", helpers.ErrInvalidHelperName, name)
	}
	return h.helpers.RegisterHelper(name, fn)
}

// HasHelper reports whether name was registered.
func (h *Host) HasHelper(name string) bool {
	return h.helpers.Has(name)
}

// Helpers exposes the host's helper table.
func (h *Host) Helpers() *helpers.Table {
	return h.helpers
}

// GlobalContext stores values readable through {{global "key"}}.
func (h *Host) GlobalContext(data any) error {
	if data == nil {
		return nil
	}
	values, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("htmltemplate: global context must be map[string]any, got %T", data)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for key, value := range values {
		h.globals[strings.TrimSpace(key)] = value
	}
	return nil
}

// Render renders inline template content or a named template.
func (h *Host) Render(name string, data any, out ...io.Writer) (string, error) {
	if strings.Contains(name, "{{") {
		return h.RenderString(name, data, out...)
	}
	return h.RenderTemplate(name, data, out...)
}

// RenderTemplate parses and renders a template file from the configured fs.FS.
func (h *Host) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if h.templates == nil {
		return "", errors.New("htmltemplate: no template filesystem configured")
	}
	file := name
	if !strings.HasSuffix(file, h.ext) {
		file += h.ext
	}

	tmpl, err := h.parse(path.Base(file), func(t *htmltpl.Template) (*htmltpl.Template, error) {
		return t.ParseFS(h.templates, file)
	})
	if err != nil {
		return "", fmt.Errorf("htmltemplate: parse %q: %w", file, err)
	}
	return execute(tmpl, data, out)
}

// RenderString parses and renders templateContent.
func (h *Host) RenderString(templateContent string, data any, out ...io.Writer) (string, error) {
	tmpl, err := h.parse("inline", func(t *htmltpl.Template) (*htmltpl.Template, error) {
		return t.Parse(templateContent)
	})
	if err != nil {
		return "", fmt.Errorf("htmltemplate: parse template string: %w", err)
	}
	return execute(tmpl, data, out)
}

func (h *Host) parse(name string, parse func(*htmltpl.Template) (*htmltpl.Template, error)) (*htmltpl.Template, error) {
	tmpl := htmltpl.New(name)
	tmpl.Funcs(h.funcMap(tmpl))
	return parse(tmpl)
}

func execute(tmpl *htmltpl.Template, data any, out []io.Writer) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("htmltemplate: execute %q: %w", tmpl.Name(), err)
	}

	rendered := buf.String()
	for _, w := range out {
		if _, err := io.WriteString(w, rendered); err != nil {
			return "", err
		}
	}
	return rendered, nil
}

func (h *Host) funcMap(tmpl *htmltpl.Template) htmltpl.FuncMap {
	names := h.helpers.Names()
	funcs := make(htmltpl.FuncMap, len(h.base)+len(names)+5)
	maps.Copy(funcs, h.base)
	funcs[attrsFunc] = attrs
	funcs[nestedFunc] = nested
	funcs[globalFunc] = h.global
	funcs[hasErrorFunc] = helpers.HasError
	funcs[messagesFunc] = helpers.Messages

	for _, name := range names {
		fn, ok := h.helpers.Lookup(name)
		if !ok {
			continue
		}
		funcs[name] = bind(fn, tmpl)
	}
	return funcs
}

func (h *Host) global(key string) any {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.globals[key]
}

func bind(fn helpers.HelperFunc, tmpl *htmltpl.Template) func(args ...any) (htmltpl.HTML, error) {
	return func(args ...any) (htmltpl.HTML, error) {
		call := helpers.Call{Args: args}

		if n := len(call.Args); n > 0 {
			if block, ok := call.Args[n-1].(Block); ok {
				call.Args = call.Args[:n-1]
				call.Options.Context = block.Data
				if block.Name != "" {
					call.Options.Fn = blockFunc(tmpl, block.Name)
				}
			}
		}
		if n := len(call.Args); n > 0 {
			if hash, ok := call.Args[n-1].(markup.Attrs); ok {
				call.Args = call.Args[:n-1]
				call.Options.Hash = hash
			}
		}

		out, err := fn(call)
		if err != nil {
			return "", err
		}
		return htmltpl.HTML(out), nil
	}
}

func blockFunc(tmpl *htmltpl.Template, name string) helpers.BlockFunc {
	return func(ctx any) (string, error) {
		var buf bytes.Buffer
		if err := tmpl.ExecuteTemplate(&buf, name, ctx); err != nil {
			return "", err
		}
		return buf.String(), nil
	}
}

func attrs(kv ...any) (markup.Attrs, error) {
	return markup.Pairs(kv...)
}

// nested references a defined template as a block body, optionally with the
// data it renders against when the helper supplies none.
func nested(name string, data ...any) Block {
	block := Block{Name: name}
	if len(data) > 0 {
		block.Data = data[0]
	}
	return block
}

func isReserved(name string) bool {
	switch name {
	case attrsFunc, nestedFunc, globalFunc, hasErrorFunc, messagesFunc:
		return true
	}
	return false
}
