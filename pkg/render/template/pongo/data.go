package pongo

import (
	"encoding/json"
	"fmt"
	htmltpl "html/template"
	"reflect"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-formhelpers/pkg/helpers"
	"github.com/goliatone/go-formhelpers/pkg/markup"
)

// contextFrom turns render data into a pongo2 context.
//
// Helper types (markup.HTML, template.HTML, markup.Attrs, helpers.Errors and
// choices) are kept as they are so helpers receive them intact: trusted markup
// stays trusted and a stored hash is still recognised as the options hash.
// Printing trusted markup directly still needs |safe. Other structs and typed
// collections are flattened through JSON into maps, slices and float64
// numbers, so values nested inside them lose their Go types.
func contextFrom(data any) (pongo2.Context, error) {
	if data == nil {
		return pongo2.Context{}, nil
	}
	if ctx, ok := data.(pongo2.Context); ok {
		data = map[string]any(ctx)
	}

	root, ok := data.(map[string]any)
	if !ok {
		flat, err := flatten(data)
		if err != nil {
			return nil, err
		}
		if root, ok = flat.(map[string]any); !ok {
			return nil, fmt.Errorf("template data must be an object, got %T", data)
		}
	}

	out := make(pongo2.Context, len(root))
	for key, value := range root {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		converted, err := templateValue(value)
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", key, err)
		}
		out[key] = converted
	}
	return out, nil
}

func templateValue(value any) (any, error) {
	switch v := value.(type) {
	case nil, string, bool, float64,
		markup.HTML, htmltpl.HTML, markup.Attrs,
		helpers.Errors, helpers.Choice, []helpers.Choice:
		return v, nil
	case pongo2.Context:
		return templateMap(v)
	case map[string]any:
		return templateMap(v)
	case []any:
		return templateList(v)
	}

	// template functions
	if reflect.ValueOf(value).Kind() == reflect.Func {
		return value, nil
	}

	flat, err := flatten(value)
	if err != nil {
		return nil, err
	}
	switch f := flat.(type) {
	case map[string]any:
		return templateMap(f)
	case []any:
		return templateList(f)
	}
	return flat, nil
}

func templateMap(in map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(in))
	for key, value := range in {
		converted, err := templateValue(value)
		if err != nil {
			return nil, err
		}
		out[key] = converted
	}
	return out, nil
}

func templateList(in []any) ([]any, error) {
	out := make([]any, len(in))
	for idx, value := range in {
		converted, err := templateValue(value)
		if err != nil {
			return nil, err
		}
		out[idx] = converted
	}
	return out, nil
}

func flatten(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
