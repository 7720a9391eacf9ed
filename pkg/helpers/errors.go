package helpers

import (
	"errors"
	"reflect"
	"strings"

	"github.com/goliatone/go-formhelpers/pkg/markup"
)

// ErrInvalidHelperName is returned by hosts that cannot bind a helper under
// the requested name.
var ErrInvalidHelperName = errors.New("helpers: invalid helper name")

// Errors maps field names to validation messages.
type Errors map[string][]string

// Add records message for field, allocating the map on first use. Blank
// messages are ignored.
func (e *Errors) Add(field string, messages ...string) {
	for _, message := range messages {
		if strings.TrimSpace(message) == "" {
			continue
		}
		if *e == nil {
			*e = Errors{}
		}
		(*e)[field] = append((*e)[field], message)
	}
}

// Has reports whether field has at least one message.
func (e Errors) Has(field string) bool {
	return len(Messages(e, field)) > 0
}

// Messages extracts the messages recorded for field from an errors
// collection. The collection can be any map keyed by strings; an entry can be
// a string, an error, or a list of either. Blank messages are dropped and a
// missing entry yields nil.
func Messages(collection any, field string) []string {
	if collection == nil {
		return nil
	}

	var entry any
	switch errs := collection.(type) {
	case Errors:
		entry = errs[field]
	case map[string][]string:
		entry = errs[field]
	case map[string]string:
		entry = errs[field]
	case map[string]any:
		entry = errs[field]
	default:
		rv := reflect.ValueOf(collection)
		for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
			if rv.IsNil() {
				return nil
			}
			rv = rv.Elem()
		}
		if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
			return nil
		}
		value := rv.MapIndex(reflect.ValueOf(field).Convert(rv.Type().Key()))
		if !value.IsValid() {
			return nil
		}
		entry = value.Interface()
	}

	return normalizeMessages(entry)
}

// HasError reports whether field should be decorated as invalid. A boolean
// true forces the error state; otherwise the collection must hold at least one
// message for field.
func HasError(collection any, field string) bool {
	if flag, ok := collection.(bool); ok {
		return flag
	}
	return len(Messages(collection, field)) > 0
}

func normalizeMessages(entry any) []string {
	var raw []string
	switch v := entry.(type) {
	case nil:
		return nil
	case string:
		raw = []string{v}
	case []string:
		raw = v
	case error:
		raw = []string{v.Error()}
	case []any:
		raw = make([]string, 0, len(v))
		for _, item := range v {
			raw = append(raw, markup.String(item))
		}
	default:
		rv := reflect.ValueOf(entry)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			raw = make([]string, 0, rv.Len())
			for idx := 0; idx < rv.Len(); idx++ {
				raw = append(raw, markup.String(rv.Index(idx).Interface()))
			}
		} else if markup.Truthy(entry) {
			raw = []string{markup.String(entry)}
		}
	}

	out := make([]string, 0, len(raw))
	for _, message := range raw {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
