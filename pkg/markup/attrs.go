package markup

import (
	"fmt"
	"sort"
	"strings"
)

// Attr is a single element attribute. A falsy Value removes the attribute from
// the rendered tag.
type Attr struct {
	Key   string
	Value any
}

// Attrs is an ordered attribute mapping. Iteration follows insertion order and
// Set keeps the original position of a key that is already present, so
// overrides land where the default was declared.
type Attrs []Attr

// Get returns the value stored for key.
func (a Attrs) Get(key string) (any, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return nil, false
}

// Has reports whether key is present, regardless of its value.
func (a Attrs) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

// Set stores value under key, replacing an existing entry in place or
// appending a new one.
func (a *Attrs) Set(key string, value any) {
	key = strings.TrimSpace(key)
	if key == "" {
		return
	}
	for idx := range *a {
		if (*a)[idx].Key == key {
			(*a)[idx].Value = value
			return
		}
	}
	*a = append(*a, Attr{Key: key, Value: value})
}

// Extend applies every entry of other on top of a, in order.
func (a *Attrs) Extend(other Attrs) {
	for _, attr := range other {
		a.Set(attr.Key, attr.Value)
	}
}

// Clone returns an independent copy.
func (a Attrs) Clone() Attrs {
	if a == nil {
		return nil
	}
	out := make(Attrs, len(a))
	copy(out, a)
	return out
}

// Keys lists attribute names in order.
func (a Attrs) Keys() []string {
	keys := make([]string, 0, len(a))
	for _, attr := range a {
		keys = append(keys, attr.Key)
	}
	return keys
}

// Merge returns a copy of defaults with every override applied on top of it.
// Later overrides win over earlier ones; neither input is modified.
func Merge(defaults Attrs, overrides ...Attrs) Attrs {
	out := make(Attrs, 0, len(defaults))
	out.Extend(defaults)
	for _, override := range overrides {
		out.Extend(override)
	}
	return out
}

// Pairs builds Attrs from alternating key/value arguments, the form template
// engines without keyword arguments use: attrs("class", "big", "id", false).
func Pairs(kv ...any) (Attrs, error) {
	if len(kv)%2 != 0 {
		return nil, fmt.Errorf("markup: attribute pairs need an even number of arguments, got %d", len(kv))
	}
	out := make(Attrs, 0, len(kv)/2)
	for idx := 0; idx < len(kv); idx += 2 {
		key, ok := kv[idx].(string)
		if !ok {
			return nil, fmt.Errorf("markup: attribute key at position %d must be a string, got %T", idx, kv[idx])
		}
		out.Set(key, kv[idx+1])
	}
	return out, nil
}

// FromMap converts an unordered map into Attrs. Keys are sorted so the output
// is deterministic.
func FromMap(values map[string]any) Attrs {
	if len(values) == 0 {
		return nil
	}
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make(Attrs, 0, len(keys))
	for _, key := range keys {
		out.Set(key, values[key])
	}
	return out
}
