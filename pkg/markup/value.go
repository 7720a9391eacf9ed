package markup

import (
	"fmt"
	"html"
	"html/template"
	"math"
	"reflect"
	"strconv"
)

// HTML marks a string as trusted markup. Content values of this type are
// inserted without escaping.
type HTML string

// String implements fmt.Stringer.
func (h HTML) String() string {
	return string(h)
}

// Truthy reports whether v counts as a present value. nil, false, the empty
// string, numeric zero, NaN and nil pointers/maps/slices are falsy; everything
// else (including empty but non-nil slices) is truthy.
func Truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case HTML:
		return val != ""
	case template.HTML:
		return val != ""
	case int:
		return val != 0
	case float64:
		return val != 0 && !math.IsNaN(val)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() != 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}

// String converts a scalar template value to its textual form. Numbers use
// their shortest decimal representation.
func String(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case HTML:
		return string(val)
	case template.HTML:
		return string(val)
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case error:
		return val.Error()
	case fmt.Stringer:
		return val.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

// Content turns a helper argument into element content. Falsy values render
// nothing, trusted markup is kept as-is and everything else is escaped.
func Content(v any) string {
	if !Truthy(v) {
		return ""
	}
	switch val := v.(type) {
	case HTML:
		return string(val)
	case template.HTML:
		return string(val)
	}
	return html.EscapeString(String(v))
}

// IsTrusted reports whether v carries markup that must not be escaped.
func IsTrusted(v any) bool {
	switch v.(type) {
	case HTML, template.HTML:
		return true
	}
	return false
}
