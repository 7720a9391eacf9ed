package helpers

import (
	"reflect"
)

// Choice is one <option> of a select helper.
type Choice struct {
	Value any `json:"value" yaml:"value"`
	Text  any `json:"text" yaml:"text"`
}

// Choices converts select items into Choice values. Items can be a slice of
// Choice, maps with "value" and "text" (or "label") keys, or structs with a
// Value field and a Text or Label field. Scalars become choices whose value
// and text are the scalar itself.
func Choices(items any) []Choice {
	switch v := items.(type) {
	case nil:
		return nil
	case []Choice:
		return append([]Choice(nil), v...)
	case []map[string]any:
		out := make([]Choice, 0, len(v))
		for _, item := range v {
			out = append(out, choiceFromMap(item))
		}
		return out
	case []any:
		out := make([]Choice, 0, len(v))
		for _, item := range v {
			out = append(out, choiceFrom(item))
		}
		return out
	}

	rv := reflect.ValueOf(items)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil
	}
	out := make([]Choice, 0, rv.Len())
	for idx := 0; idx < rv.Len(); idx++ {
		out = append(out, choiceFrom(rv.Index(idx).Interface()))
	}
	return out
}

func choiceFrom(item any) Choice {
	switch v := item.(type) {
	case Choice:
		return v
	case *Choice:
		if v == nil {
			return Choice{}
		}
		return *v
	case map[string]any:
		return choiceFromMap(v)
	case map[string]string:
		text := v["text"]
		if _, ok := v["text"]; !ok {
			text = v["label"]
		}
		return Choice{Value: v["value"], Text: text}
	}

	rv := reflect.ValueOf(item)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return Choice{}
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		choice := Choice{}
		if field := rv.FieldByName("Value"); field.IsValid() && field.CanInterface() {
			choice.Value = field.Interface()
		}
		for _, name := range []string{"Text", "Label"} {
			if field := rv.FieldByName(name); field.IsValid() && field.CanInterface() {
				choice.Text = field.Interface()
				break
			}
		}
		return choice
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Choice{}
		}
		lookup := func(key string) (any, bool) {
			value := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
			if !value.IsValid() {
				return nil, false
			}
			return value.Interface(), true
		}
		choice := Choice{}
		choice.Value, _ = lookup("value")
		if text, ok := lookup("text"); ok {
			choice.Text = text
		} else {
			choice.Text, _ = lookup("label")
		}
		return choice
	}

	return Choice{Value: item, Text: item}
}

func choiceFromMap(item map[string]any) Choice {
	text, ok := item["text"]
	if !ok {
		text = item["label"]
	}
	return Choice{Value: item["value"], Text: text}
}

// isList reports whether a selected argument holds several values.
func isList(v any) bool {
	if v == nil {
		return false
	}
	kind := reflect.TypeOf(v).Kind()
	return kind == reflect.Slice || kind == reflect.Array
}

func containsValue(list any, value any) bool {
	rv := reflect.ValueOf(list)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return false
	}
	for idx := 0; idx < rv.Len(); idx++ {
		if sameValue(rv.Index(idx).Interface(), value) {
			return true
		}
	}
	return false
}

// sameValue compares a selected value with an option value. Comparison is
// strict except that numbers of different Go types compare numerically, since
// decoded template data often turns ints into float64.
func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return false
	}
	na, aIsNumber := number(a)
	nb, bIsNumber := number(b)
	if aIsNumber || bIsNumber {
		return aIsNumber && bIsNumber && na == nb
	}

	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if !ta.Comparable() {
		return reflect.DeepEqual(a, b)
	}
	return a == b
}

func number(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
