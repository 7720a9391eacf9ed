package helpers

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// ErrorMapping splits a server error payload into messages for known fields
// and messages that belong to the form as a whole.
type ErrorMapping struct {
	Fields Errors
	Form   []string
}

var (
	// formLevelKeys never address a field.
	formLevelKeys = map[string]struct{}{
		"": {}, ".": {}, "/": {}, "#": {}, "$": {}, "form": {}, "base": {},
		"__all__": {}, "non_field_errors": {}, "non-field-errors": {},
	}
	// envelopeSegments wrap request bodies in API error paths.
	envelopeSegments = map[string]struct{}{
		"body": {}, "request": {}, "payload": {}, "data": {}, "attributes": {},
	}
	pathReplacer = strings.NewReplacer("[", ".", "]", "", "//", "/")
)

// MapErrorPayload assigns each payload entry to the deepest field in fields
// its path resolves to. Paths may be dotted ("owner.email"), JSON pointers
// ("/body/owner/email"), JSONPath ("$.body.tags[0]") or bracketed
// ("owner[email]"); envelope segments such as body or data and array indexes
// are ignored when matching. Unmatched and form-level entries are collected
// in Form so no message is lost. Paths are visited in sorted order; messages
// are trimmed and deduplicated per field.
//
// The result feeds field_errors and the validation helpers directly:
//
//	mapped := helpers.MapErrorPayload([]string{"name", "owner[email]"}, payload)
//	h.FieldErrors("owner[email]", mapped.Fields, opts)
func MapErrorPayload(fields []string, payload map[string][]string) ErrorMapping {
	mapping := ErrorMapping{}
	if len(payload) == 0 {
		return mapping
	}

	index := make(map[string]string, len(fields))
	for _, field := range fields {
		if key := strings.Join(splitPath(field), "."); key != "" {
			index[key] = field
		}
	}

	for _, path := range slices.Sorted(maps.Keys(payload)) {
		messages := MergeMessages(nil, payload[path]...)
		if len(messages) == 0 {
			continue
		}

		field, ok := resolveField(path, index)
		if !ok {
			mapping.Form = MergeMessages(mapping.Form, messages...)
			continue
		}
		if mapping.Fields == nil {
			mapping.Fields = Errors{}
		}
		mapping.Fields[field] = MergeMessages(mapping.Fields[field], messages...)
	}
	return mapping
}

// MergeMessages appends extras to existing, trimming blanks and dropping
// repeats while keeping first-seen order.
func MergeMessages(existing []string, extras ...string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, list := range [][]string{existing, extras} {
		for _, message := range list {
			message = strings.TrimSpace(message)
			if message == "" {
				continue
			}
			if _, dup := seen[message]; dup {
				continue
			}
			seen[message] = struct{}{}
			out = append(out, message)
		}
	}
	return out
}

func resolveField(path string, index map[string]string) (string, bool) {
	if _, ok := formLevelKeys[strings.ToLower(strings.TrimSpace(path))]; ok {
		return "", false
	}
	segments := splitPath(path)
	if len(segments) == 0 {
		return "", false
	}

	unwrapped := dropEnvelope(segments)
	best, bestDepth := "", 0
	for _, candidate := range [][]string{segments, unwrapped, dropIndexes(segments), dropIndexes(unwrapped)} {
		for depth := len(candidate); depth > bestDepth; depth-- {
			if field, ok := index[strings.Join(candidate[:depth], ".")]; ok {
				best, bestDepth = field, depth
				break
			}
		}
	}
	return best, best != ""
}

func splitPath(path string) []string {
	clean := strings.TrimSpace(path)
	clean = strings.TrimLeft(clean, "#$/.")
	clean = strings.Trim(pathReplacer.Replace(clean), "./")
	if clean == "" {
		return nil
	}

	var out []string
	for _, part := range strings.FieldsFunc(clean, func(r rune) bool { return r == '.' || r == '/' }) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		// JSON pointer escapes
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		out = append(out, part)
	}
	return out
}

func dropEnvelope(segments []string) []string {
	for len(segments) > 0 {
		if _, ok := envelopeSegments[strings.ToLower(segments[0])]; !ok {
			break
		}
		segments = segments[1:]
	}
	return segments
}

func dropIndexes(segments []string) []string {
	out := make([]string, 0, len(segments))
	for _, segment := range segments {
		if _, err := strconv.Atoi(segment); err == nil {
			continue
		}
		out = append(out, segment)
	}
	return out
}
