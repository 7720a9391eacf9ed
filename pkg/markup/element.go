package markup

import (
	"html"
	"strings"
)

// OpenTag renders the opening tag for an element. Self-closing elements
// (closing == false) end with " />". Falsy attributes are skipped; a boolean
// true renders as the attribute's own name, e.g. checked="checked".
func OpenTag(tag string, closing bool, attrs Attrs) string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(tag)

	for _, attr := range normalize(attrs) {
		if !Truthy(attr.Value) {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(attr.Key)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(attrValue(attr)))
		b.WriteByte('"')
	}

	if !closing {
		b.WriteString(" /")
	}
	b.WriteByte('>')
	return b.String()
}

// CloseTag renders </tag>.
func CloseTag(tag string) string {
	return "</" + tag + ">"
}

// Element renders a complete element. Content is written verbatim between the
// tags of a closing element and ignored for self-closing ones.
func Element(tag string, closing bool, attrs Attrs, content string) string {
	if !closing {
		return OpenTag(tag, false, attrs)
	}
	return OpenTag(tag, true, attrs) + content + CloseTag(tag)
}

func attrValue(attr Attr) string {
	if b, ok := attr.Value.(bool); ok && b {
		return attr.Key
	}
	return String(attr.Value)
}

// normalize collapses duplicate keys so each attribute is written once: the
// last value wins at the position of the first occurrence.
func normalize(attrs Attrs) Attrs {
	if len(attrs) < 2 {
		return attrs
	}
	out := make(Attrs, 0, len(attrs))
	for _, attr := range attrs {
		out.Set(attr.Key, attr.Value)
	}
	return out
}
