package markup_test

import (
	"html/template"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formhelpers/pkg/markup"
)

func TestElement_ClosingAndSelfClosing(t *testing.T) {
	cases := []struct {
		name    string
		tag     string
		closing bool
		attrs   markup.Attrs
		content string
		want    string
	}{
		{
			name:    "closing with content",
			tag:     "form",
			closing: true,
			attrs:   markup.Attrs{{Key: "action", Value: "/url"}, {Key: "method", Value: "POST"}},
			content: "test",
			want:    `<form action="/url" method="POST">test</form>`,
		},
		{
			name:    "closing without content",
			tag:     "label",
			closing: true,
			want:    `<label></label>`,
		},
		{
			name:    "self closing ignores content",
			tag:     "input",
			attrs:   markup.Attrs{{Key: "name", Value: "firstname"}, {Key: "type", Value: "text"}},
			content: "ignored",
			want:    `<input name="firstname" type="text" />`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := markup.Element(tc.tag, tc.closing, tc.attrs, tc.content)
			if got != tc.want {
				t.Fatalf("element mismatch\nwant: %s\n got: %s", tc.want, got)
			}
		})
	}
}

func TestOpenTag_OmitsFalsyAttributes(t *testing.T) {
	var nilPtr *string
	attrs := markup.Attrs{
		{Key: "empty", Value: ""},
		{Key: "false", Value: false},
		{Key: "zero", Value: 0},
		{Key: "zero-float", Value: 0.0},
		{Key: "nan", Value: math.NaN()},
		{Key: "nil", Value: nil},
		{Key: "nil-ptr", Value: nilPtr},
		{Key: "name", Value: "a"},
		{Key: "one", Value: 1},
		{Key: "flag", Value: "false"},
	}

	got := markup.OpenTag("input", false, attrs)
	want := `<input name="a" one="1" flag="false" />`
	if got != want {
		t.Fatalf("open tag mismatch\nwant: %s\n got: %s", want, got)
	}
}

func TestOpenTag_BooleanAttributesUseTheirName(t *testing.T) {
	got := markup.OpenTag("select", true, markup.Attrs{{Key: "multiple", Value: true}})
	if got != `<select multiple="multiple">` {
		t.Fatalf("unexpected boolean attribute rendering: %s", got)
	}
}

func TestOpenTag_EscapesAttributeValuesAndWritesKeysOnce(t *testing.T) {
	attrs := markup.Attrs{
		{Key: "value", Value: `"quoted" & <b>`},
		{Key: "class", Value: "first"},
		{Key: "value", Value: `a"b`},
	}
	got := markup.OpenTag("input", false, attrs)
	want := `<input value="a&#34;b" class="first" />`
	if got != want {
		t.Fatalf("open tag mismatch\nwant: %s\n got: %s", want, got)
	}
	if strings.Count(got, "value=") != 1 {
		t.Fatalf("expected value attribute once, got %s", got)
	}
}

func TestAttrs_SetKeepsPosition(t *testing.T) {
	attrs := markup.Attrs{{Key: "action", Value: "/url"}, {Key: "method", Value: "POST"}}
	attrs.Set("class", "form")
	attrs.Set("action", "test")

	want := []string{"action", "method", "class"}
	if diff := cmp.Diff(want, attrs.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if value, _ := attrs.Get("action"); value != "test" {
		t.Fatalf("expected action override, got %v", value)
	}
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	defaults := markup.Attrs{{Key: "name", Value: "n"}, {Key: "type", Value: "text"}}
	overrides := markup.Attrs{{Key: "type", Value: "email"}, {Key: "class", Value: "big"}}

	merged := markup.Merge(defaults, overrides)

	got := markup.OpenTag("input", false, merged)
	want := `<input name="n" type="email" class="big" />`
	if got != want {
		t.Fatalf("merge mismatch\nwant: %s\n got: %s", want, got)
	}
	if value, _ := defaults.Get("type"); value != "text" {
		t.Fatalf("defaults mutated: %v", value)
	}
	if len(overrides) != 2 {
		t.Fatalf("overrides mutated: %v", overrides)
	}
}

func TestPairs(t *testing.T) {
	attrs, err := markup.Pairs("class", "big", "id", false)
	if err != nil {
		t.Fatalf("pairs: %v", err)
	}
	if diff := cmp.Diff([]string{"class", "id"}, attrs.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}

	if _, err := markup.Pairs("class"); err == nil {
		t.Fatalf("expected odd argument error")
	}
	if _, err := markup.Pairs(1, "x"); err == nil {
		t.Fatalf("expected non-string key error")
	}
}

func TestFromMap_SortsKeys(t *testing.T) {
	attrs := markup.FromMap(map[string]any{"id": "x", "class": "y", "data-a": 1})
	if diff := cmp.Diff([]string{"class", "data-a", "id"}, attrs.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestContent(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{0, ""},
		{false, ""},
		{"a < b", "a &lt; b"},
		{markup.HTML("<em>x</em>"), "<em>x</em>"},
		{template.HTML("<b>y</b>"), "<b>y</b>"},
		{12, "12"},
		{1.5, "1.5"},
	}
	for _, tc := range cases {
		if got := markup.Content(tc.in); got != tc.want {
			t.Errorf("Content(%#v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestString_Numbers(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{float64(1), "1"},
		{float32(2.5), "2.5"},
		{int64(-3), "-3"},
		{uint8(7), "7"},
		{true, "true"},
	}
	for _, tc := range cases {
		if got := markup.String(tc.in); got != tc.want {
			t.Errorf("String(%#v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
