package helpers_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/goliatone/go-formhelpers/pkg/helpers"
	"github.com/goliatone/go-formhelpers/pkg/markup"
)

func people() []map[string]any {
	return []map[string]any{
		{"value": 1, "text": "Richard"},
		{"value": 2, "text": "John"},
	}
}

func hash(t *testing.T, kv ...any) helpers.Options {
	t.Helper()
	attrs, err := markup.Pairs(kv...)
	if err != nil {
		t.Fatalf("attrs: %v", err)
	}
	return helpers.Options{Hash: attrs}
}

func block(body string) helpers.Options {
	return helpers.Options{Fn: func(any) (string, error) { return body, nil }}
}

func assertHTML(t *testing.T, want string, got markup.HTML) {
	t.Helper()
	if string(got) != want {
		t.Fatalf("markup mismatch\nwant: %s\n got: %s", want, got)
	}
}

func TestForm(t *testing.T) {
	h := helpers.New()

	got, err := h.Form("/test/url", block("test"))
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	assertHTML(t, `<form action="/test/url" method="POST">test</form>`, got)

	opts := hash(t, "class", "form")
	opts.Fn = block("test").Fn
	got, err = h.Form("/url", opts)
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	assertHTML(t, `<form action="/url" method="POST" class="form">test</form>`, got)

	opts = hash(t, "action", "test", "method", "GET")
	opts.Fn = block("test").Fn
	got, err = h.Form("/test/url", opts)
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	assertHTML(t, `<form action="test" method="GET">test</form>`, got)
}

func TestForm_PropagatesBlockErrors(t *testing.T) {
	h := helpers.New()
	boom := errors.New("boom")

	_, err := h.Form("/url", helpers.Options{Fn: func(any) (string, error) { return "", boom }})
	if !errors.Is(err, boom) {
		t.Fatalf("expected block error, got %v", err)
	}
}

func TestInput(t *testing.T) {
	h := helpers.New()

	assertHTML(t, `<input name="firstname" id="firstname" value="Richard" type="text" />`,
		h.Input("firstname", "Richard", helpers.Options{}))
	assertHTML(t, `<input name="firstname" value="Richard" type="text" />`,
		h.Input("firstname", "Richard", hash(t, "id", false)))
}

func TestLabel(t *testing.T) {
	h := helpers.New()

	got, err := h.Label("name", "Please enter your name", helpers.Options{})
	if err != nil {
		t.Fatalf("label: %v", err)
	}
	assertHTML(t, `<label for="name">Please enter your name</label>`, got)

	got, err = h.Label(nil, nil, block("Here is a label"))
	if err != nil {
		t.Fatalf("label block: %v", err)
	}
	assertHTML(t, `<label>Here is a label</label>`, got)
}

func TestLabel_BlockReceivesInputAsContext(t *testing.T) {
	h := helpers.New()
	var seen any
	opts := helpers.Options{
		Context: "outer",
		Fn: func(ctx any) (string, error) {
			seen = ctx
			return "body", nil
		},
	}

	if _, err := h.Label("email", nil, opts); err != nil {
		t.Fatalf("label: %v", err)
	}
	if seen != "email" {
		t.Fatalf("expected input as block context, got %v", seen)
	}

	if _, err := h.Label(nil, nil, opts); err != nil {
		t.Fatalf("label: %v", err)
	}
	if seen != "outer" {
		t.Fatalf("expected current context, got %v", seen)
	}
}

func TestButtonAndSubmit(t *testing.T) {
	h := helpers.New()

	assertHTML(t, `<button name="save" type="button">Submit form</button>`,
		h.Button("save", "Submit form", helpers.Options{}))
	assertHTML(t, `<button name="save" type="submit">Submit form</button>`,
		h.Submit("save", "Submit form", helpers.Options{}))
}

func TestSelect(t *testing.T) {
	h := helpers.New()

	cases := []struct {
		name     string
		selected any
		want     string
	}{
		{
			name:     "nothing selected",
			selected: nil,
			want:     `<select id="people" name="people"><option value="1">Richard</option><option value="2">John</option></select>`,
		},
		{
			name:     "single value",
			selected: 1,
			want:     `<select id="people" name="people"><option value="1" selected="selected">Richard</option><option value="2">John</option></select>`,
		},
		{
			name:     "list value",
			selected: []int{1},
			want:     `<select id="people" name="people" multiple="multiple"><option value="1" selected="selected">Richard</option><option value="2">John</option></select>`,
		},
		{
			name:     "numeric values compare across types",
			selected: float64(2),
			want:     `<select id="people" name="people"><option value="1">Richard</option><option value="2" selected="selected">John</option></select>`,
		},
		{
			name:     "strings never match numbers",
			selected: "1",
			want:     `<select id="people" name="people"><option value="1">Richard</option><option value="2">John</option></select>`,
		},
		{
			name:     "empty list still multiple",
			selected: []any{},
			want:     `<select id="people" name="people" multiple="multiple"><option value="1">Richard</option><option value="2">John</option></select>`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assertHTML(t, tc.want, h.Select("people", people(), tc.selected, helpers.Options{}))
		})
	}
}

func TestSelect_DoesNotMutateCallerHash(t *testing.T) {
	h := helpers.New()
	opts := hash(t, "class", "big")

	h.Select("people", people(), []int{1, 2}, opts)

	if opts.Hash.Has("multiple") {
		t.Fatalf("caller hash was mutated: %v", opts.Hash)
	}
}

func TestSelect_ItemShapes(t *testing.T) {
	h := helpers.New()
	type person struct {
		Value string
		Label string
	}

	want := `<select id="p" name="p"><option value="a" selected="selected">A</option><option value="b">B</option></select>`

	assertHTML(t, want, h.Select("p", []helpers.Choice{{Value: "a", Text: "A"}, {Value: "b", Text: "B"}}, "a", helpers.Options{}))
	assertHTML(t, want, h.Select("p", []person{{"a", "A"}, {"b", "B"}}, "a", helpers.Options{}))
	assertHTML(t, want, h.Select("p", []any{
		map[string]any{"value": "a", "label": "A"},
		map[string]string{"value": "b", "text": "B"},
	}, "a", helpers.Options{}))
}

func TestCheckbox(t *testing.T) {
	h := helpers.New()

	got := string(h.Checkbox("food[]", "apples", true, helpers.Options{})) +
		string(h.Checkbox("food[]", "pears", false, helpers.Options{}))
	want := `<input name="food[]" type="checkbox" value="apples" checked="checked" /><input name="food[]" type="checkbox" value="pears" />`
	if got != want {
		t.Fatalf("checkbox mismatch\nwant: %s\n got: %s", want, got)
	}

	assertHTML(t, `<input name="food" type="checkbox" value="apples" checked="checked" id="food" />`,
		h.Checkbox("food", "apples", true, helpers.Options{}))
}

func TestRadio(t *testing.T) {
	h := helpers.New()

	got := string(h.Radio("likes_cats", "1", true, helpers.Options{})) +
		string(h.Radio("likes_cats", "0", false, helpers.Options{}))
	want := `<input name="likes_cats" type="radio" value="1" checked="checked" /><input name="likes_cats" type="radio" value="0" />`
	if got != want {
		t.Fatalf("radio mismatch\nwant: %s\n got: %s", want, got)
	}

	// type and id cannot be overridden by the caller.
	assertHTML(t, `<input name="r" type="radio" value="x" class="c" />`,
		h.Radio("r", "x", false, hash(t, "type", "checkbox", "id", "custom", "class", "c")))
}

func TestFileHiddenPasswordTextarea(t *testing.T) {
	h := helpers.New()

	assertHTML(t, `<input name="fileupload" id="fileupload" type="file" />`,
		h.File("fileupload", helpers.Options{}))
	assertHTML(t, `<input name="secret" id="secret" value="key123" type="hidden" />`,
		h.Hidden("secret", "key123", helpers.Options{}))
	assertHTML(t, `<input name="passwordfield" id="passwordfield" value="dontdothis" type="password" />`,
		h.Password("passwordfield", "dontdothis", helpers.Options{}))
	assertHTML(t, `<textarea name="text" id="text">Here is some text</textarea>`,
		h.Textarea("text", "Here is some text", helpers.Options{}))
}

func TestContentEscaping(t *testing.T) {
	h := helpers.New()

	assertHTML(t, `<textarea name="t" id="t">&lt;script&gt;</textarea>`,
		h.Textarea("t", "<script>", helpers.Options{}))
	assertHTML(t, `<button name="b" type="button"><em>Go</em></button>`,
		h.Button("b", markup.HTML("<em>Go</em>"), helpers.Options{}))
}

func TestFieldErrors(t *testing.T) {
	h := helpers.New()

	got, err := h.FieldErrors("text", map[string][]string{"text": {"Please enter some text"}}, hash(t, "class", "error"))
	if err != nil {
		t.Fatalf("field errors: %v", err)
	}
	assertHTML(t, `<div class="error">Please enter some text</div>`, got)

	opts := helpers.Options{Fn: func(ctx any) (string, error) {
		return fmt.Sprintf(`<span class="help-block">%s</span>`, ctx), nil
	}}
	got, err = h.FieldErrors("text", map[string]any{"text": []any{"Please enter some text", "Some text missing"}}, opts)
	if err != nil {
		t.Fatalf("field errors block: %v", err)
	}
	assertHTML(t, `<span class="help-block">Please enter some text</span><span class="help-block">Some text missing</span>`, got)
}

func TestFieldErrors_NoEntryRendersNothing(t *testing.T) {
	h := helpers.New()

	for _, errs := range []any{nil, map[string][]string{}, map[string][]string{"text": {}}, map[string]any{"text": "  "}} {
		got, err := h.FieldErrors("text", errs, helpers.Options{})
		if err != nil {
			t.Fatalf("field errors: %v", err)
		}
		if got != "" {
			t.Fatalf("expected no output for %v, got %s", errs, got)
		}
	}
}

func TestFieldErrors_SingleStringEntry(t *testing.T) {
	h := helpers.New()

	got, err := h.FieldErrors("name", helpers.Errors{"name": {"Required"}}, helpers.Options{})
	if err != nil {
		t.Fatalf("field errors: %v", err)
	}
	assertHTML(t, `<div>Required</div>`, got)

	got, err = h.FieldErrors("name", map[string]string{"name": "Too short"}, helpers.Options{})
	if err != nil {
		t.Fatalf("field errors: %v", err)
	}
	if !strings.Contains(string(got), "Too short") {
		t.Fatalf("expected message, got %s", got)
	}
}
