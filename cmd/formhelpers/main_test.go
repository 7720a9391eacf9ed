package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formhelpers/pkg/helpers"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute %v: %v", args, err)
	}
	return out.String()
}

func TestListCmd(t *testing.T) {
	out := execute(t, "list", "--namespace", "app")
	lines := strings.Split(strings.TrimSpace(out), "\n")

	if len(lines) != len(helpers.Names()) {
		t.Fatalf("expected %d names, got %d", len(helpers.Names()), len(lines))
	}
	if lines[0] != "app-form" || lines[len(lines)-1] != "app-field_errors" {
		t.Fatalf("unexpected names %v", lines)
	}
}

func TestRenderCmd_Engines(t *testing.T) {
	dir := t.TempDir()
	data := writeFile(t, dir, "data.yaml", "user:\n  name: Ada\nerrors:\n  email: [Email is required]\n")
	pongoTpl := writeFile(t, dir, "signup.tpl", `{{ input("name", user.name) }}{% formhelper "input_validation" "email" "" errors %}`)
	htmlTpl := writeFile(t, dir, "signup.tmpl", `{{fh_input "name" .user.name}}{{fh_input_validation "email" "" .errors}}`)

	want := `<input name="name" id="name" value="Ada" type="text" /><input name="email" id="email" type="text" class="is-invalid" />`

	got := execute(t, "render", pongoTpl, "--data", data, "--error-class", "is-invalid")
	if got != want {
		t.Fatalf("pongo output mismatch\nwant: %s\n got: %s", want, got)
	}

	got = execute(t, "render", htmlTpl, "--data", data, "--engine", "html",
		"--namespace", "fh", "--separator", "_", "--error-class", "is-invalid")
	if got != want {
		t.Fatalf("html output mismatch\nwant: %s\n got: %s", want, got)
	}
}

func TestRenderCmd_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	config := writeFile(t, dir, "helpers.yaml", "namespace: shop\nvalidationErrorClass: bad\n")
	tpl := writeFile(t, dir, "page.tpl", `{% formhelper "shop-file_validation" "upload" true %}`)

	got := execute(t, "render", tpl, "--config", config)
	if want := `<input name="upload" id="upload" type="file" class="bad" />`; got != want {
		t.Fatalf("output mismatch\nwant: %s\n got: %s", want, got)
	}
}

func TestRenderCmd_Errors(t *testing.T) {
	dir := t.TempDir()
	tpl := writeFile(t, dir, "page.tmpl", `{{input "a"}}`)

	for _, args := range [][]string{
		{"render", tpl, "--engine", "mustache"},
		{"render", tpl, "--engine", "html", "--namespace", "app"},
		{"render", tpl, "--data", filepath.Join(dir, "missing.yaml")},
	} {
		cmd := newRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs(args)
		if err := cmd.Execute(); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}

func TestRenderCmd_OutputFile(t *testing.T) {
	dir := t.TempDir()
	tpl := writeFile(t, dir, "page.tpl", `{{ hidden("token", "abc") }}`)
	output := filepath.Join(dir, "page.html")

	if got := execute(t, "render", tpl, "--output", output); got != "" {
		t.Fatalf("expected nothing on stdout, got %q", got)
	}
	written, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if want := `<input name="token" id="token" value="abc" type="hidden" />`; string(written) != want {
		t.Fatalf("output mismatch\nwant: %s\n got: %s", want, written)
	}

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"render", tpl, "--output", filepath.Join(dir, "missing", "page.html")})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error for unwritable output")
	}
}

func TestLoadData(t *testing.T) {
	dir := t.TempDir()

	got, err := loadData(writeFile(t, dir, "data.json", `{"people": [{"value": 1, "text": "Richard"}]}`))
	if err != nil {
		t.Fatalf("load json: %v", err)
	}
	want := map[string]any{"people": []any{map[string]any{"value": 1, "text": "Richard"}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("data mismatch (-want +got):\n%s", diff)
	}

	empty, err := loadData("")
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected empty data, got %v %v", empty, err)
	}
}

type scriptedPrompter struct {
	selection string
	inputs    []string
	confirm   bool
}

func (p *scriptedPrompter) Select(string, []string) (string, error) {
	return p.selection, nil
}

func (p *scriptedPrompter) Input(string, string) (string, error) {
	if len(p.inputs) == 0 {
		return "", nil
	}
	next := p.inputs[0]
	p.inputs = p.inputs[1:]
	return next, nil
}

func (p *scriptedPrompter) Confirm(string) (bool, error) {
	return p.confirm, nil
}

func TestRunTry(t *testing.T) {
	cases := []struct {
		name     string
		prompter *scriptedPrompter
		opts     []helpers.Option
		want     string
	}{
		{
			name:     "checkbox",
			prompter: &scriptedPrompter{selection: "checkbox", inputs: []string{"food[]", "apples"}, confirm: true},
			want:     `<input name="food[]" type="checkbox" value="apples" checked="checked" />`,
		},
		{
			name:     "select",
			prompter: &scriptedPrompter{selection: "select", inputs: []string{"size", "s, m", "m"}},
			want:     `<select id="size" name="size"><option value="s">s</option><option value="m" selected="selected">m</option></select>`,
		},
		{
			name:     "validation with namespace",
			prompter: &scriptedPrompter{selection: "password_validation", inputs: []string{"pw", "", "Too short"}},
			opts:     []helpers.Option{helpers.WithNamespace("app")},
			want:     `<input name="pw" id="pw" type="password" class="validation-error" />`,
		},
		{
			name:     "field errors",
			prompter: &scriptedPrompter{selection: "field_errors", inputs: []string{"pw", "Too short"}},
			want:     `<div>Too short</div>`,
		},
		{
			name:     "form body",
			prompter: &scriptedPrompter{selection: "form", inputs: []string{"/save", "fields"}},
			want:     `<form action="/save" method="POST">fields</form>`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := runTry(tc.prompter, tc.opts)
			if err != nil {
				t.Fatalf("run try: %v", err)
			}
			if string(got) != tc.want {
				t.Fatalf("markup mismatch\nwant: %s\n got: %s", tc.want, got)
			}
		})
	}
}

func TestNewRouter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "index.tpl", `{% formblock "form" "/signup" %}{{ submit("go", title) }}{% endformblock %}`)
	data := writeFile(t, dir, "data.yaml", "title: Join\n")

	router, err := newRouter(serveConfig{dir: dir, engine: enginePongo, ext: ".tpl", dataPath: data})
	if err != nil {
		t.Fatalf("new router: %v", err)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if want := `<form action="/signup" method="POST"><button name="go" type="submit">Join</button></form>`; rec.Body.String() != want {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}

	// edits show up without restarting the preview
	writeFile(t, dir, "index.tpl", `{{ submit("go", title) }}`)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if want := `<button name="go" type="submit">Join</button>`; rec.Body.String() != want {
		t.Fatalf("expected reloaded template, got %s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/timezones?q=Europe/Par", nil))
	if !strings.Contains(rec.Body.String(), `<option value="Europe/Paris">Europe/Paris</option>`) {
		t.Fatalf("expected timezone fragment, got %s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for a missing template, got %d", rec.Code)
	}
}
