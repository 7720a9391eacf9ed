package testsupport

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// People returns the select fixture used across helper and host tests.
func People() []map[string]any {
	return []map[string]any{
		{"value": 1, "text": "Richard"},
		{"value": 2, "text": "John"},
	}
}

// FormErrors returns a validation error collection keyed by field name.
func FormErrors() map[string][]string {
	return map[string][]string{
		"name":     {"Please enter a name"},
		"text":     {"Please enter some text", "Some text missing"},
		"password": {"Please enter a password"},
	}
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file with trailing newlines removed.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return strings.TrimRight(string(MustReadGolden(t, path)), "\n")
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// AssertGolden compares got against the golden file at path, rewriting it
// first when UPDATE_GOLDENS is set.
func AssertGolden(t *testing.T, path string, got string) {
	t.Helper()
	if WriteMaybeGolden(t, path, []byte(got+"\n")) {
		return
	}
	want := MustReadGoldenString(t, path)
	if diff := cmp.Diff(want, strings.TrimRight(got, "\n")); diff != "" {
		t.Fatalf("golden mismatch %s (-want +got):\n%s", path, diff)
	}
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
