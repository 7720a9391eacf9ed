package formhelpers_test

import (
	"errors"
	"testing"

	formhelpers "github.com/goliatone/go-formhelpers"
	"github.com/goliatone/go-formhelpers/pkg/helpers"
	"github.com/goliatone/go-formhelpers/pkg/render/template/htmltemplate"
)

func TestRegister_Namespace(t *testing.T) {
	table := helpers.NewTable()
	if _, err := formhelpers.Register(table, formhelpers.WithNamespace("test")); err != nil {
		t.Fatalf("register: %v", err)
	}
	if !table.Has("test-form") || table.Has("form") {
		t.Fatalf("unexpected helpers %v", table.Names())
	}
}

func TestNewPongo(t *testing.T) {
	engine, err := formhelpers.NewPongo(nil, formhelpers.WithNamespace("app"))
	if err != nil {
		t.Fatalf("new pongo: %v", err)
	}

	got, err := engine.RenderString(`{% formhelper "app-input" "email" %}`, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := `<input name="email" id="email" type="text" />`; got != want {
		t.Fatalf("markup mismatch\nwant: %s\n got: %s", want, got)
	}
}

func TestNewHTMLTemplate(t *testing.T) {
	host, err := formhelpers.NewHTMLTemplate([]htmltemplate.Option{htmltemplate.WithSprig()},
		formhelpers.WithValidationErrorClass("invalid"))
	if err != nil {
		t.Fatalf("new html template: %v", err)
	}

	got, err := host.RenderString(`{{select "n" (list 1 2) (list 2)}}`, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<select id="n" name="n" multiple="multiple"><option value="1">1</option><option value="2" selected="selected">2</option></select>`
	if got != want {
		t.Fatalf("markup mismatch\nwant: %s\n got: %s", want, got)
	}

	_, err = formhelpers.NewHTMLTemplate(nil, formhelpers.WithNamespace("app"))
	if !errors.Is(err, helpers.ErrInvalidHelperName) {
		t.Fatalf("expected ErrInvalidHelperName, got %v", err)
	}
}
