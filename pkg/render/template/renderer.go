package template

import (
	"io"

	"github.com/goliatone/go-formhelpers/pkg/helpers"
)

// TemplateRenderer is the rendering contract shared by the host engines.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	GlobalContext(data any) error
}

// HelperHost is a TemplateRenderer that form helpers can be registered into.
type HelperHost interface {
	TemplateRenderer
	helpers.Registrar
	HasHelper(name string) bool
}
