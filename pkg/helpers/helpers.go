package helpers

import (
	"strings"

	"github.com/goliatone/go-formhelpers/pkg/markup"
)

const (
	tagForm     = "form"
	tagInput    = "input"
	tagLabel    = "label"
	tagButton   = "button"
	tagSelect   = "select"
	tagOption   = "option"
	tagTextarea = "textarea"
	tagError    = "div"

	typeText     = "text"
	typeButton   = "button"
	typeSubmit   = "submit"
	typeCheckbox = "checkbox"
	typeRadio    = "radio"
	typeFile     = "file"
	typeHidden   = "hidden"
	typePassword = "password"

	// multipleMarker in a field name means several inputs share it, so no id.
	multipleMarker = "[]"
)

// Helpers renders form elements using one configuration. It is safe for
// concurrent use; the configuration is fixed at construction.
type Helpers struct {
	cfg Config
}

// New builds helpers from options.
func New(options ...Option) *Helpers {
	return &Helpers{cfg: NewConfig(options...)}
}

// Config returns the configuration the helpers were built with.
func (h *Helpers) Config() Config {
	return h.cfg
}

// Form renders <form action="url" method="POST"> around the block body.
//
//	{{#form url class="form"}}...{{/form}}
func (h *Helpers) Form(url any, opts Options) (markup.HTML, error) {
	body, err := opts.render(opts.Context)
	if err != nil {
		return "", err
	}
	attrs := markup.Merge(markup.Attrs{
		{Key: "action", Value: url},
		{Key: "method", Value: "POST"},
	}, opts.Hash)
	return markup.HTML(markup.Element(tagForm, true, attrs, body)), nil
}

// Input renders a text input.
//
//	{{input "firstname" person.name}}
func (h *Helpers) Input(name string, value any, opts Options) markup.HTML {
	return h.input(markup.Attrs{
		{Key: "name", Value: name},
		{Key: "id", Value: name},
		{Key: "value", Value: value},
		{Key: "type", Value: typeText},
	}, opts)
}

// Label renders a label for the input id, or wraps the block body when called
// as a block helper. The for attribute is only set when input is a string.
//
//	{{label "name" "Please enter your name"}}
//	{{#label}}Anything here{{/label}}
func (h *Helpers) Label(input any, body any, opts Options) (markup.HTML, error) {
	content := h.content(body)
	if opts.IsBlock() {
		ctx := opts.Context
		if input != nil {
			ctx = input
		}
		rendered, err := opts.render(ctx)
		if err != nil {
			return "", err
		}
		if rendered != "" {
			content = rendered
		}
	}

	var attrs markup.Attrs
	if id, ok := input.(string); ok {
		attrs.Set("for", id)
	}
	attrs.Extend(opts.Hash)
	return markup.HTML(markup.Element(tagLabel, true, attrs, content)), nil
}

// Button renders <button type="button">.
//
//	{{button "save" "Submit form"}}
func (h *Helpers) Button(name string, body any, opts Options) markup.HTML {
	return h.button(name, typeButton, body, opts)
}

// Submit renders <button type="submit">.
//
//	{{submit "save" "Submit form"}}
func (h *Helpers) Submit(name string, body any, opts Options) markup.HTML {
	return h.button(name, typeSubmit, body, opts)
}

// Select renders a select with one option per item. A list selected value
// turns the select into a multiple select.
//
//	{{select "title" titles person.title}}
func (h *Helpers) Select(name string, items any, selected any, opts Options) markup.HTML {
	hash := opts.Hash.Clone()
	multiple := isList(selected)
	if multiple {
		hash.Set("multiple", true)
	}

	var options strings.Builder
	for _, choice := range Choices(items) {
		attrs := markup.Attrs{{Key: "value", Value: choice.Value}}
		if (multiple && containsValue(selected, choice.Value)) || (!multiple && sameValue(selected, choice.Value)) {
			attrs.Set("selected", true)
		}
		options.WriteString(markup.Element(tagOption, true, attrs, h.content(choice.Text)))
	}

	attrs := markup.Merge(markup.Attrs{
		{Key: "id", Value: name},
		{Key: "name", Value: name},
	}, hash)
	return markup.HTML(markup.Element(tagSelect, true, attrs, options.String()))
}

// Checkbox renders a checkbox input. Names using the "[]" sequence get no id
// since several inputs share them.
//
//	{{checkbox "food[]" "apples" true}}
func (h *Helpers) Checkbox(name string, value any, checked any, opts Options) markup.HTML {
	attrs := markup.Attrs{
		{Key: "name", Value: name},
		{Key: "type", Value: typeCheckbox},
		{Key: "value", Value: value},
	}
	if markup.Truthy(checked) {
		attrs.Set("checked", checked)
	}
	if !strings.Contains(name, multipleMarker) {
		attrs.Set("id", name)
	}
	return h.input(attrs, opts)
}

// Radio renders a radio input. Radios never carry an id and the type cannot
// be overridden.
//
//	{{radio "likes_cats" "1" true}}
func (h *Helpers) Radio(name string, value any, checked any, opts Options) markup.HTML {
	hash := opts.Hash.Clone()
	hash.Set("type", typeRadio)
	hash.Set("id", false)
	opts.Hash = hash
	return h.Checkbox(name, value, checked, opts)
}

// File renders a file input.
func (h *Helpers) File(name string, opts Options) markup.HTML {
	return h.input(markup.Attrs{
		{Key: "name", Value: name},
		{Key: "id", Value: name},
		{Key: "type", Value: typeFile},
	}, opts)
}

// Hidden renders a hidden input.
func (h *Helpers) Hidden(name string, value any, opts Options) markup.HTML {
	return h.input(markup.Attrs{
		{Key: "name", Value: name},
		{Key: "id", Value: name},
		{Key: "value", Value: value},
		{Key: "type", Value: typeHidden},
	}, opts)
}

// Password renders a password input.
func (h *Helpers) Password(name string, value any, opts Options) markup.HTML {
	return h.input(markup.Attrs{
		{Key: "name", Value: name},
		{Key: "id", Value: name},
		{Key: "value", Value: value},
		{Key: "type", Value: typePassword},
	}, opts)
}

// Textarea renders a textarea with body as its content.
func (h *Helpers) Textarea(name string, body any, opts Options) markup.HTML {
	attrs := markup.Merge(markup.Attrs{
		{Key: "name", Value: name},
		{Key: "id", Value: name},
	}, opts.Hash)
	return markup.HTML(markup.Element(tagTextarea, true, attrs, h.content(body)))
}

// FieldErrors renders one <div> per message recorded for name, carrying the
// hash attributes. As a block helper the body is repeated per message with
// the message as context. Fields without messages render nothing.
//
//	{{field_errors "surname" errors class="help-block"}}
//	{{#field_errors "name" errors}}<span>{{this}}</span>{{/field_errors}}
func (h *Helpers) FieldErrors(name string, errors any, opts Options) (markup.HTML, error) {
	messages := Messages(errors, name)
	if len(messages) == 0 {
		return "", nil
	}

	var out strings.Builder
	for _, message := range messages {
		if opts.IsBlock() {
			rendered, err := opts.render(message)
			if err != nil {
				return "", err
			}
			if rendered != "" {
				out.WriteString(rendered)
				continue
			}
		}
		out.WriteString(markup.Element(tagError, true, opts.Hash, h.content(message)))
	}
	return markup.HTML(out.String()), nil
}

func (h *Helpers) input(defaults markup.Attrs, opts Options) markup.HTML {
	return markup.HTML(markup.Element(tagInput, false, markup.Merge(defaults, opts.Hash), ""))
}

func (h *Helpers) button(name, kind string, body any, opts Options) markup.HTML {
	attrs := markup.Merge(markup.Attrs{
		{Key: "name", Value: name},
		{Key: "type", Value: kind},
	}, opts.Hash)
	return markup.HTML(markup.Element(tagButton, true, attrs, h.content(body)))
}

// content escapes plain values and passes trusted markup through the
// configured sanitizer, if any.
func (h *Helpers) content(v any) string {
	if h.cfg.Sanitizer != nil && markup.IsTrusted(v) {
		return h.cfg.Sanitizer.Sanitize(markup.String(v))
	}
	return markup.Content(v)
}
