package helpers

import "github.com/goliatone/go-formhelpers/pkg/markup"

// LabelValidation is Label plus the validation class when input has errors.
//
//	{{label_validation "name" "Enter your name" errors}}
func (h *Helpers) LabelValidation(input any, body any, errors any, opts Options) (markup.HTML, error) {
	return h.Label(input, body, h.withValidation(markup.String(input), errors, opts))
}

// InputValidation is Input plus the validation class when name has errors.
//
//	{{input_validation "firstname" person.name errors}}
func (h *Helpers) InputValidation(name string, value any, errors any, opts Options) markup.HTML {
	return h.Input(name, value, h.withValidation(name, errors, opts))
}

// SelectValidation is Select plus the validation class when name has errors.
func (h *Helpers) SelectValidation(name string, items any, selected any, errors any, opts Options) markup.HTML {
	return h.Select(name, items, selected, h.withValidation(name, errors, opts))
}

// CheckboxValidation is Checkbox plus the validation class when name has errors.
func (h *Helpers) CheckboxValidation(name string, value any, checked any, errors any, opts Options) markup.HTML {
	return h.Checkbox(name, value, checked, h.withValidation(name, errors, opts))
}

// RadioValidation is Radio plus the validation class when name has errors.
func (h *Helpers) RadioValidation(name string, value any, checked any, errors any, opts Options) markup.HTML {
	return h.Radio(name, value, checked, h.withValidation(name, errors, opts))
}

// FileValidation is File plus the validation class when name has errors.
func (h *Helpers) FileValidation(name string, errors any, opts Options) markup.HTML {
	return h.File(name, h.withValidation(name, errors, opts))
}

// PasswordValidation is Password plus the validation class when name has errors.
func (h *Helpers) PasswordValidation(name string, value any, errors any, opts Options) markup.HTML {
	return h.Password(name, value, h.withValidation(name, errors, opts))
}

// TextareaValidation is Textarea plus the validation class when name has errors.
func (h *Helpers) TextareaValidation(name string, body any, errors any, opts Options) markup.HTML {
	return h.Textarea(name, body, h.withValidation(name, errors, opts))
}

// withValidation returns opts with the validation class appended to a copy of
// the hash when field has errors. The caller's hash is left untouched.
func (h *Helpers) withValidation(field string, errors any, opts Options) Options {
	if !HasError(errors, field) {
		return opts
	}
	hash := opts.Hash.Clone()
	existing, _ := hash.Get("class")
	hash.Set("class", appendClass(existing, h.cfg.ValidationErrorClass))
	opts.Hash = hash
	return opts
}

// appendClass adds class after the caller's class value as given, without
// normalising whitespace or removing a class the caller already set.
func appendClass(existing any, class string) string {
	if !markup.Truthy(existing) {
		return class
	}
	return markup.String(existing) + " " + class
}
