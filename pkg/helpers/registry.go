package helpers

import (
	"fmt"

	"github.com/goliatone/go-formhelpers/pkg/markup"
)

// Helper names, before namespacing.
const (
	NameForm     = "form"
	NameInput    = "input"
	NameLabel    = "label"
	NameButton   = "button"
	NameSubmit   = "submit"
	NameSelect   = "select"
	NameCheckbox = "checkbox"
	NameRadio    = "radio"
	NameFile     = "file"
	NameHidden   = "hidden"
	NamePassword = "password"
	NameTextarea = "textarea"

	NameFieldErrors = "field_errors"

	// ValidationSuffix marks the validation variant of a helper.
	ValidationSuffix = "_validation"
)

// Registrar is a host engine's helper table.
type Registrar interface {
	RegisterHelper(name string, fn HelperFunc) error
}

// Entry pairs an unqualified helper name with its callable.
type Entry struct {
	Name string
	Fn   HelperFunc
}

// Names lists every helper name in registration order.
func Names() []string {
	entries := New().Entries()
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name)
	}
	return names
}

// Register builds helpers from options and binds all of them into host.
func Register(host Registrar, options ...Option) (*Helpers, error) {
	h := New(options...)
	if err := h.RegisterWith(host); err != nil {
		return nil, err
	}
	return h, nil
}

// RegisterWith binds every helper into host under its qualified name.
func (h *Helpers) RegisterWith(host Registrar) error {
	if host == nil {
		return fmt.Errorf("helpers: host registrar is required")
	}
	for _, entry := range h.Entries() {
		name := h.cfg.QualifiedName(entry.Name)
		if err := host.RegisterHelper(name, entry.Fn); err != nil {
			return fmt.Errorf("helpers: register %q: %w", name, err)
		}
		h.cfg.Logger.Debug("form helper registered", "name", name)
	}
	return nil
}

// Entries returns the helpers as engine-neutral callables, in registration
// order. Positional arguments follow the method signatures.
func (h *Helpers) Entries() []Entry {
	return []Entry{
		{NameForm, h.callForm},
		{NameInput, h.callInput},
		{NameLabel, h.callLabel},
		{NameButton, h.callButton},
		{NameSubmit, h.callSubmit},
		{NameSelect, h.callSelect},
		{NameCheckbox, h.callCheckbox},
		{NameRadio, h.callRadio},
		{NameFile, h.callFile},
		{NameHidden, h.callHidden},
		{NamePassword, h.callPassword},
		{NameTextarea, h.callTextarea},
		{NameLabel + ValidationSuffix, h.callLabelValidation},
		{NameInput + ValidationSuffix, h.callInputValidation},
		{NameSelect + ValidationSuffix, h.callSelectValidation},
		{NameCheckbox + ValidationSuffix, h.callCheckboxValidation},
		{NameRadio + ValidationSuffix, h.callRadioValidation},
		{NameFile + ValidationSuffix, h.callFileValidation},
		{NamePassword + ValidationSuffix, h.callPasswordValidation},
		{NameTextarea + ValidationSuffix, h.callTextareaValidation},
		{NameFieldErrors, h.callFieldErrors},
	}
}

func (h *Helpers) callForm(c Call) (markup.HTML, error) {
	return h.Form(c.Arg(0), c.Options)
}

func (h *Helpers) callInput(c Call) (markup.HTML, error) {
	return h.Input(c.String(0), c.Arg(1), c.Options), nil
}

func (h *Helpers) callLabel(c Call) (markup.HTML, error) {
	return h.Label(c.Arg(0), c.Arg(1), c.Options)
}

func (h *Helpers) callButton(c Call) (markup.HTML, error) {
	return h.Button(c.String(0), c.Arg(1), c.Options), nil
}

func (h *Helpers) callSubmit(c Call) (markup.HTML, error) {
	return h.Submit(c.String(0), c.Arg(1), c.Options), nil
}

func (h *Helpers) callSelect(c Call) (markup.HTML, error) {
	return h.Select(c.String(0), c.Arg(1), c.Arg(2), c.Options), nil
}

func (h *Helpers) callCheckbox(c Call) (markup.HTML, error) {
	return h.Checkbox(c.String(0), c.Arg(1), c.Arg(2), c.Options), nil
}

func (h *Helpers) callRadio(c Call) (markup.HTML, error) {
	return h.Radio(c.String(0), c.Arg(1), c.Arg(2), c.Options), nil
}

func (h *Helpers) callFile(c Call) (markup.HTML, error) {
	return h.File(c.String(0), c.Options), nil
}

func (h *Helpers) callHidden(c Call) (markup.HTML, error) {
	return h.Hidden(c.String(0), c.Arg(1), c.Options), nil
}

func (h *Helpers) callPassword(c Call) (markup.HTML, error) {
	return h.Password(c.String(0), c.Arg(1), c.Options), nil
}

func (h *Helpers) callTextarea(c Call) (markup.HTML, error) {
	return h.Textarea(c.String(0), c.Arg(1), c.Options), nil
}

func (h *Helpers) callLabelValidation(c Call) (markup.HTML, error) {
	return h.LabelValidation(c.Arg(0), c.Arg(1), c.Arg(2), c.Options)
}

func (h *Helpers) callInputValidation(c Call) (markup.HTML, error) {
	return h.InputValidation(c.String(0), c.Arg(1), c.Arg(2), c.Options), nil
}

func (h *Helpers) callSelectValidation(c Call) (markup.HTML, error) {
	return h.SelectValidation(c.String(0), c.Arg(1), c.Arg(2), c.Arg(3), c.Options), nil
}

func (h *Helpers) callCheckboxValidation(c Call) (markup.HTML, error) {
	return h.CheckboxValidation(c.String(0), c.Arg(1), c.Arg(2), c.Arg(3), c.Options), nil
}

func (h *Helpers) callRadioValidation(c Call) (markup.HTML, error) {
	return h.RadioValidation(c.String(0), c.Arg(1), c.Arg(2), c.Arg(3), c.Options), nil
}

func (h *Helpers) callFileValidation(c Call) (markup.HTML, error) {
	return h.FileValidation(c.String(0), c.Arg(1), c.Options), nil
}

func (h *Helpers) callPasswordValidation(c Call) (markup.HTML, error) {
	return h.PasswordValidation(c.String(0), c.Arg(1), c.Arg(2), c.Options), nil
}

func (h *Helpers) callTextareaValidation(c Call) (markup.HTML, error) {
	return h.TextareaValidation(c.String(0), c.Arg(1), c.Arg(2), c.Options), nil
}

func (h *Helpers) callFieldErrors(c Call) (markup.HTML, error) {
	return h.FieldErrors(c.String(0), c.Arg(1), c.Options)
}
