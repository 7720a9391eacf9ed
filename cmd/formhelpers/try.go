package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formhelpers/pkg/helpers"
	"github.com/goliatone/go-formhelpers/pkg/markup"
)

// prompter is the subset of survey the try command needs.
type prompter interface {
	Select(message string, options []string) (string, error)
	Input(message, help string) (string, error)
	Confirm(message string) (bool, error)
}

type argKind int

const (
	argText argKind = iota
	argBool
	argList
	argErrors
)

type argSpec struct {
	label string
	kind  argKind
}

var (
	nameArg   = argSpec{label: "name", kind: argText}
	valueArg  = argSpec{label: "value", kind: argText}
	bodyArg   = argSpec{label: "content", kind: argText}
	errorsArg = argSpec{label: "error message (blank for none)", kind: argErrors}
)

// argSpecs lists the positional arguments of an unqualified helper name.
func argSpecs(name string) []argSpec {
	base, validation := strings.CutSuffix(name, helpers.ValidationSuffix)

	var specs []argSpec
	switch base {
	case helpers.NameForm:
		specs = []argSpec{{label: "action url", kind: argText}}
	case helpers.NameLabel:
		specs = []argSpec{{label: "input id", kind: argText}, bodyArg}
	case helpers.NameButton, helpers.NameSubmit, helpers.NameTextarea:
		specs = []argSpec{nameArg, bodyArg}
	case helpers.NameSelect:
		specs = []argSpec{nameArg, {label: "options (comma separated)", kind: argList}, {label: "selected value", kind: argText}}
	case helpers.NameCheckbox, helpers.NameRadio:
		specs = []argSpec{nameArg, valueArg, {label: "checked", kind: argBool}}
	case helpers.NameFile:
		specs = []argSpec{nameArg}
	case helpers.NameFieldErrors:
		specs = []argSpec{nameArg, errorsArg}
	default:
		specs = []argSpec{nameArg, valueArg}
	}
	if validation {
		specs = append(specs, errorsArg)
	}
	return specs
}

// collectArgs prompts for each spec and converts answers into helper
// arguments. Error messages are keyed by the first argument, the field name.
func collectArgs(p prompter, specs []argSpec) ([]any, error) {
	args := make([]any, 0, len(specs))
	for _, spec := range specs {
		switch spec.kind {
		case argBool:
			checked, err := p.Confirm(spec.label + "?")
			if err != nil {
				return nil, err
			}
			args = append(args, checked)
		default:
			answer, err := p.Input(spec.label+":", "")
			if err != nil {
				return nil, err
			}
			args = append(args, convertAnswer(spec.kind, answer, args))
		}
	}
	return args, nil
}

func convertAnswer(kind argKind, answer string, previous []any) any {
	switch kind {
	case argList:
		var items []any
		for _, item := range strings.Split(answer, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		return items
	case argErrors:
		errs := helpers.Errors{}
		if len(previous) > 0 {
			errs.Add(markup.String(previous[0]), answer)
		}
		return errs
	}
	return answer
}

func tryCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "try",
		Short: "Pick a helper and arguments interactively and print its markup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.helperOptions()
			if err != nil {
				return err
			}
			out, err := runTry(surveyPrompter{}, opts)
			if err != nil {
				if errors.Is(err, terminal.InterruptErr) {
					return nil
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func runTry(p prompter, opts []helpers.Option) (markup.HTML, error) {
	table := helpers.NewTable()
	h, err := helpers.Register(table, opts...)
	if err != nil {
		return "", err
	}

	names := helpers.Names()
	choice, err := p.Select("Helper:", names)
	if err != nil {
		return "", err
	}

	args, err := collectArgs(p, argSpecs(choice))
	if err != nil {
		return "", err
	}

	var options helpers.Options
	if choice == helpers.NameForm {
		body, err := p.Input("form body:", "Markup placed inside the form")
		if err != nil {
			return "", err
		}
		options.Fn = func(any) (string, error) { return body, nil }
	}

	return table.Call(h.Config().QualifiedName(choice), args, options)
}

type surveyPrompter struct{}

func (surveyPrompter) Select(message string, options []string) (string, error) {
	var out string
	err := survey.AskOne(&survey.Select{Message: message, Options: options, PageSize: 12}, &out)
	return out, err
}

func (surveyPrompter) Input(message, help string) (string, error) {
	var out string
	err := survey.AskOne(&survey.Input{Message: message, Help: help}, &out)
	return out, err
}

func (surveyPrompter) Confirm(message string) (bool, error) {
	var out bool
	err := survey.AskOne(&survey.Confirm{Message: message}, &out)
	return out, err
}
