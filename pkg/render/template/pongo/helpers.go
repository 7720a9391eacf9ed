package pongo

import (
	"fmt"
	"regexp"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-formhelpers/pkg/helpers"
	"github.com/goliatone/go-formhelpers/pkg/markup"
)

const (
	tableKey   = "__formhelpers"
	attrsFunc  = "attrs"
	helperFunc = "helper"
)

// pongo2 rejects context keys outside this alphabet, so namespaced helpers
// such as "app-input" are reachable only through helper() and the tags.
var identifierPattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

func isIdentifier(name string) bool {
	return identifierPattern.MatchString(name)
}

func isReserved(name string) bool {
	switch name {
	case tableKey, attrsFunc, helperFunc:
		return true
	}
	return false
}

// RegisterHelper stores fn under name. Names that are valid pongo2
// identifiers are also exposed as global functions.
func (e *Engine) RegisterHelper(name string, fn helpers.HelperFunc) error {
	if e == nil || e.set == nil {
		return fmt.Errorf("pongo: engine is nil")
	}
	if isReserved(name) {
		return fmt.Errorf("%w: %q is reserved", helpers.ErrInvalidHelperName, name)
	}
	if err := e.helpers.RegisterHelper(name, fn); err != nil {
		return err
	}
	if !isIdentifier(name) {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.set.Globals[name] = globalHelper(fn)
	return nil
}

// HasHelper reports whether name was registered.
func (e *Engine) HasHelper(name string) bool {
	if e == nil || e.helpers == nil {
		return false
	}
	return e.helpers.Has(name)
}

// Helpers exposes the engine's helper table.
func (e *Engine) Helpers() *helpers.Table {
	return e.helpers
}

func globalHelper(fn helpers.HelperFunc) func(args ...*pongo2.Value) (*pongo2.Value, error) {
	return func(args ...*pongo2.Value) (*pongo2.Value, error) {
		positional, hash := splitArgs(values(args))
		out, err := fn(helpers.Call{Args: positional, Options: helpers.Options{Hash: hash}})
		if err != nil {
			return nil, err
		}
		return pongo2.AsSafeValue(string(out)), nil
	}
}

func (e *Engine) callHelper(name *pongo2.Value, args ...*pongo2.Value) (*pongo2.Value, error) {
	positional, hash := splitArgs(values(args))
	out, err := e.helpers.Call(name.String(), positional, helpers.Options{Hash: hash})
	if err != nil {
		return nil, err
	}
	return pongo2.AsSafeValue(string(out)), nil
}

// attrs builds a hash from alternating key/value arguments:
// {{ input("email", "", attrs("class", "wide")) }}
func attrs(args ...*pongo2.Value) (*pongo2.Value, error) {
	out, err := markup.Pairs(values(args)...)
	if err != nil {
		return nil, fmt.Errorf("pongo: attrs: %w", err)
	}
	return pongo2.AsValue(out), nil
}

func values(args []*pongo2.Value) []any {
	out := make([]any, len(args))
	for i, arg := range args {
		if arg != nil {
			out[i] = arg.Interface()
		}
	}
	return out
}

// splitArgs treats a trailing markup.Attrs argument as the hash.
func splitArgs(args []any) ([]any, markup.Attrs) {
	if len(args) == 0 {
		return args, nil
	}
	if hash, ok := args[len(args)-1].(markup.Attrs); ok {
		return args[:len(args)-1], hash
	}
	return args, nil
}
