package helpers

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formhelpers/pkg/markup"
)

// Table is an in-memory helper table. Hosts embed it to resolve helpers by
// name; it also serves as a Registrar on its own.
//
// Registering an existing name replaces the previous helper, matching how
// template engines treat helper tables: the last registration wins.
type Table struct {
	mu      sync.RWMutex
	helpers map[string]HelperFunc
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		helpers: make(map[string]HelperFunc),
	}
}

// RegisterHelper implements Registrar.
func (t *Table) RegisterHelper(name string, fn HelperFunc) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidHelperName)
	}
	if fn == nil {
		return fmt.Errorf("helpers: helper %q func is required", name)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.helpers == nil {
		t.helpers = make(map[string]HelperFunc)
	}
	t.helpers[name] = fn
	return nil
}

// Lookup retrieves a helper by its registered name.
func (t *Table) Lookup(name string) (HelperFunc, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	fn, ok := t.helpers[name]
	return fn, ok
}

// Has reports whether a helper is registered under name.
func (t *Table) Has(name string) bool {
	_, ok := t.Lookup(name)
	return ok
}

// Remove deletes a helper.
func (t *Table) Remove(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.helpers, name)
}

// Names returns a sorted list of registered names.
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	names := make([]string, 0, len(t.helpers))
	for name := range t.helpers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call invokes the helper registered under name.
func (t *Table) Call(name string, args []any, opts Options) (markup.HTML, error) {
	fn, ok := t.Lookup(name)
	if !ok {
		return "", fmt.Errorf("helpers: helper %q not found", name)
	}
	return fn(Call{Args: args, Options: opts})
}
