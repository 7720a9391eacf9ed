package helpers

import (
	"github.com/goliatone/go-formhelpers/pkg/markup"
)

// BlockFunc renders the nested content of a block helper with ctx as the
// template context.
type BlockFunc func(ctx any) (string, error)

// Options carries everything a helper receives besides its positional
// arguments.
type Options struct {
	// Hash holds caller attribute overrides, merged over helper defaults.
	Hash markup.Attrs
	// Fn renders the block body. It is nil for inline calls.
	Fn BlockFunc
	// Context is the template context at the call site.
	Context any
}

// IsBlock reports whether the helper was invoked with a body.
func (o Options) IsBlock() bool {
	return o.Fn != nil
}

func (o Options) render(ctx any) (string, error) {
	if o.Fn == nil {
		return "", nil
	}
	return o.Fn(ctx)
}

// Call is an engine-neutral helper invocation.
type Call struct {
	Args    []any
	Options Options
}

// Arg returns the positional argument at idx, or nil when it was omitted.
func (c Call) Arg(idx int) any {
	if idx < 0 || idx >= len(c.Args) {
		return nil
	}
	return c.Args[idx]
}

// String returns the positional argument at idx as text.
func (c Call) String(idx int) string {
	return markup.String(c.Arg(idx))
}

// HelperFunc is the callable a host engine binds under a helper name.
type HelperFunc func(call Call) (markup.HTML, error)
