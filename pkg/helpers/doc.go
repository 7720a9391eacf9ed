// Package helpers implements form-element template helpers: inputs, selects,
// checkboxes, radios, labels, buttons, textareas and field error lists, plus
// "_validation" variants that append a CSS class when a field has errors.
//
// Helpers are engine neutral. Each one is exposed as a method on *Helpers and
// as a HelperFunc that host adapters bind into their template engine:
//
//	table := helpers.NewTable()
//	h, err := helpers.Register(table, helpers.WithNamespace("app"))
//	// table now holds "app-form", "app-input", ...
//
// Every call receives a trailing Options value with the caller's attribute
// overrides (the options hash) and, for block helpers, a render callback for
// the nested template content. Caller attributes always win over the helper
// defaults.
package helpers
