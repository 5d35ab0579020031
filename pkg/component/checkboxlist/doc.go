// Package checkboxlist renders a list of checkboxes bound to a data source.
//
// Each source item becomes one checkbox produced by the host's form binder.
// Labels come from a display accessor and are split from PascalCase into
// words. With a positive column count the items are laid out left to right
// in a single-row table; otherwise they render as a plain list.
package checkboxlist
