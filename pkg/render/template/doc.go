// Package template defines the template renderer contract components use for
// caller-supplied sections and theme partials. The gotemplate subpackage
// provides the pongo2 backed implementation.
package template
