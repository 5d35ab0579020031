// Package component holds the runtime shared by the view components: named
// parameters supplied by a host template, the error kinds components report,
// the per-page state threaded through successive renders, the collaborators
// a host provides (template renderer, form binder, script helper) and the
// registry that maps component names to renderers and their assets.
package component
