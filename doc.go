// Package viewkit renders server-side view components (a checkbox list bound
// to a data source and collapsible FAQ blocks) by name.
//
// A Kit holds the collaborators components render with: a component
// registry, a pongo2 template engine for caller sections and theme partials,
// an optional go-theme renderer configuration, a form binder and a script
// helper. Per-page state (sticky CSS classes, FAQ numbering and scripts
// already emitted) lives in a PageState the caller creates once per page and
// passes to every Render call.
//
//	kit, err := viewkit.New()
//	page := viewkit.NewPageState()
//	html, err := kit.Render(ctx, "faq", viewkit.Params{"entries": entries}, page)
package viewkit
