// Package preview exposes registered view components over net/http so they can
// be inspected in a browser or fetched as HTML fragments.
//
// GET and HEAD requests to <base>/components/{name} render the named component
// with the query string as its parameters; repeated keys and the configured
// list parameters become sequences. POST requests take the parameters from a
// YAML or JSON body instead.
package preview
