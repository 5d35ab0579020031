package preview

import "net/http"

// Component is a small, extraction-friendly wrapper around the preview
// handler, its configuration, and routing helpers.
type Component struct {
	renderer Renderer
	opts     Options
}

// New constructs a new component with default options plus any overrides.
func New(renderer Renderer, fns ...OptionFn) *Component {
	return &Component{renderer: renderer, opts: NewOptions(fns...)}
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	if c == nil {
		return DefaultOptions()
	}
	return NewOptions(func(o *Options) { *o = c.opts })
}

// Handler returns a net/http handler rendering component previews.
func (c *Component) Handler() http.Handler {
	if c == nil {
		return HandlerWithOptions(nil, DefaultOptions())
	}
	return HandlerWithOptions(c.renderer, c.opts)
}

// RegisterRoutes registers the component handler under basePath on mux.
func (c *Component) RegisterRoutes(mux Mux, basePath string) (string, error) {
	if c == nil {
		return RegisterRoutesWithOptions(mux, nil, basePath, DefaultOptions())
	}
	return RegisterRoutesWithOptions(mux, c.renderer, basePath, c.opts)
}
