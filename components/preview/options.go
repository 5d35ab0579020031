package preview

import "net/http"

// GuardFunc rejects a request before anything is rendered. Returning a value
// implementing HTTPError picks the response status.
type GuardFunc func(r *http.Request) error

type Options struct {
	RoutePath  string
	ListParams []string
	Document   bool
	Title      string
	MaxBody    int64
	Guard      GuardFunc
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:  "/components",
		ListParams: []string{"source", "selected"},
		Title:      "Component preview",
		MaxBody:    1 << 20,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = "/components"
	}
	if opts.MaxBody <= 0 {
		opts.MaxBody = 1 << 20
	}
	if opts.Title == "" {
		opts.Title = "Component preview"
	}
	if opts.ListParams != nil {
		opts.ListParams = append([]string{}, opts.ListParams...)
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

// WithListParams names query parameters that are always passed as sequences,
// even when they appear once.
func WithListParams(names ...string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ListParams = append([]string{}, names...)
	}
}

// WithDocument wraps the fragment in a full HTML page linking the component
// stylesheets.
func WithDocument(enabled bool) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Document = enabled
	}
}

func WithTitle(title string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Title = title
	}
}

func WithMaxBody(limit int64) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxBody = limit
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}
