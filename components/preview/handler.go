package preview

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/http"
	"path"
	"strings"

	"github.com/goliatone/go-viewkit"
	"github.com/goliatone/go-viewkit/pkg/component"
)

// Renderer renders a component by name. *viewkit.Kit satisfies it.
type Renderer interface {
	Render(ctx context.Context, name string, params component.Params, page *component.PageState) ([]byte, error)
}

// AssetSource reports the stylesheets a set of components needs. Renderers
// that implement it get their stylesheets linked in document mode.
type AssetSource interface {
	Assets(names ...string) ([]string, []component.Script)
}

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// Handler builds a handler rendering through renderer with default options
// plus any overrides.
func Handler(renderer Renderer, fns ...OptionFn) http.Handler {
	return HandlerWithOptions(renderer, NewOptions(fns...))
}

// HandlerWithOptions builds a net/http handler from a pre-constructed Options value.
// Callers are expected to pass an Options value produced by NewOptions (or equivalent)
// so defaults/clamps are applied.
func HandlerWithOptions(renderer Renderer, opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead && r.Method != http.MethodPost {
			w.Header().Set("Allow", strings.Join([]string{http.MethodGet, http.MethodHead, http.MethodPost}, ", "))
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				writeGuardError(w, err)
				return
			}
		}

		if renderer == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		name := componentName(r.URL.Path)
		if name == "" {
			http.NotFound(w, r)
			return
		}

		params := QueryParams(r.URL.Query(), opts.ListParams)
		if r.Method == http.MethodPost {
			body, err := BodyParams(http.MaxBytesReader(w, r.Body, opts.MaxBody))
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			for key, value := range body {
				params[key] = value
			}
		}

		out, err := renderer.Render(r.Context(), name, params, component.NewPageState())
		if err != nil {
			writeRenderError(w, err)
			return
		}

		if opts.Document {
			out = document(opts.Title, stylesheets(renderer, name), out)
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write(out)
	})
}

// StatusFor maps a render error to the HTTP status the handler answers with.
func StatusFor(err error) int {
	var httpErr HTTPError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &httpErr) && httpErr.StatusCode() > 0:
		return httpErr.StatusCode()
	case errors.Is(err, viewkit.ErrUnknownComponent):
		return http.StatusNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	}
	if _, ok := component.KindOf(err); ok {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeRenderError(w http.ResponseWriter, err error) {
	code := StatusFor(err)
	if code == http.StatusBadRequest {
		http.Error(w, err.Error(), code)
		return
	}
	http.Error(w, http.StatusText(code), code)
}

func writeGuardError(w http.ResponseWriter, err error) {
	if w == nil {
		return
	}
	if err == nil {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	http.Error(w, http.StatusText(code), code)
}

func componentName(urlPath string) string {
	name := path.Base(strings.TrimRight(urlPath, "/"))
	if name == "." || name == "/" {
		return ""
	}
	return name
}

func stylesheets(renderer Renderer, name string) []string {
	source, ok := renderer.(AssetSource)
	if !ok {
		return nil
	}
	styles, _ := source.Assets(name)
	return styles
}

func document(title string, styles []string, body []byte) []byte {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(title))
	for _, href := range styles {
		fmt.Fprintf(&b, "<link rel=\"stylesheet\" href=\"%s\">\n", html.EscapeString(href))
	}
	b.WriteString("</head>\n<body>\n")
	b.Write(body)
	b.WriteString("\n</body>\n</html>\n")
	return []byte(b.String())
}
