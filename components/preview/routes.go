package preview

import (
	"fmt"
	"net/http"
	"strings"
)

// Mux is the minimal interface required to register a net/http handler.
// It is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// MountPath returns the subtree pattern the preview handler is mounted on
// under basePath.
func MountPath(basePath string, fns ...OptionFn) string {
	opts := NewOptions(fns...)
	return mountPath(basePath, opts.RoutePath)
}

// ComponentPath returns the URL previewing the named component.
func ComponentPath(basePath, name string, fns ...OptionFn) string {
	return MountPath(basePath, fns...) + strings.TrimSpace(name)
}

// RegisterRoutes registers the preview handler under basePath on mux.
func RegisterRoutes(mux Mux, renderer Renderer, basePath string, fns ...OptionFn) (string, error) {
	opts := NewOptions(fns...)
	return RegisterRoutesWithOptions(mux, renderer, basePath, opts)
}

// RegisterRoutesWithOptions registers a handler under basePath using a pre-built Options value.
// Callers are expected to pass an Options value produced by NewOptions (or equivalent) so defaults apply.
func RegisterRoutesWithOptions(mux Mux, renderer Renderer, basePath string, opts Options) (string, error) {
	if mux == nil {
		return "", fmt.Errorf("preview: missing mux")
	}
	if renderer == nil {
		return "", fmt.Errorf("preview: missing renderer")
	}
	opts = NewOptions(func(o *Options) { *o = opts })
	pattern := mountPath(basePath, opts.RoutePath)
	mux.Handle(pattern, HandlerWithOptions(renderer, opts))
	return pattern, nil
}

func mountPath(basePath, routePath string) string {
	basePath = strings.TrimSpace(basePath)
	routePath = strings.Trim(strings.TrimSpace(routePath), "/")

	prefix := ""
	if basePath != "" && basePath != "/" {
		if !strings.HasPrefix(basePath, "/") {
			basePath = "/" + basePath
		}
		prefix = strings.TrimRight(basePath, "/")
	}
	if routePath == "" {
		return prefix + "/"
	}
	return prefix + "/" + routePath + "/"
}
