package viewkit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-viewkit/pkg/component"
	"github.com/goliatone/go-viewkit/pkg/component/checkboxlist"
	"github.com/goliatone/go-viewkit/pkg/component/faq"
	rendertemplate "github.com/goliatone/go-viewkit/pkg/render/template"
	"github.com/goliatone/go-viewkit/pkg/render/template/gotemplate"
)

// ErrUnknownComponent is returned when Render is asked for a name the
// registry does not know.
var ErrUnknownComponent = errors.New("viewkit: unknown component")

// DefaultAssetBase is the URL prefix the default stylesheet is published under.
const DefaultAssetBase = "/assets/viewkit/"

// Params aliases component.Params so callers can build parameter maps from
// the top-level package.
type Params = component.Params

// PageState aliases component.PageState.
type PageState = component.PageState

// NewPageState returns an empty per-page state.
func NewPageState() *PageState {
	return component.NewPageState()
}

// Option configures a Kit.
type Option func(*Kit)

// Kit renders registered components by name with a shared set of host
// collaborators.
type Kit struct {
	registry    *component.Registry
	templates   rendertemplate.TemplateRenderer
	templateFS  fs.FS
	theme       *theme.RendererConfig
	selector    theme.ThemeSelector
	themeName   string
	variant     string
	fallbacks   map[string]string
	binder      component.Binder
	scripts     component.ScriptHelper
	assetBase   string
	engineFlags []gotemplate.Option
}

// WithRegistry replaces the default component registry.
func WithRegistry(registry *component.Registry) Option {
	return func(k *Kit) {
		if registry != nil {
			k.registry = registry
		}
	}
}

// WithTemplateRenderer supplies the engine used for sections and theme
// partials.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(k *Kit) {
		if renderer != nil {
			k.templates = renderer
		}
	}
}

// WithTemplateFS builds the default pongo2 engine over fsys so theme partials
// can reference template files.
func WithTemplateFS(fsys fs.FS) Option {
	return func(k *Kit) {
		k.templateFS = fsys
	}
}

// WithEngineOptions forwards options to the default pongo2 engine, for
// example globals and filters used by sections or a template directory for
// theme partials. It has no effect with WithTemplateRenderer.
func WithEngineOptions(options ...gotemplate.Option) Option {
	return func(k *Kit) {
		k.engineFlags = append(k.engineFlags, options...)
	}
}

// WithTheme uses cfg for partial overrides and asset URLs.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(k *Kit) {
		k.theme = cfg
	}
}

// WithThemeSelector resolves the renderer theme through selector when the
// Kit is built.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(k *Kit) {
		k.selector = selector
		k.themeName = name
		k.variant = variant
	}
}

// WithThemeFallbacks registers partials used when the selected theme does not
// define a template for a key.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(k *Kit) {
		k.fallbacks = cloneStrings(fallbacks)
	}
}

// WithBinder replaces the default HTML form binder.
func WithBinder(binder component.Binder) Option {
	return func(k *Kit) {
		k.binder = binder
	}
}

// WithScriptHelper replaces the default script tag writer.
func WithScriptHelper(helper component.ScriptHelper) Option {
	return func(k *Kit) {
		k.scripts = helper
	}
}

// WithAssetBase changes the URL prefix used for the default stylesheet.
func WithAssetBase(base string) Option {
	return func(k *Kit) {
		k.assetBase = base
	}
}

// New builds a Kit with the checkbox list and FAQ components registered.
func New(options ...Option) (*Kit, error) {
	kit := &Kit{assetBase: DefaultAssetBase}
	for _, opt := range options {
		if opt != nil {
			opt(kit)
		}
	}

	if kit.registry == nil {
		kit.registry = DefaultRegistry(kit.assetBase)
	}

	if kit.templates == nil {
		engineOpts := append([]gotemplate.Option{}, kit.engineFlags...)
		if kit.templateFS != nil {
			engineOpts = append(engineOpts, gotemplate.WithFS(kit.templateFS))
		} else {
			engineOpts = append(engineOpts, gotemplate.WithStringsOnly())
		}
		engine, err := gotemplate.New(engineOpts...)
		if err != nil {
			return nil, fmt.Errorf("viewkit: template engine: %w", err)
		}
		kit.templates = engine
	}

	if kit.theme == nil && kit.selector != nil {
		selection, err := kit.selector.Select(kit.themeName, kit.variant)
		if err != nil {
			return nil, fmt.Errorf("viewkit: select theme %q: %w", kit.themeName, err)
		}
		kit.theme = rendererConfig(selection, kit.fallbacks)
	}

	return kit, nil
}

// DefaultRegistry returns a registry holding the built-in components with the
// default stylesheet published under assetBase.
func DefaultRegistry(assetBase string) *component.Registry {
	stylesheet := stylesheetURL(assetBase)
	registry := component.NewRegistry()

	for _, descriptor := range []component.Descriptor{checkboxlist.Descriptor(), faq.Descriptor()} {
		if stylesheet != "" {
			descriptor.Stylesheets = append(descriptor.Stylesheets, stylesheet)
		}
		registry.MustRegister(descriptor.Name, descriptor)
	}
	return registry
}

// Registry exposes the component registry for callers adding their own
// components.
func (k *Kit) Registry() *component.Registry {
	return k.registry
}

// Names lists the registered component names.
func (k *Kit) Names() []string {
	return k.registry.Names()
}

// Assets returns the de-duplicated stylesheets and scripts the named
// components need.
func (k *Kit) Assets(names ...string) ([]string, []component.Script) {
	return k.registry.Assets(names)
}

// Theme returns the renderer theme in use, if any.
func (k *Kit) Theme() *theme.RendererConfig {
	return k.theme
}

// Render renders the component registered under name. page carries sticky
// values and counters across renders on one page; nil scopes them to this
// call.
func (k *Kit) Render(ctx context.Context, name string, params Params, page *PageState) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	descriptor, ok := k.registry.Descriptor(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, strings.TrimSpace(name))
	}

	if page == nil {
		page = component.NewPageState()
	}

	var buf bytes.Buffer
	if err := descriptor.Renderer(&buf, params, k.renderData(page)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderHTML renders like Render and returns the markup typed for
// html/template hosts.
func (k *Kit) RenderHTML(ctx context.Context, name string, params Params, page *PageState) (template.HTML, error) {
	out, err := k.Render(ctx, name, params, page)
	if err != nil {
		return "", err
	}
	return template.HTML(out), nil
}

// FuncMap exposes a "component" function for html/template hosts. Each call
// shares page.
func (k *Kit) FuncMap(ctx context.Context, page *PageState) template.FuncMap {
	return template.FuncMap{
		"component": func(name string, params map[string]any) (template.HTML, error) {
			return k.RenderHTML(ctx, name, Params(params), page)
		},
	}
}

func (k *Kit) renderData(page *PageState) component.RenderData {
	return component.RenderData{
		Template: k.templates,
		Theme:    k.theme,
		Page:     page,
		Binder:   k.binder,
		Scripts:  k.scripts,
	}
}

func stylesheetURL(base string) string {
	base = strings.TrimSpace(base)
	if base == "" {
		return ""
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + StylesheetName
}

func cloneStrings(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for key, value := range src {
		out[key] = value
	}
	return out
}
