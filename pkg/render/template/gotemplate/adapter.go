package gotemplate

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-viewkit/pkg/render/template"
	"github.com/goliatone/go-viewkit/pkg/textcase"
)

// DefaultExtension is appended to template names that carry no extension.
const DefaultExtension = ".tpl"

// Filter transforms a template value. param is nil when the template passes
// no argument.
type Filter func(input any, param any) (any, error)

// Option configures an Engine before construction.
type Option func(*config)

type config struct {
	baseDir     string
	files       fs.FS
	extension   string
	globals     map[string]any
	filters     map[string]Filter
	stringsOnly bool
}

// WithBaseDir loads named templates from dir on disk. It can be combined
// with WithFS, in which case the directory is searched first.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS loads named templates from files.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.files = files
	}
}

// WithStringsOnly allows an engine without a template source. Such an engine
// renders inline sections only and RenderTemplate reports the missing file.
func WithStringsOnly() Option {
	return func(cfg *config) {
		cfg.stringsOnly = true
	}
}

// WithExtension changes the extension appended to template names. A missing
// leading dot is added.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return
		}
		if ext[0] != '.' {
			ext = "." + ext
		}
		cfg.extension = ext
	}
}

// WithGlobals exposes values to every section and partial. Per render data
// wins over a global with the same key.
func WithGlobals(values map[string]any) Option {
	return func(cfg *config) {
		if cfg.globals == nil {
			cfg.globals = make(map[string]any, len(values))
		}
		for key, value := range values {
			if key = strings.TrimSpace(key); key != "" {
				cfg.globals[key] = value
			}
		}
	}
}

// WithFilters registers filters when the engine is built. pongo2 filters are
// process wide, so a name that is already registered keeps its first
// implementation.
func WithFilters(filters map[string]Filter) Option {
	return func(cfg *config) {
		if cfg.filters == nil {
			cfg.filters = make(map[string]Filter, len(filters))
		}
		for name, fn := range filters {
			cfg.filters[name] = fn
		}
	}
}

// Engine renders component sections and theme partials with pongo2.
// Autoescaping is on, so markup passed in the context must be piped through
// the safe filter.
type Engine struct {
	mu    sync.RWMutex
	set   *pongo2.TemplateSet
	ext   string
	cache map[string]*pongo2.Template
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New builds an Engine. At least one template source is required unless
// WithStringsOnly is given.
func New(options ...Option) (*Engine, error) {
	cfg := &config{extension: DefaultExtension}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}

	loaders, err := cfg.loaders()
	if err != nil {
		return nil, err
	}

	engine := &Engine{
		set:   pongo2.NewSet("viewkit", loaders...),
		ext:   cfg.extension,
		cache: map[string]*pongo2.Template{},
	}
	registerBuiltinFilters()

	for name, fn := range cfg.filters {
		if pongo2.FilterExists(strings.TrimSpace(name)) {
			continue
		}
		if err := engine.RegisterFilter(name, fn); err != nil {
			return nil, err
		}
	}
	if len(cfg.globals) > 0 {
		if err := engine.GlobalContext(cfg.globals); err != nil {
			return nil, err
		}
	}
	return engine, nil
}

func (cfg *config) loaders() ([]pongo2.TemplateLoader, error) {
	var loaders []pongo2.TemplateLoader
	if cfg.baseDir != "" {
		local, err := pongo2.NewLocalFileSystemLoader(cfg.baseDir)
		if err != nil {
			return nil, fmt.Errorf("gotemplate: template dir %q: %w", cfg.baseDir, err)
		}
		loaders = append(loaders, local)
	}
	if cfg.files != nil {
		loaders = append(loaders, pongo2.NewFSLoader(cfg.files))
	}
	if len(loaders) > 0 {
		return loaders, nil
	}
	if !cfg.stringsOnly {
		return nil, errors.New("gotemplate: no template source, use WithFS, WithBaseDir or WithStringsOnly")
	}
	return []pongo2.TemplateLoader{pongo2.NewFSLoader(emptyFS{})}, nil
}

// Render treats name as inline source when it contains template tags and as
// a template file otherwise.
func (e *Engine) Render(name string, data any, out ...io.Writer) (string, error) {
	if strings.Contains(name, "{{") || strings.Contains(name, "{%") {
		return e.RenderString(name, data, out...)
	}
	return e.RenderTemplate(name, data, out...)
}

// RenderTemplate renders the named template file, appending the engine
// extension when name has none.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("gotemplate: engine is nil")
	}
	if !strings.HasSuffix(name, e.ext) {
		name += e.ext
	}
	tpl, err := e.lookup(name)
	if err != nil {
		return "", err
	}
	return e.execute(tpl, name, data, out)
}

// RenderString compiles and renders inline template source.
func (e *Engine) RenderString(source string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("gotemplate: engine is nil")
	}
	tpl, err := e.set.FromString(source)
	if err != nil {
		return "", fmt.Errorf("gotemplate: parse template string: %w", err)
	}
	return e.execute(tpl, "string", data, out)
}

func (e *Engine) execute(tpl *pongo2.Template, label string, data any, out []io.Writer) (string, error) {
	ctx, err := toContext(data)
	if err != nil {
		return "", fmt.Errorf("gotemplate: %s: %w", label, err)
	}

	var buf bytes.Buffer
	e.mu.RLock()
	err = tpl.ExecuteWriter(ctx, &buf)
	e.mu.RUnlock()
	if err != nil {
		return "", fmt.Errorf("gotemplate: execute %s: %w", label, err)
	}

	for _, w := range out {
		if _, err := w.Write(buf.Bytes()); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// RegisterFilter adds a filter shared by every engine in the process.
// Registering a name twice is an error.
func (e *Engine) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	name = strings.TrimSpace(name)
	if name == "" || fn == nil {
		return errors.New("gotemplate: filter name and function required")
	}
	if pongo2.FilterExists(name) {
		return fmt.Errorf("gotemplate: filter %q already exists", name)
	}
	return pongo2.RegisterFilter(name, func(in, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var arg any
		if param != nil {
			arg = param.Interface()
		}
		result, err := fn(in.Interface(), arg)
		if err != nil {
			return nil, &pongo2.Error{Sender: "filter:" + name, OrigError: err}
		}
		return pongo2.AsValue(result), nil
	})
}

// GlobalContext merges data into the values visible to every template.
func (e *Engine) GlobalContext(data any) error {
	if e == nil || e.set == nil {
		return errors.New("gotemplate: engine is nil")
	}
	ctx, err := toContext(data)
	if err != nil {
		return fmt.Errorf("gotemplate: globals: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.set.Globals == nil {
		e.set.Globals = pongo2.Context{}
	}
	e.set.Globals.Update(ctx)
	return nil
}

func (e *Engine) lookup(name string) (*pongo2.Template, error) {
	e.mu.RLock()
	tpl, ok := e.cache[name]
	e.mu.RUnlock()
	if ok {
		return tpl, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if tpl, ok := e.cache[name]; ok {
		return tpl, nil
	}
	tpl, err := e.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: load template %q: %w", name, err)
	}
	e.cache[name] = tpl
	return tpl, nil
}

// toContext accepts the map shapes components build. Values are passed
// through untouched so ints and safe strings keep their type.
func toContext(data any) (pongo2.Context, error) {
	var values map[string]any
	switch v := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case pongo2.Context:
		values = v
	case map[string]any:
		values = v
	default:
		return nil, fmt.Errorf("template data must be a map, got %T", data)
	}

	ctx := make(pongo2.Context, len(values))
	for key, value := range values {
		if key = strings.TrimSpace(key); key != "" {
			ctx[key] = value
		}
	}
	return ctx, nil
}

type emptyFS struct{}

func (emptyFS) Open(name string) (fs.File, error) {
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}

var builtinFilters = map[string]func(string) string{
	"splitpascal": textcase.SplitPascalCase,
	"trim":        strings.TrimSpace,
}

func registerBuiltinFilters() {
	for name, fn := range builtinFilters {
		if pongo2.FilterExists(name) {
			continue
		}
		fn := fn
		_ = pongo2.RegisterFilter(name, func(in, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
			return pongo2.AsValue(fn(in.String())), nil
		})
	}
}
