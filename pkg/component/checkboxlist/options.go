package checkboxlist

import (
	"github.com/goliatone/go-viewkit/pkg/component"
)

// Name is the registry name of the component.
const Name = component.NameCheckboxList

// Parameter names read by FromParams.
const (
	ParamSource        = "source"
	ParamTarget        = "target"
	ParamDisplay       = "display"
	ParamValue         = "value"
	ParamChecked       = "checked"
	ParamDisplayMember = "displayMember"
	ParamValueMember   = "valueMember"
	ParamSelected      = "selected"
	ParamColumns       = "columns"
	ParamCSSClass      = "cssClass"
	ParamKeepLabels    = "keepLabels"
	ParamItemSection   = "itemSection"
)

// PartialItem is the theme partial key that replaces the default item markup.
const PartialItem = "checkboxlist.item"

// Options configures a checkbox list render.
type Options struct {
	// Source holds the items to bind, in display order. Required; an empty
	// slice renders an empty list.
	Source []any
	// Target is the form field the checkboxes post to. Required.
	Target string

	// Display, Value and Checked read the label, submitted value and checked
	// state of an item.
	Display func(item any) string
	Value   func(item any) string
	Checked func(item any) bool

	// DisplayMember and ValueMember name an item member to read when the
	// matching accessor is nil.
	DisplayMember string
	ValueMember   string

	// Selected lists values rendered checked in addition to Checked.
	Selected []string

	// Columns selects the column layout when positive.
	Columns int
	// CSSClass is added to the list element. It is sticky for the page.
	CSSClass string
	// KeepLabels disables PascalCase splitting of labels.
	KeepLabels bool
	// ItemSection is a template replacing the markup of each item.
	ItemSection string
}

// OptionFn mutates Options.
type OptionFn func(*Options)

// NewOptions builds Options for source and target plus any overrides.
func NewOptions(source []any, target string, fns ...OptionFn) Options {
	opts := Options{Source: source, Target: target}
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	return opts
}

// Items converts a typed slice into a checkbox source.
func Items[T any](items []T) []any {
	if items == nil {
		return nil
	}
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

// Accessor adapts a typed accessor to the untyped form used by Options.
// Items of another type yield the zero value.
func Accessor[T any, V any](fn func(T) V) func(item any) V {
	return func(item any) V {
		typed, ok := item.(T)
		if !ok {
			var zero V
			return zero
		}
		return fn(typed)
	}
}

func WithDisplay(fn func(item any) string) OptionFn {
	return func(o *Options) { o.Display = fn }
}

func WithValue(fn func(item any) string) OptionFn {
	return func(o *Options) { o.Value = fn }
}

func WithChecked(fn func(item any) bool) OptionFn {
	return func(o *Options) { o.Checked = fn }
}

func WithDisplayMember(name string) OptionFn {
	return func(o *Options) { o.DisplayMember = name }
}

func WithValueMember(name string) OptionFn {
	return func(o *Options) { o.ValueMember = name }
}

func WithSelected(values ...string) OptionFn {
	return func(o *Options) { o.Selected = append([]string{}, values...) }
}

func WithColumns(columns int) OptionFn {
	return func(o *Options) { o.Columns = columns }
}

func WithCSSClass(class string) OptionFn {
	return func(o *Options) { o.CSSClass = class }
}

func WithKeepLabels(keep bool) OptionFn {
	return func(o *Options) { o.KeepLabels = keep }
}

func WithItemSection(source string) OptionFn {
	return func(o *Options) { o.ItemSection = source }
}

// FromParams reads Options from named host parameters.
func FromParams(params component.Params) (Options, error) {
	var opts Options
	var err error

	if opts.Source, err = params.RequireSlice(Name, ParamSource); err != nil {
		return Options{}, err
	}
	if opts.Target, err = params.RequireString(Name, ParamTarget); err != nil {
		return Options{}, err
	}

	if value, ok := params.Value(ParamDisplay); ok {
		fn, isFunc := value.(func(any) string)
		if !isFunc {
			return Options{}, component.InvalidConfiguration(Name, ParamDisplay, "expected func(any) string, got %T", value)
		}
		opts.Display = fn
	}
	if value, ok := params.Value(ParamValue); ok {
		fn, isFunc := value.(func(any) string)
		if !isFunc {
			return Options{}, component.InvalidConfiguration(Name, ParamValue, "expected func(any) string, got %T", value)
		}
		opts.Value = fn
	}
	if value, ok := params.Value(ParamChecked); ok {
		fn, isFunc := value.(func(any) bool)
		if !isFunc {
			return Options{}, component.InvalidConfiguration(Name, ParamChecked, "expected func(any) bool, got %T", value)
		}
		opts.Checked = fn
	}

	if opts.DisplayMember, err = params.OptionalString(Name, ParamDisplayMember); err != nil {
		return Options{}, err
	}
	if opts.ValueMember, err = params.OptionalString(Name, ParamValueMember); err != nil {
		return Options{}, err
	}
	if params.Has(ParamSelected) {
		selected, ok := params.Strings(ParamSelected)
		if !ok {
			return Options{}, component.InvalidConfiguration(Name, ParamSelected, "expected a list of values")
		}
		opts.Selected = selected
	}
	if opts.Columns, _, err = params.OptionalInt(Name, ParamColumns); err != nil {
		return Options{}, err
	}
	if opts.CSSClass, err = params.OptionalString(Name, ParamCSSClass); err != nil {
		return Options{}, err
	}
	if opts.KeepLabels, err = params.OptionalBool(Name, ParamKeepLabels, false); err != nil {
		return Options{}, err
	}
	if opts.ItemSection, err = params.OptionalString(Name, ParamItemSection); err != nil {
		return Options{}, err
	}
	return opts, nil
}
