package faq

import (
	"strings"

	"github.com/goliatone/go-viewkit/pkg/component"
)

// Name is the registry name of the component.
const Name = component.NameFAQ

// Parameter names read by FromParams.
const (
	ParamEntries         = "entries"
	ParamListType        = "listType"
	ParamToggle          = "toggle"
	ParamCSSClass        = "cssClass"
	ParamExpanded        = "expanded"
	ParamQuestionSection = "questionSection"
	ParamAnswerSection   = "answerSection"
)

// ListType selects the list element wrapping the entries.
type ListType string

const (
	ListNone      ListType = "none"
	ListUnordered ListType = "ul"
	ListOrdered   ListType = "ol"
)

// Toggle selects the client-side library driving the collapse behaviour.
type Toggle string

const (
	ToggleJQuery   Toggle = "jquery"
	ToggleMooTools Toggle = "mootools"
)

// Entry is a single question with its answer. Answers may hold HTML, which
// is sanitised before rendering.
type Entry struct {
	ID       string `yaml:"id,omitempty" json:"id,omitempty"`
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
}

// Options configures an FAQ render.
type Options struct {
	Entries []Entry
	// ListType defaults to ListNone.
	ListType ListType
	// Toggle defaults to ToggleJQuery.
	Toggle Toggle
	// CSSClass is added to every entry block. It is sticky for the page.
	CSSClass string
	// Expanded renders answers visible.
	Expanded bool
	// QuestionSection and AnswerSection are templates replacing the default
	// question and answer markup. A question section must keep a
	// data-faq-toggle attribute for the toggle script to find it.
	QuestionSection string
	AnswerSection   string
}

// OptionFn mutates Options.
type OptionFn func(*Options)

// DefaultOptions returns bare blocks toggled by jQuery.
func DefaultOptions() Options {
	return Options{
		ListType: ListNone,
		Toggle:   ToggleJQuery,
	}
}

// NewOptions builds Options for entries plus any overrides.
func NewOptions(entries []Entry, fns ...OptionFn) Options {
	opts := DefaultOptions()
	opts.Entries = append([]Entry{}, entries...)
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	return opts
}

func WithListType(listType ListType) OptionFn {
	return func(o *Options) { o.ListType = listType }
}

func WithToggle(toggle Toggle) OptionFn {
	return func(o *Options) { o.Toggle = toggle }
}

func WithCSSClass(class string) OptionFn {
	return func(o *Options) { o.CSSClass = class }
}

func WithExpanded(expanded bool) OptionFn {
	return func(o *Options) { o.Expanded = expanded }
}

func WithQuestionSection(source string) OptionFn {
	return func(o *Options) { o.QuestionSection = source }
}

func WithAnswerSection(source string) OptionFn {
	return func(o *Options) { o.AnswerSection = source }
}

// ParseListType normalises a list type name. Blank means ListNone.
func ParseListType(raw string) (ListType, error) {
	switch ListType(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ListNone:
		return ListNone, nil
	case ListUnordered:
		return ListUnordered, nil
	case ListOrdered:
		return ListOrdered, nil
	default:
		return "", component.InvalidConfiguration(Name, ParamListType, "unknown list type %q", raw)
	}
}

// ParseToggle normalises a toggle library name. Blank means ToggleJQuery.
func ParseToggle(raw string) (Toggle, error) {
	switch Toggle(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ToggleJQuery:
		return ToggleJQuery, nil
	case ToggleMooTools:
		return ToggleMooTools, nil
	default:
		return "", component.InvalidConfiguration(Name, ParamToggle, "unknown toggle library %q", raw)
	}
}
