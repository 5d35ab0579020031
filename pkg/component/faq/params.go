package faq

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-viewkit/pkg/component"
)

// FromParams reads Options from named host parameters. Entries may be given
// as []Entry, as maps with question/answer/id keys (the shape YAML and JSON
// decoders produce) or as any values exposing Question and Answer members.
func FromParams(params component.Params) (Options, error) {
	opts := DefaultOptions()

	raw, ok := params.Value(ParamEntries)
	if !ok {
		return Options{}, component.MissingParameter(Name, ParamEntries, "expected a sequence of entries")
	}
	entries, err := entriesFromValue(raw)
	if err != nil {
		return Options{}, err
	}
	opts.Entries = entries

	listType, err := params.OptionalString(Name, ParamListType)
	if err != nil {
		return Options{}, err
	}
	if opts.ListType, err = ParseListType(listType); err != nil {
		return Options{}, err
	}

	toggle, err := params.OptionalString(Name, ParamToggle)
	if err != nil {
		return Options{}, err
	}
	if opts.Toggle, err = ParseToggle(toggle); err != nil {
		return Options{}, err
	}

	if opts.CSSClass, err = params.OptionalString(Name, ParamCSSClass); err != nil {
		return Options{}, err
	}
	if opts.Expanded, err = params.OptionalBool(Name, ParamExpanded, false); err != nil {
		return Options{}, err
	}
	if opts.QuestionSection, err = params.OptionalString(Name, ParamQuestionSection); err != nil {
		return Options{}, err
	}
	if opts.AnswerSection, err = params.OptionalString(Name, ParamAnswerSection); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func entriesFromValue(raw any) ([]Entry, error) {
	switch v := raw.(type) {
	case []Entry:
		return append([]Entry{}, v...), nil
	case []*Entry:
		out := make([]Entry, 0, len(v))
		for _, entry := range v {
			if entry != nil {
				out = append(out, *entry)
			}
		}
		return out, nil
	}

	items, ok := component.ToSlice(raw)
	if !ok {
		return nil, component.MissingParameter(Name, ParamEntries, "expected a sequence of entries")
	}

	out := make([]Entry, 0, len(items))
	var generic []any
	for _, item := range items {
		switch v := item.(type) {
		case Entry:
			out = append(out, v)
		case *Entry:
			if v != nil {
				out = append(out, *v)
			}
		case map[string]any:
			out = append(out, entryFromMap(func(key string) (any, bool) { return lookupFold(v, key) }))
		case map[string]string:
			out = append(out, entryFromMap(func(key string) (any, bool) {
				for name, value := range v {
					if strings.EqualFold(name, key) {
						return value, true
					}
				}
				return nil, false
			}))
		default:
			generic = append(generic, item)
		}
	}
	if len(generic) == 0 {
		return out, nil
	}
	if len(generic) != len(items) {
		return nil, component.InvalidConfiguration(Name, ParamEntries, "entries mix entry values with other types")
	}

	question, err := component.MemberAccessor(Name, ParamEntries, "Question", generic)
	if err != nil {
		return nil, err
	}
	answer, err := component.MemberAccessor(Name, ParamEntries, "Answer", generic)
	if err != nil {
		return nil, err
	}
	for _, item := range generic {
		out = append(out, Entry{Question: question(item), Answer: answer(item)})
	}
	return out, nil
}

func entryFromMap(get func(key string) (any, bool)) Entry {
	var entry Entry
	if value, ok := get("id"); ok && value != nil {
		entry.ID = fmt.Sprint(value)
	}
	if value, ok := get("question"); ok && value != nil {
		entry.Question = fmt.Sprint(value)
	}
	if value, ok := get("answer"); ok && value != nil {
		entry.Answer = fmt.Sprint(value)
	}
	return entry
}

func lookupFold(m map[string]any, key string) (any, bool) {
	if value, ok := m[key]; ok {
		return value, true
	}
	for name, value := range m {
		if strings.EqualFold(name, key) {
			return value, true
		}
	}
	return nil, false
}
