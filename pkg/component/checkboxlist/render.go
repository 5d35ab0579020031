package checkboxlist

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/goliatone/go-viewkit/pkg/component"
	"github.com/goliatone/go-viewkit/pkg/layout"
	"github.com/goliatone/go-viewkit/pkg/textcase"
)

const (
	listClass = "checkbox-list"
	itemClass = "checkbox-list-item"
)

// Descriptor registers the component with a component.Registry.
func Descriptor() component.Descriptor {
	return component.Descriptor{
		Name:     Name,
		Renderer: Renderer,
	}
}

// Renderer reads Options from params and renders them.
func Renderer(buf *bytes.Buffer, params component.Params, data component.RenderData) error {
	opts, err := FromParams(params)
	if err != nil {
		return err
	}
	return Render(buf, opts, data)
}

type entry struct {
	field  component.BoundField
	label  string
	column int
}

// Render writes the checkbox list described by opts into buf.
func Render(buf *bytes.Buffer, opts Options, data component.RenderData) error {
	if buf == nil {
		return fmt.Errorf("checkboxlist: output buffer is nil")
	}
	if opts.Source == nil {
		return component.MissingParameter(Name, ParamSource, "expected a sequence")
	}
	target := strings.TrimSpace(opts.Target)
	if target == "" {
		return component.MissingParameter(Name, ParamTarget, "expected a non-empty string")
	}
	if opts.Columns < 0 {
		return component.InvalidConfiguration(Name, ParamColumns, "column count %d is negative", opts.Columns)
	}

	display, value, err := resolveAccessors(opts)
	if err != nil {
		return err
	}

	data.Page = data.State()

	var out bytes.Buffer
	err = data.Page.Update(func(tx *component.PageTx) error {
		class := tx.Sticky(component.StickyCheckboxListClass, strings.TrimSpace(opts.CSSClass))
		return renderItems(&out, target, class, opts, data, display, value)
	})
	if err != nil {
		return err
	}

	buf.Write(out.Bytes())
	return nil
}

func renderItems(out *bytes.Buffer, target, class string, opts Options, data component.RenderData, display, value func(any) string) error {
	fields, err := data.FormBinder().BindCheckboxes(component.BindRequest{
		Target:  target,
		Items:   opts.Source,
		Value:   value,
		Checked: checkedFunc(opts, value),
	})
	if err != nil {
		return fmt.Errorf("checkboxlist: bind %q: %w", target, err)
	}
	if len(fields) != len(opts.Source) {
		return fmt.Errorf("checkboxlist: binder returned %d fields for %d items", len(fields), len(opts.Source))
	}

	entries := make([]entry, len(fields))
	for i, field := range fields {
		label := display(field.Item)
		if !opts.KeepLabels {
			label = textcase.SplitPascalCase(label)
		}
		entries[i] = entry{field: field, label: label}
	}

	classes := listClass
	if class != "" {
		classes += " " + class
	}

	if opts.Columns > 0 {
		err := layout.Render(out, len(entries), opts.Columns, layout.TableMarkup(classes), func(w io.Writer, slot layout.Slot) error {
			e := entries[slot.Index]
			e.column = slot.Column
			if _, err := io.WriteString(w, `<div class="`+itemClass+`">`); err != nil {
				return err
			}
			if err := writeItem(w, e, opts, data); err != nil {
				return err
			}
			_, err := io.WriteString(w, `</div>`)
			return err
		})
		if err != nil {
			return err
		}
	} else {
		out.WriteString(`<ul class="`)
		out.WriteString(html.EscapeString(classes))
		out.WriteString(`">`)
		for _, e := range entries {
			out.WriteString(`<li class="` + itemClass + `">`)
			if err := writeItem(out, e, opts, data); err != nil {
				return err
			}
			out.WriteString(`</li>`)
		}
		out.WriteString(`</ul>`)
	}

	return nil
}

func writeItem(w io.Writer, e entry, opts Options, data component.RenderData) error {
	ctx := map[string]any{
		"item":     e.field.Item,
		"label":    e.label,
		"value":    e.field.Value,
		"id":       e.field.ID,
		"name":     e.field.Name,
		"checked":  e.field.Checked,
		"checkbox": e.field.Markup,
		"index":    e.field.Index,
		"column":   e.column,
	}

	if opts.ItemSection != "" {
		rendered, err := component.RenderSection(data, Name, ParamItemSection, opts.ItemSection, ctx)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, rendered)
		return err
	}

	rendered, ok, err := component.RenderPartial(data, Name, PartialItem, ctx)
	if err != nil {
		return err
	}
	if ok {
		_, err = io.WriteString(w, rendered)
		return err
	}

	var b strings.Builder
	b.WriteString(e.field.Markup)
	b.WriteString(`<label for="`)
	b.WriteString(html.EscapeString(e.field.ID))
	b.WriteString(`">`)
	b.WriteString(html.EscapeString(e.label))
	b.WriteString(`</label>`)
	_, err = io.WriteString(w, b.String())
	return err
}

func resolveAccessors(opts Options) (display, value func(any) string, err error) {
	display = opts.Display
	if display == nil && strings.TrimSpace(opts.DisplayMember) != "" {
		display, err = component.MemberAccessor(Name, ParamDisplayMember, strings.TrimSpace(opts.DisplayMember), opts.Source)
		if err != nil {
			return nil, nil, err
		}
	}
	if display == nil {
		display = defaultDisplay
	}

	value = opts.Value
	if value == nil && strings.TrimSpace(opts.ValueMember) != "" {
		value, err = component.MemberAccessor(Name, ParamValueMember, strings.TrimSpace(opts.ValueMember), opts.Source)
		if err != nil {
			return nil, nil, err
		}
	}
	if value == nil {
		value = defaultDisplay
	}
	return display, value, nil
}

func checkedFunc(opts Options, value func(any) string) func(any) bool {
	if len(opts.Selected) == 0 {
		return opts.Checked
	}
	selected := make(map[string]struct{}, len(opts.Selected))
	for _, v := range opts.Selected {
		selected[v] = struct{}{}
	}
	return func(item any) bool {
		if opts.Checked != nil && opts.Checked(item) {
			return true
		}
		_, ok := selected[value(item)]
		return ok
	}
}

func defaultDisplay(item any) string {
	switch v := item.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
