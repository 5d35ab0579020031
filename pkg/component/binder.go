package component

import (
	"fmt"
	"html"
	"strconv"
	"strings"
)

// BindRequest describes the checkboxes a form binder should produce for a
// target field.
type BindRequest struct {
	Target  string
	Items   []any
	Value   func(item any) string
	Checked func(item any) bool
}

// BoundField is one checkbox produced by a Binder, still carrying the source
// item so callers can derive its label.
type BoundField struct {
	Item    any
	Index   int
	ID      string
	Name    string
	Value   string
	Checked bool
	Markup  string
}

// Binder is the form-binding helper. Implementations must return one field
// per item, in item order.
type Binder interface {
	BindCheckboxes(req BindRequest) ([]BoundField, error)
}

// BinderFunc adapts a function to the Binder interface.
type BinderFunc func(req BindRequest) ([]BoundField, error)

// BindCheckboxes calls fn.
func (fn BinderFunc) BindCheckboxes(req BindRequest) ([]BoundField, error) {
	return fn(req)
}

// HTMLBinder renders plain <input type="checkbox"> elements named after the
// target field.
type HTMLBinder struct {
	// IDPrefix is prepended to generated element ids.
	IDPrefix string
}

// BindCheckboxes implements Binder.
func (b HTMLBinder) BindCheckboxes(req BindRequest) ([]BoundField, error) {
	name := strings.TrimSpace(req.Target)
	if name == "" {
		return nil, fmt.Errorf("component: binder target is required")
	}

	base := b.IDPrefix + fieldID(name)
	fields := make([]BoundField, 0, len(req.Items))
	for index, item := range req.Items {
		field := BoundField{
			Item:  item,
			Index: index,
			ID:    base + "_" + strconv.Itoa(index),
			Name:  name,
		}
		if req.Value != nil {
			field.Value = req.Value(item)
		} else {
			field.Value = fmt.Sprint(item)
		}
		if req.Checked != nil {
			field.Checked = req.Checked(item)
		}
		field.Markup = checkboxMarkup(field)
		fields = append(fields, field)
	}
	return fields, nil
}

func checkboxMarkup(field BoundField) string {
	var b strings.Builder
	b.WriteString(`<input type="checkbox" id="`)
	b.WriteString(html.EscapeString(field.ID))
	b.WriteString(`" name="`)
	b.WriteString(html.EscapeString(field.Name))
	b.WriteString(`" value="`)
	b.WriteString(html.EscapeString(field.Value))
	b.WriteString(`"`)
	if field.Checked {
		b.WriteString(` checked="checked"`)
	}
	b.WriteString(` />`)
	return b.String()
}

// fieldID turns a dotted or indexed field name into a token usable as an
// element id.
func fieldID(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
