package component

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Params carries the named parameters a host template passes to a component.
// Lookups try the exact key first and fall back to a case-insensitive match.
type Params map[string]any

// Value returns the raw parameter stored under key.
func (p Params) Value(key string) (any, bool) {
	if len(p) == 0 {
		return nil, false
	}
	if value, ok := p[key]; ok {
		return value, value != nil
	}
	for name, value := range p {
		if strings.EqualFold(name, key) {
			return value, value != nil
		}
	}
	return nil, false
}

// Has reports whether key is present with a non-nil value.
func (p Params) Has(key string) bool {
	_, ok := p.Value(key)
	return ok
}

// String returns the parameter as a string. Strings, byte slices and
// fmt.Stringer values qualify.
func (p Params) String(key string) (string, bool) {
	value, ok := p.Value(key)
	if !ok {
		return "", false
	}
	switch v := value.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

// Bool returns the parameter as a bool, parsing string values.
func (p Params) Bool(key string) (bool, bool) {
	value, ok := p.Value(key)
	if !ok {
		return false, false
	}
	switch v := value.(type) {
	case bool:
		return v, true
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, false
		}
		return parsed, true
	default:
		return false, false
	}
}

// Int returns the parameter as an int. Integer kinds, integral floats (as
// produced by JSON and YAML decoders) and numeric strings qualify. Values
// outside the int range do not.
func (p Params) Int(key string) (int, bool) {
	value, ok := p.Value(key)
	if !ok {
		return 0, false
	}
	switch v := value.(type) {
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return parsed, true
	case float32:
		return floatToInt(float64(v))
	case float64:
		return floatToInt(v)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n < math.MinInt || n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n := rv.Uint()
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

// Slice returns the parameter as a []any when it holds a slice or array of
// any element type.
func (p Params) Slice(key string) ([]any, bool) {
	value, ok := p.Value(key)
	if !ok {
		return nil, false
	}
	return ToSlice(value)
}

// Strings returns the parameter as a list of strings. A single string is
// split on commas.
func (p Params) Strings(key string) ([]string, bool) {
	value, ok := p.Value(key)
	if !ok {
		return nil, false
	}
	if s, isString := value.(string); isString {
		var out []string
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out, true
	}
	items, ok := ToSlice(value)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, fmt.Sprint(item))
	}
	return out, true
}

// RequireString returns a non-blank string parameter or a
// KindMissingRequiredParameter error.
func (p Params) RequireString(component, key string) (string, error) {
	value, ok := p.String(key)
	if !ok || strings.TrimSpace(value) == "" {
		return "", MissingParameter(component, key, "expected a non-empty string")
	}
	return value, nil
}

// RequireSlice returns a sequence parameter or a
// KindMissingRequiredParameter error.
func (p Params) RequireSlice(component, key string) ([]any, error) {
	value, ok := p.Slice(key)
	if !ok {
		return nil, MissingParameter(component, key, "expected a sequence")
	}
	return value, nil
}

// OptionalString returns a string parameter when present. A present value of
// another type is a KindInvalidConfiguration error.
func (p Params) OptionalString(component, key string) (string, error) {
	if !p.Has(key) {
		return "", nil
	}
	value, ok := p.String(key)
	if !ok {
		return "", InvalidConfiguration(component, key, "expected a string")
	}
	return value, nil
}

// OptionalInt returns an integer parameter and whether it was supplied. A
// present value that is not an integer is a KindInvalidConfiguration error.
func (p Params) OptionalInt(component, key string) (int, bool, error) {
	if !p.Has(key) {
		return 0, false, nil
	}
	if s, isString := p.String(key); isString && strings.TrimSpace(s) == "" {
		return 0, false, nil
	}
	value, ok := p.Int(key)
	if !ok {
		return 0, false, InvalidConfiguration(component, key, "expected an integer between %d and %d", math.MinInt, math.MaxInt)
	}
	return value, true, nil
}

// OptionalBool returns a boolean parameter, or fallback when absent. A present
// value that is not a boolean is a KindInvalidConfiguration error.
func (p Params) OptionalBool(component, key string, fallback bool) (bool, error) {
	if !p.Has(key) {
		return fallback, nil
	}
	value, ok := p.Bool(key)
	if !ok {
		return fallback, InvalidConfiguration(component, key, "expected a boolean")
	}
	return value, nil
}

// ToSlice converts any slice or array into a []any preserving order.
func ToSlice(value any) ([]any, bool) {
	if value == nil {
		return nil, false
	}
	if items, ok := value.([]any); ok {
		return items, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func floatToInt(v float64) (int, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) || v < math.MinInt || v >= math.MaxInt {
		return 0, false
	}
	return int(v), true
}
