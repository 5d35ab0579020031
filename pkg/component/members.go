package component

import (
	"fmt"
	"reflect"
)

// MemberAccessor resolves the named member of every item up front and returns
// an accessor formatting that member as a string. Exported struct fields,
// methods without arguments and map keys qualify. A member missing from any
// item is a KindInvalidConfiguration error attributed to param.
func MemberAccessor(component, param, member string, items []any) (func(item any) string, error) {
	for _, item := range items {
		if _, ok := lookupMember(item, member); !ok {
			return nil, InvalidConfiguration(component, param, "member %q not found on %T", member, item)
		}
	}
	return func(item any) string {
		value, ok := lookupMember(item, member)
		if !ok || value == nil {
			return ""
		}
		return fmt.Sprint(value)
	}, nil
}

func lookupMember(item any, member string) (any, bool) {
	if item == nil || member == "" {
		return nil, false
	}
	rv := reflect.ValueOf(item)

	if method := rv.MethodByName(member); method.IsValid() {
		if method.Type().NumIn() == 0 && method.Type().NumOut() >= 1 {
			return method.Call(nil)[0].Interface(), true
		}
	}

	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		field, ok := rv.Type().FieldByName(member)
		if !ok || !field.IsExported() {
			return nil, false
		}
		value, err := rv.FieldByIndexErr(field.Index)
		if err != nil {
			return nil, false
		}
		return value.Interface(), true
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		value := rv.MapIndex(reflect.ValueOf(member).Convert(rv.Type().Key()))
		if !value.IsValid() {
			return nil, false
		}
		return value.Interface(), true
	default:
		return nil, false
	}
}
