package component

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies component configuration failures.
type Kind string

const (
	KindMissingRequiredParameter Kind = "missing_required_parameter"
	KindInvalidConfiguration     Kind = "invalid_configuration"
)

var (
	// ErrMissingRequiredParameter matches errors for required parameters that
	// are absent or have the wrong shape.
	ErrMissingRequiredParameter = errors.New("missing required parameter")
	// ErrInvalidConfiguration matches errors for parameters holding values the
	// component does not understand.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// Error reports a configuration problem detected while rendering a component.
type Error struct {
	Kind      Kind
	Component string
	Param     string
	Message   string
	Err       error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	if e.Component != "" {
		b.WriteString(e.Component)
		b.WriteString(": ")
	}
	b.WriteString(e.sentinel().Error())
	if e.Param != "" {
		fmt.Fprintf(&b, " %q", e.Param)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is lets errors.Is match the package sentinels by kind.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	return target == e.sentinel()
}

func (e *Error) sentinel() error {
	if e.Kind == KindMissingRequiredParameter {
		return ErrMissingRequiredParameter
	}
	return ErrInvalidConfiguration
}

// MissingParameter builds a KindMissingRequiredParameter error.
func MissingParameter(component, param, message string) *Error {
	return &Error{
		Kind:      KindMissingRequiredParameter,
		Component: component,
		Param:     param,
		Message:   message,
	}
}

// InvalidConfiguration builds a KindInvalidConfiguration error with a
// formatted message.
func InvalidConfiguration(component, param, format string, args ...any) *Error {
	return &Error{
		Kind:      KindInvalidConfiguration,
		Component: component,
		Param:     param,
		Message:   fmt.Sprintf(format, args...),
	}
}

// KindOf extracts the Kind of a component error anywhere in err's chain.
func KindOf(err error) (Kind, bool) {
	var compErr *Error
	if errors.As(err, &compErr) && compErr != nil {
		return compErr.Kind, true
	}
	return "", false
}
