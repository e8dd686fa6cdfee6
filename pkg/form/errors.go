package form

import (
	"fmt"
	"strings"
)

// ValidationError reports a value that failed a field's format validation.
// The field keeps its prior value.
type ValidationError struct {
	Value  string
	Layout string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("form: invalid date %q, expected layout %s", e.Value, e.Layout)
}

// ValueNotFoundError reports an attempted selection that matched none of a
// Select's options. Available lists every option value in order, sentinel
// included.
type ValueNotFoundError struct {
	Field     string
	Value     string
	Available []string
}

func (e *ValueNotFoundError) Error() string {
	return fmt.Sprintf("form: failed to select value %q in select %q, available: [%s]",
		e.Value, e.Field, strings.Join(e.Available, ", "))
}

// UnknownFieldError reports a lookup for a name the form does not contain.
type UnknownFieldError struct {
	Name string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("form: field %q not found", e.Name)
}

// InvalidFieldError reports a field that cannot be placed in a form.
type InvalidFieldError struct {
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return "form: " + e.Reason
}
