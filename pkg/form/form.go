package form

import (
	"errors"
	"sort"
	"strings"
)

const submitButton = "<input type='submit' value='Filter' style='background: #E1703D; border-radius: 5px; padding: 5px; color: white; font-weight: bold; font-size: 1em; border: 0; cursor: pointer'>"

// FilterForm is an ordered collection of uniquely named fields plus the
// request metadata needed to render a submittable filter form. One instance
// serves one request: build, update, render, discard.
type FilterForm struct {
	fields        []Field
	action        string
	cgiMethod     string
	requestMethod string
}

// FormOption configures a FilterForm at construction time.
type FormOption func(*FilterForm)

// WithAction overrides the form's target URL.
func WithAction(action string) FormOption {
	return func(f *FilterForm) {
		if strings.TrimSpace(action) != "" {
			f.action = action
		}
	}
}

// WithRequestMethod overrides the HTTP verb used on submission.
func WithRequestMethod(method string) FormOption {
	return func(f *FilterForm) {
		if strings.TrimSpace(method) != "" {
			f.requestMethod = method
		}
	}
}

// New builds a form over the given fields, which the form takes ownership of.
// cgiMethod identifies the logical operation and travels as a hidden input.
// Defaults: action "/dashboard/", request method GET.
func New(fields []Field, cgiMethod string, opts ...FormOption) *FilterForm {
	f := &FilterForm{
		fields:        fields,
		action:        "/dashboard/",
		cgiMethod:     cgiMethod,
		requestMethod: "GET",
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

// Action reports the form's target URL.
func (f *FilterForm) Action() string { return f.action }

// CGIMethod reports the logical operation identifier carried by the hidden
// method input.
func (f *FilterForm) CGIMethod() string { return f.cgiMethod }

// RequestMethod reports the HTTP verb used on submission.
func (f *FilterForm) RequestMethod() string { return f.requestMethod }

// Fields returns the fields in form order. The slice is a copy; the fields
// themselves remain the form's own.
func (f *FilterForm) Fields() []Field {
	out := make([]Field, len(f.fields))
	copy(out, f.fields)
	return out
}

// FieldByName returns a name-keyed view of the fields. The map is computed on
// every call so it can never go stale after SetField or a rename.
func (f *FilterForm) FieldByName() map[string]Field {
	out := make(map[string]Field, len(f.fields))
	for _, field := range f.fields {
		out[field.Name()] = field
	}
	return out
}

// Update applies the given values field by field, in sorted key order so a
// partial failure is deterministic. Unknown names are skipped when
// ignoreUnknown is set and fail with *UnknownFieldError otherwise. A field's
// own validation error aborts the remaining updates; values already applied
// stay applied.
func (f *FilterForm) Update(values map[string]*string, ignoreUnknown bool) error {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := f.SetFieldValue(name, values[name]); err != nil {
			var unknown *UnknownFieldError
			if errors.As(err, &unknown) && ignoreUnknown {
				continue
			}
			return err
		}
	}
	return nil
}

// SetFieldValue delegates to the named field's setter, inheriting its
// validation semantics.
func (f *FilterForm) SetFieldValue(name string, value *string) error {
	field, err := f.GetField(name)
	if err != nil {
		return err
	}
	return field.SetValue(value)
}

// GetFieldValue returns the named field's current value.
func (f *FilterForm) GetFieldValue(name string) (*string, error) {
	field, err := f.GetField(name)
	if err != nil {
		return nil, err
	}
	return field.Value(), nil
}

// GetField returns the field registered under name.
func (f *FilterForm) GetField(name string) (Field, error) {
	for _, field := range f.fields {
		if field.Name() == name {
			return field, nil
		}
	}
	return nil, &UnknownFieldError{Name: name}
}

// SetField replaces the field carrying the same name, preserving its
// position. This is replace-only: a name not already present fails with
// *UnknownFieldError, and a nil or unnamed field with *InvalidFieldError.
func (f *FilterForm) SetField(field Field) error {
	if field == nil || field.Name() == "" {
		return &InvalidFieldError{Reason: "field must have a name to be set in a filter form"}
	}
	for i, existing := range f.fields {
		if existing.Name() == field.Name() {
			f.fields[i] = field
			return nil
		}
	}
	return &UnknownFieldError{Name: field.Name()}
}

// Render serializes the whole form: opening tag, the hidden cgi-method
// input, every field in stored order wrapped in its label, the submit
// button, closing tag. Output is deterministic for identical state.
func (f *FilterForm) Render() string {
	var b strings.Builder
	b.WriteString("<form action='")
	b.WriteString(f.action)
	b.WriteString("' method='")
	b.WriteString(f.requestMethod)
	b.WriteString("'>")
	b.WriteString("<input type='hidden' name='method' value='")
	b.WriteString(f.cgiMethod)
	b.WriteString("'>")
	for _, field := range f.fields {
		b.WriteString(Label{Content: field.Label() + ": " + field.Render()}.Render())
	}
	b.WriteString(submitButton)
	b.WriteString("</form>")
	return b.String()
}
