package form

import (
	"strings"
	"time"
)

// DateLayout is the fixed pattern every DateSelector value must satisfy.
const DateLayout = "2006-01-02"

const datePickerScript = `<script>flatpickr(".date-selector", {dateFormat: "Y-m-d"});</script>`

// DateSelector is a single-date filter input backed by a flatpickr widget.
type DateSelector struct {
	name  string
	label string
	value string
}

// NewDateSelector builds a date field. An empty label is derived from the
// name by replacing underscores with spaces; an empty value defaults to
// today's date. An explicit value is stored verbatim: construction is for
// trusted defaults, SetValue for request input.
func NewDateSelector(name, label, value string) *DateSelector {
	if label == "" {
		label = strings.ReplaceAll(name, "_", " ")
	}
	if value == "" {
		value = time.Now().Format(DateLayout)
	}
	return &DateSelector{name: name, label: label, value: value}
}

func (d *DateSelector) Name() string  { return d.name }
func (d *DateSelector) Label() string { return d.label }

// Value returns the current date string. A DateSelector always holds one.
func (d *DateSelector) Value() *string {
	v := d.value
	return &v
}

// SetValue validates the supplied string against DateLayout and stores it
// verbatim, never reformatted. A nil input keeps the prior value. Input that
// does not parse fails with *ValidationError and leaves the field unchanged.
func (d *DateSelector) SetValue(value *string) error {
	if value == nil {
		return nil
	}
	if _, err := time.Parse(DateLayout, *value); err != nil {
		return &ValidationError{Value: *value, Layout: DateLayout}
	}
	d.value = *value
	return nil
}

// Render emits the date input plus the widget activation script. The script
// is idempotent across repeated fields because flatpickr binds by class.
func (d *DateSelector) Render() string {
	var b strings.Builder
	b.WriteString("<input class='date-selector'type='date' name='")
	b.WriteString(d.name)
	b.WriteString("' value='")
	b.WriteString(d.value)
	b.WriteString("' id='datepicker'>")
	b.WriteString(datePickerScript)
	return b.String()
}
