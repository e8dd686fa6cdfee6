package form

import "strings"

// DefaultValue is the sentinel option value meaning "no filter applied".
const DefaultValue = "ANY"

// Option is one selectable value inside a Select. It is a passive value
// holder; the owning Select enforces the single-selection invariant.
type Option struct {
	Value    string
	Selected bool
}

// Render produces the option markup. The sentinel option is followed by a
// disabled separator so rendered lists read sentinel, rule, values.
func (o Option) Render() string {
	var b strings.Builder
	b.WriteString("<option value='")
	b.WriteString(o.Value)
	if o.Selected {
		b.WriteString("' selected>")
	} else {
		b.WriteString("'>")
	}
	b.WriteString(o.Value)
	b.WriteString("</option>")
	if o.Value == DefaultValue {
		b.WriteString("<option disabled>---</option>")
	}
	return b.String()
}
