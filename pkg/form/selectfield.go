package form

import "strings"

// Select is a single-selection dropdown. Options are owned by the Select and
// the current selection is tracked as an index into that list, so replacing
// or rebuilding options can never leave a dangling reference.
type Select struct {
	name     string
	label    string
	options  []Option
	selected int // index into options, -1 when nothing is selected
}

// NewSelect builds a dropdown from the given option values. A sentinel
// DefaultValue option is always prepended. When value is nil or empty the
// sentinel is selected; otherwise the matching option is, and a value that
// matches no option fails with *ValueNotFoundError.
func NewSelect(name, label string, options []string, value *string) (*Select, error) {
	opts := make([]Option, 0, len(options)+1)
	opts = append(opts, Option{Value: DefaultValue})
	for _, o := range options {
		opts = append(opts, Option{Value: o})
	}

	s := &Select{name: name, label: label, options: opts, selected: -1}

	target := DefaultValue
	if value != nil && *value != "" {
		target = *value
	}
	if err := s.SetValue(&target); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Select) Name() string  { return s.name }
func (s *Select) Label() string { return s.label }

// Options returns a copy of the option list, sentinel first.
func (s *Select) Options() []Option {
	out := make([]Option, len(s.options))
	copy(out, s.options)
	return out
}

// Value returns the selected option's value, or nil when nothing is selected.
func (s *Select) Value() *string {
	if s.selected < 0 {
		return nil
	}
	v := s.options[s.selected].Value
	return &v
}

// SetValue selects the first option whose value equals the input. A nil input
// keeps the prior selection. When no option matches, the call fails with
// *ValueNotFoundError and the select is left fully deselected rather than
// restored to its prior selection.
func (s *Select) SetValue(value *string) error {
	if value == nil {
		return nil
	}
	s.Reset()
	for i := range s.options {
		if s.options[i].Value == *value {
			s.options[i].Selected = true
			s.selected = i
			return nil
		}
	}
	return &ValueNotFoundError{Field: s.name, Value: *value, Available: s.values()}
}

// Reset clears every selection flag and the selected reference.
func (s *Select) Reset() {
	for i := range s.options {
		s.options[i].Selected = false
	}
	s.selected = -1
}

// Rename updates the caption and the identity name in place.
func (s *Select) Rename(label, name string) {
	s.label = label
	s.name = name
}

func (s *Select) values() []string {
	out := make([]string, len(s.options))
	for i, o := range s.options {
		out[i] = o.Value
	}
	return out
}

// Render emits the select element with every option in list order.
func (s *Select) Render() string {
	var b strings.Builder
	b.WriteString("<select name='")
	b.WriteString(s.name)
	b.WriteString("'>")
	for _, o := range s.options {
		b.WriteString(o.Render())
	}
	b.WriteString("</select>")
	return b.String()
}
