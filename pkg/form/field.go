package form

// Field is the capability every filter form input shares: a stable name,
// a caption, a nullable string value, and an HTML rendering.
//
// A nil SetValue input means "no value supplied" and must leave the field
// untouched. A nil Value result means nothing is selected.
type Field interface {
	Name() string
	Label() string
	Value() *string
	SetValue(value *string) error
	Render() string
}
