package form

// Label wraps rendered field markup with a caption. Pure rendering, no state.
type Label struct {
	Content string
}

// Render produces the label markup around the content as given.
func (l Label) Render() string {
	return "<label>" + l.Content + "</label>"
}
