package rows

import "fmt"

// ShapeError reports tabular input whose rows do not share a uniform shape.
type ShapeError struct {
	Row    int
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("rows: row %d: %s", e.Row, e.Reason)
}
