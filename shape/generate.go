// Package shape: blank-grid materialization for design loaders.
package shape

import (
	"github.com/boxkit/boxkit/bxstring"
)

// New allocates a populated Shape for direction dir with height rows of
// width blank display columns each, ready for a design loader to
// overwrite. All adjacency flags start false and Elastic starts unset.
//
// Returns ErrZeroDimension (and no partial state) when width or height is
// not positive. Complexity: O(width×height).
func New(dir Direction, width, height int) (*Shape, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrZeroDimension
	}

	rows := make([]Row, height)
	blank := bxstring.Spaces(width)
	for i := range rows {
		rows[i] = Row{Text: blank}
	}

	return &Shape{Dir: dir, Rows: rows, Width: width}, nil
}
