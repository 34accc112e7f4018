// Package shape: Shape entry type and its absent/populated lifecycle.
package shape

import (
	"github.com/boxkit/boxkit/bxstring"
)

// Row is one horizontal slice of a shape's glyph grid. The glyph text and
// the flags describing its neighbors on the same output line travel
// together, so "flag arrays match the grid height" holds by construction.
type Row struct {
	// Text is the row's glyph content, exactly the shape's Width in
	// display columns (multi-byte safe via bxstring).
	Text bxstring.String

	// BlankLeft is true when every shape positioned leftward on the same
	// output line renders no visible glyph on this row. Always true for
	// shapes of the west side.
	BlankLeft bool

	// BlankRight is the rightward counterpart of BlankLeft. Always true
	// for shapes of the east side.
	BlankRight bool
}

// Shape is the visual entry for one border direction: an owned glyph grid
// of Height()×Width display cells. The zero value (no rows) is the absent
// state; New or a design loader populates it, Clear releases it.
//
// A Shape is exclusively owned by one direction slot of one loaded design;
// Rows must never be shared between entries.
type Shape struct {
	// Dir is the entry's identity: the direction slot it fills.
	Dir Direction

	// Rows holds the glyph grid top to bottom; nil or empty means the
	// shape is structurally absent.
	Rows []Row

	// Width is the display-column count of every row.
	Width int

	// Elastic marks the one shape per side, if any, allowed to repeat
	// vertically or horizontally to match the boxed text's extent.
	Elastic bool
}

// Height returns the number of grid rows; 0 denotes an absent shape.
func (s *Shape) Height() int {
	if s == nil {
		return 0
	}

	return len(s.Rows)
}

// Clear releases the glyph grid and returns the entry to the absent
// state, keeping only its direction identity. Idempotent: clearing an
// absent entry is a no-op.
func (s *Shape) Clear() {
	if s == nil {
		return
	}
	s.Rows = nil
	s.Width = 0
	s.Elastic = false
}
