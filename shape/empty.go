// Package shape: emptiness analysis, per-entry blankness tests and the
// whole-side suppression check the renderer uses to omit border sides.
package shape

// IsEmpty reports whether the shape renders no visible glyph by direct
// inspection: absent (zero height or width) or every row blank. Adjacency
// flags are not consulted. A nil shape is empty. Complexity: O(rows).
func (s *Shape) IsEmpty() bool {
	if s == nil || len(s.Rows) == 0 || s.Width == 0 {
		return true
	}
	for _, r := range s.Rows {
		if !r.Text.IsBlank() {
			return false
		}
	}

	return true
}

// IsDeepEmpty reports whether the shape is effectively invisible: a
// strictly stronger test than IsEmpty. Beyond the direct blank check, a
// row with visible glyphs still counts as invisible when the shape is
// Elastic and both BlankLeft and BlankRight hold for that row: the flags
// prove no neighbor depends on the row's columns, so repeating the elastic
// content zero times collapses it to nothing.
//
// IsEmpty(s) implies IsDeepEmpty(s) for every shape.
func (s *Shape) IsDeepEmpty() bool {
	if s.IsEmpty() {
		return true
	}
	for _, r := range s.Rows {
		if r.Text.IsBlank() {
			continue
		}
		if s.Elastic && r.BlankLeft && r.BlankRight {
			continue
		}

		return false
	}

	return true
}

// EmptySide reports whether the whole side s contributes no visible
// output: every one of its five directions either has no entry in the
// collection or resolves to a deep-empty entry. Pure inspection; the
// collection is never mutated. An out-of-range side is trivially empty.
// Complexity: O(ShapesPerSide×len(entries)).
func EmptySide(entries []Shape, s Side) bool {
	if s < SideNorth || s > SideWest {
		return true
	}
	for _, dir := range Sides[s] {
		i := Find(entries, dir)
		if i == NotFound {
			continue
		}
		if !entries[i].IsDeepEmpty() {
			return false
		}
	}

	return true
}
