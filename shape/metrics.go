// Package shape: aggregate sizing over a chosen entry subset, used to
// compute a side's thickness from heterogeneous constituents.
package shape

// Highest returns the maximum Height() among the entries selected by
// indices. Empty entries contribute 0, as do out-of-range indices; an
// all-empty or empty selection yields 0. Complexity: O(len(indices)×rows).
func Highest(entries []Shape, indices []int) int {
	max := 0
	for _, i := range indices {
		if i < 0 || i >= len(entries) || entries[i].IsEmpty() {
			continue
		}
		if h := entries[i].Height(); h > max {
			max = h
		}
	}

	return max
}

// Widest returns the maximum Width among the selected entries, under the
// same degradation rules as Highest.
func Widest(entries []Shape, indices []int) int {
	max := 0
	for _, i := range indices {
		if i < 0 || i >= len(entries) || entries[i].IsEmpty() {
			continue
		}
		if w := entries[i].Width; w > max {
			max = w
		}
	}

	return max
}
