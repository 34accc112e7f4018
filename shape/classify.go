// Package shape: direction resolution over caller-supplied entry collections.
package shape

// Find scans a caller-supplied collection for the entry whose identity
// equals dir and returns its index, or NotFound when no entry matches.
// The collection may be in any order; catalog order is not assumed.
// Complexity: O(len(entries)).
func Find(entries []Shape, dir Direction) int {
	for i := range entries {
		if entries[i].Dir == dir {
			return i
		}
	}

	return NotFound
}
