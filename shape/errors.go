package shape

import "errors"

// Sentinel errors for shape operations.
var (
	// ErrZeroDimension indicates New was asked for a grid with no rows or no columns.
	ErrZeroDimension = errors.New("shape: width and height must be positive")
)

// NotFound is returned by Find when no entry matches the requested direction.
const NotFound = -1
