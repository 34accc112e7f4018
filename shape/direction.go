// Package shape: direction catalog. The closed compass-point set, the
// per-side and corner groupings, and the side-index lookup table.
package shape

// Direction identifies one of the sixteen border positions, clockwise
// from the top-left corner.
type Direction int

// The sixteen border directions. Corners (NW, NE, SE, SW) are shared
// between their two adjacent sides; the three subdivisions between two
// corners belong to exactly one side.
const (
	NW Direction = iota
	NNW
	N
	NNE
	NE
	ENE
	E
	ESE
	SE
	SSE
	S
	SSW
	SW
	WSW
	W
	WNW
)

// Catalog sizes.
const (
	// NumShapes is the number of distinct border directions.
	NumShapes = 16
	// ShapesPerSide is the number of directions forming one side: two
	// corners plus three side-exclusive subdivisions.
	ShapesPerSide = 5
	// CornersPerSide is the number of corners each side includes.
	CornersPerSide = 2
	// NumSides is the number of box sides.
	NumSides = 4
	// NumCorners is the number of corner directions.
	NumCorners = 4
)

// directionNames is indexed by Direction; kept in catalog order.
var directionNames = [NumShapes]string{
	"NW", "NNW", "N", "NNE", "NE", "ENE", "E", "ESE",
	"SE", "SSE", "S", "SSW", "SW", "WSW", "W", "WNW",
}

// String returns the canonical compass name of the direction,
// or "invalid" outside the closed set.
func (d Direction) String() string {
	if !d.Valid() {
		return "invalid"
	}

	return directionNames[d]
}

// Valid reports whether d belongs to the closed 16-value set.
func (d Direction) Valid() bool {
	return d >= NW && d <= WNW
}

// IsCorner reports whether d is one of the four shared corners.
func (d Direction) IsCorner() bool {
	for _, c := range Corners {
		if d == c {
			return true
		}
	}

	return false
}

// Side indexes one of the four box sides.
type Side int

// Side indices, clockwise from the top.
const (
	SideNorth Side = iota
	SideEast
	SideSouth
	SideWest
)

// sideNames is indexed by Side.
var sideNames = [NumSides]string{"north", "east", "south", "west"}

// String returns the side's lowercase name, or "invalid" out of range.
func (s Side) String() string {
	if s < SideNorth || s > SideWest {
		return "invalid"
	}

	return sideNames[s]
}

// Per-side groupings, clockwise: the leading corner, three subdivisions,
// the trailing corner. SouthSideRev is the south grouping walked
// counter-clockwise, for callers emitting the bottom side left-to-right.
var (
	NorthSide    = [ShapesPerSide]Direction{NW, NNW, N, NNE, NE}
	EastSide     = [ShapesPerSide]Direction{NE, ENE, E, ESE, SE}
	SouthSide    = [ShapesPerSide]Direction{SE, SSE, S, SSW, SW}
	SouthSideRev = [ShapesPerSide]Direction{SW, SSW, S, SSE, SE}
	WestSide     = [ShapesPerSide]Direction{SW, WSW, W, WNW, NW}

	// Corners lists the four shared corner directions, clockwise.
	Corners = [NumCorners]Direction{NW, NE, SE, SW}

	// Sides maps a Side index to its clockwise grouping.
	Sides = [NumSides][ShapesPerSide]Direction{NorthSide, EastSide, SouthSide, WestSide}
)

// OnSide reports whether d appears in the grouping for side s.
// Corner directions answer true for exactly two sides, subdivisions for
// exactly one; an out-of-range side answers false. Complexity: O(1).
func (d Direction) OnSide(s Side) bool {
	if s < SideNorth || s > SideWest {
		return false
	}
	for _, dir := range Sides[s] {
		if dir == d {
			return true
		}
	}

	return false
}
