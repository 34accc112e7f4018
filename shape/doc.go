// Package shape models the sixteen directional pieces of a rectangular
// text border and the geometry operations layout code needs from them.
//
// What:
//
//   - Direction: the closed 16-value compass set NW…WNW, clockwise from the
//     top-left corner, with per-side groupings (NorthSide, EastSide,
//     SouthSide, SouthSideRev, WestSide), the shared Corners set and the
//     Sides table indexed by Side.
//   - Shape: the visual entry for one direction, display-aware glyph rows
//     (bxstring.String) with per-row blank-adjacency flags, an Elastic
//     marker and an explicit absent/populated lifecycle (New / Clear).
//   - Find / Direction.OnSide: direction↔side resolution over
//     caller-supplied entry collections.
//   - IsEmpty / IsDeepEmpty / EmptySide: shallow and strict blankness tests
//     on one entry, and the whole-side suppression check.
//   - Highest / Widest: aggregate thickness over any chosen index subset.
//
// Why:
//
//   - A box design composes up to 16 heterogeneous shapes; the renderer
//     must know how thick each side is, which sides render nothing at all,
//     and which entry serves which direction, without this package caring
//     where the glyphs came from or where the output goes.
//
// Complexity:
//
//   - Catalog lookups: O(1); Find / OnSide / EmptySide: O(n) over the small
//     fixed catalog; emptiness and metrics: O(rows) per inspected entry.
//
// Errors:
//
//   - ErrZeroDimension: New called with a non-positive width or height.
//     Every other operation is total and degrades to false/zero sentinels.
package shape
