package shape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boxkit/boxkit/bxstring"
	"github.com/boxkit/boxkit/shape"
)

// buildShape populates an entry for dir from literal glyph rows; every row
// must have the same display width.
func buildShape(t *testing.T, dir shape.Direction, rows ...string) shape.Shape {
	t.Helper()
	require.NotEmpty(t, rows, "buildShape needs at least one row")

	width := bxstring.New(rows[0]).Width()
	s, err := shape.New(dir, width, len(rows))
	require.NoError(t, err, "buildShape New(%d,%d)", width, len(rows))
	for i, text := range rows {
		row := bxstring.New(text)
		require.Equal(t, width, row.Width(), "row %d width mismatch", i)
		s.Rows[i].Text = row
	}

	return *s
}

//----------------------------------------------------------------------------//
// IsEmpty / IsDeepEmpty tests
//----------------------------------------------------------------------------//

// TestIsEmpty covers absent entries, all-blank grids and single visible glyphs.
func TestIsEmpty(t *testing.T) {
	var absent shape.Shape
	assert.True(t, absent.IsEmpty(), "absent entry is empty")

	var nilShape *shape.Shape
	assert.True(t, nilShape.IsEmpty(), "nil entry is empty")

	blank, err := shape.New(shape.N, 4, 2)
	require.NoError(t, err)
	assert.True(t, blank.IsEmpty(), "freshly generated grid is all blank")

	blank.Rows[1].Text = bxstring.New("  - ")
	assert.False(t, blank.IsEmpty(), "one visible glyph makes the entry non-empty")
}

// TestIsDeepEmpty_Monotonic asserts IsEmpty ⇒ IsDeepEmpty across a spread
// of entries, including populated and flagged ones.
func TestIsDeepEmpty_Monotonic(t *testing.T) {
	blank, err := shape.New(shape.S, 3, 1)
	require.NoError(t, err)

	visible := buildShape(t, shape.E, "|", "|")
	elastic := buildShape(t, shape.W, ":")
	elastic.Elastic = true

	for _, s := range []shape.Shape{{}, *blank, visible, elastic} {
		if s.IsEmpty() {
			assert.True(t, s.IsDeepEmpty(), "IsEmpty must imply IsDeepEmpty (dir %s)", s.Dir)
		}
	}
}

// TestIsDeepEmpty_ElasticCollapse checks the strict test's extra reach:
// an elastic shape whose visible rows carry both blank-adjacency flags is
// deep-empty (its repeated content collapses to nothing), while the same
// grid without the flags, or without Elastic, stays visible.
func TestIsDeepEmpty_ElasticCollapse(t *testing.T) {
	s := buildShape(t, shape.WSW, "~~")
	assert.False(t, s.IsEmpty())
	assert.False(t, s.IsDeepEmpty(), "plain visible shape is not deep-empty")

	s.Elastic = true
	assert.False(t, s.IsDeepEmpty(), "elastic alone does not collapse content")

	s.Rows[0].BlankLeft = true
	assert.False(t, s.IsDeepEmpty(), "one-sided blankness is not enough")

	s.Rows[0].BlankRight = true
	assert.True(t, s.IsDeepEmpty(), "elastic + blank on both sides collapses the row")
	assert.False(t, s.IsEmpty(), "the shallow test still sees the glyphs")

	s.Elastic = false
	assert.False(t, s.IsDeepEmpty(), "non-elastic shapes never collapse")
}

//----------------------------------------------------------------------------//
// EmptySide tests
//----------------------------------------------------------------------------//

// sideEntries generates blank entries for every direction of a side.
func sideEntries(t *testing.T, side shape.Side) []shape.Shape {
	t.Helper()
	entries := make([]shape.Shape, 0, shape.ShapesPerSide)
	for _, dir := range shape.Sides[side] {
		s, err := shape.New(dir, 2, 1)
		require.NoError(t, err)
		entries = append(entries, *s)
	}

	return entries
}

// TestEmptySide_AllBlank verifies a fully blank side is suppressible and
// that flipping one glyph in any of the five entries flips the answer.
func TestEmptySide_AllBlank(t *testing.T) {
	for side := shape.SideNorth; side <= shape.SideWest; side++ {
		entries := sideEntries(t, side)
		assert.True(t, shape.EmptySide(entries, side), "blank %s side must be empty", side)

		for i := range entries {
			entries[i].Rows[0].Text = bxstring.New("-x")
			assert.False(t, shape.EmptySide(entries, side),
				"visible glyph in %s entry %d must unsuppress the side", side, i)
			entries[i].Rows[0].Text = bxstring.Spaces(2)
		}
	}
}

// TestEmptySide_MissingEntries treats directions with no entry as empty:
// a partial collection with only blank members still reports true.
func TestEmptySide_MissingEntries(t *testing.T) {
	assert.True(t, shape.EmptySide(nil, shape.SideNorth), "no entries at all")

	corner := buildShape(t, shape.NW, "+")
	assert.False(t, shape.EmptySide([]shape.Shape{corner}, shape.SideNorth),
		"a single visible corner keeps the side")
	assert.True(t, shape.EmptySide([]shape.Shape{corner}, shape.SideSouth),
		"the visible corner is not on the south side")
}

// TestEmptySide_ReadOnly confirms the inspection never mutates the
// collection.
func TestEmptySide_ReadOnly(t *testing.T) {
	entries := sideEntries(t, shape.SideEast)
	entries[2].Rows[0].Text = bxstring.New("||")

	before := make([]shape.Shape, len(entries))
	copy(before, entries)

	_ = shape.EmptySide(entries, shape.SideEast)
	assert.Equal(t, before, entries, "EmptySide must not normalize its input")
}

// TestEmptySide_OutOfRange degrades gracefully on invalid side indices.
func TestEmptySide_OutOfRange(t *testing.T) {
	entries := sideEntries(t, shape.SideNorth)
	assert.True(t, shape.EmptySide(entries, shape.Side(-1)))
	assert.True(t, shape.EmptySide(entries, shape.Side(4)))
}
