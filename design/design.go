// Package design: the owner type for one loaded box design.
package design

import (
	"errors"

	"github.com/boxkit/boxkit/shape"
)

// Sentinel errors for design operations.
var (
	// ErrBadDirection indicates an entry whose direction lies outside the catalog.
	ErrBadDirection = errors.New("design: direction outside the 16-value catalog")
)

// Design owns up to sixteen shape entries, one per direction slot. Slots
// start absent; a loader installs populated entries with SetShape.
// Construct with New so every slot carries its direction identity; the
// zero Design leaves every slot bound to NW.
type Design struct {
	// Name labels the design (e.g. the style name from a design file).
	Name string

	shapes [shape.NumShapes]shape.Shape
}

// New returns an empty design: all sixteen slots absent, each pre-bound
// to its direction.
func New(name string) *Design {
	d := &Design{Name: name}
	for i := range d.shapes {
		d.shapes[i].Dir = shape.Direction(i)
	}

	return d
}

// Shape returns the owned entry for direction dir, or nil when dir is
// outside the catalog. The pointer stays valid until Clear; callers must
// not share Rows between designs.
func (d *Design) Shape(dir shape.Direction) *shape.Shape {
	if !dir.Valid() {
		return nil
	}

	return &d.shapes[dir]
}

// SetShape installs s into its direction slot, replacing whatever the
// slot held. Returns ErrBadDirection when s.Dir is outside the catalog.
func (d *Design) SetShape(s shape.Shape) error {
	if !s.Dir.Valid() {
		return ErrBadDirection
	}
	d.shapes[s.Dir] = s

	return nil
}

// entries exposes the slot array as the slice form the shape package's
// collection operations take.
func (d *Design) entries() []shape.Shape {
	return d.shapes[:]
}

// sideIndices resolves side s to slot indices, the subset selection for
// the aggregate metrics.
func (d *Design) sideIndices(s shape.Side) []int {
	if s < shape.SideNorth || s > shape.SideWest {
		return nil
	}
	indices := make([]int, 0, shape.ShapesPerSide)
	for _, dir := range shape.Sides[s] {
		if i := shape.Find(d.entries(), dir); i != shape.NotFound {
			indices = append(indices, i)
		}
	}

	return indices
}

// SideHeight returns the side's aggregate thickness in rows: the maximum
// height among its five shapes, 0 when the whole side is empty. Meaningful
// for the horizontal sides; defined for all.
func (d *Design) SideHeight(s shape.Side) int {
	return shape.Highest(d.entries(), d.sideIndices(s))
}

// SideWidth returns the side's aggregate thickness in display columns:
// the maximum width among its five shapes, 0 when the whole side is empty.
func (d *Design) SideWidth(s shape.Side) int {
	return shape.Widest(d.entries(), d.sideIndices(s))
}

// EmptySide reports whether side s contributes no visible output and may
// be omitted entirely by the renderer.
func (d *Design) EmptySide(s shape.Side) bool {
	return shape.EmptySide(d.entries(), s)
}

// Clear releases every owned entry, keeping slot identities. Idempotent.
func (d *Design) Clear() {
	for i := range d.shapes {
		d.shapes[i].Clear()
	}
}
