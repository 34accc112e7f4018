// Package design models one loaded box design: the exclusive owner of up
// to sixteen shape entries, one per border direction.
//
// What:
//
//   - Design holds one Shape slot per direction and keeps each entry's
//     identity pinned to its slot.
//   - SideHeight / SideWidth aggregate a side's thickness in rows or
//     columns from its five constituent shapes.
//   - EmptySide answers whether an entire side may be suppressed from
//     output.
//   - Clear releases every owned grid, returning the design to its
//     freshly-created state.
//
// Why:
//
//   - The design loader materializes entries and needs the design-level
//     thickness and suppression answers; the renderer resolves direction
//     slots while emitting lines. Both talk to one owner object instead of
//     threading raw slices around.
//
// Errors:
//
//   - ErrBadDirection: SetShape with an entry whose direction is outside
//     the closed catalog. All queries are total.
//
// Not here (loader/renderer territory): design-file parsing and
// validation, border stitching, text reflow.
package design
