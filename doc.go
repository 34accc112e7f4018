// Package boxkit is the shape-geometry engine behind drawing and removing
// decorative borders (“boxes”) around blocks of text.
//
// 🧩 What is boxkit?
//
//	A small, pure-Go core that models the sixteen directional pieces of a
//	rectangular border and the operations layout code needs from them:
//		• Direction catalog: the closed 16-value compass set, per-side and
//		  corner groupings, side-index lookup tables
//		• Shape entries: per-direction glyph grids with display-aware rows
//		  and per-row blank-adjacency flags
//		• Emptiness analysis: shallow and deep blankness tests, whole-side
//		  suppression checks
//		• Metrics: aggregate height/width over any chosen subset of shapes
//
// Everything is organized under three subpackages:
//
//	bxstring/ — display-width-aware glyph rows (multi-byte safe)
//	shape/    — direction catalog, shape entries, emptiness, metrics
//	design/   — a loaded box design owning up to 16 shapes
//
// Out of scope by design: command-line handling, design-file parsing, line
// reflow of the boxed text, and final output rendering; those live in the
// loader and renderer layers that consume this core.
//
// Quick ASCII example:
//
//	    +-------+
//	    | hello |
//	    +-------+
//
//	a minimal design: four corner shapes, three subdivisions per side, the
//	middle one elastic so the border stretches with the text.
//
//	go get github.com/boxkit/boxkit
package boxkit
