// Package bxstring provides the display-width-aware string representation
// used for the glyph rows of border shapes.
//
// What:
//
//   - String wraps one row of glyph text together with its true terminal
//     footprint: display columns and grapheme-cluster count.
//   - New segments arbitrary UTF-8 text; Spaces builds a blank row of a
//     given column count.
//   - Width, Len, IsBlank answer the measurement questions layout code
//     asks, independent of byte or rune count.
//
// Why:
//
//   - Box borders must line up column-for-column even when a design uses
//     wide CJK glyphs (2 columns), combining marks (0 columns) or emoji.
//     Raw len(s) and rune counts both lie about terminal width.
//
// Semantics:
//
//   - Width is the number of terminal cells the text occupies.
//   - Len is the number of user-perceived characters (grapheme clusters).
//   - The zero value is the empty row: Width 0, Len 0, blank.
//
// Errors: none. Every Go string is accepted; measurement is total.
package bxstring
