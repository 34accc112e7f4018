// Package bxstring wraps glyph-row text with its terminal display metrics.
package bxstring

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// String is one row of glyph text plus its display measurements.
// It is an immutable value: construct with New or Spaces, never mutate.
// The zero value is the empty row.
type String struct {
	text  string
	width int // terminal cells occupied
	count int // grapheme clusters
}

// New measures text and returns its display-row representation.
// Width counts terminal cells (wide glyphs 2, combining marks 0);
// Len counts grapheme clusters. Complexity: O(len(text)).
func New(text string) String {
	return String{
		text:  text,
		width: runewidth.StringWidth(text),
		count: uniseg.GraphemeClusterCount(text),
	}
}

// Spaces returns a blank row of n display columns.
// n ≤ 0 yields the empty row.
func Spaces(n int) String {
	if n <= 0 {
		return String{}
	}

	return String{text: strings.Repeat(" ", n), width: n, count: n}
}

// String returns the raw glyph text.
func (s String) String() string { return s.text }

// Width returns the number of terminal cells the row occupies.
// Distinct from byte and rune counts for multi-byte glyphs.
func (s String) Width() int { return s.width }

// Len returns the number of grapheme clusters (user-perceived characters).
func (s String) Len() int { return s.count }

// IsBlank reports whether the row renders no visible glyph:
// empty text or whitespace only.
func (s String) IsBlank() bool { return strings.TrimSpace(s.text) == "" }
