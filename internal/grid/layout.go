package grid

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrInvalidWidth is returned for a group width outside {1, 2, 4, 8} or one
// that does not evenly divide the row width.
var ErrInvalidWidth = errors.New("invalid display width")

// DefaultRowBytes is the number of raw bytes shown per row.
const DefaultRowBytes = 16

// Layout describes the column structure derived from a group width: how many
// grouped hex columns a row has and the header labels for both grids.
type Layout struct {
	GroupWidth   int
	Columns      int
	RowDepth     int
	HexHeaders   []string
	ASCIIHeaders []string
}

// ValidWidth reports whether w is a supported group width.
func ValidWidth(w int) bool {
	switch w {
	case 1, 2, 4, 8:
		return true
	}
	return false
}

// Derive computes the column layout for the given group width and row width.
// It is pure: identical inputs always produce identical layouts.
func Derive(groupWidth, rowBytes int) (Layout, error) {
	if !ValidWidth(groupWidth) {
		return Layout{}, errors.Wrapf(ErrInvalidWidth, "%d", groupWidth)
	}
	if rowBytes <= 0 || rowBytes%groupWidth != 0 {
		return Layout{}, errors.Wrapf(ErrInvalidWidth, "%d does not divide a %d byte row", groupWidth, rowBytes)
	}

	l := Layout{
		GroupWidth: groupWidth,
		Columns:    rowBytes / groupWidth,
		RowDepth:   rowBytes,
	}

	l.HexHeaders = make([]string, l.Columns)
	for i := range l.HexHeaders {
		l.HexHeaders[i] = fmt.Sprintf("%0*X", 2*groupWidth, i*groupWidth)
	}

	// One label per raw byte, regardless of group width. A single hex digit
	// keeps each label as wide as its one-character ASCII cell.
	l.ASCIIHeaders = make([]string, rowBytes)
	for i := range l.ASCIIHeaders {
		l.ASCIIHeaders[i] = fmt.Sprintf("%X", i&0xF)
	}

	return l, nil
}
