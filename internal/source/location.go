// Package source tracks the files loaded into a compiler session and the
// positions inside them that tokens and diagnostics refer to.
package source

import "strconv"

// InvalidFileID marks a Location that does not point into any file.
const InvalidFileID = -1

// Location is a (file, row, column) position in a source file.
//
// Rows and columns are 1-based and count bytes, not runes. File ids are
// positive; the zero value and Invalid() both report as invalid.
type Location struct {
	FileID int
	Row    int
	Column int
}

// Invalid returns the sentinel location that refers to no file.
func Invalid() Location {
	return Location{FileID: InvalidFileID}
}

// At builds a location in the given file.
func At(fileID, row, col int) Location {
	return Location{FileID: fileID, Row: row, Column: col}
}

// IsValid reports whether the location refers to a file.
func (l Location) IsValid() bool {
	return l.FileID > 0
}

// Equal compares two locations. Any two invalid locations are equal
// regardless of their row and column.
func (l Location) Equal(other Location) bool {
	if !l.IsValid() && !other.IsValid() {
		return true
	}
	return l == other
}

// Before reports whether l comes strictly before other in the same file.
func (l Location) Before(other Location) bool {
	if l.Row != other.Row {
		return l.Row < other.Row
	}
	return l.Column < other.Column
}

// String renders the location as "row:col".
func (l Location) String() string {
	if !l.IsValid() {
		return "<invalid loc>"
	}
	return strconv.Itoa(l.Row) + ":" + strconv.Itoa(l.Column)
}

// Range is a half-open span [Start, End) of locations in one file.
type Range struct {
	Start Location
	End   Location
}

// InvalidRange returns a range whose endpoints are both invalid.
func InvalidRange() Range {
	return Range{Start: Invalid(), End: Invalid()}
}

// Span builds a range from start (inclusive) to end (exclusive).
func Span(start, end Location) Range {
	return Range{Start: start, End: end}
}

// IsValid reports whether both endpoints are valid and share a file.
func (r Range) IsValid() bool {
	return r.Start.IsValid() && r.End.IsValid() && r.Start.FileID == r.End.FileID
}

// FileID returns the id of the file the range refers to.
func (r Range) FileID() int {
	return r.Start.FileID
}

// Equal compares two ranges. Any two invalid ranges are equal.
func (r Range) Equal(other Range) bool {
	if !r.IsValid() && !other.IsValid() {
		return true
	}
	return r.Start.Equal(other.Start) && r.End.Equal(other.End)
}

// Contains reports whether loc lies inside the half-open range.
func (r Range) Contains(loc Location) bool {
	if !r.IsValid() || !loc.IsValid() || loc.FileID != r.FileID() {
		return false
	}
	return !loc.Before(r.Start) && loc.Before(r.End)
}

// String renders the range as "row:col-row:col".
func (r Range) String() string {
	if !r.IsValid() {
		return "<invalid range>"
	}
	return r.Start.String() + "-" + r.End.String()
}
