package lexer

import "github.com/hassan/jvc/internal/source"

// LocationBuilder tracks the position just after the last consumed byte.
type LocationBuilder struct {
	fileID int
	row    int
	col    int
}

// NewLocationBuilder starts at row 1, column 1 of the given file.
func NewLocationBuilder(fileID int) LocationBuilder {
	return LocationBuilder{fileID: fileID, row: 1, col: 1}
}

// Advance accounts for one consumed byte. A newline moves to the first
// column of the next row; anything else moves one column right.
func (b *LocationBuilder) Advance(ch byte) {
	if ch == '\n' {
		b.row++
		b.col = 1
		return
	}
	b.col++
}

// Location returns the current position.
func (b LocationBuilder) Location() source.Location {
	return source.At(b.fileID, b.row, b.col)
}

func (b LocationBuilder) FileID() int { return b.fileID }
func (b LocationBuilder) Row() int    { return b.row }
func (b LocationBuilder) Col() int    { return b.col }
