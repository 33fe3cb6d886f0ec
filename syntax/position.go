// Package syntax holds the error model shared by the row and value parsers.
package syntax

import (
	"fmt"
	"unicode/utf8"
)

// Position represents a location in parser input.
// Offset is a byte offset; Line and Column are 1-based, Column counts runes.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// PositionAt returns the position of the byte offset in src.
// Offsets past the end of src are clamped to len(src).
func PositionAt(src string, offset int) Position {
	if offset > len(src) {
		offset = len(src)
	}
	if offset < 0 {
		offset = 0
	}
	pos := Position{Offset: offset, Line: 1, Column: 1}
	for i := 0; i < offset; {
		r, size := utf8.DecodeRuneInString(src[i:])
		i += size
		if r == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	return pos
}

// Shift moves p down by the given number of lines and right by offset bytes.
// It relocates a position computed on a single line into the enclosing text.
func (p Position) Shift(lines, offset int) Position {
	p.Line += lines
	p.Offset += offset
	return p
}
