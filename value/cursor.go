package value

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dhamidi/textparse/syntax"
)

// cursor is an immutable view into the input: the full source and the
// absolute offset of the next unread byte. Advancing returns a new cursor.
type cursor struct {
	src string
	off int
}

func (c cursor) rest() string {
	return c.src[c.off:]
}

func (c cursor) eof() bool {
	return c.off >= len(c.src)
}

// peek returns the next rune and its width, or (0, 0) at end of input.
func (c cursor) peek() (rune, int) {
	if c.eof() {
		return 0, 0
	}
	return utf8.DecodeRuneInString(c.src[c.off:])
}

func (c cursor) is(ch rune) bool {
	r, n := c.peek()
	return n > 0 && r == ch
}

func (c cursor) advance(n int) cursor {
	c.off += n
	return c
}

func (c cursor) hasPrefix(s string) bool {
	return strings.HasPrefix(c.rest(), s)
}

func (c cursor) skipWhitespace() cursor {
	for {
		r, n := c.peek()
		if n == 0 || !unicode.IsSpace(r) {
			return c
		}
		c.off += n
	}
}

// unexpected reports the rune at c, or end of input.
func (c cursor) unexpected() error {
	r, n := c.peek()
	if n == 0 {
		return syntax.At(syntax.ErrUnexpectedEOF, c.src, c.off)
	}
	return syntax.Unexpected(r, c.src, c.off)
}

func (c cursor) fail(kind error) *syntax.Error {
	return syntax.At(kind, c.src, c.off)
}
