package syntax

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying the kind of a parse failure.
// Use errors.Is on errors returned by the parsers.
var (
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrUnexpectedEOF       = errors.New("unexpected end of input")
	ErrInvalidNumber       = errors.New("invalid number")
	ErrInvalidEscape       = errors.New("invalid escape sequence")
	ErrUnclosedString      = errors.New("unclosed string")
	ErrUnclosedQuote       = errors.New("unclosed quote")
	ErrTooDeep             = errors.New("nesting too deep")
)

// Error is a parse error with its location in the input.
type Error struct {
	Err  error    // one of the sentinel errors
	Pos  Position // where the failure was detected
	Char rune     // offending character, for ErrUnexpectedCharacter and ErrInvalidEscape
	Text string   // offending text, for ErrInvalidNumber
}

func (e *Error) Error() string {
	switch e.Err {
	case ErrUnexpectedCharacter:
		return fmt.Sprintf("%s: unexpected character %q", e.Pos, e.Char)
	case ErrInvalidNumber:
		return fmt.Sprintf("%s: invalid number: %q", e.Pos, e.Text)
	case ErrInvalidEscape:
		return fmt.Sprintf("%s: invalid escape sequence: \\%c", e.Pos, e.Char)
	default:
		return fmt.Sprintf("%s: %v", e.Pos, e.Err)
	}
}

// Unwrap returns the sentinel error for use with errors.Is.
func (e *Error) Unwrap() error {
	return e.Err
}

// At builds an Error of the given kind at offset in src.
func At(kind error, src string, offset int) *Error {
	return &Error{Err: kind, Pos: PositionAt(src, offset)}
}

// Unexpected builds an ErrUnexpectedCharacter error for ch at offset in src.
func Unexpected(ch rune, src string, offset int) *Error {
	e := At(ErrUnexpectedCharacter, src, offset)
	e.Char = ch
	return e
}
