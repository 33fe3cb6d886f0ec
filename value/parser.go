package value

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"github.com/dhamidi/textparse/syntax"
)

// DefaultMaxDepth is the array/object nesting limit used unless
// WithMaxDepth says otherwise.
const DefaultMaxDepth = 128

type Option func(*parser)

// WithMaxDepth limits how deeply arrays and objects may nest.
// Values below 1 select DefaultMaxDepth.
func WithMaxDepth(depth int) Option {
	return func(p *parser) {
		if depth < 1 {
			depth = DefaultMaxDepth
		}
		p.maxDepth = depth
	}
}

type parser struct {
	maxDepth int
}

func newParser(opts []Option) *parser {
	p := &parser{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses one value from the start of text, skipping leading
// whitespace, and returns it together with the unconsumed remainder of
// text. Errors are *syntax.Error values wrapping one of the syntax
// sentinels, positioned relative to text.
func Parse(text string, opts ...Option) (Value, string, error) {
	p := newParser(opts)
	v, c, err := p.parseValue(cursor{src: text}, 0)
	if err != nil {
		return nil, "", err
	}
	return v, c.rest(), nil
}

// ParseComplete parses text as exactly one value. Anything other than
// whitespace after the value is reported as an unexpected character.
func ParseComplete(text string, opts ...Option) (Value, error) {
	p := newParser(opts)
	v, c, err := p.parseValue(cursor{src: text}, 0)
	if err != nil {
		return nil, err
	}
	if c = c.skipWhitespace(); !c.eof() {
		return nil, c.unexpected()
	}
	return v, nil
}

func (p *parser) parseValue(c cursor, depth int) (Value, cursor, error) {
	c = c.skipWhitespace()
	ch, n := c.peek()
	if n == 0 {
		return nil, c, c.fail(syntax.ErrUnexpectedEOF)
	}

	switch {
	case ch == 'n':
		return parseLiteral(c, "null", Null{})
	case ch == 't':
		return parseLiteral(c, "true", Bool(true))
	case ch == 'f':
		return parseLiteral(c, "false", Bool(false))
	case ch == '"':
		s, next, err := parseString(c)
		if err != nil {
			return nil, c, err
		}
		return String(s), next, nil
	case ch == '[':
		return p.parseArray(c, depth)
	case ch == '{':
		return p.parseObject(c, depth)
	case ch == '-' || ('0' <= ch && ch <= '9'):
		return parseNumber(c)
	default:
		return nil, c, syntax.Unexpected(ch, c.src, c.off)
	}
}

// parseLiteral matches the keyword word. A mismatch is reported at the
// first differing character, or at the keyword start if input runs out.
func parseLiteral(c cursor, word string, v Value) (Value, cursor, error) {
	c = c.skipWhitespace()
	if c.hasPrefix(word) {
		return v, c.advance(len(word)), nil
	}

	at := c
	for _, want := range word {
		got, n := at.peek()
		if n == 0 {
			break
		}
		if got != want {
			return nil, c, syntax.Unexpected(got, at.src, at.off)
		}
		at = at.advance(n)
	}
	first, _ := c.peek()
	return nil, c, syntax.Unexpected(first, c.src, c.off)
}

// parseNumber consumes the longest run of digits with at most one '.' and
// an optional leading '-', then converts it as a 64-bit float.
func parseNumber(c cursor) (Value, cursor, error) {
	c = c.skipWhitespace()
	start := c
	hasDot := false
	for {
		ch, n := c.peek()
		if n == 0 {
			break
		}
		if ch == '.' && !hasDot {
			hasDot = true
		} else if !(unicode.IsNumber(ch) || (ch == '-' && c.off == start.off)) {
			break
		}
		c = c.advance(n)
	}

	text := start.src[start.off:c.off]
	f, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		serr := start.fail(syntax.ErrInvalidNumber)
		serr.Text = text
		return nil, start, serr
	}
	return Number(f), c, nil
}

// parseString reads a double-quoted string with \n, \t, \r, \" and \\
// escapes and returns its decoded text.
func parseString(c cursor) (string, cursor, error) {
	c = c.skipWhitespace()
	if !c.is('"') {
		return "", c, c.unexpected()
	}
	open := c
	c = c.advance(1)

	var sb strings.Builder
	for {
		ch, n := c.peek()
		if n == 0 {
			return "", open, open.fail(syntax.ErrUnclosedString)
		}
		switch ch {
		case '"':
			return sb.String(), c.advance(n), nil
		case '\\':
			c = c.advance(n)
			esc, m := c.peek()
			if m == 0 {
				return "", open, open.fail(syntax.ErrUnclosedString)
			}
			switch esc {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '"':
				sb.WriteByte('"')
			case '\\':
				sb.WriteByte('\\')
			default:
				serr := c.fail(syntax.ErrInvalidEscape)
				serr.Char = esc
				return "", c, serr
			}
			n = m
		default:
			sb.WriteRune(ch)
		}
		c = c.advance(n)
	}
}

// enter checks the nesting limit for a container opening at c.
func (p *parser) enter(c cursor, depth int) error {
	if depth+1 > p.maxDepth {
		return c.fail(syntax.ErrTooDeep)
	}
	return nil
}

func (p *parser) parseArray(c cursor, depth int) (Value, cursor, error) {
	c = c.skipWhitespace()
	if !c.is('[') {
		return nil, c, c.unexpected()
	}
	if err := p.enter(c, depth); err != nil {
		return nil, c, err
	}
	c = c.advance(1)

	elements := Array{}
	for {
		c = c.skipWhitespace()
		if c.is(']') {
			return elements, c.advance(1), nil
		}
		if len(elements) > 0 {
			if !c.is(',') {
				return nil, c, c.unexpected()
			}
			c = c.advance(1).skipWhitespace()
		}

		v, next, err := p.parseValue(c, depth+1)
		if err != nil {
			return nil, c, err
		}
		elements = append(elements, v)
		c = next
	}
}

func (p *parser) parseObject(c cursor, depth int) (Value, cursor, error) {
	c = c.skipWhitespace()
	if !c.is('{') {
		return nil, c, c.unexpected()
	}
	if err := p.enter(c, depth); err != nil {
		return nil, c, err
	}
	c = c.advance(1)

	members := Object{}
	for {
		c = c.skipWhitespace()
		if c.is('}') {
			return members, c.advance(1), nil
		}
		if len(members) > 0 {
			if !c.is(',') {
				return nil, c, c.unexpected()
			}
			c = c.advance(1).skipWhitespace()
		}

		key, next, err := parseString(c)
		if err != nil {
			return nil, c, err
		}
		c = next.skipWhitespace()
		if !c.is(':') {
			return nil, c, c.unexpected()
		}

		v, next, err := p.parseValue(c.advance(1), depth+1)
		if err != nil {
			return nil, c, err
		}
		members = append(members, Member{Key: key, Value: v})
		c = next
	}
}
