// Package row parses delimiter-separated rows with double-quote escaping.
package row

import (
	"errors"
	"strings"

	"github.com/dhamidi/textparse/syntax"
)

const (
	quote  = '"'
	escape = '\\'
)

// Row is an ordered list of trimmed field values.
type Row []string

// Document is the list of rows parsed from the non-blank lines of a text.
type Document []Row

// Parser splits lines into fields on a fixed delimiter.
// A Parser is immutable and safe for concurrent use.
type Parser struct {
	delimiter rune
}

// NewParser returns a Parser splitting fields on delimiter.
func NewParser(delimiter rune) *Parser {
	return &Parser{delimiter: delimiter}
}

// Delimiter returns the field delimiter.
func (p *Parser) Delimiter() rune {
	return p.delimiter
}

// ParseLine splits line into fields.
//
// Double quotes toggle quoting and are dropped from the field; inside quotes
// the delimiter is literal and a backslash takes the next character
// verbatim. Each field is trimmed of surrounding whitespace. An empty line
// yields no fields; otherwise a line with n unquoted delimiters yields n+1
// fields. A quote left open fails with syntax.ErrUnclosedQuote.
func (p *Parser) ParseLine(line string) (Row, error) {
	if line == "" {
		return Row{}, nil
	}

	var (
		fields        Row
		field         strings.Builder
		inQuotes      bool
		escapePending bool
		quoteStart    int
	)

	for i, ch := range line {
		switch {
		case escapePending:
			field.WriteRune(ch)
			escapePending = false
		case ch == escape && inQuotes:
			escapePending = true
		case ch == quote:
			if !inQuotes {
				quoteStart = i
			}
			inQuotes = !inQuotes
		case ch == p.delimiter && !inQuotes:
			fields = append(fields, strings.TrimSpace(field.String()))
			field.Reset()
		default:
			field.WriteRune(ch)
		}
	}

	if inQuotes {
		return nil, syntax.At(syntax.ErrUnclosedQuote, line, quoteStart)
	}

	fields = append(fields, strings.TrimSpace(field.String()))
	return fields, nil
}

// ParseDocument parses every non-blank line of text as a row.
// Lines end at '\n'; a trailing '\r' is dropped. The first failing line
// fails the whole document, and the error position is relative to text.
func (p *Parser) ParseDocument(text string) (Document, error) {
	doc := Document{}
	offset := 0
	for lineNum, line := range strings.Split(text, "\n") {
		start := offset
		offset += len(line) + 1

		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		r, err := p.ParseLine(line)
		if err != nil {
			var serr *syntax.Error
			if errors.As(err, &serr) {
				relocated := *serr
				relocated.Pos = serr.Pos.Shift(lineNum, start)
				return nil, &relocated
			}
			return nil, err
		}
		doc = append(doc, r)
	}
	return doc, nil
}
