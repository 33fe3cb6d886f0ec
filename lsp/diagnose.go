package lsp

import (
	"errors"
	"path"
	"strings"
	"unicode/utf16"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/textparse/row"
	"github.com/dhamidi/textparse/syntax"
	"github.com/dhamidi/textparse/value"
)

// Language selects the parser used for a document.
type Language int

const (
	LanguageUnknown Language = iota
	LanguageRows
	LanguageValue
)

// Detect picks the language and row delimiter for a document URI.
func Detect(uri string) (Language, rune) {
	switch strings.ToLower(path.Ext(uri)) {
	case ".csv":
		return LanguageRows, ','
	case ".tsv":
		return LanguageRows, '\t'
	case ".psv":
		return LanguageRows, '|'
	case ".json":
		return LanguageValue, 0
	default:
		return LanguageUnknown, 0
	}
}

// Diagnose parses text according to the language of uri and reports the
// parse error, if any. Unknown languages yield no diagnostics.
func Diagnose(uri, text string, maxDepth int) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	var err error
	switch lang, delimiter := Detect(uri); lang {
	case LanguageRows:
		_, err = row.NewParser(delimiter).ParseDocument(text)
	case LanguageValue:
		_, err = value.ParseComplete(text, value.WithMaxDepth(maxDepth))
	}
	if err == nil {
		return diagnostics
	}

	start := protocol.Position{}
	var serr *syntax.Error
	if errors.As(err, &serr) {
		start = toProtocolPosition(text, serr.Pos)
	}
	end := start
	end.Character++

	severity := protocol.DiagnosticSeverityError
	source := lsName
	return append(diagnostics, protocol.Diagnostic{
		Range:    protocol.Range{Start: start, End: end},
		Severity: &severity,
		Source:   &source,
		Message:  diagnosticMessage(err),
	})
}

// diagnosticMessage drops the position prefix, which the range already carries.
func diagnosticMessage(err error) string {
	msg := err.Error()
	var serr *syntax.Error
	if errors.As(err, &serr) {
		msg = strings.TrimPrefix(msg, serr.Pos.String()+": ")
	}
	return msg
}

// toProtocolPosition converts a parser position to a zero-based line and a
// UTF-16 character offset, as LSP clients expect.
func toProtocolPosition(text string, pos syntax.Position) protocol.Position {
	lineStart := strings.LastIndexByte(text[:pos.Offset], '\n') + 1
	character := 0
	for _, r := range text[lineStart:pos.Offset] {
		character += utf16.RuneLen(r)
	}
	return protocol.Position{
		Line:      protocol.UInteger(pos.Line - 1),
		Character: protocol.UInteger(character),
	}
}
