package value

import (
	"bytes"
	_ "embed"
	"fmt"

	"golang.org/x/exp/ebnf"
)

// GrammarStart is the start production of the value grammar.
const GrammarStart = "Value"

//go:embed grammar.ebnf
var grammarSource []byte

// GrammarSource returns the EBNF text of the value grammar.
func GrammarSource() []byte {
	return bytes.Clone(grammarSource)
}

// Grammar returns the parsed and verified value grammar.
// Lowercase productions are lexical; whitespace may separate the tokens of
// the others.
func Grammar() (ebnf.Grammar, error) {
	grammar, err := ebnf.Parse("grammar.ebnf", bytes.NewReader(grammarSource))
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	if err := ebnf.Verify(grammar, GrammarStart); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}
	return grammar, nil
}
