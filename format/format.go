// Package format renders parse results for inspection.
package format

import (
	"github.com/dhamidi/textparse/row"
	"github.com/dhamidi/textparse/value"
)

// ValueEncoder writes a parsed value.
type ValueEncoder interface {
	EncodeValue(v value.Value) error
}

// DocumentEncoder writes a parsed row document.
type DocumentEncoder interface {
	EncodeDocument(doc row.Document) error
}
