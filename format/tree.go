package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/textparse/value"
)

// TreeEncoder writes a value as an indented outline, one node per line.
type TreeEncoder struct {
	w io.Writer
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

func (e *TreeEncoder) EncodeValue(v value.Value) error {
	_, err := io.WriteString(e.w, Tree(v))
	return err
}

// Tree returns the outline of v.
func Tree(v value.Value) string {
	var sb strings.Builder
	writeTree(&sb, v, "", 0)
	return sb.String()
}

func writeTree(sb *strings.Builder, v value.Value, label string, indent int) {
	sb.WriteString(strings.Repeat("  ", indent))
	sb.WriteString(label)

	switch v := v.(type) {
	case value.Null:
		sb.WriteString("null\n")
	case value.Bool:
		fmt.Fprintf(sb, "bool %t\n", bool(v))
	case value.Number:
		fmt.Fprintf(sb, "number %s\n", formatNumber(v))
	case value.String:
		fmt.Fprintf(sb, "string %s\n", strconv.Quote(string(v)))
	case value.Array:
		fmt.Fprintf(sb, "array (%d)\n", len(v))
		for i, elem := range v {
			writeTree(sb, elem, fmt.Sprintf("[%d] ", i), indent+1)
		}
	case value.Object:
		fmt.Fprintf(sb, "object (%d)\n", len(v))
		for _, m := range v {
			writeTree(sb, m.Value, strconv.Quote(m.Key)+": ", indent+1)
		}
	default:
		panic(fmt.Sprintf("format: unknown value type %T", v))
	}
}
