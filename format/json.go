package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/dhamidi/textparse/row"
	"github.com/dhamidi/textparse/value"
)

// JSONEncoder writes parse results as indented JSON trees. Values are
// wrapped in kind-tagged nodes so object member order and duplicate keys
// survive.
type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) EncodeValue(v value.Value) error {
	return e.write(valueToJSON(v))
}

func (e *JSONEncoder) EncodeDocument(doc row.Document) error {
	rows := make([][]string, len(doc))
	for i, r := range doc {
		rows[i] = []string(r)
	}
	return e.write(rows)
}

func (e *JSONEncoder) write(data any) error {
	text, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}

type jsonValue struct {
	Kind     string        `json:"kind"`
	Bool     *bool         `json:"bool,omitempty"`
	Number   string        `json:"number,omitempty"`
	String   *string       `json:"string,omitempty"`
	Elements []*jsonValue  `json:"elements,omitempty"`
	Members  []*jsonMember `json:"members,omitempty"`
}

type jsonMember struct {
	Key   string     `json:"key"`
	Value *jsonValue `json:"value"`
}

func valueToJSON(v value.Value) *jsonValue {
	jv := &jsonValue{Kind: v.Kind().String()}

	switch v := v.(type) {
	case value.Null:
	case value.Bool:
		b := bool(v)
		jv.Bool = &b
	case value.Number:
		jv.Number = formatNumber(v)
	case value.String:
		s := string(v)
		jv.String = &s
	case value.Array:
		jv.Elements = make([]*jsonValue, len(v))
		for i, elem := range v {
			jv.Elements[i] = valueToJSON(elem)
		}
	case value.Object:
		jv.Members = make([]*jsonMember, len(v))
		for i, m := range v {
			jv.Members[i] = &jsonMember{Key: m.Key, Value: valueToJSON(m.Value)}
		}
	default:
		panic(fmt.Sprintf("format: unknown value type %T", v))
	}

	return jv
}

// formatNumber keeps infinities representable, which JSON numbers are not.
func formatNumber(n value.Number) string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}
