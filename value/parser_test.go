package value

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/dhamidi/textparse/syntax"
)

func TestParseScalars(t *testing.T) {
	tests := []struct {
		input    string
		expected Value
	}{
		{"null", Null{}},
		{"true", Bool(true)},
		{"false", Bool(false)},
		{"123.45", Number(123.45)},
		{"-7", Number(-7)},
		{"0", Number(0)},
		{"1.", Number(1)},
		{"-.5", Number(-0.5)},
		{`"hello world"`, String("hello world")},
		{`""`, String("")},
		{`"héllo ☃"`, String("héllo ☃")},
		{`"a\nb\tc\rd\"e\\f"`, String("a\nb\tc\rd\"e\\f")},
		{"  \n\t null", Null{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, rest, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %#v, got %#v", tt.expected, got)
			}
			if rest != "" {
				t.Errorf("expected empty remainder, got %q", rest)
			}
		})
	}
}

func TestParseArray(t *testing.T) {
	got, rest, err := Parse("[1, 2, 3]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := Array{Number(1), Number(2), Number(3)}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %#v, got %#v", expected, got)
	}
	if rest != "" {
		t.Errorf("expected empty remainder, got %q", rest)
	}
}

func TestParseObjectPreservesOrder(t *testing.T) {
	got, _, err := Parse(`{"b":2,"a":1,"b":3}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := Object{
		{Key: "b", Value: Number(2)},
		{Key: "a", Value: Number(1)},
		{Key: "b", Value: Number(3)},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %#v, got %#v", expected, got)
	}

	obj := got.(Object)
	if v, ok := obj.Get("b"); !ok || v != Number(2) {
		t.Errorf("expected first b to be 2, got %v", v)
	}
	if _, ok := obj.Get("missing"); ok {
		t.Error("expected missing key to be absent")
	}
	if keys := obj.Keys(); !reflect.DeepEqual(keys, []string{"b", "a", "b"}) {
		t.Errorf("unexpected keys %q", keys)
	}
}

func TestParseObject(t *testing.T) {
	got, _, err := Parse(`{"a":1,"b":2}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := Object{{Key: "a", Value: Number(1)}, {Key: "b", Value: Number(2)}}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %#v, got %#v", expected, got)
	}
}

func TestParseNested(t *testing.T) {
	input := ` { "name" : "x" , "tags" : [ "a" , [ ] , { } ] , "n" : null , "ok" : false } `
	got, rest, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := Object{
		{Key: "name", Value: String("x")},
		{Key: "tags", Value: Array{String("a"), Array{}, Object{}}},
		{Key: "n", Value: Null{}},
		{Key: "ok", Value: Bool(false)},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %#v, got %#v", expected, got)
	}
	if rest != " " {
		t.Errorf("expected single space remainder, got %q", rest)
	}
}

func TestParseRemainder(t *testing.T) {
	tests := []struct {
		input string
		rest  string
	}{
		{"null, 1", ", 1"},
		{"truex", "x"},
		{"12.5.6", ".6"},
		{"3-4", "-4"},
		{`"a" "b"`, ` "b"`},
		{"[1] [2]", " [2]"},
		{"{}}", "}"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, rest, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rest != tt.rest {
				t.Errorf("expected remainder %q, got %q", tt.rest, rest)
			}
			if !strings.HasSuffix(tt.input, rest) {
				t.Errorf("remainder %q is not a suffix of %q", rest, tt.input)
			}
		})
	}
}

func TestParseNumberOverflow(t *testing.T) {
	got, _, err := Parse("-" + strings.Repeat("9", 400))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n, ok := got.(Number); !ok || !math.IsInf(float64(n), -1) {
		t.Errorf("expected -Inf, got %#v", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		kind   error
		offset int
		char   rune
		text   string
	}{
		{"empty", "", syntax.ErrUnexpectedEOF, 0, 0, ""},
		{"whitespace", "   ", syntax.ErrUnexpectedEOF, 3, 0, ""},
		{"bad start", "@", syntax.ErrUnexpectedCharacter, 0, '@', ""},
		{"bad null", "nul", syntax.ErrUnexpectedCharacter, 0, 'n', ""},
		{"bad null char", " nuLl", syntax.ErrUnexpectedCharacter, 3, 'L', ""},
		{"bad true", "trux", syntax.ErrUnexpectedCharacter, 3, 'x', ""},
		{"bad false", "fals", syntax.ErrUnexpectedCharacter, 0, 'f', ""},
		{"lone minus", "-", syntax.ErrInvalidNumber, 0, 0, "-"},
		{"minus dot", "-.", syntax.ErrInvalidNumber, 0, 0, "-."},
		{"minus letter", " -x", syntax.ErrInvalidNumber, 1, 0, "-"},
		{"non-ascii digits", "1٣", syntax.ErrInvalidNumber, 0, 0, "1٣"},
		{"unclosed string", `"abc`, syntax.ErrUnclosedString, 0, 0, ""},
		{"unclosed after escape", `"abc\`, syntax.ErrUnclosedString, 0, 0, ""},
		{"invalid escape", `"a\qb"`, syntax.ErrInvalidEscape, 3, 'q', ""},
		{"invalid unicode escape", `"\u0041"`, syntax.ErrInvalidEscape, 2, 'u', ""},
		{"missing colon", `{"a" 1}`, syntax.ErrUnexpectedCharacter, 5, '1', ""},
		{"non-string key", `{a:1}`, syntax.ErrUnexpectedCharacter, 1, 'a', ""},
		{"missing comma", "[1 2]", syntax.ErrUnexpectedCharacter, 3, '2', ""},
		{"missing object comma", `{"a":1 "b":2}`, syntax.ErrUnexpectedCharacter, 7, '"', ""},
		{"array trailing comma", "[1,]", syntax.ErrUnexpectedCharacter, 3, ']', ""},
		{"object trailing comma", `{"a":1,}`, syntax.ErrUnexpectedCharacter, 7, '}', ""},
		{"leading comma", "[,1]", syntax.ErrUnexpectedCharacter, 1, ',', ""},
		{"unterminated array", "[1", syntax.ErrUnexpectedEOF, 2, 0, ""},
		{"unterminated object", `{"a":1`, syntax.ErrUnexpectedEOF, 6, 0, ""},
		{"object without key", "{", syntax.ErrUnexpectedEOF, 1, 0, ""},
		{"object without value", `{"a":`, syntax.ErrUnexpectedEOF, 5, 0, ""},
		{"nested error offset", `{"a":[1, {"b": tru}]}`, syntax.ErrUnexpectedCharacter, 18, '}', ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rest, err := Parse(tt.input)
			if !errors.Is(err, tt.kind) {
				t.Fatalf("expected %v, got %v", tt.kind, err)
			}
			if got != nil || rest != "" {
				t.Errorf("expected no result, got %#v and %q", got, rest)
			}

			var serr *syntax.Error
			if !errors.As(err, &serr) {
				t.Fatalf("expected *syntax.Error, got %T", err)
			}
			if serr.Pos.Offset != tt.offset {
				t.Errorf("expected offset %d, got %d", tt.offset, serr.Pos.Offset)
			}
			if serr.Char != tt.char {
				t.Errorf("expected char %q, got %q", tt.char, serr.Char)
			}
			if serr.Text != tt.text {
				t.Errorf("expected text %q, got %q", tt.text, serr.Text)
			}
		})
	}
}

func TestParseErrorLineAndColumn(t *testing.T) {
	input := "{\n  \"a\": [\n    1,\n    ?\n  ]\n}"

	_, _, err := Parse(input)
	var serr *syntax.Error
	if !errors.As(err, &serr) {
		t.Fatalf("expected *syntax.Error, got %v", err)
	}

	expected := syntax.Position{Offset: strings.Index(input, "?"), Line: 4, Column: 5}
	if serr.Pos != expected {
		t.Errorf("expected %+v, got %+v", expected, serr.Pos)
	}
}

func TestParseMaxDepth(t *testing.T) {
	deep := strings.Repeat("[", 10000) + strings.Repeat("]", 10000)

	_, _, err := Parse(deep)
	if !errors.Is(err, syntax.ErrTooDeep) {
		t.Fatalf("expected ErrTooDeep, got %v", err)
	}

	var serr *syntax.Error
	if !errors.As(err, &serr) {
		t.Fatalf("expected *syntax.Error, got %T", err)
	}
	if serr.Pos.Offset != DefaultMaxDepth {
		t.Errorf("expected offset %d, got %d", DefaultMaxDepth, serr.Pos.Offset)
	}
}

func TestParseMaxDepthOption(t *testing.T) {
	tests := []struct {
		input string
		depth int
		ok    bool
	}{
		{"1", 1, true},
		{"[1]", 1, true},
		{"[[1]]", 1, false},
		{`{"a":[1]}`, 2, true},
		{`{"a":[{}]}`, 2, false},
		{`[[[[]]]]`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, _, err := Parse(tt.input, WithMaxDepth(tt.depth))
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, syntax.ErrTooDeep) {
				t.Errorf("expected ErrTooDeep, got %v", err)
			}
		})
	}
}

func TestParseComplete(t *testing.T) {
	got, err := ParseComplete(" [true] \n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, Array{Bool(true)}) {
		t.Errorf("unexpected value %#v", got)
	}

	_, err = ParseComplete("[true] x")
	if !errors.Is(err, syntax.ErrUnexpectedCharacter) {
		t.Fatalf("expected ErrUnexpectedCharacter, got %v", err)
	}
	var serr *syntax.Error
	if errors.As(err, &serr) && serr.Pos.Offset != 7 {
		t.Errorf("expected offset 7, got %d", serr.Pos.Offset)
	}
}

func TestKindString(t *testing.T) {
	values := []Value{Null{}, Bool(true), Number(1), String("s"), Array{}, Object{}}
	expected := []string{"null", "bool", "number", "string", "array", "object"}

	for i, v := range values {
		if got := v.Kind().String(); got != expected[i] {
			t.Errorf("expected %q, got %q", expected[i], got)
		}
	}
}
