// Package value parses JSON-like structured values.
package value

// Kind identifies the variant of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is implemented by Null, Bool, Number, String, Array and Object.
// The set is closed; switch on the concrete type to inspect a Value.
type Value interface {
	Kind() Kind
	value()
}

type Null struct{}

func (Null) Kind() Kind { return KindNull }
func (Null) value()     {}

type Bool bool

func (Bool) Kind() Kind { return KindBool }
func (Bool) value()     {}

type Number float64

func (Number) Kind() Kind { return KindNumber }
func (Number) value()     {}

type String string

func (String) Kind() Kind { return KindString }
func (String) value()     {}

// Array is an ordered list of values.
type Array []Value

func (Array) Kind() Kind { return KindArray }
func (Array) value()     {}

// Object is an ordered list of members. Keys may repeat.
type Object []Member

func (Object) Kind() Kind { return KindObject }
func (Object) value()     {}

// Member is a key/value pair of an Object.
type Member struct {
	Key   string
	Value Value
}

// Get returns the value of the first member named key.
func (o Object) Get(key string) (Value, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Keys returns the member keys in order, including duplicates.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Key
	}
	return keys
}
