package apicTypes

import (
	"encoding/json"
	"strconv"
)

type Kind uint8

const (
	KindString Kind = iota + 1
	KindInt
	KindFloat
	KindBool
)

// Value is a request parameter value: string, number or bool.
// The zero Value is invalid, construct with String, Int, Float or Bool.
type Value struct {
	kind Kind
	s    string
	i    int64
	f    float64
	b    bool
}

func String(v string) Value {
	return Value{kind: KindString, s: v}
}

func Int(v int64) Value {
	return Value{kind: KindInt, i: v}
}

func Float(v float64) Value {
	return Value{kind: KindFloat, f: v}
}

func Bool(v bool) Value {
	return Value{kind: KindBool, b: v}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsValid() bool {
	return v.kind != 0
}

// QueryString returns the query-string form of the value.
// Floats use the shortest representation that round-trips.
func (v Value) QueryString() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	}
	return ""
}

func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindBool:
		return v.b
	}
	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch x := raw.(type) {
	case string:
		*v = String(x)
	case bool:
		*v = Bool(x)
	case float64:
		if x == float64(int64(x)) {
			*v = Int(int64(x))
		} else {
			*v = Float(x)
		}
	default:
		return &json.UnsupportedValueError{Str: string(data)}
	}

	return nil
}

func (v Value) String() string {
	return v.QueryString()
}

// Params

type Params map[string]Value

func (p Params) Set(key string, v Value) Params {
	p[key] = v
	return p
}
