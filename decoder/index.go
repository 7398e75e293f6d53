package decoder

import (
	"bytes"
	"encoding/json"
	"reflect"

	"github.com/rendau/apic/apicErrs"
)

// Func decodes a raw response body into T.
type Func[T any] func(raw []byte) (T, error)

// Decode parses raw as JSON into a fresh T. On failure the zero T is
// returned, never a partially filled value.
//
// An empty body is accepted only when T is a pointer, interface, map or slice.
func Decode[T any](raw []byte) (T, error) {
	var res T

	if len(bytes.TrimSpace(raw)) == 0 {
		if nilable(reflect.TypeOf(&res).Elem()) {
			return res, nil
		}
		return res, apicErrs.ErrWithDesc{Err: apicErrs.Decode, Desc: "empty body"}
	}

	if err := json.Unmarshal(raw, &res); err != nil {
		var zero T
		return zero, apicErrs.ErrWithCause{Err: apicErrs.Decode, Cause: err}
	}

	return res, nil
}

// Raw returns the body unchanged.
func Raw(raw []byte) ([]byte, error) {
	return raw, nil
}

func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return true
	}
	return false
}
