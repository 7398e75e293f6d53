package httpc

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/rendau/apic/apicTypes"
)

// Object2Params converts the `form`-tagged exported fields of a struct into
// request parameters. Nil pointers are skipped.
func Object2Params(obj any) (apicTypes.Params, error) {
	result := apicTypes.Params{}

	v := reflect.Indirect(reflect.ValueOf(obj))
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("httpc: object must be a struct, got %s", v.Kind())
	}

	fields := reflect.VisibleFields(v.Type())

	var fieldTag string
	var tagName string
	var fValue reflect.Value
	var fType reflect.Type

	for _, field := range fields {
		if field.Anonymous || !field.IsExported() {
			continue
		}

		fieldTag = field.Tag.Get("form")
		if fieldTag == "" || fieldTag == "-" {
			continue
		}

		tagName = strings.SplitN(fieldTag, ",", 2)[0]
		fValue = v.FieldByIndex(field.Index)
		fType = field.Type

		if fType.Kind() == reflect.Pointer {
			if fValue.IsNil() {
				continue
			}

			fValue = fValue.Elem()
			fType = fType.Elem()
		}

		switch fType.Kind() {
		case reflect.String:
			result[tagName] = apicTypes.String(fValue.String())
		case reflect.Bool:
			result[tagName] = apicTypes.Bool(fValue.Bool())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			result[tagName] = apicTypes.Int(fValue.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			u := fValue.Uint()
			if u > math.MaxInt64 {
				return nil, fmt.Errorf("httpc: field %s value %d overflows int64", field.Name, u)
			}
			result[tagName] = apicTypes.Int(int64(u))
		case reflect.Float32, reflect.Float64:
			result[tagName] = apicTypes.Float(fValue.Float())
		default:
			return nil, fmt.Errorf("httpc: field %s has unsupported kind %s", field.Name, fType.Kind())
		}
	}

	return result, nil
}
