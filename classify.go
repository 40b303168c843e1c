package sv

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// undefined is the type of the Undefined marker.
type undefined struct{}

// Undefined marks a value that was never set. It is distinct from nil, which
// stands for an explicit JSON null.
var Undefined = undefined{}

// TypeOf classifies v structurally. It never fails; the result is one of
// "boolean", "undefined", "null", "nan", "number", "string", "class <Name>",
// "function", "instance <Name>" or "" for anything else.
//
// Plain objects (map[string]any and *Object) are "instance Object", slices and
// arrays are "instance Array" and typed values are "instance <ClassName>".
func TypeOf(v any) string {
	switch x := v.(type) {
	case bool:
		return "boolean"
	case undefined:
		return "undefined"
	case nil:
		return "null"
	case json.Number:
		f, err := strconv.ParseFloat(string(x), 64)
		if err != nil && !isRangeErr(err) {
			return ""
		}
		if math.IsNaN(f) {
			return "nan"
		}
		return "number"
	case string:
		return "string"
	case Class:
		if x == nil {
			return "null"
		}
		return "class " + x.Name()
	case *Object:
		if x == nil {
			return "null"
		}
		return "instance Object"
	case map[string]any:
		if x == nil {
			return "null"
		}
		return "instance Object"
	case Schematized:
		if isNilPointer(v) {
			return "null"
		}
		return "instance " + x.ClassName()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.Float32, reflect.Float64:
		if math.IsNaN(rv.Float()) {
			return "nan"
		}
		return "number"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Func:
		if rv.IsNil() {
			return "null"
		}
		return "function"
	case reflect.Slice:
		if rv.IsNil() {
			return "null"
		}
		return "instance Array"
	case reflect.Array:
		return "instance Array"
	case reflect.Map:
		if rv.IsNil() {
			return "null"
		}
		if rv.Type().Key().Kind() == reflect.String {
			return "instance Object"
		}
		return "instance " + rv.Type().String()
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "null"
		}
		return TypeOf(rv.Elem().Interface())
	case reflect.Struct:
		return "instance " + rv.Type().Name()
	}
	return ""
}

func isRangeErr(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// IsClass reports whether v is a Class, optionally with the given name.
func IsClass(v any, name ...string) bool {
	return hasDescriptor(TypeOf(v), "class ", name)
}

// IsInstance reports whether v is an object-like instance, optionally of the
// given name ("Object", "Array" or a class name).
func IsInstance(v any, name ...string) bool {
	return hasDescriptor(TypeOf(v), "instance ", name)
}

func hasDescriptor(desc, prefix string, name []string) bool {
	if !strings.HasPrefix(desc, prefix) {
		return false
	}
	if len(name) == 0 {
		return true
	}
	return strings.TrimPrefix(desc, prefix) == name[0]
}

// Field reads the named field from a plain object or a typed instance. It is
// the accessor selectors use to inspect discriminators.
func Field(raw any, name string) (any, bool) {
	switch x := raw.(type) {
	case nil:
		return nil, false
	case map[string]any:
		v, ok := x[name]
		return v, ok
	case *Object:
		if x == nil {
			return nil, false
		}
		return x.Get(name)
	}
	if rv := reflect.Indirect(reflect.ValueOf(raw)); rv.Kind() == reflect.Map {
		kt := rv.Type().Key()
		if kt.Kind() != reflect.String || rv.IsNil() {
			return nil, false
		}
		v := rv.MapIndex(reflect.ValueOf(name).Convert(kt))
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true
	}
	sv, ok := structValue(raw)
	if !ok {
		return nil, false
	}
	fv, ok := structField(sv, name)
	if !ok {
		return nil, false
	}
	return fv.Interface(), true
}

// asString returns the string content of v, accepting named string types.
func asString(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}
