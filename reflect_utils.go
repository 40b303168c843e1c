package sv

import (
	"reflect"
	"strings"
	"sync"
)

// ResolveStructKey applies the repository-wide rule to resolve a struct field's
// schema key.
// Priority: sv:"name=..." > json tag name > field name; "-" disables the field.
func ResolveStructKey(sf reflect.StructField) string {
	if st := sf.Tag.Get("sv"); st != "" {
		if st == "-" {
			return "-"
		}
		for _, p := range strings.Split(st, ",") {
			p = strings.TrimSpace(p)
			if strings.HasPrefix(p, "name=") {
				return strings.TrimPrefix(p, "name=")
			}
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			if jt[:i] != "" {
				return jt[:i]
			}
			return sf.Name
		}
		return jt
	}
	return sf.Name
}

// fieldIndex maps schema keys to (possibly nested) struct field indexes.
type fieldIndex map[string][]int

var fieldIndexCache sync.Map // reflect.Type -> fieldIndex

// structFields returns the key -> index mapping for a struct type. Fields of
// embedded structs are promoted unless a shallower field claims the key.
func structFields(t reflect.Type) fieldIndex {
	if fi, ok := fieldIndexCache.Load(t); ok {
		return fi.(fieldIndex)
	}
	fi := fieldIndex{}
	depth := map[string]int{}
	var walk func(t reflect.Type, prefix []int)
	walk = func(t reflect.Type, prefix []int) {
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			idx := append(append([]int{}, prefix...), i)
			if sf.Anonymous && sf.Tag.Get("json") == "" && sf.Tag.Get("sv") == "" {
				ft := sf.Type
				if ft.Kind() == reflect.Struct {
					walk(ft, idx)
					continue
				}
			}
			if !sf.IsExported() {
				continue
			}
			key := ResolveStructKey(sf)
			if key == "-" {
				continue
			}
			if d, seen := depth[key]; seen && d <= len(idx) {
				continue
			}
			depth[key] = len(idx)
			fi[key] = idx
		}
	}
	walk(t, nil)
	actual, _ := fieldIndexCache.LoadOrStore(t, fi)
	return actual.(fieldIndex)
}

// structValue dereferences v down to an addressable struct value.
func structValue(v any) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	return rv, true
}

// structField locates the field bound to key on a struct value.
func structField(sv reflect.Value, key string) (reflect.Value, bool) {
	idx, ok := structFields(sv.Type())[key]
	if !ok {
		return reflect.Value{}, false
	}
	return sv.FieldByIndex(idx), true
}
