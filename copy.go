package sv

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// nestingMode decides what nested typed values become during a copy.
type nestingMode int

const (
	modeClass  nestingMode = iota // new instances of their blueprint
	modeObject                    // plain *Object records
	modeAssign                    // the input value itself, no recursion
)

// copier runs the combined validate-and-copy traversal. The first problem
// aborts the whole operation.
type copier struct {
	opt ParseOpt
}

// top copies a root input into target. String and byte inputs are parsed as
// JSON first.
func (c copier) top(input any, target any, s Schema, class string, mode nestingMode) error {
	in, err := c.decodeText(input, Root())
	if err != nil {
		return err
	}
	if got := TypeOf(in); got != "instance Object" && got != "instance "+class {
		return fail(Root(), CodeClassMismatch, class, "", "instance "+class, got)
	}
	return c.copyInto(in, target, s, class, mode, Root())
}

// copyInto copies every field declared by s from input into target. In class
// mode target is a struct pointer, in object mode an *Object.
func (c copier) copyInto(input any, target any, s Schema, class string, mode nestingMode, p PathRef) error {
	var dst reflect.Value
	var obj *Object
	switch mode {
	case modeClass:
		v, ok := structValue(target)
		if !ok || !v.CanSet() {
			return fail(p, CodeClassMismatch, class, "", "struct pointer", TypeOf(target))
		}
		dst = v
	case modeObject:
		o, ok := target.(*Object)
		if !ok || o == nil {
			return fail(p, CodeClassMismatch, class, "", "instance Object", TypeOf(target))
		}
		obj = o
	default:
		return fmt.Errorf("sv: unsupported nesting mode %d", mode)
	}

	for _, prop := range s.Properties {
		fp := p.Field(prop.Name)
		raw, ok := Field(input, prop.Name)
		if !ok || raw == Undefined {
			return fail(fp, CodeMissingField, class, prop.Name, typeName(prop.Type, prop.Array), "undefined")
		}
		val, err := c.copyProperty(raw, prop, class, mode, fp)
		if err != nil {
			return err
		}
		if obj != nil {
			obj.Set(prop.Name, val)
			continue
		}
		fv, ok := structField(dst, prop.Name)
		if !ok {
			return fail(fp, CodeTypeMismatch, class, prop.Name, typeName(prop.Type, prop.Array), "no field on "+dst.Type().String())
		}
		if err := setValue(fv, val); err != nil {
			got := TypeOf(val)
			if errors.Is(err, errOutOfRange) {
				got = "number out of range"
			}
			return fail(fp, CodeTypeMismatch, class, prop.Name, fv.Type().String(), got)
		}
	}
	return nil
}

func (c copier) copyProperty(raw any, prop Property, class string, mode nestingMode, p PathRef) (any, error) {
	if prop.Type == nil {
		mode = modeAssign
	}
	if mode == modeAssign {
		return raw, nil
	}
	if !prop.Array {
		return c.copyTyped(raw, prop.Type, class, prop.Name, mode, p)
	}
	got := TypeOf(raw)
	rv := reflect.Indirect(reflect.ValueOf(raw))
	if got == "null" && rv.Kind() == reflect.Slice {
		// a nil Go slice is an empty array; JSON null is a nil interface and stays rejected
		got = "instance Array"
	}
	if got != "instance Array" {
		return nil, fail(p, CodeArrayExpected, class, prop.Name, typeName(prop.Type, true), got)
	}
	if _, ok := prop.Type.(Primitive); ok {
		return nil, fail(p, CodeUnsupportedArray, class, prop.Name, typeName(prop.Type, true), got)
	}
	out := make([]any, rv.Len())
	for i := range out {
		v, err := c.copyTyped(rv.Index(i).Interface(), prop.Type, class, prop.Name, mode, p.Index(i))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (c copier) copyTyped(raw any, t Type, class, field string, mode nestingMode, p PathRef) (any, error) {
	switch tt := t.(type) {
	case Primitive:
		if got := TypeOf(raw); got != string(tt) {
			return nil, fail(p, CodeTypeMismatch, class, field, string(tt), got)
		}
		if mode == modeObject {
			return plainPrimitive(raw), nil
		}
		return raw, nil
	case Class:
		return c.copyClass(raw, tt, class, field, mode, p)
	case chooser:
		in, err := c.decodeText(raw, p)
		if err != nil {
			return nil, err
		}
		cls := tt.choose(in)
		if cls == nil {
			return nil, fail(p, CodeSelectorNoMatch, class, field, typeName(t, false), TypeOf(in))
		}
		return c.copyClass(in, cls, class, field, mode, p)
	}
	return nil, fail(p, CodeTypeMismatch, class, field, typeName(t, false), TypeOf(raw))
}

// copyClass builds the nested value for a class-typed field: a new instance in
// class mode, a plain *Object in object mode. Inputs that already are
// instances of the class are traversed again, so they are re-validated.
func (c copier) copyClass(raw any, cls Class, class, field string, mode nestingMode, p PathRef) (any, error) {
	if cls == nil {
		return nil, fail(p, CodeSelectorNoMatch, class, field, "class", TypeOf(raw))
	}
	in, err := c.decodeText(raw, p)
	if err != nil {
		return nil, err
	}
	proto := cls()
	name := proto.ClassName()
	got := TypeOf(in)
	if got != "instance Object" && got != "instance "+name {
		return nil, fail(p, CodeClassMismatch, class, field, "instance "+name, got)
	}
	s := proto.Schema()
	if mode == modeObject {
		obj := NewObject(s.Len())
		if err := c.copyInto(in, obj, s, name, modeObject, p); err != nil {
			return nil, err
		}
		return obj, nil
	}
	if err := c.copyInto(in, proto, s, name, modeClass, p); err != nil {
		return nil, err
	}
	return proto, nil
}

// decodeText parses JSON text inputs; other values pass through.
func (c copier) decodeText(v any, p PathRef) (any, error) {
	var data []byte
	switch x := v.(type) {
	case string:
		data = []byte(x)
	case []byte:
		data = x
	case json.RawMessage:
		data = x
	default:
		return v, nil
	}
	out, err := ParseJSON(data, c.opt)
	if err != nil {
		return nil, rebase(p, err)
	}
	return out, nil
}

// plainPrimitive strips named types so objectified output holds basic values.
func plainPrimitive(v any) any {
	switch v.(type) {
	case string, bool, json.Number, float64, int64, uint64:
		return v
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint()
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	}
	return v
}

// errOutOfRange is returned by setValue for numbers the field kind cannot hold.
var errOutOfRange = errors.New("number out of range")

// setValue stores val into dst, converting between the plain representation
// and the Go field type.
func setValue(dst reflect.Value, val any) error {
	dt := dst.Type()
	if val == nil || val == Undefined {
		dst.Set(reflect.Zero(dt))
		return nil
	}
	src := reflect.ValueOf(val)
	if src.Type().AssignableTo(dt) {
		dst.Set(src)
		return nil
	}
	switch dt.Kind() {
	case reflect.Pointer:
		if src.Kind() == reflect.Pointer {
			break
		}
		ptr := reflect.New(dt.Elem())
		if err := setValue(ptr.Elem(), val); err != nil {
			return err
		}
		dst.Set(ptr)
		return nil
	case reflect.Struct:
		if src.Kind() == reflect.Pointer && !src.IsNil() && src.Elem().Type().AssignableTo(dt) {
			dst.Set(src.Elem())
			return nil
		}
	case reflect.Slice:
		if src.Kind() == reflect.Slice || src.Kind() == reflect.Array {
			out := reflect.MakeSlice(dt, src.Len(), src.Len())
			for i := 0; i < src.Len(); i++ {
				if err := setValue(out.Index(i), src.Index(i).Interface()); err != nil {
					return fmt.Errorf("index %d: %w", i, err)
				}
			}
			dst.Set(out)
			return nil
		}
	case reflect.String:
		if s, ok := asString(val); ok {
			dst.SetString(s)
			return nil
		}
	case reflect.Bool:
		if src.Kind() == reflect.Bool {
			dst.SetBool(src.Bool())
			return nil
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if n, ok := toInt64(val); ok && !dst.OverflowInt(n) {
			dst.SetInt(n)
			return nil
		}
		if wholeOrHuge(val) {
			return fmt.Errorf("%w: %v in %s", errOutOfRange, val, dt)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if n, ok := toInt64(val); ok && n >= 0 && !dst.OverflowUint(uint64(n)) {
			dst.SetUint(uint64(n))
			return nil
		}
		if src.Kind() >= reflect.Uint && src.Kind() <= reflect.Uintptr && !dst.OverflowUint(src.Uint()) {
			dst.SetUint(src.Uint())
			return nil
		}
		if wholeOrHuge(val) {
			return fmt.Errorf("%w: %v in %s", errOutOfRange, val, dt)
		}
	case reflect.Float32, reflect.Float64:
		if f, ok := toFloat64(val); ok && !dst.OverflowFloat(f) {
			dst.SetFloat(f)
			return nil
		}
		if TypeOf(val) == "number" {
			return fmt.Errorf("%w: %v in %s", errOutOfRange, val, dt)
		}
	case reflect.Map:
		if src.Kind() == reflect.Map && src.Type().ConvertibleTo(dt) {
			dst.Set(src.Convert(dt))
			return nil
		}
	}
	return fmt.Errorf("cannot store %s in %s", src.Type(), dt)
}

func toFloat64(v any) (float64, bool) {
	if n, ok := v.(json.Number); ok {
		f, err := strconv.ParseFloat(string(n), 64)
		return f, err == nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	}
	return 0, false
}

// wholeOrHuge reports whether v is a number that failed an integer store only
// because of its magnitude or sign.
func wholeOrHuge(v any) bool {
	if f, ok := toFloat64(v); ok {
		return !math.IsNaN(f) && f == math.Trunc(f)
	}
	return TypeOf(v) == "number"
}

// toInt64 accepts integral numbers only; 2.0 converts, 2.5 does not.
func toInt64(v any) (int64, bool) {
	if n, ok := v.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return i, true
		}
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	}
	f, ok := toFloat64(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}
