package sv

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// Instantiate validates input against the schema of cls and deep-copies it into
// a new instance. input may be JSON text (string, []byte, json.RawMessage), a
// plain object or an instance of the same class. On failure it returns nil and
// an Issues error; no partially filled instance escapes.
func Instantiate(input any, cls Class) (Schematized, error) {
	return InstantiateWith(input, cls, ParseOpt{})
}

// InstantiateWith is Instantiate with explicit limits for parsing JSON text.
func InstantiateWith(input any, cls Class, opt ParseOpt) (Schematized, error) {
	if cls == nil {
		return nil, singleIssue(CodeClassMismatch, "nil class")
	}
	target := cls()
	if err := (copier{opt: opt}).top(input, target, target.Schema(), target.ClassName(), modeClass); err != nil {
		return nil, err
	}
	return target, nil
}

// ToClass instantiates input as the class of prototype, which is typically a
// fresh value such as new(User). prototype itself is left untouched.
func ToClass[T Schematized](input any, prototype T) (T, error) {
	return ToClassWith(input, prototype, ParseOpt{})
}

// ToClassWith is ToClass with explicit limits for parsing JSON text.
func ToClassWith[T Schematized](input any, prototype T, opt ParseOpt) (T, error) {
	var zero T
	cls := classOfValue(prototype)
	if cls == nil {
		return zero, singleIssue(CodeClassMismatch, "prototype must be a pointer to a struct")
	}
	v, err := InstantiateWith(input, cls, opt)
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// Validate reports why input cannot be instantiated as the class of prototype.
// It runs the same traversal as ToClass and discards the result.
func Validate(input any, prototype Schematized) error {
	_, err := ToClass(input, prototype)
	return err
}

// IsValid reports whether input can be instantiated as the class of prototype.
func IsValid(input any, prototype Schematized) bool {
	return Validate(input, prototype) == nil
}

// Copy returns a deep copy of x: nested typed values and arrays are rebuilt,
// never shared with x.
func Copy[T Schematized](x T) (T, error) {
	var zero T
	cls := classOfValue(x)
	if cls == nil {
		return zero, singleIssue(CodeClassMismatch, "copy source must be a non-nil pointer to a struct")
	}
	if isNilPointer(x) {
		return zero, singleIssue(CodeClassMismatch, "copy source is nil")
	}
	target := cls()
	if err := (copier{}).copyInto(x, target, x.Schema(), x.ClassName(), modeClass, Root()); err != nil {
		return zero, err
	}
	return target.(T), nil
}

// ToObject converts x into a plain ordered object following x's schema.
// Nested typed values become nested *Object values.
func ToObject(x Schematized) (*Object, error) {
	if x == nil || isNilPointer(x) {
		return nil, singleIssue(CodeClassMismatch, "cannot objectify nil")
	}
	s := x.Schema()
	obj := NewObject(s.Len())
	if err := (copier{}).copyInto(x, obj, s, x.ClassName(), modeObject, Root()); err != nil {
		return nil, err
	}
	return obj, nil
}

// ToString returns the canonical JSON encoding of x: compact, fields in schema
// declaration order, identical for deep-equal values.
func ToString(x Schematized) (string, error) {
	obj, err := ToObject(x)
	if err != nil {
		return "", err
	}
	b, err := obj.MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ToStringIndent is ToString with indentation, for logs and debugging.
func ToStringIndent(x Schematized, prefix, indent string) (string, error) {
	s, err := ToString(x)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(s), prefix, indent); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Decode parses JSON text inputs (string, []byte, json.RawMessage) into plain
// values. Anything else is returned unchanged.
func Decode(input any, opts ...ParseOpt) (any, error) {
	return copier{opt: lastOpt(opts)}.decodeText(input, Root())
}
