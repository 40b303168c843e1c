package sv

import (
	"reflect"
)

// Schematized is implemented by every typed value the engine can instantiate,
// copy and objectify. Implementations are pointers to structs whose fields are
// bound to schema keys (see ResolveStructKey).
type Schematized interface {
	ClassName() string
	Schema() Schema
}

// Type is the declared type of a Property: a Primitive, a Class, a Selector, a
// Union, or nil for an untyped passthrough field.
type Type interface {
	isType()
}

// Primitive is a primitive type tag compared against TypeOf.
type Primitive string

const (
	String  Primitive = "string"
	Number  Primitive = "number"
	Boolean Primitive = "boolean"
)

func (Primitive) isType() {}

// Class is a blueprint reference: it constructs a fresh, empty instance.
type Class func() Schematized

func (Class) isType() {}

// Name returns the class name of the blueprint.
func (c Class) Name() string {
	if c == nil {
		return ""
	}
	return c().ClassName()
}

// Constructor is implemented by types whose empty instance needs more than
// the Go zero value, such as non-nil nested values.
type Constructor interface {
	New() Schematized
}

// ClassOf returns the Class constructing a fresh *T, through T's New method
// when it implements Constructor and as a zero *T otherwise.
func ClassOf[T any, PT interface {
	*T
	Schematized
}]() Class {
	if _, ok := any(PT(new(T))).(Constructor); ok {
		return func() Schematized { return any(PT(new(T))).(Constructor).New() }
	}
	return func() Schematized { return PT(new(T)) }
}

// classOfValue returns a Class building fresh instances of x's dynamic type.
func classOfValue(x Schematized) Class {
	t := reflect.TypeOf(x)
	if t == nil || t.Kind() != reflect.Pointer || t.Elem().Kind() != reflect.Struct {
		return nil
	}
	return func() Schematized { return reflect.New(t.Elem()).Interface().(Schematized) }
}

// chooser is implemented by types resolving the concrete class from raw input.
type chooser interface {
	Type
	choose(raw any) Class
}

// Selector picks the concrete class for a polymorphic field from the raw
// input value. Returning nil means no match, which fails the operation.
type Selector func(raw any) Class

func (Selector) isType() {}

func (s Selector) choose(raw any) Class {
	if s == nil {
		return nil
	}
	return s(raw)
}

// Union is a Selector over a fixed set of classes keyed by a string
// discriminator field holding the class name. Unlike a Selector function its
// variants can be enumerated (see JSONSchema).
type Union struct {
	Discriminator string
	Classes       []Class
}

func (*Union) isType() {}

func (u *Union) choose(raw any) Class {
	v, ok := Field(raw, u.Discriminator)
	if !ok {
		return nil
	}
	tag, ok := asString(v)
	if !ok || tag == "" {
		return nil
	}
	for _, c := range u.Classes {
		if c.Name() == tag {
			return c
		}
	}
	return nil
}

// OneOf builds a Union over classes keyed by the discriminator field.
func OneOf(discriminator string, classes ...Class) *Union {
	return &Union{Discriminator: discriminator, Classes: append([]Class(nil), classes...)}
}

// Property declares one schema field.
type Property struct {
	Name  string
	Type  Type // nil: untyped, copied across as-is
	Array bool
}

// Prop declares a field of the given type.
func Prop(name string, t Type) Property { return Property{Name: name, Type: t} }

// ArrayOf declares a field holding an ordered sequence of t.
func ArrayOf(name string, t Type) Property { return Property{Name: name, Type: t, Array: true} }

// Untyped declares a field that is copied by assignment without validation.
func Untyped(name string) Property { return Property{Name: name} }

// Schema is the ordered field declaration of one blueprint. Declaration order
// is the canonical serialization order. Schemas are values; With and Without
// return modified copies.
type Schema struct {
	Properties []Property
}

// Props builds a Schema from properties in declaration order. A repeated name
// replaces the earlier declaration in place.
func Props(props ...Property) Schema {
	return Schema{}.With(props...)
}

// Len returns the number of declared fields.
func (s Schema) Len() int { return len(s.Properties) }

// Lookup returns the property declared under name.
func (s Schema) Lookup(name string) (Property, bool) {
	for _, p := range s.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

// Names returns the field names in declaration order.
func (s Schema) Names() []string {
	out := make([]string, len(s.Properties))
	for i, p := range s.Properties {
		out[i] = p.Name
	}
	return out
}

// With returns a copy of s with props appended; a property whose name is
// already declared replaces that declaration in its original position.
func (s Schema) With(props ...Property) Schema {
	out := make([]Property, len(s.Properties), len(s.Properties)+len(props))
	copy(out, s.Properties)
next:
	for _, p := range props {
		for i := range out {
			if out[i].Name == p.Name {
				out[i] = p
				continue next
			}
		}
		out = append(out, p)
	}
	return Schema{Properties: out}
}

// Without returns a copy of s lacking the named fields.
func (s Schema) Without(names ...string) Schema {
	drop := make(map[string]struct{}, len(names))
	for _, n := range names {
		drop[n] = struct{}{}
	}
	out := make([]Property, 0, len(s.Properties))
	for _, p := range s.Properties {
		if _, ok := drop[p.Name]; ok {
			continue
		}
		out = append(out, p)
	}
	return Schema{Properties: out}
}

// typeName renders a declared type for issues.
func typeName(t Type, array bool) string {
	var s string
	switch tt := t.(type) {
	case nil:
		s = "undefined"
	case Primitive:
		s = string(tt)
	case Class:
		s = "class " + tt.Name()
	case Selector:
		s = "function"
	case *Union:
		s = "union " + tt.Discriminator
	}
	if array {
		return s + "[]"
	}
	return s
}
