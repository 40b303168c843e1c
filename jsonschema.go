package sv

import (
	"fmt"

	js "github.com/tinylobby/sv/jsonschema"
)

// JSONSchema exports the schema of cls as a JSON Schema document. Every
// declared field is required and extra keys are allowed, matching what
// Instantiate accepts. Selector functions cannot be enumerated and export as
// the empty schema; Unions export as oneOf with the discriminator pinned.
func JSONSchema(cls Class) (*js.Schema, error) {
	if cls == nil {
		return nil, fmt.Errorf("sv: JSONSchema of nil class")
	}
	out, err := (&schemaExporter{visiting: map[string]bool{}}).class(cls, "")
	if err != nil {
		return nil, err
	}
	out.Draft = js.Draft202012
	return out, nil
}

type schemaExporter struct {
	visiting map[string]bool
}

// class exports one blueprint. A non-empty disc pins that field to the class
// name.
func (e *schemaExporter) class(cls Class, disc string) (*js.Schema, error) {
	proto := cls()
	name := proto.ClassName()
	if e.visiting[name] {
		return &js.Schema{}, nil
	}
	e.visiting[name] = true
	defer delete(e.visiting, name)

	s := proto.Schema()
	out := &js.Schema{
		Title:                name,
		Type:                 "object",
		Properties:           make(map[string]*js.Schema, s.Len()),
		Required:             s.Names(),
		AdditionalProperties: true,
		PropertyOrder:        s.Names(),
	}
	for _, p := range s.Properties {
		if p.Name == disc {
			out.Properties[p.Name] = &js.Schema{Type: "string", Const: name}
			continue
		}
		ps, err := e.property(p)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", name, p.Name, err)
		}
		out.Properties[p.Name] = ps
	}
	if _, ok := out.Properties[disc]; disc != "" && !ok {
		out.Properties[disc] = &js.Schema{Type: "string", Const: name}
		out.Required = append(out.Required, disc)
		out.PropertyOrder = append(out.PropertyOrder, disc)
	}
	return out, nil
}

func (e *schemaExporter) property(p Property) (*js.Schema, error) {
	item, err := e.typed(p.Type)
	if err != nil {
		return nil, err
	}
	if p.Array && p.Type != nil {
		return &js.Schema{Type: "array", Items: item}, nil
	}
	return item, nil
}

func (e *schemaExporter) typed(t Type) (*js.Schema, error) {
	switch tt := t.(type) {
	case nil:
		return &js.Schema{}, nil
	case Primitive:
		return &js.Schema{Type: string(tt)}, nil
	case Class:
		return e.class(tt, "")
	case Selector:
		return &js.Schema{}, nil
	case *Union:
		out := &js.Schema{OneOf: make([]*js.Schema, 0, len(tt.Classes))}
		for _, c := range tt.Classes {
			vs, err := e.class(c, tt.Discriminator)
			if err != nil {
				return nil, err
			}
			out.OneOf = append(out.OneOf, vs)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported type %T", t)
}
