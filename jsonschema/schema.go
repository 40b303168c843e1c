// Package jsonschema holds the JSON Schema document model produced by
// sv.JSONSchema.
package jsonschema

// Schema is a minimal JSON Schema representation used for export.
type Schema struct {
	// Core
	Draft   string `json:"$schema,omitempty"`
	Title   string `json:"title,omitempty"`
	Type    string `json:"type,omitempty"`
	Const   any    `json:"const,omitempty"`
	Default any    `json:"default,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`
	// PropertyOrder lists Properties in declaration order; JSON maps lose it.
	PropertyOrder []string `json:"propertyOrder,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty"`

	// Union
	OneOf []*Schema `json:"oneOf,omitempty"`
}

// Draft202012 is the dialect URI stamped on exported root schemas.
const Draft202012 = "https://json-schema.org/draft/2020-12/schema"
