// Package sv validates untrusted data against declared schemas and turns it
// into typed values.
//
// A type takes part by implementing Schematized: it names itself and returns
// an ordered Schema of fields. Fields are primitives (String, Number, Boolean),
// nested classes (ClassOf), polymorphic choices (Selector, Union) or untyped
// passthroughs, each optionally an array.
//
// The same traversal backs every operation:
//
//   - Instantiate / ToClass validate an input and deep-copy it into a fresh
//     instance; IsValid and Validate only report the outcome.
//   - Copy rebuilds a typed value so the copy shares nothing with the source.
//   - ToObject / ToString turn a typed value into a plain ordered object and
//     its canonical JSON text.
//
// The first problem aborts the operation and is reported as Issues carrying a
// JSON Pointer, a stable code and the class, field and types involved.
//
// Inputs may be JSON text. Parsing runs on a token Source; import
// github.com/tinylobby/sv/source for its side effect to switch the default
// driver from encoding/json to goccy/go-json.
//
//	u, err := sv.ToClass(`{"userid":"1","username":"Alice"}`, &wire.User{})
//	s, err := sv.ToString(u) // {"userid":"1","username":"Alice"}
package sv
