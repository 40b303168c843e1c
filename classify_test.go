package sv_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/tinylobby/sv"
)

func TestTypeOf(t *testing.T) {
	var nilUser *fooBar
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"string", "foobar", "string"},
		{"null", nil, "null"},
		{"int", 3, "number"},
		{"float", 3.5, "number"},
		{"json number", json.Number("12"), "number"},
		{"nan", math.NaN(), "nan"},
		{"json nan", json.Number("NaN"), "nan"},
		{"class", sv.ClassOf[fooBar](), "class FooBar"},
		{"array", []any{}, "instance Array"},
		{"typed slice", []int{1}, "instance Array"},
		{"object", map[string]any{}, "instance Object"},
		{"ordered object", sv.NewObject(0), "instance Object"},
		{"instance", &fooBar{}, "instance FooBar"},
		{"nil instance", nilUser, "null"},
		{"undefined", sv.Undefined, "undefined"},
		{"true", true, "boolean"},
		{"false", false, "boolean"},
		{"function", func() {}, "function"},
		{"nil slice", []any(nil), "null"},
		{"inf", math.Inf(1), "number"},
		{"negative inf", math.Inf(-1), "number"},
		{"string map", map[string]string{}, "instance Object"},
		{"named map", namedMap{}, "instance Object"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sv.TypeOf(tc.in); got != tc.want {
				t.Fatalf("TypeOf(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestIsClass(t *testing.T) {
	cls := sv.ClassOf[fooBar]()
	if sv.IsClass("foobar") {
		t.Fatalf("string is not a class")
	}
	if !sv.IsClass(cls) || !sv.IsClass(cls, "FooBar") {
		t.Fatalf("expected FooBar class")
	}
	if sv.IsClass(cls, "FooBarBaz") {
		t.Fatalf("name must match")
	}
	if sv.IsClass(&fooBar{}) {
		t.Fatalf("instance is not a class")
	}
}

func TestIsInstance(t *testing.T) {
	if sv.IsInstance("foobar") {
		t.Fatalf("string is not an instance")
	}
	if sv.IsInstance(sv.ClassOf[fooBar]()) {
		t.Fatalf("class is not an instance")
	}
	if !sv.IsInstance(&fooBar{}) || !sv.IsInstance(&fooBar{}, "FooBar") {
		t.Fatalf("expected FooBar instance")
	}
	if sv.IsInstance(&fooBar{}, "FooBarBaz") {
		t.Fatalf("name must match")
	}
	if !sv.IsInstance(map[string]any{}, "Object") || !sv.IsInstance([]any{}, "Array") {
		t.Fatalf("plain containers are instances")
	}
}

func TestField(t *testing.T) {
	if v, ok := sv.Field(map[string]any{"foo": "bar"}, "foo"); !ok || v != "bar" {
		t.Fatalf("map field: %v %v", v, ok)
	}
	if v, ok := sv.Field(&fooBar{Foo: "baz"}, "foo"); !ok || v != "baz" {
		t.Fatalf("struct field: %v %v", v, ok)
	}
	if _, ok := sv.Field(&fooBar{}, "nope"); ok {
		t.Fatalf("unknown key must not resolve")
	}
	if _, ok := sv.Field("text", "foo"); ok {
		t.Fatalf("strings have no fields")
	}
	if v, ok := sv.Field(map[string]string{"foo": "bar"}, "foo"); !ok || v != "bar" {
		t.Fatalf("string map field: %v %v", v, ok)
	}
	if v, ok := sv.Field(namedMap{"foo": 1}, "foo"); !ok || v != 1 {
		t.Fatalf("named map field: %v %v", v, ok)
	}
	if _, ok := sv.Field(map[string]string{}, "foo"); ok {
		t.Fatalf("absent key must not resolve")
	}
	if _, ok := sv.Field(map[int]any{1: "x"}, "1"); ok {
		t.Fatalf("non-string keys are not fields")
	}
}

type namedMap map[string]any

func TestInstantiate_StringKeyedMaps(t *testing.T) {
	in := map[string]string{"foo": "bar"}
	v, err := sv.ToClass(in, &fooBar{})
	if err != nil {
		t.Fatalf("map[string]string: %v", err)
	}
	if v.Foo != "bar" {
		t.Fatalf("got %q", v.Foo)
	}
	if err := sv.Validate(namedMap{"foo": "baz"}, &fooBar{}); err != nil {
		t.Fatalf("named map: %v", err)
	}
	if err := sv.Validate(namedMap{"foo": 1}, &fooBar{}); sv.IssueCode(err) != sv.CodeTypeMismatch {
		t.Fatalf("expected type_mismatch, got %v", err)
	}
}
