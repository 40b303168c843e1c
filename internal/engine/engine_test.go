package engine

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"testing"
)

type sliceSource struct {
	toks []Token
	i    int
}

func (s *sliceSource) NextToken() (Token, error) {
	if s.i >= len(s.toks) {
		return Token{}, io.EOF
	}
	t := s.toks[s.i]
	s.i++
	return t, nil
}

func (s *sliceSource) Location() int64 { return int64(s.i) }

func obj(toks ...Token) []Token {
	return append(append([]Token{{Kind: KindBeginObject}}, toks...), Token{Kind: KindEndObject})
}

func arr(toks ...Token) []Token {
	return append(append([]Token{{Kind: KindBeginArray}}, toks...), Token{Kind: KindEndArray})
}

func key(k string) Token { return Token{Kind: KindKey, String: k} }
func num(n string) Token { return Token{Kind: KindNumber, Number: n} }

func cat(parts ...[]Token) []Token {
	var out []Token
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestDecodeAny(t *testing.T) {
	// {"a":[1,{"b":null}],"c":true}
	toks := obj(cat(
		[]Token{key("a")},
		arr(cat([]Token{num("1")}, obj(key("b"), Token{Kind: KindNull}))...),
		[]Token{key("c"), {Kind: KindBool, Bool: true}},
	)...)
	v, err := DecodeAny(&sliceSource{toks: toks}, nil)
	if err != nil {
		t.Fatalf("DecodeAny: %v", err)
	}
	want := map[string]any{"a": []any{json.Number("1"), map[string]any{"b": nil}}, "c": true}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("got %#v", v)
	}

	v, err = DecodeAny(&sliceSource{toks: arr(num("2.5"))}, AsFloat64)
	if err != nil || !reflect.DeepEqual(v, []any{2.5}) {
		t.Fatalf("float mode: %#v %v", v, err)
	}
}

func TestDecodeAny_EmptyArrayIsNotNil(t *testing.T) {
	v, err := DecodeAny(&sliceSource{toks: arr()}, nil)
	if err != nil {
		t.Fatalf("DecodeAny: %v", err)
	}
	if a, ok := v.([]any); !ok || a == nil {
		t.Fatalf("expected empty non-nil slice, got %#v", v)
	}
}

func TestDecodeAny_Truncated(t *testing.T) {
	_, err := DecodeAny(&sliceSource{toks: []Token{{Kind: KindBeginObject}, key("a")}}, nil)
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF, got %v", err)
	}
	_, err = DecodeAny(&sliceSource{toks: []Token{{Kind: KindBeginObject}, num("1")}}, nil)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected ErrUnexpectedEOF for a non-key in key position, got %v", err)
	}
}

func TestFrames_Paths(t *testing.T) {
	// {"a/b":[0,{"~":1}]}
	toks := obj(cat(
		[]Token{key("a/b")},
		arr(cat([]Token{num("0")}, obj(key("~"), num("1")))...),
	)...)
	want := []string{"", "/a~1b", "/a~1b", "/a~1b/0", "/a~1b/1", "/a~1b/1/~0", "/a~1b/1/~0", "/a~1b/1", "/a~1b", ""}
	f := NewFrames(false)
	for i, tok := range toks {
		if got := f.Path(tok.Kind, tok.String); got != want[i] {
			t.Fatalf("token %d: path %q, want %q", i, got, want[i])
		}
		f.Apply(tok)
	}
	if f.Depth() != 0 {
		t.Fatalf("depth %d after balanced stream", f.Depth())
	}
}

func TestFrames_KeyPosition(t *testing.T) {
	f := NewFrames(true)
	f.Apply(Token{Kind: KindBeginObject})
	if !f.InKeyPosition() {
		t.Fatalf("expected key position after {")
	}
	f.Apply(key("a"))
	if f.InKeyPosition() {
		t.Fatalf("value position after key")
	}
	f.Apply(Token{Kind: KindString, String: "v"})
	if !f.InKeyPosition() {
		t.Fatalf("key position after value")
	}
	if !f.Apply(key("a")) {
		t.Fatalf("second a must be reported as duplicate")
	}
}

func TestEnforcement(t *testing.T) {
	dup := obj(key("a"), num("1"), key("a"), num("2"))

	var sunk []SimpleIssue
	src := WrapWithEnforcement(&sliceSource{toks: dup}, EnforceOptions{
		OnDuplicate: DupWarn,
		IssueSink:   func(si SimpleIssue) { sunk = append(sunk, si) },
	})
	if _, err := DecodeAny(src, nil); err != nil {
		t.Fatalf("warn must not fail: %v", err)
	}
	if len(sunk) != 1 || sunk[0].Code != "duplicate_key" || sunk[0].Path != "/a" {
		t.Fatalf("unexpected warnings %v", sunk)
	}

	src = WrapWithEnforcement(&sliceSource{toks: dup}, EnforceOptions{OnDuplicate: DupError})
	_, err := DecodeAny(src, nil)
	var ie IssueError
	if !errors.As(err, &ie) || ie.Code != "duplicate_key" {
		t.Fatalf("expected duplicate_key error, got %v", err)
	}

	src = WrapWithEnforcement(&sliceSource{toks: arr(arr()...)}, EnforceOptions{MaxDepth: 1})
	_, err = DecodeAny(src, nil)
	if !errors.As(err, &ie) || ie.Code != "parse_error" || ie.Path != "/0" {
		t.Fatalf("expected depth error at /0, got %v", err)
	}

	src = WrapWithEnforcement(&sliceSource{toks: arr(num("1"), num("2"), num("3"))}, EnforceOptions{MaxBytes: 2})
	_, err = DecodeAny(src, nil)
	if !errors.As(err, &ie) || ie.Code != "truncated" {
		t.Fatalf("expected truncated, got %v", err)
	}
}
