// Package json exposes encoding/json's streaming tokenizer as an engine
// TokenSource.
package json

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	eng "github.com/tinylobby/sv/internal/engine"
)

type jsonSource struct {
	dec        *json.Decoder
	frames     *eng.Frames
	lastOffset int64
}

// NewReader wraps an io.Reader into an engine.TokenSource for JSON.
func NewReader(r io.Reader) eng.TokenSource {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &jsonSource{dec: dec, frames: eng.NewFrames(false), lastOffset: -1}
}

// NewBytes wraps a byte slice into an engine.TokenSource for JSON.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

func (s *jsonSource) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		return eng.Token{}, err
	}
	s.lastOffset = s.dec.InputOffset()
	t, err := s.convert(tok)
	if err != nil {
		return eng.Token{}, err
	}
	s.frames.Apply(t)
	return t, nil
}

func (s *jsonSource) convert(tok json.Token) (eng.Token, error) {
	t := eng.Token{Offset: s.lastOffset}
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			t.Kind = eng.KindBeginObject
		case '}':
			t.Kind = eng.KindEndObject
		case '[':
			t.Kind = eng.KindBeginArray
		case ']':
			t.Kind = eng.KindEndArray
		}
	case string:
		t.Kind = eng.KindString
		if s.frames.InKeyPosition() {
			t.Kind = eng.KindKey
		}
		t.String = v
	case bool:
		t.Kind, t.Bool = eng.KindBool, v
	case json.Number:
		t.Kind, t.Number = eng.KindNumber, string(v)
	case float64:
		t.Kind, t.Number = eng.KindNumber, strconv.FormatFloat(v, 'g', -1, 64)
	case nil:
		t.Kind = eng.KindNull
	default:
		return eng.Token{}, fmt.Errorf("unexpected token %T", tok)
	}
	return t, nil
}

func (s *jsonSource) Location() int64 { return s.lastOffset }
