// Package gojson provides a JSON driver backed by goccy/go-json.
package gojson

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	"github.com/tinylobby/sv"
	eng "github.com/tinylobby/sv/internal/engine"
)

// Driver returns an sv.JSONDriver backed by goccy/go-json.
func Driver() sv.JSONDriver { return driverGoJSON{} }

type driverGoJSON struct{}

func (driverGoJSON) NewReader(r io.Reader) sv.Source {
	return sv.SourceFromEngine(NewReader(r), sv.NumberJSONNumber)
}
func (driverGoJSON) NewBytes(b []byte) sv.Source {
	return sv.SourceFromEngine(NewBytes(b), sv.NumberJSONNumber)
}
func (driverGoJSON) Name() string { return "go-json" }

type source struct {
	dec    *j.Decoder
	frames *eng.Frames
}

// NewReader wraps an io.Reader into an engine.TokenSource using go-json.
func NewReader(r io.Reader) eng.TokenSource {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &source{dec: dec, frames: eng.NewFrames(false)}
}

// NewBytes wraps a byte slice into an engine.TokenSource using go-json.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

func (s *source) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		return eng.Token{}, err
	}
	t := eng.Token{Offset: s.dec.InputOffset()}
	switch v := tok.(type) {
	case j.Delim:
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
	case j.Number:
		t.Kind, t.Number = eng.KindNumber, string(v)
	case float64:
		t.Kind, t.Number = eng.KindNumber, strconv.FormatFloat(v, 'g', -1, 64)
	case nil:
		t.Kind = eng.KindNull
	default:
		return eng.Token{}, fmt.Errorf("go-json: unexpected token %T", tok)
	}
	s.frames.Apply(t)
	return t, nil
}

func (s *source) Location() int64 { return s.dec.InputOffset() }
