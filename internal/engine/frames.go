package engine

import (
	"strconv"
	"strings"
)

type frame struct {
	object       bool
	expectingKey bool
	path         string
	nextIndex    int
	key          string
	keys         map[string]struct{}
}

// Frames tracks container nesting over a token stream: whether the next string
// inside an object is a key, the JSON Pointer of the current value and, when
// asked to, the keys already seen in each open object.
type Frames struct {
	stack     []frame
	trackKeys bool
}

// NewFrames returns an empty tracker. trackKeys enables duplicate detection.
func NewFrames(trackKeys bool) *Frames { return &Frames{trackKeys: trackKeys} }

// Depth returns the number of open containers.
func (f *Frames) Depth() int { return len(f.stack) }

// InKeyPosition reports whether the next string token is an object key.
func (f *Frames) InKeyPosition() bool {
	n := len(f.stack)
	return n > 0 && f.stack[n-1].object && f.stack[n-1].expectingKey
}

// Path returns the JSON Pointer of the token about to be applied ("" for the
// document root). Keys report the pointer of their member.
func (f *Frames) Path(kind Kind, key string) string {
	n := len(f.stack)
	if n == 0 {
		if kind == KindKey {
			return joinPointer("", key)
		}
		return ""
	}
	top := &f.stack[n-1]
	switch kind {
	case KindKey:
		return joinPointer(top.path, key)
	case KindEndObject, KindEndArray:
		return top.path
	}
	if !top.object {
		return joinPointer(top.path, strconv.Itoa(top.nextIndex))
	}
	if !top.expectingKey {
		return joinPointer(top.path, top.key)
	}
	return top.path
}

// Apply advances the tracker past tok. For keys it reports whether the key was
// already present in the enclosing object.
func (f *Frames) Apply(tok Token) (duplicate bool) {
	switch tok.Kind {
	case KindBeginObject, KindBeginArray:
		path := f.Path(tok.Kind, "")
		f.bumpIndex()
		fr := frame{object: tok.Kind == KindBeginObject, expectingKey: true, path: path}
		if fr.object && f.trackKeys {
			fr.keys = make(map[string]struct{})
		}
		f.stack = append(f.stack, fr)
	case KindEndObject, KindEndArray:
		if n := len(f.stack); n > 0 {
			f.stack = f.stack[:n-1]
		}
		f.valueDone()
	case KindKey:
		if n := len(f.stack); n > 0 {
			top := &f.stack[n-1]
			if top.keys != nil {
				_, duplicate = top.keys[tok.String]
				top.keys[tok.String] = struct{}{}
			}
			top.key = tok.String
			top.expectingKey = false
		}
	default:
		f.bumpIndex()
		f.valueDone()
	}
	return duplicate
}

func (f *Frames) bumpIndex() {
	if n := len(f.stack); n > 0 && !f.stack[n-1].object {
		f.stack[n-1].nextIndex++
	}
}

func (f *Frames) valueDone() {
	if n := len(f.stack); n > 0 && f.stack[n-1].object {
		f.stack[n-1].expectingKey = true
	}
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func joinPointer(base, token string) string {
	return base + "/" + pointerEscaper.Replace(token)
}
