// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package cson

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/creachadair/cson/internal/charclass"
)

// A Reader parses a single document or value from an input stream.
// A Reader is consumed by one call to ParseDocument or ParseValue.
type Reader struct {
	buf  *bufio.Reader
	used bool

	// Position of the next unread byte. Line and column are derived from
	// these only when an error is reported.
	offset int // bytes consumed
	lines  int // line breaks consumed
	lineAt int // offset where the current line begins
	crEnd  int // offset just past the last CR consumed, or -1
}

// NewReader constructs a new Reader that consumes input from r.
// The input is buffered, and a source that returns no data and no error
// NoProgressLimit times in a row is treated as ended.
func NewReader(r io.Reader) *Reader {
	return &Reader{buf: bufio.NewReader(&stallGuard{r: r}), crEnd: -1}
}

// ParseDocument parses a complete document from the input. A document is an
// object in braces, an array in brackets, or the members of an object with
// the braces omitted. The input must contain nothing after the document
// except whitespace and comments. In case of error, the concrete type of the
// error is *ReaderError.
func (r *Reader) ParseDocument() (_ Value, err error) {
	if err := r.claim(); err != nil {
		return nil, err
	}
	defer recoverParseError(&err)

	doc := r.document()
	r.skipWS()
	r.eof()
	return doc, nil
}

// ParseValue parses exactly one value from the input. The input must contain
// nothing after the value except whitespace and comments. In case of error,
// the concrete type of the error is *ReaderError.
func (r *Reader) ParseValue() (_ Value, err error) {
	if err := r.claim(); err != nil {
		return nil, err
	}
	defer recoverParseError(&err)

	r.skipWS()
	v := r.value()
	r.skipWS()
	r.eof()
	return v, nil
}

func (r *Reader) claim() error {
	if r.used {
		return &ReaderError{Cause: "reader already used"}
	}
	r.used = true
	return nil
}

// document parses
//
//	document = object / array / ws object-items
func (r *Reader) document() Value {
	r.skipWS()
	b, ok := r.peek()
	if !ok {
		r.failf("expected document")
	}
	switch b {
	case '{':
		return r.object()
	case '[':
		return r.array()
	}
	return r.members()
}

// skipWS consumes spaces, tabs, line breaks, and comments. A comment runs from
// "#" to the end of the line. It reports whether any line break was consumed.
func (r *Reader) skipWS() bool {
	var newline bool
	for {
		var comment bool
		r.scan(func(w []byte) (int, bool) {
			for i, b := range w {
				switch b {
				case ' ', '\t':
				case '\n', '\r':
					newline = true
					r.lineBreak(r.offset+i, b)
				case '#':
					comment = true
					return i + 1, true
				default:
					return i, true
				}
			}
			return 0, false
		})
		if !comment {
			return newline
		}
		r.skipLine()
	}
}

// skipLine consumes input up to but not including the next line break.
func (r *Reader) skipLine() {
	r.scan(func(w []byte) (int, bool) {
		if i := bytes.IndexAny(w, "\n\r"); i >= 0 {
			return i, true
		}
		return 0, false
	})
}

// valueSeparator consumes a separator between members or elements, and
// reports whether one was found. A separator is a comma, or at least one line
// break, with optional whitespace around it.
func (r *Reader) valueSeparator() bool {
	newline := r.skipWS()
	if b, ok := r.peek(); ok && b == ',' {
		r.discard(1)
		r.skipWS()
		return true
	}
	return newline
}

// value parses a value, which must be present.
// Precondition: preceding whitespace has been consumed.
func (r *Reader) value() Value {
	v, ok := r.valueOpt()
	if !ok {
		r.failf("expected value")
	}
	return v
}

// valueOpt parses a value if one is present, and reports false without
// consuming any input otherwise.
//
//	value = false / null / true / object / array / number / string
//	      / verbatim-string
func (r *Reader) valueOpt() (Value, bool) {
	b, ok := r.peek()
	if !ok {
		return nil, false
	}
	switch {
	case b == 'f':
		if !r.fixedToken("false") {
			r.failf("expected false")
		}
		return Bool(false), true
	case b == 'n':
		if !r.fixedToken("null") {
			r.failf("expected null")
		}
		return Null{}, true
	case b == 't':
		if !r.fixedToken("true") {
			r.failf("expected true")
		}
		return Bool(true), true
	case b == '{':
		return r.object(), true
	case b == '[':
		return r.array(), true
	case b == '-' || isDigit(b):
		return r.number(b), true
	case b == '"' || b == '\'':
		return String(r.quoted(b)), true
	case b == '|':
		return String(r.verbatim()), true
	}
	return nil, false
}

// object parses
//
//	object = "{" ws [ object-items ] ws "}"
//
// Precondition: the next byte is "{".
func (r *Reader) object() *Object {
	r.discard(1)
	r.skipWS()
	obj := r.members()
	if b, ok := r.peek(); !ok || b != '}' {
		r.failf("expected `}`")
	}
	r.discard(1)
	return obj
}

// members parses zero or more members
//
//	object-items = member *( value-separator member ) [ value-separator ]
func (r *Reader) members() *Object {
	obj := NewObject()
	key, v, ok := r.member()
	for ok {
		obj.Set(key, v)
		if !r.valueSeparator() {
			break
		}
		key, v, ok = r.member()
	}
	return obj
}

// member parses a member if one is present.
//
//	member = name ws ( ":" / "=" ) ws value
func (r *Reader) member() (Key, Value, bool) {
	key, ok := r.name()
	if !ok {
		return "", nil, false
	}
	r.skipWS()
	if b, ok := r.peek(); !ok || (b != ':' && b != '=') {
		r.failf("expected `:` or `=`")
	}
	r.discard(1)
	r.skipWS()
	return key, r.value(), true
}

// name parses an object key if one is present.
//
//	name = string / bare-string
func (r *Reader) name() (Key, bool) {
	b, ok := r.peek()
	switch {
	case !ok:
		return "", false
	case b == '"' || b == '\'':
		return Key(r.quoted(b)), true
	case charclass.IsIDStartByte(b):
		return Key(r.bareString()), true
	}
	return "", false
}

// array parses
//
//	array = "[" ws [ value *( value-separator value ) [ value-separator ] ] ws "]"
//
// Precondition: the next byte is "[".
func (r *Reader) array() Array {
	r.discard(1)
	r.skipWS()
	elts := Array{}
	v, ok := r.valueOpt()
	for ok {
		elts = append(elts, v)
		if !r.valueSeparator() {
			break
		}
		v, ok = r.valueOpt()
	}
	if b, ok := r.peek(); !ok || b != ']' {
		r.failf("expected `]`")
	}
	r.discard(1)
	return elts
}

// verbatim parses
//
//	verbatim-string   = verbatim-fragment *( newline ws verbatim-fragment )
//	verbatim-fragment = "|" *non-newline-char
//
// The fragments are joined with "\n". No escapes are recognized.
// Precondition: the next byte is "|".
func (r *Reader) verbatim() string {
	var frags []string
	for {
		r.discard(1) // "|"
		var line []byte
		more := r.scan(func(w []byte) (int, bool) {
			if i := bytes.IndexAny(w, "\n\r"); i >= 0 {
				line = append(line, w[:i]...)
				return i, true
			}
			line = append(line, w...)
			return 0, false
		})
		if !isValidUTF8(line) {
			r.failf("invalid UTF-8 sequence in a verbatim string")
		}
		frags = append(frags, string(line))
		if !more {
			break // end of input
		}
		r.consume(1) // the line break
		r.skipWS()
		if b, ok := r.peek(); !ok || b != '|' {
			break
		}
	}
	return strings.Join(frags, "\n")
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }
