// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package cson

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/creachadair/cson/internal/charclass"
	"github.com/creachadair/cson/internal/escape"
	"go4.org/mem"
)

// maxExactInt is the bound on the magnitude of integer literals that are
// represented as Int. Literals at or beyond it become Float.
const maxExactInt = 1 << 53

// number parses
//
//	number = [ "-" ] int [ frac ] [ exp ]
//	int    = "0" / ( digit1-9 *DIGIT )
//	frac   = "." 1*DIGIT
//	exp    = ( "e" / "E" ) [ "-" / "+" ] 1*DIGIT
//
// Precondition: the next byte is first, which is "-" or a digit.
func (r *Reader) number(first byte) Value {
	r.discard(1)

	// A lone zero not followed by a fraction or exponent is complete.
	// Any digits that follow it are not part of this number.
	next, ok := r.peek()
	if first == '0' && !(ok && (next == '.' || next == 'e' || next == 'E')) {
		return Int(0)
	}

	text := []byte{first}
	if first == '-' {
		if !ok || !isDigit(next) {
			r.failf("expected a number, got `-`")
		}
		text = append(text, next)
		r.discard(1)
	}
	if text[len(text)-1] != '0' {
		text = r.digits(text)
	}

	integral := true
	if b, ok := r.peek(); ok && b == '.' {
		text = append(text, b)
		r.discard(1)
		if b, ok := r.peek(); !ok || !isDigit(b) {
			r.failf("a number cannot have a trailing decimal point")
		}
		text = r.digits(text)
		integral = false
	}
	if b, ok := r.peek(); ok && (b == 'e' || b == 'E') {
		text = append(text, b)
		r.discard(1)
		if b, ok := r.peek(); ok && (b == '-' || b == '+') {
			text = append(text, b)
			r.discard(1)
		}
		if b, ok := r.peek(); !ok || !isDigit(b) {
			r.failf("a number has an incomplete exponent part")
		}
		text = r.digits(text)
		integral = false
	}

	if integral {
		z, err := mem.ParseInt(mem.B(text), 10, 64)
		if err == nil && -maxExactInt < z && z < maxExactInt {
			return Int(z)
		}
	}
	f, err := mem.ParseFloat(mem.B(text), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		r.failf("invalid number %q", text)
	}
	return Float(f)
}

// digits appends a run of zero or more decimal digits from the input to buf.
func (r *Reader) digits(buf []byte) []byte {
	r.scan(func(w []byte) (int, bool) {
		for i, b := range w {
			if !isDigit(b) {
				buf = append(buf, w[:i]...)
				return i, true
			}
		}
		buf = append(buf, w...)
		return 0, false
	})
	return buf
}

// quoted parses a string enclosed by quote, a double or single quote mark.
//
//	string  = quote *( unescaped / escaped ) quote
//	escaped = "\" ( "'" / %x22 / "\" / "/" / "b" / "f" / "n" / "r" / "t" / "u" 4HEXDIG )
//
// Precondition: the next byte is quote.
func (r *Reader) quoted(quote byte) string {
	r.discard(1)
	var buf []byte
	for {
		var escaped bool
		found := r.scan(func(w []byte) (int, bool) {
			for i, b := range w {
				if b == '\n' || b == '\r' {
					r.lineBreak(r.offset+i, b)
				} else if b == quote || b == '\\' {
					buf = append(buf, w[:i]...)
					escaped = b == '\\'
					return i + 1, true
				}
			}
			buf = append(buf, w...)
			return 0, false
		})
		if !found {
			r.failf("incomplete string literal")
		} else if !escaped {
			break
		}
		buf = r.escape(buf)
	}
	if !isValidUTF8(buf) {
		r.failf("invalid UTF-8 sequence in a quoted string")
	}
	return string(buf)
}

// escape decodes an escape sequence whose leading backslash has already been
// consumed, and appends its UTF-8 encoding to buf. A high surrogate must be
// followed immediately by an escaped low surrogate, and the pair denotes a
// single rune.
func (r *Reader) escape(buf []byte) []byte {
	u := r.escapeUnit()
	var ch rune
	switch {
	case escape.IsHighSurrogate(u):
		if b, ok := r.peek(); !ok || b != '\\' {
			r.failf("high surrogate `\\u%04x` is not followed by an escaped low surrogate", u)
		}
		r.discard(1)
		lo := r.escapeUnit()
		if !escape.IsLowSurrogate(lo) {
			r.failf("high surrogate `\\u%04x` is not followed by an escaped low surrogate "+
				"(got `\\u%04x` instead)", u, lo)
		}
		ch = escape.Combine(u, lo)
	case escape.IsLowSurrogate(u):
		r.failf("low surrogate `\\u%04x` cannot be used independently", u)
	default:
		ch = rune(u)
	}
	return utf8.AppendRune(buf, ch)
}

// escapeUnit decodes the remainder of an escape sequence after the backslash
// into a UTF-16 code unit. The unit may be half of a surrogate pair.
func (r *Reader) escapeUnit() uint16 {
	c, ok := r.peek()
	if !ok {
		r.failf("incomplete escape sequence")
	}
	r.consume(1)
	if c != 'u' {
		if ch, ok := escape.Simple(c); ok {
			return uint16(ch)
		}
		r.failf("unknown escape sequence `\\%c`", c)
	}

	w := r.fill(4)
	n := min(len(w), 4)
	u, err := escape.ParseHex(mem.B(w[:n]))
	if err != nil {
		r.failf("invalid hexadecimal digits after `\\u`")
	} else if n < 4 {
		r.failf("incomplete escape sequence")
	}
	r.discard(n)
	return u
}

// bareString parses
//
//	bare-string = id-start *id-end
//
// Each rune is decoded in full and checked against the identifier classes.
// Precondition: the next byte satisfies charclass.IsIDStartByte.
func (r *Reader) bareString() string {
	var sb strings.Builder
	ch := r.scalar()
	if !charclass.IsIDStart(ch) {
		r.failf("expected a bare string, got an invalid character")
	}
	sb.WriteRune(ch)
	for {
		b, ok := r.peek()
		if !ok || !charclass.IsIDEndByte(b) {
			break
		}
		ch := r.scalar()
		if !charclass.IsIDEnd(ch) {
			r.failf("expected a bare string, got an invalid character")
		}
		sb.WriteRune(ch)
	}
	return sb.String()
}

// scalar consumes and returns one complete UTF-8 encoded rune.
func (r *Reader) scalar() rune {
	w := r.fill(1)
	if len(w) == 0 {
		r.failf("expected a bare string, got the end of file")
	}
	n := charclass.UTF8Width(w[0])
	if n == 0 {
		r.failf("invalid UTF-8 sequence in a bare string")
	}
	if w = r.fill(n); len(w) < n {
		r.failf("expected a bare string, got the end of file")
	}
	ch, size := mem.DecodeRune(mem.B(w[:n]))
	if size != n || (ch == utf8.RuneError && size <= 1) {
		r.failf("invalid UTF-8 sequence in a bare string")
	}
	r.discard(n)
	return ch
}

func isValidUTF8(b []byte) bool { return mem.ValidUTF8(mem.B(b)) }
