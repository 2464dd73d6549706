// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package cson

import (
	"bufio"
	"io"

	"go4.org/mem"
)

// NoProgressLimit is the number of consecutive reads from the input that may
// return no data and no error before the reader treats the input as ended.
const NoProgressLimit = 1000

// stallGuard reads from r, absorbing empty reads. After NoProgressLimit
// consecutive empty reads it reports io.EOF, and keeps doing so without
// consulting r again.
type stallGuard struct {
	r     io.Reader
	empty int
}

func (g *stallGuard) Read(p []byte) (int, error) {
	for g.empty < NoProgressLimit {
		n, err := g.r.Read(p)
		if n > 0 || err != nil || len(p) == 0 {
			g.empty = 0
			return n, err
		}
		g.empty++
	}
	return 0, io.EOF
}

// fill attempts to buffer at least n bytes of unread input, and returns a view
// of all the unread input currently buffered. The result is shorter than n
// only if the input ended. The view is valid until the next read or discard.
func (r *Reader) fill(n int) []byte {
	if _, err := r.buf.Peek(n); err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		r.failIO(err)
	}
	return r.window()
}

// window returns a view of the unread input currently buffered, without
// reading from the underlying source.
func (r *Reader) window() []byte {
	w, _ := r.buf.Peek(r.buf.Buffered())
	return w
}

// discard consumes n bytes that the caller has already seen in a window, and
// which the caller has checked for line breaks.
func (r *Reader) discard(n int) {
	if _, err := r.buf.Discard(n); err != nil {
		r.failIO(err)
	}
	r.offset += n
}

// consume is like discard, but records any line breaks among the n bytes.
func (r *Reader) consume(n int) {
	for i, b := range r.window()[:n] {
		if b == '\n' || b == '\r' {
			r.lineBreak(r.offset+i, b)
		}
	}
	r.discard(n)
}

// peek returns the next unread byte without consuming it. It reports false
// if no further input is available.
func (r *Reader) peek() (byte, bool) {
	if w := r.fill(1); len(w) != 0 {
		return w[0], true
	}
	return 0, false
}

// fixedToken consumes len(token) bytes of input, or whatever remains if that
// is less, and reports whether they equal token.
func (r *Reader) fixedToken(token string) bool {
	w := r.fill(len(token))
	n := min(len(w), len(token))
	ok := mem.B(w[:n]).EqualString(token)
	r.consume(n)
	return ok
}

// scan calls f with successive windows of unread input. If f reports true,
// the first n bytes of that window are consumed and scan returns true.
// Otherwise the whole window is consumed and scanning continues. When the
// input is exhausted, scan returns false.
//
// The window passed to f is only valid for the duration of the call.
func (r *Reader) scan(f func(w []byte) (n int, stop bool)) bool {
	for {
		w := r.fill(1)
		if len(w) == 0 {
			return false
		}
		if n, stop := f(w); stop {
			r.discard(n)
			return true
		}
		r.discard(len(w))
	}
}

// eof checks that no input remains.
func (r *Reader) eof() {
	if len(r.fill(1)) != 0 {
		r.failf("expected end of file")
	}
}
