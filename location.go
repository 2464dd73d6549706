// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package cson

import "fmt"

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// A Location describes a position in the input.
type Location struct {
	Offset int // byte offset from the start of input, 0-based
	LineCol
}

// location reports the position of the next unread byte.
func (r *Reader) location() Location {
	return Location{
		Offset:  r.offset,
		LineCol: LineCol{Line: r.lines + 1, Column: r.offset - r.lineAt},
	}
}

// lineBreak records that the byte b at offset off, a CR or LF, was consumed.
// CR, LF, and CR LF each end one line.
func (r *Reader) lineBreak(off int, b byte) {
	if b == '\r' || off != r.crEnd {
		r.lines++
	}
	if b == '\r' {
		r.crEnd = off + 1
	}
	r.lineAt = off + 1
}
