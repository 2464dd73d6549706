// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package charclass classifies bytes and runes for the bare-string grammar.
//
// A bare string is one identifier-start rune followed by zero or more
// identifier-continuation runes:
//
//	id-start = %x24 / %x2D / %x41-5A / %x5F / %x61-7A / %xAA / %xB5
//	         / %xBA / %xC0-D6 / %xD8-F6 / %xF8-02FF / %x0370-037D
//	         / %x037F-1FFF / %x200C-200D / %x2070-218F / %x2C00-2FEF
//	         / %x3001-D7FF / %xF900-FDCF / %xFDF0-FFFD / %x10000-EFFFF
//	id-end   = id-start / %x2E / %x30-39 / %xB7 / %x0300-036F / %x203F-2040
//
// The byte tests (IsIDStartByte, IsIDEndByte) accept exactly the bytes that
// can begin the UTF-8 encoding of a rune accepted by the corresponding rune
// test. They let a scanner decide from one buffered byte whether decoding a
// full rune is worthwhile.
package charclass

import "unicode"

var idStart = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0024, Hi: 0x0024, Stride: 1},
		{Lo: 0x002d, Hi: 0x002d, Stride: 1},
		{Lo: 0x0041, Hi: 0x005a, Stride: 1},
		{Lo: 0x005f, Hi: 0x005f, Stride: 1},
		{Lo: 0x0061, Hi: 0x007a, Stride: 1},
		{Lo: 0x00aa, Hi: 0x00aa, Stride: 1},
		{Lo: 0x00b5, Hi: 0x00b5, Stride: 1},
		{Lo: 0x00ba, Hi: 0x00ba, Stride: 1},
		{Lo: 0x00c0, Hi: 0x00d6, Stride: 1},
		{Lo: 0x00d8, Hi: 0x00f6, Stride: 1},
		{Lo: 0x00f8, Hi: 0x02ff, Stride: 1},
		{Lo: 0x0370, Hi: 0x037d, Stride: 1},
		{Lo: 0x037f, Hi: 0x1fff, Stride: 1},
		{Lo: 0x200c, Hi: 0x200d, Stride: 1},
		{Lo: 0x2070, Hi: 0x218f, Stride: 1},
		{Lo: 0x2c00, Hi: 0x2fef, Stride: 1},
		{Lo: 0x3001, Hi: 0xd7ff, Stride: 1},
		{Lo: 0xf900, Hi: 0xfdcf, Stride: 1},
		{Lo: 0xfdf0, Hi: 0xfffd, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x10000, Hi: 0xeffff, Stride: 1},
	},
	LatinOffset: 10,
}

var idEnd = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0024, Hi: 0x0024, Stride: 1},
		{Lo: 0x002d, Hi: 0x002e, Stride: 1},
		{Lo: 0x0030, Hi: 0x0039, Stride: 1},
		{Lo: 0x0041, Hi: 0x005a, Stride: 1},
		{Lo: 0x005f, Hi: 0x005f, Stride: 1},
		{Lo: 0x0061, Hi: 0x007a, Stride: 1},
		{Lo: 0x00aa, Hi: 0x00aa, Stride: 1},
		{Lo: 0x00b5, Hi: 0x00b5, Stride: 1},
		{Lo: 0x00b7, Hi: 0x00b7, Stride: 1},
		{Lo: 0x00ba, Hi: 0x00ba, Stride: 1},
		{Lo: 0x00c0, Hi: 0x00d6, Stride: 1},
		{Lo: 0x00d8, Hi: 0x00f6, Stride: 1},
		{Lo: 0x00f8, Hi: 0x037d, Stride: 1},
		{Lo: 0x037f, Hi: 0x1fff, Stride: 1},
		{Lo: 0x200c, Hi: 0x200d, Stride: 1},
		{Lo: 0x203f, Hi: 0x2040, Stride: 1},
		{Lo: 0x2070, Hi: 0x218f, Stride: 1},
		{Lo: 0x2c00, Hi: 0x2fef, Stride: 1},
		{Lo: 0x3001, Hi: 0xd7ff, Stride: 1},
		{Lo: 0xf900, Hi: 0xfdcf, Stride: 1},
		{Lo: 0xfdf0, Hi: 0xfffd, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x10000, Hi: 0xeffff, Stride: 1},
	},
	LatinOffset: 12,
}

// IsIDStart reports whether r may begin a bare string.
func IsIDStart(r rune) bool { return unicode.Is(idStart, r) }

// IsIDEnd reports whether r may continue a bare string.
func IsIDEnd(r rune) bool { return unicode.Is(idEnd, r) }

// IsIDStartByte reports whether b is the first byte of the UTF-8 encoding of
// some rune accepted by IsIDStart.
func IsIDStartByte(b byte) bool {
	switch {
	case b == 0x24, b == 0x2d, b == 0x5f:
		return true
	case 0x41 <= b && b <= 0x5a, 0x61 <= b && b <= 0x7a:
		return true
	case 0xc2 <= b && b <= 0xcb: // U+00AA .. U+02FF
		return true
	case 0xcd <= b && b <= 0xe1: // U+0370 .. U+1FFF
		return true
	case 0xe2 <= b && b <= 0xed: // U+200C .. U+D7FF
		return true
	case b == 0xef: // U+F900 .. U+FFFD
		return true
	case 0xf0 <= b && b <= 0xf3: // U+10000 .. U+EFFFF
		return true
	}
	return false
}

// IsIDEndByte reports whether b is the first byte of the UTF-8 encoding of
// some rune accepted by IsIDEnd.
func IsIDEndByte(b byte) bool {
	switch {
	case b == 0x24, b == 0x2d, b == 0x2e, b == 0x5f:
		return true
	case 0x30 <= b && b <= 0x39, 0x41 <= b && b <= 0x5a, 0x61 <= b && b <= 0x7a:
		return true
	case 0xc2 <= b && b <= 0xed: // U+00AA .. U+D7FF
		return true
	case b == 0xef: // U+F900 .. U+FFFD
		return true
	case 0xf0 <= b && b <= 0xf3: // U+10000 .. U+EFFFF
		return true
	}
	return false
}

// utf8Width maps the first byte of a UTF-8 sequence to the length of the
// sequence (RFC 3629). Bytes that cannot begin a sequence map to 0.
var utf8Width = [256]uint8{
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0x1F
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0x3F
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0x5F
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0x7F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x9F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0xBF
	0, 0, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, // 0xDF
	3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, // 0xEF
	4, 4, 4, 4, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0xFF
}

// UTF8Width returns the length in bytes of the UTF-8 sequence whose first
// byte is b, or 0 if b cannot begin a well-formed sequence.
func UTF8Width(b byte) int { return int(utf8Width[b]) }
