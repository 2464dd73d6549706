// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package escape decodes backslash escape sequences in quoted strings.
package escape

import (
	"fmt"
	"unicode/utf16"

	"go4.org/mem"
)

var simple = [...]rune{
	'\'': '\'',
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

// Simple reports the rune denoted by the single-character escape "\c", and
// whether c is such an escape. The Unicode escape "\u" is not simple.
func Simple(c byte) (rune, bool) {
	if int(c) < len(simple) && simple[c] != 0 {
		return simple[c], true
	}
	return 0, false
}

// ParseHex decodes up to four hexadecimal digits from data as a UTF-16 code
// unit. It reports an error if data contains a byte that is not a hex digit.
// The caller is responsible for checking that exactly four digits were given.
func ParseHex(data mem.RO) (uint16, error) {
	if data.Len() > 4 {
		return 0, fmt.Errorf("too many hex digits (%d)", data.Len())
	}
	var v uint16
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += uint16(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += uint16(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += uint16(b - 'A' + 10)
		} else {
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}

// IsHighSurrogate reports whether u is a leading (high) UTF-16 surrogate.
func IsHighSurrogate(u uint16) bool { return 0xd800 <= u && u <= 0xdbff }

// IsLowSurrogate reports whether u is a trailing (low) UTF-16 surrogate.
func IsLowSurrogate(u uint16) bool { return 0xdc00 <= u && u <= 0xdfff }

// Combine returns the rune encoded by the surrogate pair hi, lo.
// It returns the Unicode replacement rune if hi, lo is not a valid pair.
func Combine(hi, lo uint16) rune { return utf16.DecodeRune(rune(hi), rune(lo)) }
