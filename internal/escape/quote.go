// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"strings"
	"unicode/utf8"

	"go4.org/mem"
)

var shortEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	'"':  '"',
	'\\': '\\',
}

const hexDigit = "0123456789abcdef"

// Quote renders s as a double-quoted string literal that both JSON and the
// relaxed format accept. Control characters use the short escapes where one
// exists and \u00XX otherwise. Invalid UTF-8 is replaced by \ufffd.
func Quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for src := mem.S(s); src.Len() != 0; {
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(n)
		switch {
		case r == utf8.RuneError && n == 1:
			sb.WriteString(`\ufffd`)
		case r < utf8.RuneSelf && int(r) < len(shortEsc) && shortEsc[r] != 0:
			sb.WriteByte('\\')
			sb.WriteByte(shortEsc[r])
		case r < ' ' || r == 0x7f:
			sb.WriteString(`\u00`)
			sb.WriteByte(hexDigit[r>>4])
			sb.WriteByte(hexDigit[r&15])
		case r == '\u2028', r == '\u2029':
			sb.WriteString(`\u202`)
			sb.WriteByte(hexDigit[r&15])
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
