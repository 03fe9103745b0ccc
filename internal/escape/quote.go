// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Mode controls the escaping done by Quote.
type Mode struct {
	// Quote is the quotation mark that encloses the string, either '"' or
	// '\''. Only this mark is escaped. Zero means '"'.
	Quote byte

	// ASCII escapes every non-ASCII rune as \uXXXX, using a surrogate pair
	// for runes outside the Basic Multilingual Plane.
	ASCII bool
}

// Quote encodes a string to escape characters for inclusion in a JSON or
// JSON5 string. It does not add quotation marks.
func Quote(src mem.RO, m Mode) []byte {
	quote := m.Quote
	if quote == 0 {
		quote = '"'
	}
	buf := make([]byte, 0, src.Len())
	putByte := func(bs ...byte) { buf = append(buf, bs...) }
	putU := func(r rune) {
		putByte('\\', 'u', hexDigit[r>>12&15], hexDigit[r>>8&15], hexDigit[r>>4&15], hexDigit[r&15])
	}

	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(n)
		if r < utf8.RuneSelf {
			if r < ' ' {
				if b := controlEsc[r]; b != 0 {
					putByte('\\', b)
				} else {
					putU(r)
				}
			} else if r == '\\' || r == rune(quote) {
				putByte('\\', byte(r))
			} else {
				putByte(byte(r))
			}
			continue
		}

		switch {
		case r == utf8.RuneError, r == '\u2028', r == '\u2029':
			putU(r)
		case m.ASCII && r > 0xffff:
			hi, lo := utf16.EncodeRune(r)
			putU(hi)
			putU(lo)
		case m.ASCII:
			putU(r)
		default:
			buf = utf8.AppendRune(buf, r)
		}
	}
	return buf
}
