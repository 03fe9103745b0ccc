// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON and JSON5 strings.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// Unquote decodes a byte slice containing the JSON encoding of a string. The
// input must have the enclosing quotation marks already removed. If json5 is
// true, the JSON5 escapes are also decoded: \' \v \0 \xHH, and a backslash
// before a line ending, which is removed with it.
//
// Escape sequences are replaced with their unescaped equivalents. Invalid
// escapes are replaced by the Unicode replacement rune, and so are unpaired
// surrogates. Unquote reports an error for an incomplete escape sequence or
// a malformed hex escape.
func Unquote(src mem.RO, json5 bool) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		dec = mem.Append(dec, src)
		return dec, nil
	}

	putByte := func(bs ...byte) { dec = append(dec, bs...) }
	putRune := func(r rune) { dec = utf8.AppendRune(dec, r) }
	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))

		// Decode the next rune after the escape to figure out what to
		// substitute. There should not be errors here, but if there are, insert
		// replacement runes (utf8.RuneError == '\ufffd').
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}
		r, n := mem.DecodeRune(src)
		if n == 0 {
			n++
		}

		src = src.SliceFrom(n)
		switch r {
		case '"', '\\', '/':
			putByte(byte(r))
		case 'b':
			putByte('\b')
		case 'f':
			putByte('\f')
		case 'n':
			putByte('\n')
		case 'r':
			putByte('\r')
		case 't':
			putByte('\t')
		case 'u':
			v, err := parseHex(src, 4)
			if err != nil {
				return nil, err
			}
			src = src.SliceFrom(4)
			if utf16.IsSurrogate(v) && v < 0xdc00 && hasLowSurrogate(src) {
				lo, _ := parseHex(src.SliceFrom(2), 4)
				v = utf16.DecodeRune(v, lo)
				src = src.SliceFrom(6)
			}
			putRune(v) // an unpaired surrogate encodes as RuneError
		default:
			if !json5 {
				putRune(utf8.RuneError)
				break
			}
			switch r {
			case 'v':
				putByte('\v')
			case '0':
				putByte(0)
			case 'x':
				v, err := parseHex(src, 2)
				if err != nil {
					return nil, err
				}
				putRune(v)
				src = src.SliceFrom(2)
			case '\r':
				if src.Len() != 0 && src.At(0) == '\n' {
					src = src.SliceFrom(1)
				}
			case '\n', '\u2028', '\u2029':
				// line continuation
			case '1', '2', '3', '4', '5', '6', '7', '8', '9':
				putRune(utf8.RuneError)
			default:
				putRune(r)
			}
		}

		// Look for the next escape sequence, and if one is not found we can blit
		// the rest of the input and go home.
		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec, nil
}

// hasLowSurrogate reports whether src begins with a \u escape for a low
// surrogate.
func hasLowSurrogate(src mem.RO) bool {
	if src.Len() < 6 || src.At(0) != '\\' || src.At(1) != 'u' {
		return false
	}
	v, err := parseHex(src.SliceFrom(2), 4)
	return err == nil && v >= 0xdc00 && v < 0xe000
}

func parseHex(data mem.RO, n int) (rune, error) {
	if data.Len() < n {
		return 0, errors.New("incomplete hex escape")
	}
	var v rune
	for i := range n {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += rune(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += rune(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += rune(b - 'A' + 10)
		} else {
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}
