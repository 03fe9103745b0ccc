// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jfive

import "unicode"

const (
	zwnj = '\u200c' // zero-width non-joiner
	zwj  = '\u200d' // zero-width joiner
	bom  = '\ufeff' // byte-order mark, a space in JSON5
)

func isDigit(c rune) bool      { return '0' <= c && c <= '9' }
func isDigit1to9(c rune) bool  { return '1' <= c && c <= '9' }
func isOctDigit(c rune) bool   { return '0' <= c && c <= '7' }
func isBinDigit(c rune) bool   { return c == '0' || c == '1' }
func isExpMarker(c rune) bool  { return c == 'e' || c == 'E' }
func isSign(c rune) bool       { return c == '-' || c == '+' }
func isHexDigit(c rune) bool   { return hexVal(c) >= 0 }
func isNewline(c rune) bool    { return c == '\n' || c == '\r' }
func isNewline5(c rune) bool   { return isNewline(c) || c == '\u2028' || c == '\u2029' }
func isSpace(c rune) bool      { return c == ' ' || c == '\t' || isNewline(c) }
func isControl(c rune) bool    { return 0 <= c && c < ' ' }
func isQuote5(c rune) bool     { return c == '"' || c == '\'' }
func isRadixMark(c rune) bool  { return radixOf(c) != Decimal }
func isStructural(c rune) bool { return c == '{' || c == '}' || c == '[' || c == ']' || c == ':' || c == ',' }

// isSpace5 reports whether c is white space in the JSON5 grammar.
func isSpace5(c rune) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f', '\u00a0', '\u2028', '\u2029', bom:
		return true
	}
	return c > 0x7f && unicode.Is(unicode.Zs, c)
}

// hexVal returns the value of hexadecimal digit c, or -1.
func hexVal(c rune) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c - 'a' + 10)
	case 'A' <= c && c <= 'F':
		return int(c - 'A' + 10)
	}
	return -1
}

// radixOf returns the radix selected by the letter following a leading 0 in
// a JSON5 number, or Decimal if c is not a radix letter.
func radixOf(c rune) Radix {
	switch c {
	case 'x', 'X':
		return Hex
	case 'o', 'O':
		return Octal
	case 'b', 'B':
		return Binary
	}
	return Decimal
}

// isIdentStart reports whether c may begin an identifier: a Unicode letter or
// letter number, "$" or "_".
func isIdentStart(c rune) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', c == '$', c == '_':
		return true
	case c < 0x80:
		return false
	}
	return unicode.IsLetter(c) || unicode.Is(unicode.Nl, c)
}

// isIdentPart reports whether c may continue an identifier.
func isIdentPart(c rune) bool {
	switch {
	case isIdentStart(c), isDigit(c), c == zwnj, c == zwj:
		return true
	case c < 0x80:
		return false
	}
	return unicode.In(c, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc)
}

// IsIdent reports whether s is a valid JSON5 identifier, which may be written
// as an object key without quotation marks. Keywords are not identifiers.
func IsIdent(s string) bool {
	if s == "" {
		return false
	}
	switch s {
	case "true", "false", "null", "NaN", "Infinity":
		return false
	}
	for i, c := range s {
		if i == 0 && !isIdentStart(c) || i > 0 && !isIdentPart(c) {
			return false
		}
	}
	return true
}
