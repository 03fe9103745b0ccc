// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jfive

import (
	"errors"
	"strings"

	"github.com/creachadair/jfive/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string {
	return `"` + string(escape.Quote(mem.S(src), escape.Mode{})) + `"`
}

// QuoteASCII is like Quote, but escapes every non-ASCII character so that
// the result is plain ASCII.
func QuoteASCII(src string) string {
	return `"` + string(escape.Quote(mem.S(src), escape.Mode{ASCII: true})) + `"`
}

// Unquote decodes a JSON string value.  Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents.
//
// Invalid escapes are replaced by the Unicode replacement rune. Unquote
// reports an error for an incomplete escape sequence.
func Unquote(src string) ([]byte, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return nil, errors.New("missing quotations")
	}
	return escape.Unquote(mem.S(src[1:len(src)-1]), false)
}

// Unquote5 decodes a JSON5 string value, which may be enclosed in either
// double or single quotation marks.
func Unquote5(src string) ([]byte, error) {
	if len(src) < 2 || !isQuote5(rune(src[0])) || src[len(src)-1] != src[0] {
		return nil, errors.New("missing quotations")
	}
	return escape.Unquote(mem.S(src[1:len(src)-1]), true)
}
