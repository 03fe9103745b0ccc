// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jfive

import (
	"io"
	"unicode/utf16"
)

// lexState is the state of a lexer. Each dialect interprets the states it
// uses in its own step function; states not used by a dialect are never
// entered by it.
type lexState uint8

const (
	sDefault lexState = iota // between tokens

	// Strings.
	sString  // inside a quoted string
	sEscape  // after a backslash in a string
	sEscZero // after \0 (JSON5)
	sHex1    // \u escape, four hex digits wanted
	sHex2    // three hex digits wanted
	sHex3    // two hex digits wanted; \x escapes begin here
	sHex4    // one hex digit wanted

	// Numbers.
	sSign        // after a leading sign
	sZero        // after a leading 0
	sInt         // integer digits
	sPoint       // after "." following integer digits
	sLeadPoint   // after "." with no integer digits (JSON5)
	sFrac        // fraction digits
	sExpMark     // after "e" or "E"
	sExpSign     // after the sign of an exponent
	sExp         // exponent digits
	sRadix       // after 0x, 0o or 0b (JSON5)
	sRadixDigits // digits of a radix literal (JSON5)

	// Words.
	sKeyword     // true, false or null (strict)
	sIdent       // identifier or keyword (JSON5)
	sIdentEscape // after a backslash in an identifier (JSON5)
	sBareExp     // "e" or "E" followed by digits (JSON5)
	sSignedWord  // a sign followed by Infinity or NaN (JSON5)

	// Comments (JSON5).
	sSlash        // after "/"
	sLineComment  // inside // ...
	sBlockComment // inside /* ... */
	sBlockStar    // after "*" inside a block comment
)

// Values of lexer.remember during a \u escape in an identifier. Inside a
// string, remember holds the opening quotation mark.
const (
	escIdentStart rune = 1
	escIdentPart  rune = 2
)

// A lexer turns code points from a Source into tokens. It holds a single
// active state, a flag to deliver the current code point again instead of
// reading another, and a scratch buffer for the text of the current token.
type lexer struct {
	src      *Source
	json5    bool
	state    lexState
	retain   bool
	c        rune // the current code point, or EOF
	remember rune
	radix    Radix
	buf      []rune
	start    Pos // start of the current token
}

func newLexer(src *Source, json5 bool) *lexer {
	return &lexer{src: src, json5: json5, buf: make([]rune, 0, 64)}
}

// next reads the next complete token into tok. Errors from the underlying
// input are returned unchanged; lexical errors are *SyntaxError values.
func (lx *lexer) next(tok *Token) error {
	for {
		if lx.retain {
			lx.retain = false
		} else {
			c, err := lx.src.Read()
			if err != nil && err != io.EOF {
				return err
			}
			lx.c = c
		}

		var done bool
		var err error
		if lx.json5 {
			done, err = lx.step5(tok)
		} else {
			done, err = lx.step(tok)
		}
		if err != nil {
			return err
		} else if done {
			return nil
		}
	}
}

// begin marks the current code point as the start of a new token and enters
// state s with an empty buffer.
func (lx *lexer) begin(s lexState) {
	lx.start = lx.src.Last()
	lx.buf = lx.buf[:0]
	lx.radix = Decimal
	lx.state = s
}

func (lx *lexer) store(c rune) { lx.buf = append(lx.buf, c) }

// span returns the span of the current token. If keep is true the current
// code point is a delimiter that does not belong to the token.
func (lx *lexer) span(keep bool) Span {
	if keep {
		return Span{Start: lx.start, End: lx.src.Last()}
	}
	return Span{Start: lx.start, End: lx.src.Pos()}
}

// emit completes a token of the given kind and returns to the default state.
// If keep is true, the current code point is delivered again to that state.
func (lx *lexer) emit(tok *Token, kind Kind, keep bool) {
	*tok = Token{Kind: kind, Span: lx.span(keep)}
	switch kind {
	case Str, Ident:
		tok.Text = string(lx.buf)
	case Num:
		tok.Number = newNumber(string(lx.buf), lx.radix)
	}
	lx.retain = keep
	lx.state = sDefault
}

// single emits a one-character token for the current code point.
func (lx *lexer) single(tok *Token, kind Kind) {
	lx.begin(sDefault)
	lx.emit(tok, kind, false)
}

func (lx *lexer) fail(msg string, args ...any) error {
	return syntaxErrorf(lx.span(false), msg, args...)
}

// illegal reports the current code point, which cannot begin a token.
func (lx *lexer) illegal() error {
	span := Span{Start: lx.src.Last(), End: lx.src.Pos()}
	if lx.c == EOF {
		return syntaxErrorf(span, "unexpected end of input")
	}
	return syntaxErrorf(span, "illegal character %q", lx.c)
}

// punct returns the kind of a structural character, or Invalid.
func punct(c rune) Kind {
	switch c {
	case '{':
		return LBrace
	case '}':
		return RBrace
	case '[':
		return LSquare
	case ']':
		return RSquare
	case ':':
		return Colon
	case ',':
		return Comma
	}
	return Invalid
}

// lexString handles a code point inside a quoted string.
func (lx *lexer) lexString(tok *Token) (bool, error) {
	switch c := lx.c; {
	case c == EOF, isNewline(c): // U+2028 and U+2029 may appear raw
		return false, lx.fail("unclosed string")
	case c == '\\':
		lx.state = sEscape
	case c == lx.remember:
		lx.emit(tok, Str, false)
		return true, nil
	case !lx.json5 && isControl(c):
		return false, lx.fail("invalid control character %U in string", c)
	default:
		lx.store(c)
	}
	return false, nil
}

// simpleEscape decodes the single-character escapes of strict JSON.
func simpleEscape(c rune) (rune, bool) {
	switch c {
	case '"', '\\', '/':
		return c, true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	}
	return 0, false
}

// startHex begins a hex escape in state s, accumulating into a new buffer
// element.
func (lx *lexer) startHex(s lexState) {
	lx.store(0)
	lx.state = s
}

// lexHex accumulates one hex digit of a \u or \x escape into the last
// element of the buffer.
func (lx *lexer) lexHex() error {
	v := hexVal(lx.c)
	if v < 0 {
		if n := int(sHex4-lx.state) + 1; n > 1 {
			return lx.fail("expected %d more hex digits", n)
		}
		return lx.fail("expected 1 more hex digit")
	}
	last := len(lx.buf) - 1
	lx.buf[last] = lx.buf[last]<<4 | rune(v)
	if lx.state < sHex4 {
		lx.state++
		return nil
	}
	return lx.endHex()
}

// endHex finishes an escaped code point. In an identifier the code point
// must be valid at its position. In a string, a low surrogate that follows
// a high surrogate is joined with it.
func (lx *lexer) endHex() error {
	n := len(lx.buf)
	v := lx.buf[n-1]
	switch lx.remember {
	case escIdentStart, escIdentPart:
		if !isIdentStart(v) && (lx.remember == escIdentStart || !isIdentPart(v)) {
			return lx.fail("invalid identifier escape %U", v)
		}
		lx.state = sIdent
		return nil
	}
	if n > 1 && isLowSurrogate(v) && isHighSurrogate(lx.buf[n-2]) {
		lx.buf[n-2] = utf16.DecodeRune(lx.buf[n-2], v)
		lx.buf = lx.buf[:n-1]
	}
	lx.state = sString
	return nil
}

// lexNumber handles the number states shared by both dialects. It reports
// whether a token was emitted.
func (lx *lexer) lexNumber(tok *Token) (bool, error) {
	c := lx.c
	switch lx.state {
	case sSign:
		switch {
		case c == '0':
			lx.store(c)
			lx.state = sZero
		case isDigit(c):
			lx.store(c)
			lx.state = sInt
		case lx.json5 && c == '.':
			lx.store(c)
			lx.state = sLeadPoint
		case lx.json5 && isIdentStart(c):
			lx.store(c)
			lx.state = sSignedWord
		case lx.json5:
			return false, lx.fail("illegal number")
		default:
			return false, lx.fail("expected digit")
		}

	case sZero:
		switch {
		case isDigit(c):
			return false, lx.fail("invalid leading zero in number")
		case lx.json5 && isRadixMark(c):
			lx.store(c)
			lx.radix = radixOf(c)
			lx.state = sRadix
		default:
			lx.state = sInt
			return lx.lexNumber(tok)
		}

	case sInt:
		switch {
		case isDigit(c):
			lx.store(c)
		case c == '.':
			lx.store(c)
			lx.state = sPoint
		case isExpMarker(c):
			lx.store(c)
			lx.state = sExpMark
		default:
			lx.emit(tok, Num, true)
			return true, nil
		}

	case sPoint, sLeadPoint:
		switch {
		case isDigit(c):
			lx.store(c)
			lx.state = sFrac
		case lx.json5 && lx.state == sPoint && isExpMarker(c):
			lx.store(c)
			lx.state = sExpMark
		case lx.json5 && lx.state == sPoint:
			lx.emit(tok, Num, true)
			return true, nil
		default:
			return false, lx.fail("expected decimal digit")
		}

	case sFrac:
		switch {
		case isDigit(c):
			lx.store(c)
		case isExpMarker(c):
			lx.store(c)
			lx.state = sExpMark
		default:
			lx.emit(tok, Num, true)
			return true, nil
		}

	case sExpMark, sExpSign:
		switch {
		case isDigit(c):
			lx.store(c)
			lx.state = sExp
		case lx.state == sExpMark && isSign(c):
			lx.store(c)
			lx.state = sExpSign
		default:
			return false, lx.fail("expected exponent digit")
		}

	case sExp:
		if isDigit(c) {
			lx.store(c)
		} else {
			lx.emit(tok, Num, true)
			return true, nil
		}

	default:
		panic("jfive: lexNumber in non-number state")
	}
	return false, nil
}
