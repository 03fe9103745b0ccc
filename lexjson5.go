// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jfive

// step5 advances the JSON5 lexer by one code point. It reports whether a
// complete token was stored in tok.
func (lx *lexer) step5(tok *Token) (bool, error) {
	c := lx.c
	switch lx.state {
	case sDefault:
		switch {
		case c == EOF:
			lx.single(tok, End)
			return true, nil
		case isSpace5(c):
			// skip
		case punct(c) != Invalid:
			lx.single(tok, punct(c))
			return true, nil
		case isQuote5(c):
			lx.begin(sString)
			lx.remember = c
		case c == '/':
			lx.begin(sSlash)
		case isSign(c):
			lx.begin(sSign)
			lx.store(c)
		case c == '0':
			lx.begin(sZero)
			lx.store(c)
		case isDigit1to9(c):
			lx.begin(sInt)
			lx.store(c)
		case c == '.':
			lx.begin(sLeadPoint)
			lx.store(c)
		case isExpMarker(c):
			lx.begin(sBareExp)
			lx.store(c)
		case c == '\\':
			lx.begin(sIdentEscape)
			lx.remember = escIdentStart
		case isIdentStart(c):
			lx.begin(sIdent)
			lx.store(c)
		default:
			lx.begin(sDefault)
			return false, lx.illegal()
		}

	case sString:
		return lx.lexString(tok)

	case sEscape:
		switch d, ok := simpleEscape(c); {
		case c == EOF:
			return false, lx.fail("unclosed string")
		case isNewline5(c):
			// line continuation
		case ok:
			lx.store(d)
		case c == 'u':
			lx.startHex(sHex1)
			return false, nil
		case c == 'x':
			lx.startHex(sHex3)
			return false, nil
		case c == 'v':
			lx.store('\v')
		case c == '0':
			lx.store(0)
			lx.state = sEscZero
			return false, nil
		case isDigit1to9(c):
			return false, lx.fail("invalid escape %q", `\`+string(c))
		default:
			lx.store(c)
		}
		lx.state = sString

	case sEscZero:
		if isDigit(c) {
			return false, lx.fail("invalid escape %q", `\0`+string(c))
		}
		lx.retain = true
		lx.state = sString

	case sHex1, sHex2, sHex3, sHex4:
		return false, lx.lexHex()

	case sSign, sZero, sInt, sPoint, sLeadPoint, sFrac, sExpMark, sExpSign, sExp:
		return lx.lexNumber(tok)

	case sRadix, sRadixDigits:
		if isRadixDigit(lx.radix, c) {
			lx.store(c)
			lx.state = sRadixDigits
		} else if lx.state == sRadix {
			return false, lx.fail("expected %s digit", lx.radix)
		} else {
			lx.emit(tok, Num, true)
			return true, nil
		}

	case sIdent:
		switch {
		case isIdentPart(c):
			lx.store(c)
		case c == '\\':
			lx.remember = escIdentPart
			lx.state = sIdentEscape
		default:
			lx.emitWord(tok)
			return true, nil
		}

	case sIdentEscape:
		if c != 'u' {
			return false, lx.fail("invalid identifier escape")
		}
		lx.startHex(sHex1)

	case sBareExp:
		switch {
		case isDigit(c):
			lx.store(c)
		case isIdentPart(c):
			lx.store(c)
			lx.state = sIdent
		case c == '\\':
			lx.remember = escIdentPart
			lx.state = sIdentEscape
		case len(lx.buf) > 1:
			lx.emit(tok, Num, true) // e.g., "e5" is 0
			return true, nil
		default:
			lx.emit(tok, Ident, true)
			return true, nil
		}

	case sSignedWord:
		if isIdentPart(c) {
			lx.store(c)
			return false, nil
		}
		switch string(lx.buf[1:]) {
		case "Infinity", "NaN":
			lx.radix = Special
			lx.emit(tok, Num, true)
			return true, nil
		}
		return false, syntaxErrorf(lx.span(true), "illegal number")

	case sSlash:
		switch c {
		case '/':
			lx.state = sLineComment
		case '*':
			lx.state = sBlockComment
		default:
			return false, lx.fail("illegal '/'")
		}

	case sLineComment:
		if c == EOF {
			lx.retain = true
			lx.state = sDefault
		} else if isNewline5(c) {
			lx.state = sDefault
		}

	case sBlockComment, sBlockStar:
		switch {
		case c == EOF:
			return false, lx.fail("unfinished block comment")
		case c == '*':
			lx.state = sBlockStar
		case c == '/' && lx.state == sBlockStar:
			lx.state = sDefault
		default:
			lx.state = sBlockComment
		}

	default:
		panic("jfive: invalid JSON5 lexer state")
	}
	return false, nil
}

// emitWord emits the buffered identifier, classifying keywords.
func (lx *lexer) emitWord(tok *Token) {
	switch text := string(lx.buf); text {
	case "true", "false":
		lx.emit(tok, Bool, true)
		tok.Bool = text == "true"
	case "null":
		lx.emit(tok, Null, true)
	case "NaN", "Infinity":
		lx.radix = Special
		lx.emit(tok, Num, true)
	default:
		lx.emit(tok, Ident, true)
	}
}

// isRadixDigit reports whether c is a digit of an integer literal in radix r.
func isRadixDigit(r Radix, c rune) bool {
	switch r {
	case Hex:
		return isHexDigit(c)
	case Octal:
		return isOctDigit(c)
	case Binary:
		return isBinDigit(c)
	}
	return isDigit(c)
}
