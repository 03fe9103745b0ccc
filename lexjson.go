// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jfive

// step advances the strict JSON lexer by one code point. It reports whether
// a complete token was stored in tok.
func (lx *lexer) step(tok *Token) (bool, error) {
	c := lx.c
	switch lx.state {
	case sDefault:
		switch {
		case c == EOF:
			lx.single(tok, End)
			return true, nil
		case isSpace(c):
			// skip
		case punct(c) != Invalid:
			lx.single(tok, punct(c))
			return true, nil
		case c == '"':
			lx.begin(sString)
			lx.remember = c
		case c == '-':
			lx.begin(sSign)
			lx.store(c)
		case c == '0':
			lx.begin(sZero)
			lx.store(c)
		case isDigit1to9(c):
			lx.begin(sInt)
			lx.store(c)
		case isIdentStart(c):
			lx.begin(sKeyword)
			lx.store(c)
		default:
			lx.begin(sDefault)
			return false, lx.illegal()
		}

	case sString:
		return lx.lexString(tok)

	case sEscape:
		if d, ok := simpleEscape(c); ok {
			lx.store(d)
			lx.state = sString
		} else if c == 'u' {
			lx.startHex(sHex1)
		} else if c == EOF {
			return false, lx.fail("unclosed string")
		} else {
			return false, lx.fail("invalid escape %q", `\`+string(c))
		}

	case sHex1, sHex2, sHex3, sHex4:
		return false, lx.lexHex()

	case sSign, sZero, sInt, sPoint, sFrac, sExpMark, sExpSign, sExp:
		return lx.lexNumber(tok)

	case sKeyword:
		if isIdentPart(c) {
			lx.store(c)
			return false, nil
		}
		switch text := string(lx.buf); text {
		case "true", "false":
			lx.emit(tok, Bool, true)
			tok.Bool = text == "true"
		case "null":
			lx.emit(tok, Null, true)
		default:
			return false, syntaxErrorf(lx.span(true), "unknown constant %q", text)
		}
		return true, nil

	default:
		panic("jfive: invalid JSON lexer state")
	}
	return false, nil
}
