// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jfive

import "io"

// A Reader reads tokens from an input stream, with one token of lookahead.
// A lexical or I/O error is sticky: once reported, every later read of the
// Reader reports it again.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	src   *Source
	lex   *lexer
	trace func(Token)
	skip  bool // a non-execute prefix is to be skipped before the first token

	tok     Token // lookahead
	pending bool  // tok holds an unconsumed token
	err     error
}

// NewReader constructs a Reader that consumes input from r as configured
// by cfg.
func NewReader(r io.Reader, cfg Config) *Reader {
	src := cfg.newSource(r)
	return &Reader{
		src:   src,
		lex:   newLexer(src, cfg.JSON5),
		trace: cfg.Trace,
		skip:  cfg.SkipNonExecutePrefix,
	}
}

// JSON5 reports whether r reads the JSON5 dialect.
func (r *Reader) JSON5() bool { return r.lex.json5 }

func (r *Reader) fill() error {
	if r.pending {
		return nil
	} else if r.err != nil {
		return r.err
	}
	if r.skip {
		r.skip = false
		if err := r.src.SkipNonExecutePrefix(); err != nil {
			r.err = err
			return err
		}
	}
	if err := r.lex.next(&r.tok); err != nil {
		r.err = err
		return err
	}
	r.pending = true
	if r.trace != nil {
		r.trace(r.tok)
	}
	return nil
}

// PeekKind reports the kind of the next token without consuming it.
func (r *Reader) PeekKind() (Kind, error) {
	if err := r.fill(); err != nil {
		return Invalid, err
	}
	return r.tok.Kind, nil
}

// Peek returns the next token without consuming it.
func (r *Reader) Peek() (Token, error) {
	if err := r.fill(); err != nil {
		return Token{}, err
	}
	return r.tok, nil
}

// Next consumes and returns the next token. At the end of the input Next
// returns a token of kind End, repeatedly.
func (r *Reader) Next() (Token, error) {
	var tok Token
	err := r.ReadToken(&tok)
	return tok, err
}

// ReadToken consumes the next token and stores it in *tok.
func (r *Reader) ReadToken(tok *Token) error {
	if err := r.fill(); err != nil {
		return err
	}
	*tok = r.tok
	r.pending = false
	return nil
}

// Expect consumes the next token and reports an error if it is not of kind k.
// A mismatched token is not consumed.
func (r *Reader) Expect(k Kind) (Token, error) {
	if err := r.fill(); err != nil {
		return Token{}, err
	} else if r.tok.Kind != k {
		return Token{}, r.Errorf("unexpected %v, expected %v", r.tok.Kind, k)
	}
	r.pending = false
	return r.tok, nil
}

// ReadString consumes a string token and returns its decoded text.
func (r *Reader) ReadString() (string, error) {
	tok, err := r.Expect(Str)
	return tok.Text, err
}

// ReadIdent consumes an identifier token and returns its decoded text.
func (r *Reader) ReadIdent() (string, error) {
	tok, err := r.Expect(Ident)
	return tok.Text, err
}

// ReadNumber consumes a number token and returns its value.
func (r *Reader) ReadNumber() (*Number, error) {
	tok, err := r.Expect(Num)
	return tok.Number, err
}

// ReadBool consumes a boolean token and returns its value.
func (r *Reader) ReadBool() (bool, error) {
	tok, err := r.Expect(Bool)
	return tok.Bool, err
}

// ReadNull consumes a null token.
func (r *Reader) ReadNull() error {
	_, err := r.Expect(Null)
	return err
}

// Errorf returns a *SyntaxError with the given message. The error spans the
// pending lookahead token, if there is one, or else the current position
// of the input.
func (r *Reader) Errorf(msg string, args ...any) error {
	span := Span{Start: r.src.Pos(), End: r.src.Pos()}
	if r.pending {
		span = r.tok.Span
	}
	return syntaxErrorf(span, msg, args...)
}

// Pos returns the position of the input following the last token read.
func (r *Reader) Pos() Pos { return r.src.Pos() }

// Close closes the underlying input, if it is an io.Closer.
func (r *Reader) Close() error { return r.src.Close() }
