// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jfive

import (
	"fmt"
	"strings"
)

// Kind is the type of a lexical token in the JSON and JSON5 grammars.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // invalid token
	LBrace              // left brace "{"
	RBrace              // right brace "}"
	LSquare             // left square bracket "["
	RSquare             // right square bracket "]"
	Colon               // colon ":"
	Comma               // comma ","
	Str                 // quoted string
	Num                 // number, including NaN and Infinity in JSON5
	Bool                // constant: true or false
	Null                // constant: null
	Ident               // bare identifier (JSON5 only)
	End                 // end of input

	numKinds
)

var kindStr = [...]string{
	Invalid: "invalid token",
	LBrace:  "'{'",
	RBrace:  "'}'",
	LSquare: "'['",
	RSquare: "']'",
	Colon:   "':'",
	Comma:   "','",
	Str:     "string",
	Num:     "number",
	Bool:    "boolean",
	Null:    "null",
	Ident:   "identifier",
	End:     "EOF",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// IsValue reports whether a token of kind k begins a value.
func (k Kind) IsValue() bool {
	switch k {
	case LBrace, LSquare, Str, Num, Bool, Null:
		return true
	}
	return false
}

// kindLabels joins the labels of ks with commas, for error messages.
func kindLabels(ks []Kind) string {
	ss := make([]string, len(ks))
	for i, k := range ks {
		ss[i] = k.String()
	}
	return strings.Join(ss, ", ")
}

// A Token is a classified lexeme with its decoded value and source span.
// Token values are plain data; a copy remains valid after further reads.
type Token struct {
	Kind Kind
	Span Span

	Text   string  // decoded content of a Str or Ident
	Number *Number // value of a Num
	Bool   bool    // value of a Bool
}

// String renders a human-readable summary of t.
func (t Token) String() string {
	switch t.Kind {
	case Str, Ident:
		return fmt.Sprintf("%v %q at %v", t.Kind, t.Text, t.Span)
	case Num:
		return fmt.Sprintf("%v %s at %v", t.Kind, t.Number.Text(), t.Span)
	case Bool:
		return fmt.Sprintf("%v %v at %v", t.Kind, t.Bool, t.Span)
	}
	return fmt.Sprintf("%v at %v", t.Kind, t.Span)
}
