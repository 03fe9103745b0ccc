// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jfive_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/creachadair/jfive"
	"github.com/google/go-cmp/cmp"
)

// readTokens reads all the tokens of input up to, but not including, the end
// of input.
func readTokens(input string, cfg jfive.Config) ([]jfive.Token, error) {
	r := jfive.NewReader(strings.NewReader(input), cfg)
	var toks []jfive.Token
	for {
		tok, err := r.Next()
		if err != nil {
			return toks, err
		} else if tok.Kind == jfive.End {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

func tokenKinds(toks []jfive.Token) []jfive.Kind {
	var out []jfive.Kind
	for _, tok := range toks {
		out = append(out, tok.Kind)
	}
	return out
}

const (
	lb = jfive.LBrace
	rb = jfive.RBrace
	ls = jfive.LSquare
	rs = jfive.RSquare
	co = jfive.Colon
	cm = jfive.Comma
	st = jfive.Str
	nm = jfive.Num
	bo = jfive.Bool
	nl = jfive.Null
	id = jfive.Ident
)

func TestLexer(t *testing.T) {
	tests := []struct {
		input string
		want  []jfive.Kind
	}{
		// Empty inputs
		{"", nil},
		{"  ", nil},
		{"\n\n  \n", nil},
		{"\t  \r\n \t  \r\n", nil},

		// Constants
		{"true false null", []jfive.Kind{bo, bo, nl}},

		// Punctuation
		{"{ [ ] } , :", []jfive.Kind{lb, ls, rs, rb, cm, co}},

		// Strings
		{`"" "a b c" "a\nb\tc"`, []jfive.Kind{st, st, st}},
		{`"\"\\\/\b\f\n\r\t"`, []jfive.Kind{st}},
		{`"\u0000\u01fc\uAA9c"`, []jfive.Kind{st}},

		// Numbers
		{`0 -1 5139 2.3 5e+9 3.6E+4 -0.001E-100`, []jfive.Kind{nm, nm, nm, nm, nm, nm, nm}},

		// Mixed types
		{`{true,"false":-15 null[]}`, []jfive.Kind{lb, bo, cm, st, co, nm, nl, ls, rs, rb}},
		{`{"a": true, "b":[null, 1, 0.5]}`, []jfive.Kind{
			lb,
			st, co, bo, cm,
			st, co,
			ls,
			nl, cm, nm, cm, nm,
			rs,
			rb,
		}},
		{`"a",1,true
       false["b"]
       `, []jfive.Kind{st, cm, nm, cm, bo, bo, ls, st, rs}},
	}

	for _, test := range tests {
		for _, cfg := range []jfive.Config{jfive.Strict, jfive.Permissive} {
			got, err := readTokens(test.input, cfg)
			if err != nil {
				t.Errorf("Next failed: %v", err)
			}
			if diff := cmp.Diff(test.want, tokenKinds(got)); diff != "" {
				t.Errorf("Input: %#q (JSON5=%v)\nTokens: (-want, +got)\n%s", test.input, cfg.JSON5, diff)
			}
		}
	}
}

func TestLexer_JSON5(t *testing.T) {
	tests := []struct {
		input string
		want  []jfive.Kind
	}{
		{"/* block comment */\n\n\n", nil},
		{"// line 1\n\n// line 2\n", nil},
		{"// line at EOF", nil},
		{"/**\n*/ /***/ /* * / */", nil},
		{`{
 x: 1, // howdy do
 'y' /* hide me */ : 2.0 }`, []jfive.Kind{lb, id, co, nm, cm, st, co, nm, rb}},

		// Trailing commas are tokens; the parser accepts them.
		{"[1, 2, ]", []jfive.Kind{ls, nm, cm, nm, cm, rs}},
		{"{a: 1,\n}", []jfive.Kind{lb, id, co, nm, cm, rb}},
		{"[1 , ]", []jfive.Kind{ls, nm, cm, rs}},
		{"[1, /* c */ ]", []jfive.Kind{ls, nm, cm, rs}},
		{",,", []jfive.Kind{cm, cm}},

		// Numbers
		{"+1 -Infinity Infinity NaN -NaN .5 5. 0x1F -0XaB 0o17 0b101 e5 1e-3", []jfive.Kind{
			nm, nm, nm, nm, nm, nm, nm, nm, nm, nm, nm, nm, nm,
		}},

		// Identifiers
		{"e E eval e5x $ _a a1 \\u0061bc a\\u0062 caf\u00e9 \u01c5", []jfive.Kind{
			id, id, id, id, id, id, id, id, id, id, id,
		}},

		// White space
		{"\v\f\u00a0 \u2028\u2029\ufeff\u3000[]", []jfive.Kind{ls, rs}},

		// Strings
		{`'' 'a"b' "a'b" '\x41\0\v\q'`, []jfive.Kind{st, st, st, st}},
	}

	for _, test := range tests {
		got, err := readTokens(test.input, jfive.Permissive)
		if err != nil {
			t.Errorf("Next failed: %v", err)
		}
		if diff := cmp.Diff(test.want, tokenKinds(got)); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestLexerValues(t *testing.T) {
	tests := []struct {
		input string
		json5 bool
		want  string // token text, number literal or boolean
	}{
		{`"a\tb c\n"`, false, "a\tb c\n"},
		{`"\ud83d\ude00"`, false, "\U0001f600"},
		{`"\uD83D\uDE00!"`, true, "\U0001f600!"},
		{`"\ud83d"`, false, "\ufffd"},
		{`"\ud83dx"`, false, "\ufffdx"},
		{"\"\U0001f600\"", false, "\U0001f600"},
		{`'it\'s'`, true, "it's"},
		{`'\x41\0\v'`, true, "A\x00\v"},
		{"'a\\\nb'", true, "ab"},
		{"'a\\\r\nb'", true, "ab"},
		{"'a\\\u2028b'", true, "ab"},
		{`'\q\"'`, true, `q"`},
		{"'a\u2028b'", true, "a\u2028b"},
		{"\"a\u2029b\"", false, "a\u2029b"},
		{`abc`, true, "abc"},
		{`true`, false, "true"},
		{`false`, true, "false"},
		{`-0.5e10`, false, "-0.5e10"},
		{`+.5`, true, "+.5"},
		{`0x1F`, true, "0x1F"},
		{`-Infinity`, true, "-Infinity"},
		{`e5`, true, "e5"},
	}
	for _, test := range tests {
		cfg := jfive.Strict
		if test.json5 {
			cfg = jfive.Permissive
		}
		toks, err := readTokens(test.input, cfg)
		if err != nil {
			t.Errorf("Input %#q: unexpected error: %v", test.input, err)
			continue
		} else if len(toks) != 1 {
			t.Errorf("Input %#q: got %d tokens, want 1", test.input, len(toks))
			continue
		}
		var got string
		switch tok := toks[0]; tok.Kind {
		case jfive.Str, jfive.Ident:
			got = tok.Text
		case jfive.Num:
			got = tok.Number.Text()
		case jfive.Bool:
			got = map[bool]string{true: "true", false: "false"}[tok.Bool]
		default:
			t.Errorf("Input %#q: unexpected token %v", test.input, tok)
		}
		if got != test.want {
			t.Errorf("Input %#q: got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestLexerErrors(t *testing.T) {
	tests := []struct {
		input string
		json5 bool
		want  string
	}{
		{`{a:1}`, false, `unknown constant "a"`},
		{`+1`, false, `illegal character '+'`},
		{`"abc`, false, "unclosed string"},
		{"\"abc\ndef\"", false, "unclosed string"},
		{`"a\qb"`, false, `invalid escape "\\q"`},
		{`"\u12"`, false, "expected 2 more hex digits"},
		{`"\u123"`, false, "expected 1 more hex digit"},
		{`01`, false, "invalid leading zero"},
		{`1.`, false, "expected decimal digit"},
		{`.5`, false, "illegal character '.'"},
		{`1e`, false, "expected exponent digit"},
		{`1e+`, false, "expected exponent digit"},
		{`-`, false, "expected digit"},
		{`tru`, false, `unknown constant "tru"`},
		{"\"a\tb\"", false, "invalid control character U+0009"},
		{`/* x */`, false, "illegal character '/'"},
		{`'x'`, false, `illegal character '\''`},
		{`NaN`, false, `unknown constant "NaN"`},

		{`/x`, true, "illegal '/'"},
		{`/* open`, true, "unfinished block comment"},
		{`/* open *`, true, "unfinished block comment"},
		{`-foo`, true, "illegal number"},
		{`+Infinityx`, true, "illegal number"},
		{`-`, true, "illegal number"},
		{"'abc\n'", true, "unclosed string"},
		{`'abc"`, true, "unclosed string"},
		{`'\1'`, true, `invalid escape "\\1"`},
		{`'\01'`, true, `invalid escape "\\01"`},
		{`'\x4'`, true, "expected 1 more hex digit"},
		{`0x`, true, "expected hexadecimal digit"},
		{`0b2`, true, "expected binary digit"},
		{`01`, true, "invalid leading zero"},
		{`.`, true, "expected decimal digit"},
		{`\u0031abc`, true, "invalid identifier escape U+0031"},
		{`a\u0020`, true, "invalid identifier escape U+0020"},
		{`\x41`, true, "invalid identifier escape"},
		{`#`, true, "illegal character '#'"},
	}
	for _, test := range tests {
		cfg := jfive.Strict
		if test.json5 {
			cfg = jfive.Permissive
		}
		_, err := readTokens(test.input, cfg)
		var serr *jfive.SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("Input %#q (JSON5=%v): got error %v, want *SyntaxError", test.input, test.json5, err)
			continue
		}
		if !strings.Contains(serr.Message, test.want) {
			t.Errorf("Input %#q (JSON5=%v): got error %q, want %q", test.input, test.json5, serr.Message, test.want)
		}
	}
}

func TestLexerSpans(t *testing.T) {
	type tokPos struct {
		Kind jfive.Kind
		Pos  string
	}
	tests := []struct {
		input string
		json5 bool
		want  []tokPos
	}{
		{"", false, nil},
		{"{ }", false, []tokPos{{lb, "1:1-2"}, {rb, "1:3-4"}}},
		{`"foo" 12`, false, []tokPos{{st, "1:1-6"}, {nm, "1:7-9"}}},
		{"true\n false\n", false, []tokPos{{bo, "1:1-5"}, {bo, "2:2-7"}}},
		{"[1,\r\n2\r3]", false, []tokPos{
			{ls, "1:1-2"}, {nm, "1:2-3"}, {cm, "1:3-4"},
			{nm, "2:1-2"}, {nm, "3:1-2"}, {rs, "3:2-3"},
		}},
		{"[1, ]", true, []tokPos{{ls, "1:1-2"}, {nm, "1:2-3"}, {cm, "1:3-4"}, {rs, "1:5-6"}}},
		{"[1 ,2]", true, []tokPos{{ls, "1:1-2"}, {nm, "1:2-3"}, {cm, "1:4-5"}, {nm, "1:5-6"}, {rs, "1:6-7"}}},
		{"// first\nx /* ok\n*/ -Infinity", true, []tokPos{{id, "2:1-2"}, {nm, "3:4-13"}}},
		{"'\U0001f600'", true, []tokPos{{st, "1:1-4"}}},
	}
	for _, tc := range tests {
		cfg := jfive.Strict
		if tc.json5 {
			cfg = jfive.Permissive
		}
		toks, err := readTokens(tc.input, cfg)
		if err != nil {
			t.Errorf("Next failed: %v", err)
		}
		var got []tokPos
		for _, tok := range toks {
			got = append(got, tokPos{tok.Kind, tok.Span.String()})
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", tc.input, diff)
		}
	}
}

func TestLexerErrorSpan(t *testing.T) {
	_, err := readTokens("[1,\n  tru ]", jfive.Strict)
	var serr *jfive.SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("Got error %v, want *SyntaxError", err)
	}
	if got, want := serr.Span().String(), "2:3-6"; got != want {
		t.Errorf("Error span: got %q, want %q", got, want)
	}
	if got, want := serr.Error(), `at 2:3: unknown constant "tru"`; got != want {
		t.Errorf("Error: got %q, want %q", got, want)
	}
}
