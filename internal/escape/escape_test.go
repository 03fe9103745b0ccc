// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape_test

import (
	"testing"

	"github.com/creachadair/jfive/internal/escape"
	"go4.org/mem"
)

func TestQuoteMode(t *testing.T) {
	tests := []struct {
		input string
		mode  escape.Mode
		want  string
	}{
		{"", escape.Mode{}, ""},
		{`it's "ok"`, escape.Mode{}, `it's \"ok\"`},
		{`it's "ok"`, escape.Mode{Quote: '\''}, `it\'s "ok"`},
		{"a\\b", escape.Mode{Quote: '\''}, `a\\b`},
		{"\x7f\x00\x1f", escape.Mode{}, "\x7f\\u0000\\u001f"},
		{"\u00e9", escape.Mode{}, "\u00e9"},
		{"\u00e9", escape.Mode{ASCII: true}, `\u00e9`},
		{"\U0010ffff", escape.Mode{ASCII: true}, `\udbff\udfff`},
		{"\xff", escape.Mode{}, `\ufffd`},
		{"\u2028", escape.Mode{}, `\u2028`},
	}
	for _, tc := range tests {
		got := string(escape.Quote(mem.S(tc.input), tc.mode))
		if got != tc.want {
			t.Errorf("Quote(%#q, %+v): got %#q, want %#q", tc.input, tc.mode, got, tc.want)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input string
		json5 bool
		want  string
		fail  bool
	}{
		{``, false, ``, false},
		{`plain`, false, `plain`, false},
		{`\/\\\"`, false, `/\"`, false},
		{`\`, false, ``, true},
		{`\u12`, false, ``, true},
		{`\u12G4`, false, ``, true},
		{`\ud83d\ude00!`, false, "\U0001f600!", false},
		{`\uDE00\uD83D`, false, "\ufffd\ufffd", false},
		{`\ud83dA`, false, "\ufffdA", false},
		{`\'`, false, "\ufffd", false},
		{`\'`, true, `'`, false},
		{`\x41\x7e`, true, "A~", false},
		{`\x4`, true, ``, true},
		{`\xZZ`, true, ``, true},
		{`\0`, true, "\x00", false},
		{`\7`, true, "\ufffd", false},
		{"a\\\r\nb", true, "ab", false},
		{"a\\\rb", true, "ab", false},
		{"a\\\u2028b", true, "ab", false},
		{`\a\%`, true, "a%", false},
	}
	for _, tc := range tests {
		got, err := escape.Unquote(mem.S(tc.input), tc.json5)
		if err != nil {
			if !tc.fail {
				t.Errorf("Unquote(%#q, %v): unexpected error: %v", tc.input, tc.json5, err)
			}
			continue
		} else if tc.fail {
			t.Errorf("Unquote(%#q, %v): got %#q, want error", tc.input, tc.json5, got)
			continue
		}
		if string(got) != tc.want {
			t.Errorf("Unquote(%#q, %v): got %#q, want %#q", tc.input, tc.json5, got, tc.want)
		}
	}
}
