// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package format_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/creachadair/jfive"
	"github.com/creachadair/jfive/ast"
	"github.com/creachadair/jfive/format"
	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, s string) ast.Value {
	t.Helper()
	v, err := ast.ParseString(s, jfive.Permissive)
	if err != nil {
		t.Fatalf("Parse %#q: %v", s, err)
	}
	return v
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		f     format.Formatter
		want  string
	}{
		{"Scalar", `"hello"`, format.Formatter{}, `"hello"`},
		{"Empty", `{"e":{},"f":[]}`, format.Formatter{}, `{
  "e": {},
  "f": []
}`},
		{"Align", `{"a":1,"bbb":true}`, format.Formatter{}, `{
  "a":   1,
  "bbb": true
}`},
		{"Nested", `{"name":"x","list":[1,2,3,4],"o":{"a":1}}`, format.Formatter{}, `{
  "name": "x",

  "list": [
    1,
    2,
    3,
    4
  ],

  "o": {"a": 1}
}`},
		{"ShortArray", `[1, "two", null]`, format.Formatter{}, `[1, "two", null]`},
		{"MaxLineItems", `[1,2,3,4]`, format.Formatter{MaxLineItems: 5}, `[1, 2, 3, 4]`},
		{"Indent", `[[1,2,3,4]]`, format.Formatter{Indent: 4}, `[
    [
        1,
        2,
        3,
        4
    ]
]`},
		{"Decimal", `[0x1F, +.5, 1e3]`, format.Formatter{}, `[31, 0.5, 1e3]`},
		{"JSON5", `{"ident":[1,2,3,4],"with space":0x10}`,
			format.Formatter{JSON5: true, TrailingCommas: true}, `{
  ident: [
    1,
    2,
    3,
    4,
  ],

  "with space": 0x10,
}`},
		{"TrailingStrict", `{"a":1,"b":2}`, format.Formatter{TrailingCommas: true}, `{
  "a": 1,
  "b": 2
}`},
		{"Keyword", `{"null": 1, "$ok": 2}`, format.Formatter{JSON5: true, Compact: true}, `{"null":1,$ok:2}`},
		{"Compact", `{"a": [1, 2, {"b": null}], "c": "x\ty"}`, format.Formatter{Compact: true},
			`{"a":[1,2,{"b":null}],"c":"x\ty"}`},
		{"CompactASCII", "[\"caf\u00e9\"]", format.Formatter{Compact: true, ASCII: true}, `["caf\u00e9"]`},
		{"Special", `[NaN, -Infinity]`, format.Formatter{JSON5: true}, `[NaN, -Infinity]`},
		{"SortKeys", `{"b":1,"a":{"d":1,"c":2}}`, format.Formatter{Compact: true, SortKeys: true},
			`{"a":{"c":2,"d":1},"b":1}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var sb strings.Builder
			if err := tc.f.Format(&sb, mustParse(t, tc.input)); err != nil {
				t.Fatalf("Format: unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, sb.String()); diff != "" {
				t.Errorf("Format %#q (-want, +got):\n%s", tc.input, diff)
			}
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	const input = `{
  // Comments are not preserved.
  name: 'frontend', replicas: 3,
  limits: {cpu: 0.5, memory: 0x4000000, tags: ['a', 'b', 'c', 'd']},
  hosts: [],
}`
	v := mustParse(t, input)
	for _, f := range []format.Formatter{
		{},
		{Compact: true},
		{Indent: 3, MaxLineItems: 1},
		{JSON5: true, TrailingCommas: true},
		{JSON5: true, Compact: true, ASCII: true},
		{SortKeys: true},
	} {
		var sb strings.Builder
		if err := f.Format(&sb, v); err != nil {
			t.Fatalf("Format %+v: unexpected error: %v", f, err)
		}
		cfg := jfive.Strict
		if f.JSON5 {
			cfg = jfive.Permissive
		}
		got, err := ast.ParseString(sb.String(), cfg)
		if err != nil {
			t.Fatalf("Parse %+v output: %v\n%s", f, err, sb.String())
		}
		want := v
		if f.SortKeys {
			want = mustParse(t, `{hosts: [], limits: {cpu: 0.5, memory: 67108864, tags: ['a', 'b', 'c', 'd']},
                           name: 'frontend', replicas: 3}`)
		}
		if !ast.Equal(got, want) {
			t.Errorf("Format %+v: got %s, want %s", f, got.JSON(), want.JSON())
		}
	}
}

func TestFormatErrors(t *testing.T) {
	v := mustParse(t, `{"ok": [1, {"bad": NaN}]}`)
	var sb strings.Builder
	err := format.Formatter{}.Format(&sb, v)
	if !errors.Is(err, jfive.ErrNotFinite) {
		t.Errorf("Format: got %v, want %v", err, jfive.ErrNotFinite)
	}
	if sb.Len() != 0 {
		t.Errorf("Format: wrote %q on error", sb.String())
	}
	if got := format.FormatToString(v); got != "" {
		t.Errorf("FormatToString: got %q, want empty", got)
	}

	if err := format.Format(&sb, ast.Array{nil}); err == nil {
		t.Error("Format: got nil, want error")
	}
}

func TestFormatToString(t *testing.T) {
	v := ast.ToValue(map[string]any{"k": []any{true, false}})
	if got, want := format.FormatToString(v), `{"k": [true, false]}`; got != want {
		t.Errorf("FormatToString: got %q, want %q", got, want)
	}
}
