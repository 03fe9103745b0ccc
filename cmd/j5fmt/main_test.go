// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"strings"
	"testing"

	"github.com/creachadair/jfive"
	"github.com/creachadair/jfive/format"
	"github.com/google/go-cmp/cmp"
)

func TestReformat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		cfg   jfive.Config
		f     format.Formatter
		want  string
	}{
		{"Empty", "", jfive.Strict, format.Formatter{}, ""},
		{"Stream", `{"a":1} [2]`, jfive.Strict, format.Formatter{Compact: true}, "{\"a\":1}\n[2]\n"},
		{"Pretty", `{"a":1,"bb":[1,2,3,4]}`, jfive.Strict, format.Formatter{},
			"{\n  \"a\": 1,\n\n  \"bb\": [\n    1,\n    2,\n    3,\n    4\n  ]\n}\n"},
		{"ToJSON5", `{"key": 'v', n: 0x10,}`, jfive.Config{JSON5: true},
			format.Formatter{JSON5: true, Compact: true}, "{key:\"v\",n:0x10}\n"},
		{"FromJSON5", "// head\n[+1, .5, 'x'] /* tail */ 3", jfive.Permissive,
			format.Formatter{Compact: true}, "[1,0.5,\"x\"]\n3\n"},
		{"Prefix", ")]}'\n[true]", jfive.Config{SkipNonExecutePrefix: true},
			format.Formatter{}, "[true]\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var sb strings.Builder
			if err := reformat(&sb, strings.NewReader(tc.input), tc.cfg, tc.f); err != nil {
				t.Fatalf("reformat: unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, sb.String()); diff != "" {
				t.Errorf("Output (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestReformatErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		cfg   jfive.Config
		f     format.Formatter
		want  string // partial output
	}{
		{"Syntax", `[1] [2`, jfive.Strict, format.Formatter{}, "[1]\n"},
		{"Dialect", `[1] {a: 1}`, jfive.Strict, format.Formatter{}, "[1]\n"},
		{"NotFinite", `[1] [NaN]`, jfive.Permissive, format.Formatter{}, "[1]\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var sb strings.Builder
			err := reformat(&sb, strings.NewReader(tc.input), tc.cfg, tc.f)
			if err == nil {
				t.Fatal("reformat: got nil, want error")
			}
			t.Logf("Got expected error: %v", err)
			if got := sb.String(); got != tc.want {
				t.Errorf("Output: got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseEncoding(t *testing.T) {
	tests := []struct {
		input string
		want  jfive.Encoding
		fail  bool
	}{
		{"", jfive.UTF8, false},
		{"utf8", jfive.UTF8, false},
		{"UTF-8", jfive.UTF8, false},
		{"utf-16be", jfive.UTF16BE, false},
		{"UTF16LE", jfive.UTF16LE, false},
		{"detect", jfive.EncodingDetect, false},
		{"latin1", 0, true},
	}
	for _, tc := range tests {
		got, err := parseEncoding(tc.input)
		if (err != nil) != tc.fail {
			t.Errorf("parseEncoding(%q): got error %v, want failure %v", tc.input, err, tc.fail)
		} else if got != tc.want {
			t.Errorf("parseEncoding(%q): got %v, want %v", tc.input, got, tc.want)
		}
	}
}
