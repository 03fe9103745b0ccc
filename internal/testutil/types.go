// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package testutil defines support code for unit tests.
package testutil

import (
	"testing"

	xunicode "golang.org/x/text/encoding/unicode"
)

// UTF16 encodes s as UTF-16 in the given byte order. If bom is true, the
// output begins with a byte-order mark.
func UTF16(t testing.TB, s string, order xunicode.Endianness, bom bool) []byte {
	t.Helper()
	policy := xunicode.IgnoreBOM
	if bom {
		policy = xunicode.UseBOM
	}
	out, err := xunicode.UTF16(order, policy).NewEncoder().String(s)
	if err != nil {
		t.Fatalf("Encoding UTF-16: %v", err)
	}
	return []byte(out)
}

// Nested returns n copies of open followed by inner and n copies of end.
func Nested(n int, open, inner, end string) string {
	buf := make([]byte, 0, n*(len(open)+len(end))+len(inner))
	for range n {
		buf = append(buf, open...)
	}
	buf = append(buf, inner...)
	for range n {
		buf = append(buf, end...)
	}
	return string(buf)
}
