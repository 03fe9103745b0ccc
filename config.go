// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jfive

import (
	"io"

	"golang.org/x/text/encoding"
)

// Config selects the dialect and input handling of a Reader, Parser or
// Decoder. The zero value reads strict JSON in UTF-8 and requires an object
// or array at the top level.
type Config struct {
	// JSON5 selects the permissive JSON5 dialect: comments, single-quoted
	// strings, identifier keys, trailing commas and extended numbers.
	JSON5 bool

	// AnyValue permits any value at the top level, not only an object or
	// an array.
	AnyValue bool

	// SkipNonExecutePrefix discards a leading )]}' guard, with an optional
	// line ending, from the input.
	SkipNonExecutePrefix bool

	// Encoding selects the encoding of the input. It is ignored if Charset
	// is set.
	Encoding Encoding

	// Charset, if non-nil, decodes the input from a legacy character set.
	Charset encoding.Encoding

	// Trace, if non-nil, is called with each token read from the input.
	Trace func(Token)
}

var (
	// Strict reads standard JSON documents.
	Strict = Config{}

	// Permissive reads JSON5 values.
	Permissive = Config{JSON5: true, AnyValue: true}
)

// newSource constructs a Source for r as configured by c.
func (c Config) newSource(r io.Reader) *Source {
	if c.Charset != nil {
		return NewCharsetSource(r, c.Charset)
	}
	return NewSource(r, c.Encoding)
}
