// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jfive implements a streaming lexer and parser for JSON and JSON5.
//
// # Dialects
//
// A Config selects the dialect. The strict dialect accepts standard JSON.
// The JSON5 dialect also accepts comments, single-quoted strings, identifier
// keys, trailing commas, hexadecimal, octal and binary integers, a leading
// plus sign or decimal point, and the values NaN and Infinity:
//
//	{
//	  // A JSON5 document.
//	  name: 'example',
//	  mask: 0xFF,
//	  ratio: +.5,
//	  items: [1, 2, 3,],
//	}
//
// Two presets are provided: Strict reads standard JSON and requires an
// object or array at the top level, and Permissive reads JSON5 and accepts
// any value at the top level.
//
// # Reading tokens
//
// The Reader type reads the tokens of an input stream, with one token of
// lookahead. Construct a Reader from an io.Reader and a Config, and call its
// methods to consume tokens:
//
//	rd := jfive.NewReader(input, jfive.Permissive)
//	for {
//	   tok, err := rd.Next()
//	   if err != nil {
//	      log.Fatalf("Next failed: %v", err)
//	   } else if tok.Kind == jfive.End {
//	      break
//	   }
//	   log.Printf("Next token: %v", tok)
//	}
//
// Lexical errors have concrete type *jfive.SyntaxError, which carries the
// span of the offending text. Errors from the underlying reader are returned
// unchanged.
//
// # Numbers
//
// A numeric literal is reported as a *Number, which keeps the literal text
// and converts it on demand to int32, int64, float32, float64, *big.Int or
// decimal.Decimal. Each conversion is computed once and cached.
//
// # Parsing
//
// A Parser assembles documents from tokens. It does not construct values
// itself; instead it calls the methods of a Sink, so that any document model
// can be built directly. AnySink builds plain Go values:
//
//	p := jfive.NewParser[any](jfive.AnySink{}, jfive.Strict)
//	v, err := p.Parse(input)
//
// The parser keeps its state in explicit stacks, so deeply nested input does
// not exhaust the goroutine stack.
//
// # Streams of documents
//
// A Decoder reads a stream of concatenated documents, such as JSON Lines or
// records written back to back. Each call to Decode returns the next
// document, or io.EOF at the end of the stream:
//
//	dec := jfive.NewDecoder[any](input, jfive.AnySink{}, jfive.Permissive)
//	for {
//	   v, err := dec.Decode()
//	   if err == io.EOF {
//	      break
//	   } else if err != nil {
//	      log.Fatalf("Decode failed: %v", err)
//	   }
//	   process(v)
//	}
//
// # Input
//
// Input is decoded as UTF-8 by default. A Config may select UTF-16, detect
// the encoding from a byte-order mark, or decode a legacy character set via
// golang.org/x/text/encoding. Line endings CR, LF and CRLF are all treated
// as a single line break when computing positions.
//
// # Trees
//
// Package ast provides a Sink that builds syntax trees, which preserve the
// order of object members and the text of numbers, and package format
// renders those trees as JSON or JSON5.
package jfive
