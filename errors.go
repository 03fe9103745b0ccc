// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jfive

import "fmt"

// SyntaxError is the concrete type of lexical and grammatical errors reported
// by the lexer, the Reader and the Parser. Errors from the underlying input
// are never converted to a SyntaxError.
type SyntaxError struct {
	Message    string
	Start, End Pos
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Start, s.Message)
}

// Span returns the source range of the offending text.
func (s *SyntaxError) Span() Span { return Span{Start: s.Start, End: s.End} }

func syntaxErrorf(span Span, msg string, args ...any) *SyntaxError {
	return &SyntaxError{
		Message: fmt.Sprintf(msg, args...),
		Start:   span.Start,
		End:     span.End,
	}
}
