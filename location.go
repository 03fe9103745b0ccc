// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jfive

import "fmt"

// A Pos describes a location in source text.
type Pos struct {
	Offset int // code points consumed before this location, 0-based
	Line   int // line number, 1-based
	Col    int // column number in code points, 1-based
}

// String renders p as "line:col".
func (p Pos) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Col) }

func startPos() Pos { return Pos{Line: 1, Col: 1} }

// A Span describes a contiguous range [Start, End) of source text.
type Span struct {
	Start, End Pos
}

// String renders s as "line:col-col" when the span is on one line, or as
// "line:col-line:col" otherwise.
func (s Span) String() string {
	if s.Start.Line == s.End.Line {
		return fmt.Sprintf("%d:%d-%d", s.Start.Line, s.Start.Col, s.End.Col)
	}
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}

// Len reports the number of code points spanned by s.
func (s Span) Len() int { return s.End.Offset - s.Start.Offset }
