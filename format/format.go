// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package format renders syntax trees as JSON or JSON5 text.
package format

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/creachadair/jfive"
	"github.com/creachadair/jfive/ast"
)

// A Formatter carries the settings for rendering values.
// A zero value is ready for use with default settings, which pretty-print
// strict JSON with two-space indentation.
type Formatter struct {
	// Indent is the number of spaces per level of nesting. If zero, two
	// spaces are used.
	Indent int

	// MaxLineItems is the largest number of elements of an array of scalars
	// that are written on one line. If zero, 3 is used.
	MaxLineItems int

	// Compact writes the value on a single line with no optional spaces.
	Compact bool

	// JSON5 writes JSON5: object keys that are identifiers are not quoted,
	// numbers keep their literal form, and NaN and the infinities are
	// permitted. Without it, non-finite numbers are an error.
	JSON5 bool

	// TrailingCommas puts a comma after the last element of a container
	// that spans multiple lines. It applies only with JSON5.
	TrailingCommas bool

	// ASCII escapes all non-ASCII characters in strings.
	ASCII bool

	// SortKeys writes the members of each object in order by key.
	SortKeys bool
}

func (f Formatter) indent() string {
	if f.Indent <= 0 {
		return "  "
	}
	return strings.Repeat(" ", f.Indent)
}

func (f Formatter) maxLineItems() int {
	if f.MaxLineItems <= 0 {
		return 3
	}
	return f.MaxLineItems
}

// Format renders a pretty-printed representation of v to w with default
// settings.
func Format(w io.Writer, v ast.Value) error {
	var f Formatter
	return f.Format(w, v)
}

// FormatToString formats v to a string with default settings.
// In case of error in formatting, it returns an empty string.
func FormatToString(v ast.Value) string {
	var buf bytes.Buffer
	if Format(&buf, v) != nil {
		return ""
	}
	return buf.String()
}

// Format renders a representation of v to w using the settings from f.
// No trailing newline is written.
func (f Formatter) Format(w io.Writer, v ast.Value) error {
	if err := f.check(v); err != nil {
		return err
	}
	if f.SortKeys {
		v = sortKeys(v)
	}
	if f.Compact {
		var buf bytes.Buffer
		f.compact(&buf, v)
		_, err := w.Write(buf.Bytes())
		return err
	}
	tw := tabwriter.NewWriter(w, 4, 4, 1, ' ', 0)
	f.formatValue(tw, v, "", "")
	return tw.Flush()
}

// check reports an error if v cannot be rendered in the output dialect.
func (f Formatter) check(v ast.Value) error {
	switch t := v.(type) {
	case ast.Object:
		for _, m := range t {
			if err := f.check(m.Value); err != nil {
				return err
			}
		}
	case ast.Array:
		for _, elt := range t {
			if err := f.check(elt); err != nil {
				return err
			}
		}
	case ast.Number:
		if !f.JSON5 && t.Radix() == jfive.Special {
			return fmt.Errorf("%w: %s has no JSON form", jfive.ErrNotFinite, t.Text())
		}
	case ast.String, ast.Bool, ast.Null:
	case nil:
		return errors.New("missing value")
	default:
		return fmt.Errorf("unknown value type %T", v)
	}
	return nil
}

// sortKeys returns a copy of v in which the members of every object are
// sorted by key. The input is not modified.
func sortKeys(v ast.Value) ast.Value {
	switch t := v.(type) {
	case ast.Object:
		out := make(ast.Object, len(t))
		for i, m := range t {
			out[i] = &ast.Member{Key: m.Key, Value: sortKeys(m.Value)}
		}
		out.Sort()
		return out
	case ast.Array:
		out := make(ast.Array, len(t))
		for i, elt := range t {
			out[i] = sortKeys(elt)
		}
		return out
	}
	return v
}

type writeFlusher interface {
	io.Writer
	Flush() error
}

// formatValue writes a representation of v to w, preceded by init, with
// nested lines indented by indent.
func (f Formatter) formatValue(w writeFlusher, v ast.Value, init, indent string) {
	switch t := v.(type) {
	case ast.Array:
		f.formatArray(w, t, init, indent)
	case ast.Object:
		f.formatObject(w, t, init, indent)
	default:
		fmt.Fprint(w, init, f.scalar(v))
	}
}

func (f Formatter) formatArray(w writeFlusher, a ast.Array, init, indent string) {
	if f.isBoring(a) {
		fmt.Fprint(w, init, "[")
		for i, v := range a {
			if i > 0 {
				io.WriteString(w, ", ")
			}
			f.formatValue(w, v, "", "")
		}
		io.WriteString(w, "]")
		return
	}

	fmt.Fprint(w, init, "[\n")
	adent := indent + f.indent()
	for i, v := range a {
		f.formatValue(w, v, adent, adent)
		io.WriteString(w, f.sep(i, len(a)))
	}
	w.Flush()
	fmt.Fprint(w, indent, "]")
}

func (f Formatter) formatObject(w writeFlusher, o ast.Object, init, indent string) {
	if f.isBoring(o) {
		fmt.Fprint(w, init, "{")
		for i, m := range o {
			if i > 0 {
				io.WriteString(w, ", ")
			}
			fmt.Fprint(w, f.key(m.Key), ": ")
			f.formatValue(w, m.Value, "", "")
		}
		io.WriteString(w, "}")
		return
	}

	fmt.Fprint(w, init, "{\n")
	mdent := indent + f.indent()
	prevBoring, curBoring := true, true
	for i, m := range o {
		// Leave extra space before the next member if either it or its
		// predecessor was non-boring.
		prevBoring, curBoring = curBoring, f.isBoring(m.Value)
		if i != 0 && !(prevBoring && curBoring) {
			io.WriteString(w, "\n")
		}

		fmt.Fprint(w, mdent, f.key(m.Key), f.objSep(m.Value))
		f.formatValue(w, m.Value, "", mdent)
		io.WriteString(w, f.sep(i, len(o)))
	}
	w.Flush()
	fmt.Fprint(w, indent, "}")
}

// sep returns the separator that follows element i of a multi-line
// container with n elements.
func (f Formatter) sep(i, n int) string {
	if i < n-1 || (f.JSON5 && f.TrailingCommas) {
		return ",\n"
	}
	return "\n"
}

// objSep returns a key-value separator for the given value.
// Boring values get indented so they line up in columns;
// non-boring values are stapled directly to the key.
func (f Formatter) objSep(v ast.Value) string {
	if f.isBoring(v) {
		return ":\t"
	}
	return ": "
}

// isBoring reports whether v has a simple enough structure that it can be
// rendered on one line.
func (f Formatter) isBoring(v ast.Value) bool {
	switch t := v.(type) {
	case ast.Array:
		for i, v := range t {
			if !f.isBoring(v) || i >= f.maxLineItems() {
				return false
			}
		}
		return true
	case ast.Object:
		if len(t) == 1 {
			return f.isBoring(t[0].Value)
		}
		return len(t) == 0
	default:
		return true
	}
}

// compact writes v to buf with no optional white space.
func (f Formatter) compact(buf *bytes.Buffer, v ast.Value) {
	switch t := v.(type) {
	case ast.Array:
		buf.WriteByte('[')
		for i, elt := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			f.compact(buf, elt)
		}
		buf.WriteByte(']')
	case ast.Object:
		buf.WriteByte('{')
		for i, m := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(f.key(m.Key))
			buf.WriteByte(':')
			f.compact(buf, m.Value)
		}
		buf.WriteByte('}')
	default:
		buf.WriteString(f.scalar(v))
	}
}

func (f Formatter) key(s string) string {
	if f.JSON5 && jfive.IsIdent(s) {
		return s
	}
	return f.quote(s)
}

func (f Formatter) quote(s string) string {
	if f.ASCII {
		return jfive.QuoteASCII(s)
	}
	return jfive.Quote(s)
}

func (f Formatter) scalar(v ast.Value) string {
	switch t := v.(type) {
	case ast.String:
		return f.quote(string(t))
	case ast.Number:
		if f.JSON5 {
			return t.Text()
		}
		return t.DecimalString()
	}
	return v.JSON()
}
