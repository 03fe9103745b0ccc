// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a tree of JSON and JSON5 values, and functions that
// construct trees from source text.
package ast

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/creachadair/jfive"
)

// A Value is an arbitrary JSON value. The concrete type is one of Object,
// Array, String, Number, Bool, or Null.
type Value interface {
	// JSON renders the value as compact JSON text. NaN and the infinities,
	// which have no JSON form, render as their JSON5 literals.
	JSON() string

	// String returns a brief human-readable description of the value.
	String() string
}

// An Object is a sequence of key-value members. Keys may repeat; the order
// of members is the order of the source.
type Object []*Member

// Find returns the first member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	if i := o.IndexKey(key); i >= 0 {
		return o[i]
	}
	return nil
}

// IndexKey returns the index of the first member of o with the given key,
// or -1.
func (o Object) IndexKey(key string) int {
	for i, m := range o {
		if m.Key == key {
			return i
		}
	}
	return -1
}

func (o Object) Len() int { return len(o) }

func (o Object) JSON() string {
	if len(o) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(m.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

func (o Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o)) }

// Sort sorts the object in ascending order by key. Members with equal keys
// keep their relative order.
func (o Object) Sort() {
	sort.SliceStable(o, func(i, j int) bool { return o[i].Key < o[j].Key })
}

// A Member is a key-value pair in an object.
type Member struct {
	Key   string
	Value Value
}

func (m Member) JSON() string { return jfive.Quote(m.Key) + ":" + m.Value.JSON() }

func (m Member) String() string { return fmt.Sprintf("Member(key=%q)", m.Key) }

// Field constructs an object member with the given key and value.
// The value must be one of the types accepted by ToValue.
func Field(key string, value any) *Member {
	return &Member{Key: key, Value: ToValue(value)}
}

// An Array is a sequence of values.
type Array []Value

func (a Array) Len() int { return len(a) }

func (a Array) JSON() string {
	if len(a) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (a Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a)) }

// A String is a string value. Its content is unescaped text.
type String string

func (s String) JSON() string   { return jfive.Quote(string(s)) }
func (s String) String() string { return string(s) }
func (s String) Len() int       { return len(s) }

// A Number is a numeric value. The conversion methods of the underlying
// literal are promoted.
type Number struct {
	*jfive.Number
}

// Int returns a Number with the value of z.
func Int(z int64) Number { return Number{jfive.IntNumber(z)} }

// Float returns a Number with the value of f.
func Float(f float64) Number { return Number{jfive.FloatNumber(f)} }

// JSON renders n as a base-10 literal. Hexadecimal, octal and binary
// literals are converted, and a leading plus sign is dropped.
func (n Number) JSON() string { return n.DecimalString() }

// A Bool is a Boolean constant, true or false.
type Bool bool

func (b Bool) JSON() string {
	if b {
		return "true"
	}
	return "false"
}

func (b Bool) String() string { return b.JSON() }

// Null represents the null constant.
type Null struct{}

func (Null) JSON() string   { return "null" }
func (Null) String() string { return "null" }

// ToValue converts a Go value into a Value. It accepts:
//
//   - a Value, returned as-is
//   - string, bool, and nil
//   - int, int32, int64, float32, float64, and *jfive.Number
//   - []any and map[string]any, converted recursively; map keys are sorted
//
// It panics if v does not have one of these types.
func ToValue(v any) Value {
	switch t := v.(type) {
	case Value:
		return t
	case nil:
		return Null{}
	case string:
		return String(t)
	case bool:
		return Bool(t)
	case int:
		return Int(int64(t))
	case int32:
		return Int(int64(t))
	case int64:
		return Int(t)
	case float32:
		return Float(float64(t))
	case float64:
		return Float(t)
	case *jfive.Number:
		return Number{t}
	case []any:
		out := make(Array, len(t))
		for i, elt := range t {
			out[i] = ToValue(elt)
		}
		return out
	case map[string]any:
		out := make(Object, 0, len(t))
		for key, elt := range t {
			out = append(out, Field(key, elt))
		}
		out.Sort()
		return out
	default:
		panic(fmt.Sprintf("ast: unsupported value type %T", v))
	}
}

// Equal reports whether a and b are structurally equal. Objects are equal
// if they have equal members in the same order. Numbers are equal if they
// denote the same value, however they are written: 1, 1.0, 0x1 and 10e-1
// are all equal. NaN is equal to NaN.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Object:
		y, ok := b.(Object)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if x[i].Key != y[i].Key || !Equal(x[i].Value, y[i].Value) {
				return false
			}
		}
		return true
	case Array:
		y, ok := b.(Array)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case Number:
		y, ok := b.(Number)
		return ok && numberEqual(x.Number, y.Number)
	case *Member:
		y, ok := b.(*Member)
		return ok && x.Key == y.Key && Equal(x.Value, y.Value)
	}
	return a == b // String, Bool, Null
}

func numberEqual(x, y *jfive.Number) bool {
	if x.Radix() == jfive.Special || y.Radix() == jfive.Special {
		fx, fy := x.Float64(), y.Float64()
		return fx == fy || (math.IsNaN(fx) && math.IsNaN(fy))
	}
	dx, errx := x.Decimal()
	dy, erry := y.Decimal()
	if errx != nil || erry != nil {
		return x.Text() == y.Text() // exponents out of range
	}
	return dx.Equal(dy)
}
