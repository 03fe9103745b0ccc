// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"io"
	"strings"
	"sync"

	"github.com/creachadair/jfive"
)

// Builder is a jfive.Sink that constructs syntax trees. Object members are
// kept in source order, including repeated keys.
type Builder struct{}

var _ jfive.Sink[Value] = Builder{}

func (Builder) Object() Value { return Object{} }
func (Builder) Array() Value  { return Array{} }

func (Builder) Append(arr, v Value) Value { return append(arr.(Array), v) }

func (Builder) Set(obj Value, key string, v Value) Value {
	return append(obj.(Object), &Member{Key: key, Value: v})
}

func (Builder) String(s string) Value        { return String(s) }
func (Builder) Number(n *jfive.Number) Value { return Number{n} }
func (Builder) Bool(b bool) Value            { return Bool(b) }
func (Builder) Null() Value                  { return Null{} }

// Parsers are pooled by root mode. The dialect comes from the Reader each
// parse is given.
var parsers [2]sync.Pool

func getParser(cfg jfive.Config) *jfive.Parser[Value] {
	i := 0
	if cfg.AnyValue {
		i = 1
	}
	if p, ok := parsers[i].Get().(*jfive.Parser[Value]); ok {
		return p
	}
	return jfive.NewParser[Value](Builder{}, jfive.Config{AnyValue: cfg.AnyValue})
}

func putParser(p *jfive.Parser[Value]) {
	p.Reset()
	i := 0
	if p.Config().AnyValue {
		i = 1
	}
	parsers[i].Put(p)
}

// Parse parses a single document from r as configured by cfg. The input must
// contain nothing else but white space and, in JSON5, comments.
func Parse(r io.Reader, cfg jfive.Config) (Value, error) {
	p := getParser(cfg)
	defer putParser(p)
	return p.ParseReader(jfive.NewReader(r, cfg))
}

// ParseString parses a single document from s as configured by cfg.
func ParseString(s string, cfg jfive.Config) (Value, error) {
	return Parse(strings.NewReader(s), cfg)
}

// ParseAll parses and returns the stream of documents from r. In case of
// error, any complete values already parsed are returned along with the
// error.
func ParseAll(r io.Reader, cfg jfive.Config) ([]Value, error) {
	d := NewDecoder(r, cfg)
	var vs []Value
	for {
		v, err := d.Decode()
		if err == io.EOF {
			return vs, nil
		} else if err != nil {
			return vs, err
		}
		vs = append(vs, v)
	}
}

// NewDecoder constructs a decoder for a stream of documents from r, whose
// values are syntax trees.
func NewDecoder(r io.Reader, cfg jfive.Config) *jfive.Decoder[Value] {
	return jfive.NewDecoder[Value](r, Builder{}, cfg)
}
