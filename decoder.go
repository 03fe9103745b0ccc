// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jfive

import (
	"errors"
	"io"
	"sync"
)

// ErrClosed is reported by Decode after the Decoder has been closed.
var ErrClosed = errors.New("decoder is closed")

// A Decoder reads a stream of concatenated documents. No separator is needed
// between documents, except that a document that is a bare number or word
// must be followed by white space or a delimiter.
//
// Calls to Decode are serialized, so a Decoder may be shared by concurrent
// goroutines, although each receives whichever document is next.
type Decoder[V any] struct {
	mu  sync.Mutex
	rd  *Reader
	p   *Parser[V]
	err error
}

// NewDecoder constructs a Decoder that reads documents from r as configured
// by cfg, building values with sink.
func NewDecoder[V any](r io.Reader, sink Sink[V], cfg Config) *Decoder[V] {
	return &Decoder[V]{rd: NewReader(r, cfg), p: NewParser(sink, cfg)}
}

// Decode returns the next document of the stream. It returns io.EOF when the
// input holds no further documents. After any error, including a syntax
// error, the stream is broken and every later call reports the same error.
func (d *Decoder[V]) Decode() (V, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		var zero V
		return zero, d.err
	}
	v, err := d.p.parseNext(d.rd)
	if err != nil {
		d.err = err
	}
	return v, err
}

// Close closes the underlying reader, if it is an io.Closer. After Close,
// Decode reports ErrClosed unless it had already failed.
func (d *Decoder[V]) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err == nil {
		d.err = ErrClosed
	}
	return d.rd.Close()
}
