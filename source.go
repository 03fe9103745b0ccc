// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jfive

import (
	"encoding/binary"
	"errors"
	"io"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// EOF is the code point reported to lexer states at the end of the input.
const EOF rune = -1

// blockSize is the number of input units (bytes for UTF-8, 16-bit units for
// UTF-16) fetched from the underlying reader per block.
const blockSize = 4096

// An Encoding selects how a Source decodes its input into code points.
type Encoding byte

const (
	UTF8           Encoding = iota // UTF-8 (the default)
	UTF16BE                        // UTF-16, big-endian
	UTF16LE                        // UTF-16, little-endian
	EncodingDetect                 // sniff a byte-order mark; UTF-8 if none
)

var encodingStr = [...]string{
	UTF8:           "UTF-8",
	UTF16BE:        "UTF-16BE",
	UTF16LE:        "UTF-16LE",
	EncodingDetect: "detect",
}

func (e Encoding) String() string {
	if int(e) >= len(encodingStr) {
		return "unknown encoding"
	}
	return encodingStr[e]
}

// nonExecutePrefixes are the guard sequences recognized by
// SkipNonExecutePrefix, longest first.
var nonExecutePrefixes = [...]string{")]}'\r\n", ")]}'\n", ")]}'\r", ")]}'"}

// A Source reads code points from an input stream. It buffers the input in
// fixed-size blocks, joins UTF-16 surrogate pairs, folds CR and CRLF line
// endings into a single LF, and tracks the position of each code point.
//
// A Source is not safe for concurrent use.
type Source struct {
	next    func() (rune, error)
	closer  io.Closer
	pending []rune // re-injected code points, delivered before new input
	crlf    bool   // the previous code point was a CR folded into LF

	last Pos // position of the most recent code point
	cur  Pos // position after the most recent code point
}

// NewSource constructs a Source that decodes input from r using enc.
// If r implements io.Closer, Close closes it.
func NewSource(r io.Reader, enc Encoding) *Source {
	s := &Source{last: startPos(), cur: startPos()}
	if c, ok := r.(io.Closer); ok {
		s.closer = c
	}
	switch enc {
	case UTF16BE:
		s.next = newUTF16Block(r, binary.BigEndian).next
	case UTF16LE:
		s.next = newUTF16Block(r, binary.LittleEndian).next
	case EncodingDetect:
		t := xunicode.BOMOverride(xunicode.UTF8.NewDecoder())
		s.next = newUTF8Block(transform.NewReader(r, t)).next
	default:
		s.next = newUTF8Block(r).next
	}
	return s
}

// NewCharsetSource constructs a Source that decodes input from r with the
// given character set, for example charmap.ISO8859_1.
func NewCharsetSource(r io.Reader, cs encoding.Encoding) *Source {
	s := NewSource(transform.NewReader(r, cs.NewDecoder()), UTF8)
	if c, ok := r.(io.Closer); ok {
		s.closer = c
	}
	return s
}

// Read returns the next code point of the input. CR and CRLF are reported as
// a single LF. At the end of input Read returns EOF and io.EOF; any other
// error is the error reported by the underlying reader.
func (s *Source) Read() (rune, error) {
	s.last = s.cur
	c, err := s.readRaw()
	if err != nil {
		s.crlf = false
		return EOF, err
	}
	if s.crlf {
		s.crlf = false
		if c == '\n' {
			// The LF of a CRLF pair was already reported with the CR.
			s.cur.Offset++
			s.last = s.cur
			c, err = s.readRaw()
			if err != nil {
				return EOF, err
			}
		}
	}
	if c == '\r' {
		s.crlf = true
		c = '\n'
	}

	s.cur.Offset++
	if c == '\n' {
		s.cur.Line++
		s.cur.Col = 1
	} else {
		s.cur.Col++
	}
	return c, nil
}

// Pos returns the position after the most recently read code point.
func (s *Source) Pos() Pos { return s.cur }

// Last returns the position of the most recently read code point.
func (s *Source) Last() Pos { return s.last }

// SkipNonExecutePrefix discards one of the guard sequences ")]}'",
// ")]}'\n", ")]}'\r" or ")]}'\r\n" from the front of the input, if present.
// Otherwise the input is left unchanged. It must be called before any code
// points have been read.
func (s *Source) SkipNonExecutePrefix() error {
	if s.cur.Offset != 0 {
		return errors.New("non-execute prefix must be skipped before reading")
	}
	want := len(nonExecutePrefixes[0])
	got := make([]rune, 0, want)
	var rerr error
	for len(got) < want {
		c, err := s.readRaw()
		if err != nil {
			rerr = err
			break
		}
		got = append(got, c)
	}
	s.pending = append(got, s.pending...)
	if rerr != nil && rerr != io.EOF {
		return rerr
	}

	for _, pfx := range nonExecutePrefixes {
		if !hasRunePrefix(got, pfx) {
			continue
		}
		// Consume the marker through Read so positions stay accurate.
		// A CRLF is a single logical code point.
		n := len(pfx)
		if pfx[n-1] == '\n' && pfx[n-2] == '\r' {
			n--
		}
		for range n {
			if _, err := s.Read(); err != nil {
				return err
			}
		}
		break
	}
	return nil
}

// Close closes the underlying reader, if it is an io.Closer.
func (s *Source) Close() error {
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}

func (s *Source) readRaw() (rune, error) {
	if len(s.pending) != 0 {
		c := s.pending[0]
		s.pending = s.pending[1:]
		return c, nil
	}
	return s.next()
}

func hasRunePrefix(rs []rune, pfx string) bool {
	i := 0
	for _, c := range pfx {
		if i >= len(rs) || rs[i] != c {
			return false
		}
		i++
	}
	return true
}

// utf8Block decodes UTF-8 input in fixed-size blocks. A multi-byte sequence
// split across the end of a block is completed before the block is decoded.
type utf8Block struct {
	r        io.Reader
	buf      [blockSize + utf8.UTFMax]byte
	pos, end int
	err      error
}

func newUTF8Block(r io.Reader) *utf8Block { return &utf8Block{r: r} }

func (b *utf8Block) next() (rune, error) {
	if b.pos >= b.end {
		if err := b.fill(); err != nil {
			return EOF, err
		}
	}
	c, n := utf8.DecodeRune(b.buf[b.pos:b.end])
	b.pos += n
	return c, nil
}

func (b *utf8Block) fill() error {
	if b.err != nil {
		return b.err
	}
	n, err := io.ReadAtLeast(b.r, b.buf[:blockSize], 1)
	if n == 0 {
		b.err = err
		return err
	}

	// Look back for the lead byte of the last sequence, and finish it if it
	// is incomplete.
	lead := n - 1
	for lead > 0 && lead > n-utf8.UTFMax && !utf8.RuneStart(b.buf[lead]) {
		lead--
	}
	for !utf8.FullRune(b.buf[lead:n]) && n-lead < utf8.UTFMax {
		m, err := io.ReadFull(b.r, b.buf[n:n+1])
		n += m
		if err != nil {
			if err != io.EOF {
				b.err = err
			}
			break
		}
	}
	b.pos, b.end = 0, n
	return nil
}

// utf16Block decodes UTF-16 input in fixed-size blocks of 16-bit units and
// joins surrogate pairs. When the last unit of a block is a high surrogate,
// one more unit is fetched so that a pair is never split across blocks.
type utf16Block struct {
	r        io.Reader
	order    binary.ByteOrder
	raw      [2 * blockSize]byte
	units    [blockSize + 1]uint16
	pos, end int
	err      error
}

func newUTF16Block(r io.Reader, order binary.ByteOrder) *utf16Block {
	return &utf16Block{r: r, order: order}
}

func isHighSurrogate(r rune) bool { return r >= 0xD800 && r < 0xDC00 }
func isLowSurrogate(r rune) bool  { return r >= 0xDC00 && r < 0xE000 }

func (b *utf16Block) next() (rune, error) {
	if b.pos >= b.end {
		if err := b.fill(); err != nil {
			return EOF, err
		}
	}
	u := rune(b.units[b.pos])
	b.pos++
	switch {
	case isHighSurrogate(u):
		if b.pos < b.end && isLowSurrogate(rune(b.units[b.pos])) {
			lo := rune(b.units[b.pos])
			b.pos++
			return utf16.DecodeRune(u, lo), nil
		}
		return utf8.RuneError, nil
	case isLowSurrogate(u):
		return utf8.RuneError, nil
	}
	return u, nil
}

func (b *utf16Block) fill() error {
	if b.err != nil {
		return b.err
	}
	n, err := io.ReadAtLeast(b.r, b.raw[:], 2)
	if n == 0 {
		b.err = err
		return err
	} else if err == io.ErrUnexpectedEOF {
		b.err = io.EOF // a single dangling byte remains
	} else if err != nil {
		b.err = err
	} else if n%2 == 1 {
		m, err := io.ReadFull(b.r, b.raw[n:n+1])
		n += m
		if err != nil {
			b.err = err
		}
	}

	b.end = 0
	for i := 0; i+1 < n; i += 2 {
		b.units[b.end] = b.order.Uint16(b.raw[i:])
		b.end++
	}
	if n%2 == 1 {
		b.units[b.end] = utf8.RuneError
		b.end++
	} else if b.err == nil && isHighSurrogate(rune(b.units[b.end-1])) {
		var lo [2]byte
		m, err := io.ReadFull(b.r, lo[:])
		if m == 2 {
			b.units[b.end] = b.order.Uint16(lo[:])
			b.end++
		} else if m == 1 {
			b.units[b.end] = utf8.RuneError
			b.end++
		}
		if err != nil {
			b.err = err
		}
	}
	b.pos = 0
	return nil
}
