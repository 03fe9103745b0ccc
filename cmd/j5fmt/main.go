// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program j5fmt reformats streams of JSON and JSON5 documents.
//
// Usage:
//
//	j5fmt [flags] [file ...]
//
// Each named file, or standard input if none are named, is read as a stream
// of concatenated documents. Each document is written to standard output in
// the selected dialect, followed by a newline.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/creachadair/jfive"
	"github.com/creachadair/jfive/ast"
	"github.com/creachadair/jfive/format"
)

var (
	inJSON5    = flag.Bool("json5", false, "Read input as JSON5")
	anyValue   = flag.Bool("any", false, "Accept any value at the top level, not only objects and arrays")
	skipPrefix = flag.Bool("skip-prefix", false, "Discard a leading )]}' guard from each input")
	inEncoding = flag.String("encoding", "utf8", "Input encoding (utf8, utf16be, utf16le, detect)")
	outDialect = flag.String("out", "json", "Output dialect (json, json5)")
	indent     = flag.Int("indent", 2, "Spaces of indentation per level")
	compact    = flag.Bool("compact", false, "Write each document on one line")
	trailing   = flag.Bool("trailing-commas", false, "Write trailing commas (JSON5 output only)")
	asciiOnly  = flag.Bool("ascii", false, "Escape non-ASCII characters in strings")
	sortKeys   = flag.Bool("sort", false, "Sort object members by key")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [file ...]\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("j5fmt: ")

	cfg, err := inputConfig()
	if err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}
	f, err := outputFormat()
	if err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	if flag.NArg() == 0 {
		if err := reformat(out, os.Stdin, cfg, f); err != nil {
			out.Flush()
			log.Fatalf("<stdin>: %v", err)
		}
		return
	}
	for _, path := range flag.Args() {
		in, err := os.Open(path)
		if err != nil {
			out.Flush()
			log.Fatalf("Open input: %v", err)
		}
		err = reformat(out, in, cfg, f)
		in.Close()
		if err != nil {
			out.Flush()
			log.Fatalf("%s: %v", path, err)
		}
	}
}

func inputConfig() (jfive.Config, error) {
	cfg := jfive.Config{
		JSON5:                *inJSON5,
		AnyValue:             *anyValue,
		SkipNonExecutePrefix: *skipPrefix,
	}
	enc, err := parseEncoding(*inEncoding)
	if err != nil {
		return cfg, err
	}
	cfg.Encoding = enc
	return cfg, nil
}

func outputFormat() (format.Formatter, error) {
	f := format.Formatter{
		Indent:         *indent,
		Compact:        *compact,
		TrailingCommas: *trailing,
		ASCII:          *asciiOnly,
		SortKeys:       *sortKeys,
	}
	switch strings.ToLower(*outDialect) {
	case "json":
	case "json5":
		f.JSON5 = true
	default:
		return f, fmt.Errorf("unknown output dialect %q", *outDialect)
	}
	if *indent < 0 {
		return f, fmt.Errorf("invalid indent %d", *indent)
	}
	return f, nil
}

func parseEncoding(s string) (jfive.Encoding, error) {
	switch strings.ToLower(strings.ReplaceAll(s, "-", "")) {
	case "utf8", "":
		return jfive.UTF8, nil
	case "utf16be":
		return jfive.UTF16BE, nil
	case "utf16le":
		return jfive.UTF16LE, nil
	case "detect":
		return jfive.EncodingDetect, nil
	}
	return 0, fmt.Errorf("unknown encoding %q", s)
}

// reformat copies each document of r to w, formatted by f.
func reformat(w io.Writer, r io.Reader, cfg jfive.Config, f format.Formatter) error {
	d := ast.NewDecoder(r, cfg)
	for {
		v, err := d.Decode()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
		if err := f.Format(w, v); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
}
