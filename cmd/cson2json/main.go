// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Program cson2json reads a CSON document and writes it as JSON.
//
// Usage:
//
//	cson2json [--value] [--indent N] [-o output] [input]
//
// If input is omitted or "-", the document is read from stdin. The output
// is written to stdout unless -o is given.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/creachadair/cson"
)

var cli struct {
	Input  string `arg:"" optional:"" default:"-" help:"Input file path (default stdin)."`
	Value  bool   `help:"Parse the input as a single value rather than a document."`
	Indent int    `default:"2" help:"Spaces of indentation per level (0 for compact output)."`
	Output string `short:"o" type:"path" help:"Output file path (default stdout)."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("cson2json"),
		kong.Description("Convert a CSON document to JSON."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(run())
}

func run() error {
	in, name := io.Reader(os.Stdin), "stdin"
	if cli.Input != "-" {
		f, err := os.Open(cli.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		in, name = f, cli.Input
	}

	var out io.Writer = os.Stdout
	if cli.Output != "" {
		f, err := os.Create(cli.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	bw := bufio.NewWriter(out)
	if err := convert(in, bw, options{value: cli.Value, indent: cli.Indent}); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return bw.Flush()
}

type options struct {
	value  bool // parse a single value instead of a document
	indent int  // spaces per level; 0 means compact
}

// convert parses CSON from r and writes the equivalent JSON to w, followed by
// a newline.
func convert(r io.Reader, w io.Writer, opts options) error {
	parse := cson.ParseDocument
	if opts.value {
		parse = cson.ParseValue
	}
	v, err := parse(r)
	if err != nil {
		return err
	}
	if opts.indent < 0 {
		return fmt.Errorf("invalid indent %d", opts.indent)
	}
	data, err := cson.ToJSONIndent(v, strings.Repeat(" ", opts.indent))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
