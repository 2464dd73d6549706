// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package cson implements a parser for CSON, a configuration format that
// extends JSON with a more relaxed syntax.
//
// # Syntax
//
// Every JSON text is a valid CSON value. In addition, CSON permits:
//
//   - Object keys written without quotes ("bare strings"), made of letters,
//     digits and the punctuation "$", "-", "_", and ".", along with most
//     non-ASCII letters. A bare key may not begin with a digit or ".".
//   - "=" in place of ":" between a key and its value.
//   - Comments, from "#" to the end of the line.
//   - A line break in place of a comma between members or elements, and a
//     trailing comma before the closing brace or bracket.
//   - Strings quoted with single quotes, and the escape \' in any string.
//   - Verbatim strings: each line beginning with "|" contributes the rest of
//     the line, unprocessed, and consecutive lines are joined with newlines.
//     The line break that ends a verbatim string is part of it, so a comma
//     is needed before whatever follows in the same object or array.
//   - A document consisting of object members without enclosing braces.
//
// For example:
//
//	# Server settings
//	name = 'primary'
//	ports = [8080
//	         8443]
//	limits: {open-files: 1024, "max rate": 2.5e3}
//	motd = |Welcome!
//	       |Be nice.
//
// # Parsing
//
// Construct a Reader from an io.Reader and call its ParseDocument or
// ParseValue method. ParseDocument accepts a braced object, an array, or a
// sequence of object members without braces. ParseValue accepts exactly one
// value of any kind. Both require that nothing but whitespace and comments
// follow what they parse:
//
//	v, err := cson.NewReader(input).ParseDocument()
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// The reader consumes its input in a single pass through a buffer, and does
// not read the whole input into memory first. In case of error, no value is
// returned, and the error has concrete type *cson.ReaderError, which gives
// the line and column where the problem was found.
//
// # Values
//
// A parsed value is a tree of Value nodes. The concrete types are:
//
//	CSON type  | Go type       | Kind
//	---------- | ------------- | -------------------------
//	null       | Null          | NullKind
//	true/false | Bool          | TrueKind, FalseKind
//	number     | Int or Float  | IntKind, FloatKind
//	string     | String        | StringKind
//	array      | Array         | ArrayKind
//	object     | *Object       | ObjectKind
//
// A number without a fraction or exponent whose magnitude is less than 2^53
// is an Int. Every other number is a Float, including integers too large to
// be represented exactly by a float64.
//
// The members of an Object are kept in order of their keys, not in the order
// they appear in the input. If a key occurs more than once, the last value
// wins.
//
// The Uint type is never produced by the parser. It represents unsigned
// integers from JSON data converted with FromJSON or FromInterface.
package cson
