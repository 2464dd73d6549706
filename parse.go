// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package cson

import (
	"bytes"
	"io"
	"strings"
)

// ParseDocument parses a complete document from r.
// It is shorthand for NewReader(r).ParseDocument().
func ParseDocument(r io.Reader) (Value, error) { return NewReader(r).ParseDocument() }

// ParseValue parses a single value from r.
// It is shorthand for NewReader(r).ParseValue().
func ParseValue(r io.Reader) (Value, error) { return NewReader(r).ParseValue() }

// ParseDocumentBytes parses a complete document from data.
func ParseDocumentBytes(data []byte) (Value, error) {
	return ParseDocument(bytes.NewReader(data))
}

// ParseValueBytes parses a single value from data.
func ParseValueBytes(data []byte) (Value, error) {
	return ParseValue(bytes.NewReader(data))
}

// MustParseDocument parses a complete document from s, and panics if that
// fails. It is intended for tests and static initialization.
func MustParseDocument(s string) Value {
	v, err := ParseDocument(strings.NewReader(s))
	if err != nil {
		panic(err)
	}
	return v
}

// MustParseValue parses a single value from s, and panics if that fails.
// It is intended for tests and static initialization.
func MustParseValue(s string) Value {
	v, err := ParseValue(strings.NewReader(s))
	if err != nil {
		panic(err)
	}
	return v
}
