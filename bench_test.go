// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package cson_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/creachadair/cson"
)

// benchInput returns a JSON array of n records. JSON is used so that the
// same input can be given to both parsers.
func benchInput(n int) []byte {
	var sb strings.Builder
	sb.WriteString("[\n")
	for i := range n {
		if i > 0 {
			sb.WriteString(",\n")
		}
		fmt.Fprintf(&sb, `{"id": %d, "name": "record %d", "score": %d.%d, "ok": %v, `+
			`"tags": ["alpha", "betaé", null], "nested": {"depth": [1, 2, 3]}}`,
			i, i, i%100, i%7, i%2 == 0)
	}
	sb.WriteString("\n]\n")
	return []byte(sb.String())
}

func BenchmarkParse(b *testing.B) {
	input := benchInput(2000)
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Unmarshal", func(b *testing.B) {
		b.SetBytes(int64(len(input)))
		for b.Loop() {
			dec := json.NewDecoder(bytes.NewReader(input))
			dec.UseNumber()
			var v any
			if err := dec.Decode(&v); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("ParseValue", func(b *testing.B) {
		b.SetBytes(int64(len(input)))
		for b.Loop() {
			if _, err := cson.ParseValue(bytes.NewReader(input)); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}

func BenchmarkImplicitObject(b *testing.B) {
	var sb strings.Builder
	for i := range 5000 {
		fmt.Fprintf(&sb, "key-%d = |verbatim text %d\n  |second line\n# comment %d\n,\n", i, i, i)
	}
	input := []byte(sb.String())
	b.SetBytes(int64(len(input)))
	for b.Loop() {
		if _, err := cson.ParseDocument(bytes.NewReader(input)); err != nil {
			b.Fatalf("Unexpected error: %v", err)
		}
	}
}
