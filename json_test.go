// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package cson_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/creachadair/cson"
)

func TestFromInterface(t *testing.T) {
	tests := []struct {
		input any
		want  cson.Value
	}{
		{nil, cson.Null{}},
		{true, cson.Bool(true)},
		{17, cson.Int(17)},
		{int64(-4), cson.Int(-4)},
		{uint(4), cson.Uint(4)},
		{uint64(math.MaxUint64), cson.Uint(math.MaxUint64)},
		{2.5, cson.Float(2.5)},
		{"s", cson.String("s")},
		{json.Number("12"), cson.Int(12)},
		{json.Number("18446744073709551615"), cson.Uint(math.MaxUint64)},
		{json.Number("1e3"), cson.Float(1000)},
		{json.Number("1e999"), cson.Float(math.Inf(1))},
		{[]any{}, arr()},
		{[]any{1, "x", nil}, arr(cson.Int(1), cson.String("x"), cson.Null{})},
		{map[string]any{"b": []any{false}, "a": map[string]any{}},
			obj("a", obj(), "b", arr(cson.Bool(false)))},
		{cson.String("already"), cson.String("already")},
	}
	for _, test := range tests {
		got, err := cson.FromInterface(test.input)
		if err != nil {
			t.Errorf("FromInterface(%v): unexpected error: %v", test.input, err)
			continue
		}
		if diff := valueDiff(test.want, got); diff != "" {
			t.Errorf("FromInterface(%v): (-want, +got)\n%s", test.input, diff)
		}
	}

	for _, bad := range []any{
		struct{}{},
		[]any{1, complex(1, 2)},
		map[string]any{"ok": 1, "bad": []int{1}},
		json.Number("1x"),
	} {
		if got, err := cson.FromInterface(bad); err == nil {
			t.Errorf("FromInterface(%v): got %v, want error", bad, got)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"[]",
		"{}",
		"a: 1, b: -2.5, c: 'three', d: [true, false, null]",
		"deep: {er: {est: [[], [{}], [1e-3]]}}",
		"big: 9007199254740993, small: -9007199254740991",
		"text: |one\n      |two\n",
	}
	for _, input := range inputs {
		v := cson.MustParseDocument(input)
		back, err := cson.FromInterface(v.Interface())
		if err != nil {
			t.Errorf("FromInterface %#q: unexpected error: %v", input, err)
			continue
		}
		if diff := valueDiff(v, back); diff != "" {
			t.Errorf("Round trip %#q: (-want, +got)\n%s", input, diff)
		}
	}
}

func TestToJSON(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"[]", `[]`},
		{"{}", `{}`},
		{"z: 1, a: [true, null], m: 'x<y'", `{"a":[true,null],"m":"x<y","z":1}`},
		{"f: 1.5, e: 1e3, i: -7", `{"e":1000,"f":1.5,"i":-7}`},
		{"s: |line\n   |next", `{"s":"line\nnext"}`},
	}
	for _, test := range tests {
		got, err := cson.ToJSON(cson.MustParseDocument(test.input))
		if err != nil {
			t.Errorf("ToJSON %#q: unexpected error: %v", test.input, err)
			continue
		}
		if string(got) != test.want {
			t.Errorf("ToJSON %#q: got %#q, want %#q", test.input, got, test.want)
		}
	}

	if _, err := cson.ToJSON(cson.Float(math.Inf(1))); err == nil {
		t.Error("ToJSON(+Inf): got nil, want error")
	}
}

func TestToJSONIndent(t *testing.T) {
	got, err := cson.ToJSONIndent(cson.MustParseDocument("b: [1], a: {}"), "  ")
	if err != nil {
		t.Fatalf("ToJSONIndent: unexpected error: %v", err)
	}
	const want = `{
  "a": {},
  "b": [
    1
  ]
}`
	if string(got) != want {
		t.Errorf("ToJSONIndent: got\n%s\nwant\n%s", got, want)
	}
}

func TestFromJSON(t *testing.T) {
	tests := []struct {
		input string
		want  cson.Value
	}{
		{`null`, cson.Null{}},
		{`[1, 2.5, "x"]`, arr(cson.Int(1), cson.Float(2.5), cson.String("x"))},
		{`{"b": 1, "a": {"c": []}}`, obj("a", obj("c", arr()), "b", cson.Int(1))},
		{`18446744073709551615`, cson.Uint(math.MaxUint64)},
		{`
// Comments and trailing commas are accepted.
{
  "list": [1, 2,], /* inline */
  "ok": true,
}`, obj("list", arr(cson.Int(1), cson.Int(2)), "ok", cson.Bool(true))},
	}
	for _, test := range tests {
		got, err := cson.FromJSON([]byte(test.input))
		if err != nil {
			t.Errorf("FromJSON %#q: unexpected error: %v", test.input, err)
			continue
		}
		if diff := valueDiff(test.want, got); diff != "" {
			t.Errorf("FromJSON %#q: (-want, +got)\n%s", test.input, diff)
		}
	}

	for _, bad := range []string{``, `{`, `[1] [2]`, `{a: 1}`, `'x'`} {
		if got, err := cson.FromJSON([]byte(bad)); err == nil {
			t.Errorf("FromJSON %#q: got %v, want error", bad, got)
		}
	}
}

func TestFromJSONPreservesInput(t *testing.T) {
	input := []byte(`[1, /* c */ 2,]`)
	orig := string(input)
	if _, err := cson.FromJSON(input); err != nil {
		t.Fatalf("FromJSON: unexpected error: %v", err)
	}
	if string(input) != orig {
		t.Errorf("FromJSON modified its input: got %#q, want %#q", input, orig)
	}
}

func TestJSONAgreement(t *testing.T) {
	// Every JSON text is also valid input, with the same meaning.
	const input = `{"name": "jtree", "tags": ["a", "b"], "n": 12, "x": 0.125, "nil": null, "u": "é😀"}`
	want, err := cson.FromJSON([]byte(input))
	if err != nil {
		t.Fatalf("FromJSON: unexpected error: %v", err)
	}
	got := cson.MustParseValue(input)
	if diff := valueDiff(want, got); diff != "" {
		t.Errorf("Parse vs FromJSON: (-want, +got)\n%s", diff)
	}
}
