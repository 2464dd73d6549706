// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package cursor_test

import (
	"errors"
	"testing"

	"github.com/creachadair/cson"
	"github.com/creachadair/cson/cursor"
)

const testDoc = `
list: [
  {x: 1}
  {x: 2}
]
y: {hello: 'there'}
o: ['hi', 'yourself']
xyz = {p: true, d: true, q: false}
`

func mustGet(v cson.Value, key cson.Key) cson.Value {
	out, ok := v.(*cson.Object).Get(key)
	if !ok {
		panic("missing key " + string(key))
	}
	return out
}

func TestCursor(t *testing.T) {
	v := cson.MustParseDocument(testDoc)

	tests := []struct {
		name string
		path []any
		want cson.Value
		fail bool
	}{
		{"NilInput", nil, v, false},
		{"NoMatch", []any{"nonesuch"}, v, true},
		{"WrongType", []any{11}, v, true},
		{"BadElement", []any{3.5}, v, true},

		{"ArrayPos", []any{"list", 1}, mustGet(v, "list").(cson.Array)[1], false},
		{"ArrayNeg", []any{"list", -1}, mustGet(v, "list").(cson.Array)[1], false},
		{"ArrayRange", []any{"o", 25}, mustGet(v, "o"), true},
		{"ObjPath", []any{"xyz", "d"}, cson.Bool(true), false},
		{"KeyPath", []any{cson.Key("y"), cson.Key("hello")}, cson.String("there"), false},
		{"NilSkip", []any{"y", nil, "hello", nil}, cson.String("there"), false},
		{"ObjIndex", []any{"xyz", 0}, cson.Bool(true), false},
		{"ObjIndexNeg", []any{"xyz", -1}, cson.Bool(false), false},
		{"ObjRange", []any{"xyz", 3}, mustGet(v, "xyz"), true},
		{"KeyOnArray", []any{"o", "x"}, mustGet(v, "o"), true},
		{"Deep", []any{"list", 0, "x"}, cson.Int(1), false},

		{"FuncArray", []any{"o", testPathFunc}, cson.Int(2), false},
		{"FuncObj", []any{"xyz", testPathFunc}, cson.Int(3), false},
		{"FuncWrong", []any{"xyz", "d", testPathFunc}, cson.Bool(true), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := cursor.New(v).Down(tc.path...)
			err := c.Err()
			if err != nil {
				if tc.fail {
					t.Logf("Got expected error: %v", err)
				} else {
					t.Fatalf("Down %+v: unexpected error: %v", tc.path, err)
				}
			} else if tc.fail {
				t.Errorf("Down %+v: got %v, want error", tc.path, c.Value())
			}
			if got := c.Value(); !cson.Equal(got, tc.want) {
				t.Errorf("Down %+v: got %v, want %v", tc.path, got, tc.want)
			}
		})
	}
}

func TestNavigation(t *testing.T) {
	v := cson.MustParseDocument(testDoc)
	c := cursor.New(v)
	if !c.AtOrigin() || c.Origin() != v {
		t.Fatal("New cursor is not at its origin")
	}

	c.Down("list", 0, "x")
	if err := c.Err(); err != nil {
		t.Fatalf("Down: unexpected error: %v", err)
	}
	if n := len(c.Path()); n != 4 {
		t.Errorf("Path: got %d values, want 4", n)
	}
	if got := c.Up().Up().Value(); !cson.Equal(got, mustGet(v, "list")) {
		t.Errorf("Up: got %v, want list", got)
	}

	// Traversal continues from the current position.
	if got := c.Down(-1, "x").Value(); !cson.Equal(got, cson.Int(2)) {
		t.Errorf("Down: got %v, want 2", got)
	}

	c.Down("bogus")
	if c.Err() == nil {
		t.Error("Down(bogus): got nil, want error")
	}
	c.Reset()
	if !c.AtOrigin() || c.Err() != nil {
		t.Errorf("Reset: at origin %v, error %v", c.AtOrigin(), c.Err())
	}
	if c.Up().Value() != v {
		t.Error("Up at origin moved the cursor")
	}
}

func TestPath(t *testing.T) {
	v := cson.MustParseDocument(testDoc)

	s, err := cursor.Path[cson.String](v, "y", "hello")
	if err != nil {
		t.Fatalf("Path: unexpected error: %v", err)
	} else if s != "there" {
		t.Errorf("Path: got %q, want there", s)
	}

	if _, err := cursor.Path[*cson.Object](v, "o"); err == nil {
		t.Error("Path: got nil, want type error")
	}
	if _, err := cursor.Path[cson.Array](v, "nonesuch"); err == nil {
		t.Error("Path: got nil, want lookup error")
	}
}

func testPathFunc(v cson.Value) (cson.Value, error) {
	switch t := v.(type) {
	case cson.Array:
		return cson.Int(len(t)), nil
	case *cson.Object:
		return cson.Int(t.Len()), nil
	default:
		return nil, errors.New("not a thing with length")
	}
}

func TestErrors(t *testing.T) {
	v := cson.MustParseDocument(testDoc)

	tests := []struct {
		path []any
		want string
	}{
		{[]any{"nonesuch"}, `key "nonesuch" not found`},
		{[]any{"o", "x"}, `cannot select key "x" from array`},
		{[]any{"y", "hello", 0}, `cannot select index 0 from string`},
		{[]any{"o", 2}, `array index 2 out of range (n=2)`},
		{[]any{"xyz", -4}, `object index -4 out of range (n=3)`},
		{[]any{"o", 1.5}, `invalid path element float64`},
	}
	for _, tc := range tests {
		c := cursor.New(v).Down(tc.path...)
		if err := c.Err(); err == nil || err.Error() != tc.want {
			t.Errorf("Down %+v: got error %v, want %q", tc.path, err, tc.want)
		}
	}

	if _, err := cursor.Path[*cson.Object](v, "o"); err == nil || err.Error() != "got value of type cson.Array, want *cson.Object" {
		t.Errorf("Path: got error %v, want a type error", err)
	}
}
