// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package cursor navigates parsed CSON values by key and index.
//
// A path is a list of steps applied in order. Each step is one of:
//
//	string, cson.Key                       select an object member by key
//	int                                    select an array element, or the
//	                                       member at that rank in key order
//	func(cson.Value) (cson.Value, error)   compute the next value
//	nil                                    do nothing
//
// A negative index counts from the end, so -1 selects the last element.
package cursor

import (
	"fmt"

	"github.com/creachadair/cson"
)

// Path applies path to v and returns the value it reaches, which must have
// type T.
func Path[T cson.Value](v cson.Value, path ...any) (T, error) {
	var zero T
	c := New(v).Down(path...)
	if err := c.Err(); err != nil {
		return zero, err
	}
	out, ok := c.Value().(T)
	if !ok {
		return zero, fmt.Errorf("got value of type %T, want %T", c.Value(), zero)
	}
	return out, nil
}

// A Cursor records a position inside a value, as the stack of values visited
// on the way down from its origin.
type Cursor struct {
	origin  cson.Value
	visited []cson.Value
	err     error
}

// New returns a Cursor positioned at origin.
func New(origin cson.Value) *Cursor { return &Cursor{origin: origin} }

// Origin returns the value c was created with.
func (c *Cursor) Origin() cson.Value { return c.origin }

// AtOrigin reports whether c has not moved below its origin.
func (c *Cursor) AtOrigin() bool { return len(c.visited) == 0 }

// Value returns the value at the current position.
func (c *Cursor) Value() cson.Value {
	if n := len(c.visited); n > 0 {
		return c.visited[n-1]
	}
	return c.origin
}

// Path returns the origin followed by each value visited to reach the
// current position.
func (c *Cursor) Path() []cson.Value {
	return append([]cson.Value{c.origin}, c.visited...)
}

// Err returns the error that stopped the last call to Down, or nil.
func (c *Cursor) Err() error { return c.err }

// Up moves c to the parent of its current position. At the origin it does
// nothing.
func (c *Cursor) Up() *Cursor {
	if n := len(c.visited); n > 0 {
		c.visited = c.visited[:n-1]
	}
	return c
}

// Reset returns c to its origin and clears its error.
func (c *Cursor) Reset() { c.visited = c.visited[:0]; c.err = nil }

// Down applies the steps of path in order, starting at the current position.
// On failure c stays at the last value reached, and Err reports why.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil
	for _, elt := range path {
		if elt == nil {
			continue
		}
		next, err := step(c.Value(), elt)
		if err != nil {
			c.err = err
			break
		}
		c.visited = append(c.visited, next)
	}
	return c
}

// step resolves a single path element against v.
func step(v cson.Value, elt any) (cson.Value, error) {
	switch t := elt.(type) {
	case string:
		return member(v, cson.Key(t))
	case cson.Key:
		return member(v, t)
	case int:
		return element(v, t)
	case func(cson.Value) (cson.Value, error):
		return t(v)
	}
	return nil, fmt.Errorf("invalid path element %T", elt)
}

func member(v cson.Value, key cson.Key) (cson.Value, error) {
	obj, ok := v.(*cson.Object)
	if !ok {
		return nil, fmt.Errorf("cannot select key %q from %s", key, kindOf(v))
	}
	next, ok := obj.Get(key)
	if !ok {
		return nil, fmt.Errorf("key %q not found", key)
	}
	return next, nil
}

func element(v cson.Value, i int) (cson.Value, error) {
	switch e := v.(type) {
	case cson.Array:
		if j, ok := index(len(e), i); ok {
			return e[j], nil
		}
		return nil, fmt.Errorf("array index %d out of range (n=%d)", i, len(e))
	case *cson.Object:
		keys := e.Keys()
		if j, ok := index(len(keys), i); ok {
			next, _ := e.Get(keys[j])
			return next, nil
		}
		return nil, fmt.Errorf("object index %d out of range (n=%d)", i, len(keys))
	}
	return nil, fmt.Errorf("cannot select index %d from %s", i, kindOf(v))
}

func kindOf(v cson.Value) string {
	if v == nil {
		return "nil"
	}
	return v.Kind().String()
}

// index maps i, which may count from the end, into [0, n).
func index(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
