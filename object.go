// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package cson

import (
	"iter"
	"strings"

	"github.com/creachadair/cson/internal/escape"
	"github.com/emirpasic/gods/v2/maps/treemap"
)

// A Key is the name of an object member. Keys compare by their text, no
// matter whether they were written bare or quoted in the source.
type Key string

// An Object is a collection of members with unique keys, kept in order of
// their keys (not in the order they were written). Setting a key that is
// already present replaces its value.
//
// The zero Object is an empty object ready for use.
type Object struct {
	m *treemap.Map[Key, Value]
}

// NewObject constructs a new empty object.
func NewObject() *Object { return &Object{m: treemap.New[Key, Value]()} }

func (o *Object) tree() *treemap.Map[Key, Value] {
	if o.m == nil {
		o.m = treemap.New[Key, Value]()
	}
	return o.m
}

// Set sets the value of key in o to v, replacing any previous value.
func (o *Object) Set(key Key, v Value) { o.tree().Put(key, v) }

// Get reports the value of key in o, and whether key is present.
func (o *Object) Get(key Key) (Value, bool) {
	if o.m == nil {
		return nil, false
	}
	return o.m.Get(key)
}

// Len reports the number of members in o.
func (o *Object) Len() int {
	if o.m == nil {
		return 0
	}
	return o.m.Size()
}

// Keys returns the keys of o in increasing order.
func (o *Object) Keys() []Key {
	if o.m == nil {
		return nil
	}
	return o.m.Keys()
}

// All is a range function over the members of o in increasing order of key.
func (o *Object) All() iter.Seq2[Key, Value] {
	return func(yield func(Key, Value) bool) {
		if o.m == nil {
			return
		}
		it := o.m.Iterator()
		for it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// Kind satisfies the Value interface. It returns ObjectKind.
func (*Object) Kind() Kind { return ObjectKind }

// Interface satisfies the Value interface. It returns a map[string]any.
func (o *Object) Interface() any {
	out := make(map[string]any, o.Len())
	for key, v := range o.All() {
		out[string(key)] = v.Interface()
	}
	return out
}

func (*Object) isValue() {}

// String renders o in a compact diagnostic form, with members in key order.
func (o *Object) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for key, v := range o.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(escape.Quote(string(key)))
		sb.WriteString(": ")
		sb.WriteString(toString(v))
	}
	sb.WriteByte('}')
	return sb.String()
}
