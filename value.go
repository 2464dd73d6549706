// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package cson

import (
	"fmt"
	"math"
	"strings"

	"github.com/creachadair/cson/internal/escape"
)

// Kind identifies the variant of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	InvalidKind Kind = iota // not a valid value
	NullKind                // null
	TrueKind                // true
	FalseKind               // false
	IntKind                 // signed 64-bit integer
	UintKind                // unsigned 64-bit integer
	FloatKind               // 64-bit floating point
	StringKind              // text
	ArrayKind               // ordered sequence of values
	ObjectKind              // key-ordered map of values
)

var kindStr = [...]string{
	InvalidKind: "invalid",
	NullKind:    "null",
	TrueKind:    "true",
	FalseKind:   "false",
	IntKind:     "int",
	UintKind:    "uint",
	FloatKind:   "float",
	StringKind:  "string",
	ArrayKind:   "array",
	ObjectKind:  "object",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[InvalidKind]
	}
	return kindStr[k]
}

// A Value is a node of a parsed value tree. The concrete type of a Value is
// one of Null, Bool, Int, Uint, Float, String, Array, or *Object.
type Value interface {
	// Kind reports the variant of the value.
	Kind() Kind

	// Interface converts the value to the plain Go representation used by
	// encoding/json: nil, bool, int64, uint64, float64, string, []any, or
	// map[string]any.
	Interface() any

	isValue()
}

// Null is the null value.
type Null struct{}

func (Null) Kind() Kind     { return NullKind }
func (Null) Interface() any { return nil }
func (Null) String() string { return "null" }
func (Null) isValue()       {}

// Bool is a Boolean constant. True and false are reported as distinct kinds.
type Bool bool

func (b Bool) Kind() Kind {
	if b {
		return TrueKind
	}
	return FalseKind
}

func (b Bool) Interface() any { return bool(b) }
func (Bool) isValue()         {}

// Int is a signed integer value. The reader produces an Int for integer
// literals whose magnitude is less than 2^53.
type Int int64

func (Int) Kind() Kind       { return IntKind }
func (z Int) Interface() any { return int64(z) }
func (Int) isValue()         {}

// Uint is an unsigned integer value. The reader never produces a Uint; it
// arises only from conversion of JSON data (see FromInterface).
type Uint uint64

func (Uint) Kind() Kind       { return UintKind }
func (u Uint) Interface() any { return uint64(u) }
func (Uint) isValue()         {}

// Float is a floating-point value.
type Float float64

func (Float) Kind() Kind       { return FloatKind }
func (f Float) Interface() any { return float64(f) }
func (Float) isValue()         {}

// String is a text value.
type String string

func (String) Kind() Kind       { return StringKind }
func (s String) Interface() any { return string(s) }
func (String) isValue()         {}

// String renders s as a double-quoted string literal.
func (s String) String() string { return escape.Quote(string(s)) }

// An Array is an ordered sequence of values.
type Array []Value

func (Array) Kind() Kind { return ArrayKind }

func (a Array) Interface() any {
	out := make([]any, len(a))
	for i, v := range a {
		out[i] = v.Interface()
	}
	return out
}

func (Array) isValue() {}

// String renders a in a compact diagnostic form.
func (a Array) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(toString(v))
	}
	sb.WriteByte(']')
	return sb.String()
}

func toString(v Value) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(v)
}

// Equal reports whether a and b are structurally equal. Values of different
// kinds are never equal, so Int(1) and Float(1) differ. Objects are equal if
// they have the same keys mapped to equal values.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	} else if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case Float:
		y := b.(Float)
		return x == y || (math.IsNaN(float64(x)) && math.IsNaN(float64(y)))
	case Array:
		y := b.(Array)
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case *Object:
		y := b.(*Object)
		if x.Len() != y.Len() {
			return false
		}
		for key, xv := range x.All() {
			yv, ok := y.Get(key)
			if !ok || !Equal(xv, yv) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
