// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package cson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/tailscale/hujson"
)

// FromInterface converts a plain Go value of the kind produced by
// encoding/json into a Value. A json.Number becomes an Int if it parses as a
// signed integer, otherwise a Uint if it parses as an unsigned integer,
// otherwise a Float. If x is already a Value, it is returned unchanged.
func FromInterface(x any) (Value, error) {
	switch t := x.(type) {
	case Value:
		return t, nil
	case nil:
		return Null{}, nil
	case bool:
		return Bool(t), nil
	case int:
		return Int(t), nil
	case int64:
		return Int(t), nil
	case uint:
		return Uint(t), nil
	case uint64:
		return Uint(t), nil
	case float64:
		return Float(t), nil
	case json.Number:
		return fromNumber(t)
	case string:
		return String(t), nil
	case []any:
		out := make(Array, len(t))
		for i, elt := range t {
			v, err := FromInterface(elt)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			out[i] = v
		}
		return out, nil
	case map[string]any:
		obj := NewObject()
		for key, elt := range t {
			v, err := FromInterface(elt)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}
			obj.Set(Key(key), v)
		}
		return obj, nil
	}
	return nil, fmt.Errorf("unsupported type %T", x)
}

func fromNumber(n json.Number) (Value, error) {
	if z, err := strconv.ParseInt(string(n), 10, 64); err == nil {
		return Int(z), nil
	}
	if u, err := strconv.ParseUint(string(n), 10, 64); err == nil {
		return Uint(u), nil
	}
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, fmt.Errorf("invalid number %q: %w", n, err)
	}
	return Float(f), nil
}

// FromJSON decodes a single JSON value from data and converts it to a Value.
// The input may use the JWCC extensions (comments and trailing commas).
func FromJSON(data []byte) (Value, error) {
	// Standardize may rewrite its argument in place.
	std, err := hujson.Standardize(bytes.Clone(data))
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(std))
	dec.UseNumber()
	var x any
	if err := dec.Decode(&x); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("extra data after JSON value")
	}
	return FromInterface(x)
}

// ToJSON encodes v as compact JSON text. Object members are written in
// order of their keys.
func ToJSON(v Value) ([]byte, error) { return ToJSONIndent(v, "") }

// ToJSONIndent encodes v as JSON text, with each nesting level indented by
// indent. If indent == "", the output is compact.
func ToJSONIndent(v Value, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v.Interface()); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
