// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package cson

import "fmt"

// ReaderError is the concrete type of errors reported by a Reader. Cause
// describes the problem. If the problem was a failure of the underlying
// input, Err is the error reported by the input.
type ReaderError struct {
	Cause string
	Pos   Location // of the first unread byte when the problem was found
	Err   error
}

// Error satisfies the error interface.
func (e *ReaderError) Error() string {
	msg := e.Cause
	if e.Pos.Line > 0 {
		msg = fmt.Sprintf("at %s: %s", e.Pos.LineCol, e.Cause)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s (%v)", msg, e.Err)
	}
	return msg
}

// Unwrap supports error wrapping.
func (e *ReaderError) Unwrap() error { return e.Err }

// failf aborts the current parse with a *ReaderError. The error is recovered
// and returned by the exported parse method.
func (r *Reader) failf(msg string, args ...any) {
	if len(args) != 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	panic(&ReaderError{Cause: msg, Pos: r.location()})
}

// failIO aborts the current parse with an error from the input.
func (r *Reader) failIO(err error) {
	panic(&ReaderError{Cause: "I/O error", Pos: r.location(), Err: err})
}

func recoverParseError(errp *error) {
	if x := recover(); x != nil {
		if err, ok := x.(*ReaderError); ok {
			*errp = err
			return
		}
		panic(x)
	}
}
