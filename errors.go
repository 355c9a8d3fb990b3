// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jgram

import "fmt"

// A TypeError reports an access of a Value through an accessor for
// the wrong kind. It always indicates a defect at the call site, not
// a property of the input.
type TypeError struct {
	Op   string // the accessor that failed
	Want Type   // the kind the accessor requires
	Got  Type   // the kind the value holds
}

// Error satisfies the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: cannot use %v value as %v", e.Op, e.Got, e.Want)
}

// A SyntaxError reports input that does not match the JSON grammar at
// a position where the grammar permits no alternative.
type SyntaxError struct {
	Line    int // 1-based line number at the point of failure
	Message string

	err error
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Unwrap supports error wrapping.
func (e *SyntaxError) Unwrap() error { return e.err }

// A ConversionError reports a token that matched the grammar but
// could not be converted to its value, such as a number out of range
// or a malformed escape sequence.
type ConversionError struct {
	Line    int // 1-based line number at the point of failure
	Message string

	err error
}

// Error satisfies the error interface.
func (e *ConversionError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("line %d: %s: %v", e.Line, e.Message, e.err)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Unwrap supports error wrapping.
func (e *ConversionError) Unwrap() error { return e.err }
