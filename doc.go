// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package jgram implements a JSON value model with a grammar-driven
// parser and formatter.
//
// # Values
//
// The Value type is a tagged container for any of the six JSON kinds:
// null, boolean, number, string, array, and object. The zero Value is
// null. Use New to construct a Value from a Go value:
//
//	v := jgram.New(jgram.Object{
//	   "name": jgram.New("Aloysius"),
//	   "tags": jgram.New(jgram.Array{jgram.New(1), jgram.New(2)}),
//	})
//
// Array and object values are reference kinds: copying the Value
// shares the underlying container, so mutations made through one copy
// are visible through all the others. The remaining kinds are plain
// values, and copies are independent. Equality (the Equal method) is
// by content for all kinds, including the reference kinds.
//
// Accessors report a *TypeError if the value's kind does not match:
//
//	s, err := v.AsString() // *TypeError: v is an object
//
// The Element and Property accessors mutate on lookup: indexing an
// array past its length grows it with nulls, and looking up a missing
// property inserts a null member. Use Path for pure traversal.
//
// # Parsing
//
// A Parser owns a table of named grammar rules and the state those
// rules share while matching: a token buffer, a line counter, and the
// stacks of open containers and property names. Construct a parser
// with NewParser and call ParseObject to read a single object from
// the front of a stream, or Parse to read exactly one value of any
// kind:
//
//	v, err := jgram.NewParser().ParseObject(r)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// Grammar failures are reported as *SyntaxError; tokens that match
// the grammar but do not denote a usable value (a number out of
// range, a malformed escape) are reported as *ConversionError.
// Call SetTrace to log each rule invocation to a writer while
// diagnosing a parse.
//
// # Formatting
//
// A Formatter renders a Value as JSON text. The zero Formatter writes
// compact output with a space after commas and colons. The Multiline
// option puts each element on its own line, and Indented additionally
// indents one tab per nesting level:
//
//	f := jgram.Formatter{Multiline: true, Indented: true}
//	err := f.Format(os.Stdout, v)
//
// Object members are always rendered in sorted key order, so
// formatting the same value twice yields identical text.
//
// The Encode and Decode functions adapt the formatter and parser to
// stream boundaries: Encode writes the compact form, and Decode reads
// one object, absorbing any parse error into a false report and a
// null result.
package jgram
