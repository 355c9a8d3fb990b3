// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jgram

import (
	"bytes"
	"io"
	"strconv"
)

// A Formatter renders Values as JSON text. The zero value writes
// compact output: containers on one line with a space after each
// comma, and object members as "key": value in sorted key order.
//
// Numbers are rendered in the shortest decimal form that reparses to
// the same value. A number that is not finite (never produced by the
// parser, but constructible with New) renders as text that is not
// valid JSON.
type Formatter struct {
	// Multiline puts every container element on its own line, with
	// the closing bracket on a line of its own.
	Multiline bool

	// Indented prefixes each element with one tab per nesting level.
	// It takes effect only together with Multiline.
	Indented bool
}

// Format writes the rendering of v to w using the settings from f.
func (f Formatter) Format(w io.Writer, v Value) error {
	var buf bytes.Buffer
	f.appendValue(&buf, v, 0)
	_, err := w.Write(buf.Bytes())
	return err
}

// FormatToString renders v to a string using the settings from f.
func (f Formatter) FormatToString(v Value) string {
	var buf bytes.Buffer
	f.appendValue(&buf, v, 0)
	return buf.String()
}

// Format writes the compact rendering of v to w.
func Format(w io.Writer, v Value) error {
	var f Formatter
	return f.Format(w, v)
}

// FormatToString renders v to a compact string.
func FormatToString(v Value) string {
	var f Formatter
	return f.FormatToString(v)
}

// Encode writes the compact JSON encoding of v to w. It is the
// counterpart of Decode.
func Encode(w io.Writer, v Value) error { return Format(w, v) }

// appendValue renders v at the given nesting level. The level is
// used only for indentation; it does not affect content.
func (f Formatter) appendValue(buf *bytes.Buffer, v Value, level int) {
	switch v.typ {
	case TypeNull:
		buf.WriteString("null")
	case TypeBoolean:
		buf.WriteString(strconv.FormatBool(v.b))
	case TypeNumber:
		buf.WriteString(strconv.FormatFloat(v.n, 'g', -1, 64))
	case TypeString:
		buf.WriteString(Quote(v.s))
	case TypeArray:
		f.appendArray(buf, *v.a, level)
	case TypeObject:
		f.appendObject(buf, v.o, level)
	}
}

func (f Formatter) appendArray(buf *bytes.Buffer, a Array, level int) {
	indented := f.Multiline && f.Indented
	buf.WriteByte('[')
	if f.Multiline {
		buf.WriteByte('\n')
	}
	for i, v := range a {
		if i > 0 {
			f.appendSep(buf)
		}
		if indented {
			appendTabs(buf, level+1)
		}
		f.appendValue(buf, v, level+1)
	}
	if f.Multiline {
		buf.WriteByte('\n')
	}
	if indented {
		appendTabs(buf, level)
	}
	buf.WriteByte(']')
}

func (f Formatter) appendObject(buf *bytes.Buffer, o Object, level int) {
	indented := f.Multiline && f.Indented
	buf.WriteByte('{')
	if f.Multiline {
		buf.WriteByte('\n')
	}
	for i, key := range o.Keys() {
		if i > 0 {
			f.appendSep(buf)
		}
		if indented {
			appendTabs(buf, level+1)
		}
		buf.WriteString(Quote(key))
		buf.WriteString(": ")
		f.appendValue(buf, o[key], level+1)
	}
	if f.Multiline {
		buf.WriteByte('\n')
	}
	if indented {
		appendTabs(buf, level)
	}
	buf.WriteByte('}')
}

func (f Formatter) appendSep(buf *bytes.Buffer) {
	buf.WriteByte(',')
	if f.Multiline {
		buf.WriteByte('\n')
	} else {
		buf.WriteByte(' ')
	}
}

func appendTabs(buf *bytes.Buffer, n int) {
	for range n {
		buf.WriteByte('\t')
	}
}
