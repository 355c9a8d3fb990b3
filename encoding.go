// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jgram

import (
	"errors"
	"io"
	"strings"

	"github.com/creachadair/jgram/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string literal. The contents are
// escaped and double quotation marks are added.
func Quote(src string) string {
	return `"` + string(escape.Quote(mem.S(src))) + `"`
}

// Unquote decodes a JSON string literal. The double quotation marks
// are removed and escape sequences are replaced with the text they
// denote. Unquote reports an error if src is not correctly delimited
// or contains an invalid or incomplete escape sequence.
func Unquote(src string) (string, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return "", errors.New("missing string delimiters")
	}
	dec, err := escape.Unquote(mem.S(src[1 : len(src)-1]))
	if err != nil {
		return "", err
	}
	return string(dec), nil
}

// Decode parses a single JSON object from the front of r into *v.
// On success it reports true. On any parse failure it resets *v to
// null and reports false, absorbing the underlying error.
//
// Pass a *bufio.Reader to decode successive objects from one stream;
// with any other reader, input beyond the first object may be lost to
// internal buffering.
func Decode(r io.Reader, v *Value) bool {
	val, err := NewParser().ParseObject(r)
	if err != nil {
		*v = Value{}
		return false
	}
	*v = val
	return true
}
