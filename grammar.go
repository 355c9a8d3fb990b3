// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jgram

// A CharClass reports whether ch belongs to a class of characters.
type CharClass func(ch rune) bool

// A Rule matches a fragment of the JSON grammar against the parser's
// input. A rule reports whether it matched, consuming input and
// applying side effects (token buffering, stack updates, value
// construction) only on success. A terminal rule that does not match
// leaves its character unread, which is the single character of
// lookahead the grammar relies on: every alternation is disambiguated
// by its first character, so a failed alternative never consumes
// input that a later alternative needs.
//
// A rule signals an unrecoverable failure by panicking with a
// *SyntaxError or *ConversionError; the Parse entry points recover
// these and return them as errors.
type Rule func(p *Parser) bool

// char returns a terminal rule matching exactly the character want.
func char(want rune) Rule {
	return func(p *Parser) bool { return p.readChar(want) }
}

// class returns a terminal rule matching one character of the class f.
func class(f CharClass) Rule {
	return func(p *Parser) bool { return p.readClass(f) }
}

// sub returns a rule that invokes the rule named id in the parser's
// rule table. The lookup happens at match time, so rules may refer to
// themselves and to each other before the table is complete.
func sub(id string) Rule {
	return func(p *Parser) bool { return p.invoke(id) }
}

// require wraps r so that a failed match aborts the parse with a
// *SyntaxError instead of reporting a non-match. It marks positions
// in the grammar where no alternative remains.
func require(r Rule) Rule {
	return func(p *Parser) bool {
		if !r(p) {
			panic(p.syntaxError("malformed input"))
		}
		return true
	}
}

// optional wraps r so that a failed match succeeds without consuming
// any input.
func optional(r Rule) Rule {
	return func(p *Parser) bool { r(p); return true }
}

// repeat applies r until it stops matching or input is exhausted.
// Zero matches is a success.
func repeat(r Rule) Rule {
	return func(p *Parser) bool {
		for r(p) {
		}
		return true
	}
}

// seq matches each rule in order, short-circuiting on the first rule
// that fails.
func seq(rs ...Rule) Rule {
	return func(p *Parser) bool {
		for _, r := range rs {
			if !r(p) {
				return false
			}
		}
		return true
	}
}

// expect matches first, then commits: each remaining rule is wrapped
// in require, so once first has matched the rest must follow or the
// input is invalid. This is the idiom between mandatory grammar
// tokens, as in "a colon must be followed by a value".
func expect(first Rule, rest ...Rule) Rule {
	rs := make([]Rule, len(rest)+1)
	rs[0] = first
	for i, r := range rest {
		rs[i+1] = require(r)
	}
	return seq(rs...)
}

// alt matches the first of rs that succeeds. It fails only if every
// alternative fails, having consumed nothing by the lookahead
// property described on Rule.
func alt(rs ...Rule) Rule {
	return func(p *Parser) bool {
		for _, r := range rs {
			if r(p) {
				return true
			}
		}
		return false
	}
}
