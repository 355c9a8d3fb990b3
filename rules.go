// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jgram

// jsonRules builds the rule table for the standard JSON grammar.
//
// The grammar is LL(1): at every alternation the next unread
// character selects the branch, so no backtracking is needed beyond
// the one-character lookahead of the terminal rules. The container
// actions (pushObject/pushArray, compileCompound, finishCompound) sit
// inside the object and array rules, after the opening bracket has
// committed the branch, so an empty "{}" or "[]" still produces an
// empty container and the value stack stays balanced.
func jsonRules() map[string]Rule {
	return map[string]Rule{
		"object": expect(char('{'),
			seq((*Parser).pushObject,
				alt(sub("property_list"), sub("whitespace")),
				(*Parser).compileCompound,
				(*Parser).finishCompound),
			char('}')),
		"property_list": expect(sub("property"),
			repeat(expect(char(','), sub("property")))),
		"property": seq(
			expect(sub("name"), char(':'), sub("value")),
			(*Parser).compileProperty),
		"name": seq(
			sub("whitespace"), sub("string"), sub("whitespace"),
			(*Parser).compileName),

		"array": expect(char('['),
			seq((*Parser).pushArray,
				alt(sub("array_element_list"), sub("whitespace")),
				(*Parser).compileCompound,
				(*Parser).finishCompound),
			char(']')),
		"array_element_list": expect(sub("array_element"),
			repeat(expect(char(','), sub("array_element")))),
		"array_element": seq(sub("value"), (*Parser).compileArrayElement),

		"value": seq(
			sub("whitespace"),
			alt(sub("object"), sub("array"), sub("string"), sub("number"), sub("symbol")),
			sub("whitespace")),

		"symbol": seq((*Parser).beginToken,
			expect(sub("symbol_char"), repeat(sub("symbol_char"))),
			(*Parser).compileSymbol),

		"string": seq((*Parser).beginToken,
			expect(char('"'), repeat(sub("string_content")), char('"')),
			(*Parser).compileString),
		"string_content": alt(sub("escape"), sub("string_char")),
		"escape":         expect(char('\\'), sub("escape_sequence")),
		"escape_sequence": alt(
			char('"'), char('\\'), char('/'),
			char('b'), char('f'), char('n'), char('r'), char('t'),
			expect(char('u'), sub("xdigit"), sub("xdigit"), sub("xdigit"), sub("xdigit"))),

		"number": seq((*Parser).beginToken,
			expect(
				alt(expect(char('-'), sub("digit_sequence")), sub("digit_sequence")),
				optional(sub("fraction")),
				optional(sub("exponent"))),
			(*Parser).compileNumber),
		"digit_sequence":   alt(char('0'), sub("nonzero_sequence")),
		"nonzero_sequence": expect(sub("nonzero_digit"), repeat(sub("digit"))),
		"fraction":         expect(char('.'), sub("digit"), repeat(sub("digit"))),
		"exponent": expect(
			alt(char('E'), char('e')),
			optional(alt(char('+'), char('-'))),
			sub("digit"), repeat(sub("digit"))),

		"whitespace": repeat(sub("whitespace_char")),

		"symbol_char":     class(isLetter),
		"digit":           class(isDigit),
		"nonzero_digit":   class(isNonzeroDigit),
		"xdigit":          class(isHexDigit),
		"whitespace_char": class(isSpace),
		"string_char":     class(isStringChar),
	}
}

func isLetter(ch rune) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z')
}

func isDigit(ch rune) bool { return ch >= '0' && ch <= '9' }

func isNonzeroDigit(ch rune) bool { return ch >= '1' && ch <= '9' }

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\n' || ch == '\r' || ch == '\t'
}

// isStringChar admits the characters that may appear in a string
// without escaping: any rune from space up, except the closing quote
// and the escape introducer.
func isStringChar(ch rune) bool {
	return ch >= 0x20 && ch != '"' && ch != '\\'
}
