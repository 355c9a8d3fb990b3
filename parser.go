// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jgram

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxNestingDepth bounds the number of simultaneously open arrays and
// objects during a parse. Exceeding it is reported as a syntax error
// rather than exhausting the stack on adversarially nested input.
const maxNestingDepth = 10000

// A Parser parses JSON text into Values. It owns a table of named
// grammar rules together with the mutable state those rules share
// while matching. The state is reset by each call to a Parse entry
// point, so a Parser may be reused; it may not be used from multiple
// goroutines concurrently.
type Parser struct {
	rules map[string]Rule
	trace io.Writer

	// State for the current parse invocation.
	in     *bufio.Reader
	buf    bytes.Buffer // characters consumed since the last token reset
	lines  int          // line breaks consumed; '\n' and '\r' each count
	names  []string     // property names of open objects, innermost last
	values []Value      // open containers, innermost last
	result Value        // the most recently produced value
}

// NewParser constructs a Parser with the standard JSON grammar.
func NewParser() *Parser { return &Parser{rules: jsonRules()} }

// SetTrace directs a diagnostic trace to w: every named-rule
// invocation logs the current line, the token buffer, and the rule
// name, followed by the match outcome when the rule returns. Tracing
// has no effect on the parse. Set w to nil to disable.
func (p *Parser) SetTrace(w io.Writer) { p.trace = w }

// ParseObject parses a single JSON object from the front of r.
// Whitespace before the object is ignored; input following the
// object is left unread, so successive calls on a shared
// *bufio.Reader extract successive objects from one stream.
//
// Grammar failures are reported as *SyntaxError and invalid tokens as
// *ConversionError; any other error comes from reading r.
func (p *Parser) ParseObject(r io.Reader) (_ Value, err error) {
	defer p.recoverError(&err)
	p.reset(r)
	expect(sub("whitespace"), sub("object"))(p)
	return p.result, nil
}

// Parse parses a single JSON value of any kind from r. The input
// must contain exactly one value, optionally surrounded by
// whitespace; anything left over after the value is a *SyntaxError.
func (p *Parser) Parse(r io.Reader) (_ Value, err error) {
	defer p.recoverError(&err)
	p.reset(r)
	require(sub("value"))(p)
	if _, _, err := p.in.ReadRune(); err == nil {
		panic(p.syntaxError("unexpected input after value"))
	} else if err != io.EOF {
		panic(readError{err})
	}
	return p.result, nil
}

// ParseString parses s as a single JSON value of any kind.
func (p *Parser) ParseString(s string) (Value, error) {
	return p.Parse(strings.NewReader(s))
}

// Parse parses a single JSON value of any kind from r with a fresh
// parser. See Parser.Parse.
func Parse(r io.Reader) (Value, error) { return NewParser().Parse(r) }

// reset prepares p for a new parse consuming input from r.
func (p *Parser) reset(r io.Reader) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	p.in = br
	p.buf.Reset()
	p.lines = 0
	p.names = p.names[:0]
	p.values = p.values[:0]
	p.result = Value{}
}

// recoverError converts a panic from a rule or semantic action into the
// error result of a Parse entry point. Panics of other types are
// resumed.
func (p *Parser) recoverError(errp *error) {
	if v := recover(); v != nil {
		switch err := v.(type) {
		case *SyntaxError:
			*errp = err
		case *ConversionError:
			*errp = err
		case readError:
			*errp = err.error
		default:
			panic(v)
		}
	}
}

// readError wraps an input error so recoverError can distinguish it
// from a runtime fault.
type readError struct{ error }

// readChar consumes the next character if it equals want.
func (p *Parser) readChar(want rune) bool {
	ch, ok := p.next()
	if !ok {
		return false
	}
	if ch != want {
		p.in.UnreadRune()
		return false
	}
	p.keep(ch)
	return true
}

// readClass consumes the next character if it satisfies f.
func (p *Parser) readClass(f CharClass) bool {
	ch, ok := p.next()
	if !ok {
		return false
	}
	if !f(ch) {
		p.in.UnreadRune()
		return false
	}
	p.keep(ch)
	return true
}

// next reads one character, reporting false at end of input.
func (p *Parser) next() (rune, bool) {
	ch, _, err := p.in.ReadRune()
	if err == io.EOF {
		return 0, false
	} else if err != nil {
		panic(readError{err})
	}
	return ch, true
}

// keep appends a consumed character to the token buffer and counts
// line breaks.
func (p *Parser) keep(ch rune) {
	p.buf.WriteRune(ch)
	if ch == '\n' || ch == '\r' {
		p.lines++
	}
}

// invoke runs the rule named id from the rule table, logging the
// invocation and its outcome when tracing is enabled.
func (p *Parser) invoke(id string) bool {
	rule, ok := p.rules[id]
	if !ok {
		panic(fmt.Sprintf("jgram: no grammar rule %q", id))
	}
	if p.trace != nil {
		fmt.Fprintf(p.trace, "parser[line:%d, buffer:%q]: %q...\n", p.line(), p.buf.String(), id)
	}
	match := rule(p)
	if p.trace != nil {
		fmt.Fprintf(p.trace, "parser[line:%d, buffer:%q]: %q: %v\n", p.line(), p.buf.String(), id, match)
	}
	return match
}

func (p *Parser) line() int { return p.lines + 1 }

func (p *Parser) syntaxError(msg string) *SyntaxError {
	return &SyntaxError{Line: p.line(), Message: msg}
}

func (p *Parser) conversionError(msg string, err error) *ConversionError {
	return &ConversionError{Line: p.line(), Message: msg, err: err}
}

func (p *Parser) pushValue(v Value) {
	if len(p.values) >= maxNestingDepth {
		panic(p.syntaxError("values nested too deeply"))
	}
	p.values = append(p.values, v)
}

func (p *Parser) topValue() Value { return p.values[len(p.values)-1] }

func (p *Parser) popValue() { p.values = p.values[:len(p.values)-1] }

func (p *Parser) popName() string {
	name := p.names[len(p.names)-1]
	p.names = p.names[:len(p.names)-1]
	return name
}

// The semantic actions below have the Rule signature via method
// expressions, so the rule table composes them directly into the
// grammar. Each runs only after the grammar fragment preceding it has
// matched, and fails by panicking, never by reporting a non-match.

// beginToken clears the token buffer before a token-producing rule.
func (p *Parser) beginToken() bool {
	p.buf.Reset()
	return true
}

// pushObject opens a fresh empty object on the value stack.
func (p *Parser) pushObject() bool {
	p.pushValue(newObject(nil))
	return true
}

// pushArray opens a fresh empty array on the value stack.
func (p *Parser) pushArray() bool {
	p.pushValue(newArray(nil))
	return true
}

// compileCompound copies the innermost open container to the result
// slot.
func (p *Parser) compileCompound() bool {
	p.result = p.topValue()
	return true
}

// finishCompound closes the innermost open container.
func (p *Parser) finishCompound() bool {
	p.popValue()
	return true
}

// compileName moves the just-parsed string result to the name stack.
func (p *Parser) compileName() bool {
	name, err := p.result.AsString()
	if err != nil {
		panic("jgram: property name is not a string")
	}
	p.names = append(p.names, name)
	return true
}

// compileProperty assigns the current result to the property of the
// innermost open object named by the top of the name stack.
func (p *Parser) compileProperty() bool {
	obj, err := p.topValue().AsObject()
	if err != nil {
		panic("jgram: no open object")
	}
	obj[p.popName()] = p.result
	return true
}

// compileArrayElement appends the current result to the innermost
// open array.
func (p *Parser) compileArrayElement() bool {
	arr, err := p.topValue().AsArray()
	if err != nil {
		panic("jgram: no open array")
	}
	*arr = append(*arr, p.result)
	return true
}

// compileString decodes the buffered string token, including its
// surrounding quotation marks, into the result slot.
func (p *Parser) compileString() bool {
	text, err := Unquote(p.buf.String())
	if err != nil {
		panic(p.conversionError("invalid string token", err))
	}
	p.result = newString(text)
	return true
}

// compileNumber converts the buffered numeric token into the result
// slot. A token out of range of float64 is a conversion error.
func (p *Parser) compileNumber() bool {
	n, err := strconv.ParseFloat(p.buf.String(), 64)
	if err != nil {
		panic(p.conversionError("invalid number token", err))
	}
	p.result = newNumber(n)
	return true
}

// compileSymbol maps the buffered bare word to its constant value.
func (p *Parser) compileSymbol() bool {
	switch sym := p.buf.String(); sym {
	case "true":
		p.result = Value{typ: TypeBoolean, b: true}
	case "false":
		p.result = Value{typ: TypeBoolean}
	case "null":
		p.result = Value{}
	default:
		panic(p.syntaxError(fmt.Sprintf("unrecognized symbol %q", sym)))
	}
	return true
}
