// Copyright (C) 2022 Garrison Hinson-Hasty. All Rights Reserved.

package ghhjson

import (
	"bytes"
	"fmt"

	"go4.org/mem"

	"github.com/garrisonhh/ghh-json/internal/escape"
)

// maxExponent caps the explicit exponent loop. Past it the result has
// already saturated to zero or infinity.
const maxExponent = 350

// A parser consumes document text byte by byte, allocating parsed
// values into its document.
type parser struct {
	d    *Document
	text []byte
	pos  int // offset of the next unconsumed byte
}

// parse parses text and returns its root value, or nil for empty
// input. Only an object or an array may be the root.
func parse(d *Document, text []byte) (*Value, error) {
	p := &parser{d: d, text: text}
	p.skipSpace()
	switch p.peek() {
	case 0:
		if p.pos < len(p.text) {
			// A literal NUL byte, not end of input.
			return nil, p.errorf("invalid json root.")
		}
		return nil, nil
	case '{', '[':
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.pos < len(p.text) {
			return nil, p.errorf("unknown token, expected end of input.")
		}
		return v, nil
	default:
		return nil, p.errorf("invalid json root.")
	}
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\r' || b == '\n' }

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

// peek returns the next unconsumed byte, or 0 at end of input.
func (p *parser) peek() byte {
	if p.pos >= len(p.text) {
		return 0
	}
	return p.text[p.pos]
}

func (p *parser) skipSpace() {
	for p.pos < len(p.text) && isSpace(p.text[p.pos]) {
		p.pos++
	}
}

// expect consumes the literal token, or reports an error naming it.
func (p *parser) expect(token string) error {
	if p.pos+len(token) <= len(p.text) && string(p.text[p.pos:p.pos+len(token)]) == token {
		p.pos += len(token)
		return nil
	}
	return p.errorf("unknown token, expected %q.", token)
}

// parseValue parses one value starting at the next non-space byte.
func (p *parser) parseValue() (*Value, error) {
	p.skipSpace()
	switch b := p.peek(); {
	case b == '{':
		return p.parseObject()
	case b == '[':
		return p.parseArray()
	case b == '"':
		return p.parseString()
	case b == '-' || isDigit(b):
		return p.parseNumber()
	case b == 't':
		if err := p.expect("true"); err != nil {
			return nil, err
		}
		return p.d.NewBool(true), nil
	case b == 'f':
		if err := p.expect("false"); err != nil {
			return nil, err
		}
		return p.d.NewBool(false), nil
	case b == 'n':
		if err := p.expect("null"); err != nil {
			return nil, err
		}
		return p.d.NewNull(), nil
	default:
		return nil, p.errorf("unknown token, expected value.")
	}
}

// parseObject parses an object, entered at its opening brace.
func (p *parser) parseObject() (*Value, error) {
	if err := p.expect("{"); err != nil {
		return nil, err
	}
	v := p.d.NewObject()
	first := true
	for {
		p.skipSpace()
		if p.peek() == '}' {
			p.pos++
			return v, nil
		}
		if !first {
			if err := p.expect(","); err != nil {
				return nil, err
			}
			p.skipSpace()
		}
		first = false

		key, err := p.parseStringText()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if err := p.expect(":"); err != nil {
			return nil, err
		}
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}

		// A repeated key keeps its first position in key order and
		// takes the latest value.
		v.obj.Put(p.d.arena.CopyBytes(key), val)
	}
}

// parseArray parses an array, entered at its opening bracket.
func (p *parser) parseArray() (*Value, error) {
	if err := p.expect("["); err != nil {
		return nil, err
	}
	v := p.d.NewArray()
	first := true
	for {
		p.skipSpace()
		if p.peek() == ']' {
			p.pos++
			return v, nil
		}
		if !first {
			if err := p.expect(","); err != nil {
				return nil, err
			}
		}
		first = false

		elem, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		v.arr.Push(elem)
	}
}

// parseString parses a string value.
func (p *parser) parseString() (*Value, error) {
	text, err := p.parseStringText()
	if err != nil {
		return nil, err
	}
	return p.d.newStringBytes(text), nil
}

// parseStringText parses a quoted string token and returns its decoded
// text. The closing quote must arrive on the same line: a raw line
// break or NUL inside the string is fatal.
func (p *parser) parseStringText() ([]byte, error) {
	if p.peek() != '"' {
		return nil, p.errorf("unknown token, expected string.")
	}
	start := p.pos
	p.pos++
	for {
		if p.pos >= len(p.text) {
			return nil, p.errorf("string ended unexpectedly.")
		}
		switch p.text[p.pos] {
		case '"':
			body := p.text[start+1 : p.pos]
			p.pos++
			dec, err := escape.Unquote(mem.B(body))
			if err != nil {
				return nil, p.syntaxError(start, err, "%v", err)
			}
			return dec, nil
		case '\\':
			p.pos += 2 // the escaped byte cannot close the string
		case '\n', 0:
			return nil, p.errorf("string ended unexpectedly.")
		default:
			p.pos++
		}
	}
}

// parseNumber parses a number by place-value accumulation: integer
// digits scale by ten, fraction digits add at descending negative
// powers of ten, and an explicit exponent applies by repeated
// multiplication.
func (p *parser) parseNumber() (*Value, error) {
	neg := false
	if p.peek() == '-' {
		neg = true
		p.pos++
	}
	if !isDigit(p.peek()) {
		return nil, p.errorf("expected digit.")
	}

	var num float64
	for isDigit(p.peek()) {
		num = num*10 + float64(p.text[p.pos]-'0')
		p.pos++
	}

	if p.peek() == '.' {
		p.pos++
		if !isDigit(p.peek()) {
			return nil, p.errorf("expected digit.")
		}
		mult := 0.1
		for isDigit(p.peek()) {
			num += float64(p.text[p.pos]-'0') * mult
			mult *= 0.1
			p.pos++
		}
	}
	if neg {
		num = -num
	}

	if b := p.peek(); b == 'e' || b == 'E' {
		p.pos++
		expNeg := false
		if b := p.peek(); b == '+' || b == '-' {
			expNeg = b == '-'
			p.pos++
		}
		if !isDigit(p.peek()) {
			return nil, p.errorf("expected digit.")
		}
		var exp int
		for isDigit(p.peek()) {
			if exp < maxExponent {
				exp = exp*10 + int(p.text[p.pos]-'0')
			}
			p.pos++
		}
		if exp > maxExponent {
			exp = maxExponent
		}
		scale := 10.0
		if expNeg {
			scale = 0.1
		}
		for i := 0; i < exp; i++ {
			num *= scale
		}
	}
	return p.d.NewNumber(num), nil
}

func (p *parser) errorf(msg string, args ...any) error {
	return p.syntaxError(p.pos, nil, msg, args...)
}

// syntaxError builds a SyntaxError at offset off, wrapping err when it
// is not nil.
func (p *parser) syntaxError(off int, err error, msg string, args ...any) error {
	if off > len(p.text) {
		off = len(p.text)
	}
	loc, lineText := describePosition(p.text, off)
	return &SyntaxError{
		Offset:   off,
		Location: loc,
		LineText: lineText,
		Message:  fmt.Sprintf(msg, args...),
		err:      err,
	}
}

// describePosition locates off in text as a line and column and
// returns the full text of that line for diagnostics.
func describePosition(text []byte, off int) (LineCol, string) {
	line, lineStart := 1, 0
	for i := 0; i < off; i++ {
		if text[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	lineEnd := len(text)
	if i := bytes.IndexByte(text[lineStart:], '\n'); i >= 0 {
		lineEnd = lineStart + i
	}
	return LineCol{Line: line, Column: off - lineStart}, string(text[lineStart:lineEnd])
}
