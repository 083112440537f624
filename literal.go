package erltok

import "strings"

// scanString recognizes a "..." literal. The cursor sits on the opening
// quote. The token text keeps every escape verbatim; the value has them
// evaluated.
func (t *Tokenizer) scanString() (Token, error) {
	start := t.s.pos
	val, err := t.scanDelimited('"', "string")
	if err != nil {
		return Token{}, err
	}
	return Token{Kind: STRING, Text: t.s.text(start), Value: val, Start: start, End: t.s.pos}, nil
}

// scanQuotedAtom recognizes a '...' literal. Quoted atoms use the string
// escape grammar and are never reclassified as keywords.
func (t *Tokenizer) scanQuotedAtom() (Token, error) {
	start := t.s.pos
	val, err := t.scanDelimited('\'', "quoted atom")
	if err != nil {
		return Token{}, err
	}
	return Token{Kind: ATOM, Text: t.s.text(start), Value: val, Start: start, End: t.s.pos}, nil
}

// scanDelimited consumes a delimited literal body, evaluating escapes.
// End-of-input or a disallowed raw control character before the closing
// delimiter is an unterminated-literal error at the opening delimiter.
func (t *Tokenizer) scanDelimited(delim rune, what string) (string, error) {
	open := t.s.pos
	t.s.next() // opening delimiter

	var b strings.Builder
	for {
		r, ok := t.s.peek()
		if !ok {
			return "", unterminated(open, what+" starting here was not terminated")
		}
		if r == delim {
			t.s.next()
			return b.String(), nil
		}
		if r == '\\' {
			t.s.next()
			dec, err := t.scanEscape(open)
			if err != nil {
				return "", err
			}
			b.WriteRune(dec)
			continue
		}
		// Tab, CR and LF may appear raw (Erlang strings span lines); any
		// other C0 control aborts the literal.
		if r < 0x20 && r != '\t' && r != '\r' && r != '\n' {
			return "", unterminated(open, what+" starting here contains a raw control character")
		}
		t.s.next()
		b.WriteRune(r)
	}
}

// scanChar recognizes a $-prefixed character literal: '$' plus one literal or
// escaped character.
func (t *Tokenizer) scanChar() (Token, error) {
	start := t.s.pos
	t.s.next() // '$'

	r, ok := t.s.next()
	if !ok {
		return Token{}, unterminated(start, "char literal starting here was not terminated")
	}
	val := r
	if r == '\\' {
		dec, err := t.scanEscape(start)
		if err != nil {
			return Token{}, err
		}
		val = dec
	}
	return Token{Kind: CHAR, Text: t.s.text(start), Value: val, Start: start, End: t.s.pos}, nil
}

// scanEscape decodes one escape sequence; the backslash is already consumed.
// The grammar is Erlang's: a named escape, 1-3 octal digits, a caret control
// escape \^X (X taken mod 32), or any other character standing for itself.
func (t *Tokenizer) scanEscape(open Position) (rune, error) {
	r, ok := t.s.next()
	if !ok {
		return 0, unterminated(open, "escape sequence was not terminated")
	}
	switch r {
	case 'b':
		return '\b', nil
	case 'd':
		return 0x7f, nil
	case 'e':
		return 0x1b, nil
	case 'f':
		return '\f', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 's':
		return ' ', nil
	case 't':
		return '\t', nil
	case 'v':
		return '\v', nil
	case '^':
		c, ok := t.s.next()
		if !ok {
			return 0, unterminated(open, "control escape was not terminated")
		}
		return c % 32, nil
	case '0', '1', '2', '3', '4', '5', '6', '7':
		v := r - '0'
		for i := 0; i < 2; i++ {
			d, ok := t.s.peek()
			if !ok || d < '0' || d > '7' {
				break
			}
			t.s.next()
			v = v*8 + (d - '0')
		}
		return v, nil
	}
	return r, nil
}
