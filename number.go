package erltok

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// scanNumber recognizes integer and float literals. The caller guarantees the
// cursor sits on a decimal digit.
//
// Grammar: digit+('_' digit+)* optionally followed by '#'base-digits (radix
// 2..36, integer), or by '.'digit+('_' digit+)* and/or an exponent
// [eE][+-]?digit+('_' digit+)*, forming a float. Underscores separate digit
// groups and must sit strictly between two digits; the raw text keeps them,
// decoding strips them.
//
// '.' and an exponent marker in integer context are consumed only when
// lookahead shows a digit can follow, so `1.` is the integer 1 followed by
// the dot symbol and `12erlang` is 12 followed by an atom. An exponent
// marker that follows a fraction is committed, so `1.2e%` is a malformed
// number rather than a float and a trailing comment.
func (t *Tokenizer) scanNumber() (Token, error) {
	start := t.s.pos
	if err := t.scanDigitRun(10, false); err != nil {
		return Token{}, err
	}

	if r, ok := t.s.peek(); ok && r == '#' {
		return t.scanRadixTail(start)
	}

	isFloat := false
	if r, ok := t.s.peek(); ok && r == '.' {
		if r2, ok2 := t.s.peekAt(1); ok2 && isDecimalDigit(r2) {
			t.s.next() // '.'
			if err := t.scanDigitRun(10, false); err != nil {
				return Token{}, err
			}
			isFloat = true
		}
	}

	if r, ok := t.s.peek(); ok && (r == 'e' || r == 'E') {
		if isFloat {
			// Committed: a fraction was consumed, so the exponent must
			// complete or the literal is malformed.
			if err := t.scanExponent(); err != nil {
				return Token{}, err
			}
		} else if t.exponentAhead() {
			if err := t.scanExponent(); err != nil {
				return Token{}, err
			}
			isFloat = true
		}
	}

	text := t.s.text(start)
	if isFloat {
		v, err := strconv.ParseFloat(strings.ReplaceAll(text, "_", ""), 64)
		if err != nil {
			return Token{}, malformedNumber(start, fmt.Sprintf("cannot decode float %q", text))
		}
		return Token{Kind: FLOAT, Text: text, Value: v, Start: start, End: t.s.pos}, nil
	}
	v := new(big.Int)
	v.SetString(strings.ReplaceAll(text, "_", ""), 10)
	return Token{Kind: INTEGER, Text: text, Value: v, Start: start, End: t.s.pos}, nil
}

// scanRadixTail handles the Base#Digits form. The decimal digits of the base
// have already been consumed; the cursor sits on '#'.
func (t *Tokenizer) scanRadixTail(start Position) (Token, error) {
	baseText := strings.ReplaceAll(t.s.text(start), "_", "")
	base, err := strconv.Atoi(baseText)
	if err != nil || base < 2 || base > 36 {
		return Token{}, malformedNumber(start, fmt.Sprintf("base %s is not in 2..36", baseText))
	}
	t.s.next() // '#'

	digitsStart := t.s.pos
	if err := t.scanDigitRun(base, true); err != nil {
		return Token{}, err
	}
	digits := strings.ReplaceAll(t.s.text(digitsStart), "_", "")

	text := t.s.text(start)
	v := new(big.Int)
	v.SetString(digits, base)
	return Token{Kind: INTEGER, Text: text, Value: v, Start: start, End: t.s.pos}, nil
}

// scanDigitRun consumes digit+('_' digit+)* in the given base. At least one
// digit is required. With strict set (radix digits), an alphanumeric
// character whose value does not fit the base is an error rather than the
// end of the literal; decimal runs simply stop before letters.
func (t *Tokenizer) scanDigitRun(base int, strict bool) *Error {
	seen := 0
	for {
		r, ok := t.s.peek()
		if !ok {
			break
		}
		if v := digitValue(r); v >= 0 && v < base {
			t.s.next()
			seen++
			continue
		}
		if r == '_' && seen > 0 {
			sepPos := t.s.pos
			t.s.next()
			r2, ok2 := t.s.peek()
			if !ok2 || digitValue(r2) < 0 || digitValue(r2) >= base {
				return malformedNumber(sepPos, "digit separator must sit between two digits")
			}
			continue
		}
		if strict && digitValue(r) >= base {
			return malformedNumber(t.s.pos, fmt.Sprintf("%q is not a digit in base %d", r, base))
		}
		break
	}
	if seen == 0 {
		return malformedNumber(t.s.pos, "expected a digit")
	}
	return nil
}

// exponentAhead reports whether the cursor sits on an exponent marker that a
// digit (optionally behind a sign) can complete.
func (t *Tokenizer) exponentAhead() bool {
	r1, ok := t.s.peekAt(1)
	if !ok {
		return false
	}
	if isDecimalDigit(r1) {
		return true
	}
	if r1 == '+' || r1 == '-' {
		r2, ok2 := t.s.peekAt(2)
		return ok2 && isDecimalDigit(r2)
	}
	return false
}

// scanExponent consumes [eE][+-]?digit+('_' digit+)*. Missing digits after
// the marker (or sign) are a malformed-number error at the offending spot.
func (t *Tokenizer) scanExponent() *Error {
	t.s.next() // 'e' or 'E'
	if r, ok := t.s.peek(); ok && (r == '+' || r == '-') {
		t.s.next()
	}
	if r, ok := t.s.peek(); !ok || !isDecimalDigit(r) {
		return malformedNumber(t.s.pos, "expected a digit after exponent marker")
	}
	return t.scanDigitRun(10, false)
}
