// Package erltok tokenizes Erlang source text.
//
// A Tokenizer turns an in-memory source string into a stream of classified,
// position-tagged tokens, comments and whitespace included, such that
// concatenating every token's raw text reproduces the source exactly:
//
//	tz := erltok.New(`io:format("Hello").`)
//	toks, err := tz.Scan()
//
// Lexer is a thin wrapper that skips the hidden (comment/whitespace) tokens
// for callers that only care about the grammar-relevant stream.
package erltok

import "fmt"

// Tokenizer is a pull-based, single-pass producer of tokens. It is not safe
// for concurrent use; drive one instance from one goroutine at a time.
// Independent instances over independent sources need no coordination.
type Tokenizer struct {
	s   scanner
	err error // terminal: once set, every Next repeats it
}

// New returns a tokenizer positioned at the start of src. src must be valid
// UTF-8 text.
func New(src string) *Tokenizer {
	return &Tokenizer{s: newScanner(src)}
}

// Pos returns the position where the next token will begin.
func (t *Tokenizer) Pos() Position { return t.s.pos }

// Next produces the next token. Exhaustion is reported as a zero-width token
// with Kind EOF and a nil error. A lexical error ends the usable lifetime of
// the tokenizer; subsequent calls return the same error.
func (t *Tokenizer) Next() (Token, error) {
	if t.err != nil {
		return Token{}, t.err
	}
	tok, err := t.scanToken()
	if err != nil {
		t.err = err
		return Token{}, err
	}
	return tok, nil
}

// Scan drives the tokenizer to completion and returns every token produced,
// the trailing EOF token included. On a lexical error no tokens are
// returned.
func (t *Tokenizer) Scan() ([]Token, error) {
	var toks []Token
	for {
		tok, err := t.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks, nil
		}
	}
}

// scanToken peeks the next character and dispatches, by fixed precedence, to
// exactly one recognizer. There is no backtracking across recognizers: once
// dispatched, the remainder must satisfy that recognizer's grammar.
func (t *Tokenizer) scanToken() (Token, error) {
	r, ok := t.s.peek()
	if !ok {
		p := t.s.pos
		return Token{Kind: EOF, Start: p, End: p}, nil
	}
	switch {
	case isWhitespaceRune(r):
		return t.scanWhitespace(), nil
	case r == '%':
		return t.scanComment(), nil
	case r == '$':
		return t.scanChar()
	case r == '"':
		return t.scanString()
	case r == '\'':
		return t.scanQuotedAtom()
	case isDecimalDigit(r):
		return t.scanNumber()
	case isVariableHead(r):
		return t.scanVariable(), nil
	case isAtomHead(r):
		return t.scanAtomOrKeyword(), nil
	}
	return t.scanSymbol()
}

// scanWhitespace emits exactly one whitespace rune per token; adjacent
// whitespace is never merged, so every character keeps its own position.
func (t *Tokenizer) scanWhitespace() Token {
	start := t.s.pos
	r, _ := t.s.next()
	return Token{Kind: WHITESPACE, Text: t.s.text(start), Value: r, Start: start, End: t.s.pos}
}

// scanComment consumes '%' up to (not including) the line feed or
// end-of-input. The decoded value drops the leading '%'.
func (t *Tokenizer) scanComment() Token {
	start := t.s.pos
	t.s.next() // '%'
	for {
		r, ok := t.s.peek()
		if !ok || r == '\n' {
			break
		}
		t.s.next()
	}
	text := t.s.text(start)
	return Token{Kind: COMMENT, Text: text, Value: text[1:], Start: start, End: t.s.pos}
}

// scanName consumes a head rune plus the shared atom/variable tail.
func (t *Tokenizer) scanName() (Position, string) {
	start := t.s.pos
	t.s.next()
	for {
		r, ok := t.s.peek()
		if !ok || !isNameTail(r) {
			break
		}
		t.s.next()
	}
	return start, t.s.text(start)
}

func (t *Tokenizer) scanVariable() Token {
	start, text := t.scanName()
	return Token{Kind: VARIABLE, Text: text, Value: text, Start: start, End: t.s.pos}
}

// scanAtomOrKeyword scans an unquoted atom and reclassifies it as a keyword
// when its exact text is one of the reserved spellings.
func (t *Tokenizer) scanAtomOrKeyword() Token {
	start, text := t.scanName()
	if kw, ok := keywords[text]; ok {
		return Token{Kind: KEYWORD, Text: text, Value: kw, Start: start, End: t.s.pos}
	}
	return Token{Kind: ATOM, Text: text, Value: text, Start: start, End: t.s.pos}
}

// scanSymbol tries each symbol lexeme in length-descending order and commits
// to the first exact prefix match (longest match wins, so "=:=" is one token
// rather than "=", ":", "="). A character that starts no symbol is an
// invalid-input error.
func (t *Tokenizer) scanSymbol() (Token, error) {
	start := t.s.pos
	for _, e := range symbolTable {
		if !t.s.hasPrefix(e.text) {
			continue
		}
		for i := 0; i < len(e.text); i++ { // symbol lexemes are ASCII
			t.s.next()
		}
		return Token{Kind: SYMBOL, Text: e.text, Value: e.sym, Start: start, End: t.s.pos}, nil
	}
	r, _ := t.s.peek()
	return Token{}, invalidInput(start, fmt.Sprintf("unexpected character %q", r))
}
