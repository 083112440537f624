package erltok

// Lexer wraps a Tokenizer and yields only the grammar-relevant tokens,
// silently consuming comments and whitespace. It adds one token of pushback
// so parser front ends can peek.
type Lexer struct {
	t      *Tokenizer
	unread []Token
}

// NewLexer returns a hidden-token-skipping lexer over src.
func NewLexer(src string) *Lexer {
	return &Lexer{t: New(src)}
}

// Next returns the next non-hidden token. Exhaustion is a token with Kind
// EOF, as with Tokenizer.Next.
func (l *Lexer) Next() (Token, error) {
	if n := len(l.unread); n > 0 {
		tok := l.unread[n-1]
		l.unread = l.unread[:n-1]
		return tok, nil
	}
	for {
		tok, err := l.t.Next()
		if err != nil {
			return Token{}, err
		}
		if !tok.IsHidden() {
			return tok, nil
		}
	}
}

// Peek returns the next non-hidden token without consuming it.
func (l *Lexer) Peek() (Token, error) {
	tok, err := l.Next()
	if err != nil {
		return Token{}, err
	}
	l.Unread(tok)
	return tok, nil
}

// Unread pushes tok back; the next call to Next returns it again.
func (l *Lexer) Unread(tok Token) {
	l.unread = append(l.unread, tok)
}

// Pos returns the position of the next token to be returned.
func (l *Lexer) Pos() Position {
	if n := len(l.unread); n > 0 {
		return l.unread[n-1].Start
	}
	return l.t.Pos()
}
