package erltok

import (
	"math/big"
	"unicode"
)

// Kind classifies a token.
type Kind int

const (
	// EOF marks clean exhaustion of the source. Its token has empty text.
	EOF Kind = iota
	ATOM
	VARIABLE
	KEYWORD
	STRING
	CHAR
	INTEGER
	FLOAT
	SYMBOL
	COMMENT
	WHITESPACE
)

var kindNames = [...]string{
	EOF:        "EOF",
	ATOM:       "ATOM",
	VARIABLE:   "VARIABLE",
	KEYWORD:    "KEYWORD",
	STRING:     "STRING",
	CHAR:       "CHAR",
	INTEGER:    "INTEGER",
	FLOAT:      "FLOAT",
	SYMBOL:     "SYMBOL",
	COMMENT:    "COMMENT",
	WHITESPACE: "WHITESPACE",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// Token is one lexical token. Text is the verbatim source slice (escapes and
// digit separators included), so concatenating the texts of a full scan
// reproduces the source exactly. Value holds the decoded payload and depends
// on Kind:
//
//	ATOM, VARIABLE  string (decoded name; quoted atoms have escapes evaluated)
//	KEYWORD         Keyword
//	STRING          string (escapes evaluated)
//	CHAR            rune
//	INTEGER         *big.Int
//	FLOAT           float64
//	SYMBOL          Symbol
//	COMMENT         string (text after the leading '%')
//	WHITESPACE      rune
//
// Tokens are immutable values; they share nothing with the tokenizer that
// produced them beyond the backing source string.
type Token struct {
	Kind  Kind
	Text  string
	Value interface{}
	Start Position
	End   Position
}

// IsHidden reports whether the token is semantically inert (a comment or a
// whitespace rune). Hidden tokens matter only for lossless reconstruction.
func (t Token) IsHidden() bool {
	return t.Kind == COMMENT || t.Kind == WHITESPACE
}

// Int returns the decoded integer value of an INTEGER token.
func (t Token) Int() *big.Int { return t.Value.(*big.Int) }

// Float returns the decoded value of a FLOAT token.
func (t Token) Float() float64 { return t.Value.(float64) }

// Str returns the decoded string payload of an ATOM, VARIABLE, STRING or
// COMMENT token.
func (t Token) Str() string { return t.Value.(string) }

// Char returns the decoded rune of a CHAR or WHITESPACE token.
func (t Token) Char() rune { return t.Value.(rune) }

// Keyword is one of Erlang's reserved words.
type Keyword int

const (
	KwAfter Keyword = iota
	KwAnd
	KwAndalso
	KwBand
	KwBegin
	KwBnot
	KwBor
	KwBsl
	KwBsr
	KwBxor
	KwCase
	KwCatch
	KwCond
	KwDiv
	KwEnd
	KwFun
	KwIf
	KwLet
	KwNot
	KwOf
	KwOr
	KwOrelse
	KwReceive
	KwRem
	KwTry
	KwWhen
	KwXor
)

var keywordNames = [...]string{
	KwAfter:   "after",
	KwAnd:     "and",
	KwAndalso: "andalso",
	KwBand:    "band",
	KwBegin:   "begin",
	KwBnot:    "bnot",
	KwBor:     "bor",
	KwBsl:     "bsl",
	KwBsr:     "bsr",
	KwBxor:    "bxor",
	KwCase:    "case",
	KwCatch:   "catch",
	KwCond:    "cond",
	KwDiv:     "div",
	KwEnd:     "end",
	KwFun:     "fun",
	KwIf:      "if",
	KwLet:     "let",
	KwNot:     "not",
	KwOf:      "of",
	KwOr:      "or",
	KwOrelse:  "orelse",
	KwReceive: "receive",
	KwRem:     "rem",
	KwTry:     "try",
	KwWhen:    "when",
	KwXor:     "xor",
}

func (k Keyword) String() string { return keywordNames[k] }

// keywords maps reserved spellings to their Keyword. Only unquoted atoms are
// looked up here; 'end' stays an atom.
var keywords = map[string]Keyword{}

func init() {
	for kw, name := range keywordNames {
		keywords[name] = Keyword(kw)
	}
}

// KeywordFromString returns the keyword spelled s, if any.
func KeywordFromString(s string) (Keyword, bool) {
	kw, ok := keywords[s]
	return kw, ok
}

// Symbol identifies an operator or punctuation lexeme.
type Symbol int

const (
	SymOpenSquare  Symbol = iota // [
	SymCloseSquare               // ]
	SymOpenParen                 // (
	SymCloseParen                // )
	SymOpenBrace                 // {
	SymCloseBrace                // }
	SymSharp                     // #
	SymSlash                     // /
	SymDot                       // .
	SymComma                     // ,
	SymColon                     // :
	SymSemicolon                 // ;
	SymMatch                     // =
	SymMapMatch                  // :=
	SymVerticalBar               // |
	SymDoubleVerticalBar         // ||
	SymQuestion                  // ?
	SymNot                       // !
	SymHyphen                    // -
	SymMinusMinus                // --
	SymPlus                      // +
	SymPlusPlus                  // ++
	SymMultiply                  // *
	SymRightArrow                // ->
	SymLeftArrow                 // <-
	SymDoubleRightArrow          // =>
	SymDoubleLeftArrow           // <=
	SymDoubleRightAngle          // >>
	SymDoubleLeftAngle           // <<
	SymEq                        // ==
	SymExactEq                   // =:=
	SymNotEq                     // /=
	SymExactNotEq                // =/=
	SymGreater                   // >
	SymGreaterEq                 // >=
	SymLess                      // <
	SymLessEq                    // =<
)

// symbolTable holds every symbol lexeme ordered longest-first so the symbol
// recognizer can commit to the first exact prefix match.
var symbolTable = []struct {
	text string
	sym  Symbol
}{
	{"=:=", SymExactEq},
	{"=/=", SymExactNotEq},
	{"==", SymEq},
	{"/=", SymNotEq},
	{"=<", SymLessEq},
	{">=", SymGreaterEq},
	{"<-", SymLeftArrow},
	{"->", SymRightArrow},
	{"=>", SymDoubleRightArrow},
	{"<=", SymDoubleLeftArrow},
	{"<<", SymDoubleLeftAngle},
	{">>", SymDoubleRightAngle},
	{"++", SymPlusPlus},
	{"--", SymMinusMinus},
	{":=", SymMapMatch},
	{"||", SymDoubleVerticalBar},
	{"[", SymOpenSquare},
	{"]", SymCloseSquare},
	{"(", SymOpenParen},
	{")", SymCloseParen},
	{"{", SymOpenBrace},
	{"}", SymCloseBrace},
	{"#", SymSharp},
	{"/", SymSlash},
	{".", SymDot},
	{",", SymComma},
	{":", SymColon},
	{";", SymSemicolon},
	{"=", SymMatch},
	{"|", SymVerticalBar},
	{"?", SymQuestion},
	{"!", SymNot},
	{"-", SymHyphen},
	{"+", SymPlus},
	{"*", SymMultiply},
	{">", SymGreater},
	{"<", SymLess},
}

var symbolNames = func() map[Symbol]string {
	m := make(map[Symbol]string, len(symbolTable))
	for _, e := range symbolTable {
		m[e.sym] = e.text
	}
	return m
}()

func (s Symbol) String() string { return symbolNames[s] }

// character classes

func isWhitespaceRune(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n', '\u00a0':
		return true
	}
	return false
}

func isDecimalDigit(r rune) bool { return r >= '0' && r <= '9' }

// digitValue returns the numeric value of r as a radix digit, or -1.
func digitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 10
	}
	return -1
}

func isAtomHead(r rune) bool { return unicode.IsLower(r) }

func isVariableHead(r rune) bool { return unicode.IsUpper(r) || r == '_' }

// isNameTail covers the continuation set shared by atoms and variables.
func isNameTail(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '@'
}
