// errors.go: lexical error taxonomy and caret-snippet rendering.
//
// The tokenizer reports exactly three failure shapes, each carrying the
// position of the offending character:
//
//   - ErrInvalidInput: the current character starts no token category.
//   - ErrUnterminatedLiteral: a string/char/quoted atom ran into end-of-input
//     (or a disallowed raw control character) before its closing delimiter;
//     the position is the opening delimiter.
//   - ErrMalformedNumber: invalid radix digit, misplaced digit separator, or
//     a missing digit after '.' / an exponent marker.
//
// WrapErrorWithSource upgrades a bare *Error into a multi-line, plain-text
// snippet with a caret under the offending column:
//
//	LEXICAL ERROR at 2:6: unterminated string starting here
//
//	   1 | ok.
//	   2 | X = "abc
//	     |     ^
//
// The snippet shows up to one line of context before and after, numbers the
// lines, and clamps out-of-range coordinates so rendering never panics.
package erltok

import (
	"fmt"
	"strings"
)

// ErrorKind discriminates lexical errors.
type ErrorKind int

const (
	ErrInvalidInput ErrorKind = iota
	ErrUnterminatedLiteral
	ErrMalformedNumber
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidInput:
		return "invalid input"
	case ErrUnterminatedLiteral:
		return "unterminated literal"
	case ErrMalformedNumber:
		return "malformed number"
	}
	return "unknown"
}

// Error is a lexical error positioned at the offending character.
type Error struct {
	Kind ErrorKind
	Pos  Position
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("LEXICAL ERROR at %d:%d: %s", e.Pos.Line, e.Pos.Col+1, e.Msg)
}

func invalidInput(pos Position, msg string) *Error {
	return &Error{Kind: ErrInvalidInput, Pos: pos, Msg: msg}
}

func unterminated(pos Position, msg string) *Error {
	return &Error{Kind: ErrUnterminatedLiteral, Pos: pos, Msg: msg}
}

func malformedNumber(pos Position, msg string) *Error {
	return &Error{Kind: ErrMalformedNumber, Pos: pos, Msg: msg}
}

// WrapErrorWithSource returns err augmented with a caret-annotated snippet of
// src. Errors other than *Error pass through unchanged.
func WrapErrorWithSource(err error, src string) error {
	return WrapErrorWithName(err, "", src)
}

// WrapErrorWithName is WrapErrorWithSource with a source name in the header
// ("LEXICAL ERROR in <name> at ...").
func WrapErrorWithName(err error, srcName, src string) error {
	e, ok := err.(*Error)
	if !ok {
		return err
	}
	// Pos.Col is 0-based; render as 1-based.
	return fmt.Errorf("%s", caretSnippet(src, srcName, e.Pos.Line, e.Pos.Col+1, e.Msg))
}

// caretSnippet builds the numbered-context snippet. Coordinates are 1-based
// and clamped to the source bounds.
func caretSnippet(src, name string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line > len(lines) {
		line = len(lines)
	}
	lineTxt := lines[line-1]

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "LEXICAL ERROR in %s at %d:%d: %s\n\n", name, line, col, msg)
	} else {
		fmt.Fprintf(&b, "LEXICAL ERROR at %d:%d: %s\n\n", line, col, msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lineTxt)
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
