package erltok

import "unicode/utf8"

// scanner is a rune cursor over the source string. It owns the live Position
// and hands out verbatim slices between saved positions; recognizers never
// touch the string directly.
type scanner struct {
	src string
	pos Position
}

func newScanner(src string) scanner {
	return scanner{src: src, pos: startPosition()}
}

func (s *scanner) eof() bool { return s.pos.Byte >= len(s.src) }

// peek returns the rune at the cursor without consuming it.
func (s *scanner) peek() (rune, bool) {
	if s.eof() {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s.src[s.pos.Byte:])
	return r, true
}

// peekAt returns the rune n runes ahead of the cursor (peekAt(0) == peek).
func (s *scanner) peekAt(n int) (rune, bool) {
	off := s.pos.Byte
	for {
		if off >= len(s.src) {
			return 0, false
		}
		r, size := utf8.DecodeRuneInString(s.src[off:])
		if n == 0 {
			return r, true
		}
		off += size
		n--
	}
}

// next consumes one rune and advances the position.
func (s *scanner) next() (rune, bool) {
	if s.eof() {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(s.src[s.pos.Byte:])
	s.pos.advance(r, size)
	return r, true
}

// hasPrefix reports whether the unread source starts with p.
func (s *scanner) hasPrefix(p string) bool {
	rest := s.src[s.pos.Byte:]
	return len(rest) >= len(p) && rest[:len(p)] == p
}

// text returns the verbatim source between from and the cursor.
func (s *scanner) text(from Position) string {
	return s.src[from.Byte:s.pos.Byte]
}
