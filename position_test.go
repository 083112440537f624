package erltok

import "testing"

func Test_Position_Advance(t *testing.T) {
	s := newScanner("ab\ncä")

	if got := s.pos; got != (Position{Byte: 0, Rune: 0, Line: 1, Col: 0}) {
		t.Fatalf("fresh scanner position: %+v", got)
	}

	s.next() // 'a'
	s.next() // 'b'
	if got := s.pos; got != (Position{Byte: 2, Rune: 2, Line: 1, Col: 2}) {
		t.Fatalf("after two runes: %+v", got)
	}

	s.next() // '\n'
	if got := s.pos; got != (Position{Byte: 3, Rune: 3, Line: 2, Col: 0}) {
		t.Fatalf("newline must bump the line and reset the column: %+v", got)
	}

	s.next() // 'c'
	s.next() // 'ä' (two bytes, one rune)
	if got := s.pos; got != (Position{Byte: 6, Rune: 5, Line: 2, Col: 2}) {
		t.Fatalf("multi-byte rune must advance Byte by its size: %+v", got)
	}

	if _, ok := s.next(); ok {
		t.Fatalf("scanner should be exhausted")
	}
}

func Test_Position_String(t *testing.T) {
	p := Position{Line: 3, Col: 0}
	if p.String() != "3:1" {
		t.Fatalf("String renders a 1-based column, got %q", p.String())
	}
}

func Test_Scanner_PeekAt(t *testing.T) {
	s := newScanner("äbc")
	if r, ok := s.peekAt(0); !ok || r != 'ä' {
		t.Fatalf("peekAt(0): %q %v", r, ok)
	}
	if r, ok := s.peekAt(2); !ok || r != 'c' {
		t.Fatalf("peekAt(2): %q %v", r, ok)
	}
	if _, ok := s.peekAt(3); ok {
		t.Fatalf("peekAt past the end must report !ok")
	}
	if got := s.pos.Byte; got != 0 {
		t.Fatalf("peeking must not move the cursor, got byte %d", got)
	}
}
