package erltok

import "fmt"

// Position is a location in the source text. Byte and Rune are offsets from
// the start of the source (a multi-byte rune advances Byte by its encoded
// length but Rune by one). Line is 1-based; Col is a 0-based rune column
// within the line, so renderers that want the conventional 1-based column
// print Col+1.
type Position struct {
	Byte int
	Rune int
	Line int
	Col  int
}

func startPosition() Position {
	return Position{Line: 1}
}

// advance moves the position past one rune of the given encoded size.
func (p *Position) advance(r rune, size int) {
	p.Byte += size
	p.Rune++
	if r == '\n' {
		p.Line++
		p.Col = 0
	} else {
		p.Col++
	}
}

// String renders the position as "line:col" with a 1-based column.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col+1)
}
