package token

import "fmt"

// Position is a 1-based line and column location in the source text.
type Position struct {
	Line   int
	Column int
}

// StartPosition returns the position of the start of a source text.
func StartPosition() Position {
	return Position{Line: 1, Column: 1}
}

// NextColumn moves the position one column to the right.
func (p *Position) NextColumn() {
	p.Column++
}

// NextLine moves the position to the first column of the next line.
func (p *Position) NextLine() {
	p.Line++
	p.Column = 1
}

// String implements fmt.Stringer.
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

var _ fmt.Stringer = (*Position)(nil)
