package token

import (
	"fmt"
)

// Token pairs a lexeme with the position at which it was recognized.
// Tokens are immutable once constructed.
type Token struct {
	Lexeme   Lexeme
	Position Position
}

func NewToken(lexeme Lexeme, position Position) Token {
	return Token{
		Lexeme:   lexeme,
		Position: position,
	}
}

// String implements fmt.Stringer.
func (t Token) String() string {
	return fmt.Sprintf("%s [%s]", t.Lexeme, t.Position)
}

// GoString implements fmt.GoStringer.
func (t Token) GoString() string {
	switch t.Lexeme.Kind {
	case IDENTIFIER, STRING:
		return fmt.Sprintf("{Kind: %s, Text: %q, Line: %d, Column: %d}",
			t.Lexeme.Kind, t.Lexeme.Text, t.Position.Line, t.Position.Column)
	case NUMBER:
		return fmt.Sprintf("{Kind: %s, Number: %v, Line: %d, Column: %d}",
			t.Lexeme.Kind, t.Lexeme.Number, t.Position.Line, t.Position.Column)
	default:
		return fmt.Sprintf("{Kind: %s, Line: %d, Column: %d}",
			t.Lexeme.Kind, t.Position.Line, t.Position.Column)
	}
}

var _ fmt.Stringer = (*Token)(nil)
var _ fmt.GoStringer = (*Token)(nil)
