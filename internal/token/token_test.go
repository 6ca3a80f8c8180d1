package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/riva-lang/riva/internal/token"
)

func TestPosition(t *testing.T) {
	t.Parallel()

	pos := token.StartPosition()
	assert.Equal(t, token.Position{Line: 1, Column: 1}, pos)

	pos.NextColumn()
	pos.NextColumn()
	assert.Equal(t, token.Position{Line: 1, Column: 3}, pos)

	pos.NextLine()
	assert.Equal(t, token.Position{Line: 2, Column: 1}, pos)
	assert.Equal(t, "line 2, column 1", pos.String())
}

func TestLexemePayloads(t *testing.T) {
	t.Parallel()

	assert.Equal(t, token.Lexeme{Kind: token.IDENTIFIER, Text: "abc"}, token.Identifier("abc"))
	assert.Equal(t, token.Lexeme{Kind: token.STRING, Text: "a b"}, token.StringLiteral("a b"))
	assert.Equal(t, token.Lexeme{Kind: token.NUMBER, Number: 1.5}, token.NumberLiteral(1.5))
	assert.Equal(t, token.Lexeme{Kind: token.COMMA}, token.Symbol(token.COMMA))

	assert.Equal(t, `IDENTIFIER "abc"`, token.Identifier("abc").String())
	assert.Equal(t, `NUMBER 1.5`, token.NumberLiteral(1.5).String())
	assert.Equal(t, `LESS_EQUAL`, token.Symbol(token.LESS_EQUAL).String())
}

func TestReserved(t *testing.T) {
	t.Parallel()

	kind, ok := token.Reserved("while")
	assert.True(t, ok)
	assert.Equal(t, token.WHILE, kind)

	_, ok = token.Reserved("whilee")
	assert.False(t, ok)
	_, ok = token.Reserved("Let")
	assert.False(t, ok)
}

func TestKeywords(t *testing.T) {
	t.Parallel()

	words := token.Keywords()
	assert.Equal(t, []string{
		"and", "class", "else", "false", "for", "func", "if", "let",
		"nil", "or", "print", "return", "super", "this", "true", "while",
	}, words)

	for _, word := range words {
		_, ok := token.Reserved(word)
		assert.Truef(t, ok, "keyword %q not reserved", word)
	}
}

func TestTokenStrings(t *testing.T) {
	t.Parallel()

	tok := token.NewToken(token.Identifier("x"), token.Position{Line: 3, Column: 7})
	assert.Equal(t, `IDENTIFIER "x" [line 3, column 7]`, tok.String())
	assert.Equal(t, `{Kind: IDENTIFIER, Text: "x", Line: 3, Column: 7}`, tok.GoString())

	tok = token.NewToken(token.NumberLiteral(10), token.Position{Line: 1, Column: 3})
	assert.Equal(t, `{Kind: NUMBER, Number: 10, Line: 1, Column: 3}`, tok.GoString())

	tok = token.NewToken(token.Symbol(token.EOF), token.Position{Line: 1, Column: 1})
	assert.Equal(t, `{Kind: EOF, Line: 1, Column: 1}`, tok.GoString())
}
