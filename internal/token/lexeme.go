package token

import (
	"fmt"
	"sort"

	"golang.org/x/exp/maps"
)

// Kind classifies a lexeme. The set is closed: every value the scanner
// produces is one of the constants below.
type Kind int

const (
	// Single-character punctuation.
	LEFT_PAREN Kind = iota
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	COMMA
	DOT
	MINUS
	PLUS
	SEMICOLON
	SLASH
	STAR

	// One or two character operators.
	BANG
	BANG_EQUAL
	EQUAL
	DOUBLE_EQUAL
	GREATER
	GREATER_EQUAL
	LESS
	LESS_EQUAL

	// Payload carriers.
	IDENTIFIER
	STRING
	NUMBER

	// Reserved keywords.
	AND
	CLASS
	ELSE
	FALSE
	FOR
	FUNC
	IF
	LET
	NIL
	OR
	PRINT
	RETURN
	SUPER
	THIS
	TRUE
	WHILE

	// Internal kinds, produced by the scanner and filtered out by the
	// driver before tokens reach the caller.
	COMMENT
	WHITESPACE
	EOF
)

var kindNames = [...]string{
	LEFT_PAREN:    "LEFT_PAREN",
	RIGHT_PAREN:   "RIGHT_PAREN",
	LEFT_BRACE:    "LEFT_BRACE",
	RIGHT_BRACE:   "RIGHT_BRACE",
	COMMA:         "COMMA",
	DOT:           "DOT",
	MINUS:         "MINUS",
	PLUS:          "PLUS",
	SEMICOLON:     "SEMICOLON",
	SLASH:         "SLASH",
	STAR:          "STAR",
	BANG:          "BANG",
	BANG_EQUAL:    "BANG_EQUAL",
	EQUAL:         "EQUAL",
	DOUBLE_EQUAL:  "DOUBLE_EQUAL",
	GREATER:       "GREATER",
	GREATER_EQUAL: "GREATER_EQUAL",
	LESS:          "LESS",
	LESS_EQUAL:    "LESS_EQUAL",
	IDENTIFIER:    "IDENTIFIER",
	STRING:        "STRING",
	NUMBER:        "NUMBER",
	AND:           "AND",
	CLASS:         "CLASS",
	ELSE:          "ELSE",
	FALSE:         "FALSE",
	FOR:           "FOR",
	FUNC:          "FUNC",
	IF:            "IF",
	LET:           "LET",
	NIL:           "NIL",
	OR:            "OR",
	PRINT:         "PRINT",
	RETURN:        "RETURN",
	SUPER:         "SUPER",
	THIS:          "THIS",
	TRUE:          "TRUE",
	WHILE:         "WHILE",
	COMMENT:       "COMMENT",
	WHITESPACE:    "WHITESPACE",
	EOF:           "EOF",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Lexeme is the classified category of a token together with its payload,
// if the kind carries one. Text holds the identifier name or the string
// literal body, Number the numeric literal value; both are zero for every
// other kind, so values compare with ==.
type Lexeme struct {
	Kind   Kind
	Text   string
	Number float64
}

// Symbol returns the payload-free lexeme for kind.
func Symbol(kind Kind) Lexeme {
	return Lexeme{Kind: kind}
}

// Identifier returns an IDENTIFIER lexeme owning a copy of name.
func Identifier(name string) Lexeme {
	return Lexeme{Kind: IDENTIFIER, Text: name}
}

// StringLiteral returns a STRING lexeme. Text is the literal body between,
// excluding, the delimiting quotes.
func StringLiteral(text string) Lexeme {
	return Lexeme{Kind: STRING, Text: text}
}

// NumberLiteral returns a NUMBER lexeme carrying value.
func NumberLiteral(value float64) Lexeme {
	return Lexeme{Kind: NUMBER, Text: "", Number: value}
}

// String implements fmt.Stringer.
func (l Lexeme) String() string {
	switch l.Kind {
	case IDENTIFIER, STRING:
		return fmt.Sprintf("%s %q", l.Kind, l.Text)
	case NUMBER:
		return fmt.Sprintf("%s %v", l.Kind, l.Number)
	default:
		return l.Kind.String()
	}
}

var reservedKeywords = map[string]Kind{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"for":    FOR,
	"func":   FUNC,
	"if":     IF,
	"let":    LET,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"while":  WHILE,
}

// Reserved reports whether name is a reserved keyword and, if so, its kind.
func Reserved(name string) (Kind, bool) {
	kind, ok := reservedKeywords[name]
	return kind, ok
}

// Keywords returns the reserved word list in sorted order.
func Keywords() []string {
	words := maps.Keys(reservedKeywords)
	sort.Strings(words)
	return words
}

var _ fmt.Stringer = (*Kind)(nil)
var _ fmt.Stringer = (*Lexeme)(nil)
