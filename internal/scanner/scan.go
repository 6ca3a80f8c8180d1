package scanner

import (
	"github.com/riva-lang/riva/internal/token"
)

// Scan runs one full pass over source and returns its tokens in order.
// Comment and whitespace tokens are discarded and the terminating EOF token
// is not included. The first scan failure aborts the pass; no partial
// sequence is returned.
func Scan(source string) ([]token.Token, error) {
	s := New(source)
	var tokens []token.Token
	for {
		tok, err := s.ScanToken()
		if err != nil {
			return nil, err
		}

		switch tok.Lexeme.Kind {
		case token.WHITESPACE, token.COMMENT:
			// internal, never escapes to the caller
		case token.EOF:
			return tokens, nil
		default:
			tokens = append(tokens, tok)
		}
	}
}
