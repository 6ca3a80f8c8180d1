package scanner

import (
	"strconv"

	"github.com/riva-lang/riva/internal/rivaerrors"
	"github.com/riva-lang/riva/internal/token"
)

// Scanner is a stateful cursor over one source text. It owns the lookahead
// cursor, the accumulation buffer for the token being recognized, and the
// current position; none of that state is safe to share, so use a fresh
// instance per scan.
type Scanner struct {
	cur *cursor
	buf []rune
	pos token.Position
}

// New returns a Scanner positioned at the start of input.
func New(input string) *Scanner {
	return &Scanner{cur: newCursor(input), pos: token.StartPosition()}
}

// ScanToken consumes characters until exactly one token has been recognized
// and returns it. Internal kinds (COMMENT, WHITESPACE, EOF) are returned like
// any other token; lookahead never consumes characters belonging to the next
// token. The returned token's position is the scanner position after its
// characters were consumed.
func (s *Scanner) ScanToken() (token.Token, error) {
	s.buf = s.buf[:0]

	c, ok := s.advance()
	if !ok {
		return s.makeToken(token.Symbol(token.EOF)), nil
	}

	switch c {
	case '(':
		return s.makeToken(token.Symbol(token.LEFT_PAREN)), nil
	case ')':
		return s.makeToken(token.Symbol(token.RIGHT_PAREN)), nil
	case '{':
		return s.makeToken(token.Symbol(token.LEFT_BRACE)), nil
	case '}':
		return s.makeToken(token.Symbol(token.RIGHT_BRACE)), nil
	case ',':
		return s.makeToken(token.Symbol(token.COMMA)), nil
	case '.':
		return s.makeToken(token.Symbol(token.DOT)), nil
	case '-':
		return s.makeToken(token.Symbol(token.MINUS)), nil
	case '+':
		return s.makeToken(token.Symbol(token.PLUS)), nil
	case ';':
		return s.makeToken(token.Symbol(token.SEMICOLON)), nil
	case '*':
		return s.makeToken(token.Symbol(token.STAR)), nil
	case '!':
		return s.matchToken('=', token.BANG_EQUAL, token.BANG), nil
	case '=':
		return s.matchToken('=', token.DOUBLE_EQUAL, token.EQUAL), nil
	case '>':
		return s.matchToken('=', token.GREATER_EQUAL, token.GREATER), nil
	case '<':
		return s.matchToken('=', token.LESS_EQUAL, token.LESS), nil
	case '/':
		if s.match('/') {
			return s.scanComment(), nil
		}
		return s.makeToken(token.Symbol(token.SLASH)), nil
	case '"':
		return s.scanString()
	}

	switch {
	case isWhitespace(c):
		return s.makeToken(token.Symbol(token.WHITESPACE)), nil
	case isDigit(c):
		return s.scanNumber()
	case isAlpha(c):
		return s.scanIdentifier(), nil
	}

	return token.Token{}, rivaerrors.NewScanError(
		s.pos, rivaerrors.ErrScanUnexpectedCharacter, strconv.Quote(string(s.buf)))
}

// advance consumes one character: it is appended to the accumulation buffer
// and the position moves before any token is constructed.
func (s *Scanner) advance() (rune, bool) {
	c, ok := s.cur.next()
	if !ok {
		return 0, false
	}
	s.buf = append(s.buf, c)
	if c == '\n' {
		s.pos.NextLine()
	} else {
		s.pos.NextColumn()
	}
	return c, true
}

// skip consumes one character without accumulating it. Used for the string
// delimiters, which are not part of the literal body.
func (s *Scanner) skip() {
	if c, ok := s.cur.next(); ok {
		if c == '\n' {
			s.pos.NextLine()
		} else {
			s.pos.NextColumn()
		}
	}
}

func (s *Scanner) match(expected rune) bool {
	if c, ok := s.cur.peek(); ok && c == expected {
		s.advance()
		return true
	}
	return false
}

func (s *Scanner) matchToken(lookAhead rune, ifMatch, ifNotMatched token.Kind) token.Token {
	if s.match(lookAhead) {
		return s.makeToken(token.Symbol(ifMatch))
	}
	return s.makeToken(token.Symbol(ifNotMatched))
}

func (s *Scanner) scanComment() token.Token {
	for {
		c, ok := s.advance()
		if !ok || c == '\n' {
			break
		}
	}
	return s.makeToken(token.Symbol(token.COMMENT))
}

func (s *Scanner) scanString() (token.Token, error) {
	// the opening quote is not part of the body
	s.buf = s.buf[:0]
	for {
		c, ok := s.cur.peek()
		if !ok {
			return token.Token{}, rivaerrors.NewScanError(
				s.pos, rivaerrors.ErrScanUnterminatedString, "")
		}
		if c == '"' {
			break
		}
		s.advance()
	}
	// the closing quote
	s.skip()
	return s.makeToken(token.StringLiteral(string(s.buf))), nil
}

func (s *Scanner) scanNumber() (token.Token, error) {
	seenDecimal := false
	for {
		c, ok := s.cur.peek()
		if !ok {
			break
		}
		if isDigit(c) {
			s.advance()
			continue
		}
		// at most one decimal point, and only when a digit follows it;
		// a trailing dot belongs to the next token
		if c == '.' && !seenDecimal && s.digitFollowsDecimal() {
			seenDecimal = true
			s.advance()
			continue
		}
		break
	}

	value, err := strconv.ParseFloat(string(s.buf), 64)
	if err != nil {
		return token.Token{}, rivaerrors.NewScanError(s.pos, err, "")
	}
	return s.makeToken(token.NumberLiteral(value)), nil
}

func (s *Scanner) digitFollowsDecimal() bool {
	c, ok := s.cur.peekAhead(1)
	return ok && isDigit(c)
}

func (s *Scanner) scanIdentifier() token.Token {
	for {
		c, ok := s.cur.peek()
		if !ok || !isAlphaNumeric(c) {
			break
		}
		s.advance()
	}

	name := string(s.buf)
	if kind, ok := token.Reserved(name); ok {
		return s.makeToken(token.Symbol(kind))
	}
	return s.makeToken(token.Identifier(name))
}

func (s *Scanner) makeToken(lexeme token.Lexeme) token.Token {
	return token.NewToken(lexeme, s.pos)
}

func isWhitespace(c rune) bool {
	return c == ' ' || c == '\r' || c == '\t' || c == '\n'
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		c == '_'
}

func isAlphaNumeric(c rune) bool {
	return isAlpha(c) || isDigit(c)
}
