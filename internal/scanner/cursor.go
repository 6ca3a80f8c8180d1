package scanner

// cursor is a forward-only reader over the source runes with unbounded
// lookahead. Peeking never consumes; only next moves the cursor.
type cursor struct {
	src []rune
	pos int
}

func newCursor(input string) *cursor {
	return &cursor{src: []rune(input)}
}

func (c *cursor) next() (rune, bool) {
	if c.atEnd() {
		return 0, false
	}
	ch := c.src[c.pos]
	c.pos++
	return ch, true
}

func (c *cursor) peek() (rune, bool) {
	return c.peekAhead(0)
}

// peekAhead returns the rune n positions past the cursor without consuming
// anything; n = 0 is the next rune.
func (c *cursor) peekAhead(n int) (rune, bool) {
	if c.pos+n >= len(c.src) {
		return 0, false
	}
	return c.src[c.pos+n], true
}

func (c *cursor) atEnd() bool {
	return c.pos >= len(c.src)
}
