package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorPeekDoesNotConsume(t *testing.T) {
	t.Parallel()

	c := newCursor("ab")

	ch, ok := c.peek()
	assert.True(t, ok)
	assert.Equal(t, 'a', ch)

	ch, ok = c.peekAhead(1)
	assert.True(t, ok)
	assert.Equal(t, 'b', ch)

	_, ok = c.peekAhead(2)
	assert.False(t, ok)

	ch, ok = c.next()
	assert.True(t, ok)
	assert.Equal(t, 'a', ch)

	ch, ok = c.next()
	assert.True(t, ok)
	assert.Equal(t, 'b', ch)
	assert.True(t, c.atEnd())

	_, ok = c.next()
	assert.False(t, ok)
	_, ok = c.peek()
	assert.False(t, ok)
}

func TestCursorEmpty(t *testing.T) {
	t.Parallel()

	c := newCursor("")
	assert.True(t, c.atEnd())
	_, ok := c.peek()
	assert.False(t, ok)
}
