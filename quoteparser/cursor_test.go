package quoteparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorStepping(t *testing.T) {
	c := NewCursor("ab")
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, 'a', c.Current())
	assert.Equal(t, 'b', c.Peek())
	assert.True(t, c.HasNext())

	assert.Equal(t, 'b', c.Advance())
	assert.Equal(t, 1, c.Index())
	assert.Equal(t, EndOfText, c.Peek())

	c.Next()
	assert.Equal(t, 2, c.Index())
	assert.Equal(t, EndOfText, c.Current())
	assert.False(t, c.HasNext())

	// stepping past the end stays put
	c.Next()
	assert.Equal(t, 2, c.Index())

	c.Prev()
	assert.Equal(t, 'b', c.Current())
}

func TestCursorMultibyte(t *testing.T) {
	c := NewCursor("a“b")
	assert.Equal(t, 'a', c.Current())
	assert.Equal(t, '“', c.Advance())
	assert.Equal(t, 1, c.Index())
	assert.Equal(t, 'b', c.Advance())
	assert.Equal(t, 4, c.Index())
	c.Prev()
	assert.Equal(t, '“', c.Current())
	assert.Equal(t, 1, c.Index())
}

func TestCursorSkip(t *testing.T) {
	c := NewCursor("   x")
	c.Skip(func(r rune) bool { return r == ' ' })
	// Skip leaves the cursor on the last matching rune
	assert.Equal(t, 2, c.Index())
	assert.Equal(t, 'x', c.Advance())
}

func TestCursorEmptyInput(t *testing.T) {
	c := NewCursor("")
	assert.Equal(t, EndOfText, c.Current())
	assert.Equal(t, EndOfText, c.Peek())
	assert.False(t, c.HasNext())
	c.Prev()
	assert.Equal(t, 0, c.Index())
}

func TestCursorClone(t *testing.T) {
	c := NewCursor("abc")
	c.Next()
	probe := c.Clone()
	probe.Next()
	assert.Equal(t, 1, c.Index())
	assert.Equal(t, 2, probe.Index())
}

func TestCursorSubstring(t *testing.T) {
	c := NewCursor("hello")
	assert.Equal(t, "ell", c.Substring(1, 4))
}
