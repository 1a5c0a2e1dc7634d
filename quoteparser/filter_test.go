package quoteparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainFilter(t *testing.T) {
	c := NewCursor("<p>hi</p>")
	assert.False(t, PlainFilter(c))
	assert.Equal(t, 0, c.Index())
}

func TestXMLFilterSkipsTag(t *testing.T) {
	c := NewCursor("<em>word")
	require.True(t, XMLFilter(c))
	assert.Equal(t, 4, c.Index())
	// not positioned on a tag anymore
	assert.False(t, XMLFilter(c))
}

func TestXMLFilterAbuttingTags(t *testing.T) {
	c := NewCursor("<p><em>x")
	require.True(t, XMLFilter(c))
	require.True(t, XMLFilter(c))
	assert.Equal(t, 'x', c.Current())
}

func TestXMLFilterUntouchableElement(t *testing.T) {
	input := `<pre>don't 'touch' this</pre>after`
	c := NewCursor(input)
	require.True(t, XMLFilter(c))
	assert.Equal(t, 'a', c.Current())
}

func TestXMLFilterUntouchableCaseInsensitive(t *testing.T) {
	c := NewCursor(`<PRE>x'y</PRE>z`)
	require.True(t, XMLFilter(c))
	assert.Equal(t, 'z', c.Current())
}

func TestXMLFilterNestedTagsInsideUntouchable(t *testing.T) {
	input := `<pre>a <b>c'd</b> e</pre>rest`
	c := NewCursor(input)
	require.True(t, XMLFilter(c))
	assert.Equal(t, 'r', c.Current())
}

func TestXMLFilterSelfClosingUntouchable(t *testing.T) {
	// a self-closing untouchable has no body to skip
	c := NewCursor(`<code/>after`)
	require.True(t, XMLFilter(c))
	assert.Equal(t, 'a', c.Current())
}

func TestXMLFilterAttributesPassThrough(t *testing.T) {
	c := NewCursor(`<a href="x'y">link`)
	require.True(t, XMLFilter(c))
	assert.Equal(t, 'l', c.Current())
}

func TestXMLFilterMalformedYields(t *testing.T) {
	// unterminated tag: the filter must return control without consuming
	c := NewCursor("<unterminated and more")
	assert.False(t, XMLFilter(c))
	assert.Equal(t, 0, c.Index())
}

func TestXMLFilterUnterminatedUntouchable(t *testing.T) {
	// the rest of the document becomes the untouchable body
	c := NewCursor(`<pre>never 'closed'`)
	require.True(t, XMLFilter(c))
	assert.Equal(t, EndOfText, c.Current())
}

func TestLexWithXMLFilter(t *testing.T) {
	input := `<em>'twas</em>`
	lexemes := strip(Lex(input, XMLFilter))
	require.Len(t, lexemes, 2)
	assert.Equal(t, QuoteSingleLexeme, lexemes[0].Type)
	assert.Equal(t, WordLexeme, lexemes[1].Type)
}
