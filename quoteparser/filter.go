package quoteparser

import (
	"strings"
	"unicode"
)

// SkipFilter is applied at every outer iteration of the lexer; it may advance
// the cursor past a region that must not be lexed and report true. The lexer
// re-applies it in a loop since two skippable regions may abut.
type SkipFilter func(*Cursor) bool

// PlainFilter never skips anything.
func PlainFilter(*Cursor) bool {
	return false
}

// untouchableElements are tags whose entire contents pass through unchanged.
var untouchableElements = map[string]struct{}{
	"pre":       {},
	"code":      {},
	"tt":        {},
	"tex":       {},
	"kbd":       {},
	"samp":      {},
	"var":       {},
	"l":         {},
	"blockcode": {},
}

// XMLFilter advances the cursor past XML tags and past the contents of
// untouchable elements. The document must be well-formed; '<' and '>' in
// character data must be entity-encoded. On malformed input (an unterminated
// tag) it returns false without consuming anything, and the lexer continues
// on the '<' it stopped at.
func XMLFilter(c *Cursor) bool {
	if c.Current() != '<' {
		return false
	}
	probe := c.Clone()
	inner, ok := readTag(probe)
	if !ok {
		return false
	}
	*c = *probe
	name, selfClosing := tagName(inner)
	if _, untouchable := untouchableElements[name]; untouchable && !selfClosing {
		skipUntouchableBody(c, name)
	}
	return true
}

// readTag consumes '<' through the matching '>' and returns the raw bracket
// content. ok is false when no '>' is found before end of input; the cursor
// is then in an undefined position and must be discarded.
func readTag(c *Cursor) (inner string, ok bool) {
	c.Next() // consume '<'
	start := c.Index()
	for {
		switch c.Current() {
		case EndOfText:
			return "", false
		case '>':
			inner = c.Substring(start, c.Index())
			c.Next() // consume '>'
			return inner, true
		}
		c.Next()
	}
}

// tagName extracts the first whitespace-terminated identifier of the bracket
// content, lowercased. `</p>` yields "/p"; `<br/>` yields "br" with
// selfClosing set.
func tagName(inner string) (name string, selfClosing bool) {
	name = inner
	if i := strings.IndexFunc(inner, unicode.IsSpace); i >= 0 {
		name = inner[:i]
	}
	if strings.HasSuffix(inner, "/") {
		selfClosing = true
		name = strings.TrimSuffix(name, "/")
	}
	return strings.ToLower(name), selfClosing
}

// skipUntouchableBody consumes everything up to and including the closing
// tag of the named element. An unterminated element swallows the rest of the
// document; its body must not be touched either way.
func skipUntouchableBody(c *Cursor, name string) {
	for {
		switch c.Current() {
		case EndOfText:
			return
		case '<':
			probe := c.Clone()
			inner, ok := readTag(probe)
			if !ok {
				return
			}
			*c = *probe
			closing, _ := tagName(inner)
			if closing == "/"+name {
				return
			}
		default:
			c.Next()
		}
	}
}
