package quotecurl

import (
	"fmt"

	"github.com/vippsas/quotecurl/quoteparser"
)

// replacer applies positional in-place rewrites on the original string. The
// tokens arrive sorted by beginning offset; every replacement shifts the
// bytes after it, so a cumulative offset maps token spans into the buffer.
type replacer struct {
	buf    []byte
	offset int
}

func newReplacer(input string) *replacer {
	return &replacer{buf: []byte(input)}
}

func (r *replacer) replace(tok *quoteparser.Token, replacement string) {
	began := tok.Began() + r.offset
	ended := tok.Ended() + r.offset
	if began < 0 || began > ended || ended > len(r.buf) {
		panic(fmt.Sprintf("replacement span [%d,%d) out of range", began, ended))
	}
	next := make([]byte, 0, len(r.buf)+len(replacement)-(ended-began))
	next = append(next, r.buf[:began]...)
	next = append(next, replacement...)
	next = append(next, r.buf[ended:]...)
	r.buf = next
	r.offset += len(replacement) - (tok.Ended() - tok.Began())
}

func (r *replacer) String() string {
	return string(r.buf)
}

var entityReplacements = map[quoteparser.TokenType]string{
	quoteparser.QuoteOpeningSingleToken:  "&lsquo;",
	quoteparser.QuoteClosingSingleToken:  "&rsquo;",
	quoteparser.QuoteOpeningDoubleToken:  "&ldquo;",
	quoteparser.QuoteClosingDoubleToken:  "&rdquo;",
	quoteparser.QuoteApostropheToken:     "&apos;",
	quoteparser.QuotePrimeSingleToken:    "&prime;",
	quoteparser.QuotePrimeDoubleToken:    "&Prime;",
	quoteparser.QuotePrimeTripleToken:    "&tprime;",
	quoteparser.QuotePrimeQuadrupleToken: "&qprime;",

	// straight quotes remain literal
	quoteparser.QuoteStraightSingleToken: "'",
	quoteparser.QuoteStraightDoubleToken: `"`,
}

var glyphReplacements = map[quoteparser.TokenType]string{
	quoteparser.QuoteOpeningSingleToken:  "‘",
	quoteparser.QuoteClosingSingleToken:  "’",
	quoteparser.QuoteOpeningDoubleToken:  "“",
	quoteparser.QuoteClosingDoubleToken:  "”",
	quoteparser.QuoteApostropheToken:     "’",
	quoteparser.QuotePrimeSingleToken:    "′",
	quoteparser.QuotePrimeDoubleToken:    "″",
	quoteparser.QuotePrimeTripleToken:    "‴",
	quoteparser.QuotePrimeQuadrupleToken: "⁗",

	quoteparser.QuoteStraightSingleToken: "'",
	quoteparser.QuoteStraightDoubleToken: `"`,
}

// internationalEntities maps pass-through glyphs to their entity form for
// entity output; glyphs with no entry pass through as themselves.
var internationalEntities = map[string]string{
	"‘": "&lsquo;",
	"’": "&rsquo;",
	"“": "&ldquo;",
	"”": "&rdquo;",
	"‚": "&sbquo;",
	"„": "&bdquo;",
	"‹": "&lsaquo;",
	"›": "&rsaquo;",
	"«": "&laquo;",
	"»": "&raquo;",
}

// replacement picks the wire form for a token. International marks keep
// their exact originating glyph so they round-trip, consulting the entity
// map first in entity mode.
func (c *Curler) replacement(tok *quoteparser.Token) string {
	if g := tok.Lexeme.Glyph; g != "" {
		if c.output == Entities {
			if entity, ok := internationalEntities[g]; ok {
				return entity
			}
		}
		return g
	}
	table := glyphReplacements
	if c.output == Entities {
		table = entityReplacements
	}
	replacement, ok := table[tok.Type]
	if !ok {
		panic(fmt.Sprintf("no replacement declared for %v", tok.Type))
	}
	return replacement
}
