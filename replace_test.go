package quotecurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vippsas/quotecurl/quoteparser"
)

func TestReplacerOffsetDelta(t *testing.T) {
	// two replacements of different lengths; the second span must shift by
	// the delta the first one introduced
	r := newReplacer(`a'b'c`)
	first := &quoteparser.Token{
		Type:   quoteparser.QuoteApostropheToken,
		Lexeme: quoteparser.Lexeme{Type: quoteparser.QuoteSingleLexeme, Began: 1, Ended: 2},
	}
	second := &quoteparser.Token{
		Type:   quoteparser.QuoteApostropheToken,
		Lexeme: quoteparser.Lexeme{Type: quoteparser.QuoteSingleLexeme, Began: 3, Ended: 4},
	}
	r.replace(first, "&apos;")
	r.replace(second, "&apos;")
	assert.Equal(t, "a&apos;b&apos;c", r.String())
}

func TestReplacerShrinkingReplacement(t *testing.T) {
	// \' shrinks to ' and the offset goes negative
	r := newReplacer(`x\'y\'z`)
	esc := func(began int) *quoteparser.Token {
		return &quoteparser.Token{
			Type:   quoteparser.QuoteStraightSingleToken,
			Lexeme: quoteparser.Lexeme{Type: quoteparser.EscSingleLexeme, Began: began, Ended: began + 2},
		}
	}
	r.replace(esc(1), "'")
	r.replace(esc(4), "'")
	assert.Equal(t, `x'y'z`, r.String())
}

func TestReplacerPanicsOnBadSpan(t *testing.T) {
	r := newReplacer("ab")
	bad := &quoteparser.Token{
		Type:   quoteparser.QuoteApostropheToken,
		Lexeme: quoteparser.Lexeme{Type: quoteparser.QuoteSingleLexeme, Began: 5, Ended: 6},
	}
	require.Panics(t, func() {
		r.replace(bad, "x")
	})
}

func TestReplacementTablesCoverEveryDefiniteType(t *testing.T) {
	definite := []quoteparser.TokenType{
		quoteparser.QuoteOpeningSingleToken,
		quoteparser.QuoteOpeningDoubleToken,
		quoteparser.QuoteClosingSingleToken,
		quoteparser.QuoteClosingDoubleToken,
		quoteparser.QuoteApostropheToken,
		quoteparser.QuoteStraightSingleToken,
		quoteparser.QuoteStraightDoubleToken,
		quoteparser.QuotePrimeSingleToken,
		quoteparser.QuotePrimeDoubleToken,
		quoteparser.QuotePrimeTripleToken,
		quoteparser.QuotePrimeQuadrupleToken,
	}
	for _, tt := range definite {
		assert.Contains(t, entityReplacements, tt)
		assert.Contains(t, glyphReplacements, tt)
	}
}
