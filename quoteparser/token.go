package quoteparser

type TokenType int

const (
	QuoteOpeningSingleToken TokenType = iota + 1
	QuoteOpeningDoubleToken
	QuoteClosingSingleToken
	QuoteClosingDoubleToken

	QuoteApostropheToken

	// Straight tokens come from backslash-escaped quotes; they are written
	// back as plain straight quotes without the backslash.
	QuoteStraightSingleToken
	QuoteStraightDoubleToken

	QuotePrimeSingleToken
	QuotePrimeDoubleToken
	QuotePrimeTripleToken
	QuotePrimeQuadrupleToken

	// The three ambiguity categories are distinct on purpose: leading and
	// lagging encode a directional hint consumed by different resolver
	// rules; AmbiguousToken carries no hint at all.
	QuoteAmbiguousLeadingToken
	QuoteAmbiguousLaggingToken
	AmbiguousToken

	NoneToken
)

func (tt TokenType) GoString() string {
	return tokenToDescription[tt]
}

func (tt TokenType) String() string {
	return tokenToDescription[tt]
}

func init() {
	// make sure we panic if a description isn't declared
	for tt := TokenType(1); tt != NoneToken; tt++ {
		if tokenToDescription[tt] == "" {
			panic("you have not updated tokenToDescription")
		}
	}
}

var tokenToDescription = map[TokenType]string{
	QuoteOpeningSingleToken: "QuoteOpeningSingleToken",
	QuoteOpeningDoubleToken: "QuoteOpeningDoubleToken",
	QuoteClosingSingleToken: "QuoteClosingSingleToken",
	QuoteClosingDoubleToken: "QuoteClosingDoubleToken",

	QuoteApostropheToken: "QuoteApostropheToken",

	QuoteStraightSingleToken: "QuoteStraightSingleToken",
	QuoteStraightDoubleToken: "QuoteStraightDoubleToken",

	QuotePrimeSingleToken:    "QuotePrimeSingleToken",
	QuotePrimeDoubleToken:    "QuotePrimeDoubleToken",
	QuotePrimeTripleToken:    "QuotePrimeTripleToken",
	QuotePrimeQuadrupleToken: "QuotePrimeQuadrupleToken",

	QuoteAmbiguousLeadingToken: "QuoteAmbiguousLeadingToken",
	QuoteAmbiguousLaggingToken: "QuoteAmbiguousLaggingToken",
	AmbiguousToken:             "AmbiguousToken",

	NoneToken: "NoneToken",
}

// Token is a classified quotation mark: a type plus the lexeme it was minted
// from. Type is the only mutable field; the resolver promotes ambiguous
// tokens to definite kinds in place.
type Token struct {
	Type   TokenType
	Lexeme Lexeme
}

func (t *Token) Began() int {
	return t.Lexeme.Began
}

func (t *Token) Ended() int {
	return t.Lexeme.Ended
}

func (t *Token) Ambiguous() bool {
	switch t.Type {
	case QuoteAmbiguousLeadingToken, QuoteAmbiguousLaggingToken, AmbiguousToken:
		return true
	}
	return false
}

func (t *Token) Opening() bool {
	return t.Type == QuoteOpeningSingleToken || t.Type == QuoteOpeningDoubleToken
}

func (t *Token) Closing() bool {
	return t.Type == QuoteClosingSingleToken || t.Type == QuoteClosingDoubleToken
}
