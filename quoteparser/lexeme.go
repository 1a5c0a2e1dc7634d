package quoteparser

type LexemeType int

const (
	WordLexeme LexemeType = iota + 1
	NumberLexeme
	SpaceLexeme
	PeriodLexeme
	EllipsisLexeme
	PunctLexeme
	HyphenLexeme
	DashLexeme
	EqualsLexeme

	OpeningGroupLexeme
	ClosingGroupLexeme

	QuoteSingleLexeme
	QuoteDoubleLexeme

	// International marks keep their exact glyph in Lexeme.Glyph so they
	// round-trip through the replacer.
	QuoteSingleOpeningLexeme
	QuoteSingleClosingLexeme
	QuoteDoubleOpeningLexeme
	QuoteDoubleClosingLexeme

	EscSingleLexeme
	EscDoubleLexeme

	// PrimeDoubleLexeme is only synthesized by the emitter when consecutive
	// quotes after a number (2'', 6''', 3"") are merged into one measurement
	// mark.
	PrimeDoubleLexeme

	EOLLexeme
	EOPLexeme
	SOTLexeme
	EOTLexeme

	// EndingLexeme and AnyLexeme are meta-categories used in rule patterns;
	// the lexer never emits them.
	EndingLexeme
	AnyLexeme
	NoneLexeme
)

func (lt LexemeType) GoString() string {
	return lexemeToDescription[lt]
}

func (lt LexemeType) String() string {
	return lexemeToDescription[lt]
}

func init() {
	// make sure we panic if a description isn't declared
	for lt := LexemeType(1); lt != NoneLexeme; lt++ {
		if lexemeToDescription[lt] == "" {
			panic("you have not updated lexemeToDescription")
		}
	}
}

var lexemeToDescription = map[LexemeType]string{
	WordLexeme:     "WordLexeme",
	NumberLexeme:   "NumberLexeme",
	SpaceLexeme:    "SpaceLexeme",
	PeriodLexeme:   "PeriodLexeme",
	EllipsisLexeme: "EllipsisLexeme",
	PunctLexeme:    "PunctLexeme",
	HyphenLexeme:   "HyphenLexeme",
	DashLexeme:     "DashLexeme",
	EqualsLexeme:   "EqualsLexeme",

	OpeningGroupLexeme: "OpeningGroupLexeme",
	ClosingGroupLexeme: "ClosingGroupLexeme",

	QuoteSingleLexeme: "QuoteSingleLexeme",
	QuoteDoubleLexeme: "QuoteDoubleLexeme",

	QuoteSingleOpeningLexeme: "QuoteSingleOpeningLexeme",
	QuoteSingleClosingLexeme: "QuoteSingleClosingLexeme",
	QuoteDoubleOpeningLexeme: "QuoteDoubleOpeningLexeme",
	QuoteDoubleClosingLexeme: "QuoteDoubleClosingLexeme",

	EscSingleLexeme: "EscSingleLexeme",
	EscDoubleLexeme: "EscDoubleLexeme",

	PrimeDoubleLexeme: "PrimeDoubleLexeme",

	EOLLexeme: "EOLLexeme",
	EOPLexeme: "EOPLexeme",
	SOTLexeme: "SOTLexeme",
	EOTLexeme: "EOTLexeme",

	EndingLexeme: "EndingLexeme",
	AnyLexeme:    "AnyLexeme",
	NoneLexeme:   "NoneLexeme",
}

// Lexeme is a half-open byte interval [Began, Ended) of the input, tagged
// with its type. The lexer does not allocate substrings; callers slice the
// input by offset when they need the text.
type Lexeme struct {
	Type  LexemeType
	Began int
	Ended int
	Glyph string
}

func (l Lexeme) Text(input string) string {
	return input[l.Began:l.Ended]
}

// IsEnding reports whether the lexeme is one of the stream-ending kinds
// matched by the EndingLexeme meta-category.
func (l Lexeme) IsEnding() bool {
	switch l.Type {
	case EOLLexeme, EOPLexeme, EOTLexeme:
		return true
	}
	return false
}

// IsQuote reports whether the lexeme is a candidate for token classification.
func (l Lexeme) IsQuote() bool {
	switch l.Type {
	case QuoteSingleLexeme, QuoteDoubleLexeme,
		QuoteSingleOpeningLexeme, QuoteSingleClosingLexeme,
		QuoteDoubleOpeningLexeme, QuoteDoubleClosingLexeme,
		EscSingleLexeme, EscDoubleLexeme:
		return true
	}
	return false
}
