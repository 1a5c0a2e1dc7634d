package quoteparser

// The quote rule table. Rules are data: per-slot permitted lexeme types, an
// optional semantic guard, and an action. They are tried top to bottom
// against the emitter's window and the first match fires.

type quoteRule struct {
	name    string
	pattern [4][]LexemeType
	guard   func(e *Emitter) bool
	fire    func(e *Emitter)
}

// Shorthands for pattern slots.
var (
	anySlot    = []LexemeType{AnyLexeme}
	looseSlot  = []LexemeType{AnyLexeme, NoneLexeme}
	endingSlot = []LexemeType{EndingLexeme}

	word   = []LexemeType{WordLexeme}
	number = []LexemeType{NumberLexeme}
	single = []LexemeType{QuoteSingleLexeme}
	double = []LexemeType{QuoteDoubleLexeme}
)

// Context sets for the opening/closing rules. The single closing sets mirror
// the double closing sets with the quote kinds swapped; the single opening
// sets are narrower than the double opening sets.
var (
	doubleOpeningLeading = []LexemeType{SOTLexeme, SpaceLexeme, DashLexeme, EqualsLexeme, OpeningGroupLexeme, EOLLexeme, EOPLexeme}
	doubleOpeningLagging = []LexemeType{WordLexeme, PunctLexeme, NumberLexeme, DashLexeme, EllipsisLexeme, OpeningGroupLexeme,
		QuoteSingleLexeme, QuoteSingleOpeningLexeme, QuoteSingleClosingLexeme, QuoteDoubleLexeme}

	doubleClosingLeading = []LexemeType{WordLexeme, NumberLexeme, PeriodLexeme, PunctLexeme, DashLexeme, EllipsisLexeme,
		ClosingGroupLexeme, QuoteSingleLexeme, QuoteSingleClosingLexeme, QuoteSingleOpeningLexeme}
	doubleClosingLagging = []LexemeType{SpaceLexeme, PunctLexeme, PeriodLexeme, EqualsLexeme, HyphenLexeme, DashLexeme,
		QuoteSingleLexeme, ClosingGroupLexeme, EndingLexeme}

	singleOpeningLeading = []LexemeType{SOTLexeme, SpaceLexeme, DashLexeme, QuoteDoubleLexeme, OpeningGroupLexeme, EOLLexeme, EOPLexeme}
	singleOpeningLagging = []LexemeType{WordLexeme, EllipsisLexeme, QuoteSingleLexeme, QuoteDoubleLexeme}

	singleClosingLeading = []LexemeType{WordLexeme, NumberLexeme, PeriodLexeme, PunctLexeme, DashLexeme, EllipsisLexeme,
		ClosingGroupLexeme, QuoteDoubleLexeme, QuoteDoubleClosingLexeme, QuoteDoubleOpeningLexeme}
	singleClosingLagging = []LexemeType{SpaceLexeme, PunctLexeme, PeriodLexeme, EqualsLexeme, HyphenLexeme, DashLexeme,
		QuoteDoubleLexeme, ClosingGroupLexeme, EndingLexeme}
)

func mint(tt TokenType) func(e *Emitter) {
	return func(e *Emitter) {
		e.emit(tt, e.win[1])
	}
}

var quoteRules = []quoteRule{
	{
		// y'all, Ph.D.'ll, 20's, she's
		name:    "apostrophe-in-word",
		pattern: [4][]LexemeType{{WordLexeme, PeriodLexeme, NumberLexeme}, single, word, anySlot},
		fire:    mint(QuoteApostropheToken),
	},
	{
		// 'n', 'owlin'
		name:    "bounded-contraction",
		pattern: [4][]LexemeType{anySlot, single, word, single},
		guard: func(e *Emitter) bool {
			w := e.word(2)
			return e.contractions.BeganUnambiguously(w) || e.contractions.EndedUnambiguously(w)
		},
		fire: func(e *Emitter) {
			e.emit(QuoteApostropheToken, e.win[1])
			e.emit(QuoteApostropheToken, e.win[3])
			e.obliterate(3)
		},
	},
	{
		// 6''' (three single quotes after a number collapse to one mark)
		name:    "prime-triple",
		pattern: [4][]LexemeType{number, single, single, single},
		fire: func(e *Emitter) {
			e.merge(QuotePrimeTripleToken, 3)
		},
	},
	{
		// 2''
		name:    "prime-double-merged",
		pattern: [4][]LexemeType{number, single, single, anySlot},
		fire: func(e *Emitter) {
			e.merge(QuotePrimeDoubleToken, 2)
		},
	},
	{
		// 3""
		name:    "prime-quadruple",
		pattern: [4][]LexemeType{number, double, double, anySlot},
		fire: func(e *Emitter) {
			e.merge(QuotePrimeQuadrupleToken, 2)
		},
	},
	{
		// 35'
		name:    "prime-single",
		pattern: [4][]LexemeType{number, single, anySlot, anySlot},
		fire:    mint(QuotePrimeSingleToken),
	},
	{
		// 10"
		name:    "prime-double",
		pattern: [4][]LexemeType{number, double, anySlot, anySlot},
		fire:    mint(QuotePrimeDoubleToken),
	},
	{
		// thinkin'
		name:    "ended-contraction",
		pattern: [4][]LexemeType{word, single, anySlot, anySlot},
		guard: func(e *Emitter) bool {
			return e.contractions.EndedUnambiguously(e.word(0))
		},
		fire: mint(QuoteApostropheToken),
	},
	{
		// '02
		name:    "year-abbreviation",
		pattern: [4][]LexemeType{anySlot, single, number, {SpaceLexeme, PunctLexeme}},
		fire:    mint(QuoteApostropheToken),
	},
	{
		// '20s
		name:    "decade-abbreviation",
		pattern: [4][]LexemeType{anySlot, single, number, word},
		guard: func(e *Emitter) bool {
			return e.word(3) == "s"
		},
		fire: mint(QuoteApostropheToken),
	},
	{
		name:    "closing-single-at-ending",
		pattern: [4][]LexemeType{{PunctLexeme, PeriodLexeme, EllipsisLexeme, DashLexeme}, single, endingSlot, anySlot},
		fire:    mint(QuoteClosingSingleToken),
	},
	{
		// \'...' at the end of a quote keeps the escape straight and closes
		name:    "escaped-single-then-closing",
		pattern: [4][]LexemeType{looseSlot, {EscSingleLexeme}, single, {SpaceLexeme, DashLexeme, EndingLexeme}},
		fire: func(e *Emitter) {
			e.emit(QuoteStraightSingleToken, e.win[1])
			e.emit(QuoteClosingSingleToken, e.win[2])
			e.obliterate(2)
		},
	},
	{
		name:    "escaped-single",
		pattern: [4][]LexemeType{looseSlot, {EscSingleLexeme}, looseSlot, looseSlot},
		fire:    mint(QuoteStraightSingleToken),
	},
	{
		name:    "escaped-double",
		pattern: [4][]LexemeType{looseSlot, {EscDoubleLexeme}, looseSlot, looseSlot},
		fire:    mint(QuoteStraightDoubleToken),
	},
	{
		// end of a nested quote at a dash
		name:    "closing-single-at-dash",
		pattern: [4][]LexemeType{{DashLexeme}, single, double, {SpaceLexeme, EndingLexeme}},
		fire:    mint(QuoteClosingSingleToken),
	},
	{
		// o'clock, jack-o'-lantern
		name:    "of-the-clock",
		pattern: [4][]LexemeType{word, single, {SpaceLexeme, HyphenLexeme}, word},
		guard: func(e *Emitter) bool {
			return e.word(0) == "o"
		},
		fire: mint(QuoteApostropheToken),
	},
	{
		name:    "opening-double",
		pattern: [4][]LexemeType{doubleOpeningLeading, double, doubleOpeningLagging, anySlot},
		fire:    mint(QuoteOpeningDoubleToken),
	},
	{
		name:    "closing-double",
		pattern: [4][]LexemeType{doubleClosingLeading, double, doubleClosingLagging, anySlot},
		fire:    mint(QuoteClosingDoubleToken),
	},
	{
		// ' 'e — an opening quote followed by a bare dialect word would
		// otherwise read as two ambiguous singles
		name:    "opening-then-dialect",
		pattern: [4][]LexemeType{{SpaceLexeme, SOTLexeme}, single, single, word},
		fire: func(e *Emitter) {
			e.emit(QuoteOpeningSingleToken, e.win[1])
			e.emit(QuoteApostropheToken, e.win[2])
			e.obliterate(2)
		},
	},
	{
		name:    "opening-single",
		pattern: [4][]LexemeType{singleOpeningLeading, single, singleOpeningLagging, anySlot},
		fire: func(e *Emitter) {
			if e.win[2].Type == WordLexeme {
				switch w := e.word(2); {
				case e.contractions.BeganAmbiguously(w):
					e.emit(QuoteAmbiguousLeadingToken, e.win[1])
					return
				case e.contractions.BeganUnambiguously(w):
					e.emit(QuoteApostropheToken, e.win[1])
					return
				}
			}
			if e.win[0].Type == QuoteDoubleLexeme && e.win[2].Type == QuoteDoubleLexeme {
				// "'" — a lone single between doubles is the nested case
				// only when a word follows
				if e.win[3].Type == WordLexeme {
					e.emit(QuoteOpeningSingleToken, e.win[1])
				} else {
					e.emit(AmbiguousToken, e.win[1])
				}
				return
			}
			// anything else in the lagging set reads as a quotation start
			e.emit(QuoteOpeningSingleToken, e.win[1])
		},
	},
	{
		name:    "closing-single",
		pattern: [4][]LexemeType{singleClosingLeading, single, singleClosingLagging, anySlot},
		fire: func(e *Emitter) {
			if e.win[0].Type == WordLexeme && e.contractions.EndedAmbiguously(e.word(0)) {
				e.emit(QuoteAmbiguousLaggingToken, e.win[1])
			} else {
				e.emit(QuoteClosingSingleToken, e.win[1])
			}
		},
	},
	{
		// residual contraction
		name:    "apostrophe-before-punct",
		pattern: [4][]LexemeType{word, single, {PunctLexeme, PeriodLexeme}, anySlot},
		fire:    mint(QuoteApostropheToken),
	},
	{
		name:    "closing-single-before-double",
		pattern: [4][]LexemeType{{DashLexeme}, single, double, anySlot},
		fire:    mint(QuoteClosingSingleToken),
	},
	{
		// '42
		name:    "opening-single-before-number",
		pattern: [4][]LexemeType{anySlot, single, number, anySlot},
		fire:    mint(QuoteOpeningSingleToken),
	},
	{
		// the lexeme on the left was consumed by a compound rule
		name:    "closing-single-after-obliteration",
		pattern: [4][]LexemeType{{NoneLexeme}, single, looseSlot, looseSlot},
		fire:    mint(QuoteClosingSingleToken),
	},
	{
		// ''word
		name:    "twin-single-before-word",
		pattern: [4][]LexemeType{single, single, word, anySlot},
		fire: func(e *Emitter) {
			switch w := e.word(2); {
			case e.contractions.BeganAmbiguously(w):
				e.emit(QuoteAmbiguousLeadingToken, e.win[1])
			case e.contractions.BeganUnambiguously(w):
				e.emit(QuoteApostropheToken, e.win[1])
			default:
				e.emit(AmbiguousToken, e.win[1])
			}
		},
	},
	{
		// international marks classify directly, keeping their glyph
		name:    "international-opening-single",
		pattern: [4][]LexemeType{looseSlot, {QuoteSingleOpeningLexeme}, looseSlot, looseSlot},
		fire:    mint(QuoteOpeningSingleToken),
	},
	{
		name:    "international-closing-single",
		pattern: [4][]LexemeType{looseSlot, {QuoteSingleClosingLexeme}, looseSlot, looseSlot},
		fire:    mint(QuoteClosingSingleToken),
	},
	{
		name:    "international-opening-double",
		pattern: [4][]LexemeType{looseSlot, {QuoteDoubleOpeningLexeme}, looseSlot, looseSlot},
		fire:    mint(QuoteOpeningDoubleToken),
	},
	{
		name:    "international-closing-double",
		pattern: [4][]LexemeType{looseSlot, {QuoteDoubleClosingLexeme}, looseSlot, looseSlot},
		fire:    mint(QuoteClosingDoubleToken),
	},
	{
		name:    "ambiguous-double",
		pattern: [4][]LexemeType{looseSlot, double, looseSlot, looseSlot},
		fire:    mint(AmbiguousToken),
	},
	{
		name:    "ambiguous-single",
		pattern: [4][]LexemeType{looseSlot, single, looseSlot, looseSlot},
		fire:    mint(AmbiguousToken),
	},
}
