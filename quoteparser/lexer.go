package quoteparser

import (
	"unicode"

	"github.com/smasher164/xid"
)

// Lex converts the input into an ordered lexeme stream. The stream begins
// with a synthetic SOT and ends with EOL, EOP, EOT so that the emitter's
// sliding window always has a valid right context.
func Lex(input string, filter SkipFilter) []Lexeme {
	l := &lexer{cursor: NewCursor(input), filter: filter}
	return l.run()
}

type lexer struct {
	cursor  *Cursor
	filter  SkipFilter
	lexemes []Lexeme
}

func (l *lexer) emit(t LexemeType, began int) {
	l.lexemes = append(l.lexemes, Lexeme{Type: t, Began: began, Ended: l.cursor.Index()})
}

func (l *lexer) emitGlyph(t LexemeType, began int, glyph rune) {
	l.lexemes = append(l.lexemes, Lexeme{Type: t, Began: began, Ended: l.cursor.Index(), Glyph: string(glyph)})
}

func (l *lexer) sentinel(t LexemeType) {
	end := l.cursor.Len()
	l.lexemes = append(l.lexemes, Lexeme{Type: t, Began: end, Ended: end})
}

func (l *lexer) run() []Lexeme {
	c := l.cursor
	l.lexemes = append(l.lexemes, Lexeme{Type: SOTLexeme})

	for {
		for l.filter(c) {
		}
		r := c.Current()
		if r == EndOfText {
			break
		}
		began := c.Index()

		// decision table in rough probability order
		switch {
		case isWordStart(r):
			l.scanWord(began)
		case r == ' ':
			l.scanSpace(began)
		case r == '\r' || r == '\n':
			l.scanLineEnding(began)
		case unicode.IsSpace(r):
			l.scanSpace(began)
		case isNumeric(r) || (isNumericConnector(r) && isNumeric(c.Peek())):
			l.scanNumber(began)
		case r == '.':
			l.scanPeriods(began)
		case r == '"':
			c.Next()
			l.emit(QuoteDoubleLexeme, began)
		case r == '\'':
			c.Next()
			l.emit(QuoteSingleLexeme, began)
		case r == '\\':
			l.scanEscape(began)
		case isDash(r):
			l.scanDashes(began)
		case r == '(' || r == '{' || r == '[':
			c.Next()
			l.emit(OpeningGroupLexeme, began)
		case r == ')' || r == '}' || r == ']':
			c.Next()
			l.emit(ClosingGroupLexeme, began)
		case r == '=':
			for c.Current() == '=' {
				c.Next()
			}
			l.emit(EqualsLexeme, began)
		case r == ',' && c.Peek() == ',':
			// German-style low opening double quote written as two commas
			for c.Current() == ',' {
				c.Next()
			}
			l.emitGlyph(QuoteDoubleOpeningLexeme, began, '„')
		default:
			if t, international := internationalQuotes[r]; international {
				c.Next()
				l.emitGlyph(t, began, r)
			} else {
				c.Next()
				l.emit(PunctLexeme, began)
			}
		}
	}

	l.sentinel(EOLLexeme)
	l.sentinel(EOPLexeme)
	l.sentinel(EOTLexeme)
	return l.lexemes
}

// scanWord runs to a word boundary; digits following letters stay in the
// word (Ph33, A1).
func (l *lexer) scanWord(began int) {
	c := l.cursor
	for isWordContinue(c.Current()) {
		c.Next()
	}
	l.emit(WordLexeme, began)
}

// scanSpace collapses a run of non-linebreak whitespace into one lexeme.
func (l *lexer) scanSpace(began int) {
	c := l.cursor
	for {
		r := c.Current()
		if r == '\r' || r == '\n' || r < 0 || !unicode.IsSpace(r) {
			break
		}
		c.Next()
	}
	l.emit(SpaceLexeme, began)
}

// scanLineEnding consumes a run of CR/LF. A single CR, a single LF, or one
// CR+LF is an end of line; any longer run is a blank line and therefore an
// end of paragraph.
func (l *lexer) scanLineEnding(began int) {
	c := l.cursor
	breaks := 0
	for {
		switch c.Current() {
		case '\r':
			c.Next()
			if c.Current() == '\n' {
				c.Next()
			}
			breaks++
		case '\n':
			c.Next()
			breaks++
		default:
			if breaks == 1 {
				l.emit(EOLLexeme, began)
			} else {
				l.emit(EOPLexeme, began)
			}
			return
		}
	}
}

func (l *lexer) scanNumber(began int) {
	c := l.cursor
	for {
		r := c.Current()
		if isNumeric(r) {
			c.Next()
			continue
		}
		if isNumericConnector(r) && isNumeric(c.Peek()) {
			c.Next()
			continue
		}
		break
	}
	l.emit(NumberLexeme, began)
}

// scanPeriods collapses a run of periods, optionally space-separated, into an
// ellipsis; a single period stays a period.
func (l *lexer) scanPeriods(began int) {
	c := l.cursor
	dots := 1
	c.Next()
	for {
		probe := c.Clone()
		for probe.Current() == ' ' {
			probe.Next()
		}
		if probe.Current() != '.' {
			break
		}
		probe.Next()
		*c = *probe
		dots++
	}
	if dots > 1 {
		l.emit(EllipsisLexeme, began)
	} else {
		l.emit(PeriodLexeme, began)
	}
}

// scanEscape handles \' and \". Any other backslash escape is passed as two
// lexemes: a PunctLexeme for the backslash, normal rules for the next rune.
func (l *lexer) scanEscape(began int) {
	c := l.cursor
	switch c.Peek() {
	case '\'':
		c.Next()
		c.Next()
		l.emit(EscSingleLexeme, began)
	case '"':
		c.Next()
		c.Next()
		l.emit(EscDoubleLexeme, began)
	default:
		c.Next()
		l.emit(PunctLexeme, began)
	}
}

// scanDashes consumes a run of dash characters. A lone ASCII hyphen is a
// hyphen; anything longer, or any en/em/horizontal-bar dash, is a dash.
func (l *lexer) scanDashes(began int) {
	c := l.cursor
	count := 0
	plainHyphen := true
	for isDash(c.Current()) {
		if c.Current() != '-' {
			plainHyphen = false
		}
		c.Next()
		count++
	}
	if count == 1 && plainHyphen {
		l.emit(HyphenLexeme, began)
	} else {
		l.emit(DashLexeme, began)
	}
}

func isWordStart(r rune) bool {
	// _ and * are emphasis marks in plain-text formats and bind to the word
	return r >= 0 && (xid.Start(r) || r == '_' || r == '*')
}

func isWordContinue(r rune) bool {
	return r >= 0 && (xid.Continue(r) || r == '*')
}

func isDash(r rune) bool {
	switch r {
	case '-', '–', '—', '―':
		return true
	}
	return false
}

// isNumeric covers ASCII digits and the common Unicode vulgar fractions.
func isNumeric(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= '¼' && r <= '¾':
		return true
	case r >= '⅐' && r <= '⅟':
		return true
	case r == '↉':
		return true
	}
	return false
}

// isNumericConnector matches characters that continue a number only when a
// digit follows immediately.
func isNumericConnector(r rune) bool {
	switch r {
	case '.', ',', '-', '+', '^', '⅟', '⁄':
		return true
	}
	return false
}

var internationalQuotes = map[rune]LexemeType{
	'‘': QuoteSingleOpeningLexeme,
	'‚': QuoteSingleOpeningLexeme,
	'‹': QuoteSingleOpeningLexeme,
	'’': QuoteSingleClosingLexeme,
	'›': QuoteSingleClosingLexeme,
	'“': QuoteDoubleOpeningLexeme,
	'„': QuoteDoubleOpeningLexeme,
	'«': QuoteDoubleOpeningLexeme,
	'”': QuoteDoubleClosingLexeme,
	'»': QuoteDoubleClosingLexeme,
}
