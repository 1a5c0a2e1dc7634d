package quoteparser

import (
	"fmt"
	"strings"
)

// Emitter transforms the lexeme stream into classified quote tokens. It
// keeps a four-lexeme sliding window: slot 0 is the left context, slot 1 the
// candidate under classification, slots 2 and 3 the lookahead. The rule
// table runs whenever a quote lexeme occupies slot 1; the first matching
// rule fires and the rest are skipped.
type Emitter struct {
	input        string
	contractions *Contractions
	win          [4]Lexeme
	tokens       []*Token
}

func NewEmitter(input string, contractions *Contractions) *Emitter {
	e := &Emitter{input: input, contractions: contractions}
	for i := range e.win {
		e.win[i] = Lexeme{Type: NoneLexeme}
	}
	return e
}

// EmitTokens runs the full lexeme stream through a fresh emitter. The
// stream must carry the lexer's SOT/EOL/EOP/EOT sentinels; they guarantee
// that every quote passes through slot 1 with a full window around it.
func EmitTokens(input string, lexemes []Lexeme, contractions *Contractions) []*Token {
	e := NewEmitter(input, contractions)
	for _, lx := range lexemes {
		e.Push(lx)
	}
	return e.Tokens()
}

func (e *Emitter) Tokens() []*Token {
	return e.tokens
}

func (e *Emitter) Push(lx Lexeme) {
	e.win[0], e.win[1], e.win[2], e.win[3] = e.win[1], e.win[2], e.win[3], lx
	if e.win[1].IsQuote() {
		e.classify()
	}
}

func (e *Emitter) classify() {
	for i := range quoteRules {
		r := &quoteRules[i]
		if !e.matches(r.pattern) {
			continue
		}
		if r.guard != nil && !r.guard(e) {
			continue
		}
		r.fire(e)
		return
	}
	panic(fmt.Sprintf("no rule matched quote lexeme %v; the fallback rules should be total", e.win[1]))
}

func (e *Emitter) matches(pattern [4][]LexemeType) bool {
	for slot, permitted := range pattern {
		if !matchSlot(e.win[slot].Type, permitted) {
			return false
		}
	}
	return true
}

// matchSlot checks one window slot against the permitted types of a rule
// pattern. AnyLexeme matches everything except the NoneLexeme sentinel left
// behind by slot obliteration; NoneLexeme matches only an explicit
// NoneLexeme entry; EndingLexeme matches EOL, EOP and EOT.
func matchSlot(actual LexemeType, permitted []LexemeType) bool {
	for _, p := range permitted {
		switch p {
		case AnyLexeme:
			if actual != NoneLexeme {
				return true
			}
		case EndingLexeme:
			if actual == EOLLexeme || actual == EOPLexeme || actual == EOTLexeme {
				return true
			}
		default:
			if actual == p {
				return true
			}
		}
	}
	return false
}

func (e *Emitter) emit(tt TokenType, lx Lexeme) {
	e.tokens = append(e.tokens, &Token{Type: tt, Lexeme: lx})
}

// obliterate overwrites a consumed slot with the NoneLexeme sentinel rather
// than compacting the window; the slot will not classify when it reaches
// slot 1, and only explicit NoneLexeme predicates match it.
func (e *Emitter) obliterate(slot int) {
	e.win[slot] = Lexeme{Type: NoneLexeme}
}

// merge joins the candidate with the lookahead slots up to through into one
// synthesized prime lexeme spanning all of them, emits it as tt, and
// obliterates the consumed slots.
func (e *Emitter) merge(tt TokenType, through int) {
	merged := Lexeme{Type: PrimeDoubleLexeme, Began: e.win[1].Began, Ended: e.win[through].Ended}
	e.emit(tt, merged)
	e.win[1] = merged
	for slot := 2; slot <= through; slot++ {
		e.obliterate(slot)
	}
}

func (e *Emitter) word(slot int) string {
	return strings.ToLower(e.win[slot].Text(e.input))
}
