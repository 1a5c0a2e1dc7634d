// Package quotecurl converts straight quotation marks in English prose into
// their typographic equivalents: curly single and double quotes,
// apostrophes, and primes. The pipeline is a character lexer, a sliding-
// window quote emitter, and a tree-based ambiguity resolver; marks the
// resolver cannot decide are deliberately left as straight quotes rather
// than guessed at.
package quotecurl

import (
	"github.com/vippsas/quotecurl/quoteparser"
)

type OutputMode int

const (
	// Glyphs writes the Unicode curly characters.
	Glyphs OutputMode = iota + 1
	// Entities writes HTML entities (&lsquo; &rsquo; ...).
	Entities
)

type FilterMode int

const (
	// Plain treats the whole input as prose.
	Plain FilterMode = iota + 1
	// XML skips markup and the contents of untouchable elements (pre, code,
	// and friends).
	XML
)

type Options struct {
	Output OutputMode // zero value means Glyphs
	Filter FilterMode // zero value means Plain

	// Contractions overrides the built-in word lists per category; nil
	// slices keep the defaults.
	Contractions quoteparser.WordLists
}

// Curler converts documents one at a time. The contractions oracle and the
// replacement table are built once; the same Curler may be reused for any
// number of documents sequentially, but it is not safe for concurrent use.
type Curler struct {
	contractions *quoteparser.Contractions
	output       OutputMode
	filter       quoteparser.SkipFilter
}

func New(opts Options) *Curler {
	output := opts.Output
	if output == 0 {
		output = Glyphs
	}
	filter := quoteparser.PlainFilter
	if opts.Filter == XML {
		filter = quoteparser.XMLFilter
	}
	return &Curler{
		contractions: quoteparser.NewContractions(opts.Contractions),
		output:       output,
		filter:       filter,
	}
}

// Curl converts one document and returns the rewritten text. Byte offsets
// outside quote-mark spans are preserved verbatim.
func (c *Curler) Curl(text string) string {
	result, _ := c.Report(text)
	return result
}

// Report converts one document and also returns the tokens that were still
// ambiguous after resolution. Their spans are left untouched in the output,
// signalling that intervention is needed.
func (c *Curler) Report(text string) (string, []quoteparser.Token) {
	lexemes := quoteparser.Lex(text, c.filter)
	tokens := quoteparser.EmitTokens(text, lexemes, c.contractions)
	resolved := quoteparser.Resolve(tokens)

	r := newReplacer(text)
	var ambiguous []quoteparser.Token
	for _, tok := range resolved {
		if tok.Ambiguous() {
			ambiguous = append(ambiguous, *tok)
			continue
		}
		r.replace(tok, c.replacement(tok))
	}
	return r.String(), ambiguous
}

// Curl converts text in one call. Callers converting many documents with
// the same options should construct a Curler once and reuse it.
func Curl(text string, opts Options) string {
	return New(opts).Curl(text)
}
