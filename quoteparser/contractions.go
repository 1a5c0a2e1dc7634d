package quoteparser

import "strings"

// Contractions answers whether a word fragment next to a straight single
// quote is a contraction (apostrophe) or could be quoted text. It is built
// once and immutable afterwards; the emitter and the resolver both consult
// it. All comparisons are case-insensitive.
type Contractions struct {
	beganUnambiguous map[string]struct{}
	beganAmbiguous   map[string]struct{}
	endedUnambiguous map[string]struct{}
	endedAmbiguous   map[string]struct{}
}

// WordLists carries caller overrides for the four contraction categories. A
// nil slice keeps the baked-in default for that category.
type WordLists struct {
	BeganUnambiguous []string `yaml:"began_unambiguous"`
	BeganAmbiguous   []string `yaml:"began_ambiguous"`
	EndedUnambiguous []string `yaml:"ended_unambiguous"`
	EndedAmbiguous   []string `yaml:"ended_ambiguous"`
}

// Defaults returns a copy of the built-in word lists, for callers that want
// to extend a category rather than replace it.
func Defaults() WordLists {
	return WordLists{
		BeganUnambiguous: append([]string(nil), defaultBeganUnambiguous...),
		BeganAmbiguous:   append([]string(nil), defaultBeganAmbiguous...),
		EndedUnambiguous: append([]string(nil), defaultEndedUnambiguous...),
		EndedAmbiguous:   append([]string(nil), defaultEndedAmbiguous...),
	}
}

func NewContractions(lists WordLists) *Contractions {
	pick := func(override, fallback []string) map[string]struct{} {
		if override == nil {
			override = fallback
		}
		result := make(map[string]struct{}, len(override))
		for _, w := range override {
			result[strings.ToLower(w)] = struct{}{}
		}
		return result
	}
	return &Contractions{
		beganUnambiguous: pick(lists.BeganUnambiguous, defaultBeganUnambiguous),
		beganAmbiguous:   pick(lists.BeganAmbiguous, defaultBeganAmbiguous),
		endedUnambiguous: pick(lists.EndedUnambiguous, defaultEndedUnambiguous),
		endedAmbiguous:   pick(lists.EndedAmbiguous, defaultEndedAmbiguous),
	}
}

// BeganUnambiguously reports that a leading quote before word is certainly
// an apostrophe ('twas, 'nuff).
func (c *Contractions) BeganUnambiguously(word string) bool {
	_, ok := c.beganUnambiguous[strings.ToLower(word)]
	return ok
}

// BeganAmbiguously reports that a leading quote before word could be either
// an apostrophe or an opening quote ('e said vs. 'e' as a letter).
func (c *Contractions) BeganAmbiguously(word string) bool {
	_, ok := c.beganAmbiguous[strings.ToLower(word)]
	return ok
}

// EndedUnambiguously reports that a quote after word is certainly an
// apostrophe (thinkin', ol').
func (c *Contractions) EndedUnambiguously(word string) bool {
	_, ok := c.endedUnambiguous[strings.ToLower(word)]
	return ok
}

// EndedAmbiguously reports that a quote after word could be either an
// apostrophe or a closing quote. Besides the explicit list this holds for
// any word ending in s, z, x or a trailing n with at least one letter before
// it: possessives and dropped-g gerunds not on the curated list.
func (c *Contractions) EndedAmbiguously(word string) bool {
	w := strings.ToLower(word)
	if _, ok := c.endedAmbiguous[w]; ok {
		return true
	}
	if w == "" {
		return false
	}
	switch w[len(w)-1] {
	case 's', 'z', 'x':
		return true
	case 'n':
		return len(w) > 1
	}
	return false
}
