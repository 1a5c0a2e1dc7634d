package quoteparser

import "sort"

// Resolve builds the nesting tree from the emitted tokens and runs the
// resolution passes: local tree rules, the global laggard-prefix rule, and
// the local rules once more (replacing laggards may have made leaders
// determinable). Tokens that are still ambiguous afterwards are preserved;
// the replacer leaves their spans untouched.
//
// The returned slice holds all tokens sorted by beginning offset.
func Resolve(tokens []*Token) []*Token {
	tree := BuildTree(tokens)
	resolveLocal(tree)
	resolveLaggardPrefix(tokens)
	resolveLocal(tree)

	sorted := append([]*Token(nil), tokens...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Began() < sorted[j].Began()
	})
	return sorted
}

// resolveLocal applies the tree-local rules breadth-first to every node.
func resolveLocal(root *Tree) {
	queue := []*Tree{root}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		resolveNode(node)
		for _, s := range node.Stems {
			if s.Child != nil {
				queue = append(queue, s.Child)
			}
		}
	}
}

func resolveNode(n *Tree) {
	var leading, lagging, unknown []*Token
	for _, s := range n.Stems {
		if s.Leaf == nil {
			continue
		}
		switch s.Leaf.Type {
		case QuoteAmbiguousLeadingToken:
			leading = append(leading, s.Leaf)
		case QuoteAmbiguousLaggingToken:
			lagging = append(lagging, s.Leaf)
		case AmbiguousToken:
			unknown = append(unknown, s.Leaf)
		}
	}

	openSingle := n.openingSingle()
	closeSingle := n.closingSingle()

	switch {
	case openSingle && !closeSingle && len(unknown) == 0 && len(leading) == 0 && len(lagging) == 1:
		// the one lagging mark is the only thing that can close this node
		lagging[0].Type = QuoteClosingSingleToken
	case openSingle && !closeSingle && len(unknown) == 1 && len(lagging) == 0:
		unknown[0].Type = QuoteClosingSingleToken
	case !openSingle && closeSingle && len(unknown) == 0 && len(leading) == 1 && len(lagging) == 0:
		leading[0].Type = QuoteOpeningSingleToken
	case (!openSingle && !closeSingle) || n.Balanced():
		// a node that needs no single closing reads its one-sided ambiguous
		// marks as apostrophes
		if len(unknown) == 0 && len(leading) > 0 && len(lagging) == 0 {
			for _, tok := range leading {
				tok.Type = QuoteApostropheToken
			}
		} else if len(unknown) == 0 && len(leading) == 0 && len(lagging) > 0 {
			for _, tok := range lagging {
				tok.Type = QuoteApostropheToken
			}
		}
	}
}

// resolveLaggardPrefix is the global pass: a trailing apostrophe cannot
// logically close a never-opened quote, so every lagging mark occurring
// before the first leading mark in offset order is an apostrophe. The scan
// stops at the first leading mark.
func resolveLaggardPrefix(tokens []*Token) {
	for _, tok := range tokens {
		switch tok.Type {
		case QuoteAmbiguousLeadingToken:
			return
		case QuoteAmbiguousLaggingToken:
			tok.Type = QuoteApostropheToken
		}
	}
}
