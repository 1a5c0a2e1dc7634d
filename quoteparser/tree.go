package quoteparser

// Tree is one node of the quotation nesting tree. A node is created only on
// encountering an opening mark; every other token attaches as a leaf stem in
// insertion order. Parent is a read-only back-reference, nil at the root.
type Tree struct {
	Opening *Token
	Closing *Token
	Parent  *Tree
	Stems   []Stem
}

// Stem is either a child subtree or a leaf token; exactly one field is set.
type Stem struct {
	Child *Tree
	Leaf  *Token
}

func (t *Tree) Root() *Tree {
	for t.Parent != nil {
		t = t.Parent
	}
	return t
}

func (t *Tree) addChild(opening *Token) *Tree {
	child := &Tree{Opening: opening, Parent: t}
	t.Stems = append(t.Stems, Stem{Child: child})
	return child
}

func (t *Tree) addLeaf(tok *Token) {
	t.Stems = append(t.Stems, Stem{Leaf: tok})
}

func (t *Tree) openingSingle() bool {
	return t.Opening != nil && t.Opening.Type == QuoteOpeningSingleToken
}

func (t *Tree) openingDouble() bool {
	return t.Opening != nil && t.Opening.Type == QuoteOpeningDoubleToken
}

func (t *Tree) closingSingle() bool {
	return t.Closing != nil && t.Closing.Type == QuoteClosingSingleToken
}

func (t *Tree) closingDouble() bool {
	return t.Closing != nil && t.Closing.Type == QuoteClosingDoubleToken
}

// Balanced reports whether opening and closing are the same kind, both
// single or both double.
func (t *Tree) Balanced() bool {
	return (t.openingSingle() && t.closingSingle()) || (t.openingDouble() && t.closingDouble())
}

// BuildTree threads the token stream through a nesting tree: openings push a
// child, closings pop back to the parent, everything else attaches as a leaf
// of the current node. The returned tree may be dangling (an unmatched
// opening); that is legitimate input.
func BuildTree(tokens []*Token) *Tree {
	root := &Tree{}
	current := root
	for _, tok := range tokens {
		switch {
		case tok.Opening():
			current = current.addChild(tok)
		case tok.Closing():
			if current.Opening != nil && current.Opening.Began() >= tok.Began() {
				panic("closing mark before its opening")
			}
			if current.Closing == nil {
				current.Closing = tok
			} else {
				// only possible at the root; keep the token so it survives
				// into the flatten
				current.addLeaf(tok)
			}
			if current.Parent != nil {
				current = current.Parent
			}
		default:
			current.addLeaf(tok)
		}
	}
	return root
}

// Flatten collects every token in the tree.
func (t *Tree) Flatten() []*Token {
	var result []*Token
	if t.Opening != nil {
		result = append(result, t.Opening)
	}
	for _, s := range t.Stems {
		if s.Child != nil {
			result = append(result, s.Child.Flatten()...)
		} else {
			result = append(result, s.Leaf)
		}
	}
	if t.Closing != nil {
		result = append(result, t.Closing)
	}
	return result
}
