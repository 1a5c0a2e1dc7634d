package quoteparser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveAll(input string) []*Token {
	return Resolve(emitAll(input))
}

func TestBuildTreeNesting(t *testing.T) {
	tokens := emitAll(`"He said 'hi' to me"`)
	tree := BuildTree(tokens)

	require.Nil(t, tree.Opening)
	require.Len(t, tree.Stems, 1)
	outer := tree.Stems[0].Child
	require.NotNil(t, outer)
	assert.Equal(t, QuoteOpeningDoubleToken, outer.Opening.Type)
	assert.Equal(t, QuoteClosingDoubleToken, outer.Closing.Type)
	assert.True(t, outer.Balanced())
	assert.Same(t, tree, outer.Parent)

	var inner *Tree
	for _, s := range outer.Stems {
		if s.Child != nil {
			inner = s.Child
		}
	}
	require.NotNil(t, inner)
	assert.True(t, inner.Balanced())
	assert.Same(t, tree, inner.Root())
}

func TestBuildTreeDangling(t *testing.T) {
	tokens := emitAll(`"She said 'wait`)
	tree := BuildTree(tokens)
	require.Len(t, tree.Stems, 1)
	outer := tree.Stems[0].Child
	require.NotNil(t, outer)
	assert.Nil(t, outer.Closing)
}

func TestResolveLaggingClosesOpenNode(t *testing.T) {
	// one lagging mark inside an unclosed single quote must close it
	tokens := resolveAll("'Bring the dogs' food")
	require.Equal(t, []TokenType{
		QuoteOpeningSingleToken,
		QuoteClosingSingleToken,
	}, tokenTypes(tokens))
}

func TestResolveBalancedNodeLaggards(t *testing.T) {
	// inside a closed quotation, a lone lagging mark is a possessive
	tokens := resolveAll("'Bring the dogs' food,' she said.")
	require.Equal(t, []TokenType{
		QuoteOpeningSingleToken,
		QuoteApostropheToken,
		QuoteClosingSingleToken,
	}, tokenTypes(tokens))
}

func TestResolveUnknownClosesOpenNode(t *testing.T) {
	// the mark before the '(' matches no rule and is emitted unknown; it is
	// the only thing that can close the open single
	tokens := resolveAll("'hello world'(x)")
	require.Equal(t, []TokenType{
		QuoteOpeningSingleToken,
		QuoteClosingSingleToken,
	}, tokenTypes(tokens))
}

func TestResolveLeadingOpensClosedRoot(t *testing.T) {
	// 'A' emits a leading-ambiguous mark and a definite closing; the
	// resolver pairs them up
	tokens := resolveAll("'A', 'B', and 'C' are letters.")
	require.Equal(t, []TokenType{
		QuoteOpeningSingleToken,
		QuoteClosingSingleToken,
		QuoteOpeningSingleToken,
		QuoteClosingSingleToken,
		QuoteOpeningSingleToken,
		QuoteClosingSingleToken,
	}, tokenTypes(tokens))
}

func TestResolveLaggardPrefix(t *testing.T) {
	// a lagging mark before any leading mark cannot close anything
	tokens := resolveAll("James' 'ere thing")
	require.Equal(t, []TokenType{
		QuoteApostropheToken,
		QuoteApostropheToken,
	}, tokenTypes(tokens))
}

func TestResolveRootLeadingsBecomeApostrophes(t *testing.T) {
	tokens := resolveAll("'e said so")
	require.Equal(t, []TokenType{QuoteApostropheToken}, tokenTypes(tokens))
}

func TestResolvePreservesIrreducibleAmbiguity(t *testing.T) {
	tokens := resolveAll(`x"y`)
	require.Equal(t, []TokenType{AmbiguousToken}, tokenTypes(tokens))
}

func TestResolveOrdering(t *testing.T) {
	tokens := resolveAll(`"That's a 'good' one," she said, "ain't it?"`)
	for i := 1; i < len(tokens); i++ {
		assert.LessOrEqual(t, tokens[i-1].Began(), tokens[i].Began())
	}
}

func TestResolveNestingAlternation(t *testing.T) {
	// rebuilding the tree from the resolved tokens must give balanced nodes
	// all the way down
	resolved := resolveAll(`"a 'b' c" and "d 'e f' g"`)
	tree := BuildTree(resolved)

	var check func(n *Tree)
	check = func(n *Tree) {
		if n.Opening != nil && n.Closing != nil {
			assert.True(t, n.Balanced(), "node %v closed by %v", n.Opening, n.Closing)
		}
		for _, s := range n.Stems {
			if s.Child != nil {
				check(s.Child)
			}
		}
	}
	check(tree)
}

func TestResolveSeedUnterminated(t *testing.T) {
	tokens := resolveAll(`"She said, 'Llamas'll languish, they'll--`)
	expected := []TokenType{
		QuoteOpeningDoubleToken,
		QuoteOpeningSingleToken,
		QuoteApostropheToken,
		QuoteApostropheToken,
	}
	if diff := cmp.Diff(expected, tokenTypes(tokens)); diff != "" {
		t.Errorf("token types mismatch (-want +got):\n%s", diff)
	}
}
