package quoteparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContractionsDefaults(t *testing.T) {
	c := NewContractions(WordLists{})

	assert.True(t, c.BeganUnambiguously("twas"))
	assert.True(t, c.BeganUnambiguously("TWAS"))
	assert.True(t, c.BeganUnambiguously("n"))
	assert.False(t, c.BeganUnambiguously("llamas"))

	assert.True(t, c.BeganAmbiguously("e"))
	assert.True(t, c.BeganAmbiguously("er"))
	assert.False(t, c.BeganAmbiguously("twas"))

	assert.True(t, c.EndedUnambiguously("thinkin"))
	assert.True(t, c.EndedUnambiguously("ol"))
	assert.False(t, c.EndedUnambiguously("dogs"))
}

func TestEndedAmbiguouslyFallback(t *testing.T) {
	c := NewContractions(WordLists{})

	// explicit list
	assert.True(t, c.EndedAmbiguously("fo"))

	// possessive endings
	assert.True(t, c.EndedAmbiguously("boys"))
	assert.True(t, c.EndedAmbiguously("Buzz"))
	assert.True(t, c.EndedAmbiguously("fox"))

	// dropped-g gerunds not on the curated list
	assert.True(t, c.EndedAmbiguously("quarkin"))

	// a bare n is not a dropped-g ending
	assert.False(t, c.EndedAmbiguously("n"))

	assert.False(t, c.EndedAmbiguously("cat"))
	assert.False(t, c.EndedAmbiguously(""))
}

func TestContractionsOverrides(t *testing.T) {
	c := NewContractions(WordLists{BeganUnambiguous: []string{"Frob"}})

	// the override replaces the category
	assert.True(t, c.BeganUnambiguously("frob"))
	assert.False(t, c.BeganUnambiguously("twas"))

	// other categories keep their defaults
	assert.True(t, c.EndedUnambiguously("thinkin"))
}

func TestDefaultsReturnsCopies(t *testing.T) {
	lists := Defaults()
	lists.BeganUnambiguous[0] = "mutated"
	assert.NotEqual(t, "mutated", Defaults().BeganUnambiguous[0])
}
