package graph

import (
	"testing"

	"github.com/coregx/automaton/charset"
)

func mustSingle(t *testing.T, nl *NodeList, cp int) charset.CharSet {
	t.Helper()
	c, err := charset.Single(nl.Options().MaxCharacter, cp)
	if err != nil {
		t.Fatalf("charset.Single(%d): %v", cp, err)
	}
	return c
}

func mustRange(t *testing.T, nl *NodeList, lo, hi int) charset.CharSet {
	t.Helper()
	c, err := charset.FromRange(nl.Options().MaxCharacter, lo, hi)
	if err != nil {
		t.Fatalf("charset.FromRange(%d, %d): %v", lo, hi, err)
	}
	return c
}
