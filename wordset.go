package automaton

import (
	"github.com/coregx/automaton/charset"
	"github.com/coregx/automaton/graph"
)

// FromWords builds an NFA accepting exactly the given words, sharing
// common prefixes as a trie. Every code point of every word must lie in
// [0, options.MaxCharacter], or the operation fails with
// charset.InvalidCodepoint.
//
// After the trie is built, childless final states are merged into a
// single shared sink (see graph.BaseOptimizationReuseFinalStates).
func FromWords(words [][]rune, options Options) (*NFA, error) {
	n := New(options)
	root := graph.NewEmptySubList(n.nodes.Initial())

	for _, word := range words {
		cur := n.nodes.Initial()
		for _, r := range word {
			cp := int(r)
			if cp < 0 || cp > options.MaxCharacter {
				return nil, &charset.Error{Kind: charset.InvalidCodepoint, Message: "automaton: code point out of alphabet in FromWords"}
			}
			next, err := followOrCreate(n.nodes, cur, cp)
			if err != nil {
				return nil, err
			}
			cur = next
		}
		root.AddFinal(n.nodes, cur)
	}

	graph.BaseOptimizationReuseFinalStates(n.nodes, root)
	return n, nil
}

// followOrCreate returns the existing child of from labelled with cp if
// one exists, else creates a new node and links it with the singleton
// CharSet {cp}.
func followOrCreate(nl *graph.NodeList, from graph.ID, cp int) (graph.ID, error) {
	for _, e := range nl.Node(from).Out() {
		if e.Chars.Has(cp) {
			return e.Peer, nil
		}
	}
	single, err := charset.Single(nl.Options().MaxCharacter, cp)
	if err != nil {
		return 0, err
	}
	child := nl.CreateNode()
	if err := nl.LinkNodes(from, child, single); err != nil {
		return 0, err
	}
	return child, nil
}
