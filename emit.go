package automaton

import (
	"github.com/coregx/automaton/graph"
	"github.com/coregx/automaton/regexast"
)

// ToRegex converts the NFA back to a regex AST via the external
// state-elimination routine emit, which receives the initial node
// (opaque to it, boxed as graph.ID), a function producing each node's
// outgoing transition map, and a predicate testing finality. The engine
// makes no commitment about the shape of the returned AST beyond
// equivalence of accepted languages.
func (n *NFA) ToRegex(emit regexast.Emitter) regexast.Expression {
	transitionsOf := func(node any) regexast.TransitionMap {
		id := node.(graph.ID)
		m := make(regexast.TransitionMap)
		for _, e := range n.nodes.Node(id).Out() {
			m[e.Peer] = e.Chars
		}
		return m
	}
	isFinal := func(node any) bool {
		return n.nodes.IsFinal(node.(graph.ID))
	}
	return emit(n.nodes.Initial(), transitionsOf, isFinal)
}
