package automaton

import (
	"github.com/coregx/automaton/charset"
	"github.com/coregx/automaton/graph"
)

// DFASource is the black-box contract FromDFA adapts: an external
// deterministic automaton keyed by an opaque, comparable state
// identifier. WrapDFA adapts the dfa package's *dfa.DFA to this
// interface; callers with their own DFA representation can implement it
// directly instead of going through that package.
type DFASource[S comparable] interface {
	// Start returns the DFA's start state.
	Start() S
	// States returns every state, in any order; FromDFA only uses this to
	// discover which states exist, not to order them.
	States() []S
	// IsMatch reports whether s is an accepting state.
	IsMatch(s S) bool
	// Transitions returns s's outgoing code-point-range transitions.
	// Ranges belonging to the same target need not be pre-merged; FromDFA
	// unions them itself.
	Transitions(s S) []DFATransition[S]
}

// DFATransition is one outgoing edge of a DFASource state.
type DFATransition[S comparable] struct {
	Lo, Hi int
	Target S
}

// FromDFA constructs an NFA mirroring src's transition graph: each DFA
// state becomes an NFA node with the same outgoing edges, accumulating
// same-target ranges into a single CharSet before linking. Finals of src
// map to finals of the result.
func FromDFA[S comparable](src DFASource[S], options Options) (*NFA, error) {
	n := New(options)
	mirror := make(map[S]graph.ID)

	nodeFor := func(s S) graph.ID {
		if id, ok := mirror[s]; ok {
			return id
		}
		id := n.nodes.CreateNode()
		mirror[s] = id
		return id
	}

	start := src.Start()
	nodeFor(start)
	for _, s := range src.States() {
		nodeFor(s)
	}

	for _, s := range src.States() {
		from := nodeFor(s)
		if src.IsMatch(s) {
			n.nodes.AddFinal(from)
		}

		byTarget := make(map[S]charset.CharSet)
		var order []S
		for _, t := range src.Transitions(s) {
			r, err := charset.FromRange(options.MaxCharacter, t.Lo, t.Hi)
			if err != nil {
				return nil, err
			}
			if existing, ok := byTarget[t.Target]; ok {
				byTarget[t.Target] = existing.UnionSet(r)
			} else {
				byTarget[t.Target] = r
				order = append(order, t.Target)
			}
		}
		for _, target := range order {
			to := nodeFor(target)
			if err := n.nodes.LinkNodes(from, to, byTarget[target]); err != nil {
				return nil, err
			}
		}
	}

	// nodeFor never binds a DFA state to the NodeList's real initial node,
	// so the mirror of src.Start() may end up with incoming edges (any DFA
	// with a transition back into its start state, e.g. a*'s self-loop).
	// Copy the start mirror's outgoing edges onto the real initial, and make
	// the initial final when the start state accepts, so invariant 1
	// (initial has no incoming edges) holds while the start mirror keeps
	// its own edges and final marking as an ordinary node.
	initial := n.nodes.Initial()
	for _, e := range n.nodes.Node(mirror[start]).Out() {
		if err := n.nodes.LinkNodes(initial, e.Peer, e.Chars); err != nil {
			return nil, err
		}
	}
	if src.IsMatch(start) {
		n.nodes.AddFinal(initial)
	}

	n.nodes.RemoveUnreachable()
	return n, nil
}
