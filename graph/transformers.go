package graph

// This file implements the sub-list transformers: the algebraic building
// blocks (union, concat, plus, repeat, quantify, and their support
// functions) that the AST compiler and the NFA facade compose to build and
// combine automata. Every transformer assumes its SubList arguments satisfy
// the normalization invariant (initial has no incoming edges) on entry and
// re-establishes it on exit.
//
// Functions that take two SubLists destroy the second one: its nodes remain
// in the NodeList (they are folded into the first SubList or become
// unreachable garbage collected later by RemoveUnreachable), but the
// caller must not reference the destroyed SubList again.

// reparentOut moves every outgoing edge of `from` so that it originates at
// `to` instead, merging labels on collision. `from` ends up with no
// outgoing edges.
func reparentOut(nl *NodeList, from, to ID) {
	for _, e := range nl.Node(from).Out() {
		_ = nl.LinkNodes(to, e.Peer, e.Chars)
		_ = nl.UnlinkNodes(from, e.Peer)
	}
}

// BaseMakeEmpty reduces base to the empty language: every outgoing edge of
// base.Initial is detached and base's final set is cleared.
func BaseMakeEmpty(nl *NodeList, base *SubList) {
	nl.unlinkAllOut(base.Initial)
	base.ClearFinal(nl)
}

// BaseReplaceWith replaces base in place with replacement, destroying
// replacement.
func BaseReplaceWith(nl *NodeList, base, replacement *SubList) {
	BaseMakeEmpty(nl, base)
	for _, f := range replacement.Final {
		if f == replacement.Initial {
			base.AddFinal(nl, base.Initial)
		} else {
			base.AddFinal(nl, f)
		}
	}
	reparentOut(nl, replacement.Initial, base.Initial)
}

// BaseUnion alters base so that it accepts L(base) ∪ L(alt), destroying alt.
func BaseUnion(nl *NodeList, base, alt *SubList) {
	for _, f := range alt.Final {
		if f == alt.Initial {
			base.AddFinal(nl, base.Initial)
		} else {
			base.AddFinal(nl, f)
		}
	}
	reparentOut(nl, alt.Initial, base.Initial)
	BaseOptimizationReuseFinalStates(nl, base)
}

// BaseConcat alters base so that it accepts L(base)·L(after), destroying
// after.
func BaseConcat(nl *NodeList, base, after *SubList) {
	if base.IsEmptyLanguage() {
		return
	}
	if after.IsEmptyLanguage() {
		BaseMakeEmpty(nl, base)
		return
	}

	afterInitialEdges := nl.Node(after.Initial).Out()
	afterInitialWasFinal := after.HasFinal(after.Initial)

	for _, f := range base.Final {
		for _, e := range afterInitialEdges {
			_ = nl.LinkNodes(f, e.Peer, e.Chars)
		}
	}
	for _, e := range afterInitialEdges {
		_ = nl.UnlinkNodes(after.Initial, e.Peer)
	}

	if !afterInitialWasFinal {
		base.ClearFinal(nl)
	}
	for _, f := range after.Final {
		if f != after.Initial {
			base.AddFinal(nl, f)
		}
	}
}

// BasePlus alters base so that it accepts L(base)⁺, by copying every
// outgoing edge of base.Initial onto every non-initial final of base. It
// does not touch base.Final.
func BasePlus(nl *NodeList, base *SubList) {
	initialEdges := nl.Node(base.Initial).Out()
	for _, f := range base.Final {
		if f == base.Initial {
			continue
		}
		for _, e := range initialEdges {
			_ = nl.LinkNodes(f, e.Peer, e.Chars)
		}
	}
}

// mergeIDs appends every id of src not already present in dst, preserving
// dst's existing order.
func mergeIDs(dst, src []ID) []ID {
	seen := make(map[ID]bool, len(dst))
	for _, id := range dst {
		seen[id] = true
	}
	for _, id := range src {
		if !seen[id] {
			seen[id] = true
			dst = append(dst, id)
		}
	}
	return dst
}

// BaseRepeat alters base so that it accepts L(base)ⁿ for n ≥ 0.
func BaseRepeat(nl *NodeList, base *SubList, n int) {
	switch {
	case n == 0:
		BaseMakeEmpty(nl, base)
		base.AddFinal(nl, base.Initial)
		return
	case n == 1:
		return
	case base.IsEmptyLanguage():
		return
	case nl.Node(base.Initial).OutDegree() == 0 && base.HasFinal(base.Initial):
		// L(base) = {ε}: repeating it any number of times changes nothing.
		return
	}

	if !base.HasFinal(base.Initial) {
		dup := LocalCopy(nl, base)
		for i := 0; i < n-2; i++ {
			fresh := LocalCopy(nl, dup)
			BaseConcat(nl, base, fresh)
		}
		BaseConcat(nl, base, dup)
		return
	}

	// base accepts ε: plain repeated concatenation would let base.Final grow
	// on every iteration (each concat step keeps the previous finals because
	// after.Initial is final), and each subsequent concat re-adds a full
	// copy of the next segment's initial edges onto that growing final set,
	// producing O(n²) edges. Strip the ε-acceptance from the repeated
	// segment so intermediate final sets stay bounded, and track the states
	// that were really reachable-and-accepting on the side.
	realFinals := append([]ID(nil), base.Final...)
	base.RemoveFinal(nl, base.Initial)
	dup := LocalCopy(nl, base)
	for i := 0; i < n-2; i++ {
		fresh := LocalCopy(nl, dup)
		BaseConcat(nl, base, fresh)
		realFinals = mergeIDs(realFinals, base.Final)
	}
	BaseConcat(nl, base, dup)
	realFinals = mergeIDs(realFinals, base.Final)
	base.ReplaceFinal(nl, realFinals)
}

// Unbounded represents an infinite upper bound for BaseQuantify and quantify
// operations built on it.
const Unbounded = -1

// BaseQuantify alters base so that it accepts L(base){min,max}, where max
// may be Unbounded. Callers validate 0 ≤ min ≤ max (or max == Unbounded)
// before calling.
func BaseQuantify(nl *NodeList, base *SubList, min, max int) {
	if max == 0 {
		BaseMakeEmpty(nl, base)
		base.AddFinal(nl, base.Initial)
		return
	}
	if base.HasFinal(base.Initial) {
		min = 0
	}
	if min == 0 {
		base.AddFinal(nl, base.Initial)
	}
	if max == 1 {
		return
	}
	if max != Unbounded && min == max {
		BaseRepeat(nl, base, min)
		return
	}
	if max != Unbounded {
		dup := LocalCopy(nl, base)
		dup.AddFinal(nl, dup.Initial)
		BaseRepeat(nl, dup, max-min)
		BaseRepeat(nl, base, min)
		BaseConcat(nl, base, dup)
		return
	}
	if min <= 1 {
		BasePlus(nl, base)
		return
	}
	dup := LocalCopy(nl, base)
	BasePlus(nl, dup)
	BaseRepeat(nl, base, min-1)
	BaseConcat(nl, base, dup)
}

// BaseOptimizationReuseFinalStates merges childless finals of base (other
// than the initial) into a single shared sink. This is a size optimization
// and never changes the accepted language.
func BaseOptimizationReuseFinalStates(nl *NodeList, base *SubList) {
	var sinks []ID
	for _, f := range base.Final {
		if f == base.Initial {
			continue
		}
		if nl.Node(f).OutDegree() == 0 {
			sinks = append(sinks, f)
		}
	}
	if len(sinks) < 2 {
		return
	}

	rep := sinks[0]
	for _, extra := range sinks[1:] {
		incoming := nl.Node(extra).In()
		for _, e := range incoming {
			_ = nl.LinkNodes(e.Peer, rep, e.Chars)
		}
		for _, e := range incoming {
			_ = nl.UnlinkNodes(e.Peer, extra)
		}
		base.RemoveFinal(nl, extra)
	}
}

// LocalCopy makes a depth-first clone of the sub-automaton rooted at
// toCopy.Initial into the same NodeList, preserving edge labels. The
// clone's initial node is freshly created with no incoming edges, so it
// satisfies normalization on its own.
func LocalCopy(nl *NodeList, toCopy *SubList) *SubList {
	mapping := make(map[ID]ID)

	var visit func(old ID) ID
	visit = func(old ID) ID {
		if id, ok := mapping[old]; ok {
			return id
		}
		id := nl.CreateNode()
		mapping[old] = id
		for _, e := range nl.Node(old).Out() {
			target := visit(e.Peer)
			_ = nl.LinkNodes(id, target, e.Chars)
		}
		return id
	}

	newInitial := visit(toCopy.Initial)
	result := NewEmptySubList(newInitial)
	for _, f := range toCopy.Final {
		result.AddFinal(nl, visit(f))
	}
	return result
}
