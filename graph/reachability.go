package graph

import (
	"github.com/coregx/automaton/charset"
	"github.com/coregx/automaton/internal/conv"
	"github.com/coregx/automaton/internal/sparse"
)

// idCapacity returns a SparseSet capacity large enough to hold every id ever
// allocated by this list, so that ids can be used directly as SparseSet
// members without a separate remapping table.
func (nl *NodeList) idCapacity() uint32 {
	return conv.Uint64ToUint32(uint64(nl.nextID)) + 1
}

// Iterate returns every node reachable from the initial node, in breadth-
// first order. This is the order used by String and by intersect's index
// assignment, so it must be deterministic for a given construction history;
// insertion-ordered edge lists (see Node.outOrder) guarantee that.
func (nl *NodeList) Iterate() []ID {
	visited := sparse.NewSparseSet(nl.idCapacity())
	queue := []ID{nl.initial}
	visited.Insert(uint32(nl.initial))
	order := make([]ID, 0, len(nl.nodes))

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)
		node := nl.nodes[id]
		if node == nil {
			continue
		}
		for _, to := range node.outOrder {
			if !visited.Contains(uint32(to)) {
				visited.Insert(uint32(to))
				queue = append(queue, to)
			}
		}
	}
	return order
}

// forwardReachable returns the set of node ids reachable from start via
// outgoing edges, including start itself.
func (nl *NodeList) forwardReachable(start ID) *sparse.SparseSet {
	visited := sparse.NewSparseSet(nl.idCapacity())
	queue := []ID{start}
	visited.Insert(uint32(start))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		node := nl.nodes[id]
		if node == nil {
			continue
		}
		for _, to := range node.outOrder {
			if !visited.Contains(uint32(to)) {
				visited.Insert(uint32(to))
				queue = append(queue, to)
			}
		}
	}
	return visited
}

// backwardReachable returns the set of node ids that can reach some node in
// starts via a chain of edges, walking incoming adjacency.
func (nl *NodeList) backwardReachable(starts []ID) *sparse.SparseSet {
	visited := sparse.NewSparseSet(nl.idCapacity())
	queue := append([]ID(nil), starts...)
	for _, s := range starts {
		visited.Insert(uint32(s))
	}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		node := nl.nodes[id]
		if node == nil {
			continue
		}
		for _, from := range node.inOrder {
			if !visited.Contains(uint32(from)) {
				visited.Insert(uint32(from))
				queue = append(queue, from)
			}
		}
	}
	return visited
}

// reduceToEmptyLanguage clears the list to the canonical empty-language
// form: the initial node retained with no outgoing edges, and an empty
// final set.
func (nl *NodeList) reduceToEmptyLanguage() {
	for id := range nl.nodes {
		if id == nl.initial {
			continue
		}
		delete(nl.nodes, id)
	}
	// The initial node's own bookkeeping (outOrder/out/inOrder/in) may still
	// reference now-deleted neighbors; rebuild it fresh since every other
	// node is gone.
	nl.nodes[nl.initial] = &Node{
		id:    nl.initial,
		owner: nl,
		out:   make(map[ID]charset.CharSet),
		in:    make(map[ID]charset.CharSet),
	}
	nl.ClearFinal()
}

// RemoveUnreachable prunes the graph to satisfy: every remaining node is
// forward-reachable from the initial node and can reach some final node,
// unless the final set is empty, in which case only the initial node
// remains (with no outgoing edges) and the final set stays empty.
func (nl *NodeList) RemoveUnreachable() {
	if len(nl.finalOrder) == 0 {
		nl.reduceToEmptyLanguage()
		return
	}

	forward := nl.forwardReachable(nl.initial)

	var liveFinals []ID
	for _, f := range nl.finalOrder {
		if forward.Contains(uint32(f)) {
			liveFinals = append(liveFinals, f)
		}
	}
	if len(liveFinals) != len(nl.finalOrder) {
		nl.finalOrder = liveFinals
		nl.final = make(map[ID]struct{}, len(liveFinals))
		for _, f := range liveFinals {
			nl.final[f] = struct{}{}
		}
	}
	if len(nl.finalOrder) == 0 {
		nl.reduceToEmptyLanguage()
		return
	}

	backward := nl.backwardReachable(nl.finalOrder)

	for id := range nl.nodes {
		if id == nl.initial {
			continue
		}
		if !forward.Contains(uint32(id)) || !backward.Contains(uint32(id)) {
			nl.deleteNode(id)
		}
	}
}
