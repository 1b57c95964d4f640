package graph

import "github.com/coregx/automaton/charset"

// ID uniquely identifies a Node within the NodeList that created it.
type ID uint64

// Edge is a labelled transition between a node and one neighbor. Peer holds
// the neighbor's id: for an edge returned by Out, Peer is the transition's
// destination; for an edge returned by In, Peer is the transition's source.
type Edge struct {
	Peer  ID
	Chars charset.CharSet
}

// Node is a single automaton state. Nodes are created by a NodeList's
// factory and belong to that list for their entire life; they carry no
// exported fields so every mutation goes through NodeList, which is what
// keeps the normalization and adjacency-symmetry invariants enforceable in
// one place.
type Node struct {
	id    ID
	owner *NodeList

	// outOrder/inOrder preserve insertion order so that BFS iteration,
	// String rendering and product-construction index assignment are
	// reproducible for identical construction histories.
	outOrder []ID
	out      map[ID]charset.CharSet
	inOrder  []ID
	in       map[ID]charset.CharSet
}

// ID returns the node's identifier.
func (n *Node) ID() ID {
	return n.id
}

// Out returns the node's outgoing edges in insertion order.
func (n *Node) Out() []Edge {
	edges := make([]Edge, len(n.outOrder))
	for i, to := range n.outOrder {
		edges[i] = Edge{Peer: to, Chars: n.out[to]}
	}
	return edges
}

// In returns the node's incoming edges in insertion order.
func (n *Node) In() []Edge {
	edges := make([]Edge, len(n.inOrder))
	for i, from := range n.inOrder {
		edges[i] = Edge{Peer: from, Chars: n.in[from]}
	}
	return edges
}

// OutDegree returns the number of distinct outgoing neighbors.
func (n *Node) OutDegree() int {
	return len(n.outOrder)
}

// InDegree returns the number of distinct incoming neighbors.
func (n *Node) InDegree() int {
	return len(n.inOrder)
}

func removeID(order []ID, id ID) []ID {
	for i, x := range order {
		if x == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
