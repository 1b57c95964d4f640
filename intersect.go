package automaton

import (
	"github.com/coregx/automaton/graph"
	"github.com/coregx/automaton/internal/conv"
)

// Intersect builds the product automaton accepting L(left) ∩ L(right).
// Both operands must share an alphabet, or the operation fails with
// AlphabetMismatch. left and right are left untouched; the result is a
// new NFA.
func Intersect(left, right *NFA) (*NFA, error) {
	if left.options.MaxCharacter != right.options.MaxCharacter {
		return nil, &Error{Kind: AlphabetMismatch, Message: "automaton: Intersect operands do not share an alphabet"}
	}

	leftOrder := left.nodes.Iterate()
	rightOrder := right.nodes.Iterate()
	leftIndex := indexOf(leftOrder)
	rightIndex := indexOf(rightOrder)
	width := conv.IntToUint32(len(rightOrder))

	n := New(left.options)
	pairNode := make(map[uint64]graph.ID)

	key := func(i, j uint32) uint64 {
		return uint64(i)*uint64(width) + uint64(j)
	}

	nodeFor := func(i, j uint32) graph.ID {
		k := key(i, j)
		if id, ok := pairNode[k]; ok {
			return id
		}
		var id graph.ID
		if i == 0 && j == 0 {
			id = n.nodes.Initial()
		} else {
			id = n.nodes.CreateNode()
		}
		pairNode[k] = id
		return id
	}

	// Seed every reachable pair up front so edge construction below can
	// look up any product node regardless of visitation order.
	for i, a := range leftOrder {
		for j, b := range rightOrder {
			id := nodeFor(uint32(i), uint32(j))
			if left.nodes.IsFinal(a) && right.nodes.IsFinal(b) {
				n.nodes.AddFinal(id)
			}
		}
	}

	for i, a := range leftOrder {
		for j, b := range rightOrder {
			from := nodeFor(uint32(i), uint32(j))
			for _, ea := range left.nodes.Node(a).Out() {
				for _, eb := range right.nodes.Node(b).Out() {
					shared := ea.Chars.Intersect(eb.Chars)
					if shared.IsEmpty() {
						continue
					}
					ai, aok := leftIndex[ea.Peer]
					bi, bok := rightIndex[eb.Peer]
					if !aok || !bok {
						continue
					}
					to := nodeFor(uint32(ai), uint32(bi))
					if err := n.nodes.LinkNodes(from, to, shared); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	n.nodes.RemoveUnreachable()
	graph.BaseOptimizationReuseFinalStates(n.nodes, wholeSubList(n))
	return n, nil
}

func indexOf(order []graph.ID) map[graph.ID]int {
	m := make(map[graph.ID]int, len(order))
	for i, id := range order {
		m[id] = i
	}
	return m
}
