package graph

import "github.com/coregx/automaton/charset"

// Options configures the alphabet shared by every edge label in a NodeList.
type Options struct {
	// MaxCharacter is the inclusive upper bound of the alphabet: every edge
	// label and every compiled character class lives in [0, MaxCharacter].
	MaxCharacter int
}

// Validate reports whether the options are usable.
func (o Options) Validate() error {
	if o.MaxCharacter < 0 {
		return &charset.Error{Kind: charset.InvalidRange, Message: "MaxCharacter must be non-negative"}
	}
	return nil
}

// NodeList owns every node of one automaton. Nodes belong to exactly one
// NodeList for their entire life; cross-list linking is rejected by
// LinkNodes and UnlinkNodes. A NodeList always has exactly one initial node,
// created at construction, and a mutable set of final nodes that may
// include the initial node.
type NodeList struct {
	options Options
	nodes   map[ID]*Node
	nextID  ID

	initial ID

	finalOrder []ID
	final      map[ID]struct{}
}

// New creates a NodeList over the given alphabet with a single, non-final
// initial node.
func New(options Options) *NodeList {
	nl := &NodeList{
		options: options,
		nodes:   make(map[ID]*Node),
		final:   make(map[ID]struct{}),
	}
	nl.initial = nl.CreateNode()
	return nl
}

// Options returns the alphabet this NodeList's edges are defined over.
func (nl *NodeList) Options() Options {
	return nl.options
}

// Initial returns the id of the initial node. The initial node never has
// incoming edges (the normalization invariant) and is never deleted by
// RemoveUnreachable.
func (nl *NodeList) Initial() ID {
	return nl.initial
}

// Node returns the node with the given id, or nil if it does not exist in
// this list (e.g. it was pruned by RemoveUnreachable).
func (nl *NodeList) Node(id ID) *Node {
	return nl.nodes[id]
}

// Len returns the number of live nodes in the list.
func (nl *NodeList) Len() int {
	return len(nl.nodes)
}

// CreateNode allocates a new node with a fresh id and no edges.
func (nl *NodeList) CreateNode() ID {
	id := nl.nextID
	nl.nextID++
	nl.nodes[id] = &Node{
		id:    id,
		owner: nl,
		out:   make(map[ID]charset.CharSet),
		in:    make(map[ID]charset.CharSet),
	}
	return id
}

// IsFinal reports whether id is a member of the final set.
func (nl *NodeList) IsFinal(id ID) bool {
	_, ok := nl.final[id]
	return ok
}

// Final returns the final node ids in insertion order.
func (nl *NodeList) Final() []ID {
	out := make([]ID, len(nl.finalOrder))
	copy(out, nl.finalOrder)
	return out
}

// FinalCount returns the number of final nodes.
func (nl *NodeList) FinalCount() int {
	return len(nl.finalOrder)
}

// AddFinal marks id as an accepting node. A no-op if it already is one.
func (nl *NodeList) AddFinal(id ID) {
	if _, ok := nl.final[id]; ok {
		return
	}
	nl.final[id] = struct{}{}
	nl.finalOrder = append(nl.finalOrder, id)
}

// RemoveFinal un-marks id as an accepting node. A no-op if it is not one.
func (nl *NodeList) RemoveFinal(id ID) {
	if _, ok := nl.final[id]; !ok {
		return
	}
	delete(nl.final, id)
	nl.finalOrder = removeID(nl.finalOrder, id)
}

// ClearFinal empties the final set.
func (nl *NodeList) ClearFinal() {
	nl.final = make(map[ID]struct{})
	nl.finalOrder = nil
}

// LinkNodes adds a labelled edge from -> to. If an edge already exists
// between the two, its label is replaced with the union of the old and new
// character sets. Fails with CrossListLink if either node does not belong
// to this list, or EmptyLabel if chars is empty.
func (nl *NodeList) LinkNodes(from, to ID, chars charset.CharSet) error {
	fromNode, toNode := nl.nodes[from], nl.nodes[to]
	if fromNode == nil || toNode == nil || fromNode.owner != nl || toNode.owner != nl {
		return &Error{Kind: CrossListLink, Message: "linkNodes: node does not belong to this NodeList"}
	}
	if chars.IsEmpty() {
		return &Error{Kind: EmptyLabel, Message: "linkNodes: edge label must not be empty"}
	}

	if existing, ok := fromNode.out[to]; ok {
		merged := existing.UnionSet(chars)
		fromNode.out[to] = merged
		toNode.in[from] = merged
		return nil
	}

	fromNode.out[to] = chars
	fromNode.outOrder = append(fromNode.outOrder, to)
	toNode.in[from] = chars
	toNode.inOrder = append(toNode.inOrder, from)
	return nil
}

// UnlinkNodes removes the edge from -> to. Fails with MissingEdge if no
// such edge exists, or CrossListLink if either node does not belong to this
// list.
func (nl *NodeList) UnlinkNodes(from, to ID) error {
	fromNode, toNode := nl.nodes[from], nl.nodes[to]
	if fromNode == nil || toNode == nil || fromNode.owner != nl || toNode.owner != nl {
		return &Error{Kind: CrossListLink, Message: "unlinkNodes: node does not belong to this NodeList"}
	}
	if _, ok := fromNode.out[to]; !ok {
		return &Error{Kind: MissingEdge, Message: "unlinkNodes: no edge to remove"}
	}
	delete(fromNode.out, to)
	fromNode.outOrder = removeID(fromNode.outOrder, to)
	delete(toNode.in, from)
	toNode.inOrder = removeID(toNode.inOrder, from)
	return nil
}

// unlinkAllOut detaches every outgoing edge of id. Used internally by the
// sub-list transformers, which need this to be silent about the
// "no edges to remove" case.
func (nl *NodeList) unlinkAllOut(id ID) {
	node := nl.nodes[id]
	for _, to := range append([]ID(nil), node.outOrder...) {
		_ = nl.UnlinkNodes(id, to)
	}
}

// deleteNode removes id from the arena entirely, detaching all of its
// edges first. The initial node must never be passed here; RemoveUnreachable
// enforces that.
func (nl *NodeList) deleteNode(id ID) {
	node := nl.nodes[id]
	if node == nil {
		return
	}
	for _, to := range append([]ID(nil), node.outOrder...) {
		_ = nl.UnlinkNodes(id, to)
	}
	for _, from := range append([]ID(nil), node.inOrder...) {
		_ = nl.UnlinkNodes(from, id)
	}
	delete(nl.nodes, id)
	nl.RemoveFinal(id)
}
