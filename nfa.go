package automaton

import (
	"iter"

	"github.com/coregx/automaton/charset"
	"github.com/coregx/automaton/graph"
)

// Options configures the alphabet an NFA operates over.
type Options struct {
	// MaxCharacter is the inclusive upper bound of the alphabet: every
	// edge label and every compiled character class lives in
	// [0, MaxCharacter]. Typically 0xFFFF or 0x10FFFF.
	MaxCharacter int
}

// NFA is a nondeterministic finite automaton: a NodeList plus the
// alphabet it was built over.
type NFA struct {
	nodes   *graph.NodeList
	options Options
}

// New returns an NFA accepting the empty language (no words at all) over
// the given alphabet.
func New(options Options) *NFA {
	return &NFA{
		nodes:   graph.New(graph.Options{MaxCharacter: options.MaxCharacter}),
		options: options,
	}
}

// Options returns the alphabet this NFA was built over.
func (n *NFA) Options() Options {
	return n.options
}

// Nodes exposes the underlying graph. The compiler, the DFA adapter and
// the product construction live in this package and use it directly.
func (n *NFA) Nodes() *graph.NodeList {
	return n.nodes
}

func (n *NFA) checkAlphabet(other Options) error {
	if n.options.MaxCharacter != other.MaxCharacter {
		return &Error{Kind: AlphabetMismatch, Message: "automaton: operands do not share an alphabet"}
	}
	return nil
}

// IsEmpty reports whether the NFA accepts no words at all.
func (n *NFA) IsEmpty() bool {
	return n.nodes.FinalCount() == 0
}

// nodeColor tracks the DFS coloring used by IsFinite. Nodes absent from
// the map are implicitly white (unvisited); white is the zero value so
// that omission and explicit white agree.
type nodeColor uint8

const (
	white nodeColor = iota
	gray
	black
)

// IsFinite reports whether the NFA accepts finitely many words: true iff
// the language is empty, or no cycle reachable from the initial node lies
// on a path from initial to some final node. Computed by DFS coloring
// restricted to nodes that can still reach a final state.
func (n *NFA) IsFinite() bool {
	if n.IsEmpty() {
		return true
	}
	canReachFinal := n.canReachFinalSet()

	colors := make(map[graph.ID]nodeColor)
	var hasCycle bool
	var visit func(id graph.ID)
	visit = func(id graph.ID) {
		if hasCycle {
			return
		}
		colors[id] = gray
		for _, e := range n.nodes.Node(id).Out() {
			if !canReachFinal[e.Peer] {
				continue
			}
			switch colors[e.Peer] {
			case white:
				visit(e.Peer)
			case gray:
				hasCycle = true
				return
			case black:
				continue
			}
		}
		colors[id] = black
	}
	visit(n.nodes.Initial())
	return !hasCycle
}

// canReachFinalSet returns the set of node ids with a path to some final
// node, computed by reversing edges from every final node.
func (n *NFA) canReachFinalSet() map[graph.ID]bool {
	set := make(map[graph.ID]bool)
	queue := append([]graph.ID(nil), n.nodes.Final()...)
	for _, f := range queue {
		set[f] = true
	}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		node := n.nodes.Node(id)
		if node == nil {
			continue
		}
		for _, e := range node.In() {
			if !set[e.Peer] {
				set[e.Peer] = true
				queue = append(queue, e.Peer)
			}
		}
	}
	return set
}

// Copy returns a fresh, independent NFA accepting the same language.
func (n *NFA) Copy() *NFA {
	out := New(n.options)
	graph.BaseUnion(out.nodes, wholeSubList(out), graph.LocalCopy(out.nodes, wholeSubList(n)))
	return out
}

// wholeSubList returns a SubList describing the entirety of n: its
// initial node and its full final set. LocalCopy needs this to clone n's
// graph before it can be merged into another NodeList by BaseUnion.
func wholeSubList(n *NFA) *graph.SubList {
	return &graph.SubList{Initial: n.nodes.Initial(), Final: n.nodes.Final()}
}

// Test brute-force simulates word against the NFA: it succeeds iff from
// the current node some outgoing edge accepts the current code point and
// the remainder matches. This is a conformance check, not a performance
// path — see the package's design notes on recursion depth.
func (n *NFA) Test(word []rune) bool {
	return n.test(n.nodes.Initial(), word)
}

func (n *NFA) test(id graph.ID, word []rune) bool {
	if len(word) == 0 {
		return n.nodes.IsFinal(id)
	}
	cp := int(word[0])
	for _, e := range n.nodes.Node(id).Out() {
		if e.Chars.Has(cp) && n.test(e.Peer, word[1:]) {
			return true
		}
	}
	return false
}

// Union alters n so that it accepts L(n) ∪ L(other). A no-op if other is
// n itself.
func (n *NFA) Union(other *NFA) error {
	if other == n {
		return nil
	}
	if err := n.checkAlphabet(other.options); err != nil {
		return err
	}
	alt := graph.LocalCopy(n.nodes, wholeSubList(other))
	graph.BaseUnion(n.nodes, wholeSubList(n), alt)
	return nil
}

// Concat alters n so that it accepts L(n)·L(other). Concatenating n with
// itself is delegated to Quantify(2, 2).
func (n *NFA) Concat(other *NFA) error {
	if other == n {
		return n.Quantify(2, 2)
	}
	if err := n.checkAlphabet(other.options); err != nil {
		return err
	}
	after := graph.LocalCopy(n.nodes, wholeSubList(other))
	graph.BaseConcat(n.nodes, wholeSubList(n), after)
	return nil
}

// Quantify alters n so that it accepts L(n){min,max}. max may be
// graph.Unbounded. Fails with InvalidRange if the bounds are negative or
// min > max.
func (n *NFA) Quantify(min, max int) error {
	if min < 0 || (max != graph.Unbounded && max < min) {
		return &Error{Kind: InvalidRange, Message: "automaton: quantifier bounds must satisfy 0 <= min <= max"}
	}
	graph.BaseQuantify(n.nodes, wholeSubList(n), min, max)
	return nil
}

// pathStep is one transition of a path from the initial node: the CharSet
// that labels it and the node it leads to.
type pathStep struct {
	chars charset.CharSet
	to    graph.ID
}

// WordSets lazily enumerates every accepted path, expressed as the
// sequence of CharSets labelling its transitions, shortest paths first:
// every path of length L is yielded before any path of length L+1, even
// across a branching cycle. Ranging over an infinite language never
// terminates; callers must break out of the loop themselves.
func (n *NFA) WordSets() iter.Seq[[]charset.CharSet] {
	return func(yield func([]charset.CharSet) bool) {
		n.walk(func(path []pathStep) bool {
			sets := make([]charset.CharSet, len(path))
			for i, s := range path {
				sets[i] = s.chars
			}
			return yield(sets)
		})
	}
}

// Words lazily enumerates every concrete word the NFA accepts, shortest
// words first, by choosing the smallest code point of each transition in
// a WordSets path. Ranging over an infinite language never terminates.
func (n *NFA) Words() iter.Seq[[]rune] {
	return func(yield func([]rune) bool) {
		n.walk(func(path []pathStep) bool {
			word := make([]rune, len(path))
			for i, s := range path {
				word[i] = rune(s.chars.Ranges()[0].Lo)
			}
			return yield(word)
		})
	}
}

// walk enumerates every finite path from the initial node in
// length-ordered (breadth-first) frontiers, invoking visit with the
// accumulated path whenever a frontier entry lands on a final node. A
// plain depth-first descent cannot make this guarantee: on a cycle with
// sibling branches off the initial node, it would chase the cycle
// indefinitely and never reach paths reachable only through a later edge
// of an earlier node. It returns false once visit asks to stop.
func (n *NFA) walk(visit func([]pathStep) bool) bool {
	type frontierEntry struct {
		id   graph.ID
		path []pathStep
	}
	frontier := []frontierEntry{{id: n.nodes.Initial()}}
	for len(frontier) > 0 {
		var next []frontierEntry
		for _, f := range frontier {
			if n.nodes.IsFinal(f.id) {
				if !visit(f.path) {
					return false
				}
			}
			for _, e := range n.nodes.Node(f.id).Out() {
				childPath := make([]pathStep, len(f.path)+1)
				copy(childPath, f.path)
				childPath[len(f.path)] = pathStep{chars: e.Chars, to: e.Peer}
				next = append(next, frontierEntry{id: e.Peer, path: childPath})
			}
		}
		frontier = next
	}
	return true
}
