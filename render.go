package automaton

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/coregx/automaton/charset"
	"github.com/coregx/automaton/graph"
)

// String renders the NFA as deterministic, multi-line text: one stanza
// per node in BFS order from the initial state, non-final nodes labelled
// "(id)" and final nodes "[id]", followed by one "-> target : ranges"
// line per outgoing edge (or "  -> none" if there are none). Stanzas are
// separated by a blank line.
//
// Ranges are rendered as a comma-separated list of lower-case hex code
// points ("hh") or ranges ("lo..hi"), unpadded.
func (n *NFA) String() string {
	order := n.nodes.Iterate()
	labels := make(map[graph.ID]string, len(order))
	for pos, id := range order {
		labels[id] = nodeLabel(n.nodes, id, pos)
	}

	var b strings.Builder
	for i, id := range order {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s\n", labels[id])
		out := n.nodes.Node(id).Out()
		if len(out) == 0 {
			b.WriteString("  -> none\n")
			continue
		}
		for _, e := range out {
			fmt.Fprintf(&b, "-> %s : %s\n", labels[e.Peer], rangesString(e.Chars))
		}
	}
	return b.String()
}

// nodeLabel renders a node's compact position in BFS order, not its raw
// stable NodeList id: construction leaves gaps (scratch nodes later
// removed by RemoveUnreachable), and rendered ids must be gap-free.
func nodeLabel(nl *graph.NodeList, id graph.ID, pos int) string {
	if nl.IsFinal(id) {
		return fmt.Sprintf("[%d]", pos)
	}
	return fmt.Sprintf("(%d)", pos)
}

func rangesString(c charset.CharSet) string {
	parts := make([]string, len(c.Ranges()))
	for i, r := range c.Ranges() {
		if r.Lo == r.Hi {
			parts[i] = strconv.FormatInt(int64(r.Lo), 16)
		} else {
			parts[i] = strconv.FormatInt(int64(r.Lo), 16) + ".." + strconv.FormatInt(int64(r.Hi), 16)
		}
	}
	return strings.Join(parts, ",")
}
