package automaton

import (
	"github.com/coregx/automaton/graph"
	"github.com/coregx/automaton/regexast"
)

// FromRegex compiles a regex AST into a fresh NFA over options. It walks
// the AST recursively, mapping each node to a SubList inside a shared
// NodeList, and installs the result as the NodeList's root.
//
// Assertions are rejected with UnsupportedConstruct; character classes
// whose alphabet does not match options.MaxCharacter are rejected with
// AlphabetMismatch.
func FromRegex(expr regexast.Expression, options Options) (*NFA, error) {
	n := New(options)
	sub, err := compileAlternatives(n, expr.Alternatives)
	if err != nil {
		return nil, err
	}
	graph.BaseReplaceWith(n.nodes, wholeSubList(n), sub)
	n.nodes.RemoveUnreachable()
	return n, nil
}

// compileAlternatives compiles a set of alternative concatenations into a
// SubList: empty produces the empty-language SubList, otherwise the first
// alternative is the base and every later one is unioned in.
func compileAlternatives(n *NFA, alts []regexast.Concatenation) (*graph.SubList, error) {
	if len(alts) == 0 {
		return graph.NewEmptySubList(n.nodes.CreateNode()), nil
	}

	base, err := compileConcatenation(n, alts[0])
	if err != nil {
		return nil, err
	}
	for _, alt := range alts[1:] {
		other, err := compileConcatenation(n, alt)
		if err != nil {
			return nil, err
		}
		graph.BaseUnion(n.nodes, base, other)
	}
	return base, nil
}

// compileConcatenation compiles an ordered sequence of elements, stopping
// early once the accumulated SubList's final set becomes empty (nothing
// that follows can be reached).
func compileConcatenation(n *NFA, c regexast.Concatenation) (*graph.SubList, error) {
	base := graph.NewSubList(n.nodes, n.nodes.CreateNode())
	for _, el := range c.Elements {
		if base.IsEmptyLanguage() {
			break
		}
		if err := compileElement(n, base, el); err != nil {
			return nil, err
		}
	}
	return base, nil
}

func compileElement(n *NFA, base *graph.SubList, el regexast.Element) error {
	switch el.Kind {
	case regexast.CharacterClassElement:
		if el.Characters.Maximum() != n.options.MaxCharacter {
			return &Error{Kind: AlphabetMismatch, Message: "automaton: character class does not share the NFA's alphabet"}
		}
		if el.Characters.IsEmpty() {
			graph.BaseMakeEmpty(n.nodes, base)
			return nil
		}
		next := n.nodes.CreateNode()
		for _, f := range base.Final {
			if err := n.nodes.LinkNodes(f, next, el.Characters); err != nil {
				return err
			}
		}
		base.ReplaceFinal(n.nodes, []graph.ID{next})
		return nil

	case regexast.AlternationElement:
		sub, err := compileAlternatives(n, el.Alternatives)
		if err != nil {
			return err
		}
		graph.BaseConcat(n.nodes, base, sub)
		return nil

	case regexast.QuantifierElement:
		sub, err := compileAlternatives(n, el.Alternatives)
		if err != nil {
			return err
		}
		graph.BaseQuantify(n.nodes, sub, el.Min, el.Max)
		graph.BaseConcat(n.nodes, base, sub)
		return nil

	case regexast.AssertionElement:
		return &Error{Kind: UnsupportedConstruct, Message: "automaton: assertions are not supported: " + el.AssertionKind}

	default:
		return &Error{Kind: UnsupportedConstruct, Message: "automaton: unrecognized AST element"}
	}
}
