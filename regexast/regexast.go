// Package regexast defines the tagged-variant tree the compiler consumes
// and the emitter contract it produces. Nothing in this package builds
// these trees from regex source text; a lexer/parser upstream of this
// module is expected to construct them, and a state-elimination routine
// downstream is expected to consume the emitted ones.
package regexast

import "github.com/coregx/automaton/charset"

// Unbounded marks a Quantifier with no upper repetition bound.
const Unbounded = -1

// Expression is a set of alternative concatenations: the language it
// denotes is the union of each Concatenation's language.
type Expression struct {
	Alternatives []Concatenation
}

// Concatenation is an ordered sequence of elements, each matched in turn.
type Concatenation struct {
	Elements []Element
}

// Element is one piece of a Concatenation. Exactly one of Alternation,
// Quantifier, CharacterClass, or Assertion is populated; Kind reports
// which.
type Element struct {
	Kind ElementKind

	// Alternation and Quantifier share this field: the alternatives they
	// wrap.
	Alternatives []Concatenation

	// Quantifier only.
	Min, Max int

	// CharacterClass only.
	Characters charset.CharSet

	// Assertion only. The compiler rejects every Assertion element
	// regardless of Kind or Negate; they are represented here only so a
	// producer can report which assertion was rejected.
	AssertionKind string
	Negate        bool
}

// ElementKind discriminates the variants of Element.
type ElementKind uint8

const (
	AlternationElement ElementKind = iota
	QuantifierElement
	CharacterClassElement
	AssertionElement
)

func (k ElementKind) String() string {
	switch k {
	case AlternationElement:
		return "Alternation"
	case QuantifierElement:
		return "Quantifier"
	case CharacterClassElement:
		return "CharacterClass"
	case AssertionElement:
		return "Assertion"
	default:
		return "Unknown"
	}
}

// Alternation wraps a nested alternative set inside a Concatenation.
func Alternation(alternatives []Concatenation) Element {
	return Element{Kind: AlternationElement, Alternatives: alternatives}
}

// Quantifier repeats alternatives between min and max times (max may be
// Unbounded).
func Quantifier(alternatives []Concatenation, min, max int) Element {
	return Element{Kind: QuantifierElement, Alternatives: alternatives, Min: min, Max: max}
}

// CharacterClass matches a single code point drawn from characters.
func CharacterClass(characters charset.CharSet) Element {
	return Element{Kind: CharacterClassElement, Characters: characters}
}

// Assertion represents a zero-width construct such as a lookaround or a
// backreference. The compiler always rejects it with an
// unsupported-construct error.
func Assertion(kind string, negate bool, alternatives []Concatenation) Element {
	return Element{Kind: AssertionElement, AssertionKind: kind, Negate: negate, Alternatives: alternatives}
}

// TransitionMap describes one node's outgoing transitions for the
// outbound emitter contract: neighbor id (opaque to this package) mapped
// to the CharSet labelling the edge to it.
type TransitionMap map[any]charset.CharSet

// Emitter is the external state-elimination routine that ToRegex delegates
// to. It receives the initial node (opaque, same type as TransitionMap
// keys), a function from node to its outgoing transitions, and a
// predicate testing finality, and returns an Expression equivalent to the
// automaton's language. This package makes no commitment about the
// emitter's internal algorithm.
type Emitter func(initial any, transitionsOf func(node any) TransitionMap, isFinal func(node any) bool) Expression
