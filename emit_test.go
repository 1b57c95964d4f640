package automaton

import (
	"testing"

	"github.com/coregx/automaton/regexast"
)

func TestToRegexPassesInitialTransitionsAndFinality(t *testing.T) {
	n := singleLetterNFA(t, 'a')
	initialID := n.Nodes().Initial()
	finalID := n.Nodes().Final()[0]

	var gotInitial any
	var gotFinal, gotNonFinal bool
	var gotTransitions regexast.TransitionMap

	emitter := func(initial any, transitionsOf func(node any) regexast.TransitionMap, isFinal func(node any) bool) regexast.Expression {
		gotInitial = initial
		gotTransitions = transitionsOf(initial)
		gotFinal = isFinal(finalID)
		gotNonFinal = isFinal(initialID)
		return regexast.Expression{}
	}

	n.ToRegex(emitter)

	if gotInitial != initialID {
		t.Errorf("emitter received initial=%v, want %v", gotInitial, initialID)
	}
	if len(gotTransitions) != 1 || !gotTransitions[finalID].Has('a') {
		t.Errorf("expected the initial node's sole transition to accept 'a', got %v", gotTransitions)
	}
	if !gotFinal {
		t.Error("isFinal should report true for the final node")
	}
	if gotNonFinal {
		t.Error("isFinal should report false for the initial node")
	}
}
