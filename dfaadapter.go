package automaton

import "github.com/coregx/automaton/dfa"

// dfaAdapter adapts a *dfa.DFA to DFASource so FromDFA can consume it
// without the dfa package needing to know about this one.
type dfaAdapter struct {
	d *dfa.DFA
}

// WrapDFA returns a DFASource view of d for use with FromDFA.
func WrapDFA(d *dfa.DFA) DFASource[dfa.StateID] {
	return dfaAdapter{d: d}
}

func (a dfaAdapter) Start() dfa.StateID { return a.d.Start() }

func (a dfaAdapter) States() []dfa.StateID { return a.d.States() }

func (a dfaAdapter) IsMatch(s dfa.StateID) bool { return a.d.IsMatch(s) }

func (a dfaAdapter) Transitions(s dfa.StateID) []DFATransition[dfa.StateID] {
	ts := a.d.Transitions(s)
	out := make([]DFATransition[dfa.StateID], len(ts))
	for i, t := range ts {
		out[i] = DFATransition[dfa.StateID]{Lo: t.Lo, Hi: t.Hi, Target: t.Target}
	}
	return out
}
