package automaton

import (
	"testing"

	"github.com/coregx/automaton/dfa"
)

func TestWrapDFASatisfiesDFASource(t *testing.T) {
	b := dfa.NewBuilder()
	start := b.AddState(false)
	end := b.AddState(true)
	b.SetStart(start)
	if err := b.AddTransition(start, 'x', 'x', end); err != nil {
		t.Fatal(err)
	}
	d, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}

	src := WrapDFA(d)
	if src.Start() != start {
		t.Errorf("Start() = %v, want %v", src.Start(), start)
	}
	if !src.IsMatch(end) {
		t.Error("expected the accept state to report IsMatch")
	}
	ts := src.Transitions(start)
	if len(ts) != 1 || ts[0].Lo != 'x' || ts[0].Target != end {
		t.Errorf("Transitions(start) = %v", ts)
	}
}

func TestFromDFAViaWrapDFA(t *testing.T) {
	b := dfa.NewBuilder()
	start := b.AddState(false)
	end := b.AddState(true)
	b.SetStart(start)
	if err := b.AddTransition(start, 'x', 'x', end); err != nil {
		t.Fatal(err)
	}
	d, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}

	n, err := FromDFA(WrapDFA(d), Options{MaxCharacter: testMaxChar})
	if err != nil {
		t.Fatal(err)
	}
	if !n.Test([]rune("x")) {
		t.Error("expected 'x' to be accepted")
	}
	if n.Test([]rune("y")) {
		t.Error("expected 'y' to be rejected")
	}
}
