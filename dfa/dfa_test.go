package dfa

import "testing"

func buildSimpleDFA(t *testing.T) *DFA {
	t.Helper()
	b := NewBuilder()
	start := b.AddState(false)
	mid := b.AddState(false)
	end := b.AddState(true)
	b.SetStart(start)
	if err := b.AddTransition(start, 'a', 'a', mid); err != nil {
		t.Fatal(err)
	}
	if err := b.AddTransition(mid, 'b', 'b', end); err != nil {
		t.Fatal(err)
	}
	d, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestBuilderBuildsExpectedStates(t *testing.T) {
	d := buildSimpleDFA(t)
	if len(d.States()) != 3 {
		t.Fatalf("States() = %v, want 3 states", d.States())
	}
	if d.Start() != 0 {
		t.Errorf("Start() = %d, want 0", d.Start())
	}
}

func TestDFAIsMatch(t *testing.T) {
	d := buildSimpleDFA(t)
	if d.IsMatch(d.Start()) {
		t.Error("the start state should not be accepting")
	}
	if !d.IsMatch(2) {
		t.Error("state 2 should be accepting")
	}
	if d.IsMatch(99) {
		t.Error("an out-of-range state should not report as accepting")
	}
}

func TestDFATransitions(t *testing.T) {
	d := buildSimpleDFA(t)
	ts := d.Transitions(d.Start())
	if len(ts) != 1 || ts[0].Lo != 'a' || ts[0].Hi != 'a' || ts[0].Target != 1 {
		t.Errorf("Transitions(start) = %v, want a single a->1 edge", ts)
	}
	if got := d.Transitions(99); got != nil {
		t.Errorf("Transitions on an unknown state should be nil, got %v", got)
	}
}

func TestBuilderRejectsBuildWithoutStart(t *testing.T) {
	b := NewBuilder()
	b.AddState(false)
	if _, err := b.Build(); err == nil {
		t.Fatal("expected NoStartState error")
	} else if e, ok := err.(*Error); !ok || e.Kind != NoStartState {
		t.Errorf("expected NoStartState, got %v", err)
	}
}

func TestBuilderRejectsUnknownStateInTransition(t *testing.T) {
	b := NewBuilder()
	s := b.AddState(false)
	if err := b.AddTransition(s, 0, 1, 99); err == nil {
		t.Fatal("expected UnknownState error")
	} else if e, ok := err.(*Error); !ok || e.Kind != UnknownState {
		t.Errorf("expected UnknownState, got %v", err)
	}
}

func TestStateStringDoesNotPanic(t *testing.T) {
	d := buildSimpleDFA(t)
	if got := d.State(0).String(); got == "" {
		t.Error("String() should not be empty")
	}
}
