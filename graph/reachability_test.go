package graph

import "testing"

func TestIterateIsBreadthFirstAndDeterministic(t *testing.T) {
	nl := New(Options{MaxCharacter: 0xFF})
	a := nl.Initial()
	b := nl.CreateNode()
	c := nl.CreateNode()
	d := nl.CreateNode()
	_ = nl.LinkNodes(a, c, mustSingle(t, nl, 'c'))
	_ = nl.LinkNodes(a, b, mustSingle(t, nl, 'b'))
	_ = nl.LinkNodes(b, d, mustSingle(t, nl, 'd'))

	got := nl.Iterate()
	want := []ID{a, c, b, d}
	if len(got) != len(want) {
		t.Fatalf("Iterate() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Iterate()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestRemoveUnreachableToEmptyLanguage(t *testing.T) {
	nl := New(Options{MaxCharacter: 0xFF})
	a := nl.Initial()
	b := nl.CreateNode()
	_ = nl.LinkNodes(a, b, mustSingle(t, nl, 'x'))
	// no finals at all

	nl.RemoveUnreachable()

	if nl.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (only the initial node)", nl.Len())
	}
	if nl.Node(a).OutDegree() != 0 {
		t.Error("the initial node should have no outgoing edges left")
	}
	if nl.FinalCount() != 0 {
		t.Error("the final set should stay empty")
	}
}

func TestRemoveUnreachableDropsDeadEnds(t *testing.T) {
	nl := New(Options{MaxCharacter: 0xFF})
	a := nl.Initial()
	live := nl.CreateNode()
	dead := nl.CreateNode() // reachable from a, but can't reach any final
	_ = nl.LinkNodes(a, live, mustSingle(t, nl, 'l'))
	_ = nl.LinkNodes(a, dead, mustSingle(t, nl, 'd'))
	nl.AddFinal(live)

	nl.RemoveUnreachable()

	if nl.Node(dead) != nil {
		t.Error("a node that cannot reach any final should be pruned")
	}
	if nl.Node(live) == nil {
		t.Error("a node on a path to a final should survive")
	}
	if nl.Node(a).OutDegree() != 1 {
		t.Errorf("the initial node's edge to the dead node should be gone, OutDegree() = %d", nl.Node(a).OutDegree())
	}
}

func TestRemoveUnreachableDropsUnreachableFromInitial(t *testing.T) {
	nl := New(Options{MaxCharacter: 0xFF})
	a := nl.Initial()
	orphan := nl.CreateNode() // final, but never linked from a
	live := nl.CreateNode()
	_ = nl.LinkNodes(a, live, mustSingle(t, nl, 'l'))
	nl.AddFinal(orphan)
	nl.AddFinal(live)

	nl.RemoveUnreachable()

	if nl.Node(orphan) != nil {
		t.Error("a final node unreachable from the initial node should be pruned")
	}
	if nl.FinalCount() != 1 {
		t.Errorf("FinalCount() = %d, want 1", nl.FinalCount())
	}
}

func TestRemoveUnreachableKeepsInitialEvenIfIsolated(t *testing.T) {
	nl := New(Options{MaxCharacter: 0xFF})
	nl.RemoveUnreachable()
	if nl.Node(nl.Initial()) == nil {
		t.Fatal("the initial node must never be pruned")
	}
}
