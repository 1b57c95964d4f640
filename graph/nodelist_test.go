package graph

import (
	"testing"

	"github.com/coregx/automaton/charset"
)

func TestNewHasSingleNonFinalInitial(t *testing.T) {
	nl := New(Options{MaxCharacter: 0xFF})
	if nl.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", nl.Len())
	}
	if nl.IsFinal(nl.Initial()) {
		t.Error("a fresh NodeList's initial node should not be final")
	}
	if nl.FinalCount() != 0 {
		t.Errorf("FinalCount() = %d, want 0", nl.FinalCount())
	}
}

func TestOptionsValidate(t *testing.T) {
	if err := (Options{MaxCharacter: 0}).Validate(); err != nil {
		t.Errorf("MaxCharacter=0 should validate, got %v", err)
	}
	if err := (Options{MaxCharacter: -1}).Validate(); err == nil {
		t.Error("negative MaxCharacter should fail validation")
	}
}

func TestAddRemoveClearFinal(t *testing.T) {
	nl := New(Options{MaxCharacter: 0xFF})
	a, b := nl.Initial(), nl.CreateNode()

	nl.AddFinal(a)
	nl.AddFinal(b)
	if nl.FinalCount() != 2 {
		t.Fatalf("FinalCount() = %d, want 2", nl.FinalCount())
	}
	if got := nl.Final(); len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("Final() = %v, want insertion order [a, b]", got)
	}

	nl.AddFinal(a) // no-op
	if nl.FinalCount() != 2 {
		t.Errorf("re-adding a final node should be a no-op, FinalCount() = %d", nl.FinalCount())
	}

	nl.RemoveFinal(a)
	if nl.IsFinal(a) {
		t.Error("a should no longer be final")
	}
	if nl.FinalCount() != 1 {
		t.Errorf("FinalCount() = %d, want 1", nl.FinalCount())
	}

	nl.ClearFinal()
	if nl.FinalCount() != 0 {
		t.Errorf("FinalCount() = %d, want 0 after ClearFinal", nl.FinalCount())
	}
}

func TestLinkNodesRejectsCrossListAndEmptyLabel(t *testing.T) {
	nl1 := New(Options{MaxCharacter: 0xFF})
	nl2 := New(Options{MaxCharacter: 0xFF})

	err := nl1.LinkNodes(nl1.Initial(), nl2.Initial(), mustSingle(t, nl1, 'a'))
	if err == nil {
		t.Fatal("expected a CrossListLink error")
	}
	if e, ok := err.(*Error); !ok || e.Kind != CrossListLink {
		t.Errorf("expected CrossListLink, got %v", err)
	}

	b := nl1.CreateNode()
	if err := nl1.LinkNodes(nl1.Initial(), b, charset.Empty(nl1.Options().MaxCharacter)); err == nil {
		t.Fatal("expected an EmptyLabel error")
	}
}

func TestUnlinkNodesRejectsMissingEdge(t *testing.T) {
	nl := New(Options{MaxCharacter: 0xFF})
	a, b := nl.Initial(), nl.CreateNode()
	if err := nl.UnlinkNodes(a, b); err == nil {
		t.Fatal("expected a MissingEdge error")
	} else if e, ok := err.(*Error); !ok || e.Kind != MissingEdge {
		t.Errorf("expected MissingEdge, got %v", err)
	}
}

func TestUnlinkNodesRemovesAdjacency(t *testing.T) {
	nl := New(Options{MaxCharacter: 0xFF})
	a, b := nl.Initial(), nl.CreateNode()
	if err := nl.LinkNodes(a, b, mustSingle(t, nl, 'a')); err != nil {
		t.Fatal(err)
	}
	if err := nl.UnlinkNodes(a, b); err != nil {
		t.Fatal(err)
	}
	if nl.Node(a).OutDegree() != 0 || nl.Node(b).InDegree() != 0 {
		t.Error("UnlinkNodes should remove both directions of adjacency")
	}
}

func TestDeleteNodeDetachesAndUnmarksFinal(t *testing.T) {
	nl := New(Options{MaxCharacter: 0xFF})
	a, b, c := nl.Initial(), nl.CreateNode(), nl.CreateNode()
	_ = nl.LinkNodes(a, b, mustSingle(t, nl, 'x'))
	_ = nl.LinkNodes(b, c, mustSingle(t, nl, 'y'))
	nl.AddFinal(b)

	nl.deleteNode(b)

	if nl.Node(b) != nil {
		t.Error("deleted node should no longer be retrievable")
	}
	if nl.IsFinal(b) {
		t.Error("deleted node should be unmarked final")
	}
	if nl.Node(a).OutDegree() != 0 {
		t.Error("deleting b should detach a's edge to it")
	}
	if nl.Node(c).InDegree() != 0 {
		t.Error("deleting b should detach its edge to c")
	}
}
