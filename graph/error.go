// Package graph implements the NodeList: the arena that owns every node and
// edge of an automaton, plus the sub-list transformers (union, concat,
// repeat, quantify, ...) that mutate it while preserving the normalization
// invariant (the initial node has no incoming edges).
package graph

import "fmt"

// ErrorKind classifies the ways a graph operation can fail.
type ErrorKind uint8

const (
	// CrossListLink indicates an attempt to link or unlink nodes owned by
	// different NodeLists.
	CrossListLink ErrorKind = iota
	// EmptyLabel indicates an attempt to create an edge with an empty
	// character set.
	EmptyLabel
	// MissingEdge indicates UnlinkNodes was called on a non-edge.
	MissingEdge
	// InitialRemoval indicates reachability pruning attempted to remove the
	// initial node. This signals a caller bug; it should never occur through
	// the public API.
	InitialRemoval
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case CrossListLink:
		return "CrossListLink"
	case EmptyLabel:
		return "EmptyLabel"
	case MissingEdge:
		return "MissingEdge"
	case InitialRemoval:
		return "InitialRemoval"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", k)
	}
}

// Error represents a failure of a NodeList operation.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Is implements error comparison for errors.Is against another *Error with
// the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
