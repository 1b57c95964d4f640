package graph

// SubList is a transient view {initial, final} into a NodeList, describing
// a sub-automaton currently under construction. It is not a container of
// its own; every node it names is owned by the NodeList it was built in.
// Its final set is kept in its own slice, and every SubList method that
// edits that slice also marks or un-marks the id on the owning NodeList,
// which remains the record of which nodes accept. Other SubLists naming
// the same node are not updated by such an edit.
type SubList struct {
	Initial ID
	Final   []ID
}

// NewSubList returns a SubList whose final set is exactly {initial},
// marking initial final on nl. This is the usual starting point for
// compiling an empty concatenation (accepts ε).
func NewSubList(nl *NodeList, initial ID) *SubList {
	s := &SubList{Initial: initial}
	s.AddFinal(nl, initial)
	return s
}

// NewEmptySubList returns a SubList over initial accepting nothing,
// leaving initial's final marking on nl untouched.
func NewEmptySubList(initial ID) *SubList {
	return &SubList{Initial: initial}
}

// HasFinal reports whether id is one of the sub-list's final nodes.
func (s *SubList) HasFinal(id ID) bool {
	for _, f := range s.Final {
		if f == id {
			return true
		}
	}
	return false
}

// AddFinal appends id to the final set if it is not already present,
// marking it final on nl.
func (s *SubList) AddFinal(nl *NodeList, id ID) {
	if !s.HasFinal(id) {
		s.Final = append(s.Final, id)
		nl.AddFinal(id)
	}
}

// RemoveFinal drops id from the final set, if present, un-marking it on
// nl.
func (s *SubList) RemoveFinal(nl *NodeList, id ID) {
	for i, f := range s.Final {
		if f == id {
			s.Final = append(s.Final[:i], s.Final[i+1:]...)
			nl.RemoveFinal(id)
			return
		}
	}
}

// ClearFinal empties the final set, un-marking every member on nl.
func (s *SubList) ClearFinal(nl *NodeList) {
	for _, f := range s.Final {
		nl.RemoveFinal(f)
	}
	s.Final = nil
}

// ReplaceFinal replaces the final set wholesale with ids, syncing nl.
func (s *SubList) ReplaceFinal(nl *NodeList, ids []ID) {
	s.ClearFinal(nl)
	for _, id := range ids {
		s.AddFinal(nl, id)
	}
}

// IsEmptyLanguage reports whether the sub-list currently accepts nothing.
func (s *SubList) IsEmptyLanguage() bool {
	return len(s.Final) == 0
}
