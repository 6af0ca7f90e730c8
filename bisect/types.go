// Package bisect narrows down which strings of a translation catalog cause a problem
// by splitting the catalog into halves, recursively, under the user's control.
package bisect

// Pair is one catalog entry: the original string and its translation.
type Pair struct {
	Original    string `json:"original"`
	Translation string `json:"translation"`
}

// Sequence is a read-only view over an ordered list of pairs.
// It keeps a reference to the caller's slice; nothing in this package modifies it.
type Sequence struct {
	pairs []Pair
}

// NewSequence wraps pairs without copying them.
func NewSequence(pairs []Pair) *Sequence {
	return &Sequence{pairs: pairs}
}

// Len returns the number of pairs.
func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}
	return len(s.pairs)
}

// At returns the pair at index i.
func (s *Sequence) At(i int) Pair {
	return s.pairs[i]
}

// Pairs returns a copy of the whole sequence.
func (s *Sequence) Pairs() []Pair {
	if s == nil {
		return nil
	}
	return append([]Pair(nil), s.pairs...)
}

func (s *Sequence) slice(start, end int) []Pair {
	return s.pairs[start : end+1]
}

// NodeID identifies a node within a Tree. Identifiers are never reused
// until the tree is reset.
type NodeID int

// NoParent is passed to InsertChild to register the root.
const NoParent NodeID = 0

// Mark is a free-form annotation attached to a node for visual tracking.
type Mark string

const (
	MarkNone Mark = ""
	MarkBad  Mark = "bad"
	MarkGood Mark = "good"
)
