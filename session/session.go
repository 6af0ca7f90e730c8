// Package session keeps the state of an interactive bisection: the tree over
// the loaded catalog, the current selection and the marks, and persists it
// between runs.
package session

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/xishang0128/df-translate/bisect"
)

var (
	ErrSnapshotMismatch = errors.New("snapshot was taken over a different catalog")
	ErrBadSnapshot      = errors.New("malformed snapshot")
)

// Session is a bisection tree plus the nodes the user currently has selected.
type Session struct {
	id       uuid.UUID
	source   string
	pairs    []bisect.Pair
	tree     *bisect.Tree
	selected []bisect.NodeID
}

// New starts a session over pairs loaded from source.
func New(source string, pairs []bisect.Pair) *Session {
	return &Session{
		id:     uuid.New(),
		source: source,
		pairs:  pairs,
		tree:   bisect.NewTree(pairs),
	}
}

func (s *Session) ID() string           { return s.id.String() }
func (s *Session) Source() string       { return s.source }
func (s *Session) Tree() *bisect.Tree   { return s.tree }
func (s *Session) Pairs() []bisect.Pair { return s.pairs }

// Reset replaces the catalog and discards the tree, marks and selection.
func (s *Session) Reset(pairs []bisect.Pair) {
	s.pairs = pairs
	s.tree.SetSequence(pairs)
	s.selected = nil
}

// Select replaces the selection. Every id must be registered in the tree;
// on error the previous selection is kept.
func (s *Session) Select(ids ...bisect.NodeID) error {
	for _, id := range ids {
		if _, ok := s.tree.Node(id); !ok {
			return fmt.Errorf("select: %w: %d", bisect.ErrUnknownNode, id)
		}
	}
	s.selected = slices.Clone(ids)
	return nil
}

// Selected returns the selected ids in selection order.
func (s *Session) Selected() []bisect.NodeID {
	return slices.Clone(s.selected)
}

// SelectedLeaf returns the first selected node when it is a leaf.
func (s *Session) SelectedLeaf() (bisect.NodeID, bool) {
	if len(s.selected) == 0 || !s.tree.IsLeaf(s.selected[0]) {
		return bisect.NoParent, false
	}
	return s.selected[0], true
}

// SplitSelected splits the first selected node and moves the selection to
// its left child. Nothing changes when that node cannot be split.
func (s *Session) SplitSelected() (left, right bisect.NodeID, ok bool) {
	id, isLeaf := s.SelectedLeaf()
	if !isLeaf {
		return bisect.NoParent, bisect.NoParent, false
	}

	left, right, ok = s.tree.SplitNode(id)
	if !ok {
		return bisect.NoParent, bisect.NoParent, false
	}

	s.selected = []bisect.NodeID{left}

	log.Debug().
		Str("session", s.ID()).
		Int("node", int(id)).
		Int("left", int(left)).
		Int("right", int(right)).
		Msg("split node")

	return left, right, true
}

// MarkSelected marks every selected node; bisect.MarkNone clears.
func (s *Session) MarkSelected(mark bisect.Mark) {
	s.tree.Mark(s.selected, mark)
}

// Filtered returns the pairs covered by the selection, or every pair when
// nothing is selected.
func (s *Session) Filtered() ([]bisect.Pair, error) {
	return s.tree.SelectedStringPairs(s.selected...)
}
