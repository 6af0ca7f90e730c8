package bisect

import (
	"fmt"
	"slices"
)

// Tree is an append-only tree of nodes built by repeated bisection of a sequence.
// Its leaves always partition the sequence. A Tree is not safe for concurrent use.
type Tree struct {
	seq *Sequence

	root     NodeID
	nextID   NodeID
	nodes    map[NodeID]Node
	ids      map[Node]NodeID
	parents  map[NodeID]NodeID
	children map[NodeID][]NodeID
	marks    map[NodeID]Mark
}

// NewTree creates a tree with a single root spanning pairs.
func NewTree(pairs []Pair) *Tree {
	t := &Tree{}
	t.SetSequence(pairs)
	return t
}

// SetSequence replaces the sequence and resets the tree to a single root
// spanning it, or to no root at all when pairs is empty. All previous nodes,
// identifiers and marks are discarded.
func (t *Tree) SetSequence(pairs []Pair) {
	t.seq = NewSequence(pairs)
	t.root = NoParent
	t.nextID = NoParent
	t.nodes = make(map[NodeID]Node)
	t.ids = make(map[Node]NodeID)
	t.parents = make(map[NodeID]NodeID)
	t.children = make(map[NodeID][]NodeID)
	t.marks = make(map[NodeID]Mark)

	if len(pairs) == 0 {
		return
	}

	root, err := NewNode(t.seq, 0, -1)
	if err != nil {
		panic(err) // unreachable: the full range of a non-empty sequence is valid
	}

	if _, err := t.InsertChild(NoParent, root); err != nil {
		panic(err)
	}
}

// Sequence returns the sequence currently in view.
func (t *Tree) Sequence() *Sequence { return t.seq }

// Len returns the number of registered nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// Root returns the root identifier; ok is false when the sequence is empty.
func (t *Tree) Root() (id NodeID, ok bool) {
	return t.root, t.root != NoParent
}

// InsertChild registers node under parent, or as the root when parent is NoParent,
// and returns its fresh identifier.
func (t *Tree) InsertChild(parent NodeID, node Node) (NodeID, error) {
	if node.seq != t.seq {
		return NoParent, fmt.Errorf("%w: %s", ErrForeignNode, node)
	}

	if id, exists := t.ids[node]; exists {
		return NoParent, fmt.Errorf("%w: %s is node %d", ErrIdentityConflict, node, id)
	}

	if parent == NoParent {
		if t.root != NoParent {
			return NoParent, fmt.Errorf("%w: root is node %d", ErrRootExists, t.root)
		}
	} else if _, ok := t.nodes[parent]; !ok {
		return NoParent, fmt.Errorf("%w: parent %d", ErrUnknownNode, parent)
	}

	t.nextID++
	id := t.nextID

	t.nodes[id] = node
	t.ids[node] = id

	if parent == NoParent {
		t.root = id
	} else {
		t.parents[id] = parent
		t.children[parent] = append(t.children[parent], id)
	}

	return id, nil
}

// SplitNode splits the leaf id into two children and returns their identifiers
// in (left, right) order. Unknown, internal and single-string nodes are left
// untouched and reported with ok == false. Callers usually select left next.
func (t *Tree) SplitNode(id NodeID) (left, right NodeID, ok bool) {
	node, known := t.nodes[id]
	if !known || !t.IsLeaf(id) || !node.Splittable() {
		return NoParent, NoParent, false
	}

	l, r, err := node.Split()
	if err != nil {
		return NoParent, NoParent, false
	}

	// Children of a leaf are new ranges; a conflict means the tree is corrupt.
	if left, err = t.InsertChild(id, l); err != nil {
		panic(err)
	}
	if right, err = t.InsertChild(id, r); err != nil {
		panic(err)
	}

	return left, right, true
}

// Mark attaches mark to every node in ids. MarkNone clears. Unknown ids are ignored.
func (t *Tree) Mark(ids []NodeID, mark Mark) {
	for _, id := range ids {
		if _, ok := t.nodes[id]; !ok {
			continue
		}
		if mark == MarkNone {
			delete(t.marks, id)
		} else {
			t.marks[id] = mark
		}
	}
}

// MarkOf returns the annotation of id, MarkNone when unmarked.
func (t *Tree) MarkOf(id NodeID) Mark {
	return t.marks[id]
}

// Node returns the node registered under id.
func (t *Tree) Node(id NodeID) (Node, bool) {
	n, ok := t.nodes[id]
	return n, ok
}

// ID returns the identifier of a registered node.
func (t *Tree) ID(node Node) (NodeID, bool) {
	id, ok := t.ids[node]
	return id, ok
}

// Parent returns the parent of id; ok is false for the root and unknown ids.
func (t *Tree) Parent(id NodeID) (NodeID, bool) {
	p, ok := t.parents[id]
	return p, ok
}

// Children returns the children of id in (left, right) order.
func (t *Tree) Children(id NodeID) []NodeID {
	return slices.Clone(t.children[id])
}

// IsLeaf reports whether id is registered and has no children.
func (t *Tree) IsLeaf(id NodeID) bool {
	_, ok := t.nodes[id]
	return ok && len(t.children[id]) == 0
}

// Leaves returns the leaf identifiers in sequence order.
func (t *Tree) Leaves() []NodeID {
	var leaves []NodeID
	t.Walk(func(id NodeID, _ int) bool {
		if t.IsLeaf(id) {
			leaves = append(leaves, id)
		}
		return true
	})
	return leaves
}

// Walk visits the tree in pre-order, left child first. Returning false from
// fn skips the subtree of the visited node.
func (t *Tree) Walk(fn func(id NodeID, depth int) bool) {
	if t.root == NoParent {
		return
	}

	var visit func(id NodeID, depth int)
	visit = func(id NodeID, depth int) {
		if !fn(id, depth) {
			return
		}
		for _, child := range t.children[id] {
			visit(child, depth+1)
		}
	}
	visit(t.root, 0)
}

// SelectedStringPairs returns the pairs implied by a selection of nodes:
// the whole sequence when nothing is selected, the node's range when one
// node is selected, and the union of the ranges in original order otherwise.
// An index covered by several selected nodes appears once.
func (t *Tree) SelectedStringPairs(ids ...NodeID) ([]Pair, error) {
	if len(ids) == 0 {
		return t.seq.Pairs(), nil
	}

	nodes := make([]Node, 0, len(ids))
	for _, id := range ids {
		n, ok := t.nodes[id]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownNode, id)
		}
		nodes = append(nodes, n)
	}

	if len(nodes) == 1 {
		n := nodes[0]
		return slices.Clone(t.seq.slice(n.start, n.end)), nil
	}

	slices.SortFunc(nodes, func(a, b Node) int {
		if a.start != b.start {
			return a.start - b.start
		}
		return a.end - b.end
	})

	var (
		result []Pair
		next   int // first index not yet emitted
	)
	for _, n := range nodes {
		start := max(n.start, next)
		if start > n.end {
			continue
		}
		result = append(result, t.seq.slice(start, n.end)...)
		next = n.end + 1
	}

	return result, nil
}
