package bisect

import "errors"

// Range errors
var (
	// ErrInvalidRange indicates node bounds that are reversed or outside the sequence.
	ErrInvalidRange = errors.New("invalid node range")

	// ErrNotSplittable indicates a split attempt on a node holding fewer than two strings.
	ErrNotSplittable = errors.New("node is not splittable")
)

// Tree errors
var (
	// ErrIdentityConflict indicates that an equal node is already registered in the tree.
	ErrIdentityConflict = errors.New("node already registered")

	// ErrUnknownNode indicates an identifier the tree never issued (or issued before a reset).
	ErrUnknownNode = errors.New("unknown node")

	// ErrForeignNode indicates a node built over a different sequence than the tree's.
	ErrForeignNode = errors.New("node belongs to another sequence")

	// ErrRootExists indicates a second root insertion.
	ErrRootExists = errors.New("tree already has a root")
)
