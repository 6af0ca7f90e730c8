package bisect

import (
	"fmt"
	"iter"
)

// Node is an inclusive range [start, end] over a Sequence.
// Nodes are immutable values; two nodes are equal when they cover the same
// range of the same sequence, which makes them usable as map keys.
type Node struct {
	seq   *Sequence
	start int
	end   int
}

// NewNode creates a node over seq. A negative end means the last index of seq.
// Over an empty sequence the only valid node is the degenerate one, (0, -1).
func NewNode(seq *Sequence, start, end int) (Node, error) {
	n := seq.Len()
	if end < 0 {
		end = n - 1
	}

	if n == 0 && start == 0 && end == -1 {
		return Node{seq: seq, start: 0, end: -1}, nil
	}

	if start > end || start < 0 || end >= n {
		return Node{}, fmt.Errorf("%w: [%d : %d] over %d strings", ErrInvalidRange, start, end, n)
	}

	return Node{seq: seq, start: start, end: end}, nil
}

func (n Node) Start() int { return n.start }

func (n Node) End() int { return n.end }

// Size returns the number of pairs in the range.
func (n Node) Size() int { return n.end - n.start + 1 }

// Splittable reports whether the node holds at least two pairs.
func (n Node) Splittable() bool { return n.Size() >= 2 }

// Sequence returns the sequence the node ranges over.
func (n Node) Sequence() *Sequence { return n.seq }

// Split divides the node at the floor midpoint. For odd sizes the left half
// gets the extra element.
func (n Node) Split() (left, right Node, err error) {
	if !n.Splittable() {
		return Node{}, Node{}, fmt.Errorf("%w: [%d : %d]", ErrNotSplittable, n.start, n.end)
	}

	mid := (n.start + n.end) / 2

	return Node{seq: n.seq, start: n.start, end: mid}, Node{seq: n.seq, start: mid + 1, end: n.end}, nil
}

// Items iterates over the pairs of the range in sequence order.
func (n Node) Items() iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		for i := n.start; i <= n.end; i++ {
			if !yield(n.seq.At(i)) {
				return
			}
		}
	}
}

// SummaryLabel describes the span, e.g. "[0 : 9] (10 strings)".
func (n Node) SummaryLabel() string {
	switch size := n.Size(); {
	case size <= 0:
		return "[] (0 strings)"
	case size == 1:
		return fmt.Sprintf("[%d : %d] (1 string)", n.start, n.end)
	default:
		return fmt.Sprintf("[%d : %d] (%d strings)", n.start, n.end, size)
	}
}

// PreviewLabel renders the translations of the range compactly: a single
// string, both strings of a pair, or the first and the last string.
func (n Node) PreviewLabel() string {
	switch size := n.Size(); {
	case size <= 0:
		return "<empty>"
	case size == 1:
		return quote(n.seq.At(n.start).Translation)
	case size == 2:
		return quote(n.seq.At(n.start).Translation) + "," + quote(n.seq.At(n.end).Translation)
	default:
		return quote(n.seq.At(n.start).Translation) + " ... " + quote(n.seq.At(n.end).Translation)
	}
}

func (n Node) String() string {
	return fmt.Sprintf("Node(..., %d, %d)", n.start, n.end)
}
