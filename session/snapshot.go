package session

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/zeebo/blake3"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/xishang0128/df-translate/bisect"
	"github.com/xishang0128/df-translate/compression"
)

// Span is an inclusive index range of the catalog.
type Span struct {
	Start, End int
}

// MarkedSpan is a span carrying a mark.
type MarkedSpan struct {
	Span
	Mark bisect.Mark
}

// Snapshot is the replayable state of a session.
type Snapshot struct {
	ID          string
	Source      string
	Length      int
	Fingerprint [32]byte

	// Splits are listed parent first, so replaying them in order always
	// finds the node to split among the leaves.
	Splits   []Span
	Marks    []MarkedSpan
	Selected []Span
}

// Snapshot field numbers.
const (
	fieldID protowire.Number = iota + 1
	fieldSource
	fieldLength
	fieldFingerprint
	fieldSplit
	fieldMark
	fieldSelected
)

// Span field numbers.
const (
	fieldStart protowire.Number = iota + 1
	fieldEnd
	fieldMarkValue
)

// Fingerprint hashes the pairs in order.
func Fingerprint(pairs []bisect.Pair) [32]byte {
	h := blake3.New()
	var buf []byte
	for _, p := range pairs {
		buf = protowire.AppendString(buf[:0], p.Original)
		buf = protowire.AppendString(buf, p.Translation)
		h.Write(buf)
	}

	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum
}

// Snapshot captures the tree shape, marks and selection.
func (s *Session) Snapshot() *Snapshot {
	snap := &Snapshot{
		ID:          s.ID(),
		Source:      s.source,
		Length:      len(s.pairs),
		Fingerprint: Fingerprint(s.pairs),
	}

	s.tree.Walk(func(id bisect.NodeID, _ int) bool {
		node, _ := s.tree.Node(id)
		span := Span{node.Start(), node.End()}
		if !s.tree.IsLeaf(id) {
			snap.Splits = append(snap.Splits, span)
		}
		if mark := s.tree.MarkOf(id); mark != bisect.MarkNone {
			snap.Marks = append(snap.Marks, MarkedSpan{span, mark})
		}
		return true
	})

	for _, id := range s.selected {
		node, _ := s.tree.Node(id)
		snap.Selected = append(snap.Selected, Span{node.Start(), node.End()})
	}

	return snap
}

// Restore rebuilds a session from snap over pairs, which must be the same
// catalog the snapshot was taken from.
func Restore(snap *Snapshot, pairs []bisect.Pair) (*Session, error) {
	if snap.Length != len(pairs) || snap.Fingerprint != Fingerprint(pairs) {
		return nil, fmt.Errorf("%w: %s", ErrSnapshotMismatch, snap.Source)
	}

	id, err := uuid.Parse(snap.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: session id: %v", ErrBadSnapshot, err)
	}

	s := &Session{
		id:     id,
		source: snap.Source,
		pairs:  pairs,
		tree:   bisect.NewTree(pairs),
	}

	for _, span := range snap.Splits {
		id, err := s.lookup(span)
		if err != nil {
			return nil, err
		}
		if _, _, ok := s.tree.SplitNode(id); !ok {
			return nil, fmt.Errorf("%w: cannot split [%d : %d]", ErrBadSnapshot, span.Start, span.End)
		}
	}

	for _, m := range snap.Marks {
		id, err := s.lookup(m.Span)
		if err != nil {
			return nil, err
		}
		s.tree.Mark([]bisect.NodeID{id}, m.Mark)
	}

	for _, span := range snap.Selected {
		id, err := s.lookup(span)
		if err != nil {
			return nil, err
		}
		s.selected = append(s.selected, id)
	}

	return s, nil
}

func (s *Session) lookup(span Span) (bisect.NodeID, error) {
	// NewNode reads a negative end as the last index.
	if span.Start < 0 || span.End < 0 {
		return bisect.NoParent, fmt.Errorf("%w: negative span [%d : %d]", ErrBadSnapshot, span.Start, span.End)
	}
	node, err := bisect.NewNode(s.tree.Sequence(), span.Start, span.End)
	if err != nil {
		return bisect.NoParent, fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}
	id, ok := s.tree.ID(node)
	if !ok {
		return bisect.NoParent, fmt.Errorf("%w: no node [%d : %d]", ErrBadSnapshot, span.Start, span.End)
	}
	return id, nil
}

// Save writes the session snapshot to w as an xz stream.
func (s *Session) Save(w io.Writer) error {
	codec, err := compression.Lookup(compression.TypeXZ)
	if err != nil {
		return err
	}

	data, err := codec.Compress(s.Snapshot().Marshal())
	if err != nil {
		return fmt.Errorf("compress snapshot: %w", err)
	}

	_, err = w.Write(data)
	return err
}

// Load reads a snapshot written by Save. Uncompressed snapshots are accepted too.
func Load(r io.Reader) (*Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	data, err = compression.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}

	return Unmarshal(data)
}

// Marshal encodes the snapshot in protobuf wire format.
func (snap *Snapshot) Marshal() []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldID, protowire.BytesType)
	b = protowire.AppendString(b, snap.ID)
	b = protowire.AppendTag(b, fieldSource, protowire.BytesType)
	b = protowire.AppendString(b, snap.Source)
	b = protowire.AppendTag(b, fieldLength, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(snap.Length))
	b = protowire.AppendTag(b, fieldFingerprint, protowire.BytesType)
	b = protowire.AppendBytes(b, snap.Fingerprint[:])

	for _, span := range snap.Splits {
		b = protowire.AppendTag(b, fieldSplit, protowire.BytesType)
		b = protowire.AppendBytes(b, appendSpan(nil, span))
	}
	for _, m := range snap.Marks {
		msg := appendSpan(nil, m.Span)
		msg = protowire.AppendTag(msg, fieldMarkValue, protowire.BytesType)
		msg = protowire.AppendString(msg, string(m.Mark))

		b = protowire.AppendTag(b, fieldMark, protowire.BytesType)
		b = protowire.AppendBytes(b, msg)
	}
	for _, span := range snap.Selected {
		b = protowire.AppendTag(b, fieldSelected, protowire.BytesType)
		b = protowire.AppendBytes(b, appendSpan(nil, span))
	}

	return b
}

func appendSpan(b []byte, span Span) []byte {
	b = protowire.AppendTag(b, fieldStart, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(span.Start))
	b = protowire.AppendTag(b, fieldEnd, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(span.End))
	return b
}

// Unmarshal decodes a snapshot encoded by Marshal. Unknown fields are skipped.
func Unmarshal(b []byte) (*Snapshot, error) {
	snap := &Snapshot{}

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, wireError(protowire.ParseError(n))
		}
		b = b[n:]

		switch {
		case num == fieldID && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return nil, wireError(protowire.ParseError(n))
			}
			snap.ID = v
			b = b[n:]

		case num == fieldSource && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return nil, wireError(protowire.ParseError(n))
			}
			snap.Source = v
			b = b[n:]

		case num == fieldLength && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, wireError(protowire.ParseError(n))
			}
			snap.Length = int(v)
			b = b[n:]

		case num == fieldFingerprint && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, wireError(protowire.ParseError(n))
			}
			if len(v) != len(snap.Fingerprint) {
				return nil, fmt.Errorf("%w: fingerprint of %d bytes", ErrBadSnapshot, len(v))
			}
			copy(snap.Fingerprint[:], v)
			b = b[n:]

		case (num == fieldSplit || num == fieldMark || num == fieldSelected) && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, wireError(protowire.ParseError(n))
			}
			m, err := consumeSpan(v)
			if err != nil {
				return nil, err
			}
			switch num {
			case fieldSplit:
				snap.Splits = append(snap.Splits, m.Span)
			case fieldMark:
				snap.Marks = append(snap.Marks, m)
			default:
				snap.Selected = append(snap.Selected, m.Span)
			}
			b = b[n:]

		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, wireError(protowire.ParseError(n))
			}
			b = b[n:]
		}
	}

	return snap, nil
}

func consumeSpan(b []byte) (MarkedSpan, error) {
	var m MarkedSpan

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return m, wireError(protowire.ParseError(n))
		}
		b = b[n:]

		switch {
		case (num == fieldStart || num == fieldEnd) && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return m, wireError(protowire.ParseError(n))
			}
			if num == fieldStart {
				m.Start = int(v)
			} else {
				m.End = int(v)
			}
			b = b[n:]

		case num == fieldMarkValue && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return m, wireError(protowire.ParseError(n))
			}
			m.Mark = bisect.Mark(v)
			b = b[n:]

		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return m, wireError(protowire.ParseError(n))
			}
			b = b[n:]
		}
	}

	return m, nil
}

func wireError(err error) error {
	return fmt.Errorf("%w: %v", ErrBadSnapshot, err)
}
