package session

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/xishang0128/df-translate/bisect"
)

// bisected returns a session with a few splits, marks and a selection.
func bisected(t *testing.T) *Session {
	t.Helper()

	s := New("translations/ru.po", catalogPairs(20))
	root, _ := s.Tree().Root()
	require.NoError(t, s.Select(root))

	left, right, ok := s.SplitSelected()
	require.True(t, ok)
	s.MarkSelected(bisect.MarkBad)

	_, _, ok = s.SplitSelected()
	require.True(t, ok)

	require.NoError(t, s.Select(right))
	s.MarkSelected(bisect.MarkGood)
	_, rr, ok := s.SplitSelected()
	require.True(t, ok)

	require.NoError(t, s.Select(rr, left))
	s.Tree().Mark([]bisect.NodeID{rr}, "suspicious")

	return s
}

// shape lists every node with its depth and mark in pre-order.
func shape(s *Session) []string {
	var out []string
	tree := s.Tree()
	tree.Walk(func(id bisect.NodeID, depth int) bool {
		node, _ := tree.Node(id)
		out = append(out, fmt.Sprintf("%d %s %s", depth, node.SummaryLabel(), tree.MarkOf(id)))
		return true
	})
	return out
}

func selectedSpans(s *Session) []Span {
	var spans []Span
	for _, id := range s.Selected() {
		node, _ := s.Tree().Node(id)
		spans = append(spans, Span{node.Start(), node.End()})
	}
	return spans
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := bisected(t)

	var buf bytes.Buffer
	require.NoError(t, s.Save(&buf))

	snap, err := Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, s.ID(), snap.ID)
	assert.Equal(t, "translations/ru.po", snap.Source)
	assert.Equal(t, 20, snap.Length)

	restored, err := Restore(snap, catalogPairs(20))
	require.NoError(t, err)

	assert.Equal(t, s.ID(), restored.ID())
	assert.Equal(t, shape(s), shape(restored))
	assert.Equal(t, selectedSpans(s), selectedSpans(restored))

	want, err := s.Filtered()
	require.NoError(t, err)
	got, err := restored.Filtered()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSnapshotMarshalRoundTrip(t *testing.T) {
	snap := bisected(t).Snapshot()

	decoded, err := Unmarshal(snap.Marshal())
	require.NoError(t, err)
	assert.Equal(t, snap, decoded)
}

func TestLoadUncompressed(t *testing.T) {
	snap := bisected(t).Snapshot()

	loaded, err := Load(bytes.NewReader(snap.Marshal()))
	require.NoError(t, err)
	assert.Equal(t, snap, loaded)
}

func TestRestoreMismatch(t *testing.T) {
	snap := bisected(t).Snapshot()

	tests := []struct {
		name  string
		pairs []bisect.Pair
	}{
		{"shorter", catalogPairs(19)},
		{"longer", catalogPairs(21)},
		{"edited", func() []bisect.Pair {
			p := catalogPairs(20)
			p[7].Translation = "другая строка"
			return p
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Restore(snap, tt.pairs)
			assert.ErrorIs(t, err, ErrSnapshotMismatch)
		})
	}
}

func TestRestoreBadSpans(t *testing.T) {
	pairs := catalogPairs(8)
	base := New("ru.po", pairs).Snapshot()

	tests := []struct {
		name   string
		mutate func(*Snapshot)
	}{
		{"split of unknown range", func(s *Snapshot) { s.Splits = []Span{{2, 5}} }},
		{"split twice", func(s *Snapshot) { s.Splits = []Span{{0, 7}, {0, 7}} }},
		{"mark out of range", func(s *Snapshot) { s.Marks = []MarkedSpan{{Span{0, 12}, bisect.MarkBad}} }},
		{"selection of unknown range", func(s *Snapshot) { s.Selected = []Span{{0, 3}} }},
		{"negative selection", func(s *Snapshot) { s.Selected = []Span{{0, -1}} }},
		{"negative start", func(s *Snapshot) { s.Marks = []MarkedSpan{{Span{-3, 7}, bisect.MarkGood}} }},
		{"negative split", func(s *Snapshot) { s.Splits = []Span{{0, -1}} }},
		{"bad id", func(s *Snapshot) { s.ID = "not-a-uuid" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := *base
			tt.mutate(&snap)
			_, err := Restore(&snap, pairs)
			assert.ErrorIs(t, err, ErrBadSnapshot)
		})
	}
}

func TestUnmarshalMalformed(t *testing.T) {
	valid := bisected(t).Snapshot().Marshal()

	tests := []struct {
		name string
		data []byte
	}{
		{"truncated", valid[:len(valid)-1]},
		{"bad tag", []byte{0xff}},
		{"short fingerprint", protowire.AppendBytes(
			protowire.AppendTag(nil, fieldFingerprint, protowire.BytesType), []byte{1, 2, 3})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal(tt.data)
			assert.ErrorIs(t, err, ErrBadSnapshot)
		})
	}
}

func TestUnmarshalSkipsUnknownFields(t *testing.T) {
	snap := bisected(t).Snapshot()

	data := protowire.AppendTag(nil, 99, protowire.VarintType)
	data = protowire.AppendVarint(data, 12345)
	data = append(data, snap.Marshal()...)

	decoded, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, snap, decoded)
}

func TestEmptySessionSnapshot(t *testing.T) {
	s := New("empty.po", nil)

	var buf bytes.Buffer
	require.NoError(t, s.Save(&buf))

	snap, err := Load(&buf)
	require.NoError(t, err)

	restored, err := Restore(snap, nil)
	require.NoError(t, err)
	_, ok := restored.Tree().Root()
	assert.False(t, ok)
}

func TestFingerprintBoundaries(t *testing.T) {
	a := []bisect.Pair{{Original: "ab", Translation: "c"}}
	b := []bisect.Pair{{Original: "a", Translation: "bc"}}

	assert.NotEqual(t, Fingerprint(a), Fingerprint(b))
	assert.Equal(t, Fingerprint(a), Fingerprint([]bisect.Pair{{Original: "ab", Translation: "c"}}))
}
