package bisect

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// identityPairs maps every text to itself.
func identityPairs(texts ...string) []Pair {
	pairs := make([]Pair, len(texts))
	for i, s := range texts {
		pairs[i] = Pair{Original: s, Translation: s}
	}
	return pairs
}

// randomPairs builds n pairs with unique originals.
func randomPairs(rng *rand.Rand, n int) []Pair {
	pairs := make([]Pair, n)
	for i := range pairs {
		pairs[i] = Pair{
			Original:    fmt.Sprintf("orig-%d-%d", i, rng.Intn(1000)),
			Translation: fmt.Sprintf("tr-%d", rng.Intn(1000)),
		}
	}
	return pairs
}

func TestNewNodeDefaults(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for n := 1; n <= 64; n++ {
		seq := NewSequence(randomPairs(rng, n))

		node, err := NewNode(seq, 0, -1)
		require.NoError(t, err)

		assert.Equal(t, 0, node.Start())
		assert.Equal(t, n-1, node.End())
		assert.Equal(t, n, node.Size())
		assert.Equal(t, n >= 2, node.Splittable())
	}
}

func TestNewNodeInvalidRange(t *testing.T) {
	seq := NewSequence(identityPairs("a", "b", "c"))

	tests := []struct {
		name       string
		start, end int
	}{
		{"reversed", 2, 1},
		{"negative start", -1, 1},
		{"end past sequence", 0, 3},
		{"start past sequence", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewNode(seq, tt.start, tt.end)
			assert.ErrorIs(t, err, ErrInvalidRange)
		})
	}

	_, err := NewNode(NewSequence(nil), 0, 0)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestEmptySequenceNode(t *testing.T) {
	node, err := NewNode(NewSequence(nil), 0, -1)
	require.NoError(t, err)

	assert.Equal(t, 0, node.Size())
	assert.False(t, node.Splittable())
	assert.Equal(t, "[] (0 strings)", node.SummaryLabel())
	assert.Equal(t, "<empty>", node.PreviewLabel())
	assert.Empty(t, slices.Collect(node.Items()))

	_, _, err = node.Split()
	assert.ErrorIs(t, err, ErrNotSplittable)
}

func TestSplitLaws(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for n := 0; n <= 100; n++ {
		pairs := randomPairs(rng, n)
		seq := NewSequence(pairs)
		node, err := NewNode(seq, 0, -1)
		require.NoError(t, err)

		left, right, err := node.Split()
		if n < 2 {
			assert.ErrorIs(t, err, ErrNotSplittable, "size %d", n)
			continue
		}
		require.NoError(t, err)

		if n%2 == 0 {
			assert.Equal(t, n/2, left.Size())
			assert.Equal(t, n/2, right.Size())
		} else {
			assert.Equal(t, n/2+1, left.Size(), "left child takes the extra element")
			assert.Equal(t, n/2, right.Size())
		}

		assert.Equal(t, n, left.Size()+right.Size())
		assert.Equal(t, node.Start(), left.Start())
		assert.Equal(t, node.End(), right.End())
		assert.Equal(t, left.End()+1, right.Start())

		joined := append(slices.Collect(left.Items()), slices.Collect(right.Items())...)
		assert.Equal(t, pairs, joined)
	}
}

func TestSplitSubrange(t *testing.T) {
	seq := NewSequence(identityPairs("a", "b", "c", "d", "e", "f", "g", "h", "i", "j"))
	node, err := NewNode(seq, 3, 7)
	require.NoError(t, err)

	left, right, err := node.Split()
	require.NoError(t, err)

	assert.Equal(t, [2]int{3, 5}, [2]int{left.Start(), left.End()})
	assert.Equal(t, [2]int{6, 7}, [2]int{right.Start(), right.End()})
	assert.Equal(t, [2]int{3, 7}, [2]int{node.Start(), node.End()}, "split must not modify the node")
}

func TestSplitSingleString(t *testing.T) {
	seq := NewSequence(identityPairs("a", "b"))
	node, err := NewNode(seq, 1, 1)
	require.NoError(t, err)

	_, _, err = node.Split()
	assert.ErrorIs(t, err, ErrNotSplittable)
}

func TestItemsRestartable(t *testing.T) {
	seq := NewSequence(identityPairs("a", "b", "c", "d"))
	node, err := NewNode(seq, 1, 2)
	require.NoError(t, err)

	first := slices.Collect(node.Items())
	second := slices.Collect(node.Items())

	assert.Equal(t, identityPairs("b", "c"), first)
	assert.Equal(t, first, second)

	for p := range node.Items() {
		assert.Equal(t, "b", p.Original)
		break
	}
}

func TestSummaryLabel(t *testing.T) {
	seq := NewSequence(identityPairs("a", "b", "c", "d", "e"))

	tests := []struct {
		start, end int
		want       string
	}{
		{0, 0, "[0 : 0] (1 string)"},
		{0, 1, "[0 : 1] (2 strings)"},
		{1, 4, "[1 : 4] (4 strings)"},
	}

	for _, tt := range tests {
		node, err := NewNode(seq, tt.start, tt.end)
		require.NoError(t, err)
		assert.Equal(t, tt.want, node.SummaryLabel())
	}
}

func TestPreviewLabel(t *testing.T) {
	seq := NewSequence(identityPairs("a", "b", "c", "d", "e"))

	tests := []struct {
		name       string
		start, end int
		want       string
	}{
		{"single", 2, 2, "'c'"},
		{"pair", 0, 1, "'a','b'"},
		{"three", 0, 2, "'a' ... 'c'"},
		{"whole", 0, 4, "'a' ... 'e'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := NewNode(seq, tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, node.PreviewLabel())
		})
	}
}

func TestPreviewLabelShowsTranslation(t *testing.T) {
	seq := NewSequence([]Pair{{Original: "Dwarf", Translation: "Дварф"}})
	node, err := NewNode(seq, 0, -1)
	require.NoError(t, err)

	assert.Equal(t, "'Дварф'", node.PreviewLabel())
}

func TestNodeEquality(t *testing.T) {
	pairs := identityPairs("a", "b", "c")
	seq := NewSequence(pairs)
	other := NewSequence(pairs)

	a, _ := NewNode(seq, 0, 1)
	b, _ := NewNode(seq, 0, 1)
	c, _ := NewNode(other, 0, 1)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c, "nodes over different sequences differ")

	keys := map[Node]int{a: 1}
	assert.Equal(t, 1, keys[b])
	_, found := keys[c]
	assert.False(t, found)
}
