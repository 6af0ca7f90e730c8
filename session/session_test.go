package session

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xishang0128/df-translate/bisect"
)

func catalogPairs(n int) []bisect.Pair {
	pairs := make([]bisect.Pair, n)
	for i := range pairs {
		pairs[i] = bisect.Pair{
			Original:    fmt.Sprintf("string %d", i),
			Translation: fmt.Sprintf("строка %d", i),
		}
	}
	return pairs
}

func TestNewSession(t *testing.T) {
	s := New("ru.po", catalogPairs(10))

	assert.Equal(t, "ru.po", s.Source())
	assert.NotEmpty(t, s.ID())
	assert.Empty(t, s.Selected())

	_, ok := s.SelectedLeaf()
	assert.False(t, ok)

	all, err := s.Filtered()
	require.NoError(t, err)
	assert.Equal(t, catalogPairs(10), all)
}

func TestSplitSelectedMovesToLeft(t *testing.T) {
	s := New("ru.po", catalogPairs(10))
	root, _ := s.Tree().Root()
	require.NoError(t, s.Select(root))

	left, right, ok := s.SplitSelected()
	require.True(t, ok)
	assert.Equal(t, []bisect.NodeID{left}, s.Selected())

	leaf, ok := s.SelectedLeaf()
	require.True(t, ok)
	assert.Equal(t, left, leaf)

	got, err := s.Filtered()
	require.NoError(t, err)
	assert.Equal(t, catalogPairs(10)[:5], got)

	require.NoError(t, s.Select(root))
	_, _, ok = s.SplitSelected()
	assert.False(t, ok, "the root is no longer a leaf")
	assert.Equal(t, []bisect.NodeID{root}, s.Selected())
	assert.Equal(t, []bisect.NodeID{left, right}, s.Tree().Leaves())
}

func TestSplitSelectedUntilSingleString(t *testing.T) {
	s := New("ru.po", catalogPairs(9))
	root, _ := s.Tree().Root()
	require.NoError(t, s.Select(root))

	splits := 0
	for {
		if _, _, ok := s.SplitSelected(); !ok {
			break
		}
		splits++
	}

	got, err := s.Filtered()
	require.NoError(t, err)
	assert.Equal(t, catalogPairs(9)[:1], got)
	assert.Equal(t, 4, splits)
}

func TestSelectUnknown(t *testing.T) {
	s := New("ru.po", catalogPairs(4))
	root, _ := s.Tree().Root()
	require.NoError(t, s.Select(root))

	err := s.Select(root, 77)
	assert.ErrorIs(t, err, bisect.ErrUnknownNode)
	assert.Equal(t, []bisect.NodeID{root}, s.Selected(), "selection kept on error")
}

func TestMarkSelected(t *testing.T) {
	s := New("ru.po", catalogPairs(4))
	root, _ := s.Tree().Root()
	left, right, _ := s.Tree().SplitNode(root)

	require.NoError(t, s.Select(left, right))
	s.MarkSelected(bisect.MarkBad)
	assert.Equal(t, bisect.MarkBad, s.Tree().MarkOf(left))
	assert.Equal(t, bisect.MarkBad, s.Tree().MarkOf(right))

	require.NoError(t, s.Select(right))
	s.MarkSelected(bisect.MarkNone)
	assert.Equal(t, bisect.MarkNone, s.Tree().MarkOf(right))
	assert.Equal(t, bisect.MarkBad, s.Tree().MarkOf(left))
}

func TestReset(t *testing.T) {
	s := New("ru.po", catalogPairs(6))
	root, _ := s.Tree().Root()
	require.NoError(t, s.Select(root))
	left, _, _ := s.SplitSelected()
	s.MarkSelected(bisect.MarkGood)

	s.Reset(catalogPairs(3))

	assert.Empty(t, s.Selected())
	assert.Equal(t, 1, s.Tree().Len())
	assert.Equal(t, bisect.MarkNone, s.Tree().MarkOf(left))

	got, err := s.Filtered()
	require.NoError(t, err)
	assert.Equal(t, catalogPairs(3), got)
}
