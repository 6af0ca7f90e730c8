package treeview

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xishang0128/df-translate/bisect"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func letters(n int) []bisect.Pair {
	pairs := make([]bisect.Pair, n)
	for i := range pairs {
		s := string(rune('a' + i))
		pairs[i] = bisect.Pair{Original: s, Translation: strings.ToUpper(s)}
	}
	return pairs
}

func TestRender(t *testing.T) {
	tree := bisect.NewTree(letters(5))
	root, _ := tree.Root()
	left, right, _ := tree.SplitNode(root)
	tree.Mark([]bisect.NodeID{right}, bisect.MarkGood)
	tree.Mark([]bisect.NodeID{left}, bisect.MarkBad)

	out := Render(tree, Options{Selected: []bisect.NodeID{left}, Preview: true, Style: list.StyleBulletCircle})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "#1 [0 : 4] (5 strings) 'A' ... 'E'")
	assert.Contains(t, lines[1], "▶ #2 [0 : 2] (3 strings) 'A' ... 'C' [bad]")
	assert.Contains(t, lines[2], "#3 [3 : 4] (2 strings) 'D','E' [good]")
	assert.NotContains(t, lines[2], "▶")

	assert.Greater(t, strings.Index(lines[1], "#2"), strings.Index(lines[0], "#1"), "children are indented")
}

func TestRenderDeepThenShallow(t *testing.T) {
	tree := bisect.NewTree(letters(8))
	root, _ := tree.Root()
	left, right, _ := tree.SplitNode(root)
	tree.SplitNode(left)

	out := Render(tree, Options{})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)

	indent := func(line string) int { return strings.Index(line, "#") }
	assert.Equal(t, indent(lines[1]), indent(lines[4]), "right child back at depth 1")
	assert.Contains(t, lines[4], fmt.Sprintf("#%d ", right))
}

func TestRenderEmpty(t *testing.T) {
	assert.Empty(t, Render(bisect.NewTree(nil), Options{}))
}

func TestChoices(t *testing.T) {
	tree := bisect.NewTree(letters(4))
	root, _ := tree.Root()
	left, right, _ := tree.SplitNode(root)
	tree.Mark([]bisect.NodeID{right}, "maybe")

	choices := Choices(tree, false)
	require.Len(t, choices, 3)

	assert.Equal(t, Choice{ID: root, Label: "#1 [0 : 3] (4 strings)"}, choices[0])
	assert.Equal(t, Choice{ID: left, Label: "  #2 [0 : 1] (2 strings)"}, choices[1])
	assert.Equal(t, Choice{ID: right, Label: "  #3 [2 : 3] (2 strings) [maybe]"}, choices[2])
}

func TestMarkTag(t *testing.T) {
	assert.Empty(t, MarkTag(bisect.MarkNone))
	assert.Equal(t, "[bad]", MarkTag(bisect.MarkBad))
	assert.Equal(t, "[good]", MarkTag(bisect.MarkGood))
}
