// Package treeview renders a bisection tree as text.
package treeview

import (
	"fmt"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/list"

	"github.com/xishang0128/df-translate/bisect"
)

// Options controls what each rendered node shows.
type Options struct {
	// Selected nodes are prefixed with a marker.
	Selected []bisect.NodeID
	// Preview appends the first and last translation of the node.
	Preview bool
	Style   list.Style
}

var (
	badColor   = color.New(color.FgRed, color.Bold)
	goodColor  = color.New(color.FgGreen)
	otherColor = color.New(color.FgYellow)
	selColor   = color.New(color.FgCyan, color.Bold)
)

// MarkTag returns the colored tag of mark, or "" when unmarked.
func MarkTag(mark bisect.Mark) string {
	switch mark {
	case bisect.MarkNone:
		return ""
	case bisect.MarkBad:
		return badColor.Sprintf("[%s]", mark)
	case bisect.MarkGood:
		return goodColor.Sprintf("[%s]", mark)
	default:
		return otherColor.Sprintf("[%s]", mark)
	}
}

// Label describes node id in one line.
func Label(tree *bisect.Tree, id bisect.NodeID, preview bool) string {
	node, ok := tree.Node(id)
	if !ok {
		return fmt.Sprintf("#%d ?", id)
	}

	parts := []string{fmt.Sprintf("#%d", id), node.SummaryLabel()}
	if preview {
		parts = append(parts, node.PreviewLabel())
	}
	if tag := MarkTag(tree.MarkOf(id)); tag != "" {
		parts = append(parts, tag)
	}
	return strings.Join(parts, " ")
}

// Render draws the tree as a connected list, left child first. An empty tree
// renders as "".
func Render(tree *bisect.Tree, opts Options) string {
	l := list.NewWriter()
	if opts.Style.Name != "" {
		l.SetStyle(opts.Style)
	} else {
		l.SetStyle(list.StyleConnectedRounded)
	}

	level := 0
	tree.Walk(func(id bisect.NodeID, depth int) bool {
		for ; level < depth; level++ {
			l.Indent()
		}
		for ; level > depth; level-- {
			l.UnIndent()
		}

		label := Label(tree, id, opts.Preview)
		if slices.Contains(opts.Selected, id) {
			label = selColor.Sprint("▶ ") + label
		}
		l.AppendItem(label)
		return true
	})

	if l.Length() == 0 {
		return ""
	}
	return l.Render()
}

// Choice is one selectable line of an indented node listing.
type Choice struct {
	ID    bisect.NodeID
	Label string
}

// Choices lists every node in pre-order, indented by depth, for prompts.
func Choices(tree *bisect.Tree, preview bool) []Choice {
	var choices []Choice
	tree.Walk(func(id bisect.NodeID, depth int) bool {
		choices = append(choices, Choice{
			ID:    id,
			Label: strings.Repeat("  ", depth) + Label(tree, id, preview),
		})
		return true
	})
	return choices
}
