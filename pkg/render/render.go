// Package render turns an ntree node graph into human-readable text. Renderers
// only read the graph.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/xlab/treeprint"

	"github.com/mholzen/ntree/pkg/collections"
	"github.com/mholzen/ntree/pkg/ntree"
)

// TreePrint draws root and its descendants with box-drawing branches.
func TreePrint(root *ntree.Node) string {
	if root == nil {
		return ""
	}
	tree := treeprint.NewWithRoot(root.String())
	addBranches(tree, root)
	return tree.String()
}

func addBranches(tree treeprint.Tree, node *ntree.Node) {
	for i := 0; i < node.Size(); i++ {
		child := node.GetChild(i)
		if child.Size() == 0 {
			tree.AddNode(child.String())
			continue
		}
		addBranches(tree.AddBranch(child.String()), child)
	}
}

// Dump writes one "|-value" line per node, indented by depth.
func Dump(w io.Writer, root *ntree.Node) error {
	if root == nil {
		return nil
	}
	var err error
	collections.Walk(root, func(node *ntree.Node, depth int) bool {
		_, err = fmt.Fprintf(w, "%s  |-%d\n", strings.Repeat(" ", depth), node.Value())
		return err == nil
	})
	return err
}

type StringTree[T any] interface {
	collections.TreeProvider[T]
	fmt.Stringer
}

// NestedList renders a markdown bulleted list, one nesting level per tree level.
func NestedList[T StringTree[T]](root T) string {
	var lines []string
	collections.Walk(root, func(node T, depth int) bool {
		lines = append(lines, strings.Repeat("  ", depth)+"- "+node.String())
		return true
	})
	return strings.Join(lines, "\n")
}
