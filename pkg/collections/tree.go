package collections

import (
	"iter"
)

type TreeProvider[T any] interface {
	Node() T
	Children() iter.Seq[TreeProvider[T]]
}

// Walk visits node and its descendants in preorder, passing each node's depth
// below node. Returning false from visit skips that node's children.
func Walk[T TreeProvider[T]](node T, visit func(node T, depth int) bool) {
	walk(node, 0, visit)
}

func walk[T TreeProvider[T]](node T, depth int, visit func(T, int) bool) {
	if !visit(node, depth) {
		return
	}
	for child := range node.Children() {
		walk(child.Node(), depth+1, visit)
	}
}

// CountNodes returns the number of nodes in the tree rooted at node.
func CountNodes[T TreeProvider[T]](node T) int {
	count := 0
	Walk(node, func(T, int) bool {
		count++
		return true
	})
	return count
}
