package ntree

import "fmt"

// Validate walks the graph below root and returns the first broken invariant:
// a parent reference that does not point at the holding node, a child count out
// of step with the children held, or a node reachable more than once.
func Validate(root *Node) error {
	if root == nil {
		return nil
	}
	if root.parent != nil {
		return fmt.Errorf("node %d: %w", root.value, ErrRootHasParent)
	}
	visited := make(map[*Node]struct{})
	return validate(root, visited)
}

func validate(node *Node, visited map[*Node]struct{}) error {
	if _, ok := visited[node]; ok {
		return fmt.Errorf("node %d: %w", node.value, ErrCycle)
	}
	visited[node] = struct{}{}

	if node.childCount != len(node.children) {
		return fmt.Errorf("node %d counts %d children but holds %d: %w", node.value, node.childCount, len(node.children), ErrChildCountMismatch)
	}
	for _, child := range node.children {
		if child.parent != node {
			return fmt.Errorf("child %d of node %d: %w", child.value, node.value, ErrParentMismatch)
		}
		if err := validate(child, visited); err != nil {
			return err
		}
	}
	return nil
}
