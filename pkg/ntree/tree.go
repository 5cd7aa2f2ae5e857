package ntree

import (
	"fmt"
	"log/slog"
)

// maxChildren is the number of children a Tree fills a node with before
// moving on to the next one.
const maxChildren = 2

// Tree places values so that nodes fill up to two children, closest to the
// root first, and deletes by moving the last node in preorder into the
// deleted node's slot.
type Tree struct {
	root *Node
}

func NewTree() *Tree {
	return &Tree{}
}

// Root returns the root node, or nil when the tree is empty.
func (t *Tree) Root() *Node {
	return t.root
}

func (t *Tree) IsEmpty() bool {
	return t.root == nil
}

// Len returns the number of nodes reachable from the root.
func (t *Tree) Len() int {
	if t.root == nil {
		return 0
	}
	return t.root.Count()
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree) Height() int {
	if t.root == nil {
		return 0
	}
	return t.root.Height()
}

// Add inserts value at the first available node. The first value becomes the root.
func (t *Tree) Add(value int) error {
	node := NewNode(value)
	if t.root == nil {
		t.root = node
		slog.Debug("added root", "value", value)
		return nil
	}

	parent := findFirstAvailable(t.root)
	if parent == nil {
		return fmt.Errorf("cannot add %d: %w", value, ErrNoAvailableNode)
	}
	parent.AddChild(node)
	slog.Debug("added node", "value", value, "parent", parent.value)
	return nil
}

// findFirstAvailable checks node, then its direct children, then recurses into
// each direct child in order.
func findFirstAvailable(node *Node) *Node {
	if node.Size() < maxChildren {
		return node
	}
	for _, child := range node.children {
		if child.Size() < maxChildren {
			return child
		}
	}
	for _, child := range node.children {
		if found := findFirstAvailable(child); found != nil {
			return found
		}
	}
	return nil
}

// Find returns the first node in preorder holding value, or nil.
func (t *Tree) Find(value int) *Node {
	it := t.Iter(Preorder)
	return it.ElementAt(it.PositionOf(value))
}

func (t *Tree) Contains(value int) bool {
	return t.Find(value) != nil
}

// Delete removes the first node in preorder holding value. The last node in
// preorder takes the removed node's slot and children. It reports whether a
// node was removed.
func (t *Tree) Delete(value int) bool {
	if t.root == nil {
		return false
	}

	it := t.Iter(Preorder)
	if it.Len() == 0 {
		return false
	}
	position := it.PositionOf(value)
	if position < 0 {
		return false
	}
	target := it.ElementAt(position)
	// the last node in preorder never has children
	last := it.Last()

	if p := last.parent; p != nil {
		p.RemoveChild(last)
	}

	if target == last {
		if target == t.root {
			t.root = nil
		}
		slog.Debug("deleted leaf", "value", value)
		return true
	}

	newParent := target.parent
	if newParent != nil {
		newParent.ReplaceChild(target, last)
	} else {
		t.root = last
	}
	last.takeChildren(target)

	slog.Debug("deleted node", "value", value, "replacement", last.value)
	return true
}

// Iter returns a snapshot iterator over the whole tree.
func (t *Tree) Iter(order Order) *NodeIterator {
	return NewNodeIterator(t.root, order)
}

// Values returns the tree's values in order.
func (t *Tree) Values(order Order) []int {
	return t.Iter(order).Values()
}

// Validate checks the node graph invariants and the two-children cap.
func (t *Tree) Validate() error {
	if t.root == nil {
		return nil
	}
	if err := Validate(t.root); err != nil {
		return err
	}
	for node := range t.Iter(Preorder).All() {
		if node.Size() > maxChildren {
			return fmt.Errorf("node %d holds %d children: %w", node.value, node.Size(), ErrCapacityExceeded)
		}
	}
	return nil
}
