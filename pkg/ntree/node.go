// Package ntree provides a mutable N-ary tree of integer values with parent
// back-references, preorder/postorder snapshot iteration, and a Tree that fills
// nodes up to two children and deletes by splicing in the last node.
package ntree

import (
	"iter"
	"strconv"

	"github.com/mholzen/ntree/pkg/collections"
)

// Node is a tree node. A node owns its children; the parent reference is only
// used for navigation. childCount always equals len(children).
type Node struct {
	value      int
	childCount int
	children   []*Node
	parent     *Node
}

func NewNode(value int) *Node {
	return &Node{value: value}
}

func (n *Node) Value() int {
	return n.value
}

// Parent returns the node holding n as a child, or nil for a root or detached node.
func (n *Node) Parent() *Node {
	return n.parent
}

// Size returns the number of children.
func (n *Node) Size() int {
	return n.childCount
}

// AddChild appends child and makes n its parent. Raw nodes accept any number of children.
func (n *Node) AddChild(child *Node) {
	n.children = append(n.children, child)
	child.parent = n
	n.childCount++
}

// GetChild returns the child at index without removing it, or nil when out of range.
func (n *Node) GetChild(index int) *Node {
	if index < 0 || index >= n.childCount {
		return nil
	}
	return n.children[index]
}

// DeleteChild removes and returns the child at index, shifting later children
// down. It returns nil and leaves n unchanged when index is out of range.
func (n *Node) DeleteChild(index int) *Node {
	if index < 0 || index >= n.childCount {
		return nil
	}
	deleted := n.children[index]
	copy(n.children[index:], n.children[index+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	n.childCount--
	deleted.parent = nil
	return deleted
}

// DeleteChildByValue removes and returns the first child holding value.
func (n *Node) DeleteChildByValue(value int) *Node {
	for i, child := range n.children {
		if child.value == value {
			return n.DeleteChild(i)
		}
	}
	return nil
}

// ReplaceChildren puts replacement in the slot of the first child whose value
// equals old's value. The order of the other children is unchanged.
func (n *Node) ReplaceChildren(old, replacement *Node) {
	index := -1
	for i, child := range n.children {
		if child.value == old.value {
			index = i
			break
		}
	}
	if index < 0 {
		return
	}
	n.swapInto(index, replacement)
}

// IndexOf returns the position of child among n's children, comparing by
// identity, or -1.
func (n *Node) IndexOf(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// RemoveChild detaches the exact child instance. It reports whether child was found.
func (n *Node) RemoveChild(child *Node) bool {
	index := n.IndexOf(child)
	if index < 0 {
		return false
	}
	n.DeleteChild(index)
	return true
}

// ReplaceChild puts replacement in the slot held by the exact old instance.
func (n *Node) ReplaceChild(old, replacement *Node) bool {
	index := n.IndexOf(old)
	if index < 0 {
		return false
	}
	n.swapInto(index, replacement)
	return true
}

// swapInto appends replacement, swaps it into index, then drops the trailing
// slot now holding the replaced child.
func (n *Node) swapInto(index int, replacement *Node) {
	if n.children[index] == replacement {
		return
	}
	n.AddChild(replacement)
	last := n.childCount - 1
	n.children[index], n.children[last] = n.children[last], n.children[index]
	n.DeleteChild(last)
}

// takeChildren moves every child of from onto n, in order.
func (n *Node) takeChildren(from *Node) {
	for _, child := range from.children {
		n.AddChild(child)
	}
	from.children = nil
	from.childCount = 0
}

func (n *Node) Node() *Node {
	return n
}

func (n *Node) Children() iter.Seq[collections.TreeProvider[*Node]] {
	return iter.Seq[collections.TreeProvider[*Node]](func(yield func(collections.TreeProvider[*Node]) bool) {
		for _, child := range n.children {
			if !yield(child) {
				break
			}
		}
	})
}

func (n *Node) String() string {
	return strconv.Itoa(n.value)
}

// Depth returns the number of edges between n and its root.
func (n *Node) Depth() int {
	depth := 0
	for p := n.parent; p != nil; p = p.parent {
		depth++
	}
	return depth
}

// Height returns the number of nodes on the longest downward path from n; a leaf has height 1.
func (n *Node) Height() int {
	height := 0
	for _, child := range n.children {
		height = max(height, child.Height())
	}
	return height + 1
}

// Count returns the number of nodes in the subtree rooted at n, including n.
func (n *Node) Count() int {
	return collections.CountNodes(n)
}

// Iter returns a snapshot iterator over n and its descendants.
func (n *Node) Iter(order Order) *NodeIterator {
	return NewNodeIterator(n, order)
}
