package ntree

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/mholzen/ntree/pkg/collections"
)

type Order int

const (
	// Preorder visits a node, then each child subtree left to right (NLR).
	Preorder Order = iota
	// Postorder visits each child subtree left to right, then the node (LRN).
	Postorder
)

func (o Order) String() string {
	switch o {
	case Preorder:
		return "preorder"
	case Postorder:
		return "postorder"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "preorder", "pre", "nlr":
		return Preorder, nil
	case "postorder", "post", "lrn":
		return Postorder, nil
	}
	return 0, fmt.Errorf("order must be 'preorder' or 'postorder', got %q", s)
}

// NodeIterator yields the nodes of a tree in a fixed order. The whole route is
// computed when the iterator is created, so later changes to the tree are not
// observed. Positions are measured from the next node Next would return.
type NodeIterator struct {
	order  Order
	routes collections.Stack[*Node]
}

// NewNodeIterator walks root and its descendants once. A nil root gives an
// empty iterator.
func NewNodeIterator(root *Node, order Order) *NodeIterator {
	it := &NodeIterator{order: order}
	if root == nil {
		return it
	}
	route := findRoute(root, order, nil)
	slices.Reverse(route)
	it.routes = collections.Stack[*Node]{Items: route}
	return it
}

func findRoute(node *Node, order Order, route []*Node) []*Node {
	if order == Preorder {
		route = append(route, node)
	}
	for _, child := range node.children {
		route = findRoute(child, order, route)
	}
	if order == Postorder {
		route = append(route, node)
	}
	return route
}

func (it *NodeIterator) Order() Order {
	return it.order
}

// Next returns the next node, or nil once the sequence is exhausted.
func (it *NodeIterator) Next() *Node {
	node, _ := it.routes.Pop()
	return node
}

// Len returns the number of nodes not yet returned by Next.
func (it *NodeIterator) Len() int {
	return it.routes.Len()
}

// First returns the node Next would return, without consuming it.
func (it *NodeIterator) First() *Node {
	node, _ := it.routes.Top()
	return node
}

// PositionOf returns the position of the first remaining node holding value, or -1.
func (it *NodeIterator) PositionOf(value int) int {
	for i := 0; i < it.routes.Len(); i++ {
		node, _ := it.routes.FromTop(i)
		if node.value == value {
			return i
		}
	}
	return -1
}

// ElementAt returns the node at position, or nil when out of range.
func (it *NodeIterator) ElementAt(position int) *Node {
	node, _ := it.routes.FromTop(position)
	return node
}

// Last returns the final node of the remaining sequence.
func (it *NodeIterator) Last() *Node {
	return it.ElementAt(it.Len() - 1)
}

// All drains the iterator.
func (it *NodeIterator) All() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for node := it.Next(); node != nil; node = it.Next() {
			if !yield(node) {
				return
			}
		}
	}
}

// Values drains the iterator and returns the values in order.
func (it *NodeIterator) Values() []int {
	values := make([]int, 0, it.Len())
	for node := range it.All() {
		values = append(values, node.value)
	}
	return values
}
