package ntree

import "errors"

// Insertion errors
var (
	// ErrNoAvailableNode indicates that Tree.Add found no node holding fewer than
	// two children in a populated tree.
	ErrNoAvailableNode = errors.New("no available node for insertion")
)

// Validation errors
var (
	// ErrParentMismatch indicates a child whose parent is not the node holding it.
	ErrParentMismatch = errors.New("parent reference mismatch")

	// ErrChildCountMismatch indicates a child count that differs from the number of children held.
	ErrChildCountMismatch = errors.New("child count mismatch")

	// ErrCycle indicates a node reachable more than once from the root.
	ErrCycle = errors.New("node reached more than once")

	// ErrRootHasParent indicates that the node validated as a root has a parent.
	ErrRootHasParent = errors.New("root has a parent")

	// ErrCapacityExceeded indicates a tree node holding more than two children.
	ErrCapacityExceeded = errors.New("node holds more than two children")
)
